package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/gwr-marine/ops-analytics/infrastructure/database/postgres"
	"github.com/gwr-marine/ops-analytics/internal/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"
	"github.com/pkg/errors"
)

const (
	inventorySnapshotTable = "inventory_snapshots"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type InventorySnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *domain.InventorySnapshot) error
	GetLatest(ctx context.Context) (*domain.InventorySnapshot, error)
}

type inventorySnapshotRepository struct {
	conn postgres.Queryer
}

func NewInventorySnapshotRepository(conn postgres.Queryer) InventorySnapshotRepository {
	return &inventorySnapshotRepository{
		conn: conn,
	}
}

// SaveSnapshot grava um snapshot por dia; rodar de novo no mesmo dia substitui o anterior
func (r *inventorySnapshotRepository) SaveSnapshot(ctx context.Context, snapshot *domain.InventorySnapshot) error {
	sqlQuery, args, err := saveSnapshotQuery(snapshot)
	if err != nil {
		return err
	}

	if _, err := r.conn.ExecContext(ctx, sqlQuery, args...); err != nil {
		return errors.Wrapf(err, "erro ao salvar snapshot de estoque de %s", snapshot.Date)
	}

	return nil
}

func (r *inventorySnapshotRepository) GetLatest(ctx context.Context) (*domain.InventorySnapshot, error) {
	sqlQuery, args, err := squirrel.
		Select("id", "snapshot_date::text", "items", "critical_products", "low_products").
		From(inventorySnapshotTable).
		OrderBy("snapshot_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	snapshot := &domain.InventorySnapshot{}
	var items []byte

	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(
		&snapshot.ID,
		&snapshot.Date,
		&items,
		pq.Array(&snapshot.Critical),
		pq.Array(&snapshot.Low),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao buscar último snapshot de estoque")
	}

	if err := json.Unmarshal(items, &snapshot.Items); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar itens do snapshot")
	}

	return snapshot, nil
}

func saveSnapshotQuery(snapshot *domain.InventorySnapshot) (string, []interface{}, error) {
	items, err := json.Marshal(snapshot.Items)
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao serializar itens do snapshot")
	}

	query := squirrel.StatementBuilder.
		Insert(inventorySnapshotTable).
		Columns("id", "snapshot_date", "items", "critical_products", "low_products").
		Values(snapshot.ID, snapshot.Date, items, pq.Array(snapshot.Critical), pq.Array(snapshot.Low)).
		Suffix(`
		ON CONFLICT (snapshot_date) DO UPDATE SET
			items = EXCLUDED.items,
			critical_products = EXCLUDED.critical_products,
			low_products = EXCLUDED.low_products,
			updated_at = CURRENT_TIMESTAMP
	`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao construir query de inserção")
	}

	return sqlQuery, args, nil
}
