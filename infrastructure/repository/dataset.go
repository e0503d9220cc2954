// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gwr-marine/ops-analytics/infrastructure/database/postgres"
	"github.com/gwr-marine/ops-analytics/internal/domain"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	expensesTable     = "gwr_expenses e"
	suppliersJoin     = "gwr_suppliers s ON s.supplier_key = e.supplier_key"
	revenueTable      = "gwr_revenue r"
	revenueLinesTable = "gwr_revenue_lines l"
	revenueLinesJoin  = "gwr_revenue r ON r.revenue_id = l.revenue_id"
	foodUsageTable    = "gwr_food_usage"
	drinksUsageTable  = "gwr_drinks_usage"
)

// usageColumns mapeia cada tipo de consumo para as colunas de quantidade e a coluna de total
var usageColumns = map[domain.UsageKind]struct {
	table string
	items []string
	total string
}{
	domain.FoodUsage: {
		table: foodUsageTable,
		items: []string{"poulet_kg", "langoustes_kg", "poisson_kg", "reserve_gambass_pcs", "reserve_langoustes"},
		total: "total_kg",
	},
	domain.DrinksUsage: {
		table: drinksUsageTable,
		items: []string{"coca_cola_bottles", "sprite_bottles", "beer_bottles", "rhum_bottles", "rose_bottles", "blanc_bottles"},
		total: "total_bottles",
	},
}

type DatasetRepository interface {
	// LoadDataset carrega todas as coleções no intervalo [from, to]; datas nil deixam o lado aberto
	LoadDataset(ctx context.Context, from, to *time.Time) (*domain.Dataset, error)
	ListClientNames(ctx context.Context) ([]string, error)
	ListSupplierNames(ctx context.Context) ([]string, error)
}

type datasetRepository struct {
	conn postgres.Queryer
}

func NewDatasetRepository(conn postgres.Queryer) DatasetRepository {
	return &datasetRepository{
		conn: conn,
	}
}

func (r *datasetRepository) LoadDataset(ctx context.Context, from, to *time.Time) (*domain.Dataset, error) {
	dataset := &domain.Dataset{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		expenses, err := r.loadExpenses(gctx, from, to)
		dataset.Expenses = expenses
		return err
	})
	g.Go(func() error {
		orders, err := r.loadOrders(gctx, from, to)
		dataset.Orders = orders
		return err
	})
	g.Go(func() error {
		lines, err := r.loadLines(gctx, from, to)
		dataset.Lines = lines
		return err
	})
	g.Go(func() error {
		usage, err := r.loadUsage(gctx, domain.FoodUsage, from, to)
		dataset.FoodUsage = usage
		return err
	})
	g.Go(func() error {
		usage, err := r.loadUsage(gctx, domain.DrinksUsage, from, to)
		dataset.DrinksUsage = usage
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dataset, nil
}

func (r *datasetRepository) ListClientNames(ctx context.Context) ([]string, error) {
	query := squirrel.
		Select("DISTINCT r.client_name").
		From(revenueTable).
		Where("r.client_name IS NOT NULL").
		OrderBy("r.client_name").
		PlaceholderFormat(squirrel.Dollar)

	return r.listStrings(ctx, query, "erro ao buscar nomes de clientes")
}

func (r *datasetRepository) ListSupplierNames(ctx context.Context) ([]string, error) {
	query := squirrel.
		Select("s.standard_name").
		From("gwr_suppliers s").
		Where("s.standard_name IS NOT NULL").
		OrderBy("s.standard_name").
		PlaceholderFormat(squirrel.Dollar)

	return r.listStrings(ctx, query, "erro ao buscar nomes de fornecedores")
}

func (r *datasetRepository) listStrings(ctx context.Context, query squirrel.SelectBuilder, message string) ([]string, error) {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, message)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, message)
		}
		names = append(names, name)
	}

	return names, errors.Wrap(rows.Err(), message)
}

func expensesQuery(from, to *time.Time) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"e.expense_id",
			"e.expense_date",
			"COALESCE(s.standard_name, '')",
			"COALESCE(e.description, '')",
			"COALESCE(e.category, '')",
			"COALESCE(e.quantity, 0)",
			"COALESCE(e.unit_of_measure, '')",
			"COALESCE(e.net_amount, 0)",
			"COALESCE(e.vat_amount, 0)",
			"COALESCE(e.total_amount, 0)",
			"COALESCE(e.invoice_number, '')",
		).
		From(expensesTable).
		LeftJoin(suppliersJoin).
		OrderBy("e.expense_date DESC", "e.expense_id").
		PlaceholderFormat(squirrel.Dollar)

	return withPeriod(query, "e.expense_date", from, to)
}

func ordersQuery(from, to *time.Time) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"r.revenue_id",
			"r.revenue_date",
			"COALESCE(r.client_name, '')",
			"COALESCE(r.pax_count, 0)",
			"COALESCE(r.total_revenue, 0)",
		).
		From(revenueTable).
		OrderBy("r.revenue_date DESC", "r.revenue_id").
		PlaceholderFormat(squirrel.Dollar)

	return withPeriod(query, "r.revenue_date", from, to)
}

// linesQuery recorta as linhas pela data do pedido, já que a linha não tem data própria
func linesQuery(from, to *time.Time) squirrel.SelectBuilder {
	query := squirrel.
		Select(
			"l.line_id",
			"l.revenue_id",
			"COALESCE(l.menu_item, '')",
			"COALESCE(l.quantity, 0)",
			"COALESCE(l.unit_price, 0)",
			"COALESCE(l.line_total, 0)",
		).
		From(revenueLinesTable).
		Join(revenueLinesJoin).
		OrderBy("l.revenue_id", "l.line_id").
		PlaceholderFormat(squirrel.Dollar)

	return withPeriod(query, "r.revenue_date", from, to)
}

func usageQuery(kind domain.UsageKind, from, to *time.Time) (squirrel.SelectBuilder, error) {
	columns, ok := usageColumns[kind]
	if !ok {
		return squirrel.SelectBuilder{}, errors.Errorf("tipo de consumo desconhecido: %s", kind)
	}

	selected := []string{"staging_id::text", "usage_date"}
	for _, column := range columns.items {
		selected = append(selected, "COALESCE("+column+", 0)")
	}
	selected = append(selected, "COALESCE("+columns.total+", 0)")

	query := squirrel.
		Select(selected...).
		From(columns.table).
		OrderBy("usage_date DESC", "staging_id").
		PlaceholderFormat(squirrel.Dollar)

	return withPeriod(query, "usage_date", from, to), nil
}

// withPeriod aplica os limites inclusivos comparando apenas a data
func withPeriod(query squirrel.SelectBuilder, column string, from, to *time.Time) squirrel.SelectBuilder {
	if from != nil {
		query = query.Where(squirrel.GtOrEq{column: from.Format(time.DateOnly)})
	}
	if to != nil {
		query = query.Where(squirrel.LtOrEq{column: to.Format(time.DateOnly)})
	}
	return query
}

func (r *datasetRepository) loadExpenses(ctx context.Context, from, to *time.Time) ([]domain.ExpenseRecord, error) {
	sqlQuery, args, err := expensesQuery(from, to).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de despesas")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar despesas")
	}
	defer rows.Close()

	expenses := make([]domain.ExpenseRecord, 0)
	for rows.Next() {
		var expense domain.ExpenseRecord
		var date sql.NullTime

		err := rows.Scan(
			&expense.ID,
			&date,
			&expense.SupplierName,
			&expense.Description,
			&expense.Category,
			&expense.Quantity,
			&expense.UnitOfMeasure,
			&expense.NetAmount,
			&expense.VATAmount,
			&expense.TotalAmount,
			&expense.InvoiceNumber,
		)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear despesa")
		}

		expense.Date = nullTimePtr(date)
		expenses = append(expenses, expense)
	}

	return expenses, errors.Wrap(rows.Err(), "erro durante a iteração de despesas")
}

func (r *datasetRepository) loadOrders(ctx context.Context, from, to *time.Time) ([]domain.RevenueOrder, error) {
	sqlQuery, args, err := ordersQuery(from, to).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de receitas")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar receitas")
	}
	defer rows.Close()

	orders := make([]domain.RevenueOrder, 0)
	for rows.Next() {
		var order domain.RevenueOrder
		var date sql.NullTime

		if err := rows.Scan(&order.ID, &date, &order.ClientName, &order.PaxCount, &order.TotalRevenue); err != nil {
			return nil, errors.Wrap(err, "erro ao escanear receita")
		}

		order.Date = nullTimePtr(date)
		orders = append(orders, order)
	}

	return orders, errors.Wrap(rows.Err(), "erro durante a iteração de receitas")
}

func (r *datasetRepository) loadLines(ctx context.Context, from, to *time.Time) ([]domain.RevenueLine, error) {
	sqlQuery, args, err := linesQuery(from, to).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de linhas de receita")
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar linhas de receita")
	}
	defer rows.Close()

	lines := make([]domain.RevenueLine, 0)
	for rows.Next() {
		var line domain.RevenueLine

		err := rows.Scan(&line.ID, &line.OrderID, &line.MenuItem, &line.Quantity, &line.UnitPrice, &line.LineTotal)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear linha de receita")
		}

		lines = append(lines, line)
	}

	return lines, errors.Wrap(rows.Err(), "erro durante a iteração de linhas de receita")
}

func (r *datasetRepository) loadUsage(ctx context.Context, kind domain.UsageKind, from, to *time.Time) ([]domain.UsageRecord, error) {
	query, err := usageQuery(kind, from, to)
	if err != nil {
		return nil, err
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao construir a query de consumo (%s)", kind)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar consumo (%s)", kind)
	}
	defer rows.Close()

	columns := usageColumns[kind].items
	records := make([]domain.UsageRecord, 0)

	for rows.Next() {
		record, err := scanUsage(rows, kind, columns)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao escanear consumo (%s)", kind)
		}
		records = append(records, record)
	}

	return records, errors.Wrapf(rows.Err(), "erro durante a iteração de consumo (%s)", kind)
}

func scanUsage(rows *sql.Rows, kind domain.UsageKind, columns []string) (domain.UsageRecord, error) {
	record := domain.UsageRecord{Kind: kind}
	var date sql.NullTime

	quantities := make([]float64, len(columns))
	dest := []interface{}{&record.ID, &date}
	for i := range quantities {
		dest = append(dest, &quantities[i])
	}
	dest = append(dest, &record.TotalQuantity)

	if err := rows.Scan(dest...); err != nil {
		return record, err
	}

	record.Date = nullTimePtr(date)
	record.Quantities = make(map[string]float64, len(columns))
	for i, column := range columns {
		record.Quantities[column] = quantities[i]
	}

	return record, nil
}

func nullTimePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time
	return &t
}
