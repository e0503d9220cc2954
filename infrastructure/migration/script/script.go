// Command script cria as tabelas e índices usados pelo serviço de análise.
// As tabelas gwr_* são mantidas pelo financeiro; aqui só criamos índices nelas.
package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/gwr-marine/ops-analytics/infrastructure/database/postgres"
	"github.com/gwr-marine/ops-analytics/internal/config"
	"github.com/gwr-marine/ops-analytics/pkg/log"
)

type migrationStep struct {
	Name      string
	Statement string
}

var steps = []migrationStep{
	{
		Name: "inventory_snapshots",
		Statement: `CREATE TABLE IF NOT EXISTS inventory_snapshots (
			id                VARCHAR(32) PRIMARY KEY,
			snapshot_date     DATE        NOT NULL UNIQUE,
			items             JSONB       NOT NULL DEFAULT '[]',
			critical_products TEXT[]      NOT NULL DEFAULT '{}',
			low_products      TEXT[]      NOT NULL DEFAULT '{}',
			created_at        TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at        TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	},
	{
		Name:      "idx_gwr_expenses_date",
		Statement: `CREATE INDEX IF NOT EXISTS idx_gwr_expenses_date ON gwr_expenses (expense_date)`,
	},
	{
		Name:      "idx_gwr_revenue_date",
		Statement: `CREATE INDEX IF NOT EXISTS idx_gwr_revenue_date ON gwr_revenue (revenue_date)`,
	},
	{
		Name:      "idx_gwr_revenue_lines_revenue",
		Statement: `CREATE INDEX IF NOT EXISTS idx_gwr_revenue_lines_revenue ON gwr_revenue_lines (revenue_id)`,
	},
	{
		Name:      "idx_gwr_food_usage_date",
		Statement: `CREATE INDEX IF NOT EXISTS idx_gwr_food_usage_date ON gwr_food_usage (usage_date)`,
	},
	{
		Name:      "idx_gwr_drinks_usage_date",
		Statement: `CREATE INDEX IF NOT EXISTS idx_gwr_drinks_usage_date ON gwr_drinks_usage (usage_date)`,
	},
}

func runSteps(ctx context.Context, tx *sql.Tx) error {
	for i, step := range steps {
		startTime := time.Now()

		if _, err := tx.ExecContext(ctx, step.Statement); err != nil {
			log.L.WithError(err).WithField("step", step.Name).Error("ERRO ao executar etapa da migração")
			return err
		}

		log.L.WithFields(log.Fields{
			"step":     step.Name,
			"progress": i + 1,
			"total":    len(steps),
			"elapsed":  time.Since(startTime).String(),
		}).Info("Etapa da migração concluída")
	}
	return nil
}

func main() {
	log.L.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return runSteps(ctx, tx)
	})
	if err != nil {
		log.L.WithError(err).Fatal("Migração revertida")
	}

	log.L.WithField("elapsed", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}
