package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/padraicbc/swimapi/config"
	"github.com/padraicbc/swimapi/models"
)

// Setup opens a PostgreSQL connection using the provided config and
// applies the pool limits. The API is read-only so the pool needs no
// transaction tuning, just bounded size and idle recycling.
func Setup(cfg *config.Config) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	sqldb.SetMaxOpenConns(cfg.PoolSize + cfg.MaxOverflow)
	sqldb.SetMaxIdleConns(cfg.PoolSize)
	sqldb.SetConnMaxIdleTime(time.Duration(cfg.PoolRecycleSecs) * time.Second)

	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	return db
}

// CreateTables creates the results table and its query indexes.
func CreateTables(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*models.RaceResult)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("creating table for %T: %w", (*models.RaceResult)(nil), err)
	}

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS race_results_swimmer_idx ON race_results (swimmer)`,
		`CREATE INDEX IF NOT EXISTS race_results_event_idx ON race_results (event)`,
		`CREATE INDEX IF NOT EXISTS race_results_event_year_idx ON race_results (event, year)`,
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("index: %v", err)
		}
	}

	return nil
}
