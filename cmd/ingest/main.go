// cmd/ingest/main.go
// Copies the legacy MySQL swimming_scores table into the local
// PostgreSQL race_results table. The source data legitimately holds
// repeated (swimmer, event, date) rows, so no dedupe is attempted;
// re-running against a non-empty table will duplicate rows.
//
// Usage:
//
//	MYSQL_DSN="user:pass@tcp(host:3306)/swimdata?parseTime=true" \
//	DB_PASS="pgpass" \
//	go run ./cmd/ingest
package main

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"

	"github.com/padraicbc/swimapi/config"
	bundb "github.com/padraicbc/swimapi/db"
	"github.com/padraicbc/swimapi/models"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()

	// --- MySQL ---
	if cfg.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN required, e.g.: user:pass@tcp(host:3306)/swimdata?parseTime=true")
	}
	myDB, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer myDB.Close()
	myDB.SetMaxOpenConns(4)
	if err := myDB.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to MySQL")

	// --- PostgreSQL ---
	pgDB := bundb.Setup(cfg)
	defer pgDB.Close()
	log.Println("connected to PostgreSQL")

	// Create table + indexes (idempotent)
	if err := bundb.CreateTables(ctx, pgDB); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	n, err := ingestResults(ctx, myDB, pgDB)
	if err != nil {
		log.Fatalf("ingest results: %v", err)
	}
	log.Printf("race_results  %d rows ingested", n)
	log.Println("ingest complete")
}

func ingestResults(ctx context.Context, myDB *sql.DB, pgDB *bun.DB) (int, error) {
	rows, err := myDB.QueryContext(ctx,
		`SELECT year, meet, event, result, rank, lane, division, swimmer, gender, birth_year
		 FROM swimming_scores`)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	var batch []models.RaceResult
	total := 0
	for rows.Next() {
		var r models.RaceResult
		var rank, lane, division, gender, birth sql.NullString
		if err := rows.Scan(&r.Year, &r.Meet, &r.Event, &r.Result,
			&rank, &lane, &division, &r.Swimmer, &gender, &birth); err != nil {
			return total, err
		}
		r.Rank = nullStr(rank)
		r.Lane = nullStr(lane)
		r.Division = nullStr(division)
		r.Gender = nullStr(gender)
		r.BirthYear = nullStr(birth)

		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := bulkInsert(ctx, pgDB, batch); err != nil {
				return total, err
			}
			total += len(batch)
			batch = batch[:0]
		}
	}
	if err := bulkInsert(ctx, pgDB, batch); err != nil {
		return total, err
	}
	return total + len(batch), rows.Err()
}

func nullStr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	return &n.String
}

func bulkInsert(ctx context.Context, pgDB *bun.DB, rows []models.RaceResult) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := pgDB.NewInsert().Model(&rows).Exec(ctx)
	return err
}
