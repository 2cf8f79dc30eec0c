// Package models declares the bun schema for the race-results table.
package models

import "github.com/uptrace/bun"

// RaceResult is one row of externally ingested swim-meet data. The
// serving API never writes these rows; cmd/ingest populates them.
// Free-text columns keep the source's messy formatting as-is.
type RaceResult struct {
	bun.BaseModel `bun:"table:race_results,alias:rr"`

	ID        int     `bun:"id,pk,autoincrement" json:"id"`
	Year      string  `bun:"year,notnull" json:"year"`
	Meet      string  `bun:"meet,notnull" json:"meet"`
	Event     string  `bun:"event,notnull" json:"event"`
	Result    string  `bun:"result,notnull" json:"result"`
	Rank      *string `bun:"rank" json:"rank,omitempty"`
	Lane      *string `bun:"lane" json:"lane,omitempty"`
	Division  *string `bun:"division" json:"division,omitempty"`
	Swimmer   string  `bun:"swimmer,notnull" json:"swimmer"`
	Gender    *string `bun:"gender" json:"gender,omitempty"`
	BirthYear *string `bun:"birth_year" json:"birthYear,omitempty"`
}
