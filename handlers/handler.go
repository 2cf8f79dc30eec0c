// Package handlers wires the swim aggregation logic to echo routes.
// Handlers fetch rows with bound-parameter queries, hand them to the
// swim package for reduction and return JSON. Query failures map to
// 503 so clients can tell a retryable outage from an empty result.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/padraicbc/swimapi/config"
	"github.com/padraicbc/swimapi/swim"
	"github.com/padraicbc/swimapi/telemetry"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db         *bun.DB
	norm       *swim.MeetNormalizer
	classifier *swim.EventClassifier
	metrics    *telemetry.Metrics

	policyName   string
	ageTolerance int
}

// New creates a Handler with the given database connection, config
// and metrics. The normalizer and classifier are built once here and
// shared; both are immutable.
func New(db *bun.DB, cfg *config.Config, m *telemetry.Metrics) *Handler {
	return &Handler{
		db:           db,
		norm:         swim.NewMeetNormalizer(),
		classifier:   swim.NewEventClassifier(),
		metrics:      m,
		policyName:   cfg.PoolPolicy,
		ageTolerance: cfg.AgeTolerance,
	}
}

// policy builds the configured pool policy. tolerance overrides the
// configured birth-year window when positive.
func (h *Handler) policy(tolerance int) swim.PoolPolicy {
	if h.policyName == config.PolicyDemographic {
		if tolerance <= 0 {
			tolerance = h.ageTolerance
		}
		return swim.DemographicPolicy{ToleranceYears: tolerance}
	}
	return swim.CoOccurrencePolicy{}
}

// recordRow is the flat scan target shared by the aggregation queries.
type recordRow struct {
	Year      string  `bun:"year"`
	Meet      string  `bun:"meet"`
	Event     string  `bun:"event"`
	Result    string  `bun:"result"`
	Division  *string `bun:"division"`
	Swimmer   string  `bun:"swimmer"`
	Gender    *string `bun:"gender"`
	BirthYear *string `bun:"birth_year"`
}

func toRecords(rows []recordRow) []swim.Record {
	out := make([]swim.Record, len(rows))
	for i, r := range rows {
		out[i] = swim.Record{
			Year:      r.Year,
			Meet:      r.Meet,
			Event:     r.Event,
			Result:    r.Result,
			Division:  deref(r.Division),
			Swimmer:   r.Swimmer,
			Gender:    deref(r.Gender),
			BirthYear: deref(r.BirthYear),
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// likePattern wraps a free-text filter for ILIKE matching; empty input
// matches everything.
func likePattern(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "%"
	}
	return fmt.Sprintf("%%%s%%", s)
}

// dbError logs a query failure and maps it to 503: the database being
// away is retryable and must not look like a not-found.
func (h *Handler) dbError(handler string, err error) *echo.HTTPError {
	h.metrics.QueryErr(handler)
	zap.L().Error("query failed", zap.String("handler", handler), zap.Error(err))
	return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable")
}

// intParam parses an optional integer query param with bounds. A
// malformed or out-of-range value is a client error, not a default.
func intParam(c echo.Context, name string, def, min, max int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("%s must be an integer between %d and %d", name, min, max))
	}
	return v, nil
}

// paginate slices [cursor, cursor+limit) out of n items and returns
// the bounds plus the next cursor, nil when the listing is exhausted.
func paginate(n, cursor, limit int) (lo, hi int, next *int) {
	lo = cursor
	if lo > n {
		lo = n
	}
	hi = lo + limit
	if hi >= n {
		hi = n
		return lo, hi, nil
	}
	nc := hi
	return lo, hi, &nc
}
