package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/swimapi/swim"
)

const (
	defaultSummaryLimit = 200
	maxSummaryLimit     = 2000
)

type summaryItem struct {
	Year      string  `json:"year"`
	Meet      string  `json:"meet"`
	MeetLabel string  `json:"meetLabel"`
	Event     string  `json:"event"`
	Name      string  `json:"name"`
	Seconds   float64 `json:"seconds"`
}

type summaryAnalysis struct {
	AvgSeconds *float64 `json:"avgSeconds"`
	PBSeconds  *float64 `json:"pbSeconds"`
	PBMeet     string   `json:"pbMeet,omitempty"`
	PBYear     string   `json:"pbYear,omitempty"`
	MeetCount  int      `json:"meetCount"`
}

type trendSeries struct {
	Points []swim.TrendPoint `json:"points"`
}

type summaryResponse struct {
	Items       []summaryItem               `json:"items"`
	NextCursor  *int                        `json:"nextCursor"`
	Analysis    summaryAnalysis             `json:"analysis"`
	Family      map[string]swim.FamilyStats `json:"family"`
	Trend       trendSeries                 `json:"trend"`
	LeaderTrend trendSeries                 `json:"leaderTrend"`
}

// Summary returns a swimmer's results in one event: the paginated
// valid rows (cursor = offset), count/average/PB analysis, a
// per-stroke family breakdown across all their events, their
// best-per-year trend and the field-wide leader trend.
func (h *Handler) Summary(c echo.Context) error {
	name := c.QueryParam("name")
	stroke := c.QueryParam("stroke")
	if name == "" || stroke == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing name or stroke param")
	}

	limit, err := intParam(c, "limit", defaultSummaryLimit, 1, maxSummaryLimit)
	if err != nil {
		return err
	}
	cursor, err := intParam(c, "cursor", 0, 0, int(^uint(0)>>1))
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	pattern := likePattern(stroke)

	var eventRows []recordRow
	if err := h.db.NewSelect().
		TableExpr("race_results rr").
		Column("year", "meet", "event", "result", "division", "swimmer", "gender", "birth_year").
		Where("rr.swimmer = ?", name).
		Where("rr.event ILIKE ?", pattern).
		OrderExpr("rr.year ASC").
		Scan(ctx, &eventRows); err != nil {
		return h.dbError("summary", err)
	}

	var allRows []recordRow
	if err := h.db.NewSelect().
		TableExpr("race_results rr").
		Column("year", "meet", "event", "result", "division", "swimmer", "gender", "birth_year").
		Where("rr.swimmer = ?", name).
		Scan(ctx, &allRows); err != nil {
		return h.dbError("summary", err)
	}

	var fieldRows []recordRow
	if err := h.db.NewSelect().
		TableExpr("race_results rr").
		Column("year", "meet", "event", "result", "division", "swimmer", "gender", "birth_year").
		Where("rr.event ILIKE ?", pattern).
		Scan(ctx, &fieldRows); err != nil {
		return h.dbError("summary", err)
	}
	h.metrics.QueryOK("summary")

	records := toRecords(eventRows)

	items := make([]summaryItem, 0, len(records))
	for _, r := range records {
		sec, ok := r.Seconds()
		if !ok {
			continue
		}
		items = append(items, summaryItem{
			Year:      r.Year,
			Meet:      r.Meet,
			MeetLabel: h.norm.Normalize(r.Meet),
			Event:     r.Event,
			Name:      r.Swimmer,
			Seconds:   sec,
		})
	}
	lo, hi, next := paginate(len(items), cursor, limit)

	analysis := summaryAnalysis{}
	st := swim.Reduce(records)
	analysis.AvgSeconds = st.Avg
	analysis.MeetCount = st.Count
	if pb := swim.BestResult(records, swim.BestOptions{}); pb != nil {
		analysis.PBSeconds = &pb.Seconds
		analysis.PBMeet = pb.Meet
		analysis.PBYear = pb.Year
	}

	return c.JSON(http.StatusOK, summaryResponse{
		Items:       items[lo:hi],
		NextCursor:  next,
		Analysis:    analysis,
		Family:      swim.FamilyBreakdown(toRecords(allRows), h.classifier),
		Trend:       trendSeries{Points: swim.BestByYear(records)},
		LeaderTrend: trendSeries{Points: swim.BestByYear(toRecords(fieldRows))},
	})
}
