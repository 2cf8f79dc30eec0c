package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/swimapi/models"
	"github.com/padraicbc/swimapi/swim"
)

type resultItem struct {
	ID        int      `json:"id"`
	Year      string   `json:"year"`
	Meet      string   `json:"meet"`
	MeetLabel string   `json:"meetLabel"`
	Event     string   `json:"event"`
	Result    string   `json:"result"`
	Seconds   *float64 `json:"seconds"`
	Rank      *string  `json:"rank,omitempty"`
	Lane      *string  `json:"lane,omitempty"`
	Division  *string  `json:"division,omitempty"`
}

type resultsResponse struct {
	Items      []resultItem `json:"items"`
	NextCursor *int         `json:"nextCursor"`
}

// Results lists a swimmer's raw rows, optionally filtered to an event
// pattern. Unparseable times stay in the listing with a null seconds
// field; only the aggregations drop them.
func (h *Handler) Results(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing name param")
	}

	limit, err := intParam(c, "limit", defaultSummaryLimit, 1, maxSummaryLimit)
	if err != nil {
		return err
	}
	cursor, err := intParam(c, "cursor", 0, 0, int(^uint(0)>>1))
	if err != nil {
		return err
	}

	var rows []models.RaceResult
	q := h.db.NewSelect().
		Model(&rows).
		Where("rr.swimmer = ?", name).
		OrderExpr("rr.year ASC, rr.id ASC").
		Offset(cursor).
		Limit(limit + 1) // one extra row decides nextCursor

	if stroke := c.QueryParam("stroke"); stroke != "" {
		q = q.Where("rr.event ILIKE ?", likePattern(stroke))
	}

	if err := q.Scan(c.Request().Context()); err != nil {
		return h.dbError("results", err)
	}
	h.metrics.QueryOK("results")

	var next *int
	if len(rows) > limit {
		rows = rows[:limit]
		nc := cursor + limit
		next = &nc
	}

	items := make([]resultItem, len(rows))
	for i, r := range rows {
		items[i] = resultItem{
			ID:        r.ID,
			Year:      r.Year,
			Meet:      r.Meet,
			MeetLabel: h.norm.Normalize(r.Meet),
			Event:     r.Event,
			Result:    r.Result,
			Rank:      r.Rank,
			Lane:      r.Lane,
			Division:  r.Division,
		}
		if sec, ok := swim.ParseSeconds(r.Result); ok && sec > 0 {
			s := sec
			items[i].Seconds = &s
		}
	}

	return c.JSON(http.StatusOK, resultsResponse{Items: items, NextCursor: next})
}
