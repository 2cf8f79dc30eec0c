package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/padraicbc/swimapi/swim"
)

const (
	maxAgeTolerance = 10
	maxMonthsBack   = 240
)

// Rank ranks a swimmer's personal best against their opponent pool in
// one event. The pool membership rule is the configured policy;
// ageTolerance widens the demographic policy's birth-year window,
// monthsBack restricts the rows considered to a trailing window and
// withinSpan=1 bounds every pool member's PB search to the target's
// own first/last year in the event.
func (h *Handler) Rank(c echo.Context) error {
	name := c.QueryParam("name")
	stroke := c.QueryParam("stroke")
	if name == "" || stroke == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing name or stroke param")
	}

	tolerance, err := intParam(c, "ageTolerance", 0, 1, maxAgeTolerance)
	if err != nil {
		return err
	}
	monthsBack, err := intParam(c, "monthsBack", 0, 1, maxMonthsBack)
	if err != nil {
		return err
	}

	q := h.db.NewSelect().
		TableExpr("race_results rr").
		Column("year", "meet", "event", "result", "division", "swimmer", "gender", "birth_year").
		Where("rr.event ILIKE ?", likePattern(stroke))

	if monthsBack > 0 {
		cutoff := time.Now().AddDate(0, -monthsBack, 0).Format("20060102")
		q = q.Where("rr.year >= ?", cutoff)
	}

	var rows []recordRow
	if err := q.OrderExpr("rr.year ASC").Scan(c.Request().Context(), &rows); err != nil {
		return h.dbError("rank", err)
	}
	h.metrics.QueryOK("rank")

	ranking := swim.BuildRanking(name, toRecords(rows), h.policy(tolerance), swim.RankingOptions{
		RestrictToTargetSpan: c.QueryParam("withinSpan") == "1",
	})

	return c.JSON(http.StatusOK, ranking)
}
