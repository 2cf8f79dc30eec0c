package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const swimmerSearchLimit = 50

// Swimmers searches swimmer names by pattern.
func (h *Handler) Swimmers(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q param not set")
	}

	var names []string
	err := h.db.NewSelect().
		Distinct().
		TableExpr("race_results").
		ColumnExpr("swimmer").
		Where("swimmer ILIKE ?", likePattern(q)).
		OrderExpr("swimmer ASC").
		Limit(swimmerSearchLimit).
		Scan(c.Request().Context(), &names)
	if err != nil {
		return h.dbError("swimmers", err)
	}
	h.metrics.QueryOK("swimmers")

	return c.JSON(http.StatusOK, names)
}
