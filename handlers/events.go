package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type eventItem struct {
	Event    string `json:"event"`
	Stroke   string `json:"stroke,omitempty"`
	Distance int    `json:"distance,omitempty"`
}

// Events lists the distinct event labels a swimmer has raced, each
// with its classified stroke family and distance. Labels the
// classifier cannot place come back with those fields empty.
func (h *Handler) Events(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing name param")
	}

	var labels []string
	err := h.db.NewSelect().
		Distinct().
		TableExpr("race_results").
		ColumnExpr("event").
		Where("swimmer = ?", name).
		OrderExpr("event ASC").
		Scan(c.Request().Context(), &labels)
	if err != nil {
		return h.dbError("events", err)
	}
	h.metrics.QueryOK("events")

	items := make([]eventItem, len(labels))
	for i, label := range labels {
		info := h.classifier.Classify(label)
		items[i] = eventItem{Event: label, Stroke: info.Stroke, Distance: info.Distance}
	}

	return c.JSON(http.StatusOK, items)
}
