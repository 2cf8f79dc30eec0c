package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}

// Health reports liveness and whether the database answers a ping.
// Always 200: a down database shows up in the body, not the status,
// so load balancers don't cycle the process for an external outage.
func (h *Handler) Health(c echo.Context) error {
	dbOK := h.db.PingContext(c.Request().Context()) == nil
	return c.JSON(http.StatusOK, healthResponse{OK: true, DB: dbOK})
}
