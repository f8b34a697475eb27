package handler

import (
	"net/http"
	"time"

	"github.com/grachmannico95/hexboard-api/internal/domain"
	"github.com/labstack/echo/v4"
)

// TimeHandler answers the reachability check used by the web client.
type TimeHandler struct {
	now func() time.Time
}

func NewTimeHandler() *TimeHandler {
	return NewTimeHandlerWithClock(time.Now)
}

func NewTimeHandlerWithClock(now func() time.Time) *TimeHandler {
	return &TimeHandler{now: now}
}

func (h *TimeHandler) GetTime(c echo.Context) error {
	return c.JSON(http.StatusOK, domain.CurrentTime{
		Value: h.now(),
	})
}
