package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/notify"
)

type handler struct {
	history notify.History
}

// New serves the recent notifications for clients that were not connected to /events
func New(e *echo.Echo, history notify.History) {
	h := &handler{history}

	e.GET("/notifications", h.list)
}

// list takes an optional kind filter and a limit counted from the newest
func (h *handler) list(c echo.Context) error {
	kind := notify.Kind(c.QueryParam("kind"))
	limit := 0
	if v := c.QueryParam("limit"); len(v) > 0 {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		limit = n
	}

	res := []notify.Notification{}
	for _, n := range h.history.List() {
		if len(kind) == 0 || n.Kind == kind {
			res = append(res, n)
		}
	}
	if limit > 0 && len(res) > limit {
		res = res[len(res)-limit:]
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
