package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	hcdomain "github.com/x-xyz/marketclient/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{
		healthCheck: us,
	}

	e.GET("/health", h.check)
}

// check answers 503 while the rpc node or a configured cache is unreachable
func (h *handler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)

	status := h.healthCheck.Check(context)
	if !status.Healthy {
		return c.JSON(http.StatusServiceUnavailable, status)
	}
	return c.JSON(http.StatusOK, status)
}
