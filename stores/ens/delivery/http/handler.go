package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/service/ens"
)

type handler struct {
	ens ens.ENS
}

// New serves name lookups so clients can show "alice.eth" next to sellers and bidders
func New(e *echo.Echo, ens ens.ENS) {
	h := &handler{ens}

	g := e.Group("/ens")

	g.GET("/resolve/:name", h.resolve)

	g.GET("/reverse-resolve/:address", h.reverseResolve)
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	name := strings.TrimSpace(c.Param("name"))
	if len(name) == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrMissingFields)
	}

	address, err := h.ens.Resolve(ctx, name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if address.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, address.ToLower())
}

func (h *handler) reverseResolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Param("address")
	if !validator.IsValidAddress(address) {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}

	name, err := h.ens.ReverseResolve(ctx, domain.Address(address).ToLower())
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if len(name) == 0 {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, name)
}
