package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/middleware"
)

type handler struct {
	catalog   listing.Usecase
	refresher listing.RefreshRequester
	resolver  domain.NameResolver
}

func New(e *echo.Echo, catalog listing.Usecase, refresher listing.RefreshRequester, resolver domain.NameResolver) {
	h := &handler{catalog, refresher, resolver}

	g := e.Group("/catalog")

	g.GET("", h.search)

	g.POST("/refresh", h.refresh)

	e.GET("/categories", h.categories, middleware.CacheHttp(time.Hour))

	e.GET("/profile/:user", h.profile)
}

type searchResp struct {
	Version  uint64            `json:"version"`
	Listings []listing.Listing `json:"listings"`
}

func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	q := listing.Query{}
	if err := c.Bind(&q); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}
	if !q.Sort.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid sort")
	}

	items, version := h.catalog.Search(ctx, q)
	return delivery.MakeJsonResp(c, http.StatusOK, searchResp{version, items})
}

func (h *handler) refresh(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	token := h.refresher.Request(ctx, "api")

	return delivery.MakeJsonResp(c, http.StatusAccepted, map[string]uint64{
		"token": token,
	})
}

func (h *handler) categories(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, listing.Categories)
}

func (h *handler) profile(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		User string `param:"user"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	user, err := h.resolver.Resolve(ctx, p.User)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	if user.IsEmpty() {
		return delivery.MakeJsonResp(c, http.StatusNotFound, domain.ErrNotFound)
	}

	res, err := h.catalog.Profile(ctx, user)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
