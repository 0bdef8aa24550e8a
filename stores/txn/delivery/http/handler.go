package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/txn"
)

type handler struct {
	txn txn.Usecase
}

func New(e *echo.Echo, txn txn.Usecase) {
	h := &handler{txn}

	g := e.Group("/token/:tokenId")

	g.POST("/buy", h.buy)

	g.POST("/bid", h.bid)

	g.POST("/list", h.list)

	g.POST("/end-auction", h.endAuction)

	g.GET("/pending", h.pending)

	g.GET("/draft", h.getDraft)

	g.PUT("/draft", h.saveDraft)

	g.POST("/draft/submit", h.submitDraft)
}

func tokenId(c echo.Context) (domain.TokenId, error) {
	return domain.ParseTokenId(c.Param("tokenId"))
}

func (h *handler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Price string `json:"price"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.txn.Buy(ctx, id, p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Amount string `json:"amount"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.txn.Bid(ctx, id, p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := txn.Draft{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var res *txn.Outcome
	switch p.ListingType {
	case listing.ListingTypeFixedPrice:
		res, err = h.txn.ListForSale(ctx, id, p.Price)
	case listing.ListingTypeAuction:
		res, err = h.txn.ListForAuction(ctx, id, p.StartingBid, p.DurationHours)
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid listingType")
	}
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) endAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.txn.EndAuction(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) pending(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.txn.Pending(ctx, id))
}

func (h *handler) getDraft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.txn.Draft(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) saveDraft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	p := txn.Draft{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.txn.SaveDraft(ctx, id, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, p)
}

func (h *handler) submitDraft(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id, err := tokenId(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.txn.SubmitDraft(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
