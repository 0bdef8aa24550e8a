package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/mint"
)

type handler struct {
	mint mint.Usecase
}

func New(e *echo.Echo, mint mint.Usecase) {
	h := &handler{mint}

	e.POST("/mint", h.mintToken)
}

func (h *handler) mintToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	header, err := c.FormFile("file")
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrMissingFields)
	}
	file, err := header.Open()
	if err != nil {
		ctx.WithField("err", err).Error("header.Open failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	defer file.Close()

	res, err := h.mint.Mint(ctx, mint.MintRequest{
		File:        file,
		FileName:    header.Filename,
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Price:       c.FormValue("price"),
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
