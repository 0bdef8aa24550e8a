package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/txn"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var badRequestErrs = []error{
	domain.ErrBadParamInput,
	domain.ErrInvalidAddress,
	domain.ErrMissingFields,
	domain.ErrInvalidPrice,
	domain.ErrInvalidBid,
	domain.ErrInvalidAuctionParams,
	domain.ErrInvalidCategory,
	domain.ErrNotAnImage,
	domain.ErrUnsupportedSchema,
}

// MakeJsonResp wraps data in the response envelope. An error as data picks its own
// status when it is a known domain error.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = errorStatus(err, status)
		data = err.Error()
		var rejection *txn.RejectionError
		if errors.As(err, &rejection) {
			data = rejection.Message
		}
		if errors.Is(err, domain.ErrTxPending) {
			data = domain.ErrTxPending.Error()
		}
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func errorStatus(err error, fallback int) int {
	var rejection *txn.RejectionError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrActionInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTxPending):
		return http.StatusAccepted
	case errors.Is(err, domain.ErrWalletUnavailable), errors.Is(err, domain.ErrRpcUnavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &rejection):
		return http.StatusUnprocessableEntity
	}
	for _, e := range badRequestErrs {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}
	return fallback
}
