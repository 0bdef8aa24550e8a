package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidAddress    = errors.New("Invalid address")

	// connectivity
	ErrWalletUnavailable = errors.New("wallet is not configured, set WALLET_PRIVATE_KEY to sign transactions")
	ErrRpcUnavailable    = errors.New("rpc endpoint is unreachable")

	// input validation, rejected before any network call
	ErrMissingFields        = errors.New("Please fill in all fields.")
	ErrInvalidPrice         = errors.New("Price must be greater than 0.")
	ErrInvalidBid           = errors.New("Bid amount must be greater than 0.")
	ErrInvalidAuctionParams = errors.New("Starting bid and duration must be greater than 0.")
	ErrInvalidCategory      = errors.New("Unknown category")
	ErrNotAnImage           = errors.New("Only image files can be minted")

	// ErrTxReverted is returned when a mined transaction has a failed status
	ErrTxReverted = errors.New("transaction reverted")
	// ErrActionInProgress is returned when the same action on the same token is still pending
	ErrActionInProgress = errors.New("action already in progress")
	// ErrTxPending is returned when a broadcast transaction has no receipt yet, it may still be mined
	ErrTxPending = errors.New("transaction submitted, waiting for confirmation")
)

// FetchError is returned when a resolved resource answers with a non-success status
type FetchError struct {
	Url        string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Url, e.StatusCode)
}
