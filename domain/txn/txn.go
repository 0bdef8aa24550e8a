package txn

import (
	"fmt"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
)

type Action string

const (
	ActionBuy        Action = "buy"
	ActionBid        Action = "bid"
	ActionList       Action = "list"
	ActionEndAuction Action = "end-auction"
	ActionMint       Action = "mint"
)

// PendingKey identifies one in-flight user action
type PendingKey struct {
	TokenId domain.TokenId
	Action  Action
}

// Draft holds form input for a token until it is submitted. Amounts are ether strings.
type Draft struct {
	ListingType   listing.ListingType `json:"listingType"`
	Price         string              `json:"price,omitempty"`
	StartingBid   string              `json:"startingBid,omitempty"`
	DurationHours string              `json:"durationHours,omitempty"`
	BidAmount     string              `json:"bidAmount,omitempty"`
}

type Outcome struct {
	TokenId domain.TokenId `json:"tokenId"`
	Action  Action         `json:"action"`
	TxHash  domain.TxHash  `json:"txHash"`
	Message string         `json:"message"`
}

// RejectionError is returned when the contract or the wallet refused the call
type RejectionError struct {
	Action  Action
	Reason  string
	Message string
	Err     error
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Action, e.Reason)
}

func (e *RejectionError) Unwrap() error {
	return e.Err
}

type PendingRepo interface {
	// TryMark sets the flag and reports false if it was already set
	TryMark(ctx.Ctx, PendingKey) bool
	Clear(ctx.Ctx, PendingKey)
	IsPending(ctx.Ctx, PendingKey) bool
	List(ctx.Ctx, domain.TokenId) []Action
}

type DraftRepo interface {
	Save(ctx.Ctx, domain.TokenId, Draft) error
	Get(ctx.Ctx, domain.TokenId) (*Draft, error)
	Delete(ctx.Ctx, domain.TokenId) error
}

type Usecase interface {
	Buy(c ctx.Ctx, id domain.TokenId, price string) (*Outcome, error)
	Bid(c ctx.Ctx, id domain.TokenId, amount string) (*Outcome, error)
	ListForSale(c ctx.Ctx, id domain.TokenId, price string) (*Outcome, error)
	ListForAuction(c ctx.Ctx, id domain.TokenId, startingBid string, durationHours string) (*Outcome, error)
	EndAuction(c ctx.Ctx, id domain.TokenId) (*Outcome, error)

	IsBusy(c ctx.Ctx, id domain.TokenId, action Action) bool
	Pending(c ctx.Ctx, id domain.TokenId) []Action

	SaveDraft(c ctx.Ctx, id domain.TokenId, draft Draft) error
	Draft(c ctx.Ctx, id domain.TokenId) (*Draft, error)
	// SubmitDraft runs the action the saved draft describes and drops the draft on success
	SubmitDraft(c ctx.Ctx, id domain.TokenId) (*Outcome, error)
}
