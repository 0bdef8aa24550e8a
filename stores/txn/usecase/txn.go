package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	pricefomatter "github.com/x-xyz/marketclient/base/price_fomatter"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/notify"
	"github.com/x-xyz/marketclient/domain/txn"
	"github.com/x-xyz/marketclient/service/chain"
)

type TxnUseCaseCfg struct {
	Contract  domain.MarketplaceContract
	Chain     chain.Client
	Pending   txn.PendingRepo
	Drafts    txn.DraftRepo
	Notifier  notify.Notifier
	Refresher listing.RefreshRequester
}

type txnUseCase struct {
	contract  domain.MarketplaceContract
	chain     chain.Client
	pending   txn.PendingRepo
	drafts    txn.DraftRepo
	notifier  notify.Notifier
	refresher listing.RefreshRequester
	met       metrics.Service
}

func NewTxnUseCase(cfg *TxnUseCaseCfg) txn.Usecase {
	return &txnUseCase{
		contract:  cfg.Contract,
		chain:     cfg.Chain,
		pending:   cfg.Pending,
		drafts:    cfg.Drafts,
		notifier:  cfg.Notifier,
		refresher: cfg.Refresher,
		met:       metrics.New("txn"),
	}
}

// submission is one state-changing call. fallback builds the message shown when
// the rejection matches no known reason.
type submission struct {
	id       domain.TokenId
	action   txn.Action
	success  string
	fallback func(reason string) string
	send     func(bCtx.Ctx) (*domain.TxReceipt, error)
}

func constMessage(msg string) func(string) string {
	return func(string) string { return msg }
}

func (u *txnUseCase) Buy(c bCtx.Ctx, id domain.TokenId, price string) (*txn.Outcome, error) {
	value, err := parseAmount(price, domain.ErrInvalidPrice)
	if err != nil {
		return nil, err
	}
	return u.submit(c, submission{
		id:       id,
		action:   txn.ActionBuy,
		success:  "Successfully purchased NFT",
		fallback: constMessage("Failed to purchase NFT. Check the console for details."),
		send: func(c bCtx.Ctx) (*domain.TxReceipt, error) {
			return u.contract.Buy(c, id, value)
		},
	})
}

func (u *txnUseCase) Bid(c bCtx.Ctx, id domain.TokenId, amount string) (*txn.Outcome, error) {
	value, err := parseAmount(amount, domain.ErrInvalidBid)
	if err != nil {
		return nil, err
	}
	return u.submit(c, submission{
		id:       id,
		action:   txn.ActionBid,
		success:  fmt.Sprintf("Bid placed on NFT %d!", id),
		fallback: constMessage("Failed to place bid. Check the console for details."),
		send: func(c bCtx.Ctx) (*domain.TxReceipt, error) {
			return u.contract.Bid(c, id, value)
		},
	})
}

func (u *txnUseCase) ListForSale(c bCtx.Ctx, id domain.TokenId, price string) (*txn.Outcome, error) {
	value, err := parseAmount(price, domain.ErrInvalidPrice)
	if err != nil {
		return nil, err
	}
	return u.submit(c, submission{
		id:       id,
		action:   txn.ActionList,
		success:  fmt.Sprintf("NFT %d listed for sale at %s ETH!", id, strings.TrimSpace(price)),
		fallback: constMessage("Failed to list NFT for sale. Check the console for details."),
		send: func(c bCtx.Ctx) (*domain.TxReceipt, error) {
			return u.contract.ListForSale(c, id, value)
		},
	})
}

func (u *txnUseCase) ListForAuction(c bCtx.Ctx, id domain.TokenId, startingBid string, durationHours string) (*txn.Outcome, error) {
	if len(strings.TrimSpace(startingBid)) == 0 || len(strings.TrimSpace(durationHours)) == 0 {
		return nil, domain.ErrMissingFields
	}
	value, err := parseAmount(startingBid, domain.ErrInvalidAuctionParams)
	if err != nil {
		return nil, err
	}
	duration, err := parseHours(durationHours)
	if err != nil {
		return nil, err
	}
	return u.submit(c, submission{
		id:       id,
		action:   txn.ActionList,
		success:  fmt.Sprintf("NFT %d listed for auction!", id),
		fallback: constMessage("Failed to list NFT for auction. Check the console for details."),
		send: func(c bCtx.Ctx) (*domain.TxReceipt, error) {
			if _, err := u.contract.Approve(c, u.contract.Address(), id); err != nil {
				c.WithFields(log.Fields{
					"tokenId": id,
					"err":     err,
				}).Error("contract.Approve failed")
				return nil, err
			}
			return u.contract.ListForAuction(c, id, value, duration)
		},
	})
}

func (u *txnUseCase) EndAuction(c bCtx.Ctx, id domain.TokenId) (*txn.Outcome, error) {
	return u.submit(c, submission{
		id:      id,
		action:  txn.ActionEndAuction,
		success: fmt.Sprintf("Auction for NFT %d has ended!", id),
		fallback: func(reason string) string {
			return fmt.Sprintf("Failed to end auction: %s. Try refreshing or performing another transaction first.", reason)
		},
		send: func(c bCtx.Ctx) (*domain.TxReceipt, error) {
			// sync with the latest block so the contract sees the current time
			block, err := u.chain.BlockNumber(c)
			if err != nil {
				c.WithField("err", err).Error("chain.BlockNumber failed")
				return nil, domain.ErrRpcUnavailable
			}
			c.WithField("block", block).Debug("ending auction")
			return u.contract.EndAuction(c, id)
		},
	})
}

func (u *txnUseCase) IsBusy(c bCtx.Ctx, id domain.TokenId, action txn.Action) bool {
	return u.pending.IsPending(c, txn.PendingKey{TokenId: id, Action: action})
}

func (u *txnUseCase) Pending(c bCtx.Ctx, id domain.TokenId) []txn.Action {
	return u.pending.List(c, id)
}

func (u *txnUseCase) SaveDraft(c bCtx.Ctx, id domain.TokenId, draft txn.Draft) error {
	switch draft.ListingType {
	case listing.ListingTypeNone, listing.ListingTypeFixedPrice, listing.ListingTypeAuction:
	default:
		return domain.ErrBadParamInput
	}
	if err := u.drafts.Save(c, id, draft); err != nil {
		c.WithFields(log.Fields{
			"tokenId": id,
			"err":     err,
		}).Error("drafts.Save failed")
		return err
	}
	return nil
}

func (u *txnUseCase) Draft(c bCtx.Ctx, id domain.TokenId) (*txn.Draft, error) {
	return u.drafts.Get(c, id)
}

func (u *txnUseCase) SubmitDraft(c bCtx.Ctx, id domain.TokenId) (*txn.Outcome, error) {
	draft, err := u.drafts.Get(c, id)
	if err != nil {
		return nil, err
	}

	var res *txn.Outcome
	switch {
	case len(strings.TrimSpace(draft.BidAmount)) > 0:
		res, err = u.Bid(c, id, draft.BidAmount)
	case draft.ListingType == listing.ListingTypeAuction:
		res, err = u.ListForAuction(c, id, draft.StartingBid, draft.DurationHours)
	case draft.ListingType == listing.ListingTypeFixedPrice:
		res, err = u.ListForSale(c, id, draft.Price)
	default:
		return nil, domain.ErrMissingFields
	}
	if err != nil {
		return nil, err
	}

	if err := u.drafts.Delete(c, id); err != nil {
		c.WithFields(log.Fields{
			"tokenId": id,
			"err":     err,
		}).Warn("drafts.Delete failed")
	}
	return res, nil
}

func (u *txnUseCase) submit(c bCtx.Ctx, s submission) (*txn.Outcome, error) {
	c = bCtx.WithValues(c, map[string]interface{}{
		"tokenId": s.id,
		"action":  s.action,
	})

	if _, ok := u.chain.Account(); !ok {
		u.notify(c, notify.KindError, domain.ErrWalletUnavailable.Error())
		return nil, domain.ErrWalletUnavailable
	}

	key := txn.PendingKey{TokenId: s.id, Action: s.action}
	if !u.pending.TryMark(c, key) {
		return nil, domain.ErrActionInProgress
	}
	defer u.pending.Clear(c, key)

	defer u.met.BumpTime("submit.time", "action", string(s.action)).End()

	// the flag holds until the chain settles, whether or not the caller is still there
	receipt, err := s.send(bCtx.Detach(c))
	if err != nil {
		if errors.Is(err, domain.ErrWalletUnavailable) || errors.Is(err, domain.ErrRpcUnavailable) {
			u.notify(c, notify.KindError, err.Error())
			return nil, err
		}
		if isPending(err) {
			u.met.BumpSum("pending", 1, "action", string(s.action))
			c.WithField("err", err).Warn("transaction has no receipt yet")
			u.notify(c, notify.KindInfo, pendingMessage)
			if u.refresher != nil {
				u.refresher.Request(c, string(s.action))
			}
			if !errors.Is(err, domain.ErrTxPending) {
				err = fmt.Errorf("%w: %v", domain.ErrTxPending, err)
			}
			return nil, err
		}
		rejection := rejectionOf(s, err)
		u.met.BumpSum("rejected", 1, "action", string(s.action))
		c.WithFields(log.Fields{
			"reason": rejection.Reason,
			"err":    err,
		}).Warn("transaction rejected")
		u.notify(c, notify.KindError, rejection.Message)
		return nil, rejection
	}

	u.met.BumpSum("succeeded", 1, "action", string(s.action))
	c.WithField("tx", receipt.TxHash).Info("transaction mined")
	u.notify(c, notify.KindSuccess, s.success)
	if u.refresher != nil {
		u.refresher.Request(c, string(s.action))
	}

	return &txn.Outcome{
		TokenId: s.id,
		Action:  s.action,
		TxHash:  receipt.TxHash,
		Message: s.success,
	}, nil
}

const pendingMessage = "Transaction submitted. It is not confirmed yet, the listings refresh once it is mined."

// isPending reports an outcome the chain has not settled, the tx may still be mined
func isPending(err error) bool {
	if _, ok := chain.IsRevert(err); ok {
		return false
	}
	return errors.Is(err, domain.ErrTxPending) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (u *txnUseCase) notify(c bCtx.Ctx, kind notify.Kind, message string) {
	if u.notifier != nil {
		u.notifier.Notify(c, kind, message)
	}
}

// known rejection reasons, matched case-insensitively in order
var rejections = []struct {
	substr  string
	message string
}{
	{"auction does not exist", "The auction does not exist for this NFT."},
	{"nft is not in auction", "This NFT is not currently in an auction."},
	{"auction has not ended yet", "The auction has not ended yet. Please wait until the end time."},
	{"auction already ended", "The auction has already been finalized."},
	{"only seller or highest bidder", "You are not authorized to end this auction. Only the seller or highest bidder can do so."},
	{"insufficient funds", "Insufficient funds for this transaction."},
	{"user denied", "Transaction was rejected in the wallet."},
	{"user rejected", "Transaction was rejected in the wallet."},
}

func rejectionOf(s submission, err error) *txn.RejectionError {
	reason := err.Error()
	if revertErr, ok := chain.IsRevert(err); ok && len(revertErr.Reason) > 0 {
		reason = revertErr.Reason
	}

	res := &txn.RejectionError{
		Action: s.action,
		Reason: reason,
		Err:    err,
	}
	lower := strings.ToLower(reason)
	for _, r := range rejections {
		if strings.Contains(lower, r.substr) {
			res.Message = r.message
			return res
		}
	}
	res.Message = s.fallback(reason)
	return res
}

// parseAmount converts a positive ether amount into wei, invalid is returned otherwise
func parseAmount(amount string, invalid error) (*big.Int, error) {
	if len(strings.TrimSpace(amount)) == 0 {
		return nil, domain.ErrMissingFields
	}
	wei, err := pricefomatter.ParseEther(amount)
	if err != nil || wei.Sign() <= 0 {
		return nil, invalid
	}
	return wei, nil
}

// maxHourDigits keeps IntPart from rescaling huge exponents, 999999h at most
const maxHourDigits = 6

func parseHours(hours string) (time.Duration, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(hours))
	if err != nil || !d.IsPositive() {
		return 0, domain.ErrInvalidAuctionParams
	}
	if int64(len(d.Coefficient().String()))+int64(d.Exponent()) > maxHourDigits || d.Exponent() < -maxHourDigits*3 {
		return 0, domain.ErrInvalidAuctionParams
	}
	seconds := d.Mul(decimal.NewFromInt(3600)).IntPart()
	if seconds <= 0 {
		return 0, domain.ErrInvalidAuctionParams
	}
	return time.Duration(seconds) * time.Second, nil
}
