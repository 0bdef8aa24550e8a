package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	listingMocks "github.com/x-xyz/marketclient/domain/listing/mocks"
	"github.com/x-xyz/marketclient/domain/mocks"
	"github.com/x-xyz/marketclient/domain/notify"
	"github.com/x-xyz/marketclient/domain/txn"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
	"github.com/x-xyz/marketclient/service/chain"
	chainMocks "github.com/x-xyz/marketclient/service/chain/mocks"
	"github.com/x-xyz/marketclient/service/notifier"
	"github.com/x-xyz/marketclient/stores/txn/repository"
)

var (
	marketAddr = domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	wallet     = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	halfEth    = big.NewInt(5e17)
	receipt    = &domain.TxReceipt{TxHash: "0xabc", BlockNumber: 12}
)

type txnSuite struct {
	suite.Suite
	ctx       bCtx.Ctx
	contract  *mocks.MarketplaceContract
	chain     *chainMocks.Client
	refresher *listingMocks.RefreshRequester
	recorder  *notifier.Recorder
	im        txn.Usecase
}

func (s *txnSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.contract = &mocks.MarketplaceContract{}
	s.chain = &chainMocks.Client{}
	s.refresher = &listingMocks.RefreshRequester{}
	s.recorder = notifier.NewRecorder(0)
	s.im = NewTxnUseCase(&TxnUseCaseCfg{
		Contract:  s.contract,
		Chain:     s.chain,
		Pending:   repository.NewPendingRepo(),
		Drafts:    repository.NewDraftRepo(primitive.NewPrimitive("draft", 1), time.Hour),
		Notifier:  s.recorder,
		Refresher: s.refresher,
	})
}

func (s *txnSuite) TearDownTest() {
	s.contract.AssertExpectations(s.T())
	s.chain.AssertExpectations(s.T())
	s.refresher.AssertExpectations(s.T())
}

func TestTxnSuite(t *testing.T) {
	suite.Run(t, new(txnSuite))
}

func (s *txnSuite) withWallet() {
	s.chain.On("Account").Return(wallet, true)
}

func (s *txnSuite) lastNotification() notify.Notification {
	n, ok := s.recorder.Last()
	s.Require().True(ok)
	return n
}

func (s *txnSuite) TestValidationBeforeNetwork() {
	tests := []struct {
		name string
		run  func() (*txn.Outcome, error)
		want error
	}{
		{"buy without price", func() (*txn.Outcome, error) { return s.im.Buy(s.ctx, 1, " ") }, domain.ErrMissingFields},
		{"buy zero", func() (*txn.Outcome, error) { return s.im.Buy(s.ctx, 1, "0") }, domain.ErrInvalidPrice},
		{"bid negative", func() (*txn.Outcome, error) { return s.im.Bid(s.ctx, 1, "-1") }, domain.ErrInvalidBid},
		{"bid not a number", func() (*txn.Outcome, error) { return s.im.Bid(s.ctx, 1, "abc") }, domain.ErrInvalidBid},
		{"list zero", func() (*txn.Outcome, error) { return s.im.ListForSale(s.ctx, 1, "0.0") }, domain.ErrInvalidPrice},
		{"auction without duration", func() (*txn.Outcome, error) { return s.im.ListForAuction(s.ctx, 1, "1", "") }, domain.ErrMissingFields},
		{"auction zero duration", func() (*txn.Outcome, error) { return s.im.ListForAuction(s.ctx, 1, "1", "0") }, domain.ErrInvalidAuctionParams},
		{"auction zero bid", func() (*txn.Outcome, error) { return s.im.ListForAuction(s.ctx, 1, "0", "2") }, domain.ErrInvalidAuctionParams},
		{"auction huge duration", func() (*txn.Outcome, error) { return s.im.ListForAuction(s.ctx, 1, "1", "1e10000000") }, domain.ErrInvalidAuctionParams},
		{"buy huge price", func() (*txn.Outcome, error) { return s.im.Buy(s.ctx, 1, "1e10000000") }, domain.ErrInvalidPrice},
	}
	for _, tt := range tests {
		res, err := tt.run()
		s.Nil(res, tt.name)
		s.ErrorIs(err, tt.want, tt.name)
	}
	_, ok := s.recorder.Last()
	s.False(ok)
}

func (s *txnSuite) TestWalletUnavailable() {
	s.chain.On("Account").Return(common.Address{}, false).Once()

	_, err := s.im.Buy(s.ctx, 1, "0.5")
	s.ErrorIs(err, domain.ErrWalletUnavailable)
	s.Equal(notify.KindError, s.lastNotification().Kind)
}

func (s *txnSuite) TestBuy() {
	s.withWallet()
	s.contract.On("Buy", mock.Anything, domain.TokenId(4), halfEth).Return(receipt, nil).Once()
	s.refresher.On("Request", mock.Anything, "buy").Return(uint64(1)).Once()

	res, err := s.im.Buy(s.ctx, 4, "0.5")
	s.Require().NoError(err)
	s.Equal(&txn.Outcome{
		TokenId: 4,
		Action:  txn.ActionBuy,
		TxHash:  "0xabc",
		Message: "Successfully purchased NFT",
	}, res)
	s.Equal(notify.KindSuccess, s.lastNotification().Kind)
	s.False(s.im.IsBusy(s.ctx, 4, txn.ActionBuy))
}

func (s *txnSuite) TestBidAndListForSale() {
	s.withWallet()
	s.contract.On("Bid", mock.Anything, domain.TokenId(2), halfEth).Return(receipt, nil).Once()
	s.contract.On("ListForSale", mock.Anything, domain.TokenId(3), big.NewInt(1e18)).Return(receipt, nil).Once()
	s.refresher.On("Request", mock.Anything, mock.Anything).Return(uint64(1)).Twice()

	res, err := s.im.Bid(s.ctx, 2, "0.5")
	s.Require().NoError(err)
	s.Equal("Bid placed on NFT 2!", res.Message)

	res, err = s.im.ListForSale(s.ctx, 3, "1")
	s.Require().NoError(err)
	s.Equal("NFT 3 listed for sale at 1 ETH!", res.Message)
}

func (s *txnSuite) TestListForAuction() {
	s.withWallet()
	s.contract.On("Address").Return(marketAddr)
	s.contract.On("Approve", mock.Anything, marketAddr, domain.TokenId(5)).Return(receipt, nil).Once()
	s.contract.On("ListForAuction", mock.Anything, domain.TokenId(5), halfEth, 2*time.Hour).Return(receipt, nil).Once()
	s.refresher.On("Request", mock.Anything, "list").Return(uint64(1)).Once()

	res, err := s.im.ListForAuction(s.ctx, 5, "0.5", "2")
	s.Require().NoError(err)
	s.Equal("NFT 5 listed for auction!", res.Message)
}

func (s *txnSuite) TestListForAuctionApproveRejected() {
	s.withWallet()
	s.contract.On("Address").Return(marketAddr)
	s.contract.On("Approve", mock.Anything, marketAddr, domain.TokenId(5)).Return(nil, &chain.RevertError{
		Method: "approve",
		Reason: "caller is not token owner",
	}).Once()

	_, err := s.im.ListForAuction(s.ctx, 5, "0.5", "2")
	rejection := &txn.RejectionError{}
	s.Require().True(errors.As(err, &rejection))
	s.Equal("Failed to list NFT for auction. Check the console for details.", rejection.Message)
	s.contract.AssertNotCalled(s.T(), "ListForAuction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *txnSuite) TestEndAuctionNotEnded() {
	s.withWallet()
	s.chain.On("BlockNumber", mock.Anything).Return(uint64(10), nil).Once()
	s.contract.On("EndAuction", mock.Anything, domain.TokenId(7)).Return(nil, &chain.RevertError{
		Method: "endAuction",
		Reason: "Auction has not ended yet",
		Err:    domain.ErrTxReverted,
	}).Once()

	res, err := s.im.EndAuction(s.ctx, 7)
	s.Nil(res)
	rejection := &txn.RejectionError{}
	s.Require().True(errors.As(err, &rejection))
	s.Equal(txn.ActionEndAuction, rejection.Action)
	s.Equal("Auction has not ended yet", rejection.Reason)
	s.Equal("The auction has not ended yet. Please wait until the end time.", rejection.Message)
	s.ErrorIs(err, domain.ErrTxReverted)

	n := s.lastNotification()
	s.Equal(notify.KindError, n.Kind)
	s.Equal(rejection.Message, n.Message)
	s.False(s.im.IsBusy(s.ctx, 7, txn.ActionEndAuction))
}

func (s *txnSuite) TestEndAuctionRpcDown() {
	s.withWallet()
	s.chain.On("BlockNumber", mock.Anything).Return(uint64(0), errors.New("dial tcp: connection refused")).Once()

	_, err := s.im.EndAuction(s.ctx, 7)
	s.ErrorIs(err, domain.ErrRpcUnavailable)
}

func (s *txnSuite) TestBusyFlags() {
	s.withWallet()
	started := make(chan struct{})
	release := make(chan struct{})
	s.contract.On("Buy", mock.Anything, domain.TokenId(1), halfEth).Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(receipt, nil).Once()
	s.contract.On("Bid", mock.Anything, domain.TokenId(1), halfEth).Return(receipt, nil).Once()
	s.contract.On("Buy", mock.Anything, domain.TokenId(2), halfEth).Return(receipt, nil).Once()
	s.refresher.On("Request", mock.Anything, mock.Anything).Return(uint64(1)).Times(3)

	done := make(chan error)
	go func() {
		_, err := s.im.Buy(s.ctx, 1, "0.5")
		done <- err
	}()
	<-started

	s.True(s.im.IsBusy(s.ctx, 1, txn.ActionBuy))
	s.Equal([]txn.Action{txn.ActionBuy}, s.im.Pending(s.ctx, 1))

	_, err := s.im.Buy(s.ctx, 1, "0.5")
	s.ErrorIs(err, domain.ErrActionInProgress)

	_, err = s.im.Bid(s.ctx, 1, "0.5")
	s.NoError(err)
	_, err = s.im.Buy(s.ctx, 2, "0.5")
	s.NoError(err)

	close(release)
	s.NoError(<-done)
	s.False(s.im.IsBusy(s.ctx, 1, txn.ActionBuy))
}

func (s *txnSuite) TestBuyOutlivesCaller() {
	s.withWallet()
	started := make(chan struct{})
	release := make(chan struct{})
	var sendErr error
	s.contract.On("Buy", mock.Anything, domain.TokenId(4), halfEth).Run(func(args mock.Arguments) {
		sendCtx := args.Get(0).(bCtx.Ctx)
		close(started)
		select {
		case <-release:
		case <-sendCtx.Done():
		}
		sendErr = sendCtx.Err()
	}).Return(receipt, nil).Once()
	s.refresher.On("Request", mock.Anything, "buy").Return(uint64(1)).Once()

	c, cancel := bCtx.WithCancel(s.ctx)
	done := make(chan error)
	go func() {
		_, err := s.im.Buy(c, 4, "0.5")
		done <- err
	}()
	<-started

	// the client went away, the tx is still in flight
	cancel()
	time.Sleep(20 * time.Millisecond)
	s.True(s.im.IsBusy(s.ctx, 4, txn.ActionBuy))
	_, err := s.im.Buy(s.ctx, 4, "0.5")
	s.ErrorIs(err, domain.ErrActionInProgress)

	close(release)
	s.NoError(<-done)
	s.NoError(sendErr)
	s.False(s.im.IsBusy(s.ctx, 4, txn.ActionBuy))
	s.Equal(notify.KindSuccess, s.lastNotification().Kind)
}

func (s *txnSuite) TestBuyPending() {
	tests := []struct {
		name string
		err  error
	}{
		{"no receipt before timeout", &chain.PendingError{Method: "buyNFT", Err: context.DeadlineExceeded}},
		{"wait cancelled", context.Canceled},
	}
	s.withWallet()
	for _, tt := range tests {
		s.contract.On("Buy", mock.Anything, domain.TokenId(4), halfEth).Return(nil, tt.err).Once()
		s.refresher.On("Request", mock.Anything, "buy").Return(uint64(1)).Once()

		res, err := s.im.Buy(s.ctx, 4, "0.5")
		s.Nil(res, tt.name)
		s.ErrorIs(err, domain.ErrTxPending, tt.name)
		rejection := &txn.RejectionError{}
		s.False(errors.As(err, &rejection), tt.name)

		n := s.lastNotification()
		s.Equal(notify.KindInfo, n.Kind, tt.name)
		s.Equal(pendingMessage, n.Message, tt.name)
	}
}

func (s *txnSuite) TestDrafts() {
	_, err := s.im.Draft(s.ctx, 5)
	s.ErrorIs(err, domain.ErrNotFound)

	s.ErrorIs(s.im.SaveDraft(s.ctx, 5, txn.Draft{ListingType: "Lottery"}), domain.ErrBadParamInput)

	draft := txn.Draft{
		ListingType:   listing.ListingTypeAuction,
		StartingBid:   "0.5",
		DurationHours: "2",
	}
	s.Require().NoError(s.im.SaveDraft(s.ctx, 5, draft))
	saved, err := s.im.Draft(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(&draft, saved)

	s.withWallet()
	s.contract.On("Address").Return(marketAddr)
	s.contract.On("Approve", mock.Anything, marketAddr, domain.TokenId(5)).Return(receipt, nil).Once()
	s.contract.On("ListForAuction", mock.Anything, domain.TokenId(5), halfEth, 2*time.Hour).Return(receipt, nil).Once()
	s.refresher.On("Request", mock.Anything, "list").Return(uint64(1)).Once()

	res, err := s.im.SubmitDraft(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(txn.ActionList, res.Action)

	_, err = s.im.Draft(s.ctx, 5)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *txnSuite) TestSubmitDraftKeptOnFailure() {
	s.Require().NoError(s.im.SaveDraft(s.ctx, 6, txn.Draft{ListingType: listing.ListingTypeFixedPrice, Price: "0"}))

	_, err := s.im.SubmitDraft(s.ctx, 6)
	s.ErrorIs(err, domain.ErrInvalidPrice)

	_, err = s.im.Draft(s.ctx, 6)
	s.NoError(err)
}

func TestRejectionOf(t *testing.T) {
	endAuction := submission{
		action: txn.ActionEndAuction,
		fallback: func(reason string) string {
			return "fallback: " + reason
		},
	}
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "auction does not exist",
			err:  &chain.RevertError{Reason: "Auction does not exist"},
			want: "The auction does not exist for this NFT.",
		},
		{
			name: "not in auction",
			err:  &chain.RevertError{Reason: "NFT is not in auction"},
			want: "This NFT is not currently in an auction.",
		},
		{
			name: "already ended",
			err:  &chain.RevertError{Reason: "Auction already ended"},
			want: "The auction has already been finalized.",
		},
		{
			name: "not authorized",
			err:  &chain.RevertError{Reason: "Only seller or highest bidder can end"},
			want: "You are not authorized to end this auction. Only the seller or highest bidder can do so.",
		},
		{
			name: "insufficient funds",
			err:  errors.New("insufficient funds for gas * price + value"),
			want: "Insufficient funds for this transaction.",
		},
		{
			name: "unknown reason",
			err:  &chain.RevertError{Reason: "paused"},
			want: "fallback: paused",
		},
		{
			name: "wallet refused",
			err:  errors.New("MetaMask Tx Signature: User denied transaction signature."),
			want: "Transaction was rejected in the wallet.",
		},
		{
			name: "node rejection is not a wallet rejection",
			err:  errors.New("replacement transaction underpriced, tx rejected by txpool"),
			want: "fallback: replacement transaction underpriced, tx rejected by txpool",
		},
		{
			name: "no reason falls back to the error text",
			err:  errors.New("nonce too low"),
			want: "fallback: nonce too low",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := rejectionOf(endAuction, tt.err)
			require.Equal(t, tt.want, res.Message)
			require.Equal(t, txn.ActionEndAuction, res.Action)
		})
	}
}
