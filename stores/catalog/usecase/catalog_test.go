package usecase

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	pricefomatter "github.com/x-xyz/marketclient/base/price_fomatter"
	pfMocks "github.com/x-xyz/marketclient/base/price_fomatter/mocks"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/mocks"
)

var (
	now    = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	alice  = domain.Address("0x70997970c51812dc3a010c7d01b50e0d17dc79c8")
	bob    = domain.Address("0x3c44cdddb6a900fa2b585dd299e03d12fa4293bc")
	oneEth = big.NewInt(1e18)
)

// snapshotLog keeps the versions a refresh published
type snapshotLog struct {
	mu       sync.Mutex
	versions []uint64
}

func (l *snapshotLog) CatalogRefreshed(_ bCtx.Ctx, snapshot *listing.Catalog) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.versions = append(l.versions, snapshot.Version)
}

func (l *snapshotLog) Versions() []uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]uint64{}, l.versions...)
}

type catalogSuite struct {
	suite.Suite
	ctx      bCtx.Ctx
	contract *mocks.MarketplaceContract
	metadata *mocks.MetadataUseCase
	pf       *pfMocks.PriceFormatter
	refreshed *snapshotLog
	im        listing.Usecase
}

func (s *catalogSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.contract = &mocks.MarketplaceContract{}
	s.metadata = &mocks.MetadataUseCase{}
	s.pf = &pfMocks.PriceFormatter{}
	s.refreshed = &snapshotLog{}
	s.im = NewCatalogUseCase(&CatalogUseCaseCfg{
		Contract:       s.contract,
		Metadata:       s.metadata,
		PriceFormatter: s.pf,
		Listeners:      []listing.RefreshListener{s.refreshed},
		Now:            func() time.Time { return now },
	})
	s.metadata.On("GatewayUrl", mock.Anything).Return(func(uri string) string {
		return "https://gateway.pinata.cloud/ipfs/" + uri[len("ipfs://"):]
	}).Maybe()
}

func (s *catalogSuite) TearDownTest() {
	s.contract.AssertExpectations(s.T())
	s.metadata.AssertExpectations(s.T())
	s.pf.AssertExpectations(s.T())
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) mockToken(id domain.TokenId, uri string, status listing.Status, owner domain.Address, auction *domain.AuctionState) {
	s.contract.On("TokenURI", mock.Anything, id).Return(uri, nil).Once()
	s.contract.On("NftDetails", mock.Anything, id).Return(&domain.NftDetails{
		Title:  "token " + id.String(),
		Price:  oneEth,
		Status: uint8(status),
	}, nil).Once()
	if auction != nil {
		s.contract.On("Auction", mock.Anything, id).Return(auction, nil).Once()
	}
	s.contract.On("OwnerOf", mock.Anything, id).Return(owner, nil).Once()
}

func (s *catalogSuite) mockMetadata(uri, name, category string) {
	s.metadata.On("GetFromUrl", mock.Anything, uri).Return(&domain.Metadata{
		Name:        name,
		Description: name + " description",
		Image:       "ipfs://QmImage" + name,
		Attributes:  []domain.Attribute{{TraitType: domain.TraitCategory, Value: category}},
	}, nil).Once()
}

func (s *catalogSuite) TestReconcileEmpty() {
	s.contract.On("TotalMinted", mock.Anything).Return(uint64(0), nil).Once()

	res, err := s.im.Reconcile(s.ctx)
	s.NoError(err)
	s.Empty(res)
	s.contract.AssertNotCalled(s.T(), "TokenURI", mock.Anything, mock.Anything)
}

func (s *catalogSuite) TestReconcileTotalMintedFailed() {
	s.contract.On("TotalMinted", mock.Anything).Return(uint64(0), domain.ErrRpcUnavailable).Once()

	_, err := s.im.Reconcile(s.ctx)
	s.ErrorIs(err, domain.ErrRpcUnavailable)
}

func (s *catalogSuite) TestReconcile() {
	s.contract.On("TotalMinted", mock.Anything).Return(uint64(6), nil).Once()

	// 1: fixed price
	s.mockToken(1, "ipfs://Qm1", listing.StatusFixedPrice, alice, nil)
	s.mockMetadata("ipfs://Qm1", "Sunset", "Digital Art")
	// 2: not listed
	s.mockToken(2, "ipfs://Qm2", listing.StatusNotListed, alice, nil)
	// 3: running auction
	s.mockToken(3, "ipfs://Qm3", listing.StatusAuction, alice, &domain.AuctionState{
		Seller:        alice,
		StartingBid:   big.NewInt(1e17),
		HighestBid:    big.NewInt(2e17),
		HighestBidder: bob,
		EndTime:       now.Add(time.Hour),
	})
	s.mockMetadata("ipfs://Qm3", "Beat", "Music & Audio")
	// 4: auction past its end time
	s.mockToken(4, "ipfs://Qm4", listing.StatusAuction, alice, &domain.AuctionState{
		Seller:  alice,
		EndTime: now,
	})
	// 5: not content addressed
	s.contract.On("TokenURI", mock.Anything, domain.TokenId(5)).Return("https://example.com/5.json", nil).Once()
	// 6: metadata unreachable
	s.mockToken(6, "ipfs://Qm6", listing.StatusFixedPrice, bob, nil)
	s.metadata.On("GetFromUrl", mock.Anything, "ipfs://Qm6").Return(nil, errors.New("gateway timeout")).Once()

	res, err := s.im.Reconcile(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(res, 2)

	s.Equal(listing.Listing{
		Id:          1,
		Name:        "Sunset",
		Description: "Sunset description",
		Image:       "https://gateway.pinata.cloud/ipfs/QmImageSunset",
		ImageUri:    "ipfs://QmImageSunset",
		Category:    "Digital Art",
		Price:       pricefomatter.FormatEther(oneEth),
		Owner:       alice,
		Status:      listing.StatusFixedPrice,
		ListingType: listing.ListingTypeFixedPrice,
	}, res[0])

	s.Equal(domain.TokenId(3), res[1].Id)
	s.Equal(listing.ListingTypeAuction, res[1].ListingType)
	s.Require().NotNil(res[1].Auction)
	s.Equal(bob, res[1].Auction.HighestBidder)
	s.True(decimal.RequireFromString("0.2").Equal(res[1].Auction.HighestBid))
}

func (s *catalogSuite) TestProfile() {
	s.contract.On("TotalMinted", mock.Anything).Return(uint64(3), nil).Once()

	// owned by bob, not listed
	s.mockToken(1, "ipfs://Qm1", listing.StatusNotListed, bob, nil)
	s.mockMetadata("ipfs://Qm1", "Mine", "Photography")
	// expired auction where bob is the highest bidder
	s.mockToken(2, "ipfs://Qm2", listing.StatusAuction, alice, &domain.AuctionState{
		Seller:        alice,
		HighestBid:    oneEth,
		HighestBidder: bob,
		EndTime:       now.Add(-time.Hour),
	})
	s.mockMetadata("ipfs://Qm2", "Won", "Digital Art")
	// unrelated
	s.mockToken(3, "ipfs://Qm3", listing.StatusFixedPrice, alice, nil)

	res, err := s.im.Profile(s.ctx, "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	s.Require().NoError(err)
	s.Equal(bob, res.User)
	s.Require().Len(res.Owned, 1)
	s.Equal("Mine", res.Owned[0].Name)
	s.Require().Len(res.Auctions, 1)
	s.Equal("Won", res.Auctions[0].Name)
}

func (s *catalogSuite) TestProfileInvalidUser() {
	_, err := s.im.Profile(s.ctx, "")
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *catalogSuite) TestRefreshAndSearch() {
	items, version := s.im.Search(s.ctx, listing.Query{})
	s.Empty(items)
	s.Equal(uint64(0), version)
	s.Nil(s.im.Snapshot())

	s.contract.On("TotalMinted", mock.Anything).Return(uint64(2), nil).Twice()
	for i := 0; i < 2; i++ {
		s.mockToken(1, "ipfs://Qm1", listing.StatusFixedPrice, alice, nil)
		s.mockMetadata("ipfs://Qm1", "Sunset", "Digital Art")
		s.mockToken(2, "ipfs://Qm2", listing.StatusFixedPrice, bob, nil)
		s.mockMetadata("ipfs://Qm2", "Beat", "Music & Audio")
	}
	s.pf.On("ToUsd", mock.Anything, mock.Anything).Return(decimal.RequireFromString("3012.345"), nil)

	first, err := s.im.Refresh(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(1), first.Version)
	s.Equal(now, first.RefreshedAt)
	s.Require().Len(first.Listings, 2)
	s.Require().NotNil(first.Listings[0].PriceInUsd)
	s.Equal("3012.35", first.Listings[0].PriceInUsd.String())

	second, err := s.im.Refresh(s.ctx)
	s.Require().NoError(err)
	s.Equal(uint64(2), second.Version)
	s.Equal(second, s.im.Snapshot())

	s.Equal([]uint64{1, 2}, s.refreshed.Versions())

	items, version = s.im.Search(s.ctx, listing.Query{Search: "  BEAT "})
	s.Equal(uint64(2), version)
	s.Require().Len(items, 1)
	s.Equal(domain.TokenId(2), items[0].Id)
}

func (s *catalogSuite) TestRefreshKeepsSnapshotOnFailure() {
	s.contract.On("TotalMinted", mock.Anything).Return(uint64(0), nil).Once()
	first, err := s.im.Refresh(s.ctx)
	s.Require().NoError(err)

	s.contract.On("TotalMinted", mock.Anything).Return(uint64(0), domain.ErrRpcUnavailable).Once()
	_, err = s.im.Refresh(s.ctx)
	s.Error(err)
	s.Equal(first, s.im.Snapshot())
	s.Equal([]uint64{1}, s.refreshed.Versions())
}

func (s *catalogSuite) tokenURICalls() []domain.TokenId {
	ids := []domain.TokenId{}
	for _, call := range s.contract.Calls {
		if call.Method == "TokenURI" {
			ids = append(ids, call.Arguments.Get(1).(domain.TokenId))
		}
	}
	return ids
}

func (s *catalogSuite) TestReconcilePacesReads() {
	delay := 30 * time.Millisecond
	im := NewCatalogUseCase(&CatalogUseCaseCfg{
		Contract:  s.contract,
		Metadata:  s.metadata,
		ReadDelay: delay,
		Now:       func() time.Time { return now },
	})
	s.contract.On("TotalMinted", mock.Anything).Return(uint64(3), nil).Once()
	for i := domain.TokenId(1); i <= 3; i++ {
		uri := "ipfs://Qm" + i.String()
		s.mockToken(i, uri, listing.StatusFixedPrice, alice, nil)
		s.mockMetadata(uri, "token"+i.String(), "Photography")
	}

	start := time.Now()
	res, err := im.Reconcile(s.ctx)
	elapsed := time.Since(start)

	s.Require().NoError(err)
	s.GreaterOrEqual(elapsed, 2*delay)
	s.Require().Len(res, 3)
	for i, item := range res {
		s.Equal(domain.TokenId(i+1), item.Id)
	}
	s.Equal([]domain.TokenId{1, 2, 3}, s.tokenURICalls())
}

func (s *catalogSuite) TestReconcileCancelledMidPass() {
	im := NewCatalogUseCase(&CatalogUseCaseCfg{
		Contract:  s.contract,
		Metadata:  s.metadata,
		ReadDelay: time.Hour,
		Now:       func() time.Time { return now },
	})
	s.contract.On("TotalMinted", mock.Anything).Return(uint64(3), nil).Once()
	s.mockToken(1, "ipfs://Qm1", listing.StatusFixedPrice, alice, nil)
	s.mockMetadata("ipfs://Qm1", "Sunset", "Digital Art")

	c, cancel := bCtx.WithCancel(s.ctx)
	done := make(chan error)
	go func() {
		_, err := im.Reconcile(c)
		done <- err
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.ErrorIs(err, context.Canceled)
	case <-time.After(time.Second):
		s.Fail("reconcile did not stop")
	}
	s.Equal([]domain.TokenId{1}, s.tokenURICalls())
}
