package usecase

import (
	"strings"
	"sync"
	"time"

	"github.com/x-xyz/marketclient/base/backoff"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/metrics"
	pricefomatter "github.com/x-xyz/marketclient/base/price_fomatter"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
)

const DefaultReadDelay = 500 * time.Millisecond

type CatalogUseCaseCfg struct {
	Contract domain.MarketplaceContract
	Metadata domain.MetadataUseCase
	// PriceFormatter adds usd prices when set
	PriceFormatter pricefomatter.PriceFormatter
	// Listeners are told about each new snapshot, in order
	Listeners []listing.RefreshListener
	// ReadDelay paces successive tokens, zero disables it
	ReadDelay time.Duration
	Now       func() time.Time
}

type catalogUseCase struct {
	contract       domain.MarketplaceContract
	metadata       domain.MetadataUseCase
	priceFormatter pricefomatter.PriceFormatter
	listeners      []listing.RefreshListener
	readDelay      time.Duration
	now            func() time.Time
	met            metrics.Service

	mu       sync.RWMutex
	snapshot *listing.Catalog
	version  uint64
}

func NewCatalogUseCase(cfg *CatalogUseCaseCfg) listing.Usecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &catalogUseCase{
		contract:       cfg.Contract,
		metadata:       cfg.Metadata,
		priceFormatter: cfg.PriceFormatter,
		listeners:      cfg.Listeners,
		readDelay:      cfg.ReadDelay,
		now:            now,
		met:            metrics.New("catalog"),
	}
}

// keepFunc decides from on-chain state alone whether a token is worth resolving
type keepFunc func(status listing.Status, owner domain.Address, auction *listing.AuctionInfo) bool

func (u *catalogUseCase) Reconcile(c bCtx.Ctx) ([]listing.Listing, error) {
	now := u.now()
	return u.collect(c, func(status listing.Status, _ domain.Address, auction *listing.AuctionInfo) bool {
		switch status {
		case listing.StatusFixedPrice:
			return true
		case listing.StatusAuction:
			return auction != nil && auction.Active(now)
		}
		return false
	})
}

func (u *catalogUseCase) Profile(c bCtx.Ctx, user domain.Address) (*listing.Profile, error) {
	if user.IsEmpty() {
		return nil, domain.ErrInvalidAddress
	}
	items, err := u.collect(c, func(_ listing.Status, owner domain.Address, auction *listing.AuctionInfo) bool {
		return owner.Equals(user) || (auction != nil && auction.Involves(user))
	})
	if err != nil {
		return nil, err
	}

	res := &listing.Profile{
		User:     user.ToLower(),
		Owned:    []listing.Listing{},
		Auctions: []listing.Listing{},
	}
	for _, item := range items {
		if item.Owner.Equals(user) {
			res.Owned = append(res.Owned, item)
		}
		if item.Auction != nil && item.Auction.Involves(user) {
			res.Auctions = append(res.Auctions, item)
		}
	}
	return res, nil
}

func (u *catalogUseCase) Refresh(c bCtx.Ctx) (*listing.Catalog, error) {
	defer u.met.BumpTime("refresh.time").End()

	items, err := u.Reconcile(c)
	if err != nil {
		u.met.BumpSum("refresh.err", 1)
		return nil, err
	}
	u.addUsdPrices(c, items)

	u.mu.Lock()
	u.version++
	snapshot := &listing.Catalog{
		Version:     u.version,
		RefreshedAt: u.now(),
		Listings:    items,
	}
	u.snapshot = snapshot
	u.mu.Unlock()

	u.met.BumpAvg("size", float64(len(items)))
	c.WithFields(log.Fields{
		"version":  snapshot.Version,
		"listings": len(items),
	}).Info("catalog refreshed")
	for _, l := range u.listeners {
		l.CatalogRefreshed(c, snapshot)
	}
	return snapshot, nil
}

func (u *catalogUseCase) Snapshot() *listing.Catalog {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.snapshot
}

func (u *catalogUseCase) Search(c bCtx.Ctx, q listing.Query) ([]listing.Listing, uint64) {
	snapshot := u.Snapshot()
	if snapshot == nil {
		return []listing.Listing{}, 0
	}
	return FilterAndSort(snapshot.Listings, q), snapshot.Version
}

// collect walks token ids 1..N in order. A token that fails to load is logged and skipped.
func (u *catalogUseCase) collect(c bCtx.Ctx, keep keepFunc) ([]listing.Listing, error) {
	total, err := u.contract.TotalMinted(c)
	if err != nil {
		c.WithField("err", err).Error("contract.TotalMinted failed")
		return nil, err
	}

	res := []listing.Listing{}
	pacer := backoff.NewConstant(u.readDelay)
	for i := uint64(1); i <= total; i++ {
		if i > 1 {
			if err := pacer.Backoff(c); err != nil {
				return nil, err
			}
		}
		id := domain.TokenId(i)
		item, err := u.load(c, id, keep)
		if err != nil {
			u.met.BumpSum("token.skipped", 1)
			c.WithFields(log.Fields{
				"tokenId": id,
				"err":     err,
			}).Warn("failed to load token, skipped")
			continue
		}
		if item != nil {
			res = append(res, *item)
		}
	}
	return res, nil
}

// load returns nil without error when the token is not kept
func (u *catalogUseCase) load(c bCtx.Ctx, id domain.TokenId, keep keepFunc) (*listing.Listing, error) {
	uri, err := u.contract.TokenURI(c, id)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(uri, "ipfs://") {
		c.WithFields(log.Fields{
			"tokenId": id,
			"uri":     uri,
		}).Debug("not an ipfs uri, skipped")
		return nil, nil
	}

	details, err := u.contract.NftDetails(c, id)
	if err != nil {
		return nil, err
	}
	status := listing.Status(details.Status)

	var auction *listing.AuctionInfo
	if status == listing.StatusAuction {
		state, err := u.contract.Auction(c, id)
		if err != nil {
			return nil, err
		}
		auction = toAuctionInfo(state)
	}

	owner, err := u.contract.OwnerOf(c, id)
	if err != nil {
		return nil, err
	}
	if !keep(status, owner, auction) {
		return nil, nil
	}

	meta, err := u.metadata.GetFromUrl(c, uri)
	if err != nil {
		return nil, err
	}

	return &listing.Listing{
		Id:          id,
		Name:        meta.Name,
		Description: meta.Description,
		Image:       u.metadata.GatewayUrl(meta.Image),
		ImageUri:    meta.Image,
		Category:    meta.Category(),
		Price:       pricefomatter.FormatEther(details.Price),
		Owner:       owner.ToLower(),
		Status:      status,
		ListingType: status.ListingType(),
		Auction:     auction,
	}, nil
}

// addUsdPrices stops at the first failed quote, usd prices are informative only
func (u *catalogUseCase) addUsdPrices(c bCtx.Ctx, items []listing.Listing) {
	if u.priceFormatter == nil {
		return
	}
	for i := range items {
		usd, err := u.priceFormatter.ToUsd(c, items[i].Price)
		if err != nil {
			c.WithField("err", err).Warn("priceFormatter.ToUsd failed")
			return
		}
		usd = usd.Round(2)
		items[i].PriceInUsd = &usd
	}
}

func toAuctionInfo(state *domain.AuctionState) *listing.AuctionInfo {
	return &listing.AuctionInfo{
		Seller:        state.Seller.ToLower(),
		StartingBid:   pricefomatter.FormatEther(state.StartingBid),
		HighestBid:    pricefomatter.FormatEther(state.HighestBid),
		HighestBidder: state.HighestBidder.ToLower(),
		EndTime:       state.EndTime,
		Ended:         state.Ended,
	}
}
