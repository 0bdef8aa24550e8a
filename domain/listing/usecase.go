package listing

import (
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

type Usecase interface {
	// Reconcile enumerates every minted token and returns the active listings
	Reconcile(ctx.Ctx) ([]Listing, error)
	// Profile returns tokens owned by user and auctions user takes part in
	Profile(ctx.Ctx, domain.Address) (*Profile, error)
	// Refresh reconciles and replaces the current snapshot
	Refresh(ctx.Ctx) (*Catalog, error)
	// Snapshot returns the last refreshed catalog, nil before the first refresh
	Snapshot() *Catalog
	Search(ctx.Ctx, Query) ([]Listing, uint64)
}

// RefreshRequester asks the catalog to be reconciled again. The returned token
// increases with every request.
type RefreshRequester interface {
	Request(c ctx.Ctx, reason string) uint64
}

// RefreshListener hears about every snapshot a successful refresh publishes
type RefreshListener interface {
	CatalogRefreshed(c ctx.Ctx, snapshot *Catalog)
}
