package repository

import (
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/keys"
	"github.com/x-xyz/marketclient/domain/txn"
	"github.com/x-xyz/marketclient/service/cache"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

const DefaultDraftTtl = 24 * time.Hour

type draftRepo struct {
	cache cache.Service
}

// NewDraftRepo stores drafts in p, keyed by token id. Drafts are dropped after ttl.
func NewDraftRepo(p provider.Provider, ttl time.Duration) txn.DraftRepo {
	if ttl <= 0 {
		ttl = DefaultDraftTtl
	}
	return &draftRepo{
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxDraft,
			Cache: p,
		}),
	}
}

func (r *draftRepo) Save(c ctx.Ctx, id domain.TokenId, draft txn.Draft) error {
	return r.cache.Set(c, id.String(), draft)
}

func (r *draftRepo) Get(c ctx.Ctx, id domain.TokenId) (*txn.Draft, error) {
	res := &txn.Draft{}
	if err := r.cache.Get(c, id.String(), res); err == cache.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *draftRepo) Delete(c ctx.Ctx, id domain.TokenId) error {
	return r.cache.Del(c, id.String())
}
