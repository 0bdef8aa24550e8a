package repository

import (
	"sort"
	"sync"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/txn"
)

type pendingRepo struct {
	mu      sync.Mutex
	pending map[txn.PendingKey]struct{}
}

// NewPendingRepo keeps in-flight flags in process memory, one per token and action
func NewPendingRepo() txn.PendingRepo {
	return &pendingRepo{
		pending: make(map[txn.PendingKey]struct{}),
	}
}

func (r *pendingRepo) TryMark(c ctx.Ctx, key txn.PendingKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pending[key]; ok {
		return false
	}
	r.pending[key] = struct{}{}
	return true
}

func (r *pendingRepo) Clear(c ctx.Ctx, key txn.PendingKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pending, key)
}

func (r *pendingRepo) IsPending(c ctx.Ctx, key txn.PendingKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pending[key]
	return ok
}

func (r *pendingRepo) List(c ctx.Ctx, id domain.TokenId) []txn.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := []txn.Action{}
	for key := range r.pending {
		if key.TokenId == id {
			res = append(res, key.Action)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}
