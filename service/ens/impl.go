package ens

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/keys"
	"github.com/x-xyz/marketclient/service/cache"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

type resolveFunc func(bind.ContractBackend, string) (common.Address, error)

type reverseResolveFunc func(bind.ContractBackend, common.Address) (string, error)

type impl struct {
	backend        bind.ContractBackend
	cache          cache.Service
	resolve        resolveFunc
	reverseResolve reverseResolveFunc
}

// New resolves names against the ens registry reachable through backend,
// answers are kept in cacheProvider for a day
func New(backend bind.ContractBackend, cacheProvider provider.Provider) ENS {
	return &impl{
		backend: backend,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   24 * time.Hour,
			Pfx:   keys.PfxEns,
			Cache: cacheProvider,
		}),
		resolve:        goens.Resolve,
		reverseResolve: goens.ReverseResolve,
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	name = strings.TrimSpace(name)
	if validator.IsValidAddress(name) {
		return domain.Address(name).ToLower(), nil
	}
	if !strings.Contains(name, ".") {
		return "", domain.ErrInvalidAddress
	}

	res := domain.Address("")
	key := keys.RedisKey("resolve", strings.ToLower(name))
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(im.backend, name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.Hex()).ToLower()
		return &val, nil
	})
	if err != nil {
		return "", err
	}
	if res.IsEmpty() {
		return "", domain.ErrNotFound
	}
	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(im.backend, common.HexToAddress(string(address)))
		if fmt.Sprint(err) == "not a resolver" || fmt.Sprint(err) == "no resolution" {
			empty := ""
			return &empty, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		return "", err
	}
	return res, nil
}
