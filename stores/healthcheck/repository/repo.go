package repository

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	hcdomain "github.com/x-xyz/marketclient/domain/healthcheck"
	"github.com/x-xyz/marketclient/domain/keys"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

const pingTimeout = 2 * time.Second

// ChainReader is the part of chain.Client the health check needs
type ChainReader interface {
	BlockNumber(ctx.Ctx) (uint64, error)
	Account() (common.Address, bool)
}

type impl struct {
	chain ChainReader
	cache provider.Provider
}

func New(chain ChainReader, cache provider.Provider) hcdomain.HealthCheckRepo {
	return &impl{
		chain: chain,
		cache: cache,
	}
}

func (im *impl) PingRpc(c ctx.Ctx) (uint64, error) {
	timeoutCtx, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	block, err := im.chain.BlockNumber(timeoutCtx)
	if err != nil {
		c.WithField("err", err).Error("ping rpc error")
		return 0, err
	}
	c.WithFields(log.Fields{"block": block}).Debug("ping rpc")
	return block, nil
}

func (im *impl) PingCache(c ctx.Ctx) (bool, error) {
	if im.cache == nil {
		return false, nil
	}
	timeoutCtx, cancel := ctx.WithTimeout(c, pingTimeout)
	defer cancel()
	if err := im.cache.Set(timeoutCtx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		c.WithField("err", err).Error("test cache set failed")
		return true, err
	}
	return true, nil
}

func (im *impl) HasWallet() bool {
	_, ok := im.chain.Account()
	return ok
}
