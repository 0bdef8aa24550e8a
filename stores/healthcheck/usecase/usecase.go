package usecase

import (
	"github.com/x-xyz/marketclient/base/ctx"
	hcdomain "github.com/x-xyz/marketclient/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

func (im *impl) Check(c ctx.Ctx) *hcdomain.Status {
	res := &hcdomain.Status{
		Healthy: true,
		Rpc:     hcdomain.StateOk,
		Cache:   hcdomain.StateOk,
		Wallet:  hcdomain.StateOk,
	}

	block, err := im.repo.PingRpc(c)
	if err != nil {
		res.Healthy = false
		res.Rpc = hcdomain.StateUnavailable
	}
	res.Block = block

	if enabled, err := im.repo.PingCache(c); !enabled {
		res.Cache = hcdomain.StateDisabled
	} else if err != nil {
		res.Healthy = false
		res.Cache = hcdomain.StateUnavailable
	}

	if !im.repo.HasWallet() {
		res.Wallet = hcdomain.StateDisabled
	}
	return res
}
