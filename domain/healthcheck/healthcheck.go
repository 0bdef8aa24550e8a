package healthcheck

import (
	"github.com/x-xyz/marketclient/base/ctx"
)

const (
	StateOk          = "ok"
	StateUnavailable = "unavailable"
	StateDisabled    = "disabled"
)

// Status reports each dependency. A missing wallet only disables transactions, the
// service stays healthy without one.
type Status struct {
	Healthy bool   `json:"healthy"`
	Rpc     string `json:"rpc"`
	Block   uint64 `json:"block,omitempty"`
	Cache   string `json:"cache"`
	Wallet  string `json:"wallet"`
}

type HealthCheckUsecase interface {
	Check(c ctx.Ctx) *Status
}

type HealthCheckRepo interface {
	PingRpc(c ctx.Ctx) (uint64, error)
	// PingCache returns false without error when no cache is configured
	PingCache(c ctx.Ctx) (bool, error)
	HasWallet() bool
}
