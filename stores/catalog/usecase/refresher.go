package usecase

import (
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/service/refresh"
)

// RunRefresher refreshes the catalog once per request until c is done. Passes never overlap.
func RunRefresher(c bCtx.Ctx, uc listing.Usecase, requests <-chan refresh.Request) {
	for {
		select {
		case <-c.Done():
			c.Info("catalog refresher stopped")
			return
		case req := <-requests:
			l := c.WithFields(log.Fields{
				"token":  req.Token,
				"reason": req.Reason,
			})
			if _, err := uc.Refresh(bCtx.Ctx{Context: c.Context, Logger: l}); err != nil {
				l.WithField("err", err).Error("catalog refresh failed")
			}
		}
	}
}
