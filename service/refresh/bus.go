package refresh

import (
	"sync/atomic"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
)

// Request asks for a new reconcile pass. Token grows with every request so a
// subscriber can tell whether its last pass already covers a request.
type Request struct {
	Token  uint64
	Reason string
}

// Bus coalesces refresh requests: while one is waiting to be picked up, newer
// requests replace it instead of queueing another pass.
type Bus struct {
	token uint64
	ch    chan Request
}

func NewBus() *Bus {
	return &Bus{
		ch: make(chan Request, 1),
	}
}

func (b *Bus) Request(c ctx.Ctx, reason string) uint64 {
	req := Request{
		Token:  atomic.AddUint64(&b.token, 1),
		Reason: reason,
	}
	for {
		select {
		case b.ch <- req:
			c.WithFields(log.Fields{
				"token":  req.Token,
				"reason": reason,
			}).Debug("refresh requested")
			return req.Token
		default:
		}
		// drop the stale request, ours supersedes it
		select {
		case <-b.ch:
		default:
		}
	}
}

func (b *Bus) Requests() <-chan Request {
	return b.ch
}

// Latest returns the token of the most recent request
func (b *Bus) Latest() uint64 {
	return atomic.LoadUint64(&b.token)
}
