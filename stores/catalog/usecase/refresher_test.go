package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/listing/mocks"
	"github.com/x-xyz/marketclient/service/refresh"
)

func TestRunRefresher(t *testing.T) {
	req := require.New(t)
	uc := &mocks.Usecase{}
	bus := refresh.NewBus()
	c, cancel := bCtx.WithCancel(bCtx.Background())

	passes := make(chan struct{}, 2)
	uc.On("Refresh", mock.Anything).Return(nil, errors.New("rpc down")).Once().Run(func(mock.Arguments) {
		passes <- struct{}{}
	})
	uc.On("Refresh", mock.Anything).Return(&listing.Catalog{Version: 1}, nil).Once().Run(func(mock.Arguments) {
		passes <- struct{}{}
	})

	done := make(chan struct{})
	go func() {
		RunRefresher(c, uc, bus.Requests())
		close(done)
	}()

	// a failed pass does not stop the loop
	bus.Request(c, "first")
	<-passes
	bus.Request(c, "second")
	<-passes

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("refresher did not stop")
	}
	uc.AssertExpectations(t)
}
