package repository

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/mocks"
)

func Test_ipfsNodeApiReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal("/api/v0/cat", r.URL.Path)
		req.Equal("QmMeta", r.URL.Query().Get("arg"))
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(sampleMetadata))
	}))
	defer srv.Close()

	r := NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(srv.URL), 5*time.Second)
	b, err := r.Get(ctx, "QmMeta")
	req.NoError(err)
	req.Equal([]byte(sampleMetadata), b)
}

func Test_fallbackReaderRepo_Get(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	node := &mocks.WebResourceReaderRepository{}
	gateway := &mocks.WebResourceReaderRepository{}
	node.On("Get", mock.Anything, "QmMeta").Return(nil, errors.New("connection refused")).Twice()
	gateway.On("Get", mock.Anything, "QmMeta").Return([]byte(sampleMetadata), nil).Once()
	gateway.On("Get", mock.Anything, "QmMeta").Return(nil, &domain.FetchError{StatusCode: 504}).Once()

	r := NewFallbackReaderRepo(node, gateway)
	b, err := r.Get(ctx, "QmMeta")
	req.NoError(err)
	req.Equal([]byte(sampleMetadata), b)

	_, err = r.Get(ctx, "QmMeta")
	req.Equal(&domain.FetchError{StatusCode: 504}, err)

	node.AssertExpectations(t)
	gateway.AssertExpectations(t)

	_, err = NewFallbackReaderRepo().Get(ctx, "QmMeta")
	req.Equal(domain.ErrNotFound, err)
}
