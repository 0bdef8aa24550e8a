package repository

import (
	"io/ioutil"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
)

type ipfsNodeApiReaderRepo struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

func NewIpfsNodeApiReaderRepo(s *ipfsapi.Shell, timeout time.Duration) domain.WebResourceReaderRepository {
	return &ipfsNodeApiReaderRepo{shell: s, ctxTimeout: timeout}
}

func (r *ipfsNodeApiReaderRepo) Get(c ctx.Ctx, cid string) ([]byte, error) {
	ctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", cid).Send(ctx)
	if err != nil {
		c.WithFields(log.Fields{
			"cid": cid,
			"err": err,
		}).Error("shell.Request failed")
		return nil, err
	}
	defer resp.Close()
	if resp.Error != nil {
		c.WithField("resp.Error", resp.Error).Error("shell.Request failed")
		return nil, resp.Error
	}
	return ioutil.ReadAll(resp.Output)
}

type fallbackReaderRepo struct {
	readers []domain.WebResourceReaderRepository
}

// NewFallbackReaderRepo tries each reader in order and returns the first success
func NewFallbackReaderRepo(readers ...domain.WebResourceReaderRepository) domain.WebResourceReaderRepository {
	return &fallbackReaderRepo{readers: readers}
}

func (r *fallbackReaderRepo) Get(c ctx.Ctx, cid string) ([]byte, error) {
	var lastErr error = domain.ErrNotFound
	for i, reader := range r.readers {
		data, err := reader.Get(c, cid)
		if err == nil {
			return data, nil
		}
		c.WithFields(log.Fields{
			"cid":    cid,
			"reader": i,
			"err":    err,
		}).Info("reader failed, trying next")
		lastErr = err
	}
	return nil, lastErr
}
