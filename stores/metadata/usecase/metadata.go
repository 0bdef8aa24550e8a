package usecase

import (
	"encoding/json"
	"strings"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/service/cache"
)

type MetadataUseCaseCfg struct {
	WebResource domain.WebResourceUseCase
	// Cache holds resolved ipfs documents, optional
	Cache cache.Service
}

type metadataUseCase struct {
	webResource domain.WebResourceUseCase
	cache       cache.Service
}

func NewMetadataUseCase(cfg *MetadataUseCaseCfg) domain.MetadataUseCase {
	return &metadataUseCase{
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
	}
}

func (u *metadataUseCase) GetFromUrl(c bCtx.Ctx, rawUrl string) (*domain.Metadata, error) {
	// only content-addressed documents are immutable
	if u.cache == nil || !strings.HasPrefix(rawUrl, "ipfs://") {
		return u.fetch(c, rawUrl)
	}
	res := &domain.Metadata{}
	if err := u.cache.GetByFunc(c, rawUrl, res, func() (interface{}, error) {
		return u.fetch(c, rawUrl)
	}); err != nil {
		return nil, err
	}
	return res, nil
}

func (u *metadataUseCase) GatewayUrl(uri string) string {
	return u.webResource.ToGatewayUrl(uri)
}

func (u *metadataUseCase) fetch(c bCtx.Ctx, rawUrl string) (*domain.Metadata, error) {
	data, err := u.webResource.GetJson(c, rawUrl)
	if err != nil {
		return nil, err
	}
	res := &domain.Metadata{}
	if err := json.Unmarshal(data, res); err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("json.Unmarshal failed")
		return nil, domain.ErrInvalidJsonFormat
	}
	return res, nil
}
