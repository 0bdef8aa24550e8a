package coingecko

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain/keys"
	"github.com/x-xyz/marketclient/service/cache"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
)

func NewClient(cfg *ClientCfg) Client {
	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	api := cfg.Api
	if len(api) == 0 {
		api = DefaultApi
	}
	ttl := cfg.CacheTtl
	if ttl <= 0 {
		ttl = time.Minute
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &client{
		client:  httpClient,
		api:     api,
		timeout: timeout,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   ttl,
			Pfx:   keys.PfxCoinGecko,
			Cache: primitive.NewPrimitive(keys.PfxCoinGecko, 1),
		}),
	}
}

type client struct {
	client  *http.Client
	api     string
	timeout time.Duration
	cache   cache.Service
}

func (c *client) GetPrice(ctx bCtx.Ctx, id string) (decimal.Decimal, error) {
	key := keys.RedisKey(id)
	var price decimal.Decimal
	if err := c.cache.GetByFunc(ctx, key, &price, func() (interface{}, error) {
		return c.getPrice(ctx, id)
	}); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func (c *client) getPrice(ctx bCtx.Ctx, id string) (*decimal.Decimal, error) {
	params := url.Values{
		"vs_currency": {"usd"},
		"ids":         {id},
	}
	url := fmt.Sprintf("%s/coins/markets?%s", c.api, params.Encode())
	data, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	resp := Markets{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	if len(resp) != 1 {
		ctx.WithField("len", len(resp)).Error(ErrMarketsLen)
		return nil, ErrMarketsLen
	}
	price := decimal.NewFromFloat(resp[0].CurrentPrice)
	return &price, nil
}

func (c *client) GetPriceAtDate(ctx bCtx.Ctx, id string, date string) (decimal.Decimal, error) {
	key := keys.RedisKey("history", id, date)
	var price decimal.Decimal
	if err := c.cache.GetByFunc(ctx, key, &price, func() (interface{}, error) {
		return c.getPriceAtDate(ctx, id, date)
	}); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func (c *client) getPriceAtDate(ctx bCtx.Ctx, id string, date string) (*decimal.Decimal, error) {
	params := url.Values{
		"date": {date},
	}
	u := fmt.Sprintf("%s/coins/%s/history?%s", c.api, url.PathEscape(id), params.Encode())

	data, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	resp := History{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}

	price := decimal.NewFromFloat(resp.MarketData.CurrentPrice.Usd)
	return &price, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
