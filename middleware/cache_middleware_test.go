package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/service/cache/provider"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	cache provider.Provider
}

func (s *cacheMiddlewareSuite) SetupSuite() {
	s.cache = primitive.NewPrimitive("httpCacheMiddleware", 1)
	SetupCache(s.cache)
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) TestCacheMiddleware() {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/categories?b=2&a=1", nil)
	rec := httptest.NewRecorder()
	res := "Hello, World"
	h := func(c echo.Context) error {
		return c.String(http.StatusOK, res)
	}

	c := e.NewContext(req, rec)
	cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
	c.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h)(c)) {
		s.Equal(http.StatusOK, rec.Code)
		s.Equal(res, rec.Body.String())
	}

	req2 := httptest.NewRequest(http.MethodGet, "/categories?a=1&b=2", nil)
	rec2 := httptest.NewRecorder()
	res2 := "Hello, again"
	h2 := func(c echo.Context) error {
		return c.String(http.StatusOK, res2)
	}
	c2 := e.NewContext(req2, rec2)
	c2.Set("ctx", cont)

	if s.NoError(CacheHttp(30 * time.Second)(h2)(c2)) {
		s.Equal(http.StatusOK, rec2.Code)
		s.Equal(res, rec2.Body.String())
	}

	key := generateKey(req.URL.String())
	_, _, err := s.cache.Get(cont, "httpCacheMiddleware:"+key)
	s.Nil(err)
}

func (s *cacheMiddlewareSuite) TestErrorNotCached() {
	e := echo.New()
	cont := ctx.Background()

	fail := func(c echo.Context) error {
		return c.String(http.StatusBadGateway, "upstream down")
	}
	req := httptest.NewRequest(http.MethodGet, "/catalog?sort=lowToHigh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("ctx", cont)
	s.NoError(CacheHttp(30 * time.Second)(fail)(c))
	s.Equal(http.StatusBadGateway, rec.Code)

	key := generateKey(req.URL.String())
	_, _, err := s.cache.Get(cont, "httpCacheMiddleware:"+key)
	s.Equal(provider.ErrNotFound, err)
}
