package domain

import (
	"github.com/x-xyz/marketclient/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// ToGatewayUrl maps a content-addressed uri to an http url, other uris are returned as is
	ToGatewayUrl(string) string
}

// PinningService uploads content to a pinning provider and returns its content id
type PinningService interface {
	PinFile(c ctx.Ctx, fileName string, content []byte) (string, error)
	PinJson(c ctx.Ctx, name string, content interface{}) (string, error)
}
