package pinata

import (
	"errors"
	"net/http"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

const (
	DefaultEndpoint = "https://api.pinata.cloud"
)

var (
	ErrRequestFailed  = errors.New("request failed")
	ErrMissingApiKeys = errors.New("pinata api key and secret are required")
)

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type PinOptions struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Options func(*PinOptions) error

func GetPinOptions(opts ...Options) (*PinOptions, error) {
	res := &PinOptions{}

	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}

	return res, nil
}

func WithMetadata(metadata PinataMetadata) Options {
	return func(options *PinOptions) error {
		options.Metadata = &metadata
		return nil
	}
}

func WithOptions(pinataOptions PinataOptions) Options {
	return func(options *PinOptions) error {
		options.Options = &pinataOptions
		return nil
	}
}

type Cfg struct {
	ApiKey    string
	ApiSecret string
	// Endpoint defaults to DefaultEndpoint
	Endpoint   string
	HttpClient *http.Client
	Timeout    time.Duration
}

// Service pins content and returns its cid, without the ipfs:// prefix
type Service interface {
	domain.PinningService
	Pin(c ctx.Ctx, content []byte, fileName string, opts ...Options) (string, error)
	PinValue(c ctx.Ctx, value interface{}, opts ...Options) (string, error)
}
