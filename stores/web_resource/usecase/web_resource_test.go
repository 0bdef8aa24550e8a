package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/mocks"
)

func Test_getIpfsUrl(t *testing.T) {
	type args struct {
		url string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "pinata",
			args: args{
				url: "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			},
			want: "ipfs://QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "pinata dedicated",
			args: args{
				url: "https://womenandweapons.mypinata.cloud/ipfs/QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
			},
			want: "ipfs://QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
		},
		{
			name: "ipfs.io",
			args: args{
				url: "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			},
			want: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
		},
		{
			name: "cloudflare",
			args: args{
				url: "https://cloudflare-ipfs.com/ipfs/QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
			},
			want: "ipfs://QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
		},
		{
			name: "noop",
			args: args{
				url: "https://some.url",
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getIpfsUrl(tt.args.url); got != tt.want {
				t.Errorf("getIpfsUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestToGatewayUrl(t *testing.T) {
	req := require.New(t)
	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{Gateway: "https://gateway.pinata.cloud/ipfs/"})

	req.Equal("https://gateway.pinata.cloud/ipfs/QmImage", u.ToGatewayUrl("ipfs://QmImage"))
	req.Equal("https://gateway.pinata.cloud/ipfs/QmDir/1.png", u.ToGatewayUrl("ipfs://ipfs/QmDir/1.png"))
	req.Equal("https://example.com/a.png", u.ToGatewayUrl("https://example.com/a.png"))

	def := NewWebResourceUseCase(&WebResourceUseCaseCfg{})
	req.Equal(DefaultGateway+"/QmImage", def.ToGatewayUrl("ipfs://QmImage"))
}

func TestGet(t *testing.T) {
	ctx := bCtx.Background()
	doc := []byte(`{"name":"Sunset"}`)

	tests := []struct {
		name      string
		url       string
		setup     func(httpReader, ipfsReader, dataReader *mocks.WebResourceReaderRepository)
		want      []byte
		expectErr error
	}{
		{
			name: "ipfs",
			url:  "ipfs://QmMeta",
			setup: func(_, ipfsReader, _ *mocks.WebResourceReaderRepository) {
				ipfsReader.On("Get", mock.Anything, "QmMeta").Return(doc, nil).Once()
			},
			want: doc,
		},
		{
			name: "gateway url is read as ipfs",
			url:  "https://myname.mypinata.cloud/ipfs/QmMeta",
			setup: func(_, ipfsReader, _ *mocks.WebResourceReaderRepository) {
				ipfsReader.On("Get", mock.Anything, "QmMeta").Return(doc, nil).Once()
			},
			want: doc,
		},
		{
			name: "https",
			url:  "https://example.com/meta.json",
			setup: func(httpReader, _, _ *mocks.WebResourceReaderRepository) {
				httpReader.On("Get", mock.Anything, "https://example.com/meta.json").Return(doc, nil).Once()
			},
			want: doc,
		},
		{
			name: "data uri",
			url:  `data:application/json,{"name":"Sunset"}`,
			setup: func(_, _, dataReader *mocks.WebResourceReaderRepository) {
				dataReader.On("Get", mock.Anything, `data:application/json,{"name":"Sunset"}`).Return(doc, nil).Once()
			},
			want: doc,
		},
		{
			name:      "unsupported",
			url:       "ar://abc",
			setup:     func(_, _, _ *mocks.WebResourceReaderRepository) {},
			expectErr: domain.ErrUnsupportedSchema,
		},
		{
			name: "fetch error passes through",
			url:  "ipfs://QmGone",
			setup: func(_, ipfsReader, _ *mocks.WebResourceReaderRepository) {
				ipfsReader.On("Get", mock.Anything, "QmGone").Return(nil, &domain.FetchError{Url: "x", StatusCode: 404}).Once()
			},
			expectErr: &domain.FetchError{Url: "x", StatusCode: 404},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			httpReader := &mocks.WebResourceReaderRepository{}
			ipfsReader := &mocks.WebResourceReaderRepository{}
			dataReader := &mocks.WebResourceReaderRepository{}
			tt.setup(httpReader, ipfsReader, dataReader)

			u := NewWebResourceUseCase(&WebResourceUseCaseCfg{
				HttpReader:    httpReader,
				IpfsReader:    ipfsReader,
				DataUriReader: dataReader,
			})
			got, err := u.Get(ctx, tt.url)
			if tt.expectErr != nil {
				req.Equal(tt.expectErr, err)
			} else {
				req.NoError(err)
				req.Equal(tt.want, got)
			}
			httpReader.AssertExpectations(t)
			ipfsReader.AssertExpectations(t)
			dataReader.AssertExpectations(t)
		})
	}
}

func TestGetJson(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	ipfsReader := &mocks.WebResourceReaderRepository{}
	ipfsReader.On("Get", mock.Anything, "QmBroken").Return([]byte(`{"name":`), nil)
	ipfsReader.On("Get", mock.Anything, "QmDown").Return(nil, errors.New("timeout"))

	u := NewWebResourceUseCase(&WebResourceUseCaseCfg{IpfsReader: ipfsReader})
	_, err := u.GetJson(ctx, "ipfs://QmBroken")
	req.Equal(domain.ErrInvalidJsonFormat, err)

	_, err = u.GetJson(ctx, "ipfs://QmDown")
	req.EqualError(err, "timeout")
}
