package pinata

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketclient/base/ctx"
)

func newServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Service) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, New(&Cfg{ApiKey: "key", ApiSecret: "secret", Endpoint: srv.URL + "/", HttpClient: srv.Client()})
}

func TestPinFile(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	_, im := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal(pinPath, r.URL.Path)
		req.Equal("key", r.Header.Get("pinata_api_key"))
		req.Equal("secret", r.Header.Get("pinata_secret_api_key"))

		file, header, err := r.FormFile("file")
		req.NoError(err)
		defer file.Close()
		body, err := io.ReadAll(file)
		req.NoError(err)
		req.Equal("sunset.png", header.Filename)
		req.Equal([]byte("png-bytes"), body)

		meta := PinataMetadata{}
		req.NoError(json.Unmarshal([]byte(r.FormValue("pinataMetadata")), &meta))
		req.Equal("sunset.png", meta.Name)

		w.Write([]byte(`{"IpfsHash":"QmImage","PinSize":9}`))
	})

	cid, err := im.PinFile(c, "sunset.png", []byte("png-bytes"))
	req.NoError(err)
	req.Equal("QmImage", cid)
}

func TestPinJson(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	_, im := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		req.Equal(pinJsonPath, r.URL.Path)
		req.Equal("application/json", r.Header.Get("Content-Type"))

		body := struct {
			Metadata PinataMetadata         `json:"pinataMetadata"`
			Content  map[string]interface{} `json:"pinataContent"`
		}{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal("Sunset", body.Metadata.Name)
		req.Equal("ipfs://QmImage", body.Content["image"])

		w.Write([]byte(`{"IpfsHash":"QmMeta"}`))
	})

	cid, err := im.PinJson(c, "Sunset", map[string]interface{}{"name": "Sunset", "image": "ipfs://QmImage"})
	req.NoError(err)
	req.Equal("QmMeta", cid)
}

func TestPinFailures(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	_, im := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid API key"}`))
	})
	_, err := im.PinJson(c, "x", map[string]string{})
	req.Equal(ErrRequestFailed, err)

	noKeys := New(&Cfg{Endpoint: "http://127.0.0.1:0"})
	_, err = noKeys.PinFile(c, "a.png", []byte("a"))
	req.Equal(ErrMissingApiKeys, err)
}
