package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct{}

// NewDataUriReaderRepo decodes inline metadata, as written by contracts that keep
// their token uri on chain
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>
func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("%q is not a data uri: %w", uri, domain.ErrUnsupportedSchema)
	}
	header, data, found := cut(strings.TrimPrefix(uri, dataUriSchema), ",")
	if !found || len(data) == 0 {
		return nil, xerrors.New("no data part provided")
	}

	if strings.HasSuffix(header, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, xerrors.Errorf("invalid base64 data: %w", err)
		}
		return decoded, nil
	}

	// plain data may be percent-encoded, keep it as is when it is not
	if unescaped, err := url.PathUnescape(data); err == nil {
		return []byte(unescaped), nil
	}
	return []byte(data), nil
}

func cut(s, sep string) (before, after string, found bool) {
	if i := strings.Index(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
