package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxMetadata is used for prefixing resolved metadata documents
	PfxMetadata = "metadata"
	// PfxEns is used for prefixing ens lookups
	PfxEns = "ens"
	// PfxCoinGecko is used for prefixing usd quotes
	PfxCoinGecko = "coingecko"
	// PfxDraft is used for prefixing unsubmitted transaction forms
	PfxDraft = "draft"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// CustomKey is used to join the customized key by componets with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by componets
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the first component of a redis key
func GetPrefix(key string) string {
	if idx := strings.Index(key, ":"); idx >= 0 {
		return key[:idx]
	}
	return key
}
