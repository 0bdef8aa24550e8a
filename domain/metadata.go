package domain

import (
	"fmt"

	"github.com/x-xyz/marketclient/base/ctx"
)

const (
	TraitCategory = "Category"
	TraitPrice    = "Price"

	UnknownCategory = "Unknown"
)

type Attribute struct {
	TraitType string      `json:"trait_type"`
	Value     interface{} `json:"value"`
}

// Metadata is the off-chain document a token uri points to
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Attributes  []Attribute `json:"attributes"`
}

// Trait returns the value of the first attribute with the given trait type
func (m *Metadata) Trait(traitType string) (string, bool) {
	for _, attr := range m.Attributes {
		if attr.TraitType != traitType || attr.Value == nil {
			continue
		}
		return fmt.Sprint(attr.Value), true
	}
	return "", false
}

func (m *Metadata) Category() string {
	if c, ok := m.Trait(TraitCategory); ok && len(c) > 0 {
		return c
	}
	return UnknownCategory
}

func (m *Metadata) Price() (string, bool) {
	return m.Trait(TraitPrice)
}

type MetadataUseCase interface {
	// GetFromUrl resolves a content-addressed uri into its metadata document
	GetFromUrl(ctx.Ctx, string) (*Metadata, error)
	// GatewayUrl rewrites an ipfs:// uri into a fetchable gateway url
	GatewayUrl(string) string
}
