// Package model defines the core domain types for the salescope application.
package model

import (
	"sort"
	"strings"
)

// Region represents a single sales region. Identity is the code.
type Region struct {
	Code string
	Name string
}

// Catalog is the authoritative set of valid regions, loaded once per
// session from the store and read-only afterwards.
type Catalog struct {
	byCode map[string]Region
	codes  []string
}

// NewCatalog builds a catalog from a list of regions. Later duplicates of
// the same code replace earlier ones.
func NewCatalog(regions []Region) *Catalog {
	byCode := make(map[string]Region, len(regions))
	for _, r := range regions {
		byCode[r.Code] = r
	}
	codes := make([]string, 0, len(byCode))
	for code := range byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &Catalog{byCode: byCode, codes: codes}
}

// Lookup returns the region for an exact code match.
func (c *Catalog) Lookup(code string) (Region, bool) {
	r, ok := c.byCode[code]
	return r, ok
}

// Resolve matches a token case-insensitively and returns the region with
// its canonical casing.
func (c *Catalog) Resolve(token string) (Region, bool) {
	if r, ok := c.byCode[token]; ok {
		return r, true
	}
	for _, code := range c.codes {
		if strings.EqualFold(code, token) {
			return c.byCode[code], true
		}
	}
	return Region{}, false
}

// Codes returns all region codes in ascending order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// AsMapping returns a code-to-region mapping for callers that need to
// iterate or index the catalog directly.
func (c *Catalog) AsMapping() map[string]Region {
	out := make(map[string]Region, len(c.byCode))
	for code, r := range c.byCode {
		out[code] = r
	}
	return out
}

// Len returns the number of regions in the catalog.
func (c *Catalog) Len() int {
	return len(c.codes)
}
