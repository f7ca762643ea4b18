// Package catalog holds the static manufacturer/model reference data and the
// read-only index the matcher queries. The catalog is built once at startup
// and never mutated afterwards, so it is safe to share across any number of
// suggestion sessions without locking.
package catalog

import (
	"fmt"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Category identifies one of the closed set of asset categories.
type Category string

const (
	Laptops  Category = "laptops"
	Servers  Category = "servers"
	Systems  Category = "systems"
	Networks Category = "networks"
	Printers Category = "printers"
	Other    Category = "other"
)

// Categories lists every valid category in display order.
var Categories = []Category{Laptops, Servers, Systems, Networks, Printers, Other}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case Laptops, Servers, Systems, Networks, Printers, Other:
		return true
	}
	return false
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Entry is a single matchable model-family name scoped to one manufacturer
// and one category. Keywords are not unique across entries; the matcher's
// scoring resolves ambiguity, not the data model.
type Entry struct {
	Manufacturer string
	Category     Category
	Keyword      string
}

// TypeRule maps type-indicating substrings to a sub-type name for one
// manufacturer+category. Only categories with sub-types (systems, servers)
// carry rules. The first rule in declaration order whose substring matches
// wins.
type TypeRule struct {
	Manufacturer string
	Category     Category
	Name         string
	Substrings   []string
}

type ruleKey struct {
	manufacturer string
	category     Category
}

// Catalog is the immutable keyword index. Entry order is the declaration
// order of the source data; ranking and classification tie-breaks depend on
// it, so it stays stable for the life of the process.
type Catalog struct {
	entries []Entry
	rules   map[ruleKey][]TypeRule
	trie    *patricia.Trie // lowercased keyword -> []int entry indices
}

// ManufacturerSpec is the source form of one manufacturer's catalog data,
// shared by the built-in tables and the optional TOML overlay file.
type ManufacturerSpec struct {
	Name       string         `toml:"name"`
	Categories []CategorySpec `toml:"category"`
}

// CategorySpec holds one category's keywords and optional type rules.
type CategorySpec struct {
	ID       string     `toml:"id"`
	Keywords []string   `toml:"keywords"`
	Types    []TypeSpec `toml:"type"`
}

// TypeSpec names a sub-type and the substrings that indicate it.
type TypeSpec struct {
	Name       string   `toml:"name"`
	Substrings []string `toml:"substrings"`
}

// New builds a Catalog from manufacturer specs, preserving declaration order.
// Malformed data (unknown category, blank keyword, empty rule) is rejected:
// the catalog is static configuration and a bad table is a defect, not a
// runtime condition to limp through.
func New(specs []ManufacturerSpec) (*Catalog, error) {
	c := &Catalog{
		rules: make(map[ruleKey][]TypeRule),
		trie:  patricia.NewTrie(),
	}
	for _, m := range specs {
		if strings.TrimSpace(m.Name) == "" {
			return nil, fmt.Errorf("manufacturer with empty name")
		}
		for _, cs := range m.Categories {
			cat, err := ParseCategory(cs.ID)
			if err != nil {
				return nil, fmt.Errorf("manufacturer %q: %w", m.Name, err)
			}
			for _, kw := range cs.Keywords {
				if strings.TrimSpace(kw) == "" {
					return nil, fmt.Errorf("manufacturer %q, category %q: empty keyword", m.Name, cat)
				}
				c.addEntry(Entry{Manufacturer: m.Name, Category: cat, Keyword: kw})
			}
			for _, ts := range cs.Types {
				if ts.Name == "" || len(ts.Substrings) == 0 {
					return nil, fmt.Errorf("manufacturer %q, category %q: type rule needs a name and substrings", m.Name, cat)
				}
				key := ruleKey{strings.ToLower(m.Name), cat}
				c.rules[key] = append(c.rules[key], TypeRule{
					Manufacturer: m.Name,
					Category:     cat,
					Name:         ts.Name,
					Substrings:   ts.Substrings,
				})
			}
		}
	}
	return c, nil
}

// MustNew is New for compile-time data; it panics on malformed specs.
func MustNew(specs []ManufacturerSpec) *Catalog {
	c, err := New(specs)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) addEntry(e Entry) {
	idx := len(c.entries)
	c.entries = append(c.entries, e)

	prefix := patricia.Prefix(strings.ToLower(e.Keyword))
	if item := c.trie.Get(prefix); item != nil {
		c.trie.Set(prefix, append(item.([]int), idx))
		return
	}
	c.trie.Insert(prefix, []int{idx})
}

// AllEntries returns every entry in declaration order. The slice is shared;
// callers must treat it as read-only.
func (c *Catalog) AllEntries() []Entry {
	return c.entries
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index i in declaration order.
func (c *Catalog) Entry(i int) Entry {
	return c.entries[i]
}

// TypeRulesFor returns the ordered type rules for a manufacturer+category,
// or nil when the category carries no sub-types. Manufacturer match is
// case-insensitive.
func (c *Catalog) TypeRulesFor(manufacturer string, cat Category) []TypeRule {
	return c.rules[ruleKey{strings.ToLower(manufacturer), cat}]
}

// VisitPrefix calls fn with the index of every entry whose lowercased
// keyword starts with lowerPrefix. Indices arrive in trie (lexical) order;
// callers that need catalog order must sort.
func (c *Catalog) VisitPrefix(lowerPrefix string, fn func(idx int)) {
	// VisitSubtree's only error source is the callback, which never fails here.
	_ = c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(_ patricia.Prefix, item patricia.Item) error {
		for _, idx := range item.([]int) {
			fn(idx)
		}
		return nil
	})
}
