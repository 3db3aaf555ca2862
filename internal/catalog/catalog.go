package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

//go:embed shortcuts.json
var embedded []byte

// ErrNotFound is returned when a key is not in the catalog.
var ErrNotFound = errors.New("shortcut not found")

// Catalog is an immutable, indexed list of shortcuts.
type Catalog struct {
	shortcuts  []Shortcut
	byKey      map[string]int
	byCategory map[Category][]int
}

// def is the package-level catalog built from the embedded data at init.
var def *Catalog

func init() {
	c, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	if err := validateCurated(c); err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	def = c
}

// Default returns the built-in shortcut catalog.
func Default() *Catalog {
	return def
}

// Parse validates raw catalog JSON against the schema and builds a Catalog.
func Parse(raw []byte) (*Catalog, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc struct {
		Shortcuts []Shortcut `json:"shortcuts"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return New(doc.Shortcuts)
}

// New builds a Catalog from the given shortcuts after validating them.
func New(shortcuts []Shortcut) (*Catalog, error) {
	if err := validateShortcuts(shortcuts); err != nil {
		return nil, err
	}

	c := &Catalog{
		shortcuts:  make([]Shortcut, len(shortcuts)),
		byKey:      make(map[string]int, len(shortcuts)),
		byCategory: make(map[Category][]int),
	}
	for i, s := range shortcuts {
		s = s.Clone()
		s.CategoryIcon = s.Category.Icon()
		c.shortcuts[i] = s
		c.byKey[s.Key] = i
		c.byCategory[s.Category] = append(c.byCategory[s.Category], i)
	}
	return c, nil
}

// Len returns the number of shortcuts.
func (c *Catalog) Len() int {
	return len(c.shortcuts)
}

// All returns every shortcut in catalog order.
func (c *Catalog) All() []Shortcut {
	out := make([]Shortcut, len(c.shortcuts))
	for i, s := range c.shortcuts {
		out[i] = s.Clone()
	}
	return out
}

// ByKey returns the shortcut with the given key.
func (c *Catalog) ByKey(key string) (Shortcut, error) {
	i, ok := c.byKey[key]
	if !ok {
		return Shortcut{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return c.shortcuts[i].Clone(), nil
}

// ByCategory returns the shortcuts tagged with cat, in catalog order.
func (c *Catalog) ByCategory(cat Category) []Shortcut {
	idx := c.byCategory[cat]
	out := make([]Shortcut, len(idx))
	for i, j := range idx {
		out[i] = c.shortcuts[j].Clone()
	}
	return out
}

// ByDifficulty returns the shortcuts matching d, in catalog order.
func (c *Catalog) ByDifficulty(d Difficulty) []Shortcut {
	var out []Shortcut
	for _, s := range c.shortcuts {
		if d.Matches(s.Key) {
			out = append(out, s.Clone())
		}
	}
	return out
}

// Search returns shortcuts whose key, action, description, tips or hint
// contain keyword, ignoring case.
func (c *Catalog) Search(keyword string) []Shortcut {
	kw := strings.ToLower(strings.TrimSpace(keyword))
	var out []Shortcut
	for _, s := range c.shortcuts {
		if strings.Contains(strings.ToLower(s.Key), kw) ||
			strings.Contains(strings.ToLower(s.Action), kw) ||
			strings.Contains(strings.ToLower(s.Description), kw) ||
			strings.Contains(strings.ToLower(s.Tips), kw) ||
			strings.Contains(strings.ToLower(s.Hint), kw) {
			out = append(out, s.Clone())
		}
	}
	return out
}
