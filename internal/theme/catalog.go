package theme

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

var (
	ErrEmptyCatalog = errors.New("theme catalog is empty")
	ErrUnknownTheme = errors.New("unknown theme")
)

// Catalog is the ordered set of themes a session can pick from.
type Catalog struct {
	themes []Theme
}

// NewCatalog builds a catalog from already validated themes.
func NewCatalog(themes ...Theme) Catalog {
	return Catalog{themes: slices.Clone(themes)}
}

func (c Catalog) Len() int { return len(c.themes) }

// Themes returns a copy of the catalog's themes in order.
func (c Catalog) Themes() []Theme {
	return slices.Clone(c.themes)
}

// Random picks a theme uniformly at random.
func (c Catalog) Random(r *rand.Rand) (Theme, error) {
	if len(c.themes) == 0 {
		return Theme{}, ErrEmptyCatalog
	}
	return c.themes[r.Intn(len(c.themes))], nil
}

// Lookup finds a theme by name.
func (c Catalog) Lookup(name string) (Theme, error) {
	for _, t := range c.themes {
		if t.name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Names lists theme names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.themes))
	for i, t := range c.themes {
		names[i] = t.name
	}
	return names
}
