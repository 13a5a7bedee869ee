package theme

import "slices"

// Theme is an immutable description of a game's content pool and styling.
type Theme struct {
	name     string
	contents []string
	pairs    int
	color    string
}

// New builds a theme. The contents slice is copied.
func New(name string, contents []string, pairs int, color string) Theme {
	return Theme{
		name:     name,
		contents: slices.Clone(contents),
		pairs:    pairs,
		color:    color,
	}
}

func (t Theme) Name() string  { return t.name }
func (t Theme) Pairs() int    { return t.pairs }
func (t Theme) Color() string { return t.color }

// Contents returns a copy of the theme's content pool.
func (t Theme) Contents() []string {
	return slices.Clone(t.contents)
}

// IsZero reports whether t is the zero Theme.
func (t Theme) IsZero() bool {
	return t.name == "" && len(t.contents) == 0 && t.pairs == 0 && t.color == ""
}
