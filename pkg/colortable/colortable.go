// Package colortable provides the built-in color table presets used to color
// continuous and discrete map attributes.
package colortable

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	// ErrNotFound is returned when a table name is not in the catalogue.
	ErrNotFound = errors.New("color table not found")
	// ErrEmptyName is returned when building a catalogue with an unnamed table.
	ErrEmptyName = errors.New("color table name is empty")
	// ErrDuplicateName is returned when two tables share a name.
	ErrDuplicateName = errors.New("duplicate color table name")
)

// ControlPoint is one entry of a color table. For continuous tables Pos is a
// position in [0, 1]; for discrete tables it holds the category index.
type ControlPoint struct {
	Pos     float64
	R, G, B uint8
}

// Index returns the category index of a discrete table entry.
func (p ControlPoint) Index() int {
	return int(p.Pos)
}

// RGBA returns the opaque color of the point.
func (p ControlPoint) RGBA() color.RGBA {
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// Hex returns the color as "#rrggbb".
func (p ControlPoint) Hex() string {
	c := colorful.Color{
		R: float64(p.R) / 255,
		G: float64(p.G) / 255,
		B: float64(p.B) / 255,
	}
	return c.Hex()
}

// ColorTable is a named preset of control points.
type ColorTable struct {
	Name     string         `json:"name" yaml:"name"`
	Discrete bool           `json:"discrete" yaml:"discrete"`
	Colors   []ControlPoint `json:"colors" yaml:"colors"`
}

// Clone returns a deep copy of t.
func (t ColorTable) Clone() ColorTable {
	t.Colors = slices.Clone(t.Colors)
	return t
}

// Catalogue is an ordered, read-only set of color tables. It is safe for
// concurrent use; every accessor returns copies.
type Catalogue struct {
	tables []ColorTable
	index  map[string]int
}

// NewCatalogue builds a catalogue from tables, keeping their order.
func NewCatalogue(tables ...ColorTable) (*Catalogue, error) {
	c := &Catalogue{
		tables: make([]ColorTable, 0, len(tables)),
		index:  make(map[string]int, len(tables)),
	}
	for i, t := range tables {
		if t.Name == "" {
			return nil, fmt.Errorf("table %d: %w", i, ErrEmptyName)
		}
		if _, ok := c.index[t.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateName, t.Name)
		}
		c.index[t.Name] = len(c.tables)
		c.tables = append(c.tables, t.Clone())
	}
	return c, nil
}

var defaultCatalogue = mustCatalogue(defaultTables...)

func mustCatalogue(tables ...ColorTable) *Catalogue {
	c, err := NewCatalogue(tables...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in catalogue.
func Default() *Catalogue {
	return defaultCatalogue
}

// Lookup returns the table with the given name.
func (c *Catalogue) Lookup(name string) (ColorTable, bool) {
	i, ok := c.index[name]
	if !ok {
		return ColorTable{}, false
	}
	return c.tables[i].Clone(), true
}

// Get is Lookup with the miss reported as ErrNotFound.
func (c *Catalogue) Get(name string) (ColorTable, error) {
	t, ok := c.Lookup(name)
	if !ok {
		return ColorTable{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return t, nil
}

// Len returns the number of tables.
func (c *Catalogue) Len() int {
	return len(c.tables)
}

// Names returns table names in catalogue order.
func (c *Catalogue) Names() []string {
	names := make([]string, len(c.tables))
	for i, t := range c.tables {
		names[i] = t.Name
	}
	return names
}

// Tables returns all tables in catalogue order.
func (c *Catalogue) Tables() []ColorTable {
	out := make([]ColorTable, len(c.tables))
	for i, t := range c.tables {
		out[i] = t.Clone()
	}
	return out
}

// Filter returns the continuous (discrete=false) or discrete tables.
func (c *Catalogue) Filter(discrete bool) []ColorTable {
	out := []ColorTable{}
	for _, t := range c.tables {
		if t.Discrete == discrete {
			out = append(out, t.Clone())
		}
	}
	return out
}
