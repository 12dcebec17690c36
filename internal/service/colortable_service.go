// Package service provides the color table lookup, encoding and preview logic
// behind the HTTP API.
package service

import (
	"bytes"
	"fmt"
	"log"

	"github.com/subsurface-colortables/server/internal/cache"
	"github.com/subsurface-colortables/server/internal/render"
	"github.com/subsurface-colortables/server/pkg/colortable"
)

// ColorTableServiceConfig contains service configuration.
type ColorTableServiceConfig struct {
	Catalogue    *colortable.Catalogue
	Cache        *cache.Manager
	Renderer     *render.PreviewRenderer
	DefaultTable string
}

// ColorTableService serves color tables from a catalogue.
type ColorTableService struct {
	catalogue    *colortable.Catalogue
	cache        *cache.Manager
	renderer     *render.PreviewRenderer
	defaultTable string
}

// NewColorTableService creates a new service. A nil catalogue means the
// built-in one.
func NewColorTableService(cfg ColorTableServiceConfig) *ColorTableService {
	cat := cfg.Catalogue
	if cat == nil {
		cat = colortable.Default()
	}
	return &ColorTableService{
		catalogue:    cat,
		cache:        cfg.Cache,
		renderer:     cfg.Renderer,
		defaultTable: cfg.DefaultTable,
	}
}

// Filter selects tables by kind.
type Filter int

const (
	FilterAll Filter = iota
	FilterContinuous
	FilterDiscrete
)

// ParseFilter parses the "discrete" query value: "" for all tables,
// "true" or "false" for one kind.
func ParseFilter(s string) (Filter, error) {
	switch s {
	case "":
		return FilterAll, nil
	case "true", "1":
		return FilterDiscrete, nil
	case "false", "0":
		return FilterContinuous, nil
	}
	return FilterAll, fmt.Errorf("invalid discrete filter: %q", s)
}

// List returns tables in catalogue order.
func (s *ColorTableService) List(f Filter) []colortable.ColorTable {
	switch f {
	case FilterContinuous:
		return s.catalogue.Filter(false)
	case FilterDiscrete:
		return s.catalogue.Filter(true)
	}
	return s.catalogue.Tables()
}

// Get returns a single table.
func (s *ColorTableService) Get(name string) (colortable.ColorTable, error) {
	return s.catalogue.Get(name)
}

// DefaultTable returns the configured default table, falling back to the
// first table in the catalogue.
func (s *ColorTableService) DefaultTable() (colortable.ColorTable, error) {
	if t, ok := s.catalogue.Lookup(s.defaultTable); ok {
		return t, nil
	}
	if s.catalogue.Len() == 0 {
		return colortable.ColorTable{}, colortable.ErrNotFound
	}
	return s.catalogue.Tables()[0], nil
}

// Encoded returns the table (or, for an empty name, the full catalogue)
// encoded in the given format. Results are cached.
func (s *ColorTableService) Encoded(name string, f colortable.Format) ([]byte, error) {
	key := cache.PayloadKey(name, string(f))
	if s.cache != nil {
		if data, ok := s.cache.GetPayload(key); ok {
			return data, nil
		}
	}

	var v any
	if name == "" {
		v = s.catalogue.Tables()
	} else {
		t, err := s.catalogue.Get(name)
		if err != nil {
			return nil, err
		}
		v = t
	}

	var buf bytes.Buffer
	if err := colortable.Encode(&buf, f, v); err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}

	data := buf.Bytes()
	if s.cache != nil {
		s.cache.SetPayload(key, data)
	}
	return data, nil
}

// Preview returns a PNG swatch of the table.
func (s *ColorTableService) Preview(name string) ([]byte, error) {
	t, err := s.catalogue.Get(name)
	if err != nil {
		return nil, err
	}

	w, h := s.renderer.Size()
	key := cache.PreviewKey(name, w, h)
	if s.cache != nil {
		if data, ok := s.cache.GetPreview(key); ok {
			return data, nil
		}
	}

	data, err := s.renderer.RenderPreview(t)
	if err != nil {
		return nil, fmt.Errorf("render preview %s: %w", name, err)
	}

	if s.cache != nil {
		if err := s.cache.SetPreview(key, data); err != nil {
			log.Printf("preview cache set failed for %s: %v", name, err)
		}
	}
	return data, nil
}

// LegendItem is one entry of a table legend.
type LegendItem struct {
	Index    *int     `json:"index,omitempty"`
	Position *float64 `json:"position,omitempty"`
	Color    string   `json:"color"`
}

// Legend represents a table as a list of hex colors.
type Legend struct {
	Name     string       `json:"name"`
	Discrete bool         `json:"discrete"`
	Items    []LegendItem `json:"items"`
}

// Legend returns the hex legend of a table.
func (s *ColorTableService) Legend(name string) (Legend, error) {
	t, err := s.catalogue.Get(name)
	if err != nil {
		return Legend{}, err
	}

	legend := Legend{
		Name:     t.Name,
		Discrete: t.Discrete,
		Items:    make([]LegendItem, len(t.Colors)),
	}
	for i, p := range t.Colors {
		item := LegendItem{Color: p.Hex()}
		if t.Discrete {
			idx := p.Index()
			item.Index = &idx
		} else {
			pos := p.Pos
			item.Position = &pos
		}
		legend.Items[i] = item
	}
	return legend, nil
}

// CacheStats returns cache statistics, or nil without a cache.
func (s *ColorTableService) CacheStats() map[string]interface{} {
	if s.cache == nil {
		return nil
	}
	return s.cache.Stats()
}
