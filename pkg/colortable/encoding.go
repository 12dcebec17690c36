package colortable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a serialization format for tables and catalogues.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat parses a format name. An empty name means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the HTTP content type for f.
func (f Format) ContentType() string {
	if f == FormatYAML {
		return "application/yaml"
	}
	return "application/json"
}

// Encode writes v (a ColorTable or a slice of them) to w.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		return json.NewEncoder(w).Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// Decode reads a list of tables from r and builds a catalogue from them.
func Decode(r io.Reader, f Format) (*Catalogue, error) {
	var tables []ColorTable
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&tables); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&tables); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	return NewCatalogue(tables...)
}

// Encode writes every table in catalogue order.
func (c *Catalogue) Encode(w io.Writer, f Format) error {
	return Encode(w, f, c.Tables())
}

func (p ControlPoint) values() []float64 {
	return []float64{p.Pos, float64(p.R), float64(p.G), float64(p.B)}
}

func (p *ControlPoint) setValues(v []float64) error {
	if len(v) != 4 {
		return fmt.Errorf("control point: want 4 values, got %d", len(v))
	}
	var rgb [3]uint8
	for i, c := range v[1:] {
		if c < 0 || c > 255 || c != math.Trunc(c) {
			return fmt.Errorf("control point: component %v is not an integer in [0,255]", c)
		}
		rgb[i] = uint8(c)
	}
	*p = ControlPoint{Pos: v[0], R: rgb[0], G: rgb[1], B: rgb[2]}
	return nil
}

// MarshalJSON encodes the point as [pos, r, g, b].
func (p ControlPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.values())
}

// UnmarshalJSON decodes a [pos, r, g, b] array.
func (p *ControlPoint) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	return p.setValues(v)
}

// MarshalYAML encodes the point as a flow sequence [pos, r, g, b].
func (p ControlPoint) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{}
	if err := node.Encode(p.values()); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

// UnmarshalYAML decodes a [pos, r, g, b] sequence.
func (p *ControlPoint) UnmarshalYAML(value *yaml.Node) error {
	var v []float64
	if err := value.Decode(&v); err != nil {
		return err
	}
	return p.setValues(v)
}
