package config

import (
	"fmt"
	"strconv"

	"github.com/phanxgames/dock"
	"gopkg.in/yaml.v3"
)

// Spacing is CSS-style padding. In a file it is a single number, an [x, y]
// pair (horizontal, vertical) or [top, right, bottom, left].
type Spacing struct {
	Top, Right, Bottom, Left int
}

// UniformSpacing returns v on every side.
func UniformSpacing(v int) Spacing {
	return Spacing{v, v, v, v}
}

// XYSpacing returns x on the left and right and y on the top and bottom.
func XYSpacing(x, y int) Spacing {
	return Spacing{Top: y, Right: x, Bottom: y, Left: x}
}

// Insets converts s to dock insets.
func (s Spacing) Insets() dock.Insets {
	return dock.Insets{Top: s.Top, Right: s.Right, Bottom: s.Bottom, Left: s.Left}
}

// SpacingFromInsets converts dock insets to a Spacing.
func SpacingFromInsets(in dock.Insets) Spacing {
	return Spacing{Top: in.Top, Right: in.Right, Bottom: in.Bottom, Left: in.Left}
}

// values returns the shortest form that round-trips.
func (s Spacing) values() []int {
	switch {
	case s.Top == s.Bottom && s.Left == s.Right && s.Top == s.Left:
		return []int{s.Top}
	case s.Top == s.Bottom && s.Left == s.Right:
		return []int{s.Left, s.Top}
	default:
		return []int{s.Top, s.Right, s.Bottom, s.Left}
	}
}

func (s *Spacing) set(v []int) error {
	switch len(v) {
	case 1:
		*s = UniformSpacing(v[0])
	case 2:
		*s = XYSpacing(v[0], v[1])
	case 4:
		*s = Spacing{Top: v[0], Right: v[1], Bottom: v[2], Left: v[3]}
	default:
		return fmt.Errorf("padding: want 1, 2 or 4 values, got %d", len(v))
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Spacing) UnmarshalTOML(data any) error {
	v, err := intList(data)
	if err != nil {
		return fmt.Errorf("padding: %w", err)
	}
	return s.set(v)
}

// MarshalTOML implements toml.Marshaler.
func (s Spacing) MarshalTOML() ([]byte, error) {
	return tomlInts(s.values()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spacing) UnmarshalYAML(node *yaml.Node) error {
	v, err := yamlInts(node)
	if err != nil {
		return fmt.Errorf("padding: %w", err)
	}
	return s.set(v)
}

// MarshalYAML implements yaml.Marshaler.
func (s Spacing) MarshalYAML() (any, error) {
	return yamlValue(s.values()), nil
}

// ItemSpacing is the gap between items: a single number or an [x, y] pair.
// Only the horizontal value affects the dock's single row.
type ItemSpacing struct {
	X, Y int
}

func (s ItemSpacing) values() []int {
	if s.X == s.Y {
		return []int{s.X}
	}
	return []int{s.X, s.Y}
}

func (s *ItemSpacing) set(v []int) error {
	switch len(v) {
	case 1:
		*s = ItemSpacing{v[0], v[0]}
	case 2:
		*s = ItemSpacing{v[0], v[1]}
	default:
		return fmt.Errorf("spacing: want 1 or 2 values, got %d", len(v))
	}
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *ItemSpacing) UnmarshalTOML(data any) error {
	v, err := intList(data)
	if err != nil {
		return fmt.Errorf("spacing: %w", err)
	}
	return s.set(v)
}

// MarshalTOML implements toml.Marshaler.
func (s ItemSpacing) MarshalTOML() ([]byte, error) {
	return tomlInts(s.values()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *ItemSpacing) UnmarshalYAML(node *yaml.Node) error {
	v, err := yamlInts(node)
	if err != nil {
		return fmt.Errorf("spacing: %w", err)
	}
	return s.set(v)
}

// MarshalYAML implements yaml.Marshaler.
func (s ItemSpacing) MarshalYAML() (any, error) {
	return yamlValue(s.values()), nil
}

// intList accepts a TOML integer or an array of integers.
func intList(data any) ([]int, error) {
	switch v := data.(type) {
	case int64:
		return []int{int(v)}, nil
	case []any:
		out := make([]int, len(v))
		for i, e := range v {
			n, ok := e.(int64)
			if !ok {
				return nil, fmt.Errorf("element %d: want integer, got %T", i, e)
			}
			out[i] = int(n)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("want integer or array, got %T", data)
	}
}

func tomlInts(v []int) []byte {
	if len(v) == 1 {
		return []byte(strconv.Itoa(v[0]))
	}
	b := []byte{'['}
	for i, n := range v {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = strconv.AppendInt(b, int64(n), 10)
	}
	return append(b, ']')
}

func yamlInts(node *yaml.Node) ([]int, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return nil, err
		}
		return []int{n}, nil
	case yaml.SequenceNode:
		var v []int
		if err := node.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("want integer or list at line %d", node.Line)
	}
}

func yamlValue(v []int) any {
	if len(v) == 1 {
		return v[0]
	}
	return v
}
