package orbit

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Category is a brick's colour class. It decides point value and how much
// a hit escalates the ball's speed.
type Category int

const (
	Green Category = iota
	Blue
	Red
	categoryCount
)

// Points returns the score for destroying a brick of this category.
func (c Category) Points() int {
	switch c {
	case Blue:
		return 20
	case Red:
		return 30
	default:
		return 10
	}
}

// SpeedFactor returns the velocity multiplier applied after a hit.
func (c Category) SpeedFactor() float64 {
	switch c {
	case Blue:
		return 1.02
	case Red:
		return 1.03
	default:
		return 1.01
	}
}

// HitPoints returns how many hits a brick of this category absorbs.
func (c Category) HitPoints() int {
	return 1
}

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// ParseCategory accepts either the numeric code (0, 1, 2) or the name.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "red":
		return Red, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= int(categoryCount) {
		return Green, fmt.Errorf("orbit: unknown brick category %q", s)
	}
	return Category(n), nil
}

// MarshalYAML writes the category by name.
func (c Category) MarshalYAML() (any, error) {
	return c.String(), nil
}

// UnmarshalYAML reads a category by name or number.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseCategory(node.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
