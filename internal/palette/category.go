package palette

import (
	"fmt"
	"strings"
)

// Category identifies one of the fixed quote categories. The order is
// significant: a category's index sets its hue rotation.
type Category int

const (
	Motivational Category = iota
	Life
	Wisdom
	Success
	Happiness
	Inspiration

	categoryCount = int(Inspiration) + 1
)

// CategoryCount is the number of categories in the table
const CategoryCount = categoryCount

var categoryNames = [categoryCount]string{
	Motivational: "motivational",
	Life:         "life",
	Wisdom:       "wisdom",
	Success:      "success",
	Happiness:    "happiness",
	Inspiration:  "inspiration",
}

// Older quote records were written with these names
var categoryAliases = map[string]Category{
	"motivation": Motivational,
}

// AllCategories returns every category in hue order
func AllCategories() []Category {
	cats := make([]Category, categoryCount)
	for i := range cats {
		cats[i] = Category(i)
	}
	return cats
}

// Valid reports whether c is in the table
func (c Category) Valid() bool {
	return c >= 0 && int(c) < categoryCount
}

func (c Category) String() string {
	if !c.Valid() {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Title returns the display name, e.g. "Wisdom"
func (c Category) Title() string {
	s := c.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// VarName returns the style variable key for the category
func (c Category) VarName() string {
	return "--category-" + c.String()
}

// HueOffset returns the rotation in degrees applied to the base hue
func (c Category) HueOffset() int {
	return int(c) * 60
}

// ParseCategory resolves a category name case-insensitively
func ParseCategory(name string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == key {
			return Category(i), nil
		}
	}
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown category: %q", name)
}

// CategoryOrDefault resolves name, falling back to Motivational
func CategoryOrDefault(name string) Category {
	c, err := ParseCategory(name)
	if err != nil {
		return Motivational
	}
	return c
}

// MarshalText encodes the category by name
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid category %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name, accepting aliases
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
