package abbrev

import (
	"fmt"
	"strings"
)

// Category identifies one of the three substitution tables.
type Category uint8

const (
	// Abbreviation covers ordinary words with common short forms.
	Abbreviation Category = iota

	// Direction covers compass directions.
	Direction

	// Classification covers road name suffixes.
	Classification

	numCategories = 3
)

// precedence is the fixed order in which categories are consulted for a word.
var precedence = [numCategories]Category{Abbreviation, Direction, Classification}

var categoryNames = [numCategories]string{
	Abbreviation:   "abbreviations",
	Direction:      "directions",
	Classification: "classifications",
}

// String returns the category's table file key.
func (c Category) String() string {
	if c.valid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

func (c Category) valid() bool {
	return c < numCategories
}

// ParseCategory parses a category name. Both the table file key
// ("directions") and the singular form ("direction") are accepted,
// case-insensitively.
func ParseCategory(name string) (Category, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, c := range precedence {
		key := categoryNames[c]
		if n == key || n == strings.TrimSuffix(key, "s") {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// CategorySet is a set of categories enabled for one substitution pass.
// The zero value is the empty set.
type CategorySet uint8

// AllCategories enables every category.
const AllCategories CategorySet = 1<<Abbreviation | 1<<Direction | 1<<Classification

// NewCategorySet returns a set containing the given categories.
// Invalid categories are ignored.
func NewCategorySet(cs ...Category) CategorySet {
	var s CategorySet
	for _, c := range cs {
		s = s.With(c)
	}
	return s
}

// ParseCategorySet parses a comma-separated list of category names.
// "all" selects every category; an empty string is the empty set.
func ParseCategorySet(list string) (CategorySet, error) {
	var s CategorySet
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "all") {
			s = AllCategories
			continue
		}
		c, err := ParseCategory(part)
		if err != nil {
			return 0, err
		}
		s = s.With(c)
	}
	return s, nil
}

// Has reports whether c is in the set.
func (s CategorySet) Has(c Category) bool {
	return c.valid() && s&(1<<c) != 0
}

// With returns a copy of the set with c added.
func (s CategorySet) With(c Category) CategorySet {
	if !c.valid() {
		return s
	}
	return s | 1<<c
}

// Empty reports whether no category is enabled.
func (s CategorySet) Empty() bool {
	return s&AllCategories == 0
}

// Categories returns the members in precedence order.
func (s CategorySet) Categories() []Category {
	out := make([]Category, 0, numCategories)
	for _, c := range precedence {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s CategorySet) String() string {
	cs := s.Categories()
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}
