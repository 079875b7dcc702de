package fit

import (
	"fmt"

	"github.com/randalmurphal/labelkit/abbrev"
)

// Tier is one escalation step. Each tier enables a single category.
type Tier int

const (
	// TierNone means the text was left as is.
	TierNone Tier = iota

	// TierClassification abbreviates road name suffixes.
	TierClassification

	// TierDirection abbreviates compass directions.
	TierDirection

	// TierAbbreviation abbreviates ordinary words.
	TierAbbreviation
)

// DefaultTiers is the escalation order: least readability loss first.
var DefaultTiers = []Tier{TierClassification, TierDirection, TierAbbreviation}

// Categories returns the category set the tier applies.
func (t Tier) Categories() abbrev.CategorySet {
	switch t {
	case TierClassification:
		return abbrev.NewCategorySet(abbrev.Classification)
	case TierDirection:
		return abbrev.NewCategorySet(abbrev.Direction)
	case TierAbbreviation:
		return abbrev.NewCategorySet(abbrev.Abbreviation)
	default:
		return 0
	}
}

// Next returns the tier after t and whether there is one.
func (t Tier) Next() (Tier, bool) {
	if t >= TierAbbreviation || t < TierNone {
		return t, false
	}
	return t + 1, true
}

// Cumulative returns every category applied once the text has been through
// all tiers up to and including t.
func (t Tier) Cumulative() abbrev.CategorySet {
	var s abbrev.CategorySet
	for _, tier := range DefaultTiers {
		if tier > t {
			break
		}
		for _, c := range tier.Categories().Categories() {
			s = s.With(c)
		}
	}
	return s
}

func (t Tier) String() string {
	switch t {
	case TierNone:
		return "none"
	case TierClassification:
		return "classification"
	case TierDirection:
		return "direction"
	case TierAbbreviation:
		return "abbreviation"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}
