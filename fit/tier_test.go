package fit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/labelkit/abbrev"
	"github.com/randalmurphal/labelkit/measure"
	"github.com/randalmurphal/labelkit/styled"
)

func TestTier_Categories(t *testing.T) {
	tests := []struct {
		tier Tier
		want abbrev.CategorySet
	}{
		{TierNone, 0},
		{TierClassification, abbrev.NewCategorySet(abbrev.Classification)},
		{TierDirection, abbrev.NewCategorySet(abbrev.Direction)},
		{TierAbbreviation, abbrev.NewCategorySet(abbrev.Abbreviation)},
		{Tier(9), 0},
	}

	for _, tt := range tests {
		t.Run(tt.tier.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tier.Categories())
		})
	}
}

func TestTier_Next(t *testing.T) {
	var got []Tier
	tier := TierNone
	for {
		next, ok := tier.Next()
		if !ok {
			break
		}
		got = append(got, next)
		tier = next
	}
	assert.Equal(t, DefaultTiers, got)

	_, ok := Tier(-1).Next()
	assert.False(t, ok)
}

func TestTier_Cumulative(t *testing.T) {
	assert.True(t, TierNone.Cumulative().Empty())
	assert.Equal(t, abbrev.NewCategorySet(abbrev.Classification), TierClassification.Cumulative())
	assert.Equal(t, abbrev.AllCategories, TierAbbreviation.Cumulative())
}

func TestTier_String(t *testing.T) {
	assert.Equal(t, "none", TierNone.String())
	assert.Equal(t, "classification", TierClassification.String())
	assert.Equal(t, "direction", TierDirection.String())
	assert.Equal(t, "abbreviation", TierAbbreviation.String())
	assert.Equal(t, "Tier(7)", Tier(7).String())
}

func TestBounds_Fits(t *testing.T) {
	b := Bounds{Width: 10, Height: 2}

	tests := []struct {
		name string
		size measure.Size
		want bool
	}{
		{name: "smaller", size: measure.Size{Width: 9, Height: 1}, want: true},
		{name: "equal width", size: measure.Size{Width: 10, Height: 1}, want: false},
		{name: "equal height", size: measure.Size{Width: 9.9, Height: 2}, want: true},
		{name: "too tall", size: measure.Size{Width: 1, Height: 2.1}, want: false},
		{name: "zero", size: measure.Size{}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Fits(tt.size))
		})
	}
}

func TestConvenience(t *testing.T) {
	assert.Equal(t, "Northwest Blvd", Cells("Northwest Boulevard", 14, 1))
	assert.Equal(t, "Northwest Boulevard", Cells("Northwest Boulevard", 19, 1))

	m := measure.NewEstimatingWithMetrics(1, 1)
	assert.Equal(t, "NW Blvd", String("Northwest Boulevard", Bounds{Width: 8, Height: 1}, m))

	label := styled.New("Northwest Boulevard", nil)
	assert.NoError(t, Styled(label, Bounds{Width: 16, Height: 1}, m))
	assert.Equal(t, "Northwest Blvd", label.String())
}
