// Package chart shapes filtered, derived observation data into
// chart-ready records for the terminal renderer. It owns the display
// conventions (mirroring, labels, palettes); it performs no filtering
// of its own.
package chart

import (
	"math"
	"strconv"

	"github.com/mbeckr/popviz/internal/dataset"
)

const (
	populationStem   = "population"
	estimatesVariant = "estimates"

	// SexMale and SexFemale are the provider's sex tags.
	SexMale   = "male"
	SexFemale = "female"

	millions = 1_000_000
)

// PyramidRecord is one age bracket of the population pyramid. Male is
// sign-flipped so the male series extends left of the axis; the
// negation is purely a display artifact, so axis labels must go
// through AxisTickLabel to recover the magnitude.
type PyramidRecord struct {
	Bracket dataset.Bracket
	Label   string
	Male    float64 // negated, in millions
	Female  float64 // in millions
}

// BuildPyramid shapes the filtered male and female subsets for one
// (entity, year) into pyramid records, youngest bracket first. ok is
// false when either subset is empty; the caller renders the "no data"
// placeholder instead.
func BuildPyramid(maleRows, femaleRows []dataset.Row, brackets []dataset.Bracket) ([]PyramidRecord, bool) {
	if len(maleRows) == 0 || len(femaleRows) == 0 {
		return nil, false
	}
	male, female := maleRows[0], femaleRows[0]

	ordered := append([]dataset.Bracket(nil), brackets...)
	dataset.SortBrackets(ordered)

	records := make([]PyramidRecord, 0, len(ordered))
	for _, b := range ordered {
		maleCol := dataset.MetricColumn(populationStem, SexMale, b.Raw, estimatesVariant)
		femaleCol := dataset.MetricColumn(populationStem, SexFemale, b.Raw, estimatesVariant)
		malePop, _ := male.Value(maleCol)
		femalePop, _ := female.Value(femaleCol)
		records = append(records, PyramidRecord{
			Bracket: b,
			Label:   b.Label(),
			Male:    -malePop / millions,
			Female:  femalePop / millions,
		})
	}
	return records, true
}

// Magnitude undoes the mirroring sign flip.
func Magnitude(v float64) float64 { return math.Abs(v) }

// AxisTickLabel formats an axis tick for the mirrored layout: always
// the whole-number magnitude, regardless of which side the tick sits
// on.
func AxisTickLabel(v float64) string {
	return strconv.Itoa(int(math.Abs(v)))
}

// MaxMagnitude returns the largest bar magnitude across both sides,
// for axis scaling. Zero for an empty record set.
func MaxMagnitude(records []PyramidRecord) float64 {
	max := 0.0
	for _, r := range records {
		if m := Magnitude(r.Male); m > max {
			max = m
		}
		if m := Magnitude(r.Female); m > max {
			max = m
		}
	}
	return max
}
