package dataset

import (
	"fmt"
	"strings"
)

// Metric columns arrive from the data provider under a structured
// naming convention:
//
//	<stem>__sex_<sex>__age_<bracket>__variant_<variant>
//
// e.g. population__sex_male__age_0_4__variant_estimates. The parser
// treats the convention as an external contract: it splits the pieces
// out but never renames them.

const (
	sexSegmentPrefix     = "sex_"
	ageSegmentPrefix     = "age_"
	variantSegmentPrefix = "variant_"
)

// MetricKey is the parsed form of a metric column name.
type MetricKey struct {
	Stem    string
	Sex     string
	Bracket Bracket
	Variant string
}

// ParseMetricKey parses a metric column name into its components.
func ParseMetricKey(col string) (MetricKey, error) {
	segments := strings.Split(col, "__")
	if len(segments) != 4 {
		return MetricKey{}, fmt.Errorf("column %q: want 4 double-underscore segments, got %d", col, len(segments))
	}
	stem := segments[0]
	if stem == "" {
		return MetricKey{}, fmt.Errorf("column %q: empty metric stem", col)
	}
	sex, ok := strings.CutPrefix(segments[1], sexSegmentPrefix)
	if !ok || sex == "" {
		return MetricKey{}, fmt.Errorf("column %q: segment %q is not a sex tag", col, segments[1])
	}
	ageRaw, ok := strings.CutPrefix(segments[2], ageSegmentPrefix)
	if !ok || ageRaw == "" {
		return MetricKey{}, fmt.Errorf("column %q: segment %q is not an age tag", col, segments[2])
	}
	variant, ok := strings.CutPrefix(segments[3], variantSegmentPrefix)
	if !ok || variant == "" {
		return MetricKey{}, fmt.Errorf("column %q: segment %q is not a variant tag", col, segments[3])
	}
	bracket, err := parseBracketTag(ageRaw)
	if err != nil {
		return MetricKey{}, fmt.Errorf("column %q: %w", col, err)
	}
	return MetricKey{Stem: stem, Sex: sex, Bracket: bracket, Variant: variant}, nil
}

// parseBracketTag handles both numeric brackets and the "all" tag used
// by whole-population metrics such as median age.
func parseBracketTag(raw string) (Bracket, error) {
	if raw == "all" {
		return Bracket{Raw: "all", Lower: 0, Upper: -1}, nil
	}
	return ParseBracket(raw)
}

// Column reassembles the provider column name for this key.
func (k MetricKey) Column() string {
	return fmt.Sprintf("%s__%s%s__%s%s__%s%s",
		k.Stem,
		sexSegmentPrefix, k.Sex,
		ageSegmentPrefix, k.Bracket.Raw,
		variantSegmentPrefix, k.Variant)
}

// MetricColumn builds a provider column name without going through a
// parsed key. bracketRaw may be a numeric tag or "all".
func MetricColumn(stem, sex, bracketRaw, variant string) string {
	return fmt.Sprintf("%s__%s%s__%s%s__%s%s",
		stem,
		sexSegmentPrefix, sex,
		ageSegmentPrefix, bracketRaw,
		variantSegmentPrefix, variant)
}
