package dataset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// openBracketRaw is the provider's sentinel for the open-ended top bracket.
const openBracketRaw = "100plus"

// Bracket is an age range used to bucket population counts: a numeric
// lower bound plus either a numeric upper bound or the open-ended
// "100plus" sentinel.
type Bracket struct {
	Raw   string
	Lower int
	Upper int // -1 for the open-ended bracket
}

// ParseBracket parses a bracket tag such as "0_4", "95_99" or "100plus".
func ParseBracket(raw string) (Bracket, error) {
	raw = strings.TrimSpace(raw)
	if raw == openBracketRaw {
		return Bracket{Raw: raw, Lower: 100, Upper: -1}, nil
	}
	parts := strings.SplitN(raw, "_", 2)
	if len(parts) != 2 {
		return Bracket{}, fmt.Errorf("bracket %q: want lower_upper or %s", raw, openBracketRaw)
	}
	lower, err := strconv.Atoi(parts[0])
	if err != nil {
		return Bracket{}, fmt.Errorf("bracket %q lower bound: %w", raw, err)
	}
	upper, err := strconv.Atoi(parts[1])
	if err != nil {
		return Bracket{}, fmt.Errorf("bracket %q upper bound: %w", raw, err)
	}
	if upper < lower {
		return Bracket{}, fmt.Errorf("bracket %q: upper bound below lower", raw)
	}
	return Bracket{Raw: raw, Lower: lower, Upper: upper}, nil
}

// Open reports whether the bracket has no upper bound.
func (b Bracket) Open() bool { return b.Upper < 0 }

// Label returns the display form: "0-4" for closed brackets, "100+"
// for the open-ended one.
func (b Bracket) Label() string {
	if b.Open() {
		return fmt.Sprintf("%d+", b.Lower)
	}
	return fmt.Sprintf("%d-%d", b.Lower, b.Upper)
}

// SortKey orders brackets ascending by lower bound; the open-ended
// bracket sorts at its own lower bound, placing it after every
// fixed-width bracket that starts below 100.
func (b Bracket) SortKey() int { return b.Lower }

// SortBrackets orders brackets in display order (youngest first).
func SortBrackets(brackets []Bracket) {
	sort.SliceStable(brackets, func(i, j int) bool {
		return brackets[i].SortKey() < brackets[j].SortKey()
	})
}
