package dataset

import "testing"

func TestParseBracket(t *testing.T) {
	tests := []struct {
		raw     string
		lower   int
		upper   int
		wantErr bool
	}{
		{raw: "0_4", lower: 0, upper: 4},
		{raw: "5_9", lower: 5, upper: 9},
		{raw: "95_99", lower: 95, upper: 99},
		{raw: "100plus", lower: 100, upper: -1},
		{raw: "4_0", wantErr: true},
		{raw: "0-4", wantErr: true},
		{raw: "abc_def", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tc := range tests {
		b, err := ParseBracket(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseBracket(%q): want error, got %+v", tc.raw, b)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseBracket(%q): %v", tc.raw, err)
		}
		if b.Lower != tc.lower || b.Upper != tc.upper {
			t.Errorf("ParseBracket(%q) = [%d,%d], want [%d,%d]", tc.raw, b.Lower, b.Upper, tc.lower, tc.upper)
		}
	}
}

func TestBracketLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"0_4", "0-4"},
		{"45_49", "45-49"},
		{"100plus", "100+"},
	}
	for _, tc := range tests {
		b, err := ParseBracket(tc.raw)
		if err != nil {
			t.Fatalf("ParseBracket(%q): %v", tc.raw, err)
		}
		if got := b.Label(); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestSortBrackets(t *testing.T) {
	raws := []string{"5_9", "100plus", "0_4", "45_49"}
	var brackets []Bracket
	for _, raw := range raws {
		b, err := ParseBracket(raw)
		if err != nil {
			t.Fatalf("ParseBracket(%q): %v", raw, err)
		}
		brackets = append(brackets, b)
	}
	SortBrackets(brackets)

	want := []string{"0_4", "5_9", "45_49", "100plus"}
	for i, b := range brackets {
		if b.Raw != want[i] {
			t.Fatalf("sorted[%d] = %q, want %q (full order %v)", i, b.Raw, want[i], brackets)
		}
	}
}

func TestOpenBracketSortsAtHundred(t *testing.T) {
	open, err := ParseBracket("100plus")
	if err != nil {
		t.Fatal(err)
	}
	if open.SortKey() != 100 {
		t.Errorf("SortKey(100plus) = %d, want 100", open.SortKey())
	}
	if !open.Open() {
		t.Error("Open(100plus) = false, want true")
	}
}
