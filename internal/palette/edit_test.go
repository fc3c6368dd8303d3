package palette

import (
	"errors"
	"testing"

	"repalette/internal/util"
)

// helper to build optional accent filters
func accent(b bool) *bool {
	return &b
}

func TestEditApply_ValueMode(t *testing.T) {
	e := Edit{Variable: "lightness", Value: 0.5, Mode: ModeValue}

	got, err := e.Apply(0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
}

func TestEditApply_EmptyModeMeansValue(t *testing.T) {
	e := Edit{Variable: "lightness", Value: 0.25}

	got, err := e.Apply(0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.25 {
		t.Fatalf("got %v, want 0.25", got)
	}
}

func TestEditApply_MultiplyMode(t *testing.T) {
	e := Edit{Variable: "saturation", Value: 2, Mode: ModeMultiply}

	got, err := e.Apply(0.25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0.5 {
		t.Fatalf("got %v, want 0.5", got)
	}
}

func TestEditApply_UnknownMode(t *testing.T) {
	e := Edit{Variable: "lightness", Value: 0.5, Mode: "scale"}

	_, err := e.Apply(0.9)
	if err == nil {
		t.Fatal("expected an error for unknown mode")
	}
	if !errors.Is(err, util.ErrInvalidRuleMode) {
		t.Fatalf("expected ErrInvalidRuleMode, got %v", err)
	}
}

func TestEditApply_AbsoluteIsIdempotent(t *testing.T) {
	e := Edit{Variable: "lightness", Value: 0.5}

	once, err := e.Apply(0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := e.Apply(once)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if once != twice {
		t.Fatalf("applying twice changed the result: %v vs %v", once, twice)
	}
}

func TestEditMatches_NoFilters(t *testing.T) {
	e := Edit{Variable: "lightness", Value: 0.5}

	if !e.Matches("Base", "base", false) {
		t.Fatal("unfiltered edit must match a neutral color")
	}
	if !e.Matches("Blue", "blue", true) {
		t.Fatal("unfiltered edit must match an accent color")
	}
}

func TestEditMatches_NameFilter(t *testing.T) {
	tests := []struct {
		filter string
		name   string
		id     string
		want   bool
	}{
		{"Surface 0", "Surface 0", "surface0", true}, // human name
		{"surface0", "Surface 0", "surface0", true},  // identifier
		{"surface1", "Surface 0", "surface0", false},
		{"", "Surface 0", "surface0", true}, // unset filter matches all
	}

	for _, tt := range tests {
		e := Edit{Variable: "lightness", Value: 0.5, Name: tt.filter}
		if got := e.Matches(tt.name, tt.id, false); got != tt.want {
			t.Errorf("Matches(name filter %q) = %v, want %v", tt.filter, got, tt.want)
		}
	}
}

func TestEditMatches_AccentFilter(t *testing.T) {
	e := Edit{Variable: "lightness", Value: 0.5, Accent: accent(true)}

	if !e.Matches("Blue", "blue", true) {
		t.Fatal("accent filter must match an accent color")
	}
	if e.Matches("Base", "base", false) {
		t.Fatal("accent filter must not match a neutral color")
	}

	neutral := Edit{Variable: "lightness", Value: 0.5, Accent: accent(false)}
	if !neutral.Matches("Base", "base", false) {
		t.Fatal("accent = false filter must match a neutral color")
	}
	if neutral.Matches("Blue", "blue", true) {
		t.Fatal("accent = false filter must not match an accent color")
	}
}

func TestEditMatches_EitherFilterSuffices(t *testing.T) {
	// Both filters set: the rule applies when either one matches.
	e := Edit{Variable: "lightness", Value: 0.5, Name: "text", Accent: accent(true)}

	if !e.Matches("Blue", "blue", true) {
		t.Fatal("accent hit must match even though the name misses")
	}
	if !e.Matches("Text", "text", false) {
		t.Fatal("name hit must match even though the accent misses")
	}
	if e.Matches("Base", "base", false) {
		t.Fatal("neither filter matches, rule must not apply")
	}
}

func TestRuleSetFor(t *testing.T) {
	rs := RuleSet{
		Dark:  []Edit{{Variable: "lightness", Value: 0.1}},
		Light: []Edit{{Variable: "lightness", Value: 0.9}},
	}

	if got := rs.For(true); len(got) != 1 || got[0].Value != 0.1 {
		t.Fatalf("For(true) returned the wrong list: %+v", got)
	}
	if got := rs.For(false); len(got) != 1 || got[0].Value != 0.9 {
		t.Fatalf("For(false) returned the wrong list: %+v", got)
	}
}
