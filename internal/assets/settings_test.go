package assets

import (
	"math"
	"testing"
)

func TestResolveStaticTableWins(t *testing.T) {
	r := NewSettingsResolver()

	tests := []struct {
		name               string
		assetID            string
		inB, inC           float64
		wantB, wantC       float64
	}{
		{"table entry 1 overrides caller", "1", 0.5, 3.0, 1.25, 1.20},
		{"table entry 2 overrides caller", "2", 1.0, 1.0, 1.40, 1.35},
		{"table entry 3 overrides caller", "3", 9.9, 9.9, 1.10, 1.00},
		{"unknown id uses incoming", "42", 1.5, 0.9, 1.5, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, c := r.Resolve(tt.assetID, false, tt.inB, tt.inC)
			if b != tt.wantB || c != tt.wantC {
				t.Errorf("Resolve(%q) = (%g, %g), want (%g, %g)", tt.assetID, b, c, tt.wantB, tt.wantC)
			}
		})
	}
}

func TestResolveCustomForcedNeutral(t *testing.T) {
	r := NewSettingsResolver()

	// Adversarial caller values must never leak into a custom asset's settings
	adversarial := []struct{ b, c float64 }{
		{0.0, 0.0},
		{-5.0, -5.0},
		{math.NaN(), math.NaN()},
		{math.Inf(1), math.Inf(-1)},
		{1e308, 1e308},
	}

	for _, in := range adversarial {
		b, c := r.Resolve("1", true, in.b, in.c)
		if b != 1.0 || c != 1.0 {
			t.Errorf("Resolve(custom, b=%v, c=%v) = (%g, %g), want (1, 1)", in.b, in.c, b, c)
		}
	}
}

func TestResolveIdempotent(t *testing.T) {
	r := NewSettingsResolver()

	// Ingestion pre-resolves; dispatch resolves again with the pre-resolved
	// values as input. Both passes must agree.
	b1, c1 := r.Resolve("2", false, 0.7, 0.7)
	b2, c2 := r.Resolve("2", false, b1, c1)
	if b1 != b2 || c1 != c2 {
		t.Errorf("second pass (%g, %g) differs from first (%g, %g)", b2, c2, b1, c1)
	}
}

func TestResolveSanitizesUnknownStatic(t *testing.T) {
	r := NewSettingsResolver()

	b, c := r.Resolve("99", false, math.NaN(), math.Inf(1))
	if b != 1.0 || c != 1.0 {
		t.Errorf("non-finite input resolved to (%g, %g), want (1, 1)", b, c)
	}
}

func TestVideoOverride(t *testing.T) {
	r := NewSettingsResolver()

	tests := []struct {
		assetID     string
		wantPercent *float64
		wantSpeed   float64
	}{
		{"1", f64(10), 1.0},
		{"2", f64(-5), 0.8},
		{"3", f64(20), 1.2},
		{"99", nil, 1.0},
	}

	for _, tt := range tests {
		percent, speed := r.VideoOverride(tt.assetID)
		if speed != tt.wantSpeed {
			t.Errorf("VideoOverride(%q) speed = %g, want %g", tt.assetID, speed, tt.wantSpeed)
		}
		switch {
		case tt.wantPercent == nil && percent != nil:
			t.Errorf("VideoOverride(%q) percent = %g, want nil", tt.assetID, *percent)
		case tt.wantPercent != nil && percent == nil:
			t.Errorf("VideoOverride(%q) percent = nil, want %g", tt.assetID, *tt.wantPercent)
		case tt.wantPercent != nil && *percent != *tt.wantPercent:
			t.Errorf("VideoOverride(%q) percent = %g, want %g", tt.assetID, *percent, *tt.wantPercent)
		}
	}
}

func TestVideoOverrideScalesFractions(t *testing.T) {
	videoBrightness["probe"] = -0.2
	defer delete(videoBrightness, "probe")

	r := NewSettingsResolver()
	percent, _ := r.VideoOverride("probe")
	if percent == nil || *percent != -20.0 {
		t.Fatalf("fractional entry not scaled: got %v, want -20", percent)
	}
}

func f64(v float64) *float64 { return &v }
