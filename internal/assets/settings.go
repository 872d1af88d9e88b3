package assets

import "math"

// Per-asset visual corrections for the operator-provisioned assets. These are
// tuned against the physical kiosk panel; callers cannot override them.
//
// Brightness/contrast are multipliers applied when rendering the still frame
// (1.0 neutral). Video brightness is mpv-style percent in -100..100; small
// fractional entries (|v| <= 2.0) are auto-scaled by 100. Speed is the video
// playback rate, 1.0 neutral.
var (
	staticBrightness = map[string]float64{
		"1": 1.25,
		"2": 1.40,
		"3": 1.10,
	}

	staticContrast = map[string]float64{
		"1": 1.20,
		"2": 1.35,
		"3": 1.00,
	}

	videoBrightness = map[string]float64{
		"1": 10,
		"2": -5,
		"3": 20,
	}

	videoSpeed = map[string]float64{
		"1": 1.0,
		"2": 0.8,
		"3": 1.2,
	}
)

// SettingsResolver is the pure lookup for per-asset visual overrides
type SettingsResolver struct{}

// NewSettingsResolver returns the table-backed resolver
func NewSettingsResolver() *SettingsResolver {
	return &SettingsResolver{}
}

// Resolve returns the effective brightness/contrast multipliers for an asset.
// Custom assets are forced to neutral regardless of caller input; table
// entries win outright; unknown static ids use the incoming values after
// sanitization. Resolving twice is idempotent.
func (r *SettingsResolver) Resolve(assetID string, custom bool, incomingBrightness, incomingContrast float64) (float64, float64) {
	if custom {
		return 1.0, 1.0
	}

	brightness := sanitizeMultiplier(incomingBrightness)
	contrast := sanitizeMultiplier(incomingContrast)

	if b, ok := staticBrightness[assetID]; ok {
		brightness = b
	}
	if c, ok := staticContrast[assetID]; ok {
		contrast = c
	}
	return brightness, contrast
}

// VideoOverride returns the normalized brightness percent for an asset's
// animated variant (nil when no table entry exists) and its playback speed
func (r *SettingsResolver) VideoOverride(assetID string) (*float64, float64) {
	speed := 1.0
	if s, ok := videoSpeed[assetID]; ok && s > 0 {
		speed = s
	}

	raw, ok := videoBrightness[assetID]
	if !ok {
		return nil, speed
	}

	percent := raw
	if math.Abs(percent) <= 2.0 {
		// fractional entry, scale to percent
		percent *= 100.0
	}
	return &percent, speed
}

// sanitizeMultiplier guards caller-controlled values: non-finite input would
// otherwise end up on a player command line
func sanitizeMultiplier(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 1.0
	}
	return v
}
