package domain

// CommandKind classifies a normalized inbound command
type CommandKind string

const (
	// KindShowStatic displays a numbered operator-provisioned asset
	KindShowStatic CommandKind = "static_image"
	// KindShowCustom displays a previously uploaded custom asset
	KindShowCustom CommandKind = "custom_image"
	// KindStop tears down the active session
	KindStop CommandKind = "stop"
	// KindVolume adjusts the OS mixer without touching the session
	KindVolume CommandKind = "volume"
)

// VolumeAction is the mixer operation carried by a KindVolume command
type VolumeAction string

const (
	VolumeUp   VolumeAction = "up"
	VolumeDown VolumeAction = "down"
	VolumeMax  VolumeAction = "max"
	VolumeMute VolumeAction = "mute"
)

// Command is the unit of work produced at the ingestion boundary and consumed
// by the dispatcher. Exactly one of AssetID/AssetRef is meaningful per kind;
// unknown kinds are rejected at ingestion and never reach the queue.
type Command struct {
	// Kind selects the operation
	Kind CommandKind
	// AssetID keys the static-asset tables (KindShowStatic)
	AssetID string
	// AssetRef names a stored custom asset (KindShowCustom)
	AssetRef string
	// MusicEnabled requests background audio alongside the visual
	MusicEnabled bool
	// LightingEnabled prefers the animated variant over the still image
	LightingEnabled bool
	// Brightness and Contrast are caller-supplied multipliers, advisory only;
	// per-asset tables override them during dispatch
	Brightness float64
	Contrast   float64
	// Volume is the mixer action (KindVolume)
	Volume VolumeAction
}

// SessionKind names the dispatcher's current foreground playback
type SessionKind string

const (
	// SessionNone means nothing is showing
	SessionNone SessionKind = "None"
	// SessionImage means a rendered still frame is on screen
	SessionImage SessionKind = "Image"
	// SessionAnimation means a video backend owns the screen
	SessionAnimation SessionKind = "Animation"
)

// ScreenGeometry holds the physical display dimensions plus the kiosk's bezel
// offsets. The offsets keep content clear of the enclosure edges.
type ScreenGeometry struct {
	Width  int
	Height int

	LeftOffset   int
	RightOffset  int
	TopOffset    int
	BottomOffset int
}

// AdjustedWidth returns the usable width inside the bezel offsets
func (g ScreenGeometry) AdjustedWidth() int {
	return g.Width - g.LeftOffset - g.RightOffset
}

// AdjustedHeight returns the usable height inside the bezel offsets
func (g ScreenGeometry) AdjustedHeight() int {
	return g.Height - g.TopOffset - g.BottomOffset
}

// Playback is the resolved recipe a video backend translates into arguments.
// BrightnessPercent and Gamma are optional: nil means the backend's neutral
// default. Speed 1.0 is neutral. Loop, fullscreen and the 180 degree rotation
// are implied for every kiosk playback.
type Playback struct {
	Path              string
	BrightnessPercent *float64
	Gamma             *float64
	Speed             float64
	Geometry          ScreenGeometry
}
