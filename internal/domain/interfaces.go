package domain

import (
	"context"
	"io"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/golocube/kioskd/internal/domain CommandQueue,Supervisor,SettingsResolver,AssetStore,FrameRenderer,VolumeControl,DisplayGuard,AssetFetcher

// CommandQueue buffers normalized commands between ingestion and dispatch.
// Enqueue is safe for arbitrarily many concurrent producers; Dequeue has
// exactly one consumer. Order is strictly FIFO, no coalescing.
type CommandQueue interface {
	// Enqueue appends a command; returns ErrQueueFull at the capacity bound
	Enqueue(cmd Command) error

	// Dequeue returns the oldest pending command, or false when empty
	Dequeue() (Command, bool)

	// Len reports the number of pending commands
	Len() int
}

// Supervisor owns the single visual and single audio process slot. Only the
// dispatcher may call it, so implementations need no internal locking around
// the slots.
type Supervisor interface {
	// StartVideo walks the video catalog and binds the first surviving backend
	// to the visual slot. Returns ErrNoBackendAvailable when all fail.
	StartVideo(ctx context.Context, p Playback) error

	// StartImage displays a pre-rendered frame through the image catalog
	StartImage(ctx context.Context, framePath string) error

	// StartAudio starts looping background audio in the audio slot
	StartAudio(ctx context.Context, path string) error

	// StopVisual terminates the visual slot: graceful, forced, then sweep
	StopVisual()

	// StopAudio terminates the audio slot the same way
	StopAudio()
}

// SettingsResolver is the pure per-asset visual-override lookup
type SettingsResolver interface {
	// Resolve returns the effective brightness/contrast multipliers. Table
	// entries win outright; custom assets are always (1.0, 1.0).
	Resolve(assetID string, custom bool, incomingBrightness, incomingContrast float64) (float64, float64)

	// VideoOverride returns the normalized per-asset video brightness percent
	// (nil when no entry exists) and the playback speed (1.0 default)
	VideoOverride(assetID string) (*float64, float64)
}

// AssetStore locates operator-provisioned and uploaded media on disk
type AssetStore interface {
	// StaticImage returns the still image path for an asset id, or
	// ErrAssetNotFound when the id is unknown or the file is missing
	StaticImage(id string) (string, error)

	// StaticMusic returns the background track for an asset id, if provisioned
	StaticMusic(id string) (string, bool)

	// StaticAnimation returns the animated variant for an asset id, if present
	StaticAnimation(id string) (string, bool)

	// DefaultMusic returns the fallback background track, if present
	DefaultMusic() (string, bool)

	// CustomAsset returns the path of a previously pushed custom asset, or
	// ErrAssetNotFound
	CustomAsset(ref string) (string, error)

	// SaveUpload persists an uploaded asset under a sanitized unique name and
	// returns the stored filename
	SaveUpload(clientName string, r io.Reader) (string, error)

	// SaveFetched persists an asset retrieved from the upload server under its
	// announced name and returns the stored path
	SaveFetched(ref string, data []byte) (string, error)
}

// FrameRenderer prepares the still frame shown for image sessions
type FrameRenderer interface {
	// Render rotates, enhances and resizes the source image, returning the
	// path of the frame file handed to the image backend
	Render(srcPath string, brightness, contrast float64) (string, error)
}

// VolumeControl adjusts the OS audio mixer. Failures are logged by callers
// and never treated as fatal.
type VolumeControl interface {
	Apply(ctx context.Context, action VolumeAction) error
}

// DisplayGuard keeps the display awake while a session is visible. Both calls
// are best effort and idempotent.
type DisplayGuard interface {
	Acquire()
	Release()
}

// AssetFetcher retrieves a custom asset that was announced but not attached,
// from the upload server
type AssetFetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}
