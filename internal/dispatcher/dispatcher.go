package dispatcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/golocube/kioskd/internal/backend"
	"github.com/golocube/kioskd/internal/domain"
	"go.uber.org/zap"
)

// DefaultTickInterval is how often the loop polls the queue when idle
const DefaultTickInterval = 100 * time.Millisecond

// Status is a point-in-time snapshot of the foreground session, served by the
// HTTP status endpoint.
type Status struct {
	Running       bool               `json:"running"`
	Session       domain.SessionKind `json:"session"`
	AssetID       string             `json:"asset_id,omitempty"`
	AssetRef      string             `json:"asset_ref,omitempty"`
	Music         bool               `json:"music"`
	Pending       int                `json:"queue_size"`
	UptimeSeconds int64              `json:"uptime_seconds"`
}

// Dispatcher drains the command queue and drives the supervisor through the
// session state machine. It is the queue's only consumer; all process
// transitions happen on its loop goroutine.
type Dispatcher struct {
	logger   *zap.Logger
	queue    domain.CommandQueue
	sup      domain.Supervisor
	resolver domain.SettingsResolver
	store    domain.AssetStore
	renderer domain.FrameRenderer
	volume   domain.VolumeControl
	guard    domain.DisplayGuard
	fetcher  domain.AssetFetcher
	geometry domain.ScreenGeometry
	tick     time.Duration

	mu         sync.Mutex
	running    bool
	started    time.Time
	cancelLoop context.CancelFunc
	loopDone   chan struct{}
	session    domain.SessionKind
	assetID    string
	assetRef   string
	music      bool
}

// NewDispatcher creates the dispatch loop over its collaborators. fetcher may
// be nil when no upload server is configured.
func NewDispatcher(
	logger *zap.Logger,
	queue domain.CommandQueue,
	sup domain.Supervisor,
	resolver domain.SettingsResolver,
	store domain.AssetStore,
	renderer domain.FrameRenderer,
	volume domain.VolumeControl,
	guard domain.DisplayGuard,
	fetcher domain.AssetFetcher,
	geometry domain.ScreenGeometry,
	tick time.Duration,
) *Dispatcher {
	if tick <= 0 {
		tick = DefaultTickInterval
	}
	return &Dispatcher{
		logger:   logger,
		queue:    queue,
		sup:      sup,
		resolver: resolver,
		store:    store,
		renderer: renderer,
		volume:   volume,
		guard:    guard,
		fetcher:  fetcher,
		geometry: geometry,
		tick:     tick,
		session:  domain.SessionNone,
	}
}

// Start launches the dispatch loop in a goroutine. It returns immediately.
func (d *Dispatcher) Start(ctx context.Context) error {
	d.logger.Info("Dispatcher starting...", zap.Duration("tick", d.tick))

	loopCtx, cancel := context.WithCancel(ctx)
	d.mu.Lock()
	d.running = true
	d.started = time.Now()
	d.cancelLoop = cancel
	d.loopDone = make(chan struct{})
	d.mu.Unlock()

	go d.runLoop(loopCtx)
	return nil
}

// Stop joins the loop goroutine, then tears down whatever is showing and
// releases the display guard. The supervisor slots must not be touched while
// a dispatch is still in flight.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.logger.Info("Dispatcher stopping...")

	d.mu.Lock()
	cancel, done := d.cancelLoop, d.loopDone
	d.mu.Unlock()

	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	d.stopSession()
	d.mu.Lock()
	d.running = false
	d.mu.Unlock()
	return nil
}

// Status reports the current session for the status endpoint. Safe to call
// from any goroutine.
func (d *Dispatcher) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := Status{
		Running:  d.running,
		Session:  d.session,
		AssetID:  d.assetID,
		AssetRef: d.assetRef,
		Music:    d.music,
		Pending:  d.queue.Len(),
	}
	if d.running {
		st.UptimeSeconds = int64(time.Since(d.started).Seconds())
	}
	return st
}

func (d *Dispatcher) runLoop(ctx context.Context) {
	d.mu.Lock()
	done := d.loopDone
	d.mu.Unlock()
	defer close(done)

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("Dispatcher loop stopped")
			return
		case <-ticker.C:
			// At most one command per tick
			if cmd, ok := d.queue.Dequeue(); ok {
				d.Dispatch(ctx, cmd)
			}
		}
	}
}

// Dispatch executes a single command. Exported for the loop's tests; outside
// tests only runLoop calls it.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd domain.Command) {
	switch cmd.Kind {
	case domain.KindStop:
		d.stopSession()
	case domain.KindVolume:
		if err := d.volume.Apply(ctx, cmd.Volume); err != nil {
			d.logger.Warn("Volume adjustment failed",
				zap.String("action", string(cmd.Volume)),
				zap.Error(err))
		}
	case domain.KindShowStatic:
		d.showStatic(ctx, cmd)
	case domain.KindShowCustom:
		d.showCustom(ctx, cmd)
	default:
		d.logger.Warn("Dropping command of unknown kind", zap.String("kind", string(cmd.Kind)))
	}
}

// stopSession terminates both slots unconditionally and returns to idle
func (d *Dispatcher) stopSession() {
	d.sup.StopVisual()
	d.sup.StopAudio()
	d.guard.Release()
	d.setSession(domain.SessionNone, "", "", false)
}

func (d *Dispatcher) showStatic(ctx context.Context, cmd domain.Command) {
	// Resolve the asset before touching the running session: an unknown id
	// must leave whatever is showing untouched.
	imgPath, err := d.store.StaticImage(cmd.AssetID)
	if err != nil {
		d.logger.Warn("Static asset not found, session unchanged",
			zap.String("assetID", cmd.AssetID),
			zap.Error(err))
		return
	}

	brightness, contrast := d.resolver.Resolve(cmd.AssetID, false, cmd.Brightness, cmd.Contrast)

	d.sup.StopVisual()
	d.sup.StopAudio()

	if cmd.MusicEnabled {
		d.startMusic(ctx, cmd.AssetID)
	}

	if cmd.LightingEnabled {
		if animPath, ok := d.store.StaticAnimation(cmd.AssetID); ok {
			if d.startAnimation(ctx, animPath, cmd.AssetID) {
				d.guard.Acquire()
				d.setSession(domain.SessionAnimation, cmd.AssetID, "", cmd.MusicEnabled)
				return
			}
			// Fall through to the still frame; audio keeps running
		}
	}

	d.showFrame(ctx, imgPath, brightness, contrast, cmd.AssetID, "", cmd.MusicEnabled)
}

func (d *Dispatcher) showCustom(ctx context.Context, cmd domain.Command) {
	path, err := d.store.CustomAsset(cmd.AssetRef)
	if err != nil {
		path, err = d.fetchMissing(ctx, cmd.AssetRef)
		if err != nil {
			d.logger.Warn("Custom asset not found, session unchanged",
				zap.String("assetRef", cmd.AssetRef),
				zap.Error(err))
			return
		}
	}

	// Custom uploads always render neutral regardless of what the caller sent
	brightness, contrast := d.resolver.Resolve(cmd.AssetRef, true, cmd.Brightness, cmd.Contrast)

	d.sup.StopVisual()
	d.sup.StopAudio()

	if cmd.MusicEnabled {
		if track, ok := d.store.DefaultMusic(); ok {
			if err := d.sup.StartAudio(ctx, track); err != nil {
				d.logger.Warn("Background audio failed to start", zap.Error(err))
			}
		} else {
			d.logger.Warn("Music requested but no default track is provisioned")
		}
	}

	d.showFrame(ctx, path, brightness, contrast, "", cmd.AssetRef, cmd.MusicEnabled)
}

// fetchMissing pulls an announced-but-missing custom asset from the upload
// server, when one is configured.
func (d *Dispatcher) fetchMissing(ctx context.Context, ref string) (string, error) {
	if d.fetcher == nil {
		return "", domain.ErrAssetNotFound
	}
	data, err := d.fetcher.Fetch(ctx, ref)
	if err != nil {
		return "", err
	}
	path, err := d.store.SaveFetched(ref, data)
	if err != nil {
		return "", err
	}
	d.logger.Info("Fetched missing custom asset",
		zap.String("assetRef", ref),
		zap.Int("bytes", len(data)))
	return path, nil
}

// startMusic starts the per-asset track, falling back to the default one.
// Audio failures never abort the visual session.
func (d *Dispatcher) startMusic(ctx context.Context, assetID string) {
	track, ok := d.store.StaticMusic(assetID)
	if !ok {
		track, ok = d.store.DefaultMusic()
	}
	if !ok {
		d.logger.Warn("Music requested but no track is provisioned",
			zap.String("assetID", assetID))
		return
	}
	if err := d.sup.StartAudio(ctx, track); err != nil {
		d.logger.Warn("Background audio failed to start",
			zap.String("track", track),
			zap.Error(err))
	}
}

// startAnimation attempts the animated variant; returns false to request the
// still-frame fallback
func (d *Dispatcher) startAnimation(ctx context.Context, path, assetID string) bool {
	percent, speed := d.resolver.VideoOverride(assetID)
	p := domain.Playback{
		Path:              path,
		BrightnessPercent: percent,
		Speed:             speed,
		Geometry:          d.geometry,
	}
	if percent != nil {
		gamma := backend.GammaCompensation(*percent)
		p.Gamma = &gamma
	}

	err := d.sup.StartVideo(ctx, p)
	if err == nil {
		return true
	}
	if errors.Is(err, domain.ErrNoBackendAvailable) {
		d.logger.Warn("No video backend available, falling back to still frame",
			zap.String("assetID", assetID))
	} else {
		d.logger.Warn("Animation failed to start, falling back to still frame",
			zap.String("assetID", assetID),
			zap.Error(err))
	}
	return false
}

// showFrame renders and displays a still image session. Called after teardown,
// so any failure ends in a clean idle state.
func (d *Dispatcher) showFrame(ctx context.Context, srcPath string, brightness, contrast float64, assetID, assetRef string, music bool) {
	framePath, err := d.renderer.Render(srcPath, brightness, contrast)
	if err != nil {
		d.logger.Error("Frame rendering failed", zap.String("source", srcPath), zap.Error(err))
		d.stopSession()
		return
	}

	if err := d.sup.StartImage(ctx, framePath); err != nil {
		d.logger.Error("Image backend failed to start", zap.Error(err))
		d.stopSession()
		return
	}

	d.guard.Acquire()
	d.setSession(domain.SessionImage, assetID, assetRef, music)
}

func (d *Dispatcher) setSession(kind domain.SessionKind, assetID, assetRef string, music bool) {
	d.mu.Lock()
	d.session = kind
	d.assetID = assetID
	d.assetRef = assetRef
	d.music = music
	d.mu.Unlock()

	d.logger.Info("Session state",
		zap.String("session", string(kind)),
		zap.String("assetID", assetID),
		zap.String("assetRef", assetRef),
		zap.Bool("music", music))
}
