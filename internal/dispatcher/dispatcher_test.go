package dispatcher

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golocube/kioskd/internal/assets"
	"github.com/golocube/kioskd/internal/domain"
	"github.com/golocube/kioskd/internal/domain/mocks"
	"github.com/golocube/kioskd/internal/queue"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type deps struct {
	queue    *mocks.MockCommandQueue
	sup      *mocks.MockSupervisor
	resolver *mocks.MockSettingsResolver
	store    *mocks.MockAssetStore
	renderer *mocks.MockFrameRenderer
	volume   *mocks.MockVolumeControl
	guard    *mocks.MockDisplayGuard
	fetcher  *mocks.MockAssetFetcher
}

func newDeps(ctrl *gomock.Controller) deps {
	return deps{
		queue:    mocks.NewMockCommandQueue(ctrl),
		sup:      mocks.NewMockSupervisor(ctrl),
		resolver: mocks.NewMockSettingsResolver(ctrl),
		store:    mocks.NewMockAssetStore(ctrl),
		renderer: mocks.NewMockFrameRenderer(ctrl),
		volume:   mocks.NewMockVolumeControl(ctrl),
		guard:    mocks.NewMockDisplayGuard(ctrl),
		fetcher:  mocks.NewMockAssetFetcher(ctrl),
	}
}

func newDispatcher(d deps) *Dispatcher {
	geom := domain.ScreenGeometry{Width: 1920, Height: 1080, LeftOffset: 5, RightOffset: 100}
	return NewDispatcher(zap.NewNop(), d.queue, d.sup, d.resolver, d.store,
		d.renderer, d.volume, d.guard, d.fetcher, geom, 0)
}

func f64(v float64) *float64 { return &v }

func TestStopTearsDownEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	d.sup.EXPECT().StopVisual()
	d.sup.EXPECT().StopAudio()
	d.guard.EXPECT().Release()
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(context.Background(), domain.Command{Kind: domain.KindStop})

	if got := disp.Status().Session; got != domain.SessionNone {
		t.Errorf("session = %q, want %q", got, domain.SessionNone)
	}
}

// A show for an unknown asset must not disturb whatever is on screen.
func TestStaticAssetNotFoundLeavesSessionUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	d.store.EXPECT().StaticImage("9").Return("", domain.ErrAssetNotFound)
	// No supervisor, renderer or guard expectations: any call fails the test.

	disp := newDispatcher(d)
	disp.Dispatch(context.Background(), domain.Command{Kind: domain.KindShowStatic, AssetID: "9"})
}

// Audio must be running before the video backend is spawned, and the session
// must land in the animation state with the normalized gamma compensation.
func TestStaticWithLightingStartsAudioBeforeVideo(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx := context.Background()

	d.store.EXPECT().StaticImage("2").Return("/static/static_2.png", nil)
	d.resolver.EXPECT().Resolve("2", false, 1.0, 1.0).Return(1.40, 1.35)
	d.store.EXPECT().StaticAnimation("2").Return("/static/animation_2.mp4", true)
	d.resolver.EXPECT().VideoOverride("2").Return(f64(-5), 0.8)
	d.store.EXPECT().StaticMusic("2").Return("/static/music_2.mp3", true)

	var started domain.Playback
	gomock.InOrder(
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
		d.sup.EXPECT().StartAudio(ctx, "/static/music_2.mp3").Return(nil),
		d.sup.EXPECT().StartVideo(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, p domain.Playback) error {
				started = p
				return nil
			}),
	)
	d.guard.EXPECT().Acquire()
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(ctx, domain.Command{
		Kind:            domain.KindShowStatic,
		AssetID:         "2",
		MusicEnabled:    true,
		LightingEnabled: true,
		Brightness:      1.0,
		Contrast:        1.0,
	})

	if got := disp.Status().Session; got != domain.SessionAnimation {
		t.Errorf("session = %q, want %q", got, domain.SessionAnimation)
	}
	if started.Path != "/static/animation_2.mp4" {
		t.Errorf("playback path = %q", started.Path)
	}
	if started.BrightnessPercent == nil || *started.BrightnessPercent != -5 {
		t.Errorf("brightness percent = %v, want -5", started.BrightnessPercent)
	}
	if started.Gamma == nil || math.Abs(*started.Gamma-0.08) > 1e-9 {
		t.Errorf("gamma = %v, want 0.08", started.Gamma)
	}
	if started.Speed != 0.8 {
		t.Errorf("speed = %v, want 0.8", started.Speed)
	}
}

// When every video backend fails the still frame takes over but the audio
// that already started keeps playing.
func TestVideoFailureFallsBackToFrameKeepingAudio(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx := context.Background()

	d.store.EXPECT().StaticImage("1").Return("/static/static_1.png", nil)
	d.resolver.EXPECT().Resolve("1", false, 1.0, 1.0).Return(1.25, 1.20)
	d.store.EXPECT().StaticAnimation("1").Return("/static/animation_1.mp4", true)
	d.resolver.EXPECT().VideoOverride("1").Return(f64(10), 1.0)
	d.store.EXPECT().StaticMusic("1").Return("/static/music_1.mp3", true)

	gomock.InOrder(
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
		d.sup.EXPECT().StartAudio(ctx, "/static/music_1.mp3").Return(nil),
		d.sup.EXPECT().StartVideo(ctx, gomock.Any()).Return(domain.ErrNoBackendAvailable),
		d.sup.EXPECT().StartImage(ctx, "/tmp/current_frame.jpg").Return(nil),
	)
	d.renderer.EXPECT().Render("/static/static_1.png", 1.25, 1.20).Return("/tmp/current_frame.jpg", nil)
	d.guard.EXPECT().Acquire()
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(ctx, domain.Command{
		Kind:            domain.KindShowStatic,
		AssetID:         "1",
		MusicEnabled:    true,
		LightingEnabled: true,
		Brightness:      1.0,
		Contrast:        1.0,
	})

	if got := disp.Status().Session; got != domain.SessionImage {
		t.Errorf("session = %q, want %q", got, domain.SessionImage)
	}
}

// A render failure after teardown ends in a clean idle state.
func TestRenderFailureEndsIdle(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx := context.Background()

	d.store.EXPECT().StaticImage("3").Return("/static/static_3.png", nil)
	d.resolver.EXPECT().Resolve("3", false, 1.0, 1.0).Return(1.10, 1.00)

	gomock.InOrder(
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
		// stopSession after the render error
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
	)
	d.renderer.EXPECT().Render("/static/static_3.png", 1.10, 1.00).
		Return("", errors.New("decode failed"))
	d.guard.EXPECT().Release()
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(ctx, domain.Command{Kind: domain.KindShowStatic, AssetID: "3", Brightness: 1.0, Contrast: 1.0})

	if got := disp.Status().Session; got != domain.SessionNone {
		t.Errorf("session = %q, want %q", got, domain.SessionNone)
	}
}

// Custom uploads render neutral no matter what the caller sent. Uses the real
// table-backed resolver to prove the pipeline end to end.
func TestCustomAssetRendersNeutral(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx := context.Background()

	d.store.EXPECT().CustomAsset("photo.jpg").Return("/downloads/photo.jpg", nil)
	d.resolver.EXPECT().Resolve("photo.jpg", true, 9.9, -3.0).
		DoAndReturn(func(id string, custom bool, b, c float64) (float64, float64) {
			return assets.NewSettingsResolver().Resolve(id, custom, b, c)
		})
	d.sup.EXPECT().StopVisual()
	d.sup.EXPECT().StopAudio()
	d.renderer.EXPECT().Render("/downloads/photo.jpg", 1.0, 1.0).Return("/tmp/current_frame.jpg", nil)
	d.sup.EXPECT().StartImage(ctx, "/tmp/current_frame.jpg").Return(nil)
	d.guard.EXPECT().Acquire()
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(ctx, domain.Command{
		Kind:       domain.KindShowCustom,
		AssetRef:   "photo.jpg",
		Brightness: 9.9,
		Contrast:   -3.0,
	})

	st := disp.Status()
	if st.Session != domain.SessionImage || st.AssetRef != "photo.jpg" {
		t.Errorf("status = %+v", st)
	}
}

// A custom asset missing locally is pulled from the upload server and then
// shown as usual.
func TestCustomAssetFetchedOnMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx := context.Background()

	data := []byte("jpeg-bytes")
	gomock.InOrder(
		d.store.EXPECT().CustomAsset("remote.jpg").Return("", domain.ErrAssetNotFound),
		d.fetcher.EXPECT().Fetch(ctx, "remote.jpg").Return(data, nil),
		d.store.EXPECT().SaveFetched("remote.jpg", data).Return("/downloads/remote.jpg", nil),
	)
	d.resolver.EXPECT().Resolve("remote.jpg", true, 0.0, 0.0).Return(1.0, 1.0)
	d.sup.EXPECT().StopVisual()
	d.sup.EXPECT().StopAudio()
	d.renderer.EXPECT().Render("/downloads/remote.jpg", 1.0, 1.0).Return("/tmp/current_frame.jpg", nil)
	d.sup.EXPECT().StartImage(ctx, "/tmp/current_frame.jpg").Return(nil)
	d.guard.EXPECT().Acquire()
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(ctx, domain.Command{Kind: domain.KindShowCustom, AssetRef: "remote.jpg"})

	if got := disp.Status().Session; got != domain.SessionImage {
		t.Errorf("session = %q, want %q", got, domain.SessionImage)
	}
}

func TestCustomAssetMissWithoutFetcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	d.store.EXPECT().CustomAsset("ghost.jpg").Return("", domain.ErrAssetNotFound)

	geom := domain.ScreenGeometry{Width: 1920, Height: 1080}
	disp := NewDispatcher(zap.NewNop(), d.queue, d.sup, d.resolver, d.store,
		d.renderer, d.volume, d.guard, nil, geom, 0)
	disp.Dispatch(context.Background(), domain.Command{Kind: domain.KindShowCustom, AssetRef: "ghost.jpg"})
}

// Mixer failures are logged and swallowed; the session is untouched.
func TestVolumeFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx := context.Background()

	d.volume.EXPECT().Apply(ctx, domain.VolumeUp).Return(errors.New("no mixer tool"))
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(ctx, domain.Command{Kind: domain.KindVolume, Volume: domain.VolumeUp})

	if got := disp.Status().Session; got != domain.SessionNone {
		t.Errorf("session = %q, want %q", got, domain.SessionNone)
	}
}

// Consecutive shows tear the previous session down before starting the next.
func TestConsecutiveSessionsTearDownFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx := context.Background()

	d.store.EXPECT().StaticImage("1").Return("/static/static_1.png", nil)
	d.store.EXPECT().StaticImage("2").Return("/static/static_2.png", nil)
	d.resolver.EXPECT().Resolve("1", false, 1.0, 1.0).Return(1.25, 1.20)
	d.resolver.EXPECT().Resolve("2", false, 1.0, 1.0).Return(1.40, 1.35)
	d.renderer.EXPECT().Render("/static/static_1.png", 1.25, 1.20).Return("/tmp/frame1.jpg", nil)
	d.renderer.EXPECT().Render("/static/static_2.png", 1.40, 1.35).Return("/tmp/frame2.jpg", nil)

	gomock.InOrder(
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
		d.sup.EXPECT().StartImage(ctx, "/tmp/frame1.jpg").Return(nil),
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
		d.sup.EXPECT().StartImage(ctx, "/tmp/frame2.jpg").Return(nil),
	)
	d.guard.EXPECT().Acquire().Times(2)
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	disp := newDispatcher(d)
	disp.Dispatch(ctx, domain.Command{Kind: domain.KindShowStatic, AssetID: "1", Brightness: 1.0, Contrast: 1.0})
	disp.Dispatch(ctx, domain.Command{Kind: domain.KindShowStatic, AssetID: "2", Brightness: 1.0, Contrast: 1.0})

	st := disp.Status()
	if st.Session != domain.SessionImage || st.AssetID != "2" {
		t.Errorf("status = %+v", st)
	}
}

// The loop drains the real queue on its tick and reports running status.
func TestRunLoopConsumesQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	d.sup.EXPECT().StopVisual()
	d.sup.EXPECT().StopAudio()
	d.guard.EXPECT().Release().Do(func() { close(done) })

	q := queue.New(8)
	geom := domain.ScreenGeometry{Width: 1920, Height: 1080}
	disp := NewDispatcher(zap.NewNop(), q, d.sup, d.resolver, d.store,
		d.renderer, d.volume, d.guard, nil, geom, 5*time.Millisecond)

	if err := q.Enqueue(domain.Command{Kind: domain.KindStop}); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if err := disp.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("command was never dispatched")
	}

	if st := disp.Status(); !st.Running {
		t.Error("status should report running")
	}
}

// Stop must join the loop goroutine before touching the supervisor slots: a
// dispatch still in flight may not start a player after teardown completed.
func TestStopWaitsForInFlightDispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entered := make(chan struct{})
	release := make(chan struct{})

	d.store.EXPECT().StaticImage("1").Return("/static/static_1.png", nil)
	d.resolver.EXPECT().Resolve("1", false, 1.0, 1.0).Return(1.25, 1.20)
	d.renderer.EXPECT().Render("/static/static_1.png", 1.25, 1.20).Return("/tmp/frame.jpg", nil)

	gomock.InOrder(
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
		d.sup.EXPECT().StartImage(gomock.Any(), "/tmp/frame.jpg").
			DoAndReturn(func(context.Context, string) error {
				close(entered)
				<-release
				return nil
			}),
		// Stop's teardown must come strictly after the dispatch returned
		d.sup.EXPECT().StopVisual(),
		d.sup.EXPECT().StopAudio(),
	)
	d.guard.EXPECT().Acquire()
	d.guard.EXPECT().Release()
	d.queue.EXPECT().Len().Return(0).AnyTimes()

	q := queue.New(8)
	geom := domain.ScreenGeometry{Width: 1920, Height: 1080}
	disp := NewDispatcher(zap.NewNop(), q, d.sup, d.resolver, d.store,
		d.renderer, d.volume, d.guard, nil, geom, 5*time.Millisecond)

	if err := q.Enqueue(domain.Command{Kind: domain.KindShowStatic, AssetID: "1", Brightness: 1.0, Contrast: 1.0}); err != nil {
		t.Fatalf("enqueue failed: %v", err)
	}
	if err := disp.Start(ctx); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	<-entered

	stopDone := make(chan struct{})
	go func() {
		_ = disp.Stop(context.Background())
		close(stopDone)
	}()

	select {
	case <-stopDone:
		t.Fatal("Stop returned while a dispatch was still in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop never completed after the dispatch finished")
	}

	if got := disp.Status().Session; got != domain.SessionNone {
		t.Errorf("session = %q, want %q", got, domain.SessionNone)
	}
}

func TestUnknownKindIsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newDeps(ctrl)

	disp := newDispatcher(d)
	disp.Dispatch(context.Background(), domain.Command{Kind: "reboot"})
}
