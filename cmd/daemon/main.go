package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/golocube/kioskd/internal/assets"
	"github.com/golocube/kioskd/internal/config"
	"github.com/golocube/kioskd/internal/dispatcher"
	"github.com/golocube/kioskd/internal/display"
	"github.com/golocube/kioskd/internal/domain"
	"github.com/golocube/kioskd/internal/fetch"
	"github.com/golocube/kioskd/internal/ingest"
	"github.com/golocube/kioskd/internal/queue"
	"github.com/golocube/kioskd/internal/render"
	"github.com/golocube/kioskd/internal/supervisor"
	"github.com/golocube/kioskd/internal/volume"
	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the full production dependency graph, split out so the tests
// can validate it
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.NewAppConfig,
		newFilesystem,
		display.NewScreenGeometry,
		newQueue,
		newStore,
		newResolver,
		newRenderer,
		newLauncher,
		newSupervisor,
		newVolumeControl,
		newDisplayGuard,
		newFetcher,
		newDispatcher,
		newServer,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance
func newLogger() (*zap.Logger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

func newFilesystem() afero.Fs {
	return afero.NewOsFs()
}

func newQueue(cfg *config.AppConfig) domain.CommandQueue {
	return queue.New(cfg.GetQueueCapacity())
}

func newStore(logger *zap.Logger, fs afero.Fs, cfg *config.AppConfig) (domain.AssetStore, error) {
	return assets.NewStore(logger, fs, cfg.GetStaticDir(), cfg.GetDownloadDir(), cfg.GetUploadTTL())
}

func newResolver() domain.SettingsResolver {
	return assets.NewSettingsResolver()
}

func newRenderer(logger *zap.Logger, geom domain.ScreenGeometry, cfg *config.AppConfig) domain.FrameRenderer {
	return render.NewFrameRenderer(logger, geom, cfg.GetOutputDir())
}

func newLauncher(logger *zap.Logger) supervisor.Launcher {
	return supervisor.NewLauncher(logger)
}

func newSupervisor(logger *zap.Logger, launcher supervisor.Launcher, cfg *config.AppConfig) domain.Supervisor {
	return supervisor.New(logger, launcher, cfg.GetLaunchGrace(), cfg.GetTermWait())
}

func newVolumeControl(logger *zap.Logger) domain.VolumeControl {
	return volume.NewController(logger)
}

// newDisplayGuard connects to the session bus when one is reachable; headless
// or busless hosts get a disabled inhibitor instead of a startup failure
func newDisplayGuard(logger *zap.Logger) domain.DisplayGuard {
	client, err := display.NewStdScreenSaverClient()
	if err != nil {
		logger.Warn("Session bus unavailable, screensaver inhibition disabled", zap.Error(err))
		return display.NewInhibitor(logger, nil)
	}
	return display.NewInhibitor(logger, client)
}

func newFetcher(logger *zap.Logger, cfg *config.AppConfig) domain.AssetFetcher {
	return fetch.NewHTTPFetcher(logger, cfg.GetUploadServerURL())
}

func newDispatcher(
	logger *zap.Logger,
	cfg *config.AppConfig,
	q domain.CommandQueue,
	sup domain.Supervisor,
	resolver domain.SettingsResolver,
	store domain.AssetStore,
	renderer domain.FrameRenderer,
	vol domain.VolumeControl,
	guard domain.DisplayGuard,
	fetcher domain.AssetFetcher,
	geom domain.ScreenGeometry,
) *dispatcher.Dispatcher {
	return dispatcher.NewDispatcher(logger, q, sup, resolver, store, renderer,
		vol, guard, fetcher, geom, cfg.GetTickInterval())
}

func newServer(
	logger *zap.Logger,
	cfg *config.AppConfig,
	q domain.CommandQueue,
	store domain.AssetStore,
	resolver domain.SettingsResolver,
	disp *dispatcher.Dispatcher,
	fs afero.Fs,
) *ingest.Server {
	return ingest.NewServer(logger, cfg.GetPort(), q, store, resolver, disp, fs, cfg.GetMaxUploadSize())
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, srv *ingest.Server, disp *dispatcher.Dispatcher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Kiosk daemon starting")
			// The loop outlives the startup context; Stop joins it later
			if err := disp.Start(context.Background()); err != nil {
				return err
			}
			go func() {
				if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("Webhook server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Kiosk daemon shutting down")
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("Webhook server shutdown error", zap.Error(err))
			}
			return disp.Stop(ctx)
		},
	})
}
