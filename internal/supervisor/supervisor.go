// Package supervisor owns the external player processes. One visual slot and
// one audio slot exist; each is started by walking a backend catalog in
// priority order and torn down with a graceful-then-forced sequence plus an
// orphan sweep.
package supervisor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/golocube/kioskd/internal/backend"
	"github.com/golocube/kioskd/internal/domain"
)

const (
	// DefaultLaunchGrace is how long a freshly spawned player must survive
	// before it is accepted as the session process
	DefaultLaunchGrace = 500 * time.Millisecond

	// DefaultTermWait bounds the cooperative shutdown before force-kill
	DefaultTermWait = time.Second
)

// Supervisor manages the visual and audio process slots. It is driven only by
// the dispatcher goroutine, so the slots need no locking.
type Supervisor struct {
	logger   *zap.Logger
	launcher Launcher
	grace    time.Duration
	termWait time.Duration

	videoCatalog []backend.Player
	imageCatalog []backend.Player
	audioCatalog []backend.Player

	visual Handle
	audio  Handle
}

// New creates a supervisor over the standard catalogs. Non-positive timeouts
// fall back to the defaults.
func New(logger *zap.Logger, launcher Launcher, grace, termWait time.Duration) *Supervisor {
	if grace <= 0 {
		grace = DefaultLaunchGrace
	}
	if termWait <= 0 {
		termWait = DefaultTermWait
	}
	return &Supervisor{
		logger:       logger,
		launcher:     launcher,
		grace:        grace,
		termWait:     termWait,
		videoCatalog: backend.VideoCatalog(),
		imageCatalog: backend.ImageCatalog(),
		audioCatalog: backend.AudioCatalog(),
	}
}

// StartVideo binds the first surviving video backend to the visual slot
func (s *Supervisor) StartVideo(ctx context.Context, p domain.Playback) error {
	s.StopVisual()

	h, err := s.startSlot(ctx, s.videoCatalog, p)
	if err != nil {
		return err
	}
	s.visual = h
	return nil
}

// StartImage displays a pre-rendered frame through the image catalog
func (s *Supervisor) StartImage(ctx context.Context, framePath string) error {
	s.StopVisual()

	h, err := s.startSlot(ctx, s.imageCatalog, domain.Playback{Path: framePath, Speed: 1.0})
	if err != nil {
		return err
	}
	s.visual = h
	return nil
}

// StartAudio starts looping background audio in the audio slot
func (s *Supervisor) StartAudio(ctx context.Context, path string) error {
	s.StopAudio()

	h, err := s.startSlot(ctx, s.audioCatalog, domain.Playback{Path: path, Speed: 1.0})
	if err != nil {
		return err
	}
	s.audio = h
	return nil
}

// StopVisual tears down the visual slot and sweeps visual player orphans
func (s *Supervisor) StopVisual() {
	s.stopSlot(&s.visual, backend.Binaries(s.videoCatalog, s.imageCatalog))
}

// StopAudio tears down the audio slot and sweeps audio player orphans
func (s *Supervisor) StopAudio() {
	s.stopSlot(&s.audio, backend.Binaries(s.audioCatalog))
}

// VisualAlive reports whether the visual slot holds a live process
func (s *Supervisor) VisualAlive() bool {
	return s.visual != nil && s.visual.Alive()
}

// AudioAlive reports whether the audio slot holds a live process
func (s *Supervisor) AudioAlive() bool {
	return s.audio != nil && s.audio.Alive()
}

// startSlot walks a catalog in priority order. A backend whose binary is
// missing is skipped without spawning anything; a backend that exits within
// the grace period counts as a launch failure and the next one is tried.
func (s *Supervisor) startSlot(ctx context.Context, catalog []backend.Player, p domain.Playback) (Handle, error) {
	for _, b := range catalog {
		if !s.launcher.Available(b.Binary) {
			s.logger.Debug("Player binary not on PATH, skipping",
				zap.String("backend", b.Name))
			continue
		}

		h, err := s.launcher.Launch(ctx, b.Binary, b.Args(p))
		if err != nil {
			s.logger.Warn("Player failed to spawn",
				zap.String("backend", b.Name), zap.Error(err))
			continue
		}

		if h.Wait(s.grace) {
			// exited inside the grace period: treat as a launch failure
			s.logger.Warn("Player exited during grace period, trying next backend",
				zap.String("backend", b.Name))
			continue
		}

		s.logger.Info("Player started",
			zap.String("backend", b.Name),
			zap.String("path", p.Path))
		return h, nil
	}

	return nil, domain.ErrNoBackendAvailable
}

// stopSlot terminates a slot: process-group SIGTERM, bounded wait, SIGKILL,
// then a best-effort sweep over every known binary of the slot's catalogs
func (s *Supervisor) stopSlot(slot *Handle, sweepBinaries []string) {
	if h := *slot; h != nil {
		if err := h.Terminate(); err != nil {
			s.logger.Debug("Terminate failed, process may already be gone",
				zap.String("binary", h.Binary()), zap.Error(err))
		}
		if !h.Wait(s.termWait) {
			s.logger.Warn("Player ignored SIGTERM, force-killing",
				zap.String("binary", h.Binary()))
			if err := h.Kill(); err != nil {
				s.logger.Warn("Force-kill failed",
					zap.String("binary", h.Binary()), zap.Error(err))
			}
			h.Wait(s.termWait)
		}
		*slot = nil
	}

	for _, bin := range sweepBinaries {
		s.launcher.Sweep(bin)
	}
}
