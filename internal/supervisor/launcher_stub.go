//go:build !linux

package supervisor

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// StubLauncher is a placeholder for platforms without process-group support.
// The kiosk hardware runs Linux; other platforms get a clear error instead of
// half-working playback.
type StubLauncher struct {
	logger *zap.Logger
}

// NewLauncher creates the platform launcher (unsupported-platform stub)
func NewLauncher(logger *zap.Logger) *StubLauncher {
	logger.Warn("Player process supervision is only implemented for Linux")
	return &StubLauncher{logger: logger}
}

// Available always reports false on unsupported platforms
func (l *StubLauncher) Available(binary string) bool { return false }

// Launch returns an error on unsupported platforms
func (l *StubLauncher) Launch(ctx context.Context, binary string, args []string) (Handle, error) {
	return nil, fmt.Errorf("player launch not supported on this platform")
}

// Sweep is a no-op on unsupported platforms
func (l *StubLauncher) Sweep(binary string) {}
