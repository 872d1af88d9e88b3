package supervisor

import (
	"context"
	"time"
)

// Launcher abstracts process creation so the supervisor can be tested without
// spawning real players.
//
//go:generate mockgen -destination=mocks/launcher_mock.go -package=mocks github.com/golocube/kioskd/internal/supervisor Launcher,Handle
type Launcher interface {
	// Available reports whether the binary can be found on PATH
	Available(binary string) bool

	// Launch spawns the binary in its own process group with the kiosk
	// display environment
	Launch(ctx context.Context, binary string, args []string) (Handle, error)

	// Sweep best-effort kills any stray process matching the binary name,
	// catching orphans left by a previous crashed run
	Sweep(binary string)
}

// Handle supervises one spawned process group
type Handle interface {
	// Binary returns the launched binary name
	Binary() string

	// Alive reports whether the process is still running
	Alive() bool

	// Terminate sends the cooperative shutdown signal to the process group
	Terminate() error

	// Kill force-kills the process group
	Kill() error

	// Wait blocks until the process exits or the timeout elapses; it reports
	// whether the process exited
	Wait(timeout time.Duration) bool
}
