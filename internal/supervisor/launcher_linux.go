//go:build linux

package supervisor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ExecLauncher spawns players as real OS process groups
type ExecLauncher struct {
	logger *zap.Logger
}

// NewLauncher creates the platform launcher (Linux implementation)
func NewLauncher(logger *zap.Logger) *ExecLauncher {
	return &ExecLauncher{logger: logger}
}

// Available reports whether the binary can be found on PATH
func (l *ExecLauncher) Available(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// Launch spawns the binary in a new process group so the whole player tree
// can be signalled at once
func (l *ExecLauncher) Launch(ctx context.Context, binary string, args []string) (Handle, error) {
	cmd := exec.Command(binary, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Env = displayEnv()
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start %s: %w", binary, err)
	}

	h := &execHandle{
		binary: binary,
		cmd:    cmd,
		done:   make(chan struct{}),
	}
	go func() {
		_ = cmd.Wait()
		close(h.done)
	}()

	l.logger.Debug("Player process launched",
		zap.String("binary", binary),
		zap.Int("pid", cmd.Process.Pid),
		zap.Strings("args", args))
	return h, nil
}

// Sweep kills any stray process matching the binary name
func (l *ExecLauncher) Sweep(binary string) {
	_ = exec.Command("pkill", binary).Run()
}

// displayEnv ensures the spawned player can reach the X display even when the
// daemon runs from a session without one configured
func displayEnv() []string {
	env := os.Environ()
	if os.Getenv("DISPLAY") == "" {
		env = append(env, "DISPLAY=:0")
	}
	if os.Getenv("XAUTHORITY") == "" {
		if u, err := user.Current(); err == nil {
			xa := filepath.Join(u.HomeDir, ".Xauthority")
			if _, err := os.Stat(xa); err == nil {
				env = append(env, "XAUTHORITY="+xa)
			}
		}
	}
	return env
}

type execHandle struct {
	binary string
	cmd    *exec.Cmd
	done   chan struct{}
}

func (h *execHandle) Binary() string { return h.binary }

func (h *execHandle) Alive() bool {
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}

func (h *execHandle) Terminate() error {
	return syscall.Kill(-h.cmd.Process.Pid, syscall.SIGTERM)
}

func (h *execHandle) Kill() error {
	return syscall.Kill(-h.cmd.Process.Pid, syscall.SIGKILL)
}

func (h *execHandle) Wait(timeout time.Duration) bool {
	select {
	case <-h.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
