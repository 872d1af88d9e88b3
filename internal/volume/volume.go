// Package volume adjusts the host audio mixer. The kiosk prefers PulseAudio's
// pactl and falls back to ALSA's amixer; when neither exists volume commands
// are accepted and ignored, matching the rest of the system's
// degrade-gracefully behavior.
package volume

import (
	"context"
	"fmt"
	"os/exec"

	"go.uber.org/zap"

	"github.com/golocube/kioskd/internal/domain"
)

// mixerTool maps volume actions to one binary's argument lists
type mixerTool struct {
	binary string
	args   map[domain.VolumeAction][]string
}

var mixerTools = []mixerTool{
	{
		binary: "pactl",
		args: map[domain.VolumeAction][]string{
			domain.VolumeUp:   {"set-sink-volume", "@DEFAULT_SINK@", "+10%"},
			domain.VolumeDown: {"set-sink-volume", "@DEFAULT_SINK@", "-10%"},
			domain.VolumeMax:  {"set-sink-volume", "@DEFAULT_SINK@", "100%"},
			domain.VolumeMute: {"set-sink-mute", "@DEFAULT_SINK@", "toggle"},
		},
	},
	{
		binary: "amixer",
		args: map[domain.VolumeAction][]string{
			domain.VolumeUp:   {"set", "Master", "10%+"},
			domain.VolumeDown: {"set", "Master", "10%-"},
			domain.VolumeMax:  {"set", "Master", "100%"},
			domain.VolumeMute: {"set", "Master", "toggle"},
		},
	},
}

// runner abstracts command execution for tests
type runner interface {
	available(binary string) bool
	run(ctx context.Context, binary string, args []string) error
}

type execRunner struct{}

func (execRunner) available(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

func (execRunner) run(ctx context.Context, binary string, args []string) error {
	return exec.CommandContext(ctx, binary, args...).Run()
}

// Controller applies volume actions through the first usable mixer tool
type Controller struct {
	logger *zap.Logger
	runner runner
	tools  []mixerTool
}

// NewController creates the OS mixer controller
func NewController(logger *zap.Logger) *Controller {
	return &Controller{logger: logger, runner: execRunner{}, tools: mixerTools}
}

// Apply performs a mixer action. An unknown action is an error; a missing or
// failing mixer tool is reported but callers are expected to swallow it.
func (c *Controller) Apply(ctx context.Context, action domain.VolumeAction) error {
	for _, tool := range c.tools {
		args, ok := tool.args[action]
		if !ok {
			return fmt.Errorf("unknown volume action %q: %w", action, domain.ErrInvalidCommand)
		}
		if !c.runner.available(tool.binary) {
			continue
		}
		if err := c.runner.run(ctx, tool.binary, args); err != nil {
			c.logger.Warn("Mixer command failed",
				zap.String("tool", tool.binary),
				zap.String("action", string(action)),
				zap.Error(err))
			continue
		}
		c.logger.Info("Volume adjusted",
			zap.String("tool", tool.binary),
			zap.String("action", string(action)))
		return nil
	}
	return fmt.Errorf("no usable mixer tool for action %q", action)
}
