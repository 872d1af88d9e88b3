// Package backend defines the ordered player catalogs and translates a
// resolved playback recipe into per-backend command lines. The catalogs are
// immutable, built at startup, and walked in fixed priority order by the
// supervisor.
package backend

import (
	"fmt"

	"github.com/golocube/kioskd/internal/domain"
)

// Player describes one external player: its binary on PATH and the
// translation from a playback recipe to an argument list
type Player struct {
	Name   string
	Binary string
	Args   func(p domain.Playback) []string
}

// GammaCompensation counters the black-level lift caused by raising video
// brightness. Empirical correction, reproduced as tuned on the kiosk panel:
// gamma = clamp(-(brightness/100) * 1.6, -2.0, 2.0)
func GammaCompensation(brightnessPercent float64) float64 {
	g := -(brightnessPercent / 100.0) * 1.6
	if g < -2.0 {
		g = -2.0
	}
	if g > 2.0 {
		g = 2.0
	}
	return g
}

// VideoCatalog returns the animation backends in priority order
func VideoCatalog() []Player {
	return []Player{
		{Name: "mpv", Binary: "mpv", Args: mpvVideoArgs},
		{Name: "ffplay", Binary: "ffplay", Args: ffplayArgs},
		{Name: "vlc", Binary: "cvlc", Args: vlcArgs},
	}
}

// ImageCatalog returns the still-frame backends in priority order. The frame
// is pre-rendered (rotation and enhancement baked in), so these only need to
// fill the screen.
func ImageCatalog() []Player {
	return []Player{
		{Name: "feh", Binary: "feh", Args: fehArgs},
		{Name: "mpv-image", Binary: "mpv", Args: mpvImageArgs},
	}
}

// AudioCatalog returns the background-audio backends in priority order
func AudioCatalog() []Player {
	return []Player{
		{Name: "mpg123", Binary: "mpg123", Args: mpg123Args},
		{Name: "mpv-audio", Binary: "mpv", Args: mpvAudioArgs},
	}
}

// Binaries lists the distinct binary names across catalogs, for the orphan
// sweep after teardown
func Binaries(catalogs ...[]Player) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, catalog := range catalogs {
		for _, p := range catalog {
			if _, ok := seen[p.Binary]; ok {
				continue
			}
			seen[p.Binary] = struct{}{}
			out = append(out, p.Binary)
		}
	}
	return out
}

func mpvVideoArgs(p domain.Playback) []string {
	args := []string{"--fs", "--no-osd-bar", "--really-quiet", "--video-rotate=180"}
	// Scale into the bezel-adjusted area and pad back to the full panel
	if w, h := p.Geometry.AdjustedWidth(), p.Geometry.AdjustedHeight(); w > 0 && h > 0 {
		args = append(args, fmt.Sprintf(
			"--vf=lavfi=[scale=%d:%d:force_original_aspect_ratio=0,pad=%d:%d:%d:%d]",
			w, h, p.Geometry.Width, p.Geometry.Height,
			p.Geometry.LeftOffset, p.Geometry.TopOffset))
	}
	if p.BrightnessPercent != nil {
		args = append(args, fmt.Sprintf("--brightness=%g", *p.BrightnessPercent))
	}
	if p.Gamma != nil {
		args = append(args, fmt.Sprintf("--gamma=%g", *p.Gamma))
	}
	if p.Speed != 0 && p.Speed != 1.0 {
		args = append(args, fmt.Sprintf("--speed=%g", p.Speed))
	}
	return append(args, "--loop-file=inf", p.Path)
}

func ffplayArgs(p domain.Playback) []string {
	// 180 degree rotation as a flip pair; eq brightness wants a -1..1 float
	vf := "hflip,vflip"
	if p.BrightnessPercent != nil {
		vf += fmt.Sprintf(",eq=brightness=%g", *p.BrightnessPercent/100.0)
	}
	if w, h := p.Geometry.AdjustedWidth(), p.Geometry.AdjustedHeight(); w > 0 && h > 0 {
		vf += fmt.Sprintf(",scale=%d:%d", w, h)
	}

	args := []string{"-fs", "-autoexit", "-hide_banner", "-loglevel", "error", "-vf", vf}
	// atempo only supports 0.5..2.0; outside that range the audio keeps
	// normal speed rather than failing the launch
	if p.Speed != 0 && p.Speed != 1.0 && p.Speed >= 0.5 && p.Speed <= 2.0 {
		args = append(args, "-af", fmt.Sprintf("atempo=%g", p.Speed))
	}
	return append(args, "-loop", "0", p.Path)
}

func vlcArgs(p domain.Playback) []string {
	args := []string{"--fullscreen", "--loop"}
	if p.Speed != 0 && p.Speed != 1.0 {
		args = append(args, fmt.Sprintf("--rate=%g", p.Speed))
	}
	return append(args, p.Path)
}

func fehArgs(p domain.Playback) []string {
	return []string{"--fullscreen", "--hide-pointer", "--zoom", "fill", p.Path}
}

func mpvImageArgs(p domain.Playback) []string {
	return []string{"--fs", "--really-quiet", "--image-display-duration=inf", "--loop-file=inf", p.Path}
}

func mpg123Args(p domain.Playback) []string {
	return []string{"--loop", "-1", p.Path}
}

func mpvAudioArgs(p domain.Playback) []string {
	return []string{"--no-video", "--really-quiet", "--loop-file=inf", p.Path}
}
