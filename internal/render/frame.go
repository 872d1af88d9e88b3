// Package render prepares the still frame shown during image sessions. The
// source asset is rotated for the kiosk's inverted panel, enhanced with the
// resolved brightness/contrast, resized to the screen and written as a JPEG
// the image backend can display.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/golocube/kioskd/internal/domain"
)

const (
	frameFilename = "current_frame.jpg"
	jpegQuality   = 90
)

// FrameRenderer writes display-ready frames into the output directory
type FrameRenderer struct {
	logger    *zap.Logger
	geom      domain.ScreenGeometry
	outputDir string
}

// NewFrameRenderer creates a renderer targeting the detected screen geometry
func NewFrameRenderer(logger *zap.Logger, geom domain.ScreenGeometry, outputDir string) *FrameRenderer {
	return &FrameRenderer{
		logger:    logger,
		geom:      geom,
		outputDir: outputDir,
	}
}

// Render produces the frame file for a source image and returns its absolute
// path. Brightness and contrast are multipliers (1.0 neutral).
func (r *FrameRenderer) Render(srcPath string, brightness, contrast float64) (string, error) {
	img, err := imaging.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open image %s: %w", srcPath, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", fmt.Errorf("invalid image dimensions: %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Panel is mounted upside down
	out := imaging.Rotate180(img)

	// imaging adjusts by percentage points; the tables use multipliers
	if brightness != 1.0 {
		out = imaging.AdjustBrightness(out, (brightness-1.0)*100.0)
	}
	if contrast != 1.0 {
		out = imaging.AdjustContrast(out, (contrast-1.0)*100.0)
	}

	out = imaging.Resize(out, r.geom.Width, r.geom.Height, imaging.Lanczos)

	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	framePath := filepath.Join(r.outputDir, frameFilename)
	if err := imaging.Save(out, framePath, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("failed to write frame: %w", err)
	}

	r.logger.Debug("Frame rendered",
		zap.String("source", srcPath),
		zap.Float64("brightness", brightness),
		zap.Float64("contrast", contrast),
		zap.String("frame", framePath))

	abs, err := filepath.Abs(framePath)
	if err != nil {
		return framePath, nil
	}
	return abs, nil
}
