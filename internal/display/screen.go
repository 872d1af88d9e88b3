package display

import (
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"

	"github.com/golocube/kioskd/internal/domain"
)

// Bezel offsets of the kiosk enclosure: content inside these margins stays
// fully visible. Tuned on the physical unit.
const (
	bezelLeft   = 5
	bezelRight  = 100
	bezelTop    = 0
	bezelBottom = 0
)

// NewScreenGeometry detects the primary display at startup
func NewScreenGeometry(logger *zap.Logger) domain.ScreenGeometry {
	geom := domain.ScreenGeometry{
		Width:        1920,
		Height:       1080,
		LeftOffset:   bezelLeft,
		RightOffset:  bezelRight,
		TopOffset:    bezelTop,
		BottomOffset: bezelBottom,
	}

	if screenshot.NumActiveDisplays() <= 0 {
		logger.Warn("No active displays detected, assuming 1920x1080")
		return geom
	}

	bounds := screenshot.GetDisplayBounds(0)
	geom.Width = bounds.Dx()
	geom.Height = bounds.Dy()

	logger.Info("Screen geometry detected",
		zap.Int("width", geom.Width),
		zap.Int("height", geom.Height),
		zap.Int("usable_width", geom.AdjustedWidth()),
		zap.Int("usable_height", geom.AdjustedHeight()))
	return geom
}
