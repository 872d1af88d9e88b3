package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/golocube/kioskd/internal/domain"
)

// webhookPayload mirrors the wire shape of a control message. Numeric and
// boolean fields arrive as strings, numbers or bools depending on the sender,
// so they stay untyped until coercion.
type webhookPayload struct {
	Type         string `json:"type"`
	ImageNumber  any    `json:"image_number"`
	Brightness   any    `json:"brightness"`
	Contrast     any    `json:"contrast"`
	MusicData    any    `json:"music_data"`
	LightingData any    `json:"lighting_data"`
	Action       string `json:"action"`
	Filename     string `json:"filename"`
}

// normalize turns a wire payload into a queue command, or reports
// ErrInvalidCommand for anything malformed
func (p webhookPayload) normalize() (domain.Command, error) {
	switch p.Type {
	case "static_image":
		id := asString(p.ImageNumber)
		if id == "" {
			return domain.Command{}, fmt.Errorf("%w: missing image_number", domain.ErrInvalidCommand)
		}
		return domain.Command{
			Kind:            domain.KindShowStatic,
			AssetID:         id,
			Brightness:      asFloat(p.Brightness, 1.0),
			Contrast:        asFloat(p.Contrast, 1.0),
			MusicEnabled:    asBool(p.MusicData),
			LightingEnabled: asBool(p.LightingData),
		}, nil

	case "custom_image":
		if p.Filename == "" {
			return domain.Command{}, fmt.Errorf("%w: missing filename", domain.ErrInvalidCommand)
		}
		return domain.Command{
			Kind:         domain.KindShowCustom,
			AssetRef:     p.Filename,
			Brightness:   1.0,
			Contrast:     1.0,
			MusicEnabled: asBool(p.MusicData),
		}, nil

	case "stop":
		return domain.Command{Kind: domain.KindStop}, nil

	case "volume":
		action := domain.VolumeAction(strings.ToLower(p.Action))
		switch action {
		case domain.VolumeUp, domain.VolumeDown, domain.VolumeMax, domain.VolumeMute:
			return domain.Command{Kind: domain.KindVolume, Volume: action}, nil
		}
		return domain.Command{}, fmt.Errorf("%w: unknown volume action %q", domain.ErrInvalidCommand, p.Action)

	default:
		return domain.Command{}, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidCommand, p.Type)
	}
}

func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		// JSON numbers decode as float64; asset ids are small integers
		return strconv.FormatInt(int64(t), 10)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}

func asFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "on", "true", "1", "yes":
			return true
		}
	}
	return false
}
