// Package assets locates operator-provisioned media, resolves per-asset
// visual overrides and persists pushed custom assets.
package assets

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/golocube/kioskd/internal/domain"
	"github.com/golocube/kioskd/internal/schedule"
)

// Static asset filenames, keyed by asset id. The operator provisions these
// in the static directory.
var (
	staticImages = map[string]string{
		"1": "static_1.png",
		"2": "static_2.png",
		"3": "static_3.png",
	}
	staticMusicFiles = map[string]string{
		"1": "music_1.mp3",
		"2": "music_2.mp3",
		"3": "music_3.mp3",
	}
	staticAnimations = map[string]string{
		"1": "animation_1.mp4",
		"2": "animation_2.mp4",
		"3": "animation_3.mp4",
	}
)

const defaultMusicName = "music.mp3"

// Store resolves asset references against the static and download
// directories. Uploads are written before the webhook acknowledges and expire
// after the configured TTL.
type Store struct {
	logger      *zap.Logger
	fs          afero.Fs
	staticDir   string
	downloadDir string
	uploadTTL   time.Duration
}

// NewStore creates the asset store and ensures both directories exist
func NewStore(logger *zap.Logger, fs afero.Fs, staticDir, downloadDir string, uploadTTL time.Duration) (*Store, error) {
	for _, dir := range []string{staticDir, downloadDir} {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create asset directory %s: %w", dir, err)
		}
	}

	s := &Store{
		logger:      logger,
		fs:          fs,
		staticDir:   staticDir,
		downloadDir: downloadDir,
		uploadTTL:   uploadTTL,
	}

	s.sweepExpired()
	return s, nil
}

// StaticImage returns the still image path for an asset id
func (s *Store) StaticImage(id string) (string, error) {
	name, ok := staticImages[id]
	if !ok {
		return "", fmt.Errorf("no static image for id %q: %w", id, domain.ErrAssetNotFound)
	}
	path := filepath.Join(s.staticDir, name)
	if !s.exists(path) {
		return "", fmt.Errorf("static image %s missing on disk: %w", name, domain.ErrAssetNotFound)
	}
	return path, nil
}

// StaticMusic returns the background track for an asset id, if provisioned
func (s *Store) StaticMusic(id string) (string, bool) {
	name, ok := staticMusicFiles[id]
	if !ok {
		return "", false
	}
	path := filepath.Join(s.staticDir, name)
	return path, s.exists(path)
}

// StaticAnimation returns the animated variant for an asset id, if present
func (s *Store) StaticAnimation(id string) (string, bool) {
	name, ok := staticAnimations[id]
	if !ok {
		return "", false
	}
	path := filepath.Join(s.staticDir, name)
	return path, s.exists(path)
}

// DefaultMusic returns the fallback background track, if present
func (s *Store) DefaultMusic() (string, bool) {
	path := filepath.Join(s.staticDir, defaultMusicName)
	return path, s.exists(path)
}

// CustomAsset returns the path of a previously pushed custom asset
func (s *Store) CustomAsset(ref string) (string, error) {
	name := sanitizeName(ref)
	if name == "" {
		return "", fmt.Errorf("empty custom asset reference: %w", domain.ErrAssetNotFound)
	}
	path := filepath.Join(s.downloadDir, name)
	if !s.exists(path) {
		return "", fmt.Errorf("custom asset %s missing: %w", name, domain.ErrAssetNotFound)
	}
	return path, nil
}

// SaveUpload persists an uploaded asset under a sanitized unique name and
// schedules its expiry. The write completes before the caller acknowledges
// the webhook.
func (s *Store) SaveUpload(clientName string, r io.Reader) (string, error) {
	safe := sanitizeName(clientName)
	if safe == "" {
		safe = "upload"
	}
	name := fmt.Sprintf("%d_%s_%s", time.Now().Unix(), uuid.NewString()[:8], safe)
	path := filepath.Join(s.downloadDir, name)

	if err := afero.WriteReader(s.fs, path, r); err != nil {
		return "", fmt.Errorf("failed to store upload %s: %w", safe, err)
	}

	if s.uploadTTL > 0 {
		schedule.After(s.uploadTTL, func() { s.removeUpload(name) })
	}

	s.logger.Info("Stored uploaded asset",
		zap.String("name", name),
		zap.String("client_name", clientName))
	return name, nil
}

// SaveFetched persists a custom asset retrieved from the upload server under
// its announced reference name
func (s *Store) SaveFetched(ref string, data []byte) (string, error) {
	name := sanitizeName(ref)
	if name == "" {
		return "", fmt.Errorf("empty fetched asset reference")
	}
	path := filepath.Join(s.downloadDir, name)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to store fetched asset %s: %w", name, err)
	}
	if s.uploadTTL > 0 {
		schedule.After(s.uploadTTL, func() { s.removeUpload(name) })
	}
	return path, nil
}

func (s *Store) removeUpload(name string) {
	if err := s.fs.Remove(filepath.Join(s.downloadDir, name)); err != nil {
		s.logger.Debug("Expired upload already gone", zap.String("name", name), zap.Error(err))
		return
	}
	s.logger.Info("Expired uploaded asset removed", zap.String("name", name))
}

// sweepExpired removes leftovers from previous runs that outlived the TTL
func (s *Store) sweepExpired() {
	if s.uploadTTL <= 0 {
		return
	}
	infos, err := afero.ReadDir(s.fs, s.downloadDir)
	if err != nil {
		s.logger.Warn("Could not sweep download directory", zap.Error(err))
		return
	}
	cutoff := time.Now().Add(-s.uploadTTL)
	for _, info := range infos {
		if info.IsDir() || info.ModTime().After(cutoff) {
			continue
		}
		if err := s.fs.Remove(filepath.Join(s.downloadDir, info.Name())); err != nil {
			s.logger.Warn("Failed to remove expired upload",
				zap.String("name", info.Name()), zap.Error(err))
			continue
		}
		s.logger.Info("Removed expired upload from previous run",
			zap.String("name", info.Name()))
	}
}

func (s *Store) exists(path string) bool {
	ok, err := afero.Exists(s.fs, path)
	return err == nil && ok
}

// sanitizeName strips any path components and characters that could escape
// the download directory. Uploaded filenames are attacker controlled.
func sanitizeName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), ".")
}
