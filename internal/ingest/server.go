package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golocube/kioskd/internal/dispatcher"
	"github.com/golocube/kioskd/internal/domain"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// StatusSource reports the current session for the status endpoint
type StatusSource interface {
	Status() dispatcher.Status
}

// Server is the HTTP ingestion boundary. It normalizes webhook payloads into
// queue commands and serves the small status and asset surface.
type Server struct {
	logger     *zap.Logger
	httpServer *http.Server
	queue      domain.CommandQueue
	store      domain.AssetStore
	resolver   domain.SettingsResolver
	status     StatusSource
	fs         afero.Fs
	maxUpload  int64
}

// NewServer wires the handler surface onto the given port. fs must be the
// same filesystem the asset store writes to.
func NewServer(
	logger *zap.Logger,
	port int,
	queue domain.CommandQueue,
	store domain.AssetStore,
	resolver domain.SettingsResolver,
	status StatusSource,
	fs afero.Fs,
	maxUpload int64,
) *Server {
	s := &Server{
		logger:    logger,
		queue:     queue,
		store:     store,
		resolver:  resolver,
		status:    status,
		fs:        fs,
		maxUpload: maxUpload,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.handleWebhook)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/image/", s.handleImage)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/", s.handleRoot)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Start begins listening for webhook traffic. It blocks until shutdown.
func (s *Server) Start() error {
	s.logger.Info("Webhook server listening", zap.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Webhook server shutting down")
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the route surface, used by the tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	payload, err := s.parsePayload(r)
	if err != nil {
		s.logger.Warn("Rejected webhook payload", zap.Error(err))
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cmd, err := payload.normalize()
	if err != nil {
		s.logger.Warn("Rejected webhook payload", zap.Error(err))
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Pin the effective multipliers at the boundary. The dispatcher resolves
	// again, which is a no-op on already-resolved values.
	if cmd.Kind == domain.KindShowStatic {
		cmd.Brightness, cmd.Contrast = s.resolver.Resolve(cmd.AssetID, false, cmd.Brightness, cmd.Contrast)
	}

	if err := s.queue.Enqueue(cmd); err != nil {
		if errors.Is(err, domain.ErrQueueFull) {
			s.logger.Warn("Command queue full, rejecting",
				zap.String("kind", string(cmd.Kind)))
			s.writeError(w, http.StatusServiceUnavailable, "command queue full")
			return
		}
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.logger.Info("Command queued",
		zap.String("kind", string(cmd.Kind)),
		zap.String("assetID", cmd.AssetID),
		zap.String("assetRef", cmd.AssetRef))
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// parsePayload reads the webhook body in whichever encoding the sender chose:
// JSON, urlencoded form, or multipart form with an optional attached file.
func (s *Server) parsePayload(r *http.Request) (webhookPayload, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/json") {
		var p webhookPayload
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&p); err != nil {
			return webhookPayload{}, fmt.Errorf("malformed JSON body: %w", err)
		}
		return p, nil
	}

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(s.maxUpload); err != nil {
			return webhookPayload{}, fmt.Errorf("malformed multipart body: %w", err)
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return webhookPayload{}, fmt.Errorf("malformed form body: %w", err)
		}
	}

	p := webhookPayload{
		Type:         r.FormValue("type"),
		ImageNumber:  formValueOrNil(r, "image_number"),
		Brightness:   formValueOrNil(r, "brightness"),
		Contrast:     formValueOrNil(r, "contrast"),
		MusicData:    formValueOrNil(r, "music_data"),
		LightingData: formValueOrNil(r, "lighting_data"),
		Action:       r.FormValue("action"),
		Filename:     r.FormValue("filename"),
	}

	// An attached file is stored immediately and overrides whatever type the
	// form announced.
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		stored, saveErr := s.store.SaveUpload(header.Filename, file)
		if saveErr != nil {
			return webhookPayload{}, fmt.Errorf("failed to store upload: %w", saveErr)
		}
		s.logger.Info("Stored uploaded asset",
			zap.String("clientName", header.Filename),
			zap.String("stored", stored))
		p.Type = "custom_image"
		p.Filename = stored
	}

	return p, nil
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.writeJSON(w, http.StatusOK, s.status.Status())
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/image/")
	if name == "" || strings.Contains(name, "/") {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	path, err := s.store.CustomAsset(name)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		s.logger.Error("Failed to read stored asset", zap.String("path", path), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(data))
	_, _ = w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"service":    "kioskd",
		"queue_size": s.queue.Len(),
		"endpoints":  []string{"/webhook", "/status", "/image/{filename}", "/health"},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

func (s *Server) writeError(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, map[string]string{"error": msg})
}

func formValueOrNil(r *http.Request, key string) any {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return nil
}
