package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultPort          = 5000
	defaultStaticDir     = "/opt/kioskd/static"
	defaultDownloadDir   = "/opt/kioskd/downloads"
	defaultOutputDir     = "/tmp/kioskd"
	defaultTickInterval  = 100 * time.Millisecond
	defaultLaunchGrace   = 500 * time.Millisecond
	defaultTermWait      = time.Second
	defaultQueueCapacity = 256
	defaultUploadTTL     = time.Hour
	defaultMaxUpload     = 10 * 1024 * 1024
)

// AppConfig holds application configuration
type AppConfig struct {
	logger *zap.Logger

	port            int
	staticDir       string
	downloadDir     string
	outputDir       string
	tickInterval    time.Duration
	launchGrace     time.Duration
	termWait        time.Duration
	queueCapacity   int
	uploadTTL       time.Duration
	maxUploadSize   int64
	uploadServerURL string
}

// NewAppConfig creates a new application configuration instance.
// Values come from environment variables, with a .env file loaded
// first if one is present next to the binary.
func NewAppConfig(logger *zap.Logger) (*AppConfig, error) {
	_ = godotenv.Load()

	c := &AppConfig{
		logger:        logger,
		port:          defaultPort,
		staticDir:     defaultStaticDir,
		downloadDir:   defaultDownloadDir,
		outputDir:     defaultOutputDir,
		tickInterval:  defaultTickInterval,
		launchGrace:   defaultLaunchGrace,
		termWait:      defaultTermWait,
		queueCapacity: defaultQueueCapacity,
		uploadTTL:     defaultUploadTTL,
		maxUploadSize: defaultMaxUpload,
	}

	if v := os.Getenv("KIOSKD_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid KIOSKD_PORT: %w", err)
		}
		c.port = p
	}

	if v := os.Getenv("KIOSKD_STATIC_DIR"); v != "" {
		c.staticDir = v
	}
	if v := os.Getenv("KIOSKD_DOWNLOAD_DIR"); v != "" {
		c.downloadDir = v
	}
	if v := os.Getenv("KIOSKD_OUTPUT_DIR"); v != "" {
		c.outputDir = v
	}
	c.staticDir = expandPath(c.staticDir)
	c.downloadDir = expandPath(c.downloadDir)
	c.outputDir = expandPath(c.outputDir)

	if v := os.Getenv("KIOSKD_TICK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid KIOSKD_TICK_INTERVAL: %w", err)
		}
		c.tickInterval = d
	}
	if v := os.Getenv("KIOSKD_LAUNCH_GRACE"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid KIOSKD_LAUNCH_GRACE: %w", err)
		}
		c.launchGrace = d
	}
	if v := os.Getenv("KIOSKD_TERM_WAIT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid KIOSKD_TERM_WAIT: %w", err)
		}
		c.termWait = d
	}
	if v := os.Getenv("KIOSKD_UPLOAD_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid KIOSKD_UPLOAD_TTL: %w", err)
		}
		c.uploadTTL = d
	}

	if v := os.Getenv("KIOSKD_QUEUE_CAPACITY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid KIOSKD_QUEUE_CAPACITY: %q", v)
		}
		c.queueCapacity = n
	}
	if v := os.Getenv("KIOSKD_MAX_UPLOAD_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid KIOSKD_MAX_UPLOAD_SIZE: %q", v)
		}
		c.maxUploadSize = n
	}

	c.uploadServerURL = os.Getenv("KIOSKD_UPLOAD_SERVER_URL")

	logger.Info("Configuration loaded",
		zap.Int("port", c.port),
		zap.String("staticDir", c.staticDir),
		zap.String("downloadDir", c.downloadDir),
		zap.String("outputDir", c.outputDir),
		zap.Duration("tickInterval", c.tickInterval),
		zap.Int("queueCapacity", c.queueCapacity))

	return c, nil
}

func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if len(p) > 0 && p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return p
}

// GetPort returns the webhook listener port
func (c *AppConfig) GetPort() int {
	return c.port
}

// GetStaticDir returns the directory holding the bundled asset set
func (c *AppConfig) GetStaticDir() string {
	return c.staticDir
}

// GetDownloadDir returns the directory for uploaded and fetched assets
func (c *AppConfig) GetDownloadDir() string {
	return c.downloadDir
}

// GetOutputDir returns the directory for rendered frames
func (c *AppConfig) GetOutputDir() string {
	return c.outputDir
}

// GetTickInterval returns the dispatch loop period
func (c *AppConfig) GetTickInterval() time.Duration {
	return c.tickInterval
}

// GetLaunchGrace returns how long a freshly spawned player must survive
// before it is considered started
func (c *AppConfig) GetLaunchGrace() time.Duration {
	return c.launchGrace
}

// GetTermWait returns how long to wait after SIGTERM before killing
func (c *AppConfig) GetTermWait() time.Duration {
	return c.termWait
}

// GetQueueCapacity returns the command queue bound
func (c *AppConfig) GetQueueCapacity() int {
	return c.queueCapacity
}

// GetUploadTTL returns how long uploaded assets are kept on disk
func (c *AppConfig) GetUploadTTL() time.Duration {
	return c.uploadTTL
}

// GetMaxUploadSize returns the per-request upload limit in bytes
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.maxUploadSize
}

// GetUploadServerURL returns the remote asset server base URL, or empty
// when fetch-on-miss is disabled
func (c *AppConfig) GetUploadServerURL() string {
	return c.uploadServerURL
}
