// Package display knows the kiosk's screen: its geometry and keeping it
// awake while a session is visible.
package display

import (
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	screenSaverDest = "org.freedesktop.ScreenSaver"
	screenSaverPath = "/org/freedesktop/ScreenSaver"

	inhibitMethod   = screenSaverDest + ".Inhibit"
	unInhibitMethod = screenSaverDest + ".UnInhibit"

	appName       = "kioskd"
	inhibitReason = "kiosk session active"
)

// ScreenSaverClient abstracts the D-Bus screensaver interface for testability
//
//go:generate mockgen -destination=mocks/screensaver_mock.go -package=mocks github.com/golocube/kioskd/internal/display ScreenSaverClient
type ScreenSaverClient interface {
	// Inhibit asks the screensaver to stay away and returns a cookie
	Inhibit(app, reason string) (uint32, error)

	// UnInhibit releases a previously obtained cookie
	UnInhibit(cookie uint32) error

	// Close closes the underlying connection
	Close() error
}

// StdScreenSaverClient is the real implementation over the session bus
type StdScreenSaverClient struct {
	conn *dbus.Conn
}

// NewStdScreenSaverClient connects to the session bus
func NewStdScreenSaverClient() (*StdScreenSaverClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdScreenSaverClient{conn: conn}, nil
}

// Inhibit asks the screensaver to stay away and returns a cookie
func (c *StdScreenSaverClient) Inhibit(app, reason string) (uint32, error) {
	var cookie uint32
	obj := c.conn.Object(screenSaverDest, dbus.ObjectPath(screenSaverPath))
	err := obj.Call(inhibitMethod, 0, app, reason).Store(&cookie)
	return cookie, err
}

// UnInhibit releases a previously obtained cookie
func (c *StdScreenSaverClient) UnInhibit(cookie uint32) error {
	obj := c.conn.Object(screenSaverDest, dbus.ObjectPath(screenSaverPath))
	return obj.Call(unInhibitMethod, 0, cookie).Err
}

// Close closes the underlying connection
func (c *StdScreenSaverClient) Close() error {
	return c.conn.Close()
}

// Inhibitor holds a screensaver inhibition while a session is on screen.
// Acquire and Release are idempotent and best effort: a kiosk without a
// screensaver daemon just logs and keeps playing.
type Inhibitor struct {
	logger *zap.Logger
	client ScreenSaverClient
	cookie *uint32
}

// NewInhibitor wraps a screensaver client. A nil client disables inhibition
// entirely (headless test runs, missing session bus).
func NewInhibitor(logger *zap.Logger, client ScreenSaverClient) *Inhibitor {
	if client == nil {
		logger.Warn("Screensaver inhibition disabled, no session bus")
	}
	return &Inhibitor{logger: logger, client: client}
}

// Acquire inhibits the screensaver if not already inhibited
func (i *Inhibitor) Acquire() {
	if i.client == nil || i.cookie != nil {
		return
	}
	cookie, err := i.client.Inhibit(appName, inhibitReason)
	if err != nil {
		i.logger.Warn("Failed to inhibit screensaver", zap.Error(err))
		return
	}
	i.cookie = &cookie
	i.logger.Debug("Screensaver inhibited", zap.Uint32("cookie", cookie))
}

// Release drops the inhibition if one is held
func (i *Inhibitor) Release() {
	if i.client == nil || i.cookie == nil {
		return
	}
	if err := i.client.UnInhibit(*i.cookie); err != nil {
		i.logger.Warn("Failed to release screensaver inhibition", zap.Error(err))
	}
	i.cookie = nil
}
