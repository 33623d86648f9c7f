// Package notify surfaces messages through native desktop dialogs.
package notify

import (
	"github.com/ncruces/zenity"
	"go.uber.org/zap"

	"github.com/iburimskiy/nmbk-site/internal/logging"
)

// Notifier shows user-facing messages outside the game window.
type Notifier interface {
	Notify(msg string)
	Error(title, msg string)
}

// Desktop uses zenity. Notifications are shown asynchronously so the game
// loop never waits on the desktop.
type Desktop struct {
	log *zap.Logger
}

// NewDesktop returns a Desktop notifier.
func NewDesktop(log *zap.Logger) *Desktop {
	log = logging.OrNop(log)
	return &Desktop{log: log}
}

// Notify shows a desktop notification.
func (d *Desktop) Notify(msg string) {
	go func() {
		if err := zenity.Notify(msg, zenity.Title("NMBK"), zenity.InfoIcon); err != nil {
			d.log.Debug("desktop notification failed", zap.Error(err))
		}
	}()
}

// Error shows a blocking error dialog.
func (d *Desktop) Error(title, msg string) {
	if err := zenity.Error(msg, zenity.Title(title), zenity.ErrorIcon); err != nil {
		d.log.Warn("error dialog failed", zap.Error(err))
	}
}

// Log writes messages to the logger only.
type Log struct {
	L *zap.Logger
}

func (l Log) Notify(msg string) {
	if l.L != nil {
		l.L.Info(msg)
	}
}

func (l Log) Error(title, msg string) {
	if l.L != nil {
		l.L.Error(msg, zap.String("title", title))
	}
}

// New returns a Desktop notifier when enabled, otherwise a Log notifier.
func New(enabled bool, log *zap.Logger) Notifier {
	if enabled {
		return NewDesktop(log)
	}
	return Log{L: log}
}
