// Package notify routes leveled, human-readable messages to whichever
// feedback sink the embedding application wired up: the on-screen
// status area by default, or an external desktop-notification sink per
// message. Delivery is best effort; sink failures never propagate.
package notify

import "sync"

// Level classifies a notification.
type Level int

const (
	// Info is a neutral informational message.
	Info Level = iota
	// Warning signals something worth attention.
	Warning
	// Error signals a failed user-visible operation.
	Error
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Normalize maps out-of-range levels to Info.
func Normalize(l Level) Level {
	switch l {
	case Info, Warning, Error:
		return l
	default:
		return Info
	}
}

// StatusSink displays a notification in the on-screen status area.
type StatusSink interface {
	ShowNotification(level Level, message string) error
}

// DesktopSink delivers a notification through the operating system's
// notification mechanism.
type DesktopSink interface {
	Send(summary, body string) error
}

// Service fans notifications out to the configured sinks.
type Service struct {
	mu      sync.RWMutex
	status  StatusSink
	desktop DesktopSink
}

// NewService creates a service with no sinks attached. Notifications
// without a sink are dropped silently.
func NewService() *Service {
	return &Service{}
}

// SetStatusSink attaches the on-screen sink.
func (s *Service) SetStatusSink(sink StatusSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = sink
}

// SetDesktopSink attaches the external desktop sink.
func (s *Service) SetDesktopSink(sink DesktopSink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.desktop = sink
}

// Notify delivers message at level through the status sink. The level
// is normalized first; delivery failures are swallowed.
func (s *Service) Notify(level Level, message string) {
	s.mu.RLock()
	sink := s.status
	s.mu.RUnlock()

	if sink == nil {
		return
	}
	_ = sink.ShowNotification(Normalize(level), message)
}

// NotifyDesktop delivers summary/body through the desktop sink.
func (s *Service) NotifyDesktop(summary, body string) {
	s.mu.RLock()
	sink := s.desktop
	s.mu.RUnlock()

	if sink == nil {
		return
	}
	_ = sink.Send(summary, body)
}
