package session

import (
	"github.com/dshills/uishell/internal/history"
	"github.com/dshills/uishell/internal/notify"
	"github.com/dshills/uishell/internal/ulog"
)

// Option configures a session during Init.
type Option func(*Session)

// WithLogger replaces the default stderr logger.
func WithLogger(log *ulog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithHistoryIO attaches a persistence store for the command history.
func WithHistoryIO(io history.IO) Option {
	return func(s *Session) { s.historyIO = io }
}

// WithStatusSink wires the on-screen notification sink.
func WithStatusSink(sink notify.StatusSink) Option {
	return func(s *Session) { s.notifier.SetStatusSink(sink) }
}

// WithDesktopSink wires the external desktop-notification sink.
func WithDesktopSink(sink notify.DesktopSink) Option {
	return func(s *Session) { s.notifier.SetDesktopSink(sink) }
}

// WithWindowChrome attaches the external window chrome collaborator.
func WithWindowChrome(chrome WindowChrome) Option {
	return func(s *Session) { s.chrome = chrome }
}

// WithInputbarPresenter attaches the external inputbar widget
// collaborator.
func WithInputbarPresenter(p InputbarPresenter) Option {
	return func(s *Session) { s.presenter = p }
}
