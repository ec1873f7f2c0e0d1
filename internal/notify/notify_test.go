package notify

import (
	"errors"
	"testing"
)

type recordingSink struct {
	levels   []Level
	messages []string
	err      error
}

func (r *recordingSink) ShowNotification(level Level, message string) error {
	r.levels = append(r.levels, level)
	r.messages = append(r.messages, message)
	return r.err
}

type recordingDesktop struct {
	summaries []string
	bodies    []string
}

func (r *recordingDesktop) Send(summary, body string) error {
	r.summaries = append(r.summaries, summary)
	r.bodies = append(r.bodies, body)
	return nil
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Level
		want Level
	}{
		{Info, Info},
		{Warning, Warning},
		{Error, Error},
		{Level(-1), Info},
		{Level(42), Info},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%d) = %v, want %v", int(tt.in), got, tt.want)
		}
	}
}

func TestNotify_DeliversNormalized(t *testing.T) {
	sink := &recordingSink{}
	svc := NewService()
	svc.SetStatusSink(sink)

	svc.Notify(Warning, "careful")
	svc.Notify(Level(99), "odd level")

	if len(sink.levels) != 2 {
		t.Fatalf("deliveries = %d, want 2", len(sink.levels))
	}
	if sink.levels[0] != Warning || sink.messages[0] != "careful" {
		t.Errorf("first delivery = (%v, %q)", sink.levels[0], sink.messages[0])
	}
	if sink.levels[1] != Info {
		t.Errorf("out-of-range level delivered as %v, want Info", sink.levels[1])
	}
}

func TestNotify_NoSink(t *testing.T) {
	svc := NewService()
	// Must not panic.
	svc.Notify(Info, "dropped")
	svc.NotifyDesktop("dropped", "too")
}

func TestNotify_SinkFailureSwallowed(t *testing.T) {
	sink := &recordingSink{err: errors.New("display gone")}
	svc := NewService()
	svc.SetStatusSink(sink)

	svc.Notify(Error, "boom")
	if len(sink.messages) != 1 {
		t.Errorf("deliveries = %d, want 1", len(sink.messages))
	}
}

func TestNotifyDesktop(t *testing.T) {
	desktop := &recordingDesktop{}
	svc := NewService()
	svc.SetDesktopSink(desktop)

	svc.NotifyDesktop("download done", "file saved to /tmp")
	if len(desktop.summaries) != 1 || desktop.summaries[0] != "download done" {
		t.Errorf("summaries = %v", desktop.summaries)
	}
	if desktop.bodies[0] != "file saved to /tmp" {
		t.Errorf("body = %q", desktop.bodies[0])
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		in   Level
		want string
	}{
		{Info, "info"},
		{Warning, "warning"},
		{Error, "error"},
		{Level(99), "info"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(tt.in), got, tt.want)
		}
	}
}
