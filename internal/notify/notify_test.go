package notify

import (
	"errors"
	"strings"
	"testing"
)

type fakeNotifier struct {
	available bool
	sent      []Notification
	closed    []Handle
	failSend  bool
}

func (f *fakeNotifier) Available() bool { return f.available }

func (f *fakeNotifier) Send(n Notification) (Handle, error) {
	if f.failSend {
		return "", errors.New("boom")
	}
	f.sent = append(f.sent, n)
	return Handle(n.Body), nil
}

func (f *fakeNotifier) Close(h Handle) error {
	f.closed = append(f.closed, h)
	return nil
}

func TestCenterRequestsPermissionOnce(t *testing.T) {
	fake := &fakeNotifier{available: true}
	c := NewCenter(fake, true, nil)
	if c.Permission() != PermissionDefault {
		t.Fatalf("expected default permission, got %s", c.Permission())
	}
	if got := c.RequestPermission(); got != PermissionGranted {
		t.Fatalf("expected granted, got %s", got)
	}
	c.allow = false
	if got := c.RequestPermission(); got != PermissionGranted {
		t.Fatalf("second request must not re-prompt, got %s", got)
	}
}

func TestCenterWithoutCapabilityNeverPrompts(t *testing.T) {
	fake := &fakeNotifier{available: false}
	c := NewCenter(fake, true, nil)
	if got := c.RequestPermission(); got != PermissionDefault {
		t.Fatalf("expected default permission without capability, got %s", got)
	}
	if c.Notify("Pomodoro", "Back to work!") {
		t.Fatal("notify should be suppressed without capability")
	}
}

func TestCenterDeniedSuppressesNotifications(t *testing.T) {
	fake := &fakeNotifier{available: true}
	c := NewCenter(fake, false, nil)
	c.RequestPermission()
	if c.Notify("Pomodoro", "Time to start your break!") {
		t.Fatal("notify should be suppressed when denied")
	}
	if len(fake.sent) != 0 {
		t.Fatalf("expected nothing sent, got %d", len(fake.sent))
	}
}

func TestCenterDismissAllClosesDelivered(t *testing.T) {
	fake := &fakeNotifier{available: true}
	c := NewCenter(fake, true, nil)
	c.RequestPermission()
	c.Notify("Pomodoro", "Time to start your break!")
	c.Notify("Pomodoro", "Back to work!")
	if len(c.Active()) != 2 {
		t.Fatalf("expected 2 active notifications, got %d", len(c.Active()))
	}
	if n := c.DismissAll(); n != 2 {
		t.Fatalf("expected 2 dismissed, got %d", n)
	}
	if len(fake.closed) != 2 || len(c.Active()) != 0 {
		t.Fatalf("unexpected state after dismiss: closed=%d active=%d", len(fake.closed), len(c.Active()))
	}
}

func TestCenterSendFailureIsSwallowed(t *testing.T) {
	fake := &fakeNotifier{available: true, failSend: true}
	c := NewCenter(fake, true, nil)
	c.RequestPermission()
	if c.Notify("Pomodoro", "Back to work!") {
		t.Fatal("failed send should report false")
	}
	if len(c.Active()) != 0 {
		t.Fatal("failed send must not be tracked")
	}
}

func TestExecNotifierCommands(t *testing.T) {
	var calls []string
	n := ExecNotifier{
		goos:     "linux",
		lookPath: func(string) (string, error) { return "/usr/bin/notify-send", nil },
		run: func(name string, args ...string) ([]byte, error) {
			calls = append(calls, name+" "+strings.Join(args, " "))
			return []byte("42\n"), nil
		},
	}
	if !n.Available() {
		t.Fatal("expected linux notifier available")
	}
	h, err := n.Send(Notification{Title: "Pomodoro", Body: "Back to work!"})
	if err != nil || h != "42" {
		t.Fatalf("unexpected send result: %q err=%v", h, err)
	}
	if err := n.Close(h); err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(calls) != 2 || !strings.HasPrefix(calls[0], "notify-send -p Pomodoro") || !strings.Contains(calls[1], "CloseNotification 42") {
		t.Fatalf("unexpected commands: %#v", calls)
	}

	mac := ExecNotifier{
		goos:     "darwin",
		lookPath: func(string) (string, error) { return "", errors.New("missing") },
		run:      func(string, ...string) ([]byte, error) { return nil, nil },
	}
	if mac.Available() {
		t.Fatal("expected darwin notifier unavailable without osascript")
	}
	if escapeAppleScript(`say "hi"`) != `say \"hi\"` {
		t.Fatal("unexpected applescript escaping")
	}
}
