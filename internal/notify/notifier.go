// Package notify sends desktop notifications and tracks the user's
// permission for them.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

type Notification struct {
	Title string
	Body  string
	At    time.Time
}

// Handle identifies a delivered notification for later dismissal. Empty when
// the platform cannot close notifications.
type Handle string

type Notifier interface {
	Available() bool
	Send(Notification) (Handle, error)
	Close(Handle) error
}

type NoopNotifier struct{}

func (NoopNotifier) Available() bool                   { return false }
func (NoopNotifier) Send(Notification) (Handle, error) { return "", nil }
func (NoopNotifier) Close(Handle) error                { return nil }

// ExecNotifier shells out to notify-send on linux and osascript on darwin.
type ExecNotifier struct {
	goos     string
	lookPath func(string) (string, error)
	run      func(name string, args ...string) ([]byte, error)
}

func NewExecNotifier() ExecNotifier {
	return ExecNotifier{
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		run: func(name string, args ...string) ([]byte, error) {
			return exec.Command(name, args...).Output()
		},
	}
}

func (n ExecNotifier) Available() bool {
	switch n.goos {
	case "linux":
		_, err := n.lookPath("notify-send")
		return err == nil
	case "darwin":
		_, err := n.lookPath("osascript")
		return err == nil
	default:
		return false
	}
}

func (n ExecNotifier) Send(msg Notification) (Handle, error) {
	switch n.goos {
	case "linux":
		out, err := n.run("notify-send", "-p", msg.Title, msg.Body)
		if err != nil {
			return "", fmt.Errorf("notify-send: %w", err)
		}
		return Handle(strings.TrimSpace(string(out))), nil
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(msg.Body), escapeAppleScript(msg.Title))
		if _, err := n.run("osascript", "-e", script); err != nil {
			return "", fmt.Errorf("osascript: %w", err)
		}
		return "", nil
	default:
		return "", nil
	}
}

// Close dismisses a notification through the freedesktop notification
// service. Notification Center on darwin offers no equivalent.
func (n ExecNotifier) Close(h Handle) error {
	if h == "" || n.goos != "linux" {
		return nil
	}
	_, err := n.run("gdbus", "call", "--session",
		"--dest", "org.freedesktop.Notifications",
		"--object-path", "/org/freedesktop/Notifications",
		"--method", "org.freedesktop.Notifications.CloseNotification", string(h))
	if err != nil {
		return fmt.Errorf("close notification %s: %w", h, err)
	}
	return nil
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
