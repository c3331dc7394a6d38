package notify

import (
	"time"

	"github.com/charmbracelet/log"
)

type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

type sent struct {
	n      Notification
	handle Handle
}

// Center gates notifications behind a one-time permission request and keeps
// the delivered ones so they can be dismissed once stale.
type Center struct {
	notifier   Notifier
	allow      bool
	permission Permission
	requested  bool
	active     []sent
	logger     *log.Logger
	now        func() time.Time
}

// NewCenter builds a Center. allow is the user's standing answer to the
// permission prompt (the desktop_notifications setting).
func NewCenter(notifier Notifier, allow bool, logger *log.Logger) *Center {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &Center{
		notifier:   notifier,
		allow:      allow,
		permission: PermissionDefault,
		logger:     logger,
		now:        time.Now,
	}
}

// RequestPermission resolves the permission at most once, and only when the
// platform can show notifications at all.
func (c *Center) RequestPermission() Permission {
	if c.requested || !c.notifier.Available() {
		return c.permission
	}
	c.requested = true
	if c.allow {
		c.permission = PermissionGranted
	} else {
		c.permission = PermissionDenied
	}
	if c.logger != nil {
		c.logger.Info("notification permission resolved", "permission", c.permission)
	}
	return c.permission
}

func (c *Center) Permission() Permission { return c.permission }

func (c *Center) Granted() bool {
	return c.permission == PermissionGranted && c.notifier.Available()
}

// Notify is silent unless permission was granted.
func (c *Center) Notify(title, body string) bool {
	if !c.Granted() {
		return false
	}
	n := Notification{Title: title, Body: body, At: c.now().UTC()}
	h, err := c.notifier.Send(n)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("send notification failed", "title", title, "err", err)
		}
		return false
	}
	c.active = append(c.active, sent{n: n, handle: h})
	return true
}

func (c *Center) Active() []Notification {
	out := make([]Notification, 0, len(c.active))
	for _, s := range c.active {
		out = append(out, s.n)
	}
	return out
}

// DismissAll closes and forgets every delivered notification.
func (c *Center) DismissAll() int {
	n := len(c.active)
	for _, s := range c.active {
		if err := c.notifier.Close(s.handle); err != nil && c.logger != nil {
			c.logger.Debug("dismiss notification failed", "err", err)
		}
	}
	c.active = c.active[:0]
	return n
}
