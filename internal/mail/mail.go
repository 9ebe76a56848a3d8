// Package mail delivers passwordless sign-in links.
package mail

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// LinkSender delivers a sign-in link to an address.
type LinkSender interface {
	SendSignInLink(ctx context.Context, email, link string) error
}

// LogSender writes links to the log instead of sending mail. Development only.
type LogSender struct{ log *zap.Logger }

// NewLogSender returns a LogSender.
func NewLogSender(log *zap.Logger) *LogSender { return &LogSender{log: log} }

func (s *LogSender) SendSignInLink(_ context.Context, email, link string) error {
	s.log.Info("sign-in link", zap.String("email", email), zap.String("link", link))
	return nil
}

// Outbox records links in memory; tests read them back.
type Outbox struct {
	mu    sync.Mutex
	links map[string][]string
}

// NewOutbox returns an empty outbox.
func NewOutbox() *Outbox { return &Outbox{links: map[string][]string{}} }

func (o *Outbox) SendSignInLink(_ context.Context, email, link string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.links[email] = append(o.links[email], link)
	return nil
}

// Last returns the most recent link sent to email.
func (o *Outbox) Last(email string) (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	l := o.links[email]
	if len(l) == 0 {
		return "", false
	}
	return l[len(l)-1], true
}
