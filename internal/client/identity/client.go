// Package identity is the client side of the identity provider: it keeps the
// signed-in identity in scoped storage and broadcasts every change.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/and161185/micromuu/internal/api"
	"github.com/and161185/micromuu/internal/client/kv"
	"github.com/and161185/micromuu/internal/errs"
	"github.com/and161185/micromuu/internal/model"
)

// Storage keys.
const (
	SessionKey = "session"
	EmailKey   = "emailForSignIn"
)

// Provider is the remote identity provider. Implementations return the
// client sentinels of internal/errs.
type Provider interface {
	SignUp(ctx context.Context, email, password string) (*model.Identity, error)
	SignIn(ctx context.Context, email, password string) (*model.Identity, error)
	SendSignInLink(ctx context.Context, email, continueURL string) error
	CompleteSignInWithLink(ctx context.Context, email, link string) (*model.Identity, error)
}

// Client wraps a Provider with persistence and change notifications.
type Client struct {
	p           Provider
	store       kv.Store
	continueURL string
	log         *zap.Logger
	now         func() time.Time

	mu   sync.Mutex
	cur  *model.Identity
	subs map[int]chan *model.Identity
	next int
}

// New returns a Client. An empty continueURL uses the app deep link.
func New(p Provider, store kv.Store, continueURL string, log *zap.Logger) *Client {
	if continueURL == "" {
		continueURL = api.DefaultContinueURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{p: p, store: store, continueURL: continueURL, log: log, now: time.Now, subs: map[int]chan *model.Identity{}}
}

// Restore loads the persisted session. An expired or unreadable session is dropped.
func (c *Client) Restore(ctx context.Context) error {
	b, err := c.store.Get(ctx, SessionKey)
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	var id model.Identity
	if err := json.Unmarshal(b, &id); err != nil || id.IDToken == "" || id.Expired(c.now()) {
		c.log.Debug("dropping stored session")
		return c.store.Delete(ctx, SessionKey)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishLocked(&id)
	return nil
}

// Current returns the signed-in identity or nil.
func (c *Client) Current() *model.Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cur
}

// Token returns the current ID token, empty when signed out or expired.
func (c *Client) Token() string {
	id := c.Current()
	if id == nil || id.Expired(c.now()) {
		return ""
	}
	return id.IDToken
}

// Subscribe returns a channel that first yields the current identity and then
// every change. Slow readers only see the latest value. The returned func
// unsubscribes and closes the channel.
func (c *Client) Subscribe() (<-chan *model.Identity, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan *model.Identity, 1)
	ch <- c.cur
	n := c.next
	c.next++
	c.subs[n] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subs, n)
			close(ch)
		})
	}
}

func (c *Client) publishLocked(id *model.Identity) {
	c.cur = id
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- id
	}
}

func (c *Client) signedIn(ctx context.Context, id *model.Identity) (*model.Identity, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	if err := c.store.Set(ctx, SessionKey, b); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishLocked(id)
	return id, nil
}

// SignUp creates a password account and signs in.
func (c *Client) SignUp(ctx context.Context, email, password string) (*model.Identity, error) {
	id, err := c.p.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.signedIn(ctx, id)
}

// SignIn signs in with a password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*model.Identity, error) {
	id, err := c.p.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return c.signedIn(ctx, id)
}

// SendSignInLink asks for a link and remembers email for its completion.
func (c *Client) SendSignInLink(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if err := c.p.SendSignInLink(ctx, email, c.continueURL); err != nil {
		return err
	}
	if err := c.store.Set(ctx, EmailKey, []byte(email)); err != nil {
		return fmt.Errorf("store email: %w", err)
	}
	return nil
}

// StoredEmail returns the email of the last link request on this device, or "".
func (c *Client) StoredEmail(ctx context.Context) (string, error) {
	b, err := c.store.Get(ctx, EmailKey)
	if errors.Is(err, errs.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load email: %w", err)
	}
	return string(b), nil
}

// IsSignInLink reports whether link carries a sign-in code.
func (c *Client) IsSignInLink(link string) bool {
	_, ok := api.ParseSignInLink(link)
	return ok
}

// CompleteSignInWithLink redeems link for email and forgets the stored email.
func (c *Client) CompleteSignInWithLink(ctx context.Context, email, link string) (*model.Identity, error) {
	id, err := c.p.CompleteSignInWithLink(ctx, strings.TrimSpace(email), link)
	if err != nil {
		return nil, err
	}
	if err := c.store.Delete(ctx, EmailKey); err != nil {
		c.log.Warn("clear stored email", zap.Error(err))
	}
	return c.signedIn(ctx, id)
}

// SignOut forgets the session and publishes nil.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.store.Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.publishLocked(nil)
	return nil
}
