// Package session tracks live sign-ins. It is the process-wide holder of
// session state: the auth service is its single writer, middleware and any
// subscribers are its readers. Signing out revokes the token ID, which is
// what gives logout real effect over otherwise stateless JWTs.
package session

import "sync"

type EventType string

const (
	SignedIn  EventType = "signed_in"
	SignedOut EventType = "signed_out"
)

type Event struct {
	Type    EventType
	UserID  string
	TokenID string
}

type Context struct {
	mu      sync.RWMutex
	active  map[string]string
	revoked map[string]struct{}
	subs    map[int]func(Event)
	nextSub int
}

func NewContext() *Context {
	return &Context{
		active:  make(map[string]string),
		revoked: make(map[string]struct{}),
		subs:    make(map[int]func(Event)),
	}
}

// SignIn records a newly issued token for userID and notifies subscribers.
func (c *Context) SignIn(tokenID, userID string) {
	c.mu.Lock()
	c.active[tokenID] = userID
	subs := c.snapshot()
	c.mu.Unlock()

	notify(subs, Event{Type: SignedIn, UserID: userID, TokenID: tokenID})
}

// SignOut revokes the token and notifies subscribers. Unknown tokens are
// still revoked, so a logout always sticks.
func (c *Context) SignOut(tokenID string) {
	c.mu.Lock()
	userID := c.active[tokenID]
	delete(c.active, tokenID)
	c.revoked[tokenID] = struct{}{}
	subs := c.snapshot()
	c.mu.Unlock()

	notify(subs, Event{Type: SignedOut, UserID: userID, TokenID: tokenID})
}

// Revoked reports whether the token has been signed out.
func (c *Context) Revoked(tokenID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.revoked[tokenID]
	return ok
}

// UserFor returns the user ID recorded for a live token, if any.
func (c *Context) UserFor(tokenID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	userID, ok := c.active[tokenID]
	return userID, ok
}

// Subscribe registers fn for sign-in/out events and returns the
// unsubscribe function.
func (c *Context) Subscribe(fn func(Event)) func() {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// snapshot must be called with the lock held.
func (c *Context) snapshot() []func(Event) {
	subs := make([]func(Event), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return subs
}

// notify runs outside the lock so subscribers may call back into Context.
func notify(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}
