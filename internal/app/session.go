package app

import (
	"sync"

	"github.com/rs/zerolog"

	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/outbound"
)

// SessionContext is the single injected session object every view reads
// from. It is constructed once at application start and only changes
// through an explicit Refresh, which re-reads the persisted store and
// notifies subscribers.
type SessionContext struct {
	store  outbound.SessionStore
	logger zerolog.Logger

	mu          sync.RWMutex
	current     shared.Session
	subscribers []func(shared.Session)
}

type SessionContextParams struct {
	Store  outbound.SessionStore
	Logger zerolog.Logger
}

// NewSessionContext creates the session context and performs the initial
// read. A failed read degrades to the anonymous session.
func NewSessionContext(params SessionContextParams) *SessionContext {
	ctx := &SessionContext{
		store:  params.Store,
		logger: params.Logger.With().Str("component", "session_context").Logger(),
	}
	ctx.current = ctx.read()
	return ctx
}

func (c *SessionContext) read() shared.Session {
	session, err := c.store.ReadSession()
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to read persisted session, using anonymous")
		return shared.Anonymous()
	}
	return session
}

// Current returns the session as of the last refresh
func (c *SessionContext) Current() shared.Session {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Refresh re-reads the persisted store and notifies subscribers
func (c *SessionContext) Refresh() shared.Session {
	session := c.read()

	c.mu.Lock()
	c.current = session
	subscribers := make([]func(shared.Session), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	c.logger.Debug().Bool("logged_in", session.IsLoggedIn).Msg("Session refreshed")

	for _, notify := range subscribers {
		notify(session)
	}

	return session
}

// Subscribe registers a callback invoked on every refresh
func (c *SessionContext) Subscribe(fn func(shared.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}
