package outbound

import "reloved-market-client/internal/domain/shared"

// SessionStore defines the persisted local session storage. The views
// documented here only read; writing belongs to the login flow.
type SessionStore interface {
	// ReadSession assembles the persisted session. Absent entries yield
	// the anonymous session, never an error.
	ReadSession() (shared.Session, error)

	// WriteSession persists the session after a login/profile update
	WriteSession(session shared.Session) error

	// Clear removes every persisted session entry
	Clear() error
}

// Navigator abstracts the two navigation surfaces the views use
type Navigator interface {
	// Navigate performs a client-side route change
	Navigate(route string)

	// Redirect performs a full outbound navigation, e.g. to a third-party
	// payment page
	Redirect(url string)
}
