package app

import (
	"sync"

	"github.com/rs/zerolog"

	"reloved-market-client/internal/domain/shared"
)

// Button is the parameterized styled control descriptor shared across the
// shell; rendering belongs to the host UI
type Button struct {
	Label          string
	Route          string
	Variant        string
	Size           string
	TextColor      string
	HoverTextColor string
}

// NavShell models the responsive navigation bar: a collapsible drawer, a
// scroll-triggered elevation change past a fixed pixel threshold, and a
// login-state-conditional action set.
type NavShell struct {
	session   *SessionContext
	logger    zerolog.Logger
	threshold int

	mu         sync.Mutex
	loggedIn   bool
	drawerOpen bool
	elevate    bool
}

type NavShellParams struct {
	Session         *SessionContext
	Logger          zerolog.Logger
	ScrollThreshold int
}

// NewNavShell creates the navigation shell and follows session refreshes
func NewNavShell(params NavShellParams) *NavShell {
	shell := &NavShell{
		session:   params.Session,
		logger:    params.Logger.With().Str("component", "nav_shell").Logger(),
		threshold: params.ScrollThreshold,
		loggedIn:  params.Session.Current().IsLoggedIn,
	}

	params.Session.Subscribe(func(session shared.Session) {
		shell.mu.Lock()
		shell.loggedIn = session.IsLoggedIn
		if !session.IsLoggedIn {
			shell.elevate = false
		}
		shell.mu.Unlock()
	})

	return shell
}

// HandleScroll updates the elevation state from a scroll offset. The bar
// only elevates for a logged-in viewer past the threshold.
func (shell *NavShell) HandleScroll(offset int) bool {
	shell.mu.Lock()
	defer shell.mu.Unlock()

	shell.elevate = shell.loggedIn && offset > shell.threshold
	return shell.elevate
}

// Elevated reports the current elevation state
func (shell *NavShell) Elevated() bool {
	shell.mu.Lock()
	defer shell.mu.Unlock()
	return shell.elevate
}

// OpenDrawer opens the collapsed navigation drawer
func (shell *NavShell) OpenDrawer() {
	shell.mu.Lock()
	defer shell.mu.Unlock()
	shell.drawerOpen = true
}

// CloseDrawer closes the navigation drawer
func (shell *NavShell) CloseDrawer() {
	shell.mu.Lock()
	defer shell.mu.Unlock()
	shell.drawerOpen = false
}

// DrawerOpen reports whether the drawer is open
func (shell *NavShell) DrawerOpen() bool {
	shell.mu.Lock()
	defer shell.mu.Unlock()
	return shell.drawerOpen
}

// Actions returns the login-state-conditional navigation buttons
func (shell *NavShell) Actions() []Button {
	shell.mu.Lock()
	loggedIn := shell.loggedIn
	shell.mu.Unlock()

	actions := []Button{
		{Label: "Home", Route: RouteHome},
		{Label: "Shop", Route: RouteShop},
	}

	if loggedIn {
		return append(actions,
			Button{Label: "My Profile", Route: RouteMyProfile},
			Button{Label: "Logout", Route: RouteLogin},
		)
	}

	return append(actions, Button{Label: "Login", Route: RouteLogin, Variant: "contained"})
}
