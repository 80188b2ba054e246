package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reloved-market-client/internal/domain/shared"
)

func TestSessionContextReadsOnceAtConstruction(t *testing.T) {
	store := &memStore{session: loggedInSession(7, "Yes")}
	ctx := NewSessionContext(SessionContextParams{Store: store})

	require.True(t, ctx.Current().IsLoggedIn)

	// A store mutation is invisible until an explicit refresh
	require.NoError(t, store.Clear())
	assert.True(t, ctx.Current().IsLoggedIn)

	refreshed := ctx.Refresh()
	assert.False(t, refreshed.IsLoggedIn)
	assert.False(t, ctx.Current().IsLoggedIn)
}

func TestSessionContextDegradesToAnonymousOnReadFailure(t *testing.T) {
	store := &memStore{session: loggedInSession(7, "Yes"), readErr: errFakeTransport}
	ctx := NewSessionContext(SessionContextParams{Store: store})

	current := ctx.Current()
	assert.False(t, current.IsLoggedIn)
	assert.Nil(t, current.User)
}

func TestSessionContextNotifiesSubscribersOnRefresh(t *testing.T) {
	store := &memStore{session: shared.Anonymous()}
	ctx := NewSessionContext(SessionContextParams{Store: store})

	var seen []bool
	ctx.Subscribe(func(session shared.Session) {
		seen = append(seen, session.IsLoggedIn)
	})

	require.NoError(t, store.WriteSession(loggedInSession(7, "Yes")))
	ctx.Refresh()
	require.NoError(t, store.Clear())
	ctx.Refresh()

	assert.Equal(t, []bool{true, false}, seen)
}

func TestSessionPredicates(t *testing.T) {
	assert.False(t, shared.Anonymous().Authenticated())
	assert.False(t, shared.Anonymous().HasIdentity())

	tokenOnly := shared.Session{IsLoggedIn: true, Token: "tok"}
	assert.True(t, tokenOnly.Authenticated())
	assert.False(t, tokenOnly.HasIdentity())

	full := loggedInSession(7, "No")
	assert.True(t, full.Authenticated())
	assert.True(t, full.HasIdentity())
	assert.False(t, full.User.VendorComplete())
	assert.True(t, loggedInSession(7, "Yes").User.VendorComplete())
}
