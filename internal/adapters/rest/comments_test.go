package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/outbound"
)

func TestSubmitCommentMultipartFields(t *testing.T) {
	var values map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/item-comment", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		values = r.MultipartForm.Value

		w.Write([]byte(`{"status": "success"}`))
	}))

	err := client.SubmitComment(context.Background(), "tok-123", outbound.CommentForm{
		ItemID:   41,
		OwnerID:  9,
		UserID:   7,
		Comments: "is this still available?",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"41"}, values["item_id"])
	assert.Equal(t, []string{"9"}, values["owner_id"])
	assert.Equal(t, []string{"7"}, values["user_id"])
	assert.Equal(t, []string{"is this still available?"}, values["comments"])
}

func TestSubmitCommentSurfacesBackendFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	err := client.SubmitComment(context.Background(), "tok-123", outbound.CommentForm{ItemID: 41})
	assert.ErrorIs(t, err, shared.ErrUnexpectedStatus)
}
