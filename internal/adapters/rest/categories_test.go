package rest

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reloved-market-client/internal/domain/shared"
)

func TestListCategories(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/global/category", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{
			"status": "success",
			"data": [
				{"id": 1, "name": "Fashion"},
				{"id": 2, "name": "Home"}
			]
		}`))
	}))

	categories, err := client.ListCategories(context.Background())
	require.NoError(t, err)

	require.Len(t, categories, 2)
	assert.Equal(t, int64(1), categories[0].ID)
	assert.Equal(t, "Fashion", categories[0].Name)
}

func TestListSubCategoriesCarriesProperties(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/global/sub-category", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("category_id"))
		w.Write([]byte(`{
			"status": "success",
			"data": [
				{
					"id": 11,
					"category_id": 1,
					"name": "Shoes",
					"property_values": [
						{"id": 5, "name": "Size", "values": [{"id": 51, "value": "42"}, {"id": 52, "value": "43"}]}
					]
				}
			]
		}`))
	}))

	subCategories, err := client.ListSubCategories(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, subCategories, 1)
	sub := subCategories[0]
	assert.Equal(t, "Shoes", sub.Name)
	require.Len(t, sub.PropertyValues, 1)
	assert.Equal(t, "Size", sub.PropertyValues[0].Name)
	require.Len(t, sub.PropertyValues[0].Values, 2)
	assert.Equal(t, "42", sub.PropertyValues[0].Values[0].Value)
}

func TestListCategoriesMalformedData(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "success", "data": {"not": "an array"}}`))
	}))

	_, err := client.ListCategories(context.Background())
	assert.ErrorIs(t, err, shared.ErrMalformedPayload)
}
