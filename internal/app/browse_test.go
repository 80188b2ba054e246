package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reloved-market-client/internal/domain/category"
	"reloved-market-client/internal/domain/product"
	"reloved-market-client/internal/ports/outbound"
)

func newBrowseView(gateway *fakeGateway) *BrowseView {
	return NewBrowseView(BrowseViewParams{Gateway: gateway, ItemsPerPage: 8})
}

func TestBrowseLoadPageBuildsQueryFromFilters(t *testing.T) {
	gateway := &fakeGateway{searchPage: &outbound.ProductPage{LastPage: 4}}
	view := newBrowseView(gateway)

	view.SetSearchText("lamp")
	view.SetPriceRange(100, 2000)
	view.ToggleBrand("Zara")
	view.ToggleBrand("Adidas")
	view.ToggleSize("M")
	view.SetCondition("Used")

	require.NoError(t, view.LoadPage(context.Background(), 2))

	require.Len(t, gateway.searches, 1)
	query := gateway.searches[0]
	assert.Equal(t, "lamp", query.Text)
	assert.Equal(t, float64(100), query.PriceMin)
	assert.Equal(t, float64(2000), query.PriceMax)
	assert.Equal(t, []string{"Adidas", "Zara"}, query.Brands)
	assert.Equal(t, []string{"M"}, query.Sizes)
	assert.Equal(t, "Used", query.Condition)
	assert.Equal(t, 2, query.Page)
	assert.Equal(t, 8, query.Size)

	assert.Equal(t, 2, view.Page())
	assert.Equal(t, 4, view.LastPage())
}

func TestBrowseToggleRemovesFilterEntry(t *testing.T) {
	gateway := &fakeGateway{searchPage: &outbound.ProductPage{LastPage: 1}}
	view := newBrowseView(gateway)

	view.ToggleBrand("Zara")
	view.ToggleBrand("Zara")

	require.NoError(t, view.LoadPage(context.Background(), 1))
	require.Len(t, gateway.searches, 1)
	assert.Empty(t, gateway.searches[0].Brands)
}

func TestBrowseApplyRestartsFromPageOne(t *testing.T) {
	gateway := &fakeGateway{searchPage: &outbound.ProductPage{LastPage: 4}}
	view := newBrowseView(gateway)

	require.NoError(t, view.LoadPage(context.Background(), 3))
	require.NoError(t, view.Apply(context.Background()))

	require.Len(t, gateway.searches, 2)
	assert.Equal(t, 1, gateway.searches[1].Page)
	assert.Equal(t, 1, view.Page())
}

func TestBrowseCategoryMenuLifecycle(t *testing.T) {
	gateway := &fakeGateway{
		subs: map[int64][]*category.SubCategory{
			3: {{ID: 31, CategoryID: 3, Name: "Chairs"}},
		},
	}
	view := newBrowseView(gateway)

	_, open := view.MenuOpen()
	assert.False(t, open)

	require.NoError(t, view.OpenCategoryMenu(context.Background(), 3))
	anchored, open := view.MenuOpen()
	require.True(t, open)
	assert.Equal(t, int64(3), anchored)

	phase, subs, err := view.MenuSubCategories()
	require.NoError(t, err)
	assert.Equal(t, PhaseLoaded, phase)
	require.Len(t, subs, 1)
	assert.Equal(t, "Chairs", subs[0].Name)

	view.CloseCategoryMenu()
	_, open = view.MenuOpen()
	assert.False(t, open)

	phase, subs, err = view.MenuSubCategories()
	require.NoError(t, err)
	assert.Equal(t, PhaseLoaded, phase)
	assert.Empty(t, subs)
}

func TestBrowseResultsCarryProducts(t *testing.T) {
	gateway := &fakeGateway{searchPage: &outbound.ProductPage{
		Items:    []*product.Product{{ID: 1}, {ID: 2}},
		LastPage: 1,
	}}
	view := newBrowseView(gateway)

	require.NoError(t, view.LoadPage(context.Background(), 1))

	phase, page, err := view.Results()
	require.NoError(t, err)
	assert.Equal(t, PhaseLoaded, phase)
	require.NotNil(t, page)
	assert.Len(t, page.Items, 2)
}
