package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reloved-market-client/internal/domain/product"
	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/inbound"
	"reloved-market-client/internal/ports/outbound"
)

// myListingStatuses selects every listing state shown in the grid
var myListingStatuses = []product.Status{
	product.StatusPending,
	product.StatusApproved,
	product.StatusRejected,
	product.StatusSold,
	product.StatusBidAccepted,
}

// Tile is one cell of the my-products grid: either a real listing or the
// synthetic add-item tile pinned first on page one
type Tile struct {
	AddItem bool
	Product *product.Product
}

// MyProductsView implements the paginated grid of the viewer's own
// listings with inline edit/delete affordances.
type MyProductsView struct {
	gateway      outbound.Gateway
	session      *SessionContext
	nav          outbound.Navigator
	logger       zerolog.Logger
	itemsPerPage int

	tiles Slot[[]Tile]

	mu       sync.Mutex
	page     int
	lastPage int
}

type MyProductsViewParams struct {
	Gateway      outbound.Gateway
	Session      *SessionContext
	Navigator    outbound.Navigator
	Logger       zerolog.Logger
	ItemsPerPage int
}

var _ inbound.ProductsGrid = (*MyProductsView)(nil)

// NewMyProductsView creates the my-products grid view
func NewMyProductsView(params MyProductsViewParams) *MyProductsView {
	itemsPerPage := params.ItemsPerPage
	if itemsPerPage < 2 {
		itemsPerPage = 8
	}

	return &MyProductsView{
		gateway:      params.Gateway,
		session:      params.Session,
		nav:          params.Navigator,
		logger:       params.Logger.With().Str("component", "my_products_view").Logger(),
		itemsPerPage: itemsPerPage,
		page:         1,
		lastPage:     1,
	}
}

// LoadPage fetches one page of the viewer's listings. Page one requests
// one fewer item to accommodate the synthetic add-tile, keeping the
// visible count per page constant.
func (view *MyProductsView) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	session := view.session.Current()
	if !session.Authenticated() {
		return shared.ErrLoginRequired
	}

	size := view.itemsPerPage
	if page == 1 {
		size--
	}

	gen := view.tiles.Begin()

	result, err := view.gateway.ListMyItems(ctx, session.Token, myListingStatuses, page, size)
	if err != nil {
		view.logger.Error().Err(err).Int("page", page).Msg("Failed to load my products page")
		view.tiles.Complete(gen, nil, err)
		return err
	}

	tiles := make([]Tile, 0, len(result.Items)+1)
	if page == 1 {
		tiles = append(tiles, Tile{AddItem: true})
	}
	for _, item := range result.Items {
		tiles = append(tiles, Tile{Product: item})
	}

	if !view.tiles.Complete(gen, tiles, nil) {
		view.logger.Debug().Int("page", page).Msg("Dropped stale listing page response")
		return nil
	}

	view.mu.Lock()
	view.page = page
	view.lastPage = result.LastPage
	view.mu.Unlock()

	return nil
}

// Tiles returns the current fetch state of the grid
func (view *MyProductsView) Tiles() (Phase, []Tile, error) {
	return view.tiles.State()
}

// Page returns the current page number
func (view *MyProductsView) Page() int {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.page
}

// LastPage returns the server-supplied page count
func (view *MyProductsView) LastPage() int {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.lastPage
}

// AddItem gates the add-item flow on vendor-profile completeness. An
// incomplete profile surfaces a blocking prompt offering the vendor
// setup flow instead.
func (view *MyProductsView) AddItem() error {
	session := view.session.Current()
	if !session.User.VendorComplete() {
		view.logger.Warn().Msg("Add item blocked: vendor profile incomplete")
		return shared.ErrVendorProfileRequired
	}

	view.nav.Navigate(RouteAddProduct)
	return nil
}

// GoToVendorSetup performs the navigation offered by the vendor prompt
func (view *MyProductsView) GoToVendorSetup() {
	view.nav.Navigate(RouteAddVendorProfile)
}

// ConfirmDelete finalizes a confirmation-gated deletion. The backend
// deletion endpoint is deliberately not wired; the confirmed intent is
// logged and reported to the caller.
func (view *MyProductsView) ConfirmDelete(id int64) error {
	view.logger.Info().Int64("item_id", id).Msg("Deleting product")
	return shared.ErrDeleteNotWired
}

// Edit navigates to the edit flow for a listing
func (view *MyProductsView) Edit(id uuid.UUID) {
	view.nav.Navigate(EditProductRoute(id))
}

// Details navigates to the detail page for a listing
func (view *MyProductsView) Details(id uuid.UUID) {
	view.nav.Navigate(ProductDetailsRoute(id))
}
