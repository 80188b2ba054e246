package app

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"reloved-market-client/internal/domain/category"
	"reloved-market-client/internal/ports/outbound"
)

// Filters holds the shop listing filter fields
type Filters struct {
	Text      string
	PriceMin  float64
	PriceMax  float64
	Brands    map[string]bool
	Sizes     map[string]bool
	Condition string
}

// BrowseView implements the public shop listing: category menu, filter
// drawer, and the paginated search grid.
type BrowseView struct {
	gateway      outbound.Gateway
	logger       zerolog.Logger
	itemsPerPage int

	categories Slot[[]*category.Category]
	menuSubs   Slot[[]*category.SubCategory]
	results    Slot[*outbound.ProductPage]

	mu           sync.Mutex
	drawerOpen   bool
	menuCategory int64
	filters      Filters
	page         int
	lastPage     int
}

type BrowseViewParams struct {
	Gateway      outbound.Gateway
	Logger       zerolog.Logger
	ItemsPerPage int
}

// NewBrowseView creates the shop listing view
func NewBrowseView(params BrowseViewParams) *BrowseView {
	itemsPerPage := params.ItemsPerPage
	if itemsPerPage < 1 {
		itemsPerPage = 8
	}

	return &BrowseView{
		gateway:      params.Gateway,
		logger:       params.Logger.With().Str("component", "browse_view").Logger(),
		itemsPerPage: itemsPerPage,
		filters:      Filters{Brands: make(map[string]bool), Sizes: make(map[string]bool)},
		page:         1,
		lastPage:     1,
	}
}

// LoadCategories fetches the category bar entries
func (view *BrowseView) LoadCategories(ctx context.Context) error {
	gen := view.categories.Begin()

	categories, err := view.gateway.ListCategories(ctx)
	if err != nil {
		view.logger.Error().Err(err).Msg("Failed to load categories")
		view.categories.Complete(gen, nil, err)
		return err
	}

	view.categories.Complete(gen, categories, nil)
	return nil
}

// Categories returns the category fetch state
func (view *BrowseView) Categories() (Phase, []*category.Category, error) {
	return view.categories.State()
}

// ToggleDrawer flips the filter drawer and returns the new state
func (view *BrowseView) ToggleDrawer() bool {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.drawerOpen = !view.drawerOpen
	return view.drawerOpen
}

// DrawerOpen reports whether the filter drawer is open
func (view *BrowseView) DrawerOpen() bool {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.drawerOpen
}

// OpenCategoryMenu anchors the category menu and fetches its sub-categories
func (view *BrowseView) OpenCategoryMenu(ctx context.Context, categoryID int64) error {
	view.mu.Lock()
	view.menuCategory = categoryID
	view.mu.Unlock()

	gen := view.menuSubs.Begin()

	subCategories, err := view.gateway.ListSubCategories(ctx, categoryID)
	if err != nil {
		view.logger.Error().Err(err).Int64("category_id", categoryID).Msg("Failed to load menu sub-categories")
		view.menuSubs.Complete(gen, nil, err)
		return err
	}

	if !view.menuSubs.Complete(gen, subCategories, nil) {
		view.logger.Debug().Int64("category_id", categoryID).Msg("Dropped stale menu response")
	}

	return nil
}

// MenuSubCategories returns the open menu's entries
func (view *BrowseView) MenuSubCategories() (Phase, []*category.SubCategory, error) {
	return view.menuSubs.State()
}

// CloseCategoryMenu dismisses the menu and discards its anchor
func (view *BrowseView) CloseCategoryMenu() {
	view.mu.Lock()
	view.menuCategory = 0
	view.mu.Unlock()
	view.menuSubs.Reset()
}

// MenuOpen reports the anchored category, if any
func (view *BrowseView) MenuOpen() (int64, bool) {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.menuCategory, view.menuCategory != 0
}

// SetSearchText updates the search input
func (view *BrowseView) SetSearchText(text string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.filters.Text = text
}

// SetPriceRange updates the price filter bounds
func (view *BrowseView) SetPriceRange(min, max float64) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.filters.PriceMin = min
	view.filters.PriceMax = max
}

// ToggleBrand flips one brand filter entry
func (view *BrowseView) ToggleBrand(brand string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	if view.filters.Brands[brand] {
		delete(view.filters.Brands, brand)
	} else {
		view.filters.Brands[brand] = true
	}
}

// ToggleSize flips one size filter entry
func (view *BrowseView) ToggleSize(size string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	if view.filters.Sizes[size] {
		delete(view.filters.Sizes, size)
	} else {
		view.filters.Sizes[size] = true
	}
}

// SetCondition updates the condition filter
func (view *BrowseView) SetCondition(condition string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.filters.Condition = condition
}

// Apply re-runs the search from page one with the current filters
func (view *BrowseView) Apply(ctx context.Context) error {
	return view.LoadPage(ctx, 1)
}

// LoadPage fetches one page of the shop listing
func (view *BrowseView) LoadPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	query := view.buildQuery(page)
	gen := view.results.Begin()

	result, err := view.gateway.SearchItems(ctx, query)
	if err != nil {
		view.logger.Error().Err(err).Int("page", page).Msg("Failed to load shop page")
		view.results.Complete(gen, nil, err)
		return err
	}

	if !view.results.Complete(gen, result, nil) {
		view.logger.Debug().Int("page", page).Msg("Dropped stale shop page response")
		return nil
	}

	view.mu.Lock()
	view.page = page
	view.lastPage = result.LastPage
	view.mu.Unlock()

	return nil
}

// Results returns the search fetch state
func (view *BrowseView) Results() (Phase, *outbound.ProductPage, error) {
	return view.results.State()
}

// Page returns the current page number
func (view *BrowseView) Page() int {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.page
}

// LastPage returns the server-supplied page count
func (view *BrowseView) LastPage() int {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.lastPage
}

func (view *BrowseView) buildQuery(page int) outbound.SearchQuery {
	view.mu.Lock()
	defer view.mu.Unlock()

	brands := make([]string, 0, len(view.filters.Brands))
	for brand := range view.filters.Brands {
		brands = append(brands, brand)
	}
	sort.Strings(brands)

	sizes := make([]string, 0, len(view.filters.Sizes))
	for size := range view.filters.Sizes {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)

	return outbound.SearchQuery{
		Text:       view.filters.Text,
		CategoryID: view.menuCategory,
		PriceMin:   view.filters.PriceMin,
		PriceMax:   view.filters.PriceMax,
		Brands:     brands,
		Sizes:      sizes,
		Condition:  view.filters.Condition,
		Page:       page,
		Size:       view.itemsPerPage,
	}
}
