package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/alitto/pond"
	"github.com/rs/zerolog"

	"reloved-market-client/internal/config"
	"reloved-market-client/internal/domain/category"
	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/inbound"
	"reloved-market-client/internal/ports/outbound"
)

// EditorView implements the multi-step listing form: category, then
// sub-category, then the remaining fields. Changing category resets every
// downstream field to guard against stale property-value combinations.
type EditorView struct {
	gateway outbound.Gateway
	session *SessionContext
	nav     outbound.Navigator
	logger  zerolog.Logger

	// workerPool reads attachment files off the calling flow
	workerPool *pond.WorkerPool

	categories    Slot[[]*category.Category]
	subCategories Slot[[]*category.SubCategory]

	mu           sync.Mutex
	name         string
	description  string
	price        float64
	priceErr     error
	address      string
	acceptOffers int
	images       []outbound.Attachment

	selectedCategory int64
	selectedSub      *category.SubCategory

	// selections maps property id -> selected value ids; a property whose
	// last value is deselected is removed entirely, never left empty
	selections map[int64][]int64
	// selectionOrder preserves first-selection order for form flattening
	selectionOrder []int64
}

type EditorViewParams struct {
	Gateway   outbound.Gateway
	Session   *SessionContext
	Navigator outbound.Navigator
	Logger    zerolog.Logger
}

var _ inbound.ItemEditor = (*EditorView)(nil)

// NewEditorView creates the listing form view
func NewEditorView(params EditorViewParams) *EditorView {
	pool := pond.New(
		config.UploadMaxWorkers,
		config.UploadMaxCapacity,
		pond.Strategy(pond.Balanced()),
	)

	return &EditorView{
		gateway:    params.Gateway,
		session:    params.Session,
		nav:        params.Navigator,
		logger:     params.Logger.With().Str("component", "editor_view").Logger(),
		workerPool: pool,
		selections: make(map[int64][]int64),
	}
}

// Stop releases the attachment worker pool
func (view *EditorView) Stop() {
	view.workerPool.StopAndWait()
}

// LoadCategories fetches the top-level category options
func (view *EditorView) LoadCategories(ctx context.Context) error {
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

// Categories returns the current category fetch state
func (view *EditorView) Categories() (Phase, []*category.Category, error) {
	return view.categories.State()
}

// SelectCategory resets every downstream field, records the new category,
// and fetches its sub-categories
func (view *EditorView) SelectCategory(ctx context.Context, categoryID int64) error {
	view.resetDownstream()

	view.mu.Lock()
	view.selectedCategory = categoryID
	view.mu.Unlock()

	gen := view.subCategories.Begin()

	subCategories, err := view.gateway.ListSubCategories(ctx, categoryID)
	if err != nil {
		view.logger.Error().Err(err).Int64("category_id", categoryID).Msg("Failed to load sub-categories")
		view.subCategories.Complete(gen, nil, err)
		return err
	}

	if !view.subCategories.Complete(gen, subCategories, nil) {
		view.logger.Debug().Int64("category_id", categoryID).Msg("Dropped stale sub-category response")
	}

	return nil
}

// SubCategories returns the current sub-category fetch state
func (view *EditorView) SubCategories() (Phase, []*category.SubCategory, error) {
	return view.subCategories.State()
}

// SelectSubCategory records the sub-category selection. The selection
// must belong to the currently chosen category; anything else is ignored.
func (view *EditorView) SelectSubCategory(id int64) bool {
	options, ok := view.subCategories.Value()
	if !ok {
		return false
	}

	for _, sub := range options {
		if sub.ID == id {
			view.mu.Lock()
			view.selectedSub = sub
			view.mu.Unlock()
			return true
		}
	}

	return false
}

// SelectedSubCategory returns the current sub-category selection
func (view *EditorView) SelectedSubCategory() (*category.SubCategory, bool) {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.selectedSub, view.selectedSub != nil
}

// SetName updates the item name field
func (view *EditorView) SetName(name string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.name = name
}

// SetDescription updates the description field
func (view *EditorView) SetDescription(description string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.description = description
}

// SetAddress stores the serialized geocoded address
func (view *EditorView) SetAddress(serialized string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.address = serialized
}

// SetAcceptOffers toggles the offer flag
func (view *EditorView) SetAcceptOffers(accept bool) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.acceptOffers = 0
	if accept {
		view.acceptOffers = 1
	}
}

// SetPrice validates and stores the price input. Values strictly below 50
// or strictly above 50000 raise the bounds violation; an in-range value
// clears it.
func (view *EditorView) SetPrice(value float64) {
	view.mu.Lock()
	defer view.mu.Unlock()

	view.price = value
	if value < config.MinItemPrice || value > config.MaxItemPrice {
		view.priceErr = shared.ErrPriceOutOfRange
	} else {
		view.priceErr = nil
	}
}

// PriceError returns the active price validation error, if any
func (view *EditorView) PriceError() error {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.priceErr
}

// ToggleProperty adds or removes one property value selection. Removing
// the last value of a property deletes the property's entry entirely.
func (view *EditorView) ToggleProperty(propertyID, valueID int64, selected bool) {
	view.mu.Lock()
	defer view.mu.Unlock()

	if selected {
		values, exists := view.selections[propertyID]
		if !exists {
			view.selectionOrder = append(view.selectionOrder, propertyID)
		}
		for _, v := range values {
			if v == valueID {
				return
			}
		}
		view.selections[propertyID] = append(values, valueID)
		return
	}

	values := view.selections[propertyID]
	kept := values[:0]
	for _, v := range values {
		if v != valueID {
			kept = append(kept, v)
		}
	}

	if len(kept) == 0 {
		delete(view.selections, propertyID)
		for i, id := range view.selectionOrder {
			if id == propertyID {
				view.selectionOrder = append(view.selectionOrder[:i], view.selectionOrder[i+1:]...)
				break
			}
		}
		return
	}

	view.selections[propertyID] = kept
}

// Selections returns a copy of the property selection mapping
func (view *EditorView) Selections() map[int64][]int64 {
	view.mu.Lock()
	defer view.mu.Unlock()

	out := make(map[int64][]int64, len(view.selections))
	for propertyID, values := range view.selections {
		out[propertyID] = append([]int64(nil), values...)
	}
	return out
}

// AddAttachments accumulates upload selections, truncating at the cap
func (view *EditorView) AddAttachments(files []outbound.Attachment) {
	view.mu.Lock()
	defer view.mu.Unlock()

	view.images = append(view.images, files...)
	if len(view.images) > config.MaxItemImages {
		view.images = view.images[:config.MaxItemImages]
	}
}

// Attachments returns the accumulated upload selection
func (view *EditorView) Attachments() []outbound.Attachment {
	view.mu.Lock()
	defer view.mu.Unlock()
	return append([]outbound.Attachment(nil), view.images...)
}

// LoadAttachments reads image files through the worker pool and
// accumulates the readable ones in path order
func (view *EditorView) LoadAttachments(ctx context.Context, paths []string) error {
	results := make([]*outbound.Attachment, len(paths))

	group := view.workerPool.Group()
	for i, path := range paths {
		i, path := i, path
		group.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			data, err := os.ReadFile(path)
			if err != nil {
				view.logger.Warn().Err(err).Str("path", path).Msg("Skipping unreadable attachment")
				return
			}
			results[i] = &outbound.Attachment{Name: filepath.Base(path), Data: data}
		})
	}
	group.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}

	loaded := make([]outbound.Attachment, 0, len(paths))
	for _, attachment := range results {
		if attachment != nil {
			loaded = append(loaded, *attachment)
		}
	}

	view.AddAttachments(loaded)
	return nil
}

// Prefill seeds the form from an existing listing for editing
type EditorPrefill struct {
	Name         string
	Description  string
	Price        float64
	Address      string
	AcceptOffers bool
	CategoryID   int64
	Selections   map[int64][]int64
	Images       []outbound.Attachment
}

// Prefill applies an existing listing's fields to the form
func (view *EditorView) Prefill(data EditorPrefill) {
	view.SetName(data.Name)
	view.SetDescription(data.Description)
	view.SetPrice(data.Price)
	view.SetAddress(data.Address)
	view.SetAcceptOffers(data.AcceptOffers)

	view.mu.Lock()
	view.selectedCategory = data.CategoryID
	view.selections = make(map[int64][]int64, len(data.Selections))
	view.selectionOrder = view.selectionOrder[:0]
	view.mu.Unlock()

	for propertyID, values := range data.Selections {
		for _, valueID := range values {
			view.ToggleProperty(propertyID, valueID, true)
		}
	}

	view.AddAttachments(data.Images)
}

// resetDownstream clears every field downstream of the category
// selection, guarding against stale property-value combinations
func (view *EditorView) resetDownstream() {
	view.mu.Lock()
	view.name = ""
	view.description = ""
	view.price = 0
	view.priceErr = nil
	view.address = ""
	view.acceptOffers = 0
	view.images = nil
	view.selectedCategory = 0
	view.selectedSub = nil
	view.selections = make(map[int64][]int64)
	view.selectionOrder = nil
	view.mu.Unlock()

	view.subCategories.Reset()
}

// ResetForm clears the whole form
func (view *EditorView) ResetForm() {
	view.resetDownstream()
}

// Submit posts the listing form. Submission is blocked while a price
// validation error is present; success redirects to the shop listing.
func (view *EditorView) Submit(ctx context.Context) error {
	session := view.session.Current()
	if !session.Authenticated() {
		return shared.ErrLoginRequired
	}

	view.mu.Lock()
	priceErr := view.priceErr
	price := view.price
	name := view.name
	description := view.description
	address := view.address
	acceptOffers := view.acceptOffers
	selectedSub := view.selectedSub
	images := append([]outbound.Attachment(nil), view.images...)

	properties := make([]int64, 0)
	for _, propertyID := range view.selectionOrder {
		properties = append(properties, view.selections[propertyID]...)
	}
	view.mu.Unlock()

	if priceErr != nil {
		return priceErr
	}
	if price < config.MinItemPrice || price > config.MaxItemPrice {
		return shared.ErrPriceOutOfRange
	}
	if selectedSub == nil {
		return shared.ErrSubCategoryRequired
	}
	if name == "" {
		return shared.ErrItemNameRequired
	}

	form := outbound.ItemForm{
		Name:          name,
		Description:   description,
		Address:       address,
		Price:         price,
		IsBid:         acceptOffers,
		SubCategoryID: selectedSub.ID,
		Properties:    properties,
		Images:        images,
	}

	message, err := view.gateway.SubmitItem(ctx, session.Token, form)
	if err != nil {
		view.logger.Error().Err(err).Str("item_name", name).Msg("Failed to submit listing")
		return err
	}

	view.logger.Info().Str("message", message).Msg("Listing submitted")
	view.nav.Navigate(RouteShop)
	return nil
}
