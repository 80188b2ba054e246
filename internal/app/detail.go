package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"reloved-market-client/internal/domain/comment"
	"reloved-market-client/internal/domain/product"
	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/inbound"
	"reloved-market-client/internal/ports/outbound"
)

// ProductDetailView implements the product detail / Q&A flow for one
// listing. Fetched data is private to the view instance and discarded
// with it on navigation.
type ProductDetailView struct {
	gateway outbound.Gateway
	session *SessionContext
	nav     outbound.Navigator
	logger  zerolog.Logger
	itemID  uuid.UUID

	detail Slot[*product.Detail]

	mu         sync.Mutex
	draft      string
	submitting bool
	breakdown  *product.Product
	mapAddress string
}

type ProductDetailViewParams struct {
	Gateway   outbound.Gateway
	Session   *SessionContext
	Navigator outbound.Navigator
	Logger    zerolog.Logger
	ItemID    uuid.UUID
}

var _ inbound.DetailView = (*ProductDetailView)(nil)

// NewProductDetailView creates a detail view for one listing
func NewProductDetailView(params ProductDetailViewParams) *ProductDetailView {
	return &ProductDetailView{
		gateway: params.Gateway,
		session: params.Session,
		nav:     params.Navigator,
		logger:  params.Logger.With().Str("component", "product_detail_view").Str("item_uuid", params.ItemID.String()).Logger(),
		itemID:  params.ItemID,
	}
}

// Load fetches the product record. Presence of a bearer token selects the
// authenticated path; transport failures are logged and leave the slot
// Failed without any further recovery.
func (view *ProductDetailView) Load(ctx context.Context) error {
	session := view.session.Current()
	token := ""
	if session.Authenticated() {
		token = session.Token
	}

	gen := view.detail.Begin()

	detail, err := view.gateway.GetItem(ctx, view.itemID, token)
	if err != nil {
		view.logger.Error().Err(err).Msg("Failed to load product detail")
		view.detail.Complete(gen, nil, err)
		return err
	}

	if !view.detail.Complete(gen, detail, nil) {
		view.logger.Debug().Msg("Dropped stale product detail response")
	}

	return nil
}

// Detail returns the current fetch state of the product record
func (view *ProductDetailView) Detail() (Phase, *product.Detail, error) {
	return view.detail.State()
}

// PricePresentation describes how the price block renders: the total is a
// plain clickable element unless the viewer holds an active offer, in
// which case the list total is struck through next to the offer amount.
type PricePresentation struct {
	Total       string
	Struck      bool
	OfferAmount string
	Clickable   bool
}

// Price derives the price presentation from the loaded record
func (view *ProductDetailView) Price() (PricePresentation, bool) {
	detail, ok := view.detail.Value()
	if !ok || detail == nil || detail.Item == nil {
		return PricePresentation{}, false
	}

	item := detail.Item
	total := product.FormatAmount(item.FeeBreakdown.Total)

	if !item.HasOffer() {
		return PricePresentation{Total: total, Clickable: true}, true
	}

	return PricePresentation{
		Total:       total,
		Struck:      true,
		OfferAmount: product.FormatAmount(item.MyOffer.AskingPrice),
	}, true
}

// CommentAuthor resolves the display name for a comment in the loaded thread
func (view *ProductDetailView) CommentAuthor(c *comment.Comment) string {
	detail, ok := view.detail.Value()
	if !ok || detail == nil || detail.Item == nil || detail.Item.User == nil {
		return c.AuthorLabel(view.session.Current().User, 0)
	}
	return c.AuthorLabel(view.session.Current().User, detail.Item.User.ID)
}

// SetDraft updates the comment input text
func (view *ProductDetailView) SetDraft(text string) {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.draft = text
}

// Draft returns the current comment input text
func (view *ProductDetailView) Draft() string {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.draft
}

// Submitting reports whether a comment submission is in flight
func (view *ProductDetailView) Submitting() bool {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.submitting
}

// SubmitComment posts the drafted question or answer. Preconditions
// short-circuit fully: no identity surfaces the login prompt, an empty
// draft surfaces the validation prompt, and neither issues a call. On
// success the draft clears and the product is re-fetched; on failure the
// draft is retained for a manual retry.
func (view *ProductDetailView) SubmitComment(ctx context.Context) error {
	session := view.session.Current()
	if !session.HasIdentity() {
		view.logger.Warn().Msg("Comment submission without identity")
		return shared.ErrLoginRequired
	}

	view.mu.Lock()
	draft := view.draft
	view.mu.Unlock()

	if draft == "" {
		return shared.ErrEmptyComment
	}

	detail, ok := view.detail.Value()
	if !ok || detail == nil || detail.Item == nil || detail.Item.User == nil {
		return shared.ErrDetailNotLoaded
	}

	view.mu.Lock()
	view.submitting = true
	view.mu.Unlock()
	defer func() {
		view.mu.Lock()
		view.submitting = false
		view.mu.Unlock()
	}()

	form := outbound.CommentForm{
		ItemID:   detail.Item.ID,
		OwnerID:  detail.Item.User.ID,
		UserID:   session.User.ID,
		Comments: draft,
	}

	if err := view.gateway.SubmitComment(ctx, session.Token, form); err != nil {
		view.logger.Error().Err(err).Int64("item_id", form.ItemID).Msg("Failed to submit comment")
		return err
	}

	view.mu.Lock()
	view.draft = ""
	view.mu.Unlock()

	// Re-fetch so the thread reflects the new entry; ordering stays
	// whatever the backend returns
	if err := view.Load(ctx); err != nil {
		view.logger.Warn().Err(err).Msg("Failed to refresh product after comment")
	}

	return nil
}

// GoToLogin performs the navigation offered by the login prompt
func (view *ProductDetailView) GoToLogin() {
	view.nav.Navigate(RouteLogin)
}

// FeatureItem initiates the paid feature flow. Success ends in a full
// outbound redirect to the backend-supplied payment page.
func (view *ProductDetailView) FeatureItem(ctx context.Context) error {
	session := view.session.Current()
	if !session.Authenticated() {
		return shared.ErrLoginRequired
	}

	paymentURL, err := view.gateway.FeatureItemCheckout(ctx, session.Token, view.itemID)
	if err != nil {
		view.logger.Error().Err(err).Msg("Failed to initiate feature checkout")
		return err
	}

	view.nav.Redirect(paymentURL)
	return nil
}

// OpenPriceBreakdown selects the loaded product for the fee breakdown
// overlay. It reports false while no product is loaded.
func (view *ProductDetailView) OpenPriceBreakdown() bool {
	detail, ok := view.detail.Value()
	if !ok || detail == nil || detail.Item == nil {
		return false
	}

	view.mu.Lock()
	view.breakdown = detail.Item
	view.mu.Unlock()
	return true
}

// Breakdown returns the overlay's selected product while it is open
func (view *ProductDetailView) Breakdown() (*product.Product, bool) {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.breakdown, view.breakdown != nil
}

// ClosePriceBreakdown dismisses the overlay and discards its selection so
// it cannot reopen with stale data
func (view *ProductDetailView) ClosePriceBreakdown() {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.breakdown = nil
}

// OpenMap selects the loaded product's collection address for the map
// overlay. It reports false when no address is available.
func (view *ProductDetailView) OpenMap() bool {
	detail, ok := view.detail.Value()
	if !ok || detail == nil || detail.Item == nil || detail.Item.Address == "" {
		return false
	}

	view.mu.Lock()
	view.mapAddress = detail.Item.Address
	view.mu.Unlock()
	return true
}

// MapAddress returns the overlay's selected address while it is open
func (view *ProductDetailView) MapAddress() (string, bool) {
	view.mu.Lock()
	defer view.mu.Unlock()
	return view.mapAddress, view.mapAddress != ""
}

// CloseMap dismisses the overlay and discards its selection
func (view *ProductDetailView) CloseMap() {
	view.mu.Lock()
	defer view.mu.Unlock()
	view.mapAddress = ""
}
