package inbound

import (
	"context"

	"github.com/google/uuid"

	"reloved-market-client/internal/ports/outbound"
)

// DetailView defines the product detail / Q&A flow
type DetailView interface {
	// Load fetches the product record, selecting the authenticated or
	// anonymous path based on the resolved session
	Load(ctx context.Context) error

	// SetDraft updates the comment input text
	SetDraft(text string)

	// SubmitComment posts the drafted question or answer
	SubmitComment(ctx context.Context) error

	// FeatureItem initiates the paid feature flow and redirects to the
	// returned payment URL
	FeatureItem(ctx context.Context) error

	// OpenPriceBreakdown presents the fee breakdown overlay
	OpenPriceBreakdown() bool
	// ClosePriceBreakdown dismisses the overlay and discards its selection
	ClosePriceBreakdown()

	// OpenMap presents the collection address overlay
	OpenMap() bool
	// CloseMap dismisses the overlay and discards its selection
	CloseMap()
}

// ProductsGrid defines the paginated my-products flow
type ProductsGrid interface {
	// LoadPage fetches one page of the viewer's listings
	LoadPage(ctx context.Context, page int) error

	// AddItem gates and navigates into the add-item flow
	AddItem() error

	// ConfirmDelete finalizes a confirmation-gated deletion
	ConfirmDelete(id int64) error

	// Edit navigates to the edit flow for a listing
	Edit(id uuid.UUID)

	// Details navigates to the detail page for a listing
	Details(id uuid.UUID)
}

// ItemEditor defines the multi-step listing form
type ItemEditor interface {
	// LoadCategories fetches the top-level category options
	LoadCategories(ctx context.Context) error

	// SelectCategory resets downstream fields and fetches sub-categories
	SelectCategory(ctx context.Context, categoryID int64) error

	// ToggleProperty adds or removes a property value selection
	ToggleProperty(propertyID, valueID int64, selected bool)

	// SetPrice validates and stores the price input
	SetPrice(value float64)

	// AddAttachments accumulates upload selections up to the image cap
	AddAttachments(files []outbound.Attachment)

	// Submit posts the listing form
	Submit(ctx context.Context) error
}
