package outbound

import (
	"context"

	"github.com/google/uuid"

	"reloved-market-client/internal/domain/category"
	"reloved-market-client/internal/domain/product"
)

// ProductPage is one server-driven page of listings
type ProductPage struct {
	Items       []*product.Product
	CurrentPage int
	LastPage    int
}

// CommentForm is the payload posted when asking or answering a question
type CommentForm struct {
	ItemID   int64
	OwnerID  int64
	UserID   int64
	Comments string
}

// Attachment is one image selected for upload
type Attachment struct {
	Name string
	Data []byte
}

// ItemForm is the multipart payload for creating or updating a listing
type ItemForm struct {
	Name          string
	Description   string
	Address       string
	Price         float64
	IsBid         int
	SubCategoryID int64
	// Properties holds the selected property value ids, flattened in the
	// order the form accumulated them
	Properties []int64
	Images     []Attachment
}

// SearchQuery carries the shop listing filters
type SearchQuery struct {
	Text          string
	CategoryID    int64
	SubCategoryID int64
	PriceMin      float64
	PriceMax      float64
	Brands        []string
	Sizes         []string
	Condition     string
	Page          int
	Size          int
}

// Gateway defines the remote marketplace API the views fetch from.
// An empty token selects the anonymous path where one exists.
type Gateway interface {
	// GetItem retrieves one listing with its properties and comment thread
	GetItem(ctx context.Context, id uuid.UUID, token string) (*product.Detail, error)

	// ListMyItems retrieves one page of the viewer's own listings
	ListMyItems(ctx context.Context, token string, statuses []product.Status, page, size int) (*ProductPage, error)

	// SearchItems retrieves one page of the public shop listing
	SearchItems(ctx context.Context, query SearchQuery) (*ProductPage, error)

	// ListCategories retrieves the top-level categories
	ListCategories(ctx context.Context) ([]*category.Category, error)

	// ListSubCategories retrieves the sub-categories of one category
	ListSubCategories(ctx context.Context, categoryID int64) ([]*category.SubCategory, error)

	// SubmitComment posts a question or answer on a listing
	SubmitComment(ctx context.Context, token string, form CommentForm) error

	// SubmitItem creates or updates a listing and returns the server message
	SubmitItem(ctx context.Context, token string, form ItemForm) (string, error)

	// FeatureItemCheckout initiates the paid feature flow and returns the
	// external payment page URL
	FeatureItemCheckout(ctx context.Context, token string, id uuid.UUID) (string, error)
}
