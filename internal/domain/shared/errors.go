package shared

import "errors"

// Domain-specific errors
var (
	// Authorization precondition errors: the caller surfaces these as
	// blocking prompts offering the remedial flow
	ErrLoginRequired         = errors.New("login required before this action")
	ErrVendorProfileRequired = errors.New("vendor profile must be completed first")

	// Validation errors
	ErrEmptyComment        = errors.New("comment text is required")
	ErrPriceOutOfRange     = errors.New("price must be between AED 50 and AED 50,000")
	ErrSubCategoryRequired = errors.New("a sub-category must be selected")
	ErrItemNameRequired    = errors.New("item name is required")

	// Product errors
	ErrItemNotFound     = errors.New("item not found")
	ErrDetailNotLoaded  = errors.New("product detail not loaded yet")
	ErrNoAddress        = errors.New("item has no collection address")
	ErrDeleteNotWired   = errors.New("item deletion is not wired to the backend")
	ErrPaymentURLAbsent = errors.New("payment response carried no redirect URL")

	// Gateway errors
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrMalformedPayload = errors.New("malformed response payload")

	// Session storage errors
	ErrStorageKeyMissing = errors.New("storage hash key is not configured")
)
