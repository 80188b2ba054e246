package product

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"reloved-market-client/internal/domain/comment"
	"reloved-market-client/internal/domain/shared"
)

// Status represents the moderation/sale state of a listing
type Status int

const (
	StatusPending Status = iota
	StatusApproved
	StatusRejected
	StatusSold
	StatusBidAccepted
	StatusArchived
)

// Label returns the badge text shown on listing cards
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusSold:
		return "Sold"
	case StatusBidAccepted:
		return "Bid accepted"
	default:
		return "Archived"
	}
}

// Image is one entry of a listing's ordered image set
type Image struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"image_url"`
}

// FeeBreakdown is the server-computed charge composition for a listing
type FeeBreakdown struct {
	Price              float64 `json:"price"`
	BuyerProtectionFee float64 `json:"buyer_protection_fee"`
	Total              float64 `json:"total"`
}

// Offer is the viewer's active bid on a listing, distinct from the listed price
type Offer struct {
	ID          int64   `json:"id"`
	AskingPrice float64 `json:"asking_price"`
}

// Product mirrors one marketplace listing as returned by the backend.
// Everything here is server-owned; the client caches it per view instance
// and discards it on navigation.
type Product struct {
	ID           int64               `json:"id"`
	UUID         uuid.UUID           `json:"uuid"`
	Name         string              `json:"item_name"`
	Description  string              `json:"item_description"`
	Price        float64             `json:"price"`
	TotalFee     float64             `json:"total_fee"`
	FeeBreakdown FeeBreakdown        `json:"total_fee_breakdown"`
	Images       []Image             `json:"images"`
	DefaultImage *Image              `json:"default_image"`
	Address      string              `json:"address"`
	Status       Status              `json:"status"`
	IsBid        int                 `json:"is_bid"`
	MyOffer      *Offer              `json:"my_offer"`
	User         *shared.UserProfile `json:"user"`
}

// AcceptsOffers reports whether the seller opted into bids
func (p *Product) AcceptsOffers() bool {
	return p.IsBid != 0
}

// HasOffer reports whether the viewer has an active offer on this listing
func (p *Product) HasOffer() bool {
	return p.MyOffer != nil
}

// ProtectionFee derives the buyer-protection portion shown in the breakdown
func (p *Product) ProtectionFee() float64 {
	return p.TotalFee - p.Price
}

// OwnedBy reports whether the given viewer owns the listing
func (p *Product) OwnedBy(viewer *shared.UserProfile) bool {
	return viewer != nil && p.User != nil && viewer.ID == p.User.ID
}

// ItemProperty is one property column of the detail page's attribute table
type ItemProperty struct {
	Name   string             `json:"properties"`
	Values []PropertyValueRef `json:"values"`
}

// PropertyValueRef is a selected value under a property
type PropertyValueRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Detail is the full payload rendered by the product detail view
type Detail struct {
	Item       *Product           `json:"item_details"`
	Properties []ItemProperty     `json:"item_property_details"`
	Comments   []*comment.Comment `json:"item_comments"`
}

// addressEntry is one element of the serialized geocoded address array
type addressEntry struct {
	Name string `json:"name"`
}

// CollectionName extracts the display name from a serialized geocoded
// address. The backend serializes an array; the human-readable name
// lives at index 1.
func CollectionName(serialized string) (string, error) {
	if serialized == "" {
		return "", shared.ErrNoAddress
	}

	var entries []addressEntry
	if err := json.Unmarshal([]byte(serialized), &entries); err != nil {
		return "", shared.ErrMalformedPayload
	}

	if len(entries) < 2 {
		return "", nil
	}
	return entries[1].Name, nil
}

// FormatAmount renders a price with thousands separators, e.g. 51250 -> "51,250"
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign, intPart = "-", intPart[1:]
	}

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return sign + b.String() + fracPart
}
