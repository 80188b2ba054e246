package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"reloved-market-client/internal/domain/product"
	"reloved-market-client/internal/domain/shared"
	"reloved-market-client/internal/ports/outbound"
)

var _ outbound.Gateway = (*Client)(nil)

// productWire shadows the fields the backend serializes inconsistently so
// they can be normalized at the boundary. my_offer arrives as an object,
// null, or an empty string.
type productWire struct {
	product.Product
	MyOffer json.RawMessage `json:"my_offer"`
}

func decodeProduct(raw json.RawMessage) (*product.Product, error) {
	var wire productWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrMalformedPayload, err)
	}

	p := wire.Product
	p.MyOffer = nil

	offer := strings.TrimSpace(string(wire.MyOffer))
	if offer != "" && offer != "null" && offer != `""` {
		var parsed product.Offer
		if err := json.Unmarshal(wire.MyOffer, &parsed); err != nil {
			return nil, fmt.Errorf("%w: my_offer: %v", shared.ErrMalformedPayload, err)
		}
		p.MyOffer = &parsed
	}

	return &p, nil
}

// detailWire is the item detail payload; unlike list endpoints it is not
// wrapped in the { status, data } envelope
type detailWire struct {
	Status      string          `json:"status"`
	ItemDetails json.RawMessage `json:"item_details"`
	Properties  json.RawMessage `json:"item_property_details"`
	Comments    json.RawMessage `json:"item_comments"`
}

// GetItem retrieves one listing with its properties and comment thread.
// A bearer token selects the authenticated path, which is the only one
// carrying the viewer's offer state.
func (c *Client) GetItem(ctx context.Context, id uuid.UUID, token string) (*product.Detail, error) {
	scope := "global"
	if token != "" {
		scope = "auth"
	}

	var wire detailWire
	if err := c.getJSON(ctx, fmt.Sprintf("/api/%s/items/%s", scope, id), token, &wire); err != nil {
		c.logger.Error().Err(err).Str("item_uuid", id.String()).Msg("Failed to fetch item detail")
		return nil, err
	}

	if len(wire.ItemDetails) == 0 {
		return nil, fmt.Errorf("%w: missing item_details", shared.ErrMalformedPayload)
	}

	item, err := decodeProduct(wire.ItemDetails)
	if err != nil {
		return nil, err
	}

	detail := &product.Detail{Item: item}

	if len(wire.Properties) > 0 {
		if err := json.Unmarshal(wire.Properties, &detail.Properties); err != nil {
			return nil, fmt.Errorf("%w: item_property_details: %v", shared.ErrMalformedPayload, err)
		}
	}
	if len(wire.Comments) > 0 {
		if err := json.Unmarshal(wire.Comments, &detail.Comments); err != nil {
			return nil, fmt.Errorf("%w: item_comments: %v", shared.ErrMalformedPayload, err)
		}
	}

	return detail, nil
}

// ListMyItems retrieves one page of the viewer's own listings
func (c *Client) ListMyItems(ctx context.Context, token string, statuses []product.Status, page, size int) (*outbound.ProductPage, error) {
	codes := make([]string, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, strconv.Itoa(int(s)))
	}

	params := url.Values{}
	params.Set("status", strings.Join(codes, ","))
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))

	return c.fetchPage(ctx, "/api/auth/me/items?"+params.Encode(), token)
}

// SearchItems retrieves one page of the public shop listing
func (c *Client) SearchItems(ctx context.Context, query outbound.SearchQuery) (*outbound.ProductPage, error) {
	params := url.Values{}
	if query.Text != "" {
		params.Set("keyword", query.Text)
	}
	if query.CategoryID != 0 {
		params.Set("category_id", strconv.FormatInt(query.CategoryID, 10))
	}
	if query.SubCategoryID != 0 {
		params.Set("sub_category_id", strconv.FormatInt(query.SubCategoryID, 10))
	}
	if query.PriceMin > 0 {
		params.Set("price_min", strconv.FormatFloat(query.PriceMin, 'f', -1, 64))
	}
	if query.PriceMax > 0 {
		params.Set("price_max", strconv.FormatFloat(query.PriceMax, 'f', -1, 64))
	}
	if len(query.Brands) > 0 {
		params.Set("brands", strings.Join(query.Brands, ","))
	}
	if len(query.Sizes) > 0 {
		params.Set("sizes", strings.Join(query.Sizes, ","))
	}
	if query.Condition != "" {
		params.Set("condition", query.Condition)
	}
	params.Set("page", strconv.Itoa(query.Page))
	params.Set("size", strconv.Itoa(query.Size))

	return c.fetchPage(ctx, "/api/global/items?"+params.Encode(), "")
}

func (c *Client) fetchPage(ctx context.Context, path, token string) (*outbound.ProductPage, error) {
	var env envelope
	if err := c.getJSON(ctx, path, token, &env); err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("Failed to fetch listing page")
		return nil, err
	}

	var pd pageData
	if err := json.Unmarshal(env.Data, &pd); err != nil {
		return nil, fmt.Errorf("%w: pagination block: %v", shared.ErrMalformedPayload, err)
	}

	page := &outbound.ProductPage{
		Items:       make([]*product.Product, 0, len(pd.Data)),
		CurrentPage: pd.CurrentPage,
		LastPage:    pd.LastPage,
	}

	for _, raw := range pd.Data {
		item, err := decodeProduct(raw)
		if err != nil {
			return nil, err
		}
		page.Items = append(page.Items, item)
	}

	return page, nil
}

// SubmitItem creates or updates a listing through the multipart item form
func (c *Client) SubmitItem(ctx context.Context, token string, form outbound.ItemForm) (string, error) {
	fields := []formField{
		{"item_name", form.Name},
		{"item_description", form.Description},
		{"address", form.Address},
		{"price", strconv.FormatFloat(form.Price, 'f', -1, 64)},
		{"is_bid", strconv.Itoa(form.IsBid)},
		{"sub_category_id", strconv.FormatInt(form.SubCategoryID, 10)},
	}
	for i, valueID := range form.Properties {
		fields = append(fields, formField{fmt.Sprintf("properties[%d]", i), strconv.FormatInt(valueID, 10)})
	}

	files := make([]formFile, 0, len(form.Images))
	for i, img := range form.Images {
		files = append(files, formFile{fmt.Sprintf("imgs[%d]", i), img.Name, img.Data})
	}

	var env envelope
	if err := c.postMultipart(ctx, "/api/auth/items", token, fields, files, &env); err != nil {
		c.logger.Error().Err(err).Str("item_name", form.Name).Msg("Failed to submit item")
		return "", err
	}

	return env.Message, nil
}
