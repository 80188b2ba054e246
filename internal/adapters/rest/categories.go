package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"reloved-market-client/internal/domain/category"
	"reloved-market-client/internal/domain/shared"
)

// ListCategories retrieves the top-level categories
func (c *Client) ListCategories(ctx context.Context) ([]*category.Category, error) {
	var env envelope
	if err := c.getJSON(ctx, "/api/global/category", "", &env); err != nil {
		c.logger.Error().Err(err).Msg("Failed to fetch categories")
		return nil, err
	}

	var categories []*category.Category
	if err := json.Unmarshal(env.Data, &categories); err != nil {
		return nil, fmt.Errorf("%w: categories: %v", shared.ErrMalformedPayload, err)
	}

	return categories, nil
}

// ListSubCategories retrieves the sub-categories of one category together
// with their property definitions
func (c *Client) ListSubCategories(ctx context.Context, categoryID int64) ([]*category.SubCategory, error) {
	var env envelope
	path := "/api/global/sub-category?category_id=" + strconv.FormatInt(categoryID, 10)
	if err := c.getJSON(ctx, path, "", &env); err != nil {
		c.logger.Error().Err(err).Int64("category_id", categoryID).Msg("Failed to fetch sub-categories")
		return nil, err
	}

	var subCategories []*category.SubCategory
	if err := json.Unmarshal(env.Data, &subCategories); err != nil {
		return nil, fmt.Errorf("%w: sub-categories: %v", shared.ErrMalformedPayload, err)
	}

	return subCategories, nil
}
