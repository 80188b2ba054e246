package rest

import (
	"context"
	"strconv"

	"reloved-market-client/internal/ports/outbound"
)

// SubmitComment posts a question or answer on a listing. The backend
// expects a multipart form carrying the item, owner, and author ids.
func (c *Client) SubmitComment(ctx context.Context, token string, form outbound.CommentForm) error {
	fields := []formField{
		{"item_id", strconv.FormatInt(form.ItemID, 10)},
		{"owner_id", strconv.FormatInt(form.OwnerID, 10)},
		{"user_id", strconv.FormatInt(form.UserID, 10)},
		{"comments", form.Comments},
	}

	if err := c.postMultipart(ctx, "/api/auth/item-comment", token, fields, nil, nil); err != nil {
		c.logger.Error().Err(err).Int64("item_id", form.ItemID).Msg("Failed to submit comment")
		return err
	}

	return nil
}
