package rest

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"reloved-market-client/internal/domain/shared"
)

type checkoutData struct {
	PaymentURL string `json:"payment_url"`
}

// FeatureItemCheckout initiates the paid "feature this item" flow and
// returns the external payment page URL the caller must redirect to.
func (c *Client) FeatureItemCheckout(ctx context.Context, token string, id uuid.UUID) (string, error) {
	var env envelope
	path := "/api/auth/payment/mamopay/checkout/featured-product/" + id.String()
	if err := c.postEmpty(ctx, path, token, &env); err != nil {
		c.logger.Error().Err(err).Str("item_uuid", id.String()).Msg("Failed to initiate feature checkout")
		return "", err
	}

	var data checkoutData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", fmt.Errorf("%w: checkout: %v", shared.ErrMalformedPayload, err)
	}

	if data.PaymentURL == "" {
		return "", shared.ErrPaymentURLAbsent
	}

	return data.PaymentURL, nil
}
