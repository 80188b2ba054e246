package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reloved-market-client/internal/domain/shared"
)

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{50, "50"},
		{999, "999"},
		{1000, "1,000"},
		{51250, "51,250"},
		{1234567, "1,234,567"},
		{1250.5, "1,250.5"},
		{-1250, "-1,250"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatAmount(tc.in), "FormatAmount(%v)", tc.in)
	}
}

func TestCollectionName(t *testing.T) {
	name, err := CollectionName(`[{"name":"pin"},{"name":"Dubai Marina"}]`)
	require.NoError(t, err)
	assert.Equal(t, "Dubai Marina", name)
}

func TestCollectionNameEmptyAddress(t *testing.T) {
	_, err := CollectionName("")
	assert.ErrorIs(t, err, shared.ErrNoAddress)
}

func TestCollectionNameMalformed(t *testing.T) {
	_, err := CollectionName("not json")
	assert.ErrorIs(t, err, shared.ErrMalformedPayload)
}

func TestCollectionNameShortArray(t *testing.T) {
	name, err := CollectionName(`[{"name":"pin"}]`)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "Approved", StatusApproved.Label())
	assert.Equal(t, "Rejected", StatusRejected.Label())
	assert.Equal(t, "Sold", StatusSold.Label())
	assert.Equal(t, "Bid accepted", StatusBidAccepted.Label())
	assert.Equal(t, "Archived", StatusArchived.Label())
	assert.Equal(t, "Archived", Status(99).Label())
}

func TestProductPredicates(t *testing.T) {
	p := &Product{
		Price:    1200,
		TotalFee: 1250,
		IsBid:    1,
		User:     &shared.UserProfile{ID: 9},
	}

	assert.True(t, p.AcceptsOffers())
	assert.False(t, p.HasOffer())
	assert.Equal(t, float64(50), p.ProtectionFee())

	assert.True(t, p.OwnedBy(&shared.UserProfile{ID: 9}))
	assert.False(t, p.OwnedBy(&shared.UserProfile{ID: 7}))
	assert.False(t, p.OwnedBy(nil))

	p.MyOffer = &Offer{ID: 3, AskingPrice: 1100}
	assert.True(t, p.HasOffer())
}
