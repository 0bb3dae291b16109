package catalog

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 80.0, EffectivePrice(Product{Price: 100, DiscountedPrice: 80}))
	assert.Equal(t, 100.0, EffectivePrice(Product{Price: 100, DiscountedPrice: 100}))
	// malformed: discount above list price never wins
	assert.Equal(t, 100.0, EffectivePrice(Product{Price: 100, DiscountedPrice: 120}))
}

func TestDiscounted(t *testing.T) {
	assert.True(t, Discounted(Product{Price: 100, DiscountedPrice: 80}))
	assert.False(t, Discounted(Product{Price: 100, DiscountedPrice: 100}))
	assert.False(t, Discounted(Product{Price: 100, DiscountedPrice: 120}))
}

func TestDiscountFraction(t *testing.T) {
	assert.InDelta(t, 0.2, DiscountFraction(Product{Price: 100, DiscountedPrice: 80}), 1e-9)
	assert.Equal(t, 0.0, DiscountFraction(Product{Price: 100, DiscountedPrice: 100}))
	// malformed data floors at zero
	assert.Equal(t, 0.0, DiscountFraction(Product{Price: 100, DiscountedPrice: 120}))
	// zero-priced products do not divide by zero
	assert.Equal(t, 0.0, DiscountFraction(Product{Price: 0, DiscountedPrice: 0}))
}

func TestProductUnmarshalDefaults(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":"Red Shoe","price":100}`), &p))

	// missing discountedPrice means no discount
	assert.Equal(t, 100.0, p.DiscountedPrice)
	assert.Equal(t, 0.0, p.Rating)
	assert.Empty(t, p.Tags)
	assert.True(t, p.CreatedTime().IsZero())
}

func TestProductUnmarshalDiscount(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","title":"Red Shoe","price":100,"discountedPrice":80}`), &p))
	assert.Equal(t, 80.0, p.DiscountedPrice)
}

func TestCreatedTimeFieldVariants(t *testing.T) {
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	var a Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a","price":1,"created":"2025-03-01T12:00:00Z"}`), &a))
	assert.True(t, a.CreatedTime().Equal(ts))

	var b Product
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b","price":1,"createdAt":"2025-03-01T12:00:00Z"}`), &b))
	assert.True(t, b.CreatedTime().Equal(ts))
}
