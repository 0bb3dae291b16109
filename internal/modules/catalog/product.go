package catalog

import (
	"encoding/json"
	"time"
)

// Image is a product image with its accessible alt text.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Product is one catalog entry. Products are immutable once fetched;
// the cart copies the fields it needs on add.
//
// Optional fields have explicit defaults: a missing rating is 0, missing
// tags are an empty set, a missing creation timestamp sorts as earliest,
// and a missing or malformed discounted price means no discount.
type Product struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discountedPrice"`
	Rating          float64  `json:"rating"`
	Image           Image    `json:"image"`
	Tags            []string `json:"tags"`

	// Some catalog payloads call this field created, others createdAt.
	Created   *time.Time `json:"created,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		DiscountedPrice *float64 `json:"discountedPrice"`
	}{alias: (*alias)(p)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.DiscountedPrice == nil {
		p.DiscountedPrice = p.Price
	} else {
		p.DiscountedPrice = *aux.DiscountedPrice
	}
	return nil
}

// CreatedTime returns the creation timestamp under either field name.
// The zero time means unknown and sorts as earliest.
func (p Product) CreatedTime() time.Time {
	if p.Created != nil {
		return *p.Created
	}
	if p.CreatedAt != nil {
		return *p.CreatedAt
	}
	return time.Time{}
}

// EffectivePrice is the lesser of list price and discounted price,
// guarding against malformed data where the discount exceeds the list.
func EffectivePrice(p Product) float64 {
	if p.DiscountedPrice < p.Price {
		return p.DiscountedPrice
	}
	return p.Price
}

// Discounted reports whether the product is actually on sale.
func Discounted(p Product) bool {
	return p.DiscountedPrice < p.Price
}

// DiscountFraction is the relative saving in [0,1], with a floor of 1 on
// the divisor so zero-priced products do not divide by zero.
func DiscountFraction(p Product) float64 {
	denom := p.Price
	if denom < 1 {
		denom = 1
	}
	f := (p.Price - p.DiscountedPrice) / denom
	if f < 0 {
		return 0
	}
	return f
}
