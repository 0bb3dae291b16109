package cart

import (
	"encoding/json"

	"marqet.co/app/internal/modules/catalog"
)

// Item is one line in the cart: a copied product plus a quantity.
// Quantity is always >= 1; a line that would reach 0 is removed instead.
type Item struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// UnmarshalJSON decodes both halves of the line. Without it the
// embedded Product's unmarshaler would be promoted and Quantity lost.
func (it *Item) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &it.Product); err != nil {
		return err
	}
	var aux struct {
		Quantity int `json:"quantity"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	it.Quantity = aux.Quantity
	return nil
}

// TotalItems sums the quantities of all lines.
func TotalItems(items []Item) int {
	sum := 0
	for _, it := range items {
		sum += it.Quantity
	}
	return sum
}

// TotalPrice sums quantity times effective price over all lines. The
// effective price guards against malformed data where the discounted
// price exceeds the list price.
func TotalPrice(items []Item) float64 {
	total := 0.0
	for _, it := range items {
		total += catalog.EffectivePrice(it.Product) * float64(it.Quantity)
	}
	return total
}
