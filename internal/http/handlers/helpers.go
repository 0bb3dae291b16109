package handlers

import (
	"math"

	"marqet.co/app/internal/modules/cart"
	"marqet.co/app/internal/modules/catalog"
	"marqet.co/app/pkg/view"
)

func discountPercent(p catalog.Product) int {
	if !catalog.Discounted(p) || p.Price <= 0 {
		return 0
	}
	return int(math.Round((p.Price - p.DiscountedPrice) / p.Price * 100))
}

func cardFor(p catalog.Product) view.ProductCard {
	return view.ProductCard{
		ID:              p.ID,
		Title:           p.Title,
		ImageURL:        p.Image.URL,
		ImageAlt:        imageAlt(p),
		Rating:          p.Rating,
		OnSale:          catalog.Discounted(p),
		DiscountPercent: discountPercent(p),
		PriceLabel:      view.Money(p.Price),
		EffectiveLabel:  view.Money(catalog.EffectivePrice(p)),
	}
}

func cardsFor(items []catalog.Product) []view.ProductCard {
	out := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		out = append(out, cardFor(p))
	}
	return out
}

func imageAlt(p catalog.Product) string {
	if p.Image.Alt != "" {
		return p.Image.Alt
	}
	return p.Title
}

func cartItemFor(it cart.Item) view.CartItem {
	eff := catalog.EffectivePrice(it.Product)
	return view.CartItem{
		ID:             it.ID,
		Title:          it.Title,
		ImageURL:       it.Image.URL,
		ImageAlt:       imageAlt(it.Product),
		Quantity:       it.Quantity,
		OnSale:         catalog.Discounted(it.Product),
		PriceLabel:     view.Money(it.Price),
		EffectiveLabel: view.Money(eff),
		LineTotalLabel: view.Money(eff * float64(it.Quantity)),
	}
}
