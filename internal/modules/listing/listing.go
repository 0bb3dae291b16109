package listing

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"marqet.co/app/internal/modules/catalog"
)

// SortMode selects the ordering applied after filtering. The empty mode
// preserves input order.
type SortMode string

const (
	SortNone         SortMode = ""
	SortPriceLow     SortMode = "price-low"
	SortPriceHigh    SortMode = "price-high"
	SortNameAsc      SortMode = "name-asc"
	SortRatingHigh   SortMode = "rating-high"
	SortDiscountHigh SortMode = "discount-high"
)

// ParseSortMode maps a raw query value to a known mode, empty otherwise.
func ParseSortMode(v string) SortMode {
	switch SortMode(v) {
	case SortPriceLow, SortPriceHigh, SortNameAsc, SortRatingHigh, SortDiscountHigh:
		return SortMode(v)
	}
	return SortNone
}

// Query is the transient filter/sort state owned by the presentation
// layer. Search is the raw input; the deriver trims it itself. Compact
// only toggles grid density and passes through untouched.
type Query struct {
	Search  string
	Tag     string
	Sort    SortMode
	Compact bool
}

// Result is everything the landing page renders, derived from one flat
// product collection. Sections are computed after filter+sort.
type Result struct {
	Filtered    []catalog.Product // search + tag filter, then sorted
	Popular     []catalog.Product // rating >= 4
	OnSale      []catalog.Product // discountedPrice < price
	Newest      []catalog.Product // top 4 by creation time, missing last
	Suggestions []catalog.Product // up to 8 title matches, unfiltered by tag
	TopTags     []string          // top 8 tags by frequency over the full collection
}

const (
	maxSuggestions = 8
	maxTopTags     = 8
	maxNewest      = 4
	popularMin     = 4.0
)

// Derive is pure: the same products and query always produce the same
// result, and the input slice is never mutated.
func Derive(products []catalog.Product, q Query) Result {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	tag := strings.ToLower(strings.TrimSpace(q.Tag))

	filtered := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if term != "" && !strings.Contains(strings.ToLower(p.Title), term) {
			continue
		}
		if tag != "" && !hasTag(p, tag) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.Sort)

	return Result{
		Filtered:    filtered,
		Popular:     filterProducts(filtered, func(p catalog.Product) bool { return p.Rating >= popularMin }),
		OnSale:      filterProducts(filtered, catalog.Discounted),
		Newest:      newest(filtered),
		Suggestions: Suggest(products, q.Search),
		TopTags:     TopTags(products),
	}
}

// Suggest returns up to 8 products whose title contains the raw search
// substring, for the type-ahead dropdown. Unsorted, not tag-filtered.
func Suggest(products []catalog.Product, search string) []catalog.Product {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return nil
	}
	out := make([]catalog.Product, 0, maxSuggestions)
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), term) {
			out = append(out, p)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// TopTags counts lowercase tag occurrences across the full collection
// and returns the top 8 by descending frequency, ties broken by
// first-encountered order.
func TopTags(products []catalog.Product) []string {
	freq := make(map[string]int)
	order := make([]string, 0)
	for _, p := range products {
		for _, t := range p.Tags {
			key := strings.ToLower(strings.TrimSpace(t))
			if key == "" {
				continue
			}
			if _, ok := freq[key]; !ok {
				order = append(order, key)
			}
			freq[key]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxTopTags {
		order = order[:maxTopTags]
	}
	return order
}

func hasTag(p catalog.Product, tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

func filterProducts(in []catalog.Product, keep func(catalog.Product) bool) []catalog.Product {
	out := make([]catalog.Product, 0, len(in))
	for _, p := range in {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func newest(in []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedTime().After(out[j].CreatedTime())
	})
	if len(out) > maxNewest {
		out = out[:maxNewest]
	}
	return out
}

// titleCollator compares case-insensitively and locale-aware, so
// "apple" sorts before "Banana".
var titleCollator = collate.New(language.Und, collate.Loose)

func sortProducts(items []catalog.Product, mode SortMode) {
	switch mode {
	case SortPriceLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DiscountedPrice < items[j].DiscountedPrice
		})
	case SortPriceHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].DiscountedPrice > items[j].DiscountedPrice
		})
	case SortNameAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return titleCollator.CompareString(items[i].Title, items[j].Title) < 0
		})
	case SortRatingHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Rating > items[j].Rating
		})
	case SortDiscountHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return catalog.DiscountFraction(items[i]) > catalog.DiscountFraction(items[j])
		})
	}
}
