package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marqet.co/app/internal/modules/catalog"
)

func p(id, title string) catalog.Product {
	return catalog.Product{ID: id, Title: title, Price: 10, DiscountedPrice: 10}
}

func titles(items []catalog.Product) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Title)
	}
	return out
}

func TestSearchFilterAndSectioning(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "Red Shoe", Rating: 4.5, Price: 100, DiscountedPrice: 100},
		{ID: "2", Title: "Blue Hat", Rating: 3, Price: 50, DiscountedPrice: 50},
	}

	res := Derive(products, Query{Search: "red"})

	require.Len(t, res.Filtered, 1)
	assert.Equal(t, "Red Shoe", res.Filtered[0].Title)
	assert.Equal(t, []string{"Red Shoe"}, titles(res.Popular))
	assert.Empty(t, res.OnSale)
}

func TestSearchTrimsAndIgnoresCase(t *testing.T) {
	products := []catalog.Product{p("1", "Red Shoe")}
	res := Derive(products, Query{Search: "  RED  "})
	assert.Len(t, res.Filtered, 1)
}

func TestTagFilter(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "Red Shoe", Tags: []string{"shoes", "sale"}, Price: 1, DiscountedPrice: 1},
		{ID: "2", Title: "Blue Hat", Tags: []string{"hats"}, Price: 1, DiscountedPrice: 1},
	}

	res := Derive(products, Query{Tag: "Shoes"})
	require.Len(t, res.Filtered, 1)
	assert.Equal(t, "Red Shoe", res.Filtered[0].Title)

	// empty selection filters nothing
	res = Derive(products, Query{})
	assert.Len(t, res.Filtered, 2)
}

func TestTopTags(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Tags: []string{"Shoes", "sale"}},
		{ID: "2", Tags: []string{"shoes"}},
		{ID: "3", Tags: []string{"hats", "sale"}},
	}

	tags := TopTags(products)
	// descending frequency, ties by first-encountered order
	assert.Equal(t, []string{"shoes", "sale", "hats"}, tags)
}

func TestTopTagsCapsAtEight(t *testing.T) {
	prod := catalog.Product{Tags: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}}
	tags := TopTags([]catalog.Product{prod})
	assert.Len(t, tags, 8)
}

func TestSortPriceLowAndHigh(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "Mid", Price: 50, DiscountedPrice: 50},
		{ID: "2", Title: "Cheap", Price: 100, DiscountedPrice: 10},
		{ID: "3", Title: "Dear", Price: 90, DiscountedPrice: 90},
	}

	res := Derive(products, Query{Sort: SortPriceLow})
	assert.Equal(t, []string{"Cheap", "Mid", "Dear"}, titles(res.Filtered))

	res = Derive(products, Query{Sort: SortPriceHigh})
	assert.Equal(t, []string{"Dear", "Mid", "Cheap"}, titles(res.Filtered))
}

func TestSortNameAscLocaleAware(t *testing.T) {
	products := []catalog.Product{p("1", "Banana"), p("2", "apple"), p("3", "Cherry")}
	res := Derive(products, Query{Sort: SortNameAsc})
	assert.Equal(t, []string{"apple", "Banana", "Cherry"}, titles(res.Filtered))
}

func TestSortRatingHigh(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "Unrated", Price: 1, DiscountedPrice: 1},
		{ID: "2", Title: "Top", Rating: 5, Price: 1, DiscountedPrice: 1},
		{ID: "3", Title: "Mid", Rating: 3, Price: 1, DiscountedPrice: 1},
	}
	res := Derive(products, Query{Sort: SortRatingHigh})
	// missing rating sorts as zero
	assert.Equal(t, []string{"Top", "Mid", "Unrated"}, titles(res.Filtered))
}

func TestSortDiscountHigh(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "Small", Price: 100, DiscountedPrice: 90},
		{ID: "2", Title: "Big", Price: 100, DiscountedPrice: 50},
		{ID: "3", Title: "None", Price: 100, DiscountedPrice: 100},
	}
	res := Derive(products, Query{Sort: SortDiscountHigh})
	assert.Equal(t, []string{"Big", "Small", "None"}, titles(res.Filtered))
}

func TestNoSortPreservesInputOrder(t *testing.T) {
	products := []catalog.Product{p("1", "b"), p("2", "a"), p("3", "c")}
	res := Derive(products, Query{})
	assert.Equal(t, []string{"b", "a", "c"}, titles(res.Filtered))
}

func TestNewestSection(t *testing.T) {
	at := func(day int) *time.Time {
		ts := time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC)
		return &ts
	}
	products := []catalog.Product{
		{ID: "1", Title: "Old", Created: at(1)},
		{ID: "2", Title: "Undated"},
		{ID: "3", Title: "New", Created: at(20)},
		{ID: "4", Title: "Newer", Created: at(25)},
		{ID: "5", Title: "Mid", Created: at(10)},
	}

	res := Derive(products, Query{})
	// top 4 by creation time, missing timestamps last
	assert.Equal(t, []string{"Newer", "New", "Mid", "Old"}, titles(res.Newest))
}

func TestSuggestionsUseRawTermAndCap(t *testing.T) {
	products := make([]catalog.Product, 0, 12)
	for i := 0; i < 12; i++ {
		products = append(products, p("x", "Red Shoe"))
	}

	sug := Suggest(products, " red ")
	assert.Len(t, sug, 8)

	assert.Empty(t, Suggest(products, "   "))
}

func TestSuggestionsIgnoreTagFilter(t *testing.T) {
	products := []catalog.Product{
		{ID: "1", Title: "Red Shoe", Tags: []string{"shoes"}},
		{ID: "2", Title: "Red Hat", Tags: []string{"hats"}},
	}
	res := Derive(products, Query{Search: "red", Tag: "shoes"})
	assert.Len(t, res.Filtered, 1)
	assert.Len(t, res.Suggestions, 2)
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	products := []catalog.Product{p("1", "b"), p("2", "a")}
	_ = Derive(products, Query{Sort: SortNameAsc})
	assert.Equal(t, []string{"b", "a"}, titles(products))
}
