package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/http/middleware"
	"marqet.co/app/internal/http/render"
	"marqet.co/app/internal/modules/catalog"
	"marqet.co/app/internal/modules/listing"
	"marqet.co/app/internal/shared/apperr"
	"marqet.co/app/pkg/view"
)

// searchMissCookie remembers that the empty-result notice already fired
// for the current empty streak, so it shows once, not on every request.
const searchMissCookie = "marqet_search_miss"

// HomeHandler renders the landing page: filtered, sorted and sectioned
// product views derived from the remote catalog.
type HomeHandler struct {
	catalog *catalog.Client
}

func NewHomeHandler(client *catalog.Client) *HomeHandler {
	return &HomeHandler{catalog: client}
}

func (h *HomeHandler) Get(c *gin.Context) {
	q := listing.Query{
		Search:  c.Query("q"),
		Tag:     c.Query("tag"),
		Sort:    listing.ParseSortMode(c.Query("sort")),
		Compact: c.Query("compact") == "1",
	}

	products, err := h.catalog.FetchAll(c.Request.Context())
	if err != nil {
		render.ErrorPage(c, apperr.HTTPStatus(err), apperr.PublicMessage(err), middleware.GetRequestID(c))
		return
	}

	res := listing.Derive(products, q)

	vm := view.HomePage{
		Page:        render.PageFor(c, "Home"),
		Search:      q.Search,
		SelectedTag: q.Tag,
		Sort:        string(q.Sort),
		Compact:     q.Compact,
		TopTags:     res.TopTags,
		Suggestions: suggestionsFor(res.Suggestions),
		ResultCount: len(res.Filtered),
		Sections: []view.Section{
			{ID: "popular", Title: "🔥 Popular Products", EmptyHint: "No popular products match your filters.", Products: cardsFor(res.Popular)},
			{ID: "sale", Title: "💸 On Sale", EmptyHint: "No discounted products match your filters.", Products: cardsFor(res.OnSale)},
			{ID: "new", Title: "🆕 New Arrivals", EmptyHint: "No new arrivals match your filters.", Products: cardsFor(res.Newest)},
		},
	}

	h.notifyEmpty(c, &vm, q.Search, len(res.Filtered))

	render.HTML(c, http.StatusOK, "home.tmpl", vm)
}

// notifyEmpty fires the one-shot "no products found" notice and tracks
// the empty streak in a cookie across requests.
func (h *HomeHandler) notifyEmpty(c *gin.Context, vm *view.HomePage, search string, results int) {
	prev, _ := c.Cookie(searchMissCookie)
	n := listing.EmptyNotifier{Shown: prev == "1"}
	fire := n.Observe(search, results)

	if fire && vm.Flash == nil {
		vm.Flash = &view.Flash{Kind: view.FlashWarning, Message: "No products found 😞"}
	}
	if n.Shown && prev != "1" {
		c.SetCookie(searchMissCookie, "1", 3600, "/", "", false, true)
	} else if !n.Shown && prev == "1" {
		c.SetCookie(searchMissCookie, "", -1, "/", "", false, true)
	}
}

func suggestionsFor(items []catalog.Product) []view.Suggestion {
	out := make([]view.Suggestion, 0, len(items))
	for _, p := range items {
		out = append(out, view.Suggestion{ID: p.ID, Title: p.Title})
	}
	return out
}
