package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/http/cartcookie"
	"marqet.co/app/internal/http/flash"
	"marqet.co/app/internal/http/render"
	"marqet.co/app/internal/modules/cart"
	"marqet.co/app/internal/modules/catalog"
	"marqet.co/app/internal/shared/apperr"
	"marqet.co/app/pkg/view"
)

// CartHandler owns the cart page and its mutations. Each request builds
// a store over the cookie-backed storage, so every mutation persists
// back to the browser's durable key.
type CartHandler struct {
	Catalog *catalog.Client
	Flash   *flash.Codec
	CK      *cartcookie.Codec
	Log     *slog.Logger
}

func NewCartHandler(client *catalog.Client, flashCodec *flash.Codec, ck *cartcookie.Codec, log *slog.Logger) *CartHandler {
	return &CartHandler{Catalog: client, Flash: flashCodec, CK: ck, Log: log}
}

func (h *CartHandler) store(c *gin.Context) *cart.Store {
	return cart.NewStore(h.CK.StorageFor(c), h.Log)
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *gin.Context) {
	st := h.store(c)
	items := st.Items()

	vm := view.CartPage{
		Page:       render.PageFor(c, "Cart"),
		Items:      make([]view.CartItem, 0, len(items)),
		Count:      cart.TotalItems(items),
		TotalLabel: view.Money(cart.TotalPrice(items)),
	}
	for _, it := range items {
		vm.Items = append(vm.Items, cartItemFor(it))
	}
	render.HTML(c, http.StatusOK, "cart.tmpl", vm)
}

// Add handles POST /cart/add. The product is fetched from the catalog
// so the line item carries a copy of its current fields.
func (h *CartHandler) Add(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "No product selected.")
		return
	}

	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 99 {
			qty = n
		}
	}

	p, err := h.Catalog.FetchByID(c.Request.Context(), id)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Product not found.")
			return
		}
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, apperr.PublicMessage(err))
		return
	}

	h.store(c).Add(p, qty)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "✓ Added to cart.")
}

// Increase handles POST /cart/items/increase.
func (h *CartHandler) Increase(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Item not found.")
		return
	}
	h.store(c).IncreaseQty(id)
	c.Redirect(http.StatusFound, "/cart")
}

// Decrease handles POST /cart/items/decrease. Reaching zero removes the
// line entirely.
func (h *CartHandler) Decrease(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Item not found.")
		return
	}
	h.store(c).DecreaseQty(id)
	c.Redirect(http.StatusFound, "/cart")
}

// Update handles POST /cart/items/update with an explicit quantity.
func (h *CartHandler) Update(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Item not found.")
		return
	}
	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			qty = n
		}
	}
	qty = clamp(qty, 0, 99)

	h.store(c).SetQty(id, qty)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Quantity updated.")
}

// Remove handles POST /cart/items/remove.
func (h *CartHandler) Remove(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Item not found.")
		return
	}
	h.store(c).Remove(id)
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Item removed from cart.")
}

// Clear handles POST /cart/clear.
func (h *CartHandler) Clear(c *gin.Context) {
	h.store(c).Clear()
	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Cart cleared.")
}

func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
