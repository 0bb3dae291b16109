package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/http/cartcookie"
	"marqet.co/app/internal/http/flash"
	"marqet.co/app/internal/http/render"
	"marqet.co/app/internal/modules/cart"
	"marqet.co/app/pkg/view"
)

// CheckoutHandler clears the cart exactly once and shows the
// confirmation page. There is no payment step.
type CheckoutHandler struct {
	Flash *flash.Codec
	CK    *cartcookie.Codec
	Log   *slog.Logger
}

func NewCheckoutHandler(flashCodec *flash.Codec, ck *cartcookie.Codec, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{Flash: flashCodec, CK: ck, Log: log}
}

// Submit handles POST /checkout: empty the cart, flash, redirect to the
// confirmation. The redirect means a page reload cannot clear twice.
func (h *CheckoutHandler) Submit(c *gin.Context) {
	st := cart.NewStore(h.CK.StorageFor(c), h.Log)
	if len(st.Items()) == 0 {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Your cart is empty.")
		return
	}
	st.Clear()
	render.RedirectWithFlash(c, h.Flash, "/checkout", view.FlashSuccess, "Checkout complete! 🎉")
}

// Confirmation handles GET /checkout.
func (h *CheckoutHandler) Confirmation(c *gin.Context) {
	vm := struct{ Page view.Page }{Page: render.PageFor(c, "Thank you")}
	render.HTML(c, http.StatusOK, "checkout.tmpl", vm)
}
