package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/http/flash"
	"marqet.co/app/internal/http/render"
	"marqet.co/app/internal/modules/contact"
	"marqet.co/app/internal/shared/apperr"
	"marqet.co/app/pkg/view"
)

type ContactHandler struct {
	svc   *contact.Service
	flash *flash.Codec
}

func NewContactHandler(svc *contact.Service, flashCodec *flash.Codec) *ContactHandler {
	return &ContactHandler{svc: svc, flash: flashCodec}
}

// Get handles GET /contact.
func (h *ContactHandler) Get(c *gin.Context) {
	render.HTML(c, http.StatusOK, "contact.tmpl", view.ContactPage{
		Page: render.PageFor(c, "Contact Us"),
	})
}

// Submit handles POST /contact. Validation failures re-render the form
// with per-field messages and the values the user typed.
func (h *ContactHandler) Submit(c *gin.Context) {
	var msg contact.Message
	_ = c.ShouldBind(&msg)

	if _, err := h.svc.Submit(c.Request.Context(), msg); err != nil {
		vm := view.ContactPage{
			Page:     render.PageFor(c, "Contact Us"),
			FullName: msg.FullName,
			Subject:  msg.Subject,
			Email:    msg.Email,
			Message:  msg.Body,
		}
		if ae, ok := apperr.As(err); ok && ae.Kind == apperr.Invalid {
			vm.Errors = ae.Fields
			vm.Flash = &view.Flash{Kind: view.FlashError, Message: "Please fix the errors in the form ❌"}
			render.HTML(c, http.StatusBadRequest, "contact.tmpl", vm)
			return
		}
		vm.Flash = &view.Flash{Kind: view.FlashError, Message: apperr.PublicMessage(err)}
		render.HTML(c, apperr.HTTPStatus(err), "contact.tmpl", vm)
		return
	}

	render.RedirectWithFlash(c, h.flash, "/contact", view.FlashSuccess, "Message sent successfully! ✅")
}
