package render

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/http/flash"
	"marqet.co/app/internal/http/middleware"
	"marqet.co/app/pkg/view"
	"marqet.co/app/templates"
)

// Templates parses the embedded page templates for the gin engine.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templates.FS, "*.tmpl"))
}

// PageFor fills the fields every rendered page shares.
func PageFor(c *gin.Context, title string) view.Page {
	return view.Page{
		Title:     title,
		Flash:     middleware.GetFlash(c),
		CartCount: middleware.GetCartCount(c),
		RequestID: middleware.GetRequestID(c),
	}
}

func HTML(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}

func ErrorPage(c *gin.Context, status int, msg string, requestID string) {
	page := PageFor(c, http.StatusText(status))
	page.RequestID = requestID
	c.HTML(status, "error.tmpl", view.ErrorPage{
		Page:    page,
		Status:  status,
		Message: msg,
	})
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
