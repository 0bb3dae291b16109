package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/config"
	"marqet.co/app/internal/http/cartcookie"
	"marqet.co/app/internal/http/flash"
	"marqet.co/app/internal/http/handlers"
	"marqet.co/app/internal/http/middleware"
	"marqet.co/app/internal/http/render"
	"marqet.co/app/internal/mailer"
	"marqet.co/app/internal/modules/catalog"
	"marqet.co/app/internal/modules/contact"
	"marqet.co/app/static"
)

// NewRouter wires the storefront: middleware chain, codecs, catalog
// client and page handlers.
func NewRouter(logger *slog.Logger, cfg *config.Config, mail mailer.Service) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.SetHTMLTemplate(render.Templates())

	secret := []byte(cfg.Cookies.Secret)
	flashCodec := flash.NewCodec(secret, cfg.Cookies.FlashName, cfg.Cookies.Secure)
	cartCodec := cartcookie.New(secret, cfg.Cookies.CartName, cfg.Cookies.Secure)

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.ErrorHandler(logger, render.ErrorPage))
	r.Use(middleware.FlashMiddleware(flashCodec))
	r.Use(middleware.CartCount(cartCodec))

	client := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	contactSvc := contact.NewService(mail, cfg.Contact, logger)

	home := handlers.NewHomeHandler(client)
	detail := handlers.NewProductDetailHandler(client)
	cartH := handlers.NewCartHandler(client, flashCodec, cartCodec, logger)
	checkout := handlers.NewCheckoutHandler(flashCodec, cartCodec, logger)
	contactH := handlers.NewContactHandler(contactSvc, flashCodec)

	r.StaticFS("/static", http.FS(static.Files))

	r.GET("/", home.Get)
	r.GET("/products/:id", detail.Detail)

	r.GET("/cart", cartH.Get)
	r.POST("/cart/add", cartH.Add)
	r.POST("/cart/items/increase", cartH.Increase)
	r.POST("/cart/items/decrease", cartH.Decrease)
	r.POST("/cart/items/update", cartH.Update)
	r.POST("/cart/items/remove", cartH.Remove)
	r.POST("/cart/clear", cartH.Clear)

	r.GET("/checkout", checkout.Confirmation)
	r.POST("/checkout", checkout.Submit)

	r.GET("/contact", contactH.Get)
	r.POST("/contact", contactH.Submit)

	r.NoRoute(func(c *gin.Context) {
		render.ErrorPage(c, http.StatusNotFound, "The page you are looking for does not exist.", middleware.GetRequestID(c))
	})

	return r
}
