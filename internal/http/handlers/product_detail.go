package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/http/middleware"
	"marqet.co/app/internal/http/render"
	"marqet.co/app/internal/modules/catalog"
	"marqet.co/app/internal/shared/apperr"
	"marqet.co/app/pkg/view"
)

// ProductDetailHandler renders one product. The catalog fetch runs under
// the request context, so a client that navigates away cancels the
// outbound call and the stale response is discarded.
type ProductDetailHandler struct {
	catalog *catalog.Client
}

func NewProductDetailHandler(client *catalog.Client) *ProductDetailHandler {
	return &ProductDetailHandler{catalog: client}
}

func (h *ProductDetailHandler) Detail(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	p, err := h.catalog.FetchByID(c.Request.Context(), id)
	if err != nil {
		if apperr.IsKind(err, apperr.NotFound) {
			render.ErrorPage(c, http.StatusNotFound, "Product not found", middleware.GetRequestID(c))
			return
		}
		render.ErrorPage(c, apperr.HTTPStatus(err), apperr.PublicMessage(err), middleware.GetRequestID(c))
		return
	}

	vm := view.ProductDetailPage{
		Page:            render.PageFor(c, p.Title),
		ID:              p.ID,
		ProductTitle:    p.Title,
		Description:     strings.TrimSpace(p.Description),
		ImageURL:        p.Image.URL,
		ImageAlt:        imageAlt(p),
		Rating:          p.Rating,
		OnSale:          catalog.Discounted(p),
		DiscountPercent: discountPercent(p),
		PriceLabel:      view.Money(p.Price),
		EffectiveLabel:  view.Money(catalog.EffectivePrice(p)),
		Tags:            p.Tags,
	}
	render.HTML(c, http.StatusOK, "product.tmpl", vm)
}
