package middleware

import (
	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/http/cartcookie"
	"marqet.co/app/internal/modules/cart"
)

const cartCountKey = "cart_count"

// CartCount decodes the cart cookie once per request and exposes the
// badge count to every page.
func CartCount(codec *cartcookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		n := 0
		if codec != nil {
			n = cart.TotalItems(codec.Get(c))
		}
		c.Set(cartCountKey, n)
		c.Next()
	}
}

func GetCartCount(c *gin.Context) int {
	v, ok := c.Get(cartCountKey)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}
