package cartcookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"marqet.co/app/internal/modules/cart"
)

var ErrInvalid = errors.New("invalid cart cookie")

// Codec signs and serializes the whole cart into one cookie: the
// browser-side durable key the cart store persists through.
type Codec struct {
	Secret     []byte
	CookieName string
	Secure     bool
}

func New(secret []byte, name string, secure bool) *Codec {
	return &Codec{Secret: secret, CookieName: name, Secure: secure}
}

// value format: base64(json items).base64(hmac)
func (c *Codec) Encode(items []cart.Item) (string, error) {
	b, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(c.Secret, payload), nil
}

func (c *Codec) Decode(v string) ([]cart.Item, error) {
	parts := strings.Split(v, ".")
	if len(parts) != 2 {
		return nil, ErrInvalid
	}
	payload, sig := parts[0], parts[1]
	if !verify(c.Secret, payload, sig) {
		return nil, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalid
	}
	var items []cart.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrInvalid
	}
	return items, nil
}

// Get reads the cart from the request cookie. A missing, tampered or
// garbled cookie yields an empty cart and clears the cookie: the cart
// degrades, it never errors.
func (c *Codec) Get(ctx *gin.Context) []cart.Item {
	v, err := ctx.Cookie(c.CookieName)
	if err != nil || v == "" {
		return nil
	}
	items, err := c.Decode(v)
	if err != nil {
		c.Clear(ctx)
		return nil
	}
	return items
}

func (c *Codec) Set(ctx *gin.Context, items []cart.Item) error {
	val, err := c.Encode(items)
	if err != nil {
		return err
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, val, maxAge, "/", "", c.Secure, true)
	return nil
}

func (c *Codec) Clear(ctx *gin.Context) {
	ctx.SetSameSite(2) // Lax
	ctx.SetCookie(c.CookieName, "", -1, "/", "", c.Secure, true)
}

// Storage adapts the codec to the cart.Storage port for one request:
// Load reads the request cookie, Save writes the response cookie.
type Storage struct {
	codec *Codec
	ctx   *gin.Context
}

func (c *Codec) StorageFor(ctx *gin.Context) *Storage {
	return &Storage{codec: c, ctx: ctx}
}

func (s *Storage) Load() ([]cart.Item, error) {
	return s.codec.Get(s.ctx), nil
}

func (s *Storage) Save(items []cart.Item) error {
	if len(items) == 0 {
		s.codec.Clear(s.ctx)
		return nil
	}
	return s.codec.Set(s.ctx, items)
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
