package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings. Values come from environment
// variables; local development loads them from .env via godotenv in main.
type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	HTTP    HTTPConfig
	Catalog CatalogConfig
	Cookies CookieConfig
	SMTP    SMTPConfig
	Contact ContactConfig
}

type HTTPConfig struct {
	Addr string `envconfig:"HTTP_ADDR" default:":8080"`
}

// CatalogConfig points at the remote product catalog API.
type CatalogConfig struct {
	BaseURL string        `envconfig:"CATALOG_BASE_URL" default:"https://v2.api.noroff.dev/online-shop"`
	Timeout time.Duration `envconfig:"CATALOG_TIMEOUT" default:"10s"`
}

type CookieConfig struct {
	Secret    string `envconfig:"COOKIE_SECRET" required:"true"`
	CartName  string `envconfig:"CART_COOKIE_NAME" default:"marqet_cart"`
	FlashName string `envconfig:"FLASH_COOKIE_NAME" default:"marqet_flash"`
	Secure    bool   `envconfig:"COOKIE_SECURE" default:"false"`
}

type SMTPConfig struct {
	Host          string `envconfig:"SMTP_HOST" default:""`
	Port          string `envconfig:"SMTP_PORT" default:"1025"`
	User          string `envconfig:"SMTP_USER" default:""`
	Pass          string `envconfig:"SMTP_PASS" default:""`
	TLSMode       string `envconfig:"SMTP_TLS_MODE" default:"none"` // none|starttls|tls
	SkipVerifyTLS bool   `envconfig:"SMTP_SKIP_VERIFY_TLS" default:"false"`
}

// ContactConfig routes contact-form submissions.
type ContactConfig struct {
	Inbox    string `envconfig:"CONTACT_INBOX" default:"hello@marqet.local"`
	From     string `envconfig:"CONTACT_FROM" default:"no-reply@marqet.local"`
	FromName string `envconfig:"CONTACT_FROM_NAME" default:"Marqet Co."`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
