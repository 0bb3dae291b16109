package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"marqet.co/app/internal/shared/apperr"
)

// Client reads products from the remote catalog API. Every payload is
// wrapped in a {"data": ...} envelope which the client unwraps.
//
// Both fetch methods honor context cancellation: a caller that navigates
// away cancels the request and the response is discarded.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type listEnvelope struct {
	Data []Product `json:"data"`
}

type singleEnvelope struct {
	Data *Product `json:"data"`
}

// FetchAll returns the full product collection.
func (c *Client) FetchAll(ctx context.Context) ([]Product, error) {
	body, err := c.get(ctx, c.baseURL)
	if err != nil {
		return nil, err
	}
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, apperr.ParseErr("invalid format", err)
	}
	if env.Data == nil {
		return nil, apperr.ParseErr("invalid format", fmt.Errorf("catalog: missing data envelope"))
	}
	return env.Data, nil
}

// FetchByID returns a single product.
func (c *Client) FetchByID(ctx context.Context, id string) (Product, error) {
	body, err := c.get(ctx, c.baseURL+"/"+id)
	if err != nil {
		return Product{}, err
	}
	var env singleEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Product{}, apperr.ParseErr("invalid format", err)
	}
	if env.Data == nil {
		return Product{}, apperr.ParseErr("invalid format", fmt.Errorf("catalog: missing data envelope"))
	}
	return *env.Data, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.NetworkErr("Could not reach the product catalog.", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, apperr.NotFoundErr("Product not found")
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := fmt.Sprintf("API error: %d %s", res.StatusCode, http.StatusText(res.StatusCode))
		return nil, apperr.NetworkErr(msg, fmt.Errorf("catalog: unexpected status %d for %s", res.StatusCode, url))
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperr.NetworkErr("Could not read the catalog response.", err)
	}
	return body, nil
}
