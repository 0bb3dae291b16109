package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marqet.co/app/internal/shared/apperr"
)

func TestFetchAllUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"1","title":"Red Shoe","price":100,"discountedPrice":80},{"id":"2","title":"Blue Hat","price":50,"discountedPrice":50}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	products, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Red Shoe", products[0].Title)
	assert.Equal(t, 80.0, products[0].DiscountedPrice)
}

func TestFetchAllServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.FetchAll(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.Network))
	// the public message carries the status verbatim
	assert.Contains(t, apperr.PublicMessage(err), "500")
}

func TestFetchAllMalformedEnvelope(t *testing.T) {
	for _, body := range []string{`{"items":[]}`, `not json`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		c := NewClient(srv.URL, time.Second)
		_, err := c.FetchAll(context.Background())
		srv.Close()

		require.Error(t, err, body)
		assert.True(t, apperr.IsKind(err, apperr.Parse), body)
		assert.Equal(t, "invalid format", apperr.PublicMessage(err), body)
	}
}

func TestFetchByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"id":"42","title":"Red Shoe","price":100,"discountedPrice":80}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	p, err := c.FetchByID(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "42", p.ID)
}

func TestFetchByIDNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.FetchByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.NotFound))
}

func TestFetchCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.FetchByID(ctx, "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
