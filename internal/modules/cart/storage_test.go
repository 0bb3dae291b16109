package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marqet.co/app/internal/modules/catalog"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "cart.json")
	fs := NewFileStorage(path)

	items := []Item{
		{Product: catalog.Product{ID: "1", Title: "Red Shoe", Price: 100, DiscountedPrice: 80}, Quantity: 2},
		{Product: catalog.Product{ID: "2", Title: "Blue Hat", Price: 50, DiscountedPrice: 50}, Quantity: 1},
	}
	require.NoError(t, fs.Save(items))

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Red Shoe", loaded[0].Title)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.Equal(t, 80.0, loaded[0].DiscountedPrice)
}

func TestFileStorageMissingFileMeansEmpty(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "absent.json"))
	items, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFileStorageCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	fs := NewFileStorage(path)
	_, err := fs.Load()
	assert.Error(t, err)
}

func TestFileStorageReplacesWholeState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	fs := NewFileStorage(path)

	require.NoError(t, fs.Save([]Item{{Product: catalog.Product{ID: "1", Price: 1, DiscountedPrice: 1}, Quantity: 1}}))
	require.NoError(t, fs.Save(nil))

	loaded, err := fs.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
