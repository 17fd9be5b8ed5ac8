package sitegen

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magnetmoments-sync/lib/shopify"
	"magnetmoments-sync/lib/synclog"
	"magnetmoments-sync/lib/synclog/db"
	"magnetmoments-sync/lib/testutil"
)

type fakeStorefront struct {
	products []shopify.Product
	err      error
}

func (f fakeStorefront) Domain() string {
	return "dbx3hf-qe.myshopify.com"
}

func (f fakeStorefront) FetchProducts(ctx context.Context) ([]shopify.Product, error) {
	return f.products, f.err
}

func writeSiteFixture(t *testing.T, dir string) {
	t.Helper()

	shopPage := `<!DOCTYPE html>
<html>
<head>
  <title>Shop</title>
</head>
<body>
      <div class="product-grid">
        <!-- PRODUCTS_START -->
        <!-- PRODUCTS_END -->
      </div>
</body>
</html>`
	homePage := `<!DOCTYPE html>
<html>
<head>
  <title>Home</title>
</head>
<body>
      <div class="featured-grid">
        <!-- FEATURED_START -->
        <!-- FEATURED_END -->
      </div>
</body>
</html>`

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "shop"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shop", "index.html"), []byte(shopPage), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(homePage), 0644))
}

func TestSync(t *testing.T) {
	_, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "sitegen"})
	defer cleanup()

	siteDir := t.TempDir()
	writeSiteFixture(t, siteDir)

	custom := fixture("custom-photo-magnets")
	custom.Tags = []string{"Custom Photo Magnets"}
	products := []shopify.Product{fixture("vintage-botanical-set"), custom}

	service := NewService(Options{
		Storefront: fakeStorefront{products: products},
		SiteDir:    siteDir,
	})

	summary, err := service.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, synclog.OutcomeOk, summary.Outcome)
	assert.Equal(t, 2, summary.ProductCount)
	assert.Equal(t, 2, summary.PagesWritten)
	assert.Equal(t, 0, summary.PagesRemoved)
	assert.Equal(t, 0, summary.InjectionsFailed)

	var snapshot Snapshot
	contents, err := os.ReadFile(filepath.Join(siteDir, "_data", "products.json"))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(contents, &snapshot))
	assert.Equal(t, "dbx3hf-qe.myshopify.com", snapshot.ShopifyDomain)
	assert.Equal(t, 2, snapshot.ProductCount)
	assert.False(t, snapshot.LastUpdated.IsZero())

	// the snapshot round-trips the catalog as fetched
	diff := cmp.Diff(products, snapshot.Products)
	require.Empty(t, diff)

	_, err = os.Stat(filepath.Join(siteDir, "shop", "vintage-botanical-set", "index.html"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(siteDir, "shop", "custom-photo-magnets", "index.html"))
	assert.NoError(t, err)

	shopPage, err := os.ReadFile(filepath.Join(siteDir, "shop", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(shopPage), ProductsStartMarker)
	assert.Contains(t, string(shopPage), `data-category="premade"`)
	assert.Contains(t, string(shopPage), `data-category="custom"`)
	assert.Contains(t, string(shopPage), `"@type": "ItemList"`)
	assert.Contains(t, string(shopPage), `"numberOfItems": 2`)

	homePage, err := os.ReadFile(filepath.Join(siteDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(homePage), "product-card")
	assert.NotContains(t, string(homePage), "data-category")

	// a second run over the same catalog rewrites the pages byte for
	// byte identically
	_, err = service.Sync(context.Background())
	require.NoError(t, err)
	secondShopPage, err := os.ReadFile(filepath.Join(siteDir, "shop", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, string(shopPage), string(secondShopPage))
}

func TestSyncEmptyCatalog(t *testing.T) {
	_, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "sitegen"})
	defer cleanup()

	siteDir := t.TempDir()
	writeSiteFixture(t, siteDir)
	before, err := os.ReadFile(filepath.Join(siteDir, "shop", "index.html"))
	require.NoError(t, err)

	service := NewService(Options{Storefront: fakeStorefront{}, SiteDir: siteDir})
	summary, err := service.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, synclog.OutcomeEmpty, summary.Outcome)
	assert.Equal(t, 0, summary.PagesWritten)

	_, err = os.Stat(filepath.Join(siteDir, "_data"))
	assert.True(t, os.IsNotExist(err))

	after, err := os.ReadFile(filepath.Join(siteDir, "shop", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestSyncFetchError(t *testing.T) {
	_, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "sitegen"})
	defer cleanup()

	service := NewService(Options{
		Storefront: fakeStorefront{err: errors.New("boom")},
		SiteDir:    t.TempDir(),
	})
	_, err := service.Sync(context.Background())
	require.Error(t, err)
}

func TestSyncMissingMarkers(t *testing.T) {
	_, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "sitegen"})
	defer cleanup()

	siteDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(siteDir, "shop"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "shop", "index.html"), []byte("<body>plain</body>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(siteDir, "index.html"), []byte("<body>plain</body>"), 0644))

	service := NewService(Options{
		Storefront: fakeStorefront{products: []shopify.Product{fixture("a")}},
		SiteDir:    siteDir,
	})

	summary, err := service.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, synclog.OutcomePartial, summary.Outcome)
	assert.Equal(t, 4, summary.InjectionsFailed)

	// pages without markers are left exactly as they were
	shopPage, err := os.ReadFile(filepath.Join(siteDir, "shop", "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<body>plain</body>", string(shopPage))
}

func TestSyncRecordsJournal(t *testing.T) {
	result, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "sitegen", DbSchema: db.Schema})
	defer cleanup()

	siteDir := t.TempDir()
	writeSiteFixture(t, siteDir)

	journal := synclog.NewStore(result.DB)
	service := NewService(Options{
		Storefront: fakeStorefront{products: []shopify.Product{fixture("a")}},
		SiteDir:    siteDir,
		Journal:    &journal,
	})

	_, err := service.Sync(context.Background())
	require.NoError(t, err)

	runs, err := journal.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, synclog.OutcomeOk, runs[0].Outcome)
	assert.Equal(t, 1, runs[0].ProductCount)
	assert.Equal(t, 1, runs[0].PagesWritten)
	assert.Equal(t, "dbx3hf-qe.myshopify.com", runs[0].Domain)
}
