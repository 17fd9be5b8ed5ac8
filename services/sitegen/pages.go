package sitegen

import (
	"log/slog"
	"os"
	"path/filepath"

	"magnetmoments-sync/lib/shopify"
)

// ReconcilePages regenerates shop/<handle>/index.html for every
// product and removes directories left behind by products that are no
// longer in the catalog. Only directories that look like generated
// pages, meaning they hold an index.html, are candidates for removal.
func ReconcilePages(shopDir string, products []shopify.Product, render Renderer) (written, removed int, err error) {
	handles := map[string]bool{}
	for _, p := range products {
		if p.Handle == "" {
			slog.Warn("product has no handle, skipping page", "id", p.Id)
			continue
		}
		handles[p.Handle] = true

		pageDir := filepath.Join(shopDir, p.Handle)
		if err := os.MkdirAll(pageDir, 0755); err != nil {
			return written, removed, err
		}
		page := render.ProductPage(p, products)
		if err := os.WriteFile(filepath.Join(pageDir, "index.html"), []byte(page), 0644); err != nil {
			return written, removed, err
		}
		written++
		slog.Debug("wrote product page", "handle", p.Handle)
	}

	entries, err := os.ReadDir(shopDir)
	if err != nil {
		return written, removed, err
	}
	for _, entry := range entries {
		if !entry.IsDir() || handles[entry.Name()] {
			continue
		}
		if _, err := os.Stat(filepath.Join(shopDir, entry.Name(), "index.html")); err != nil {
			continue
		}
		if err := os.RemoveAll(filepath.Join(shopDir, entry.Name())); err != nil {
			return written, removed, err
		}
		removed++
		slog.Info("removed stale product page", "handle", entry.Name())
	}

	return written, removed, nil
}
