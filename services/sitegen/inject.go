package sitegen

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// Marker comments in the checked-in pages. Everything outside a
// marker pair belongs to the page author and is never touched.
const (
	ProductsStartMarker = "<!-- PRODUCTS_START -->"
	ProductsEndMarker   = "<!-- PRODUCTS_END -->"
	FeaturedStartMarker = "<!-- FEATURED_START -->"
	FeaturedEndMarker   = "<!-- FEATURED_END -->"

	jsonldStartMarker = "<!-- PRODUCTS_JSONLD_START -->"
	jsonldEndMarker   = "<!-- PRODUCTS_JSONLD_END -->"
)

// SpliceBetween replaces the region between the first start marker
// and the end marker that follows it, keeping both markers. Returns
// the document unchanged with ok false when either marker is missing.
func SpliceBetween(doc, startMarker, endMarker, content string) (string, bool) {
	start := strings.Index(doc, startMarker)
	if start < 0 {
		return doc, false
	}
	start += len(startMarker)
	offset := strings.Index(doc[start:], endMarker)
	if offset < 0 {
		return doc, false
	}
	end := start + offset
	return doc[:start] + "\n" + content + "\n        " + doc[end:], true
}

// UpsertJSONLD replaces the marked structured data block, or seeds one
// right before </head> on pages that never carried it.
func UpsertJSONLD(doc, script string) (string, bool) {
	block := jsonldStartMarker + "\n  " + script + "\n  " + jsonldEndMarker

	start := strings.Index(doc, jsonldStartMarker)
	if start >= 0 {
		offset := strings.Index(doc[start:], jsonldEndMarker)
		if offset < 0 {
			return doc, false
		}
		end := start + offset + len(jsonldEndMarker)
		return doc[:start] + block + doc[end:], true
	}

	head := strings.Index(doc, "</head>")
	if head < 0 {
		return doc, false
	}
	return doc[:head] + "  " + block + "\n" + doc[head:], true
}

func spliceFile(ctx context.Context, path, startMarker, endMarker, content string) (bool, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	out, ok := SpliceBetween(string(doc), startMarker, endMarker, content)
	if !ok {
		slog.WarnContext(ctx, "markers not found, page left untouched",
			"path", path, "start", startMarker, "end", endMarker)
		return false, nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "updated page", "path", path)
	return true, nil
}

func upsertJSONLDFile(ctx context.Context, path, script string) (bool, error) {
	doc, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	out, ok := UpsertJSONLD(string(doc), script)
	if !ok {
		slog.WarnContext(ctx, "page has no structured data markers and no head element",
			"path", path)
		return false, nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return false, err
	}
	slog.InfoContext(ctx, "updated structured data", "path", path)
	return true, nil
}
