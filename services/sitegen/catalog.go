package sitegen

import (
	"fmt"
	"strings"

	"magnetmoments-sync/lib/shopify"
	"magnetmoments-sync/lib/textutil"
)

// Product categories drive the shop page filter buttons.
const (
	CategoryCustom  = "custom"
	CategoryPremade = "premade"
)

const customTag = "custom photo magnets"

// Facts holds everything the renderers derive from a raw product so
// classification happens in one place.
type Facts struct {
	Category       string
	Badge          string
	Custom         bool
	Available      bool
	PriceHTML      string
	FirstVariantID string
}

func Normalize(p shopify.Product) Facts {
	return Facts{
		Category:       Category(p),
		Badge:          Badge(p),
		Custom:         IsCustom(p),
		Available:      p.AvailableForSale,
		PriceHTML:      FormatPrice(p),
		FirstVariantID: FirstVariantID(p),
	}
}

// IsCustom reports whether a product is ordered through the hosted
// storefront because the customer uploads their own photos. The
// "Custom Photo Magnets" tag is authoritative, matching on the title
// is a legacy fallback for products tagged before the convention
// existed.
func IsCustom(p shopify.Product) bool {
	return textutil.HasTag(p.Tags, customTag) || textutil.ContainsFold(p.Title, "custom photo")
}

// TitleOnlyCustom reports a product that only the legacy title
// fallback classifies as custom. Callers log these so the missing tag
// gets fixed in the storefront admin.
func TitleOnlyCustom(p shopify.Product) bool {
	return !textutil.HasTag(p.Tags, customTag) && textutil.ContainsFold(p.Title, "custom photo")
}

func Category(p shopify.Product) string {
	if IsCustom(p) {
		return CategoryCustom
	}
	return CategoryPremade
}

// Badge returns the ribbon label for a card, highest priority first.
// Availability overrides it at render time.
func Badge(p shopify.Product) string {
	if textutil.HasAnyTag(p.Tags, "bestseller", "best seller") {
		return "Best Seller"
	}
	if textutil.HasTag(p.Tags, "new") {
		return "New"
	}
	if textutil.HasTag(p.Tags, "sale") {
		return "Sale"
	}
	return ""
}

// FormatPrice renders the price label shown on cards and detail
// pages: "Free" for zero, a plain "$12.00" for a single price point
// and a "From" prefix when variants span a range.
func FormatPrice(p shopify.Product) string {
	min := parseCents(p.PriceRange.MinVariantPrice.Amount)
	max := parseCents(p.PriceRange.MaxVariantPrice.Amount)

	if min == 0 {
		return "Free"
	}
	if min != max {
		return `<span class="from">From </span>` + formatCents(min)
	}
	return formatCents(min)
}

// parseCents reads a decimal amount string into integer cents without
// going through binary floats. A third decimal digit rounds half up,
// malformed amounts count as zero.
func parseCents(amount string) int64 {
	whole, frac, _ := strings.Cut(strings.TrimSpace(amount), ".")
	var cents int64
	for _, c := range whole {
		if c < '0' || c > '9' {
			return 0
		}
		cents = cents*10 + int64(c-'0')
	}
	cents *= 100
	for i, c := range frac {
		if c < '0' || c > '9' {
			return 0
		}
		switch i {
		case 0:
			cents += int64(c-'0') * 10
		case 1:
			cents += int64(c - '0')
		case 2:
			if c >= '5' {
				cents++
			}
		}
	}
	return cents
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

func formatAmount(amount string) string {
	return formatCents(parseCents(amount))
}

// ImageURL returns the featured image url resized through the cdn, or
// "" when the product has no usable image.
func ImageURL(p shopify.Product, width int) string {
	if p.FeaturedImage == nil || p.FeaturedImage.Url == "" {
		return ""
	}
	return withWidth(p.FeaturedImage.Url, width)
}

func withWidth(url string, width int) string {
	if strings.Contains(url, "?") {
		return fmt.Sprintf("%s&width=%d", url, width)
	}
	return fmt.Sprintf("%s?width=%d", url, width)
}

// ImageAlt returns the alt text for the featured image, falling back
// to the product title. Unescaped, renderers escape at the point of
// interpolation.
func ImageAlt(p shopify.Product) string {
	if p.FeaturedImage != nil && p.FeaturedImage.AltText != "" {
		return p.FeaturedImage.AltText
	}
	return p.Title
}

func FirstVariantID(p shopify.Product) string {
	if len(p.Variants.Nodes) == 0 {
		return ""
	}
	return p.Variants.Nodes[0].Id
}

// Featured picks the products highlighted on the home page: anything
// tagged "featured", or the head of the catalog when nothing is
// tagged. Capped at six either way.
func Featured(products []shopify.Product) []shopify.Product {
	var featured []shopify.Product
	for _, p := range products {
		if textutil.HasTag(p.Tags, "featured") {
			featured = append(featured, p)
		}
	}
	if len(featured) == 0 {
		featured = products
	}
	if len(featured) > 6 {
		featured = featured[:6]
	}
	return featured
}

// Related picks up to four products shown under a detail page. Same
// category first in catalog order, backfilled from the rest of the
// catalog when the category is thin.
func Related(p shopify.Product, all []shopify.Product) []shopify.Product {
	category := Category(p)
	included := map[string]bool{p.Id: true}

	var related []shopify.Product
	for _, other := range all {
		if included[other.Id] || Category(other) != category {
			continue
		}
		related = append(related, other)
		included[other.Id] = true
	}
	for _, other := range all {
		if len(related) >= 4 {
			break
		}
		if included[other.Id] {
			continue
		}
		related = append(related, other)
		included[other.Id] = true
	}
	if len(related) > 4 {
		related = related[:4]
	}
	return related
}
