package sitegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magnetmoments-sync/lib/shopify"
)

func TestIsCustom(t *testing.T) {
	p := fixture("vintage-botanical-set")
	assert.False(t, IsCustom(p))
	assert.False(t, TitleOnlyCustom(p))

	p.Tags = []string{"Custom Photo Magnets"}
	assert.True(t, IsCustom(p))
	assert.False(t, TitleOnlyCustom(p))

	p.Tags = nil
	p.Title = "Custom Photo Magnet Tiles"
	assert.True(t, IsCustom(p))
	assert.True(t, TitleOnlyCustom(p))
}

func TestCategory(t *testing.T) {
	p := fixture("vintage-botanical-set")
	assert.Equal(t, CategoryPremade, Category(p))

	p.Tags = append(p.Tags, "custom photo magnets")
	assert.Equal(t, CategoryCustom, Category(p))
}

func TestBadge(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want string
	}{
		{"no badge tags", []string{"florals"}, ""},
		{"bestseller", []string{"Bestseller"}, "Best Seller"},
		{"best seller with a space", []string{"Best Seller"}, "Best Seller"},
		{"new", []string{"New"}, "New"},
		{"sale", []string{"sale"}, "Sale"},
		{"bestseller beats new and sale", []string{"sale", "new", "bestseller"}, "Best Seller"},
		{"new beats sale", []string{"sale", "new"}, "New"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := fixture("x")
			p.Tags = test.tags
			assert.Equal(t, test.want, Badge(p))
		})
	}
}

func TestFormatPrice(t *testing.T) {
	priced := func(min, max string) shopify.Product {
		p := fixture("x")
		p.PriceRange.MinVariantPrice.Amount = min
		p.PriceRange.MaxVariantPrice.Amount = max
		return p
	}

	assert.Equal(t, "$14.00", FormatPrice(priced("14.0", "14.0")))
	assert.Equal(t, "$9.50", FormatPrice(priced("9.5", "9.5")))
	assert.Equal(t, `<span class="from">From </span>$9.50`, FormatPrice(priced("9.5", "22.0")))
	assert.Equal(t, "Free", FormatPrice(priced("0.0", "0.0")))
	assert.Equal(t, "Free", FormatPrice(priced("", "")))
}

func TestParseCents(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"14.0", 1400},
		{"9.99", 999},
		{"0", 0},
		{"1234.56", 123456},
		{"19.995", 2000},
		{"19.994", 1999},
		{"7", 700},
		{"", 0},
		{"n/a", 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, parseCents(test.amount), "amount %q", test.amount)
	}
}

func TestImageURL(t *testing.T) {
	p := fixture("x")
	assert.Equal(t, "https://cdn.shopify.com/s/files/1/vintage.jpg?v=5&width=600", ImageURL(p, 600))

	p.FeaturedImage.Url = "https://cdn.shopify.com/s/files/1/vintage.jpg"
	assert.Equal(t, "https://cdn.shopify.com/s/files/1/vintage.jpg?width=600", ImageURL(p, 600))

	p.FeaturedImage = nil
	assert.Equal(t, "", ImageURL(p, 600))
}

func TestImageAlt(t *testing.T) {
	p := fixture("x")
	assert.Equal(t, "Pressed flowers on a fridge", ImageAlt(p))

	p.FeaturedImage.AltText = ""
	assert.Equal(t, p.Title, ImageAlt(p))

	p.FeaturedImage = nil
	assert.Equal(t, p.Title, ImageAlt(p))
}

func TestFirstVariantID(t *testing.T) {
	p := fixture("x")
	assert.Equal(t, "gid://shopify/ProductVariant/x", FirstVariantID(p))

	p.Variants.Nodes = nil
	assert.Equal(t, "", FirstVariantID(p))
}

func TestFeatured(t *testing.T) {
	products := []shopify.Product{
		fixture("a"), fixture("b"), fixture("c"), fixture("d"),
		fixture("e"), fixture("f"), fixture("g"),
	}

	// nothing tagged, the head of the catalog capped at six
	featured := Featured(products)
	require.Len(t, featured, 6)
	assert.Equal(t, "a", featured[0].Handle)
	assert.Equal(t, "f", featured[5].Handle)

	products[2].Tags = append(products[2].Tags, "Featured")
	products[6].Tags = append(products[6].Tags, "featured")
	featured = Featured(products)
	require.Len(t, featured, 2)
	assert.Equal(t, []string{"c", "g"}, handles(featured))
}

func TestRelated(t *testing.T) {
	custom := fixture("custom-photo-magnets")
	custom.Tags = []string{"Custom Photo Magnets"}

	products := []shopify.Product{
		fixture("a"), fixture("b"), custom, fixture("c"), fixture("d"), fixture("e"),
	}

	// same category in catalog order, capped at four
	related := Related(products[0], products)
	assert.Equal(t, []string{"b", "c", "d", "e"}, handles(related))

	// thin categories backfill from the rest of the catalog
	related = Related(custom, products)
	assert.Equal(t, []string{"a", "b", "c", "d"}, handles(related))
}
