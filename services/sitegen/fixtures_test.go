package sitegen

import (
	"magnetmoments-sync/lib/shopify"
)

// fixture returns a fully populated premade product, tests tweak the
// fields they care about.
func fixture(handle string) shopify.Product {
	return shopify.Product{
		Id:               "gid://shopify/Product/" + handle,
		Handle:           handle,
		Title:            "Vintage Botanical Set",
		Description:      "Six hand pressed flower magnets.",
		DescriptionHtml:  "<p>Six hand pressed flower magnets.</p>",
		ProductType:      "Magnet Set",
		Tags:             []string{"florals"},
		AvailableForSale: true,
		TotalInventory:   12,
		PriceRange: shopify.PriceRange{
			MinVariantPrice: shopify.Money{Amount: "14.0", CurrencyCode: "USD"},
			MaxVariantPrice: shopify.Money{Amount: "14.0", CurrencyCode: "USD"},
		},
		FeaturedImage: &shopify.Image{
			Url:     "https://cdn.shopify.com/s/files/1/vintage.jpg?v=5",
			AltText: "Pressed flowers on a fridge",
			Width:   1600,
			Height:  1600,
		},
		Images: shopify.ImageConnection{Nodes: []shopify.Image{
			{Url: "https://cdn.shopify.com/s/files/1/vintage.jpg?v=5", AltText: "Pressed flowers on a fridge"},
			{Url: "https://cdn.shopify.com/s/files/1/vintage-back.jpg"},
		}},
		Variants: shopify.VariantConnection{Nodes: []shopify.Variant{
			{
				Id:                "gid://shopify/ProductVariant/" + handle,
				Title:             "Set of 6",
				Price:             shopify.Money{Amount: "14.0", CurrencyCode: "USD"},
				AvailableForSale:  true,
				QuantityAvailable: 12,
			},
		}},
	}
}

func handles(products []shopify.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Handle
	}
	return out
}
