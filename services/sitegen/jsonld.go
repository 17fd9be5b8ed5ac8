package sitegen

import (
	"bytes"
	"encoding/json"
	"strings"

	"magnetmoments-sync/lib/shopify"
)

const (
	siteURL   = "https://magnetmomentsco.us"
	brandName = "Magnet Moments Co."
)

// Field order below is the key order in the emitted json, search
// engines display these blocks verbatim in testing tools so keep it
// stable.

type orgLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type offerLD struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Availability  string `json:"availability"`
	Url           string `json:"url,omitempty"`
	Seller        orgLD  `json:"seller"`
}

type productLD struct {
	Context     string  `json:"@context,omitempty"`
	Type        string  `json:"@type"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Image       any     `json:"image"`
	Url         string  `json:"url"`
	Brand       orgLD   `json:"brand"`
	Offers      offerLD `json:"offers"`
}

type listItemLD struct {
	Type     string    `json:"@type"`
	Position int       `json:"position"`
	Item     productLD `json:"item"`
}

type itemListLD struct {
	Context         string       `json:"@context"`
	Type            string       `json:"@type"`
	Name            string       `json:"name"`
	NumberOfItems   int          `json:"numberOfItems"`
	ItemListElement []listItemLD `json:"itemListElement"`
}

func availabilityLD(available bool) string {
	if available {
		return "https://schema.org/InStock"
	}
	return "https://schema.org/OutOfStock"
}

func rawAmount(m shopify.Money) string {
	if m.Amount == "" {
		return "0"
	}
	return m.Amount
}

func rawCurrency(m shopify.Money) string {
	if m.CurrencyCode == "" {
		return "USD"
	}
	return m.CurrencyCode
}

// ProductJSONLD renders the structured data block for a detail page,
// indented to sit inside the page head. The price is the raw amount
// string from the storefront, not the display label.
func ProductJSONLD(p shopify.Product) string {
	pageURL := siteURL + "/shop/" + p.Handle + "/"

	var urls []string
	for _, img := range p.Images.Nodes {
		if img.Url != "" {
			urls = append(urls, withWidth(img.Url, 1200))
		}
	}
	var image any
	switch len(urls) {
	case 0:
		image = ""
	case 1:
		image = urls[0]
	default:
		image = urls
	}

	return renderLD(productLD{
		Context:     "https://schema.org",
		Type:        "Product",
		Name:        p.Title,
		Description: p.Description,
		Image:       image,
		Url:         pageURL,
		Brand:       orgLD{Type: "Brand", Name: brandName},
		Offers: offerLD{
			Type:          "Offer",
			Price:         rawAmount(p.PriceRange.MinVariantPrice),
			PriceCurrency: rawCurrency(p.PriceRange.MinVariantPrice),
			Availability:  availabilityLD(p.AvailableForSale),
			Url:           pageURL,
			Seller:        orgLD{Type: "Organization", Name: brandName},
		},
	})
}

// ItemListJSONLD renders the catalog listing block injected into the
// shop and home pages.
func ItemListJSONLD(products []shopify.Product) string {
	items := make([]listItemLD, len(products))
	for i, p := range products {
		items[i] = listItemLD{
			Type:     "ListItem",
			Position: i + 1,
			Item: productLD{
				Type:        "Product",
				Name:        p.Title,
				Description: p.Description,
				Image:       ImageURL(p, 1200),
				Url:         siteURL + "/shop/" + p.Handle + "/",
				Brand:       orgLD{Type: "Brand", Name: brandName},
				Offers: offerLD{
					Type:          "Offer",
					Price:         rawAmount(p.PriceRange.MinVariantPrice),
					PriceCurrency: rawCurrency(p.PriceRange.MinVariantPrice),
					Availability:  availabilityLD(p.AvailableForSale),
					Seller:        orgLD{Type: "Organization", Name: brandName},
				},
			},
		}
	}

	return renderLD(itemListLD{
		Context:         "https://schema.org",
		Type:            "ItemList",
		Name:            "Magnet Moments Co. Products",
		NumberOfItems:   len(products),
		ItemListElement: items,
	})
}

// JSONLDScript wraps a rendered block in the script tag the injector
// places in a page head.
func JSONLDScript(rendered string) string {
	return "<script type=\"application/ld+json\">\n  " + rendered + "\n  </script>"
}

func renderLD(v any) string {
	return strings.ReplaceAll(encodeJSON(v, "  "), "\n", "\n  ")
}

// encodeJSON marshals without the html-safe \u escapes so cdn urls
// keep their literal & separators in the output.
func encodeJSON(v any, indent string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		panic(err)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
