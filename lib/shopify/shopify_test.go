package shopify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"magnetmoments-sync/lib/testutil"

	"github.com/stretchr/testify/require"
)

const productsResponse = `{
  "data": {
    "products": {
      "nodes": [
        {
          "id": "gid://shopify/Product/8001",
          "handle": "vintage-botanical-set",
          "title": "Vintage Botanical Magnet Set",
          "description": "A set of four botanical print magnets.",
          "descriptionHtml": "<p>A set of four botanical print magnets.</p>",
          "productType": "Magnet Set",
          "tags": ["bestseller", "florals"],
          "availableForSale": true,
          "totalInventory": 14,
          "onlineStoreUrl": null,
          "createdAt": "2025-11-02T18:20:04Z",
          "updatedAt": "2026-01-15T09:41:30Z",
          "seo": { "title": null, "description": null },
          "priceRange": {
            "minVariantPrice": { "amount": "14.0", "currencyCode": "USD" },
            "maxVariantPrice": { "amount": "22.0", "currencyCode": "USD" }
          },
          "compareAtPriceRange": {
            "minVariantPrice": { "amount": "0.0", "currencyCode": "USD" },
            "maxVariantPrice": { "amount": "0.0", "currencyCode": "USD" }
          },
          "featuredImage": {
            "url": "https://cdn.shopify.com/s/files/1/botanical.jpg",
            "altText": "Botanical magnets on a fridge",
            "width": 2048,
            "height": 2048
          },
          "images": {
            "nodes": [
              { "url": "https://cdn.shopify.com/s/files/1/botanical.jpg", "altText": "Botanical magnets on a fridge", "width": 2048, "height": 2048 },
              { "url": "https://cdn.shopify.com/s/files/1/botanical-2.jpg", "altText": null, "width": 2048, "height": 2048 }
            ]
          },
          "variants": {
            "nodes": [
              { "id": "gid://shopify/ProductVariant/41", "title": "Set of 4", "price": { "amount": "14.0", "currencyCode": "USD" }, "availableForSale": true, "quantityAvailable": 9 },
              { "id": "gid://shopify/ProductVariant/42", "title": "Set of 8", "price": { "amount": "22.0", "currencyCode": "USD" }, "availableForSale": false, "quantityAvailable": 0 }
            ]
          }
        },
        {
          "id": "gid://shopify/Product/8002",
          "handle": "custom-photo-magnets",
          "title": "Custom Photo Magnets",
          "description": "Turn your photos into magnets.",
          "descriptionHtml": "<p>Turn your photos into magnets.</p>",
          "productType": "",
          "tags": ["Custom Photo Magnets"],
          "availableForSale": true,
          "totalInventory": null,
          "onlineStoreUrl": "https://dbx3hf-qe.myshopify.com/products/custom-photo-magnets",
          "createdAt": "2025-12-01T12:00:00Z",
          "updatedAt": "2026-02-01T12:00:00Z",
          "seo": { "title": "Custom Photo Magnets", "description": "Upload your photos." },
          "priceRange": {
            "minVariantPrice": { "amount": "18.0", "currencyCode": "USD" },
            "maxVariantPrice": { "amount": "18.0", "currencyCode": "USD" }
          },
          "compareAtPriceRange": {
            "minVariantPrice": { "amount": "0.0", "currencyCode": "USD" },
            "maxVariantPrice": { "amount": "0.0", "currencyCode": "USD" }
          },
          "featuredImage": null,
          "images": { "nodes": [] },
          "variants": { "nodes": [] }
        }
      ]
    }
  }
}`

func TestFetchProducts(t *testing.T) {
	_, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "shopify"})
	defer cleanup()

	var gotPath, gotToken, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Shopify-Storefront-Access-Token")

		var body struct {
			Query string `json:"query"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		gotQuery = body.Query

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsResponse))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{
		Domain:  "dbx3hf-qe.myshopify.com",
		Token:   "testtoken",
		BaseUrl: server.URL,
	})
	require.Equal(t, "dbx3hf-qe.myshopify.com", client.Domain())

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)

	require.Equal(t, "/api/2025-01/graphql.json", gotPath)
	require.Equal(t, "testtoken", gotToken)
	require.Contains(t, gotQuery, "products(first: 50, sortKey: PRICE, reverse: false)")

	require.Len(t, products, 2)

	botanical := products[0]
	require.Equal(t, "gid://shopify/Product/8001", botanical.Id)
	require.Equal(t, "vintage-botanical-set", botanical.Handle)
	require.Equal(t, []string{"bestseller", "florals"}, botanical.Tags)
	require.Equal(t, "14.0", botanical.PriceRange.MinVariantPrice.Amount)
	require.Equal(t, "22.0", botanical.PriceRange.MaxVariantPrice.Amount)
	require.NotNil(t, botanical.FeaturedImage)
	require.Equal(t, "Botanical magnets on a fridge", botanical.FeaturedImage.AltText)
	require.Len(t, botanical.Images.Nodes, 2)
	require.Empty(t, botanical.Images.Nodes[1].AltText)
	require.Len(t, botanical.Variants.Nodes, 2)
	require.False(t, botanical.Variants.Nodes[1].AvailableForSale)
	require.Equal(t, 14, botanical.TotalInventory)

	custom := products[1]
	require.Nil(t, custom.FeaturedImage)
	require.Empty(t, custom.Variants.Nodes)
	require.Equal(t, 0, custom.TotalInventory)
	require.NotNil(t, custom.Seo)
	require.Equal(t, "Custom Photo Magnets", custom.Seo.Title)
}

func TestFetchProductsApiErrors(t *testing.T) {
	_, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "shopify"})
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"Invalid API key or access token"}]}`))
	}))
	defer server.Close()

	client := NewClient(ClientOptions{Token: "bad", BaseUrl: server.URL})

	_, err := client.FetchProducts(context.Background())
	require.ErrorContains(t, err, "Invalid API key or access token")
}

func TestFetchProductsHttpError(t *testing.T) {
	_, cleanup := testutil.SetupService(t, testutil.ServiceParams{Name: "shopify"})
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{Token: "testtoken", BaseUrl: server.URL})

	_, err := client.FetchProducts(context.Background())
	require.Error(t, err)
}
