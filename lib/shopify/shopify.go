package shopify

import (
	"context"
	"fmt"
	"time"

	"magnetmoments-sync/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("lib/shopify")

const apiVersion = "2025-01"

const productsQuery = `
{
  products(first: 50, sortKey: PRICE, reverse: false) {
    nodes {
      id
      handle
      title
      description(truncateAt: 200)
      descriptionHtml
      productType
      tags
      availableForSale
      totalInventory
      onlineStoreUrl
      createdAt
      updatedAt
      seo {
        title
        description
      }
      priceRange {
        minVariantPrice { amount currencyCode }
        maxVariantPrice { amount currencyCode }
      }
      compareAtPriceRange {
        minVariantPrice { amount currencyCode }
        maxVariantPrice { amount currencyCode }
      }
      featuredImage {
        url
        altText
        width
        height
      }
      images(first: 10) {
        nodes {
          url
          altText
          width
          height
        }
      }
      variants(first: 10) {
        nodes {
          id
          title
          price { amount currencyCode }
          availableForSale
          quantityAvailable
        }
      }
    }
  }
}
`

type Client struct {
	http   *resty.Client
	domain string
}

type ClientOptions struct {
	// myshopify domain of the storefront, e.g. "dbx3hf-qe.myshopify.com"
	Domain string
	// storefront api access token, this is the public one and not an
	// admin api secret
	Token string
	// overrides the api base url, tests point this at a local server
	BaseUrl string
	// optional destination for http traffic dumps
	Output restyutil.InstrumentOutput
}

func NewClient(options ClientOptions) *Client {
	baseUrl := options.BaseUrl
	if baseUrl == "" {
		baseUrl = fmt.Sprintf("https://%s", options.Domain)
	}

	client := resty.New()
	client.SetBaseURL(baseUrl)
	client.SetHeader("X-Shopify-Storefront-Access-Token", options.Token)
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, options.Output)

	return &Client{http: client, domain: options.Domain}
}

func (c *Client) Domain() string {
	return c.domain
}

func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	ctx, span := tracer.Start(ctx, "FetchProducts")
	defer span.End()

	var data struct {
		Products struct {
			Nodes []Product `json:"nodes"`
		} `json:"products"`
	}
	err := graphqlQuery(ctx, c.http, "Products", productsQuery, &data)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch products")
		return nil, err
	}

	span.SetAttributes(attribute.Int("count", len(data.Products.Nodes)))
	return data.Products.Nodes, nil
}
