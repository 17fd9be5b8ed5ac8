package shopify

type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type PriceRange struct {
	MinVariantPrice Money `json:"minVariantPrice"`
	MaxVariantPrice Money `json:"maxVariantPrice"`
}

type Image struct {
	Url     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type Variant struct {
	Id                string `json:"id"`
	Title             string `json:"title"`
	Price             Money  `json:"price"`
	AvailableForSale  bool   `json:"availableForSale"`
	QuantityAvailable int    `json:"quantityAvailable"`
}

type Seo struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ImageConnection struct {
	Nodes []Image `json:"nodes"`
}

type VariantConnection struct {
	Nodes []Variant `json:"nodes"`
}

// Product mirrors the storefront product query field for field, so a
// saved snapshot round-trips without surprises.
type Product struct {
	Id                  string            `json:"id"`
	Handle              string            `json:"handle"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	DescriptionHtml     string            `json:"descriptionHtml"`
	ProductType         string            `json:"productType"`
	Tags                []string          `json:"tags"`
	AvailableForSale    bool              `json:"availableForSale"`
	TotalInventory      int               `json:"totalInventory"`
	OnlineStoreUrl      string            `json:"onlineStoreUrl"`
	CreatedAt           string            `json:"createdAt"`
	UpdatedAt           string            `json:"updatedAt"`
	Seo                 *Seo              `json:"seo"`
	PriceRange          PriceRange        `json:"priceRange"`
	CompareAtPriceRange PriceRange        `json:"compareAtPriceRange"`
	FeaturedImage       *Image            `json:"featuredImage"`
	Images              ImageConnection   `json:"images"`
	Variants            VariantConnection `json:"variants"`
}
