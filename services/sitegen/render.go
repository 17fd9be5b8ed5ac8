package sitegen

import (
	"fmt"
	"strings"
	"text/template"

	"magnetmoments-sync/lib/htmlutil"
	"magnetmoments-sync/lib/shopify"
)

// escapeHTML is the single escaping point for text interpolated into
// markup. Values are escaped exactly once, where they are spliced in.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Renderer builds page fragments and whole detail pages. Domain is
// the myshopify domain, custom products link straight to it.
type Renderer struct {
	Domain string
}

// Card renders one product card. Shop page cards carry a
// data-category attribute for the filter buttons, home page cards do
// not.
func (r Renderer) Card(p shopify.Product, facts Facts, shopPage bool) string {
	title := escapeHTML(p.Title)

	badge := ""
	if facts.Badge != "" {
		badge = "\n            <span class=\"product-card-badge\">" + facts.Badge + "</span>"
	}
	if !facts.Available {
		badge = "\n            <span class=\"product-card-badge sold-out-badge\">Sold Out</span>"
	}

	soldOutClass := ""
	if !facts.Available {
		soldOutClass = " sold-out"
	}

	categoryAttr := ""
	if shopPage {
		categoryAttr = fmt.Sprintf(` data-category="%s"`, facts.Category)
	}

	var cta string
	switch {
	case facts.Custom:
		url := fmt.Sprintf("https://%s/products/%s", r.Domain, p.Handle)
		cta = fmt.Sprintf(`<a href="%s" class="product-card-btn" target="_blank" rel="noopener">View &amp; Customize →</a>`,
			escapeHTML(url))
	case !facts.Available:
		cta = fmt.Sprintf(`<button class="product-card-btn" data-variant-id="%s" data-original-text="Add to Cart" aria-label="Add %s to cart" disabled>Sold Out</button>`,
			escapeHTML(facts.FirstVariantID), title)
	default:
		cta = fmt.Sprintf(`<button class="product-card-btn" data-variant-id="%s" data-original-text="Add to Cart" aria-label="Add %s to cart">Add to Cart</button>`,
			escapeHTML(facts.FirstVariantID), title)
	}

	return fmt.Sprintf(`        <div class="product-card%s" data-product-id="%s"%s>
          <a href="/shop/%s/" class="product-card-link" aria-label="%s">
            <div class="product-card-image">
              <img src="%s" alt="%s" width="600" height="600" loading="lazy">%s
            </div>
            <div class="product-card-body">
              <h3 class="product-card-title">%s</h3>
              <p class="product-card-price">%s</p>
            </div>
          </a>
          <div class="product-card-actions">
            %s
          </div>
        </div>`,
		soldOutClass, escapeHTML(p.Id), categoryAttr,
		p.Handle, title,
		ImageURL(p, 600), escapeHTML(ImageAlt(p)), badge,
		title,
		facts.PriceHTML,
		cta,
	)
}

func (r Renderer) relatedCard(p shopify.Product) string {
	return fmt.Sprintf(`        <a href="/shop/%s/" class="related-card">
          <div class="related-card-image">
            <img src="%s" alt="%s" width="400" height="400" loading="lazy">
          </div>
          <h4 class="related-card-title">%s</h4>
          <p class="related-card-price">%s</p>
        </a>`,
		p.Handle,
		ImageURL(p, 400), escapeHTML(ImageAlt(p)),
		escapeHTML(p.Title),
		FormatPrice(p),
	)
}

// ProductPage renders a complete detail page. all is the full catalog,
// used for the related products strip.
func (r Renderer) ProductPage(p shopify.Product, all []shopify.Product) string {
	facts := Normalize(p)
	title := escapeHTML(p.Title)
	images := p.Images.Nodes
	variants := p.Variants.Nodes

	seoTitle := title
	if p.Seo != nil && p.Seo.Title != "" {
		seoTitle = escapeHTML(p.Seo.Title)
	}
	seoDescription := ""
	switch {
	case p.Seo != nil && p.Seo.Description != "":
		seoDescription = escapeHTML(p.Seo.Description)
	case p.Description != "":
		seoDescription = escapeHTML(p.Description)
	default:
		seoDescription = escapeHTML(htmlutil.ExtractText(p.DescriptionHtml))
	}

	ogCandidate := p.FeaturedImage
	if ogCandidate == nil && len(images) > 0 {
		ogCandidate = &images[0]
	}
	ogImage := ""
	if ogCandidate != nil && ogCandidate.Url != "" {
		ogImage = withWidth(ogCandidate.Url, 1200)
	}

	badge := ""
	if facts.Badge != "" {
		badge = `<span class="pdp-badge">` + facts.Badge + `</span>`
	}
	if !facts.Available {
		badge = `<span class="pdp-badge pdp-badge--soldout">Sold Out</span>`
	}

	var thumbs []string
	for i, img := range images {
		if img.Url == "" {
			continue
		}
		active := ""
		if i == 0 {
			active = " active"
		}
		alt := img.AltText
		if alt == "" {
			alt = p.Title
		}
		thumbs = append(thumbs, fmt.Sprintf(
			`<button class="pdp-thumb%s" data-index="%d" aria-label="View image %d"><img src="%s" alt="%s" width="150" height="150" loading="lazy"></button>`,
			active, i, i+1, withWidth(img.Url, 150), escapeHTML(alt),
		))
	}
	thumbsSection := ""
	if len(thumbs) > 1 {
		thumbsSection = "\n          <div class=\"pdp-thumbs\">\n            " +
			strings.Join(thumbs, "\n            ") + "\n          </div>"
	}

	mainImgUrl, mainImgAlt := "", title
	if len(images) > 0 {
		if images[0].Url != "" {
			mainImgUrl = withWidth(images[0].Url, 800)
		}
		alt := images[0].AltText
		if alt == "" {
			alt = p.Title
		}
		mainImgAlt = escapeHTML(alt)
	}

	var galleryUrls []string
	for _, img := range images {
		if img.Url != "" {
			galleryUrls = append(galleryUrls, withWidth(img.Url, 800))
		}
	}
	urlsJson := make([]string, len(galleryUrls))
	for i, u := range galleryUrls {
		urlsJson[i] = encodeJSON(u, "")
	}

	var cta string
	switch {
	case facts.Custom:
		url := fmt.Sprintf("https://%s/products/%s", r.Domain, p.Handle)
		cta = fmt.Sprintf(`<a href="%s" class="btn btn-primary btn-lg pdp-cta" target="_blank" rel="noopener">Customize &amp; Order →</a>`,
			escapeHTML(url))
	case !facts.Available:
		cta = fmt.Sprintf(`<button class="btn btn-primary btn-lg pdp-cta" data-variant-id="%s" data-original-text="Add to Cart" disabled>Sold Out</button>`,
			escapeHTML(facts.FirstVariantID))
	default:
		cta = fmt.Sprintf(`<button class="btn btn-primary btn-lg pdp-cta" data-variant-id="%s" data-original-text="Add to Cart" aria-label="Add %s to cart">Add to Cart</button>`,
			escapeHTML(facts.FirstVariantID), title)
	}

	variantSection := ""
	if len(variants) > 1 {
		options := make([]string, len(variants))
		for i, v := range variants {
			price := formatAmount(v.Price.Amount)
			checked := ""
			if i == 0 {
				checked = " checked"
			}
			disabled := ""
			if !v.AvailableForSale {
				disabled = " disabled"
			}
			options[i] = fmt.Sprintf(
				`<label class="pdp-variant-option"><input type="radio" name="variant" value="%s" data-price="%s"%s%s><span>%s — %s</span></label>`,
				escapeHTML(v.Id), price, checked, disabled, escapeHTML(v.Title), price,
			)
		}
		variantSection = "<div class=\"pdp-variants\">\n            <h3 class=\"pdp-variants-label\">Options</h3>\n            " +
			strings.Join(options, "\n            ") + "\n          </div>"
	}

	description := p.DescriptionHtml
	if description == "" {
		if p.Description != "" {
			description = "<p>" + escapeHTML(p.Description) + "</p>"
		} else {
			description = "<p>Handcrafted magnet set by Magnet Moments Co.</p>"
		}
	}

	related := Related(p, all)
	relatedCards := make([]string, len(related))
	for i, rp := range related {
		relatedCards[i] = r.relatedCard(rp)
	}

	var page strings.Builder
	err := productPageTmpl.Execute(&page, pageData{
		Title:           title,
		Handle:          p.Handle,
		SeoTitle:        seoTitle,
		SeoDescription:  seoDescription,
		OgImage:         ogImage,
		MinPrice:        rawAmount(p.PriceRange.MinVariantPrice),
		Currency:        rawCurrency(p.PriceRange.MinVariantPrice),
		Jsonld:          ProductJSONLD(p),
		ProductId:       escapeHTML(p.Id),
		BadgeHtml:       badge,
		MainImgUrl:      mainImgUrl,
		MainImgAlt:      mainImgAlt,
		ThumbsSection:   thumbsSection,
		PriceHtml:       facts.PriceHTML,
		VariantSection:  variantSection,
		CtaHtml:         cta,
		DescriptionHtml: description,
		RelatedHtml:     strings.Join(relatedCards, "\n\n"),
		ImageUrlsJson:   "[" + strings.Join(urlsJson, ", ") + "]",
	})
	if err != nil {
		panic(err)
	}
	return page.String()
}

type pageData struct {
	Title           string
	Handle          string
	SeoTitle        string
	SeoDescription  string
	OgImage         string
	MinPrice        string
	Currency        string
	Jsonld          string
	ProductId       string
	BadgeHtml       string
	MainImgUrl      string
	MainImgAlt      string
	ThumbsSection   string
	PriceHtml       string
	VariantSection  string
	CtaHtml         string
	DescriptionHtml string
	RelatedHtml     string
	ImageUrlsJson   string
}

var productPageTmpl = template.Must(template.New("product-page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <!-- Favicon -->
  <link rel="icon" href="/favicon.ico" sizes="48x48">
  <link rel="icon" href="/assets/images/favicon.svg" type="image/svg+xml">
  <link rel="icon" type="image/png" sizes="32x32" href="/assets/images/favicon-32x32.png">
  <link rel="icon" type="image/png" sizes="16x16" href="/assets/images/favicon-16x16.png">
  <link rel="apple-touch-icon" sizes="180x180" href="/assets/images/apple-touch-icon.png">
  <link rel="manifest" href="/site.webmanifest">
  <meta name="theme-color" content="#C77D8A">
  <title>{{.SeoTitle}} — Magnet Moments Co.</title>
  <meta name="description" content="{{.SeoDescription}}">
  <meta name="keywords" content="{{.Title}}, custom magnets, photo magnets, gifts for him, gifts for her, gifts for family, unique gifts, fridge magnets, promotional magnets, business swag, corporate gifts, branded magnets, ships nationwide USA">
  <link rel="canonical" href="https://magnetmomentsco.us/shop/{{.Handle}}/">
  <meta property="og:type" content="product">
  <meta property="og:title" content="{{.SeoTitle}} — Magnet Moments Co.">
  <meta property="og:description" content="{{.SeoDescription}}">
  <meta property="og:url" content="https://magnetmomentsco.us/shop/{{.Handle}}/">
  <meta property="og:image" content="{{.OgImage}}">
  <meta property="product:price:amount" content="{{.MinPrice}}">
  <meta property="product:price:currency" content="{{.Currency}}">
  <meta name="twitter:card" content="summary_large_image">
  <meta name="google-site-verification" content="3Z2hasokVTsbgwJ4dRizZr9Yw7YAiFiiFErT4mAAnBo">
  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Cormorant+Garamond:ital,wght@0,400;0,600;1,400&family=Inter:wght@400;500;600;700&family=Playfair+Display:ital,wght@0,400;0,600;0,700;1,400&display=swap" rel="stylesheet">
  <link rel="stylesheet" href="/assets/css/style.css">
  <script type="application/ld+json">
  {{.Jsonld}}
  </script>
  <script async src="https://www.googletagmanager.com/gtag/js?id=G-GNPEVFLK33"></script>
  <script>window.dataLayer=window.dataLayer||[];function gtag(){dataLayer.push(arguments);}gtag('js',new Date());gtag('config','G-GNPEVFLK33');gtag('config','AW-17841486556');</script>
</head>
<body>
  <a href="#main-content" class="skip-link">Skip to main content</a>

  <!-- NAVBAR -->
  <nav class="navbar" role="navigation" aria-label="Main navigation">
    <div class="container">
      <a href="/" class="nav-logo">Magnet <span>Moments</span> Co.</a>
      <div class="nav-links" id="nav-links">
        <a href="/shop/">Shop</a>
        <a href="/events/">Events</a>
        <a href="/wholesale/">Wholesale</a>
        <a href="/about/">About</a>
        <a href="/faq/">FAQ</a>
        <a href="/contact/">Contact</a>
        <a href="https://magnetmomentsco.goaffpro.com/" target="_blank" rel="noopener">Affiliates</a>
        <a href="/shop/" class="btn btn-primary btn-sm nav-cta">Shop Now</a>
        <button class="cart-toggle" aria-label="Shopping cart">
          <svg aria-hidden="true" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="9" cy="21" r="1"/><circle cx="20" cy="21" r="1"/><path d="M1 1h4l2.68 13.39a2 2 0 0 0 2 1.61h9.72a2 2 0 0 0 2-1.61L23 6H6"/></svg>
          <span class="cart-count cart-badge" style="display:none;">0</span>
        </button>
      </div>
      <button class="nav-toggle" id="nav-toggle" aria-label="Toggle navigation" aria-expanded="false"><span></span><span></span><span></span></button>
    </div>
  </nav>
  <div class="nav-overlay" id="nav-overlay"></div>

  <main id="main-content">

  <!-- BREADCRUMB -->
  <header class="page-header page-header--compact">
    <div class="container">
      <nav class="breadcrumb" aria-label="Breadcrumb">
        <a href="/">Home</a>
        <span class="separator">/</span>
        <a href="/shop/">Shop</a>
        <span class="separator">/</span>
        <span>{{.Title}}</span>
      </nav>
    </div>
  </header>

  <!-- PRODUCT DETAIL -->
  <section class="pdp" data-product-id="{{.ProductId}}">
    <div class="container">
      <div class="pdp-layout">

        <!-- Gallery -->
        <div class="pdp-gallery">
          {{.BadgeHtml}}
          <div class="pdp-main-image">
            <img id="pdp-main-img" src="{{.MainImgUrl}}" alt="{{.MainImgAlt}}" width="800" height="800">
          </div>{{.ThumbsSection}}
        </div>

        <!-- Info -->
        <div class="pdp-info">
          <h1 class="pdp-title">{{.Title}}</h1>
          <p class="pdp-price" data-product-id="{{.ProductId}}">{{.PriceHtml}}</p>

          {{.VariantSection}}

          {{.CtaHtml}}

          <div class="pdp-description">
            {{.DescriptionHtml}}
          </div>

          <div class="pdp-features">
            <div class="pdp-feature">
              <svg aria-hidden="true" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="1" y="3" width="15" height="13"/><polygon points="16 8 20 8 23 11 23 16 16 16 16 8"/><circle cx="5.5" cy="18.5" r="2.5"/><circle cx="18.5" cy="18.5" r="2.5"/></svg>
              <span>Ships nationwide across the USA</span>
            </div>
            <div class="pdp-feature">
              <svg aria-hidden="true" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M20 7l-8-4-8 4m16 0l-8 4m8-4v10l-8 4m0-10L4 7m8 4v10M4 7v10l8 4"/></svg>
              <span>Free shipping on orders $35+</span>
            </div>
            <div class="pdp-feature">
              <svg aria-hidden="true" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M20.84 4.61a5.5 5.5 0 0 0-7.78 0L12 5.67l-1.06-1.06a5.5 5.5 0 0 0-7.78 7.78l1.06 1.06L12 21.23l7.78-7.78 1.06-1.06a5.5 5.5 0 0 0 0-7.78z"/></svg>
              <span>Perfect gift for him, her & family</span>
            </div>
            <div class="pdp-feature">
              <svg aria-hidden="true" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"/></svg>
              <span>Handcrafted with love in Austin, TX</span>
            </div>
          </div>
        </div>

      </div>
    </div>
  </section>

  <!-- RELATED PRODUCTS -->
  <section class="related-products">
    <div class="container">
      <h2 class="section-title">You May Also Like</h2>
      <div class="related-grid">
{{.RelatedHtml}}
      </div>
      <div style="text-align:center;margin-top:2rem;">
        <a href="/shop/" class="btn btn-secondary">View All Products →</a>
      </div>
    </div>
  </section>

  </main>

  <footer class="footer" role="contentinfo">
    <div class="container">
      <div class="footer-grid">
        <div class="footer-brand">
          <a href="/" class="nav-logo">Magnet <span>Moments</span> Co.</a>
          <p>Turning your favorite moments into keepsakes that stick. Handcrafted with love in Austin, Texas.</p>
          <div class="footer-social">
            <a href="https://www.facebook.com/people/Magnet-Moments-Co/61584180085647/" target="_blank" rel="noopener" aria-label="Facebook"><svg aria-hidden="true" viewBox="0 0 24 24" fill="currentColor"><path d="M18 2h-3a5 5 0 0 0-5 5v3H7v4h3v8h4v-8h3l1-4h-4V7a1 1 0 0 1 1-1h3z"/></svg></a>
            <a href="https://www.instagram.com/magnet_momentsco" target="_blank" rel="noopener" aria-label="Instagram"><svg aria-hidden="true" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><rect x="2" y="2" width="20" height="20" rx="5" ry="5"/><path d="M16 11.37A4 4 0 1 1 12.63 8 4 4 0 0 1 16 11.37z"/><line x1="17.5" y1="6.5" x2="17.51" y2="6.5"/></svg></a>
            <a href="https://www.tiktok.com/@magnetmomentscoshop" target="_blank" rel="noopener" aria-label="TikTok"><svg aria-hidden="true" viewBox="0 0 24 24" fill="currentColor"><path d="M19.59 6.69a4.83 4.83 0 0 1-3.77-4.25V2h-3.45v13.67a2.89 2.89 0 0 1-2.88 2.5 2.89 2.89 0 0 1-2.88-2.88 2.89 2.89 0 0 1 2.88-2.88c.28 0 .54.04.79.1v-3.5a6.37 6.37 0 0 0-.79-.05A6.34 6.34 0 0 0 3.15 15a6.34 6.34 0 0 0 6.34 6.34 6.34 6.34 0 0 0 6.34-6.34V8.94a8.27 8.27 0 0 0 3.76.92V6.69z"/></svg></a>
          </div>
        </div>
        <div class="footer-col"><h4>Shop</h4><ul><li><a href="/shop/">All Products</a></li><li><a href="https://dbx3hf-qe.myshopify.com/products/custom-photo-magnets" target="_blank" rel="noopener">Custom Photo Magnets</a></li><li><a href="/wholesale/">Wholesale / Bulk</a></li></ul></div>
        <div class="footer-col"><h4>Company</h4><ul><li><a href="/about/">About Us</a></li><li><a href="/events/">Event Services</a></li><li><a href="/faq/">FAQ</a></li><li><a href="/contact/">Contact Us</a></li><li><a href="https://magnetmomentsco.goaffpro.com/" target="_blank" rel="noopener">Affiliates</a></li></ul></div>
        <div class="footer-col"><h4>Policies</h4><ul><li><a href="/policies/shipping/">Shipping</a></li><li><a href="/policies/refund/">Refund</a></li><li><a href="/policies/terms/">Terms</a></li><li><a href="/policies/privacy/">Privacy</a></li></ul></div>
      </div>
      <div class="footer-bottom">
        <p>&copy; 2026 Magnet Moments Co. All rights reserved.</p>
        <div class="footer-bottom-links"><a href="/policies/terms/">Terms</a><a href="/policies/privacy/">Privacy</a><a href="mailto:alyssa@magnetmomentsco.us">alyssa@magnetmomentsco.us</a></div>
      </div>
      <p class="footer-credit">Designed by <a href="https://ajayadesign.github.io" target="_blank" rel="noopener">AjayaDesign</a> <a href="/admin/" class="admin-gear" title="Admin" aria-label="Admin"><svg width="12" height="12" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" opacity="0.3"><path d="M12 15a3 3 0 1 0 0-6 3 3 0 0 0 6 0Z"/><path d="M19.4 15a1.65 1.65 0 0 0 .33 1.82l.06.06a2 2 0 0 1-2.83 2.83l-.06-.06a1.65 1.65 0 0 0-1.82-.33 1.65 1.65 0 0 0-1 1.51V21a2 2 0 0 1-4 0v-.09A1.65 1.65 0 0 0 9 19.4a1.65 1.65 0 0 0-1.82.33l-.06.06a2 2 0 0 1-2.83-2.83l.06-.06A1.65 1.65 0 0 0 4.68 15a1.65 1.65 0 0 0-1.51-1H3a2 2 0 0 1 0-4h.09A1.65 1.65 0 0 0 4.6 9a1.65 1.65 0 0 0-.33-1.82l-.06-.06a2 2 0 0 1 2.83-2.83l.06.06A1.65 1.65 0 0 0 9 4.68a1.65 1.65 0 0 0 1-1.51V3a2 2 0 0 1 4 0v.09a1.65 1.65 0 0 0 1 1.51 1.65 1.65 0 0 0 1.82-.33l.06-.06a2 2 0 0 1 2.83 2.83l-.06.06A1.65 1.65 0 0 0 19.4 9a1.65 1.65 0 0 0 1.51 1H21a2 2 0 0 1 0 4h-.09a1.65 1.65 0 0 0-1.51 1Z"/></svg></a></p>
    </div>
  </footer>

  <button class="back-to-top" aria-label="Back to top"><svg aria-hidden="true" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2.5"><path d="M18 15l-6-6-6 6"/></svg></button>

  <script src="/assets/js/main.js"></script>

  <!-- Image gallery -->
  <script>
  (function() {
    var images = {{.ImageUrlsJson}};
    var mainImg = document.getElementById('pdp-main-img');
    var thumbs = document.querySelectorAll('.pdp-thumb');
    if (thumbs.length > 1 && mainImg) {
      thumbs.forEach(function(thumb) {
        thumb.addEventListener('click', function() {
          var idx = parseInt(this.getAttribute('data-index'), 10);
          if (images[idx]) {
            mainImg.src = images[idx];
            mainImg.alt = this.querySelector('img').alt;
            thumbs.forEach(function(t) { t.classList.remove('active'); });
            this.classList.add('active');
          }
        });
      });
    }
  })();
  </script>

  <!-- Variant selector -->
  <script>
  (function() {
    var radios = document.querySelectorAll('input[name="variant"]');
    var ctaBtn = document.querySelector('.pdp-cta[data-variant-id]');
    if (radios.length > 1 && ctaBtn) {
      radios.forEach(function(radio) {
        radio.addEventListener('change', function() {
          ctaBtn.setAttribute('data-variant-id', this.value);
          var priceEl = document.querySelector('.pdp-price');
          if (priceEl && this.dataset.price) {
            priceEl.textContent = this.dataset.price;
          }
        });
      });
    }
  })();
  </script>

  <!-- ========== CART DRAWER ========== -->
  <div id="cart-overlay"></div>
  <aside id="cart-drawer" aria-label="Shopping cart" role="dialog" aria-modal="true">
    <div class="cart-drawer-header">
      <h3>Your Cart</h3>
      <button class="cart-close" aria-label="Close cart">
        <svg aria-hidden="true" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><line x1="18" y1="6" x2="6" y2="18"/><line x1="6" y1="6" x2="18" y2="18"/></svg>
      </button>
    </div>
    <div id="cart-items"></div>
    <div id="cart-empty">
      <svg aria-hidden="true" width="48" height="48" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5"><circle cx="9" cy="21" r="1"/><circle cx="20" cy="21" r="1"/><path d="M1 1h4l2.68 13.39a2 2 0 0 0 2 1.61h9.72a2 2 0 0 0 2-1.61L23 6H6"/></svg>
      <p>Your cart is empty</p>
      <a href="/shop/" class="btn btn-primary btn-sm">Start Shopping</a>
    </div>
    <div id="cart-footer">
      <div class="cart-subtotal-row">
        <span class="cart-subtotal-label">Subtotal</span>
        <span id="cart-subtotal">$0.00</span>
      </div>
      <p class="cart-note">Shipping & taxes calculated at checkout</p>
      <a id="cart-checkout-btn" href="#" target="_blank" rel="noopener">Checkout →</a>
    </div>
  </aside>
  <script src="/assets/js/shopify-cart.js"></script>
  <script src="/assets/js/products.js"></script>
  <script src="/assets/js/mm-tracker.js" defer></script>
</body>
</html>`))
