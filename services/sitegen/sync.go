package sitegen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"magnetmoments-sync/lib/shopify"
	"magnetmoments-sync/lib/synclog"
)

var tracer = otel.Tracer("services/sitegen")

// Storefront is the catalog source, satisfied by shopify.Client.
type Storefront interface {
	Domain() string
	FetchProducts(ctx context.Context) ([]shopify.Product, error)
}

type Options struct {
	Storefront Storefront
	// SiteDir is the root of the site checkout, the directory holding
	// index.html and shop/.
	SiteDir string
	// Journal records one row per sync when set, nil disables it.
	Journal *synclog.Store
}

type Service struct {
	options Options
	render  Renderer
}

func NewService(options Options) Service {
	return Service{
		options: options,
		render:  Renderer{Domain: options.Storefront.Domain()},
	}
}

// Summary is what one sync did.
type Summary struct {
	Started          time.Time
	Finished         time.Time
	ProductCount     int
	PagesWritten     int
	PagesRemoved     int
	InjectionsFailed int
	Outcome          string
}

// Snapshot is the catalog dump the site's client scripts read at
// runtime.
type Snapshot struct {
	LastUpdated   time.Time         `json:"lastUpdated"`
	ShopifyDomain string            `json:"shopifyDomain"`
	ProductCount  int               `json:"productCount"`
	Products      []shopify.Product `json:"products"`
}

// Sync fetches the catalog and regenerates everything derived from
// it. An empty catalog is not an error, the run is recorded and the
// site is left exactly as it was. Pages whose markers have gone
// missing are skipped and make the outcome partial rather than
// failing the run.
func (s Service) Sync(ctx context.Context) (Summary, error) {
	ctx, span := tracer.Start(ctx, "Sync")
	defer span.End()

	summary := Summary{Started: time.Now().UTC()}

	products, err := s.options.Storefront.FetchProducts(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch products")
		return summary, fmt.Errorf("fetch products: %w", err)
	}
	summary.ProductCount = len(products)
	slog.InfoContext(ctx, "fetched catalog",
		"domain", s.options.Storefront.Domain(), "count", len(products))

	if len(products) == 0 {
		slog.WarnContext(ctx, "storefront returned no products, leaving the site untouched")
		summary.Outcome = synclog.OutcomeEmpty
		summary.Finished = time.Now().UTC()
		s.journal(ctx, summary)
		return summary, nil
	}

	for _, p := range products {
		if TitleOnlyCustom(p) {
			slog.WarnContext(ctx, "product classified as custom by title only, tag it in the storefront admin",
				"handle", p.Handle)
		}
	}

	if err := s.writeSnapshot(ctx, products); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write catalog snapshot")
		return summary, fmt.Errorf("catalog snapshot: %w", err)
	}

	written, removed, err := ReconcilePages(filepath.Join(s.options.SiteDir, "shop"), products, s.render)
	summary.PagesWritten, summary.PagesRemoved = written, removed
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to write product pages")
		return summary, fmt.Errorf("product pages: %w", err)
	}

	failed, err := s.updateShopPage(ctx, products)
	summary.InjectionsFailed += failed
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to update shop page")
		return summary, err
	}

	failed, err = s.updateHomePage(ctx, products)
	summary.InjectionsFailed += failed
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to update home page")
		return summary, err
	}

	summary.Outcome = synclog.OutcomeOk
	if summary.InjectionsFailed > 0 {
		summary.Outcome = synclog.OutcomePartial
	}
	summary.Finished = time.Now().UTC()
	s.journal(ctx, summary)

	slog.InfoContext(ctx, "sync complete",
		"outcome", summary.Outcome,
		"products", summary.ProductCount,
		"pages_written", summary.PagesWritten,
		"pages_removed", summary.PagesRemoved,
		"injections_failed", summary.InjectionsFailed)
	return summary, nil
}

func (s Service) writeSnapshot(ctx context.Context, products []shopify.Product) error {
	ctx, span := tracer.Start(ctx, "writeSnapshot")
	defer span.End()

	dataDir := filepath.Join(s.options.SiteDir, "_data")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	contents := encodeJSON(Snapshot{
		LastUpdated:   time.Now().UTC(),
		ShopifyDomain: s.options.Storefront.Domain(),
		ProductCount:  len(products),
		Products:      products,
	}, "  ")

	path := filepath.Join(dataDir, "products.json")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		return err
	}
	slog.InfoContext(ctx, "saved catalog snapshot", "path", path)
	return nil
}

func (s Service) updateShopPage(ctx context.Context, products []shopify.Product) (failed int, err error) {
	ctx, span := tracer.Start(ctx, "updateShopPage")
	defer span.End()

	cards := make([]string, len(products))
	for i, p := range products {
		cards[i] = s.render.Card(p, Normalize(p), true)
	}

	path := filepath.Join(s.options.SiteDir, "shop", "index.html")
	ok, err := spliceFile(ctx, path, ProductsStartMarker, ProductsEndMarker, strings.Join(cards, "\n\n"))
	if err != nil {
		return failed, fmt.Errorf("shop page: %w", err)
	}
	if !ok {
		failed++
	}

	ok, err = upsertJSONLDFile(ctx, path, JSONLDScript(ItemListJSONLD(products)))
	if err != nil {
		return failed, fmt.Errorf("shop page structured data: %w", err)
	}
	if !ok {
		failed++
	}
	return failed, nil
}

func (s Service) updateHomePage(ctx context.Context, products []shopify.Product) (failed int, err error) {
	ctx, span := tracer.Start(ctx, "updateHomePage")
	defer span.End()

	featured := Featured(products)
	cards := make([]string, len(featured))
	for i, p := range featured {
		cards[i] = s.render.Card(p, Normalize(p), false)
	}

	path := filepath.Join(s.options.SiteDir, "index.html")
	ok, err := spliceFile(ctx, path, FeaturedStartMarker, FeaturedEndMarker, strings.Join(cards, "\n\n"))
	if err != nil {
		return failed, fmt.Errorf("home page: %w", err)
	}
	if !ok {
		failed++
	}

	ok, err = upsertJSONLDFile(ctx, path, JSONLDScript(ItemListJSONLD(featured)))
	if err != nil {
		return failed, fmt.Errorf("home page structured data: %w", err)
	}
	if !ok {
		failed++
	}
	return failed, nil
}

func (s Service) journal(ctx context.Context, summary Summary) {
	if s.options.Journal == nil {
		return
	}
	err := s.options.Journal.Record(ctx, synclog.Run{
		StartedAt:        summary.Started,
		FinishedAt:       summary.Finished,
		Domain:           s.options.Storefront.Domain(),
		ProductCount:     summary.ProductCount,
		PagesWritten:     summary.PagesWritten,
		PagesRemoved:     summary.PagesRemoved,
		InjectionsFailed: summary.InjectionsFailed,
		Outcome:          summary.Outcome,
	})
	if err != nil {
		slog.WarnContext(ctx, "failed to record sync run", "err", err)
	}
}
