package cmd

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	configlibsql "magnetmoments-sync/lib/configutil/libsql"
	"magnetmoments-sync/lib/restyutil"
	"magnetmoments-sync/lib/serviceutil"
	"magnetmoments-sync/lib/shopify"
	"magnetmoments-sync/lib/synclog"
	synclogdb "magnetmoments-sync/lib/synclog/db"
	"magnetmoments-sync/lib/telemetry"
	"magnetmoments-sync/services/sitegen"
)

func init() {
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch the catalog and regenerate the site from it.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := serviceutil.SignalContext()

		err := telemetry.SetupFromEnv(ctx, "magnetsync")
		switch {
		case errors.Is(err, fs.ErrNotExist):
			slog.Debug("no telemetry config found, exporters stay off")
		case err != nil:
			serviceutil.Fatal("failed to setup telemetry", err)
		default:
			defer telemetry.Shutdown(context.Background())
			telemetry.InstrumentPerfStats(ctx)
		}

		var output restyutil.InstrumentOutput
		if config.Debug.HttpDumpDir != "" {
			output = restyutil.NewFilesystemOutput(config.Debug.HttpDumpDir)
		}

		options := sitegen.Options{
			Storefront: shopify.NewClient(shopify.ClientOptions{
				Domain: config.Shopify.Domain,
				Token:  config.Shopify.Token,
				Output: output,
			}),
			SiteDir: config.Site.Dir,
		}

		if config.Journal != (configlibsql.Struct{}) {
			database, err := config.Journal.OpenDB(synclogdb.Schema)
			if err != nil {
				serviceutil.Fatal("failed to open sync journal", err)
			}
			defer database.Close()

			journal := synclog.NewStore(database)
			options.Journal = &journal
		}

		summary, err := sitegen.NewService(options).Sync(ctx)
		if err != nil {
			serviceutil.Fatal("sync failed", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"products", "written", "removed", "failed", "outcome", "took"})
		t.AppendRow(table.Row{
			summary.ProductCount,
			summary.PagesWritten,
			summary.PagesRemoved,
			summary.InjectionsFailed,
			summary.Outcome,
			summary.Finished.Sub(summary.Started).Round(time.Millisecond),
		})
		t.Render()
	},
}
