package cmd

import (
	"errors"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	configlibsql "magnetmoments-sync/lib/configutil/libsql"
	"magnetmoments-sync/lib/serviceutil"
	"magnetmoments-sync/lib/synclog"
	synclogdb "magnetmoments-sync/lib/synclog/db"
)

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent sync runs from the journal.",
	Run: func(cmd *cobra.Command, args []string) {
		if config.Journal == (configlibsql.Struct{}) {
			serviceutil.Fatal("no journal configured",
				errors.New("set journal.file or journal.url in the config"))
		}

		database, err := config.Journal.OpenDB(synclogdb.Schema)
		if err != nil {
			serviceutil.Fatal("failed to open sync journal", err)
		}
		defer database.Close()

		runs, err := synclog.NewStore(database).Recent(cmd.Context(), int64(historyLimit))
		if err != nil {
			serviceutil.Fatal("failed to read sync journal", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"started", "domain", "products", "written", "removed", "failed", "outcome", "took"})
		for _, run := range runs {
			t.AppendRow(table.Row{
				run.StartedAt.Format(time.RFC3339),
				run.Domain,
				run.ProductCount,
				run.PagesWritten,
				run.PagesRemoved,
				run.InjectionsFailed,
				run.Outcome,
				run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond),
			})
		}
		t.Render()
	},
}
