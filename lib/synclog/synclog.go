package synclog

import (
	"context"
	"database/sql"
	"time"

	"magnetmoments-sync/lib/synclog/db"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("lib/synclog")

const (
	OutcomeOk = "ok"
	// the storefront returned zero products, nothing was generated
	OutcomeEmpty = "empty"
	// pages were generated but at least one marker injection failed
	OutcomePartial = "partial"
)

// Run is one completed sync, successful or not.
type Run struct {
	StartedAt        time.Time
	FinishedAt       time.Time
	Domain           string
	ProductCount     int
	PagesWritten     int
	PagesRemoved     int
	InjectionsFailed int
	Outcome          string
}

// Store keeps a history of sync runs. Deployments that care about it
// point it at a local sqlite file or a remote libsql database, CI
// runners have no disk that outlives the job so they use the latter.
type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

func (s Store) Record(ctx context.Context, run Run) error {
	ctx, span := tracer.Start(ctx, "Record")
	defer span.End()

	err := s.qry.CreateSyncRun(ctx, db.CreateSyncRunParams{
		StartedAt:        run.StartedAt.Unix(),
		FinishedAt:       run.FinishedAt.Unix(),
		Domain:           run.Domain,
		ProductCount:     int64(run.ProductCount),
		PagesWritten:     int64(run.PagesWritten),
		PagesRemoved:     int64(run.PagesRemoved),
		InjectionsFailed: int64(run.InjectionsFailed),
		Outcome:          run.Outcome,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to record sync run")
		return err
	}
	return nil
}

func (s Store) Recent(ctx context.Context, limit int64) ([]Run, error) {
	ctx, span := tracer.Start(ctx, "Recent")
	defer span.End()

	rows, err := s.qry.GetRecentSyncRuns(ctx, limit)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to query sync runs")
		return nil, err
	}

	runs := make([]Run, len(rows))
	for i, r := range rows {
		runs[i] = Run{
			StartedAt:        time.Unix(r.StartedAt, 0).UTC(),
			FinishedAt:       time.Unix(r.FinishedAt, 0).UTC(),
			Domain:           r.Domain,
			ProductCount:     int(r.ProductCount),
			PagesWritten:     int(r.PagesWritten),
			PagesRemoved:     int(r.PagesRemoved),
			InjectionsFailed: int(r.InjectionsFailed),
			Outcome:          r.Outcome,
		}
	}
	return runs, nil
}
