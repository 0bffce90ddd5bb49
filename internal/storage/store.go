package storage

import (
	"context"

	"mnemos/internal/model"
)

// Store defines persistence operations for recall runs and their results.
type Store interface {
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	ListRuns(ctx context.Context) ([]model.RunRecord, error)
	SaveDemoReport(ctx context.Context, report model.DemoReport) error
	GetDemoReport(ctx context.Context, runID string) (model.DemoReport, bool, error)
	SaveSweepSeries(ctx context.Context, series model.SweepSeries) error
	GetSweepSeries(ctx context.Context, runID string) (model.SweepSeries, bool, error)
}
