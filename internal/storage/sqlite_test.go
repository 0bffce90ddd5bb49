//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"testing"

	"mnemos/internal/model"
)

func newSQLiteTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "mnemos.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStoreRequiresPath(t *testing.T) {
	store := NewSQLiteStore("")
	if err := store.Init(context.Background()); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteTestStore(t)

	run := model.RunRecord{
		VersionedRecord: CurrentVersions(),
		ID:              "run-1",
		Kind:            model.RunKindSweep,
		CreatedAtUTC:    "2026-01-01T00:00:00Z",
		Seed:            42,
		FlipCounts:      []int{0, 3},
		Repetitions:     200,
	}
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save run: %v", err)
	}
	got, ok, err := store.GetRun(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("get run: ok=%v err=%v", ok, err)
	}
	if got.Seed != 42 || len(got.FlipCounts) != 2 {
		t.Fatalf("unexpected run: %+v", got)
	}

	series := model.SweepSeries{
		VersionedRecord: CurrentVersions(),
		RunID:           "run-1",
		Points:          []model.SweepPoint{{FlipCount: 0, SuccessPercent: 100}},
	}
	if err := store.SaveSweepSeries(ctx, series); err != nil {
		t.Fatalf("save series: %v", err)
	}
	gotSeries, ok, err := store.GetSweepSeries(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("get series: ok=%v err=%v", ok, err)
	}
	if len(gotSeries.Points) != 1 {
		t.Fatalf("unexpected series: %+v", gotSeries)
	}

	report := model.DemoReport{
		VersionedRecord: CurrentVersions(),
		RunID:           "run-1",
		Outcomes:        []model.DemoOutcome{{Pattern: "a", SquaredError: 0}},
	}
	if err := store.SaveDemoReport(ctx, report); err != nil {
		t.Fatalf("save report: %v", err)
	}
	gotReport, ok, err := store.GetDemoReport(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("get report: ok=%v err=%v", ok, err)
	}
	if len(gotReport.Outcomes) != 1 {
		t.Fatalf("unexpected report: %+v", gotReport)
	}
}

func TestSQLiteStoreListAndReset(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteTestStore(t)

	for _, run := range []model.RunRecord{
		{VersionedRecord: CurrentVersions(), ID: "b", CreatedAtUTC: "2026-01-02T00:00:00Z"},
		{VersionedRecord: CurrentVersions(), ID: "a", CreatedAtUTC: "2026-01-01T00:00:00Z"},
	} {
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 2 || runs[0].ID != "a" || runs[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", runs)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	runs, err = store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store after reset, got %d", len(runs))
	}
}
