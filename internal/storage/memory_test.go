package storage

import (
	"context"
	"testing"

	"mnemos/internal/model"
)

func newInitializedStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	return store
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	store := NewMemoryStore()
	if err := store.SaveRun(context.Background(), model.RunRecord{ID: "r"}); err == nil {
		t.Fatal("expected error before init")
	}
}

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	run := model.RunRecord{ID: "run-1", Kind: model.RunKindDemo, CreatedAtUTC: "2026-01-01T00:00:00Z", Seed: 7}
	if err := store.SaveRun(ctx, run); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.GetRun(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Seed != 7 || got.Kind != model.RunKindDemo {
		t.Fatalf("unexpected run: %+v", got)
	}

	if _, ok, err := store.GetRun(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing run: ok=%v err=%v", ok, err)
	}
}

func TestMemoryStoreListRunsOrdered(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	for _, run := range []model.RunRecord{
		{ID: "b", CreatedAtUTC: "2026-01-02T00:00:00Z"},
		{ID: "a", CreatedAtUTC: "2026-01-01T00:00:00Z"},
		{ID: "c", CreatedAtUTC: "2026-01-03T00:00:00Z"},
	} {
		if err := store.SaveRun(ctx, run); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 3 || runs[0].ID != "a" || runs[1].ID != "b" || runs[2].ID != "c" {
		t.Fatalf("unexpected order: %+v", runs)
	}
}

func TestMemoryStoreReportAndSeriesRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	report := model.DemoReport{RunID: "run-1", Outcomes: []model.DemoOutcome{{Pattern: "a", SquaredError: 4}}}
	if err := store.SaveDemoReport(ctx, report); err != nil {
		t.Fatalf("save report: %v", err)
	}
	gotReport, ok, err := store.GetDemoReport(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("get report: ok=%v err=%v", ok, err)
	}
	if len(gotReport.Outcomes) != 1 || gotReport.Outcomes[0].Pattern != "a" {
		t.Fatalf("unexpected report: %+v", gotReport)
	}

	series := model.SweepSeries{RunID: "run-1", Points: []model.SweepPoint{{FlipCount: 0, SuccessPercent: 100}}}
	if err := store.SaveSweepSeries(ctx, series); err != nil {
		t.Fatalf("save series: %v", err)
	}
	gotSeries, ok, err := store.GetSweepSeries(ctx, "run-1")
	if err != nil || !ok {
		t.Fatalf("get series: ok=%v err=%v", ok, err)
	}
	if len(gotSeries.Points) != 1 || gotSeries.Points[0].SuccessPercent != 100 {
		t.Fatalf("unexpected series: %+v", gotSeries)
	}

	if _, ok, _ := store.GetSweepSeries(ctx, "missing"); ok {
		t.Fatal("missing series reported present")
	}
}

func TestMemoryStoreReset(t *testing.T) {
	ctx := context.Background()
	store := newInitializedStore(t)

	if err := store.SaveRun(ctx, model.RunRecord{ID: "run-1"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("expected empty store after reset, got %d runs", len(runs))
	}
}
