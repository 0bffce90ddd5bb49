package storage

import (
	"errors"
	"testing"

	"mnemos/internal/model"
)

func TestRunCodecRoundTrip(t *testing.T) {
	run := model.RunRecord{
		VersionedRecord: CurrentVersions(),
		ID:              "run-1",
		Kind:            model.RunKindSweep,
		Seed:            42,
		FlipCounts:      []int{0, 3, 6},
		Repetitions:     200,
	}

	payload, err := EncodeRun(run)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeRun(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != run.ID || got.Seed != run.Seed || len(got.FlipCounts) != 3 {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestDecodeRejectsVersionMismatch(t *testing.T) {
	run := model.RunRecord{ID: "run-1"}
	run.SchemaVersion = CurrentSchemaVersion + 1
	run.CodecVersion = CurrentCodecVersion

	payload, err := EncodeRun(run)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRun(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestDemoReportCodecRoundTrip(t *testing.T) {
	report := model.DemoReport{
		VersionedRecord: CurrentVersions(),
		RunID:           "run-1",
		Outcomes: []model.DemoOutcome{
			{Pattern: "a", FlipCount: 10, Presented: []float64{1, -1}, Retrieved: []float64{1, -1}, SquaredError: 0},
		},
	}

	payload, err := EncodeDemoReport(report)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeDemoReport(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RunID != "run-1" || len(got.Outcomes) != 1 || got.Outcomes[0].Pattern != "a" {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestSweepSeriesCodecRoundTrip(t *testing.T) {
	series := model.SweepSeries{
		VersionedRecord: CurrentVersions(),
		RunID:           "run-1",
		Points:          []model.SweepPoint{{FlipCount: 3, FlipPercent: 6.1, SuccessPercent: 99}},
	}

	payload, err := EncodeSweepSeries(series)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeSweepSeries(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.RunID != "run-1" || len(got.Points) != 1 || got.Points[0].SuccessPercent != 99 {
		t.Fatalf("unexpected round trip: %+v", got)
	}

	var stale model.SweepSeries
	stale.RunID = "run-2"
	payload, err = EncodeSweepSeries(stale)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeSweepSeries(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch for unstamped record, got %v", err)
	}
}
