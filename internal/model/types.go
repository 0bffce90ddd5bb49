package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

const (
	RunKindDemo  = "demo"
	RunKindSweep = "sweep"
)

// RunRecord describes one recall run: either a single noisy-recall demo or a
// full performance sweep across corruption levels.
type RunRecord struct {
	VersionedRecord
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	CreatedAtUTC string `json:"created_at_utc"`
	Seed         int64  `json:"seed"`
	Units        int    `json:"units"`
	Patterns     int    `json:"patterns"`
	Sweeps       int    `json:"sweeps"`
	FlipCount    int    `json:"flip_count,omitempty"`
	FlipCounts   []int  `json:"flip_counts,omitempty"`
	Repetitions  int    `json:"repetitions,omitempty"`
	Workers      int    `json:"workers,omitempty"`
}

// DemoOutcome is the result of corrupting and recalling one stored pattern.
type DemoOutcome struct {
	Pattern      string    `json:"pattern"`
	FlipCount    int       `json:"flip_count"`
	Presented    []float64 `json:"presented"`
	Retrieved    []float64 `json:"retrieved"`
	SquaredError float64   `json:"squared_error"`
}

type DemoReport struct {
	VersionedRecord
	RunID    string        `json:"run_id"`
	Outcomes []DemoOutcome `json:"outcomes"`
}

// SweepPoint is one sample of the recall-performance curve.
type SweepPoint struct {
	FlipCount      int     `json:"flip_count"`
	FlipPercent    float64 `json:"flip_percent"`
	SuccessPercent float64 `json:"success_percent"`
}

type SweepSeries struct {
	VersionedRecord
	RunID  string       `json:"run_id"`
	Points []SweepPoint `json:"points"`
}
