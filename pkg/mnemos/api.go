// Package mnemos exposes a discrete Hopfield network used as a
// content-addressable memory: it stores a small set of bipolar patterns in a
// weight matrix and recovers the closest stored pattern from a corrupted
// presentation. The facade wires pattern storage, recall, evaluation,
// persistence and rendering together for demo and performance-sweep runs.
package mnemos

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"mnemos/internal/hopfield"
	"mnemos/internal/model"
	"mnemos/internal/pattern"
	"mnemos/internal/render"
	"mnemos/internal/stats"
	"mnemos/internal/storage"
)

const (
	defaultDBPath       = "mnemos.db"
	defaultArtifactsDir = "exports"
	defaultRepetitions  = 200
)

type Options struct {
	StoreKind    string
	DBPath       string
	ArtifactsDir string
}

// Client owns a simulation session: the reference pattern set, the weight
// matrix built from it, and a store for run records.
type Client struct {
	store        storage.Store
	artifactsDir string

	set     *pattern.Set
	weights *hopfield.Weights

	initOnce sync.Once
	initErr  error
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	artifactsDir := opts.ArtifactsDir
	if artifactsDir == "" {
		artifactsDir = defaultArtifactsDir
	}

	set := pattern.Letters()
	weights, err := hopfield.Build(set)
	if err != nil {
		return nil, fmt.Errorf("build weights: %w", err)
	}

	return &Client{
		store:        store,
		artifactsDir: artifactsDir,
		set:          set,
		weights:      weights,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Set returns the stored pattern set of this session.
func (c *Client) Set() *pattern.Set { return c.set }

// Weights returns the weight matrix of this session for inspection.
func (c *Client) Weights() *hopfield.Weights { return c.weights }

func (c *Client) Reset(ctx context.Context) error {
	if err := c.init(ctx); err != nil {
		return err
	}
	return c.store.Reset(ctx)
}

func (c *Client) init(ctx context.Context) error {
	c.initOnce.Do(func() {
		c.initErr = c.store.Init(ctx)
	})
	return c.initErr
}

type DemoRequest struct {
	FlipCount int
	Sweeps    int
	Seed      int64
	RenderTo  string // directory for the recall figure; empty disables rendering
}

type DemoSummary struct {
	RunID      string
	Outcomes   []model.DemoOutcome
	FigurePath string
}

// Demo corrupts every stored pattern at the requested flip count, recalls
// each one, and persists the outcomes. The original noisy-recall demo.
func (c *Client) Demo(ctx context.Context, req DemoRequest) (DemoSummary, error) {
	if err := c.init(ctx); err != nil {
		return DemoSummary{}, err
	}
	if req.Sweeps < 1 {
		req.Sweeps = 1
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	outcomes := make([]model.DemoOutcome, 0, c.set.Len())
	for _, st := range c.set.All() {
		noisy, err := pattern.Flip(rng, st.Data, req.FlipCount)
		if err != nil {
			return DemoSummary{}, err
		}
		recalled, err := hopfield.Recall(c.weights, noisy, req.Sweeps, rng)
		if err != nil {
			return DemoSummary{}, err
		}
		sqErr, err := stats.SquaredError(st.Data, recalled)
		if err != nil {
			return DemoSummary{}, err
		}
		outcomes = append(outcomes, model.DemoOutcome{
			Pattern:      st.Name,
			FlipCount:    req.FlipCount,
			Presented:    noisy,
			Retrieved:    recalled,
			SquaredError: sqErr,
		})
	}

	run := model.RunRecord{
		VersionedRecord: storage.CurrentVersions(),
		ID:              newRunID(),
		Kind:            model.RunKindDemo,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339Nano),
		Seed:            seed,
		Units:           c.set.Units(),
		Patterns:        c.set.Len(),
		Sweeps:          req.Sweeps,
		FlipCount:       req.FlipCount,
	}
	if err := c.store.SaveRun(ctx, run); err != nil {
		return DemoSummary{}, err
	}
	report := model.DemoReport{
		VersionedRecord: storage.CurrentVersions(),
		RunID:           run.ID,
		Outcomes:        outcomes,
	}
	if err := c.store.SaveDemoReport(ctx, report); err != nil {
		return DemoSummary{}, err
	}

	figure := ""
	if req.RenderTo != "" {
		if err := os.MkdirAll(req.RenderTo, 0o755); err != nil {
			return DemoSummary{}, err
		}
		figure = filepath.Join(req.RenderTo, run.ID+"_recall.png")
		if err := render.DemoGrid(c.set, outcomes, figure); err != nil {
			return DemoSummary{}, fmt.Errorf("render recall figure: %w", err)
		}
	}

	return DemoSummary{RunID: run.ID, Outcomes: outcomes, FigurePath: figure}, nil
}

type SweepRequest struct {
	FlipCounts  []int // explicit corruption levels; derived from FlipStep when empty
	FlipStep    int
	Repetitions int
	Sweeps      int
	Workers     int
	Seed        int64
	RenderTo    string
}

type SweepSummary struct {
	RunID      string
	Points     []model.SweepPoint
	FigurePath string
}

// Sweep estimates the recall-performance curve across corruption levels and
// persists the resulting series.
func (c *Client) Sweep(ctx context.Context, req SweepRequest) (SweepSummary, error) {
	if err := c.init(ctx); err != nil {
		return SweepSummary{}, err
	}
	if req.Repetitions < 1 {
		req.Repetitions = defaultRepetitions
	}
	if req.Sweeps < 1 {
		req.Sweeps = 1
	}
	if req.Workers < 1 {
		req.Workers = runtime.NumCPU()
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	flipCounts := req.FlipCounts
	if len(flipCounts) == 0 {
		flipCounts = stats.DefaultFlipCounts(c.set.Units(), req.FlipStep)
	}

	points, err := stats.PerformanceSweep(ctx, c.set, c.weights, stats.SweepConfig{
		FlipCounts:  flipCounts,
		Repetitions: req.Repetitions,
		Sweeps:      req.Sweeps,
		Workers:     req.Workers,
		Seed:        seed,
	})
	if err != nil {
		return SweepSummary{}, err
	}

	run := model.RunRecord{
		VersionedRecord: storage.CurrentVersions(),
		ID:              newRunID(),
		Kind:            model.RunKindSweep,
		CreatedAtUTC:    time.Now().UTC().Format(time.RFC3339Nano),
		Seed:            seed,
		Units:           c.set.Units(),
		Patterns:        c.set.Len(),
		Sweeps:          req.Sweeps,
		FlipCounts:      flipCounts,
		Repetitions:     req.Repetitions,
		Workers:         req.Workers,
	}
	if err := c.store.SaveRun(ctx, run); err != nil {
		return SweepSummary{}, err
	}
	series := model.SweepSeries{
		VersionedRecord: storage.CurrentVersions(),
		RunID:           run.ID,
		Points:          points,
	}
	if err := c.store.SaveSweepSeries(ctx, series); err != nil {
		return SweepSummary{}, err
	}

	figure := ""
	if req.RenderTo != "" {
		if err := os.MkdirAll(req.RenderTo, 0o755); err != nil {
			return SweepSummary{}, err
		}
		figure = filepath.Join(req.RenderTo, run.ID+"_performance.png")
		if err := render.Curve(points, figure); err != nil {
			return SweepSummary{}, fmt.Errorf("render performance curve: %w", err)
		}
	}

	return SweepSummary{RunID: run.ID, Points: points, FigurePath: figure}, nil
}

type RunsRequest struct {
	Limit int
}

// Runs lists recorded runs, newest first.
func (c *Client) Runs(ctx context.Context, req RunsRequest) ([]model.RunRecord, error) {
	if err := c.init(ctx); err != nil {
		return nil, err
	}
	runs, err := c.store.ListRuns(ctx)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
		runs[i], runs[j] = runs[j], runs[i]
	}
	if req.Limit > 0 && len(runs) > req.Limit {
		runs = runs[:req.Limit]
	}
	return runs, nil
}

type ExportRequest struct {
	RunID  string
	Latest bool
	OutDir string
}

type ExportSummary struct {
	RunID     string
	Directory string
	Figures   []string
}

// Export writes a run's record, results and figures under a per-run
// directory.
func (c *Client) Export(ctx context.Context, req ExportRequest) (ExportSummary, error) {
	if err := c.init(ctx); err != nil {
		return ExportSummary{}, err
	}

	runID := req.RunID
	if req.Latest {
		runs, err := c.Runs(ctx, RunsRequest{Limit: 1})
		if err != nil {
			return ExportSummary{}, err
		}
		if len(runs) == 0 {
			return ExportSummary{}, fmt.Errorf("no runs recorded")
		}
		runID = runs[0].ID
	}
	if runID == "" {
		return ExportSummary{}, fmt.Errorf("run id is required (or use latest)")
	}

	run, ok, err := c.store.GetRun(ctx, runID)
	if err != nil {
		return ExportSummary{}, err
	}
	if !ok {
		return ExportSummary{}, fmt.Errorf("run not found: %s", runID)
	}

	var report *model.DemoReport
	if r, ok, err := c.store.GetDemoReport(ctx, runID); err != nil {
		return ExportSummary{}, err
	} else if ok {
		report = &r
	}
	var series *model.SweepSeries
	if s, ok, err := c.store.GetSweepSeries(ctx, runID); err != nil {
		return ExportSummary{}, err
	} else if ok {
		series = &s
	}

	outDir := req.OutDir
	if outDir == "" {
		outDir = c.artifactsDir
	}
	dir, err := stats.WriteRunArtifacts(outDir, run, report, series)
	if err != nil {
		return ExportSummary{}, err
	}

	var figures []string
	if report != nil {
		path := filepath.Join(dir, "recall.png")
		if err := render.DemoGrid(c.set, report.Outcomes, path); err != nil {
			return ExportSummary{}, fmt.Errorf("render recall figure: %w", err)
		}
		figures = append(figures, path)
	}
	if series != nil {
		path := filepath.Join(dir, "performance.png")
		if err := render.Curve(series.Points, path); err != nil {
			return ExportSummary{}, fmt.Errorf("render performance curve: %w", err)
		}
		figures = append(figures, path)
	}

	return ExportSummary{RunID: runID, Directory: dir, Figures: figures}, nil
}

func newRunID() string {
	return uuid.NewString()
}
