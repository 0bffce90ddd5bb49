package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"mnemos/internal/storage"
	mnemosapi "mnemos/pkg/mnemos"
)

const defaultImagesDir = "images"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	case "demo":
		return runDemo(ctx, args[1:])
	case "sweep":
		return runSweep(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mnemos.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}

	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mnemos.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := mnemosapi.New(mnemosapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err := client.Reset(ctx); err != nil {
		return err
	}

	fmt.Printf("reset store=%s\n", *storeKind)
	return nil
}

func runDemo(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mnemos.db", "sqlite database path")
	flips := fs.Int("flips", 10, "number of pixels to flip in each pattern")
	sweeps := fs.Int("sweeps", 1, "number of asynchronous update sweeps")
	seed := fs.Int64("seed", 0, "random seed (0 means time-based)")
	images := fs.String("images", defaultImagesDir, "directory for figures (empty disables rendering)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := mnemosapi.New(mnemosapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Demo(ctx, mnemosapi.DemoRequest{
		FlipCount: *flips,
		Sweeps:    *sweeps,
		Seed:      *seed,
		RenderTo:  *images,
	})
	if err != nil {
		return err
	}

	for _, out := range summary.Outcomes {
		fmt.Printf("recall error on pattern %s: %g\n", out.Pattern, out.SquaredError)
	}
	if summary.FigurePath != "" {
		fmt.Printf("figure written to %s\n", summary.FigurePath)
	}
	fmt.Printf("run recorded id=%s\n", summary.RunID)
	return nil
}

func runSweep(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("sweep", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mnemos.db", "sqlite database path")
	configPath := fs.String("config", "", "JSON sweep config file")
	step := fs.Int("step", 3, "flip-count stride up to half the unit count")
	reps := fs.Int("reps", 200, "repetitions per corruption level")
	sweeps := fs.Int("sweeps", 1, "number of asynchronous update sweeps")
	workers := fs.Int("workers", 0, "parallel trial workers (0 means all CPUs)")
	seed := fs.Int64("seed", 0, "random seed (0 means time-based)")
	images := fs.String("images", defaultImagesDir, "directory for figures (empty disables rendering)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := mnemosapi.SweepRequest{
		FlipStep:    *step,
		Repetitions: *reps,
		Sweeps:      *sweeps,
		Workers:     *workers,
		Seed:        *seed,
		RenderTo:    *images,
	}
	if *configPath != "" {
		loaded, err := loadSweepRequestFromConfig(*configPath)
		if err != nil {
			return err
		}
		loaded.RenderTo = req.RenderTo
		req = loaded
	}

	client, err := mnemosapi.New(mnemosapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Sweep(ctx, req)
	if err != nil {
		return err
	}

	for _, pt := range summary.Points {
		fmt.Printf("flips=%2d (%5.1f%%) recall performance %6.2f%%\n", pt.FlipCount, pt.FlipPercent, pt.SuccessPercent)
	}
	if summary.FigurePath != "" {
		fmt.Printf("figure written to %s\n", summary.FigurePath)
	}
	fmt.Printf("run recorded id=%s\n", summary.RunID)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mnemos.db", "sqlite database path")
	limit := fs.Int("limit", 20, "maximum runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := mnemosapi.New(mnemosapi.Options{StoreKind: *storeKind, DBPath: *dbPath})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	runs, err := client.Runs(ctx, mnemosapi.RunsRequest{Limit: *limit})
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, run := range runs {
		switch run.Kind {
		case "sweep":
			fmt.Printf("%s  %s  %s  seed=%d reps=%d levels=%d\n",
				run.ID, run.CreatedAtUTC, run.Kind, run.Seed, run.Repetitions, len(run.FlipCounts))
		default:
			fmt.Printf("%s  %s  %s  seed=%d flips=%d\n",
				run.ID, run.CreatedAtUTC, run.Kind, run.Seed, run.FlipCount)
		}
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "mnemos.db", "sqlite database path")
	runID := fs.String("run", "", "run id to export")
	latest := fs.Bool("latest", false, "export the most recent run")
	outDir := fs.String("out", "exports", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := mnemosapi.New(mnemosapi.Options{StoreKind: *storeKind, DBPath: *dbPath, ArtifactsDir: *outDir})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Export(ctx, mnemosapi.ExportRequest{
		RunID:  *runID,
		Latest: *latest,
		OutDir: *outDir,
	})
	if err != nil {
		return err
	}

	fmt.Printf("exported run %s to %s\n", summary.RunID, summary.Directory)
	return nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: mnemosctl <init|reset|demo|sweep|runs|export> [flags]", msg)
}
