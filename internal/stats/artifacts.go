package stats

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"mnemos/internal/model"
)

const runIndexFile = "run_index.json"

// WriteRunArtifacts writes the run record and its results under a per-run
// directory and appends the run ID to the base directory's index. Either of
// report and series may be nil. It returns the run directory.
func WriteRunArtifacts(baseDir string, run model.RunRecord, report *model.DemoReport, series *model.SweepSeries) (string, error) {
	if run.ID == "" {
		return "", errors.New("run id must not be empty")
	}
	dir := filepath.Join(baseDir, run.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	if err := writeJSON(filepath.Join(dir, "run.json"), run); err != nil {
		return "", err
	}
	if report != nil {
		if err := writeJSON(filepath.Join(dir, "demo.json"), report); err != nil {
			return "", err
		}
	}
	if series != nil {
		if err := writeJSON(filepath.Join(dir, "sweep.json"), series); err != nil {
			return "", err
		}
		if err := writeSweepCSV(filepath.Join(dir, "sweep.csv"), series.Points); err != nil {
			return "", err
		}
	}
	if err := appendRunIndex(baseDir, run.ID); err != nil {
		return "", err
	}
	return dir, nil
}

// ReadRunIndex returns the run IDs recorded in the base directory's index,
// oldest first. A missing index reads as empty.
func ReadRunIndex(baseDir string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(baseDir, runIndexFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode %s: %w", runIndexFile, err)
	}
	return ids, nil
}

func appendRunIndex(baseDir, runID string) error {
	ids, err := ReadRunIndex(baseDir)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if id == runID {
			return nil
		}
	}
	ids = append(ids, runID)
	return writeJSON(filepath.Join(baseDir, runIndexFile), ids)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func writeSweepCSV(path string, points []model.SweepPoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	writer := csv.NewWriter(f)
	if err := writer.Write([]string{"flip_count", "flip_percent", "success_percent"}); err != nil {
		_ = f.Close()
		return err
	}
	for _, pt := range points {
		row := []string{
			strconv.Itoa(pt.FlipCount),
			strconv.FormatFloat(pt.FlipPercent, 'f', -1, 64),
			strconv.FormatFloat(pt.SuccessPercent, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			_ = f.Close()
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
