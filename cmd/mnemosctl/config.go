package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	mnemosapi "mnemos/pkg/mnemos"
)

func loadSweepRequestFromConfig(path string) (mnemosapi.SweepRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mnemosapi.SweepRequest{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return mnemosapi.SweepRequest{}, fmt.Errorf("decode %s: %w", path, err)
	}

	var req mnemosapi.SweepRequest
	if v, ok := asIntSlice(raw["flip_counts"]); ok {
		req.FlipCounts = v
	}
	if v, ok := asInt(raw["flip_step"]); ok {
		req.FlipStep = v
	}
	if v, ok := asInt(raw["repetitions"]); ok {
		req.Repetitions = v
	}
	if v, ok := asInt(raw["sweeps"]); ok {
		req.Sweeps = v
	}
	if v, ok := asInt(raw["workers"]); ok {
		req.Workers = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		req.Seed = v
	}
	return req, nil
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func asInt64(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func asIntSlice(v any) ([]int, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, ok := asInt(item)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
