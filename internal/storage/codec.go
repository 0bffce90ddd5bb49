package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"mnemos/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

// CurrentVersions stamps a record with the versions this codec writes.
func CurrentVersions() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}

func EncodeRun(r model.RunRecord) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeRun(data []byte) (model.RunRecord, error) {
	var run model.RunRecord
	if err := json.Unmarshal(data, &run); err != nil {
		return model.RunRecord{}, err
	}
	if err := checkVersion(run.VersionedRecord); err != nil {
		return model.RunRecord{}, err
	}
	return run, nil
}

func EncodeDemoReport(r model.DemoReport) ([]byte, error) {
	return json.Marshal(r)
}

func DecodeDemoReport(data []byte) (model.DemoReport, error) {
	var report model.DemoReport
	if err := json.Unmarshal(data, &report); err != nil {
		return model.DemoReport{}, err
	}
	if err := checkVersion(report.VersionedRecord); err != nil {
		return model.DemoReport{}, err
	}
	return report, nil
}

func EncodeSweepSeries(s model.SweepSeries) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeSweepSeries(data []byte) (model.SweepSeries, error) {
	var series model.SweepSeries
	if err := json.Unmarshal(data, &series); err != nil {
		return model.SweepSeries{}, err
	}
	if err := checkVersion(series.VersionedRecord); err != nil {
		return model.SweepSeries{}, err
	}
	return series, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return fmt.Errorf("%w: schema=%d codec=%d", ErrVersionMismatch, v.SchemaVersion, v.CodecVersion)
	}
	return nil
}
