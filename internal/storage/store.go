// Package storage records scene runs on disk: one directory per run with
// a metadata.json and a samples.csv of per-step counts.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/imclab/casa/internal/metrics"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata summarizes one recorded run.
type RunMetadata struct {
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Steps     int                `json:"steps"`
	Resets    int                `json:"resets"`
	Policies  []string           `json:"policies"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns its id.
func (s *Store) Save(seed int64, policies []string, resets int, metricVals map[string]float64, samples []metrics.Sample) (string, error) {
	runID := fmt.Sprintf("scene_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Seed:      seed,
		Steps:     len(samples),
		Resets:    resets,
		Policies:  policies,
		Metrics:   metricVals,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "samples.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"step", "changed", "live", "cells"}); err != nil {
		return "", err
	}
	for _, sm := range samples {
		row := []string{
			strconv.Itoa(sm.Step),
			strconv.Itoa(sm.Changed),
			strconv.Itoa(sm.Live),
			strconv.Itoa(sm.Cells),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every recorded run.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSamples reads one run's per-step counts.
func (s *Store) LoadSamples(runID string) ([]metrics.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "samples.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []metrics.Sample{}, nil
	}

	samples := make([]metrics.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 4 {
			continue
		}
		step, err1 := strconv.Atoi(rec[0])
		changed, err2 := strconv.Atoi(rec[1])
		live, err3 := strconv.Atoi(rec[2])
		cells, err4 := strconv.Atoi(rec[3])
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}
		samples = append(samples, metrics.Sample{Step: step, Changed: changed, Live: live, Cells: cells})
	}
	return samples, nil
}

// ExportJSON writes a run's metadata and samples as one JSON document.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []metrics.Sample) error {
	doc := struct {
		Meta    *RunMetadata     `json:"meta"`
		Samples []metrics.Sample `json:"samples"`
	}{Meta: meta, Samples: samples}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
