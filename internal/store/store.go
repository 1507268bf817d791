// Package store writes completed runs to disk as export artifacts:
// a metadata.json describing the run and a trajectories.csv with every
// sample. Exports are one way; simulations are cheap enough to rerun
// that nothing here loads trajectories back.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/solarsim/internal/sim"
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

type RunMetadata struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	SpanDays      float64   `json:"span_days"`
	Samples       int       `json:"samples"`
	Rtol          float64   `json:"rtol"`
	Integrator    string    `json:"integrator"`
	AcceptedSteps int       `json:"accepted_steps"`
	Bodies        []string  `json:"bodies"`
	EnergyDrift   float64   `json:"energy_drift"`
}

func metadataFor(runID string, res *sim.Result) RunMetadata {
	names := make([]string, len(res.Bodies))
	for i, b := range res.Bodies {
		names[i] = b.Name
	}
	return RunMetadata{
		ID:            runID,
		Timestamp:     time.Now(),
		SpanDays:      res.SpanDays,
		Samples:       res.Samples,
		Rtol:          res.Rtol,
		Integrator:    res.Integrator,
		AcceptedSteps: res.AcceptedSteps,
		Bodies:        names,
		EnergyDrift:   res.EnergyDrift(),
	}
}

// Save writes one run directory under the base dir and returns its id.
func (s *Store) Save(res *sim.Result) (string, error) {
	runID := fmt.Sprintf("solar_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(metadataFor(runID, res)); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trajectories.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	return runID, WriteCSV(csvFile, res)
}

// List returns the metadata of every run under the base dir. Directories
// without readable metadata are skipped.
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
