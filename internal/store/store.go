// Package store persists solver runs: a metadata JSON per run plus a CSV
// of the value function at every output time.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/arjunkp/hjsolve/internal/grid"
	"github.com/arjunkp/hjsolve/internal/solver"
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
	ID        string    `json:"id"`
	Dynamics  string    `json:"dynamics"`
	Accuracy  string    `json:"accuracy"`
	CFL       float64   `json:"cfl"`
	Shape     []int     `json:"shape"`
	Times     []float64 `json:"times"`
	Timestamp time.Time `json:"timestamp"`
}

// Save writes one run: metadata.json plus values.csv with a row per grid
// node (coordinates first, then one column per output time).
func (s *Store) Save(dynamicsName, accuracy string, cfl float64, g *grid.Grid, times []float64, fields []solver.Field) (string, error) {
	runID := fmt.Sprintf("%s_%d", dynamicsName, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Dynamics:  dynamicsName,
		Accuracy:  accuracy,
		CFL:       cfl,
		Shape:     g.Shape(),
		Times:     times,
		Timestamp: time.Now(),
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

	csvFile, err := os.Create(filepath.Join(runDir, "values.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)

	header := make([]string, 0, g.NumDims()+len(times))
	for a := 0; a < g.NumDims(); a++ {
		header = append(header, fmt.Sprintf("x%d", a))
	}
	for _, t := range times {
		header = append(header, fmt.Sprintf("t=%g", t))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	row := make([]string, len(header))
	for i := 0; i < g.NumNodes(); i++ {
		for a, x := range g.State(i) {
			row[a] = strconv.FormatFloat(x, 'f', 6, 64)
		}
		for k, f := range fields {
			row[g.NumDims()+k] = strconv.FormatFloat(f[i], 'g', -1, 64)
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return runID, w.Error()
}

// List returns metadata for every saved run.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}
	return runs, nil
}

// Load reads the metadata of one run.
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
