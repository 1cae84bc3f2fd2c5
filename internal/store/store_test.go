package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arjunkp/hjsolve/internal/grid"
	"github.com/arjunkp/hjsolve/internal/solver"
)

func testRun(t *testing.T) (*grid.Grid, []float64, []solver.Field) {
	t.Helper()
	g, err := grid.New(grid.Axis{Min: 0, Max: 1, Nodes: 5})
	if err != nil {
		t.Fatal(err)
	}
	times := []float64{0, 0.5}
	fields := []solver.Field{
		{0, 1, 2, 3, 4},
		{0, -1, -2, -3, -4},
	}
	return g, times, fields
}

func TestSaveAndList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	g, times, fields := testRun(t)
	runID, err := s.Save("advection", "high", 0.75, g, times, fields)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "advection_") {
		t.Errorf("unexpected run id %q", runID)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Dynamics != "advection" || runs[0].Accuracy != "high" {
		t.Errorf("metadata mismatch: %+v", runs[0])
	}
	if len(runs[0].Times) != 2 {
		t.Errorf("expected 2 times, got %d", len(runs[0].Times))
	}
}

func TestSaveWritesCSV(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	g, times, fields := testRun(t)
	runID, err := s.Save("advection", "high", 0.75, g, times, fields)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, runID, "values.csv"))
	if err != nil {
		t.Fatalf("csv not written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1+g.NumNodes() {
		t.Errorf("expected %d csv lines, got %d", 1+g.NumNodes(), len(lines))
	}
	if lines[0] != "x0,t=0,t=0.5" {
		t.Errorf("unexpected header %q", lines[0])
	}
}

func TestListEmpty(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing"))
	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
