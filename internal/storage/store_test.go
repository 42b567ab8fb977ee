package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/coilsim/internal/coil"
	"github.com/san-kum/coilsim/internal/trace"
)

func TestSaveLoadList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	g := coil.Geometry{Radius: 0.02, Length: 0.2, Turns: 5, Current: 5}
	lines := []trace.Streamline{
		{{R: 0.01, Z: 0}, {R: 0.01, Z: 0.01}},
	}

	runID, err := st.Save(g, lines)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Turns != 5 || meta.Lines != 1 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.CenterBz == 0 {
		t.Error("center field not recorded")
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Errorf("list mismatch: %+v", runs)
	}
}

func TestSaveWritesCSV(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	g := coil.Geometry{Radius: 0.02, Length: 0.2, Turns: 2, Current: 1}
	lines := []trace.Streamline{{{R: 1, Z: 2}, {R: 3, Z: 4}}}

	runID, err := st.Save(g, lines)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, runID, "lines.csv"))
	if err != nil {
		t.Fatalf("csv missing: %v", err)
	}
	want := "line,r,z\n0,1,2\n0,3,4\n"
	if string(data) != want {
		t.Errorf("csv = %q, want %q", data, want)
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for missing run")
	}
}
