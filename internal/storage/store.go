package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/coilsim/internal/coil"
	"github.com/san-kum/coilsim/internal/trace"
)

// Store persists computed field-line sets under a base directory, one
// subdirectory per run with metadata.json and lines.csv.
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
	Timestamp time.Time `json:"timestamp"`
	Radius    float64   `json:"radius"`
	Length    float64   `json:"length"`
	Turns     int       `json:"turns"`
	Current   float64   `json:"current"`
	Lines     int       `json:"lines"`
	CenterBz  float64   `json:"center_bz"`
}

func (s *Store) Save(g coil.Geometry, lines []trace.Streamline) (string, error) {
	runID := fmt.Sprintf("coil_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Radius:    g.Radius,
		Length:    g.Length,
		Turns:     g.Turns,
		Current:   g.Current,
		Lines:     len(lines),
		CenterBz:  g.FieldAt(0, 0).Bz,
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

	csvFile, err := os.Create(filepath.Join(runDir, "lines.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"line", "r", "z"}); err != nil {
		return "", err
	}
	for i, line := range lines {
		for _, p := range line {
			record := []string{
				strconv.Itoa(i),
				strconv.FormatFloat(p.R, 'g', -1, 64),
				strconv.FormatFloat(p.Z, 'g', -1, 64),
			}
			if err := w.Write(record); err != nil {
				return "", err
			}
		}
	}

	return runID, nil
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

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}
