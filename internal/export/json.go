package export

import (
	"encoding/json"
	"os"

	"github.com/san-kum/coilsim/internal/coil"
	"github.com/san-kum/coilsim/internal/trace"
)

type ExportData struct {
	Radius   float64        `json:"radius"`
	Length   float64        `json:"length"`
	Turns    int            `json:"turns"`
	Current  float64        `json:"current"`
	CenterBz float64        `json:"center_bz"`
	IdealBz  float64        `json:"ideal_bz"`
	Lines    [][][2]float64 `json:"lines"`
}

// BuildExport flattens a line set into the JSON export shape. Points are
// emitted as [r, z] pairs.
func BuildExport(g coil.Geometry, lines []trace.Streamline) ExportData {
	data := ExportData{
		Radius:   g.Radius,
		Length:   g.Length,
		Turns:    g.Turns,
		Current:  g.Current,
		CenterBz: g.FieldAt(0, 0).Bz,
		IdealBz:  g.IdealBz(),
		Lines:    make([][][2]float64, len(lines)),
	}
	for i, line := range lines {
		pts := make([][2]float64, len(line))
		for j, p := range line {
			pts[j] = [2]float64{p.R, p.Z}
		}
		data.Lines[i] = pts
	}
	return data
}

// WriteJSON saves a line set to path as indented JSON.
func WriteJSON(path string, g coil.Geometry, lines []trace.Streamline) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildExport(g, lines))
}
