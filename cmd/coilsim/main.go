package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/coilsim/internal/config"
	"github.com/san-kum/coilsim/internal/export"
	"github.com/san-kum/coilsim/internal/fieldlines"
	"github.com/san-kum/coilsim/internal/storage"
	"github.com/san-kum/coilsim/internal/tui"
	"github.com/san-kum/coilsim/internal/viz"
)

var (
	dataDir string
	radius  float64
	length  float64
	turns   int
	current float64
	// Field point for the field command
	fieldR float64
	fieldZ float64
	// Profile sampling
	samples int
	// Grid rendering
	gridWidth  int
	gridHeight int
	// Output paths for the lines command
	svgOut  string
	jsonOut string
	save    bool
	// Config file and preset
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coilsim",
		Short: "solenoid magnetic field explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".coilsim", "data directory")
	rootCmd.PersistentFlags().Float64Var(&radius, "radius", config.DefaultRadius, "coil radius (m)")
	rootCmd.PersistentFlags().Float64Var(&length, "length", config.DefaultLength, "coil length (m)")
	rootCmd.PersistentFlags().IntVar(&turns, "turns", config.DefaultTurns, "number of turns")
	rootCmd.PersistentFlags().Float64Var(&current, "current", config.DefaultCurrent, "coil current (A)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "evaluate the field at a point",
		RunE:  evalField,
	}
	fieldCmd.Flags().Float64Var(&fieldR, "r", 0, "radial coordinate (m)")
	fieldCmd.Flags().Float64Var(&fieldZ, "z", 0, "axial coordinate (m)")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot the axial field profile Bz(z)",
		RunE:  plotProfile,
	}
	profileCmd.Flags().IntVar(&samples, "samples", 120, "sample count along the axis")

	linesCmd := &cobra.Command{
		Use:   "lines",
		Short: "trace field lines and render them",
		RunE:  runLines,
	}
	linesCmd.Flags().StringVar(&svgOut, "svg", "", "write the line set to an SVG file")
	linesCmd.Flags().StringVar(&jsonOut, "json", "", "write the line set to a JSON file")
	linesCmd.Flags().BoolVar(&save, "save", false, "save the line set in the data directory")

	gridCmd := &cobra.Command{
		Use:   "grid",
		Short: "render a field-strength grid",
		RunE:  renderGrid,
	}
	gridCmd.Flags().IntVar(&gridWidth, "width", 80, "grid width (chars)")
	gridCmd.Flags().IntVar(&gridHeight, "height", 24, "grid height (chars)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export saved run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal view",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return tui.RunInteractive(cfg)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available coil presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(fieldCmd, profileCmd, linesCmd, gridCmd, listCmd, exportCmd, tuiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges preset, config file, and flags, in that order of
// increasing precedence; flags only win when explicitly set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("radius") {
		cfg.Radius = radius
	}
	if flags.Changed("length") {
		cfg.Length = length
	}
	if flags.Changed("turns") {
		cfg.Turns = turns
	}
	if flags.Changed("current") {
		cfg.Current = current
	}

	return cfg, nil
}

func evalField(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}

	b := g.FieldAt(fieldR, fieldZ)
	fmt.Printf("B(r=%g, z=%g)\n", fieldR, fieldZ)
	fmt.Printf("  Br  = %.6e T\n", b.Br)
	fmt.Printf("  Bz  = %.6e T\n", b.Bz)
	fmt.Printf("  |B| = %.6e T\n", b.Magnitude())
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}

	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}

	zMax := 1.5 * g.Length
	data := make([]float64, samples)
	for i := range data {
		z := -zMax + 2*zMax*float64(i)/float64(samples-1)
		data[i] = g.FieldAt(0, z).Bz * 1e3
	}

	caption := fmt.Sprintf("Bz on axis (mT), z in [%.2f, %.2f] m, ideal %.3f mT",
		-zMax, zMax, g.IdealBz()*1e3)
	graph := asciigraph.Plot(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runLines(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}

	builder := fieldlines.NewBuilder()
	if cfg.Trace.MaxSteps > 0 {
		builder.MaxSteps = cfg.Trace.MaxSteps
	}
	lines := builder.Compute(g)
	fmt.Printf("traced %d field lines\n", len(lines))

	extent := 1.2 * g.Length
	view := viz.NewFieldView(cfg.Grid.Width, cfg.Grid.Height, extent, extent)
	for _, line := range lines {
		view.DrawStreamline(line)
	}
	view.DrawCoil(g)
	fmt.Print(view.String())

	if svgOut != "" {
		svg := export.LinesToSVG(g, lines, 800, 800, extent)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}

	if jsonOut != "" {
		if err := export.WriteJSON(jsonOut, g, lines); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonOut)
	}

	if save {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(g, lines)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}

	return nil
}

func renderGrid(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	g, err := cfg.Geometry()
	if err != nil {
		return err
	}

	if gridWidth < 2 || gridHeight < 2 {
		return fmt.Errorf("grid needs at least 2x2 cells, got %dx%d", gridWidth, gridHeight)
	}

	extent := 1.2 * g.Length
	grid := viz.MagnitudeGrid(g, gridWidth, gridHeight, extent, extent)
	fmt.Print(viz.RenderGrid(grid))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("no runs")
			return nil
		}
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTURNS\tLENGTH\tCURRENT\tLINES\tBZ(0,0)")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%d\t%.3f\t%.2f\t%d\t%.3e\n",
			r.ID, r.Turns, r.Length, r.Current, r.Lines, r.CenterBz)
	}
	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
