package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/arunsk/gravlab/internal/config"
	"github.com/arunsk/gravlab/internal/export"
	"github.com/arunsk/gravlab/internal/gravity"
	"github.com/arunsk/gravlab/internal/storage"
	"github.com/arunsk/gravlab/internal/survey"
	"github.com/arunsk/gravlab/internal/viz"
)

var (
	dataDir  string
	massStr  string
	locStr   string
	atStr    string
	quantity string
	// Grid extents
	xMin, xMax float64
	yMin, yMax float64
	gridZ      float64
	nx, ny     int
	// Profile line
	startStr string
	endStr   string
	samples  int
	// Config file and preset
	configFile string
	preset     string
	// SVG export
	outPath string
	cellPx  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravlab",
		Short: "analytic point mass gravity modeling",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&massStr, "mass", "1.0", "source mass (kg)")
	rootCmd.PersistentFlags().StringVar(&locStr, "location", "0,0,0", "source location x,y,z (m)")

	evalCmd := &cobra.Command{
		Use:       "eval [potential|field|gradient]",
		Short:     "evaluate a quantity at a single point",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"potential", "field", "gradient"},
		RunE:      evalPoint,
	}
	evalCmd.Flags().StringVar(&atStr, "at", "0,0,1", "observation point x,y,z (m)")

	surveyCmd := &cobra.Command{
		Use:   "survey",
		Short: "forward-model a grid survey and save the run",
		RunE:  runSurvey,
	}
	addGridFlags(surveyCmd)
	surveyCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	surveyCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "plot a quantity along a line of observation points",
		RunE:  runProfile,
	}
	profileCmd.Flags().StringVar(&startStr, "start", "-500,0,0", "line start x,y,z (m)")
	profileCmd.Flags().StringVar(&endStr, "end", "500,0,0", "line end x,y,z (m)")
	profileCmd.Flags().IntVar(&samples, "samples", 101, "points along the line")
	profileCmd.Flags().StringVar(&quantity, "quantity", "gz", "quantity (u|gz|gmag|tzz)")
	profileCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	profileCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved surveys",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot the central profile of a saved survey",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&quantity, "quantity", "gz", "quantity (u|gz|gmag|tzz)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export survey samples to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export survey data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a survey as an SVG map",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "survey.svg", "output file")
	exportSVGCmd.Flags().StringVar(&quantity, "quantity", "gz", "quantity (u|gz|gmag|tzz|quiver|quiver-dots)")
	exportSVGCmd.Flags().IntVar(&cellPx, "cell", 12, "cell size in pixels")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive slice viewer",
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMASS\tDEPTH\tGRID")
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2e kg\t%.0f m\t%dx%d\n",
					name, p.Source.Mass, p.Source.Location[2], p.Grid.NX, p.Grid.NY)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(evalCmd, surveyCmd, profileCmd, listCmd, plotCmd,
		exportCSVCmd, exportJSONCmd, exportSVGCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&xMin, "x-min", -500, "grid x minimum (m)")
	cmd.Flags().Float64Var(&xMax, "x-max", 500, "grid x maximum (m)")
	cmd.Flags().Float64Var(&yMin, "y-min", -500, "grid y minimum (m)")
	cmd.Flags().Float64Var(&yMax, "y-max", 500, "grid y maximum (m)")
	cmd.Flags().Float64Var(&gridZ, "z", 0, "grid height (m)")
	cmd.Flags().IntVar(&nx, "nx", 41, "grid points in x")
	cmd.Flags().IntVar(&ny, "ny", 41, "grid points in y")
	cmd.Flags().StringVar(&quantity, "quantity", "gz", "quantity (u|gz|gmag|tzz)")
}

// buildSource parses the shared mass/location flags into a point mass.
func buildSource() (*gravity.PointMass, error) {
	mass, err := gravity.ParseMass(massStr)
	if err != nil {
		return nil, err
	}
	loc, err := gravity.ParseLocation(locStr)
	if err != nil {
		return nil, err
	}
	return gravity.New(mass, loc)
}

// checkQuantity rejects a bad quantity name before any evaluation happens.
func checkQuantity(name string, extra ...string) error {
	if survey.ValidQuantity(name) {
		return nil
	}
	for _, e := range extra {
		if name == e {
			return nil
		}
	}
	return fmt.Errorf("unknown quantity: %s (valid: %v)", name, append(survey.QuantityNames, extra...))
}

func evalPoint(cmd *cobra.Command, args []string) error {
	src, err := buildSource()
	if err != nil {
		return err
	}

	at, err := gravity.ParseLocation(atStr)
	if err != nil {
		return err
	}

	switch args[0] {
	case "potential":
		fmt.Printf("U = %.6e m^2/s^2\n", src.PotentialAt(at))
	case "field":
		g := src.FieldAt(at)
		fmt.Printf("g = (%.6e, %.6e, %.6e) m/s^2\n", g.X, g.Y, g.Z)
		fmt.Printf("|g| = %.6e m/s^2\n", g.Norm())
	case "gradient":
		t := src.GradientAt(at)
		for i := 0; i < 3; i++ {
			fmt.Printf("[% .6e % .6e % .6e]\n", t[i][0], t[i][1], t[i][2])
		}
		fmt.Printf("trace = %.3e 1/s^2\n", t.Trace())
	default:
		return fmt.Errorf("unknown quantity: %s", args[0])
	}

	return nil
}

func runSurvey(cmd *cobra.Command, args []string) error {
	// Preset first, then config file, then explicit flags on top.
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, cfg)
	}

	if err := checkQuantity(quantity); err != nil {
		return err
	}

	src, err := buildSource()
	if err != nil {
		return err
	}

	grid := survey.Grid{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax, Z: gridZ, NX: nx, NY: ny}
	res := survey.Run(src, grid.Points())

	vals, err := res.Values(quantity)
	if err != nil {
		return err
	}
	stats := survey.Summarize(vals)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	runID, err := st.Save(storage.RunMetadata{
		Mass:     src.Mass(),
		Location: src.Location().Slice(),
		GridZ:    grid.Z,
		NX:       grid.NX,
		NY:       grid.NY,
		Quantity: quantity,
		Stats:    stats.Map(quantity),
	}, res)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(res.Points))
	fmt.Printf("\n%s over the grid:\n", quantity)
	fmt.Printf("  min:  %.6e\n", stats.Min)
	fmt.Printf("  max:  %.6e\n", stats.Max)
	fmt.Printf("  mean: %.6e\n", stats.Mean)
	fmt.Printf("  rms:  %.6e\n", stats.RMS)

	return nil
}

// applyConfig copies config values into the flag vars, except where the flag
// was set explicitly on the command line.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("mass") {
		massStr = fmt.Sprintf("%g", cfg.Source.Mass)
	}
	if !cmd.Flags().Changed("location") && len(cfg.Source.Location) == 3 {
		locStr = fmt.Sprintf("%g,%g,%g",
			cfg.Source.Location[0], cfg.Source.Location[1], cfg.Source.Location[2])
	}
	if !cmd.Flags().Changed("x-min") {
		xMin = cfg.Grid.XMin
	}
	if !cmd.Flags().Changed("x-max") {
		xMax = cfg.Grid.XMax
	}
	if !cmd.Flags().Changed("y-min") {
		yMin = cfg.Grid.YMin
	}
	if !cmd.Flags().Changed("y-max") {
		yMax = cfg.Grid.YMax
	}
	if !cmd.Flags().Changed("z") {
		gridZ = cfg.Grid.Z
	}
	if !cmd.Flags().Changed("nx") {
		nx = cfg.Grid.NX
	}
	if !cmd.Flags().Changed("ny") {
		ny = cfg.Grid.NY
	}
	if !cmd.Flags().Changed("quantity") && cfg.Quantity != "" {
		quantity = cfg.Quantity
	}
}

// applyProfileConfig is the profile command's counterpart of applyConfig,
// consuming the config's profile block instead of the grid.
func applyProfileConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("mass") {
		massStr = fmt.Sprintf("%g", cfg.Source.Mass)
	}
	if !cmd.Flags().Changed("location") && len(cfg.Source.Location) == 3 {
		locStr = fmt.Sprintf("%g,%g,%g",
			cfg.Source.Location[0], cfg.Source.Location[1], cfg.Source.Location[2])
	}
	if !cmd.Flags().Changed("start") && len(cfg.Profile.Start) == 3 {
		startStr = fmt.Sprintf("%g,%g,%g",
			cfg.Profile.Start[0], cfg.Profile.Start[1], cfg.Profile.Start[2])
	}
	if !cmd.Flags().Changed("end") && len(cfg.Profile.End) == 3 {
		endStr = fmt.Sprintf("%g,%g,%g",
			cfg.Profile.End[0], cfg.Profile.End[1], cfg.Profile.End[2])
	}
	if !cmd.Flags().Changed("samples") && cfg.Profile.N > 0 {
		samples = cfg.Profile.N
	}
	if !cmd.Flags().Changed("quantity") && cfg.Quantity != "" {
		quantity = cfg.Quantity
	}
}

func runProfile(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyProfileConfig(cmd, cfg)
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyProfileConfig(cmd, cfg)
	}

	if err := checkQuantity(quantity); err != nil {
		return err
	}

	src, err := buildSource()
	if err != nil {
		return err
	}

	start, err := gravity.ParseLocation(startStr)
	if err != nil {
		return err
	}
	end, err := gravity.ParseLocation(endStr)
	if err != nil {
		return err
	}

	line := survey.Profile{Start: start, End: end, N: samples}
	res := survey.Run(src, line.Points())

	vals, err := res.Values(quantity)
	if err != nil {
		return err
	}

	graph := asciigraph.Plot(vals,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s along profile", quantity)),
	)
	fmt.Println(graph)

	stats := survey.Summarize(vals)
	fmt.Printf("\npeak %s: %.6e (min %.6e)\n", quantity, stats.Max, stats.Min)

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no surveys found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tMASS\tDEPTH\tGRID\tQUANTITY")

	for _, run := range runs {
		depth := 0.0
		if len(run.Location) == 3 {
			depth = run.Location[2]
		}
		fmt.Fprintf(w, "%s\t%s\t%.2e kg\t%.0f m\t%dx%d\t%s\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Mass,
			depth,
			run.NX, run.NY,
			run.Quantity,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	if err := checkQuantity(quantity); err != nil {
		return err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	res, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(res.Points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	vals, err := res.Values(quantity)
	if err != nil {
		return err
	}

	// middle west-east row of the grid
	row := meta.NY / 2
	if (row+1)*meta.NX > len(vals) {
		return fmt.Errorf("samples do not match %dx%d grid", meta.NX, meta.NY)
	}
	profile := vals[row*meta.NX : (row+1)*meta.NX]

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("source: %.2e kg at %v\n\n", meta.Mass, meta.Location)

	graph := asciigraph.Plot(profile,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s along central row", quantity)),
	)
	fmt.Println(graph)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	res, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportCSV(os.Stdout, res)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, res)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	if err := checkQuantity(quantity, "quiver", "quiver-dots"); err != nil {
		return err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	res, err := st.LoadSamples(args[0])
	if err != nil {
		return err
	}

	var svg string
	switch quantity {
	case "quiver":
		svg = export.QuiverSVG(res.Field, meta.NX, meta.NY, cellPx)
	case "quiver-dots":
		svg = export.QuiverDotsSVG(res.Field, meta.NX, meta.NY, float64(cellPx)/2)
	default:
		vals, err := res.Values(quantity)
		if err != nil {
			return err
		}
		svg = export.HeatmapSVG(vals, meta.NX, meta.NY, cellPx)
	}
	if svg == "" {
		return fmt.Errorf("samples do not match %dx%d grid", meta.NX, meta.NY)
	}

	if err := os.WriteFile(outPath, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cmd, cfg)
	}

	src, err := buildSource()
	if err != nil {
		return err
	}

	grid := survey.Grid{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax, Z: gridZ, NX: nx, NY: ny}
	m := viz.NewModel(src, grid)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
