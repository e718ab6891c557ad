package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/hopsim/internal/config"
	"github.com/san-kum/hopsim/internal/hopfield"
	"github.com/san-kum/hopsim/internal/storage"
	"github.com/san-kum/hopsim/internal/tui"
	"github.com/san-kum/hopsim/internal/viz"
)

var (
	dataDir   string
	storeKind string

	dimension         int
	domain            string
	states            int
	workers           int
	seed              int64
	generatorSeed     int64
	maxIterations     int
	maxUnstableUnits  int
	lowerBound        float64
	upperBound        float64
	randomWeights     bool
	forceSymmetric    bool
	forceZeroDiagonal bool

	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hopsim",
		Short: "hopfield associative memory lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hopsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "file", "run store backend (file, sqlite)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "relax a batch of random states",
		RunE:  runBatch,
	}
	addNetworkFlags(runCmd)

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "sample random states without relaxing them",
		RunE:  generateStates,
	}
	addNetworkFlags(generateCmd)

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "relax one state and plot its energy per sweep",
		RunE:  traceState,
	}
	addNetworkFlags(traceCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark batch relaxation across worker counts",
		RunE:  benchRelaxation,
	}
	addNetworkFlags(benchCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch one state relax interactively",
		RunE:  runLive,
	}
	addNetworkFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDIM\tDOMAIN\tSTATES\tWORKERS")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%s\t%d\t%d\n", name, p.Dimension, p.Domain, p.States, p.Workers)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, generateCmd, traceCmd, listCmd, plotCmd, exportCmd, benchCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dimension, "dimension", config.DefaultDimension, "number of units")
	cmd.Flags().StringVar(&domain, "domain", config.DefaultDomain, "state domain (binary, bipolar, continuous)")
	cmd.Flags().IntVar(&states, "states", config.DefaultStates, "number of states in the batch")
	cmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "concurrent relaxation workers")
	cmd.Flags().Int64Var(&seed, "seed", 0, "network seed (0 picks one)")
	cmd.Flags().Int64Var(&generatorSeed, "gen-seed", 0, "state generator seed (0 picks one)")
	cmd.Flags().IntVar(&maxIterations, "iterations", config.DefaultIterations, "sweep budget per state")
	cmd.Flags().IntVar(&maxUnstableUnits, "tolerance", 0, "unstable units tolerated as stable")
	cmd.Flags().Float64Var(&lowerBound, "lower", config.DefaultLowerBound, "generator lower bound")
	cmd.Flags().Float64Var(&upperBound, "upper", config.DefaultUpperBound, "generator upper bound")
	cmd.Flags().BoolVar(&randomWeights, "random-weights", true, "initialize couplings from a gaussian")
	cmd.Flags().BoolVar(&forceSymmetric, "symmetric", true, "symmetrize the coupling matrix")
	cmd.Flags().BoolVar(&forceZeroDiagonal, "zero-diagonal", true, "zero out self couplings")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file, and flags, with flags winning
// over the file and the file winning over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dimension") {
		cfg.Dimension = dimension
	}
	if cmd.Flags().Changed("domain") {
		cfg.Domain = domain
	}
	if cmd.Flags().Changed("states") {
		cfg.States = states
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("gen-seed") {
		cfg.GeneratorSeed = generatorSeed
	}
	if cmd.Flags().Changed("iterations") {
		cfg.MaxIterations = maxIterations
	}
	if cmd.Flags().Changed("tolerance") {
		cfg.MaxUnstableUnits = maxUnstableUnits
	}
	if cmd.Flags().Changed("lower") {
		cfg.LowerBound = lowerBound
	}
	if cmd.Flags().Changed("upper") {
		cfg.UpperBound = upperBound
	}
	if cmd.Flags().Changed("random-weights") {
		cfg.RandomWeights = randomWeights
	}
	if cmd.Flags().Changed("symmetric") {
		cfg.ForceSymmetric = forceSymmetric
	}
	if cmd.Flags().Changed("zero-diagonal") {
		cfg.ForceZeroDiagonal = forceZeroDiagonal
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildEngine(cfg *config.Config) (*hopfield.Network, *hopfield.StateGenerator, error) {
	netCfg, err := cfg.NetworkConfig()
	if err != nil {
		return nil, nil, err
	}
	net, err := hopfield.New(netCfg)
	if err != nil {
		return nil, nil, err
	}
	net.CleanMatrix()

	genCfg, err := cfg.GeneratorConfig()
	if err != nil {
		return nil, nil, err
	}
	gen, err := hopfield.NewStateGenerator(genCfg)
	if err != nil {
		return nil, nil, err
	}
	return net, gen, nil
}

func openStore() (storage.Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	st, err := storage.NewStore(storeKind, dataDir)
	if err != nil {
		return nil, err
	}
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	net, gen, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	batch := gen.CreateStateCollection(cfg.States)

	fmt.Printf("relaxing %d states on %d workers...\n", cfg.States, cfg.Workers)
	start := time.Now()
	relaxed := net.ConcurrentRelaxStateCollection(batch, cfg.Workers)
	elapsed := time.Since(start)

	records := make([]storage.StateRecord, len(relaxed))
	stableCount := 0
	energySum := 0.0
	energies := make([]float64, len(relaxed))
	for i, state := range relaxed {
		energy := net.StateEnergy(state)
		stable := net.IsStable(state)
		if stable {
			stableCount++
		}
		energySum += energy
		energies[i] = energy
		records[i] = storage.StateRecord{Index: i, Values: state, Energy: energy, Stable: stable}
	}

	meta := storage.RunRecord{
		Timestamp:        time.Now(),
		Dimension:        net.Dimension(),
		Domain:           net.Domain().String(),
		States:           len(relaxed),
		Workers:          cfg.Workers,
		NetworkSeed:      net.Seed(),
		GeneratorSeed:    gen.Seed(),
		MaxIterations:    net.MaxIterations(),
		MaxUnstableUnits: net.MaxUnstableUnits(),
		ElapsedSeconds:   elapsed.Seconds(),
		StableCount:      stableCount,
	}
	if len(relaxed) > 0 {
		meta.MeanFinalEnergy = energySum / float64(len(relaxed))
	}

	runID, err := st.SaveRun(meta, records)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("network seed: %d  generator seed: %d\n", net.Seed(), gen.Seed())
	fmt.Printf("stable: %d / %d\n", stableCount, len(relaxed))
	if len(relaxed) > 0 {
		fmt.Printf("mean final energy: %.4f\n\n", meta.MeanFinalEnergy)
		fmt.Println(viz.EnergyHistogram(energies, 8))
	}

	return nil
}

func generateStates(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	genCfg, err := cfg.GeneratorConfig()
	if err != nil {
		return err
	}
	gen, err := hopfield.NewStateGenerator(genCfg)
	if err != nil {
		return err
	}

	batch := gen.CreateStateCollection(cfg.States)
	fmt.Printf("%s\n\n", gen)
	fmt.Print(viz.BatchRaster(batch))
	return nil
}

func traceState(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	net, gen, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	state := gen.NextState()
	history := []float64{net.StateEnergy(state)}

	sweeps := 0
	for iteration := 0; iteration < net.MaxIterations(); iteration++ {
		state = net.UpdateState(state)
		sweeps++
		history = append(history, net.StateEnergy(state))
		if hopfield.CountUnstable(net.AllUnitEnergies(state)) < net.MaxUnstableUnits() {
			break
		}
	}

	unstable := hopfield.CountUnstable(net.AllUnitEnergies(state))

	fmt.Printf("%s\n", net)
	fmt.Printf("sweeps: %d\n", sweeps)
	fmt.Printf("final energy: %.4f\n", history[len(history)-1])
	fmt.Printf("unstable units: %d / %d\n\n", unstable, net.Dimension())
	fmt.Println(viz.EnergyPlot(history, 70, 10))
	fmt.Println()
	fmt.Println(viz.StateRaster(state))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDIM\tDOMAIN\tSTATES\tWORKERS\tSTABLE\tMEAN E")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\t%d\t%d/%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dimension,
			run.Domain,
			run.States,
			run.Workers,
			run.StableCount, run.States,
			run.MeanFinalEnergy,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.LoadRun(runID)
	if err != nil {
		return err
	}
	records, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("network: %s d=%d  stable %d/%d\n\n", meta.Domain, meta.Dimension, meta.StableCount, meta.States)

	energies := make([]float64, len(records))
	batch := make([]hopfield.State, len(records))
	for i, rec := range records {
		energies[i] = rec.Energy
		batch[i] = hopfield.State(rec.Values)
	}

	fmt.Println(viz.EnergyHistogram(energies, 8))
	fmt.Println()

	const maxRasters = 20
	if len(batch) > maxRasters {
		batch = batch[:maxRasters]
	}
	fmt.Print(viz.BatchRaster(batch))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := st.LoadRun(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchRelaxation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = 42
	}
	if cfg.GeneratorSeed == 0 {
		cfg.GeneratorSeed = 43
	}

	dimensions := []int{32, 64, 128}
	workerCounts := []int{1, 2, 4, 8}

	fmt.Printf("benchmarking %s, %d states per cell\n\n", cfg.Domain, cfg.States)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIM\tWORKERS\tTIME\tSTATES/SEC")

	for _, dim := range dimensions {
		for _, count := range workerCounts {
			cell := *cfg
			cell.Dimension = dim

			net, gen, err := buildEngine(&cell)
			if err != nil {
				return err
			}
			batch := gen.CreateStateCollection(cell.States)

			start := time.Now()
			net.ConcurrentRelaxStateCollection(batch, count)
			elapsed := time.Since(start)

			statesPerSec := float64(cell.States) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%d\t%v\t%.1f\n", dim, count, elapsed, statesPerSec)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	net, gen, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(net, gen))
	_, err = p.Run()
	return err
}
