package main

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/stepviz/internal/automation"
	"github.com/san-kum/stepviz/internal/catalog"
	"github.com/san-kum/stepviz/internal/config"
	"github.com/san-kum/stepviz/internal/export"
	"github.com/san-kum/stepviz/internal/logging"
	"github.com/san-kum/stepviz/internal/metrics"
	"github.com/san-kum/stepviz/internal/step"
	"github.com/san-kum/stepviz/internal/store"
	"github.com/san-kum/stepviz/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir    string
	speedMs    int
	logLevel   string
	configFile string
	preset     string
	// input overrides
	values   []int
	target   int
	size     int
	text     string
	pattern  string
	start    int
	tail     int
	capacity int
	width    int
	bits     uint32
	// run
	lastOnly bool
	chart    bool
	// export / show
	outFile  string
	svgFile  string
	inFile   string
	playBack bool
	// sweep
	minSize int
	maxSize int
	points  int
	seed    int64

	fileCfg *config.Config
	logger  = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	fileCfg = nil
	logger = zap.NewNop()

	rootCmd := &cobra.Command{
		Use:          "stepviz",
		Short:        "step-by-step algorithm visualizer",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				cfg, err := config.Load(configFile)
				if err != nil {
					return fmt.Errorf("failed to load config: %w", err)
				}
				fileCfg = cfg
				if !cmd.Flags().Changed("speed") {
					speedMs = cfg.SpeedMs
				}
				if !cmd.Flags().Changed("data") {
					dataDir = cfg.DataDir
				}
				if !cmd.Flags().Changed("log-level") {
					logLevel = cfg.LogLevel
				}
			}
			l, err := logging.New(logLevel)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if speedMs <= 0 {
				return fmt.Errorf("speed must be positive, got %d", speedMs)
			}
			return viz.RunMenu(catalog.NewRegistry(catalog.WithLogger(logger)), speed(), logger)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", config.DefaultDataDir, "trace directory")
	pf.IntVar(&speedMs, "speed", config.DefaultSpeedMs, "playback interval in milliseconds")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use a named preset input")
	pf.IntSliceVar(&values, "values", nil, "input array, e.g. 5,3,1,4,2")
	pf.IntVar(&target, "target", 0, "search target or query key")
	pf.IntVar(&size, "size", 0, "size parameter (table size, n, board size)")
	pf.StringVar(&text, "text", "", "text to search in")
	pf.StringVar(&pattern, "pattern", "", "pattern to search for")
	pf.IntVar(&start, "start", 0, "start node for graph traversals")
	pf.IntVar(&tail, "tail", -1, "node the last list node links back to (-1 for none)")
	pf.IntVar(&capacity, "capacity", 0, "knapsack capacity")
	pf.IntVar(&width, "width", 0, "bit width for bit manipulation")
	pf.Uint32Var(&bits, "bits", 0, "integer operand for bit manipulation")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list algorithms by family",
		RunE:  listAlgorithms,
	}

	describeCmd := &cobra.Command{
		Use:   "describe [algo]",
		Short: "show an algorithm's summary and pseudo-code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := catalog.NewRegistry(catalog.WithLogger(logger)).Describe(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), desc)
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [algo]",
		Short: "run an algorithm and print its steps",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAlgorithm,
	}
	runCmd.Flags().BoolVar(&lastOnly, "last", false, "print only the final step")
	runCmd.Flags().BoolVar(&chart, "chart", false, "plot the final array")

	playCmd := &cobra.Command{
		Use:   "play [algo]",
		Short: "animate an algorithm in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  playAlgorithm,
	}

	exportCmd := &cobra.Command{
		Use:   "export [algo]",
		Short: "export a run as a JSON trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportTrace,
	}
	exportCmd.Flags().StringVarP(&outFile, "output", "o", "", "write one JSON document to this file ('-' for stdout) instead of the trace directory")
	exportCmd.Flags().StringVar(&svgFile, "svg", "", "also write the final step as SVG (array and graph algorithms)")

	tracesCmd := &cobra.Command{
		Use:   "traces",
		Short: "list saved traces",
		RunE:  listTraces,
	}

	showCmd := &cobra.Command{
		Use:   "show [trace_id]",
		Short: "print or replay a saved trace",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showTrace,
	}
	showCmd.Flags().StringVarP(&inFile, "file", "f", "", "read a trace document written by export -o")
	showCmd.Flags().BoolVar(&playBack, "play", false, "replay the trace in the player")

	presetsCmd := &cobra.Command{
		Use:   "presets [algo]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario]",
		Short: "run a YAML scenario and save every run as a trace",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [algo]",
		Short: "measure an array algorithm over growing random inputs",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().IntVar(&minSize, "min", 4, "smallest input length")
	sweepCmd.Flags().IntVar(&maxSize, "max", 32, "largest input length")
	sweepCmd.Flags().IntVar(&points, "points", 8, "number of input lengths")
	sweepCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the clock)")
	sweepCmd.Flags().BoolVar(&chart, "chart", false, "plot comparisons against input length")

	rootCmd.AddCommand(listCmd, describeCmd, runCmd, playCmd, exportCmd, tracesCmd, showCmd, presetsCmd, batchCmd, sweepCmd)
	return rootCmd
}

func speed() time.Duration {
	return time.Duration(speedMs) * time.Millisecond
}

// algorithmArg picks the algorithm from args, then the config file, then
// the default.
func algorithmArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if fileCfg != nil && fileCfg.Algorithm != "" {
		return fileCfg.Algorithm
	}
	return config.DefaultAlgorithm
}

// resolveInput layers the entry's sample, the preset, the config file and
// any flags the user set, in that order.
func resolveInput(cmd *cobra.Command, entry catalog.Entry) (catalog.Input, error) {
	in := entry.Sample
	if preset != "" {
		cfg := config.GetPreset(entry.Name, preset)
		if cfg == nil {
			return in, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(entry.Name))
		}
		in = cfg.Apply(in)
	}
	if fileCfg != nil {
		in = fileCfg.Apply(in)
	}

	flags := cmd.Flags()
	if flags.Changed("values") {
		in.Values = values
	}
	if flags.Changed("target") {
		in.Target = target
	}
	if flags.Changed("size") {
		in.Size = size
	}
	if flags.Changed("text") {
		in.Text = text
	}
	if flags.Changed("pattern") {
		in.Pattern = pattern
	}
	if flags.Changed("start") {
		in.Start = start
	}
	if flags.Changed("tail") {
		in.Tail = tail
	}
	if flags.Changed("capacity") {
		in.Capacity = capacity
	}
	if flags.Changed("width") {
		in.Width = width
	}
	if flags.Changed("bits") {
		in.Bits = bits
	}
	return in, nil
}

// materialize resolves the algorithm and its input and runs it to completion.
func materialize(cmd *cobra.Command, args []string) (catalog.Entry, step.Sequence, error) {
	reg := catalog.NewRegistry(catalog.WithLogger(logger))
	entry, err := reg.Get(algorithmArg(args))
	if err != nil {
		return catalog.Entry{}, step.Sequence{}, err
	}
	in, err := resolveInput(cmd, entry)
	if err != nil {
		return catalog.Entry{}, step.Sequence{}, err
	}
	seq, err := reg.Run(entry.Name, in)
	if err != nil {
		return catalog.Entry{}, step.Sequence{}, err
	}
	logger.Debug("materialized sequence", zap.String("algorithm", entry.Name), zap.Int("steps", seq.Len()))
	return entry, seq, nil
}

func listAlgorithms(cmd *cobra.Command, args []string) error {
	reg := catalog.NewRegistry(catalog.WithLogger(logger))
	out := cmd.OutOrStdout()
	for f := step.FamilyArray; f <= step.FamilyHash; f++ {
		entries := reg.ByFamily(f)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s:\n", f)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "  %s\t%s\n", e.Name, e.Summary)
		}
		w.Flush()
	}
	return nil
}

func runAlgorithm(cmd *cobra.Command, args []string) error {
	entry, seq, err := materialize(cmd, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if lastOnly {
		last := seq.Last()
		fmt.Fprintf(out, "%s: %d steps\n", entry.Name, seq.Len())
		fmt.Fprintln(out, last.Info().Message)
	} else {
		printSequence(out, seq)
	}

	fmt.Fprintln(out, "\nmetrics:")
	printMetrics(out, metrics.Summarize(seq))

	if chart {
		data, ok := chartData(seq)
		if !ok {
			return fmt.Errorf("--chart needs an array algorithm, %s is %s", entry.Name, entry.Family)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s (final array)", entry.Name)),
		))
	}
	return nil
}

func printSequence(out io.Writer, seq step.Sequence) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tLINE\tMESSAGE")
	for i, s := range seq.All() {
		meta := s.Info()
		line := "-"
		if meta.Line > 0 {
			line = fmt.Sprint(meta.Line)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", i, line, meta.Message)
	}
	w.Flush()
}

func printMetrics(out io.Writer, m map[string]float64) {
	for _, name := range slices.Sorted(maps.Keys(m)) {
		fmt.Fprintf(out, "  %s: %.0f\n", name, m[name])
	}
}

func chartData(seq step.Sequence) ([]float64, bool) {
	a, ok := seq.Last().(*step.ArrayStep)
	if !ok || len(a.Array) == 0 {
		return nil, false
	}
	data := make([]float64, len(a.Array))
	for i, v := range a.Array {
		data[i] = float64(v)
	}
	return data, true
}

func playAlgorithm(cmd *cobra.Command, args []string) error {
	if speedMs <= 0 {
		return fmt.Errorf("speed must be positive, got %d", speedMs)
	}
	if len(args) == 0 && fileCfg == nil && preset == "" {
		return viz.RunMenu(catalog.NewRegistry(catalog.WithLogger(logger)), speed(), logger)
	}
	entry, seq, err := materialize(cmd, args)
	if err != nil {
		return err
	}
	return viz.Play(entry, seq, speed(), logger, viz.WithAutoplay())
}

func exportTrace(cmd *cobra.Command, args []string) error {
	entry, seq, err := materialize(cmd, args)
	if err != nil {
		return err
	}
	summary := metrics.Summarize(seq)

	if svgFile != "" {
		svg, err := export.StepToSVG(seq.Last())
		if err != nil {
			return err
		}
		if err := os.WriteFile(svgFile, []byte(svg), 0644); err != nil {
			return err
		}
		logger.Info("svg written", zap.String("path", svgFile))
	}

	switch outFile {
	case "":
		st := store.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		id, err := st.Save(entry.Name, seq, summary)
		if err != nil {
			return err
		}
		logger.Info("trace saved", zap.String("id", id), zap.Int("steps", seq.Len()))
		fmt.Fprintf(cmd.OutOrStdout(), "trace id: %s\n", id)
		return nil
	case "-":
		return store.Export(cmd.OutOrStdout(), entry.Name, seq, summary)
	default:
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		if err := store.Export(f, entry.Name, seq, summary); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d steps to %s\n", seq.Len(), outFile)
		return nil
	}
}

func listTraces(cmd *cobra.Command, args []string) error {
	traces, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(traces) == 0 {
		fmt.Fprintln(out, "no traces")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tFAMILY\tSTEPS\tTIMESTAMP")
	for _, t := range traces {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", t.ID, t.Algorithm, t.Family, t.Steps, t.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func loadTrace(args []string) (*store.Trace, error) {
	switch {
	case inFile != "":
		f, err := os.Open(inFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return store.Import(f)
	case len(args) == 1:
		return store.New(dataDir).Load(args[0])
	default:
		return nil, errors.New("show needs a trace id or --file")
	}
}

func showTrace(cmd *cobra.Command, args []string) error {
	tr, err := loadTrace(args)
	if err != nil {
		return err
	}
	if playBack {
		if speedMs <= 0 {
			return fmt.Errorf("speed must be positive, got %d", speedMs)
		}
		entry, err := catalog.NewRegistry(catalog.WithLogger(logger)).Get(tr.Meta.Algorithm)
		if err != nil {
			// traces can outlive the algorithm that made them
			entry = catalog.Entry{Name: tr.Meta.Algorithm, Family: tr.Sequence.At(0).Kind()}
		}
		return viz.Play(entry, tr.Sequence, speed(), logger)
	}

	out := cmd.OutOrStdout()
	id := tr.Meta.ID
	if id == "" {
		id = inFile
	}
	fmt.Fprintf(out, "trace: %s\n", id)
	fmt.Fprintf(out, "algorithm: %s (%s)\n", tr.Meta.Algorithm, tr.Meta.Family)
	fmt.Fprintf(out, "steps: %d\n\n", tr.Sequence.Len())
	printSequence(out, tr.Sequence)
	if len(tr.Meta.Metrics) > 0 {
		fmt.Fprintln(out, "\nmetrics:")
		printMetrics(out, tr.Meta.Metrics)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	algos := config.Algorithms()
	if len(args) == 1 {
		algos = []string{args[0]}
	}
	for _, algo := range algos {
		names := config.ListPresets(algo)
		if len(names) == 0 {
			fmt.Fprintf(out, "no presets for algorithm: %s\n", algo)
			continue
		}
		fmt.Fprintf(out, "presets for %s:\n", algo)
		fmt.Fprintf(out, "  %s\n", strings.Join(names, "\n  "))
	}
	return nil
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	reg := catalog.NewRegistry(catalog.WithLogger(logger))
	results, err := automation.RunScenario(cmd.Context(), sc, reg, logger)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "scenario: %s\n", sc.Name)
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTEPS\tTRACE")
	for _, r := range results {
		id, err := st.Save(r.Algorithm, r.Sequence, r.Metrics)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", r.Name, r.Sequence.Len(), id)
	}
	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	sw := &automation.Sweep{Algorithm: args[0], MinSize: minSize, MaxSize: maxSize, Points: points, Seed: seed}
	results, err := automation.RunSweep(cmd.Context(), sw, catalog.NewRegistry(catalog.WithLogger(logger)))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSTEPS\tCOMPARISONS\tSWAPS")
	cmps := make([]float64, len(results))
	for i, r := range results {
		cmps[i] = r.Metrics["comparisons"]
		fmt.Fprintf(w, "%d\t%d\t%.0f\t%.0f\n", r.Size, r.Steps, r.Metrics["comparisons"], r.Metrics["swaps"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if chart && len(cmps) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, asciigraph.Plot(cmps,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption(fmt.Sprintf("%s comparisons, n = %d..%d", sw.Algorithm, results[0].Size, results[len(results)-1].Size)),
		))
	}
	return nil
}
