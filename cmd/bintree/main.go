package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/san-kum/bintree/internal/config"
	"github.com/san-kum/bintree/internal/export"
	"github.com/san-kum/bintree/internal/render"
	"github.com/san-kum/bintree/internal/report"
	"github.com/san-kum/bintree/internal/script"
	"github.com/san-kum/bintree/internal/session"
	"github.com/san-kum/bintree/internal/tree"
	"github.com/san-kum/bintree/internal/tui"
	"github.com/san-kum/bintree/internal/viz"
)

var (
	configFile string
	dataDir    string
	theme      string
	strict     bool
	verbose    bool
	preset     string
	// traverse
	orderNames []string
	// export-svg
	outFile   string
	svgWidth  int
	svgHeight int
	// draw
	canvasWidth  int
	canvasHeight int
	// bench
	benchDepth  int
	benchRounds int
)

// main registers the bintree commands and runs the interactive session when
// no subcommand is given.
func main() {
	statusToStderr()

	rootCmd := &cobra.Command{
		Use:           "bintree",
		Short:         "binary tree builder and traversal lab",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				pterm.EnableDebugMessages()
			}
		},
		Args: cobra.MaximumNArgs(1),
		RunE: runRepl,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "report directory")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "ocean", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject truncated or trailing encodings")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a preset encoding instead of an argument")

	replCmd := &cobra.Command{
		Use:   "repl [encoding]",
		Short: "interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRepl,
	}

	validateCmd := &cobra.Command{
		Use:   "validate [input]",
		Short: "check that input only uses A-Z and '#'",
		Args:  cobra.ExactArgs(1),
		RunE:  validateInput,
	}

	buildCmd := &cobra.Command{
		Use:   "build [encoding]",
		Short: "build a tree and show its shape",
		Args:  cobra.MaximumNArgs(1),
		RunE:  buildTree,
	}
	buildCmd.Flags().IntVar(&canvasWidth, "width", 0, "canvas width in cells")
	buildCmd.Flags().IntVar(&canvasHeight, "height", 0, "canvas height in cells")

	runCmd := &cobra.Command{
		Use:   "run [encoding] [command]...",
		Short: "dispatch commands against a tree",
		Long:  "run builds the encoding and then dispatches each command, exactly as typed in the interactive session.\n\nCommands: " + strings.Join(session.CommandNames(), ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCommands,
	}

	traverseCmd := &cobra.Command{
		Use:   "traverse [encoding]",
		Short: "print traversals as a table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  traverseTree,
	}
	traverseCmd.Flags().StringSliceVar(&orderNames, "order", nil, "orders to run (default all)")

	drawCmd := &cobra.Command{
		Use:   "draw [encoding]",
		Short: "draw the tree in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  drawTree,
	}
	drawCmd.Flags().IntVar(&canvasWidth, "width", 0, "canvas width in cells")
	drawCmd.Flags().IntVar(&canvasHeight, "height", 0, "canvas height in cells")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [encoding]",
		Short: "write the tree drawing to an SVG file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "tree.svg", "output file")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 0, "document width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 0, "minimum document height")

	levelsCmd := &cobra.Command{
		Use:   "levels [encoding]",
		Short: "plot nodes per level",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotLevels,
	}

	scriptCmd := &cobra.Command{
		Use:   "script [file]",
		Short: "replay a yaml session script",
		Args:  cobra.ExactArgs(1),
		RunE:  runScript,
	}

	reportCmd := &cobra.Command{
		Use:   "report [encoding]",
		Short: "save a traversal report",
		Args:  cobra.MaximumNArgs(1),
		RunE:  saveReport,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved reports",
		RunE:  listReports,
	}

	showCmd := &cobra.Command{
		Use:   "show [report_id]",
		Short: "print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE:  showReport,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time recursive and iterative traversals on a perfect tree",
		RunE:  benchTraversals,
	}
	benchCmd.Flags().IntVar(&benchDepth, "depth", 16, "tree depth")
	benchCmd.Flags().IntVar(&benchRounds, "rounds", 5, "rounds per traversal")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset encodings",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tENCODING")
			for _, name := range config.ListPresets() {
				enc, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\n", name, enc)
			}
			return w.Flush()
		},
	}

	commandsCmd := &cobra.Command{
		Use:   "commands",
		Short: "list session command identifiers",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range session.CommandNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(replCmd, validateCmd, buildCmd, runCmd, traverseCmd, drawCmd, exportSVGCmd,
		levelsCmd, scriptCmd, reportCmd, listCmd, showCmd, benchCmd, presetsCmd, commandsCmd)

	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		if hint := session.Hint(err); hint != "" {
			pterm.Info.Println(hint)
		}
		os.Exit(1)
	}
}

// statusToStderr moves every pterm status printer off stdout, leaving stdout
// to command results.
func statusToStderr() {
	pterm.Info = *pterm.Info.WithWriter(os.Stderr)
	pterm.Success = *pterm.Success.WithWriter(os.Stderr)
	pterm.Warning = *pterm.Warning.WithWriter(os.Stderr)
	pterm.Error = *pterm.Error.WithWriter(os.Stderr)
	pterm.Debug = *pterm.Debug.WithWriter(os.Stderr)
}

// loadConfig layers defaults, the config file, BINTREE_* variables and
// explicitly set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, errors.Wrap(err, "load config")
		}
		cfg = loaded
		pterm.Debug.Printfln("loaded config from %s", configFile)
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("strict") {
		cfg.Strict = strict
	}
	if flags.Changed("data") {
		cfg.DataDir = dataDir
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("width") && canvasWidth > 0 {
		cfg.Canvas.Width = canvasWidth
	}
	if flags.Changed("height") && canvasHeight > 0 {
		cfg.Canvas.Height = canvasHeight
	}
	return cfg, nil
}

// encodingArg picks the encoding from --preset or the first argument.
func encodingArg(args []string) (string, error) {
	if preset != "" {
		enc, ok := config.GetPreset(preset)
		if !ok {
			return "", errors.Newf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		return enc, nil
	}
	if len(args) == 0 {
		return "", errors.New("an encoding argument or --preset is required")
	}
	return args[0], nil
}

// buildArg validates and builds the encoding named by args.
func buildArg(cfg *config.Config, args []string) (string, *tree.Tree, error) {
	enc, err := encodingArg(args)
	if err != nil {
		return "", nil, err
	}
	if !tree.Valid(enc) {
		return "", nil, errors.Wrapf(tree.ErrInvalidInput, "%q", enc)
	}
	if cfg.Strict {
		t, err := tree.BuildStrict(enc)
		return enc, t, err
	}
	t := tree.Build(enc)
	if _, err := tree.BuildStrict(enc); err != nil {
		pterm.Warning.Printfln("%v (built partial tree)", err)
	}
	return enc, t, nil
}

func canvasLayout(cfg *config.Config) viz.CanvasLayout {
	return viz.CanvasLayout{
		Radius:   cfg.Canvas.Radius,
		Top:      cfg.Canvas.Top,
		LevelGap: cfg.Canvas.LevelGap,
	}
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Strict:       cfg.Strict,
		Theme:        cfg.Theme,
		CanvasWidth:  cfg.Canvas.Width,
		CanvasHeight: cfg.Canvas.Height,
		Layout:       canvasLayout(cfg),
	}
	if len(args) > 0 || preset != "" {
		if opts.Initial, err = encodingArg(args); err != nil {
			return err
		}
	}

	if err := tui.Run(opts); err != nil {
		if !errors.Is(err, tree.ErrInvalidInput) {
			return err
		}
		pterm.Warning.Printfln("session ended: %v", err)
		if hint := session.Hint(err); hint != "" {
			pterm.Info.Println(hint)
		}
	}
	return nil
}

func validateInput(cmd *cobra.Command, args []string) error {
	if !tree.Valid(args[0]) {
		return errors.Wrapf(tree.ErrInvalidInput, "%q", args[0])
	}
	if _, err := tree.BuildStrict(args[0]); err != nil {
		pterm.Warning.Printfln("valid characters, but %v", err)
		return nil
	}
	pterm.Success.Printfln("%q is a complete encoding", args[0])
	return nil
}

func buildTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	enc, t, err := buildArg(cfg, args)
	if err != nil {
		return err
	}

	s := tree.Summarize(t)
	fmt.Printf("encoding: %s\n", tree.Encode(t))
	fmt.Printf("nodes: %d\n", s.Size)
	fmt.Printf("height: %d\n", s.Height)
	fmt.Printf("leaves: %d\n", s.Leaves)
	fmt.Printf("levels: %v\n\n", s.Levels)
	pterm.Debug.Printfln("built %d nodes from %d bytes", s.Size, len(enc))

	c := viz.DrawTree(t, cfg.Canvas.Width, cfg.Canvas.Height, canvasLayout(cfg))
	fmt.Print(c.String())
	return nil
}

func runCommands(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	inputs := args
	if preset != "" {
		enc, err := encodingArg(nil)
		if err != nil {
			return err
		}
		inputs = append([]string{enc}, args...)
	}

	s := session.New(session.WithStrict(cfg.Strict))
	for _, input := range inputs {
		res, err := s.Dispatch(input)
		if err != nil {
			if s.Ended() {
				return err
			}
			pterm.Error.Println(err)
			continue
		}
		if res.Built {
			pterm.Debug.Printfln("built tree with %d nodes", tree.Size(res.Tree.Root()))
			continue
		}
		fmt.Printf("%s: %s\n", res.Command, res.Output)
	}
	return nil
}

func traverseTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, t, err := buildArg(cfg, args)
	if err != nil {
		return err
	}

	orders := tree.Orders()
	if len(orderNames) > 0 {
		orders = orders[:0:0]
		for _, name := range orderNames {
			o, err := tree.ParseOrder(name)
			if err != nil {
				return err
			}
			orders = append(orders, o)
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Order", "Strategy", "Output"})
	table.SetAutoWrapText(false)
	for _, o := range orders {
		strategy := "iterative"
		if o.Recursive() {
			strategy = "recursive"
		}
		table.Append([]string{o.String(), strategy, strings.TrimSpace(tree.Traverse(o, t.Root()))})
	}
	table.SetFooter([]string{"leaves", "", fmt.Sprint(tree.CountLeafNodes(t.Root()))})
	table.Render()
	return nil
}

func drawTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, t, err := buildArg(cfg, args)
	if err != nil {
		return err
	}
	c := viz.DrawTree(t, cfg.Canvas.Width, cfg.Canvas.Height, canvasLayout(cfg))
	styles := viz.NewStyles(viz.GetTheme(cfg.Theme))
	fmt.Println(styles.Tree.Render(c.String()))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, t, err := buildArg(cfg, args)
	if err != nil {
		return err
	}

	width, height := cfg.SVG.Width, cfg.SVG.Height
	if svgWidth > 0 {
		width = svgWidth
	}
	if svgHeight > 0 {
		height = svgHeight
	}
	layout := render.Layout{
		Width:    float64(width),
		Radius:   cfg.SVG.Radius,
		Top:      cfg.SVG.Top,
		LevelGap: cfg.SVG.LevelGap,
	}
	style := export.SVGStyle{Fill: cfg.SVG.Fill, Stroke: cfg.SVG.Stroke, Line: cfg.SVG.Line}

	if err := export.WriteSVG(outFile, t, width, height, layout, style); err != nil {
		return err
	}
	pterm.Success.Printfln("wrote %s", outFile)
	return nil
}

func plotLevels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	_, t, err := buildArg(cfg, args)
	if err != nil {
		return err
	}

	widths := tree.LevelWidths(t.Root())
	if len(widths) == 0 {
		return errors.New("empty tree has no levels")
	}

	data := make([]float64, len(widths))
	for i, w := range widths {
		data[i] = float64(w)
	}
	// asciigraph needs two points to draw a line
	if len(data) == 1 {
		data = append(data, data[0])
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("nodes per level (root at left)"),
	)
	fmt.Println(graph)
	fmt.Printf("\nlevels: %v\n", widths)
	return nil
}

func runScript(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := script.Load(args[0])
	if err != nil {
		return err
	}
	if cfg.Strict {
		sc.Strict = true
	}

	pterm.Info.Printfln("running script %s (%d steps)", sc.Name, len(sc.Steps))
	results, err := script.Run(sc)
	for i, r := range results {
		switch {
		case r.Err != nil:
			fmt.Printf("%3d  %-28s error: %v\n", i+1, r.Step.Input, r.Err)
		case r.Result.Built:
			fmt.Printf("%3d  %-28s built (%d nodes)\n", i+1, r.Step.Input, tree.Size(r.Result.Tree.Root()))
		default:
			fmt.Printf("%3d  %-28s %s\n", i+1, r.Step.Input, r.Result.Output)
		}
	}
	if err != nil {
		return err
	}
	pterm.Success.Printfln("%d steps passed", len(results))
	return nil
}

func saveReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	enc, t, err := buildArg(cfg, args)
	if err != nil {
		return err
	}

	st := report.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		return err
	}
	r := report.Generate(enc, t)
	if err := st.Save(r); err != nil {
		return err
	}
	pterm.Success.Printfln("report id: %s", r.ID)
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reports, err := report.New(cfg.DataDir).List()
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Println("no reports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tNODES\tLEAVES\tENCODING")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n",
			r.ID,
			r.Timestamp.Local().Format("2006-01-02 15:04:05"),
			r.Stats.Size,
			r.Stats.Leaves,
			r.Encoding,
		)
	}
	return w.Flush()
}

func showReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st := report.New(cfg.DataDir)
	r, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("report: %s\n", r.ID)
	fmt.Printf("encoding: %s\n", r.Encoding)
	fmt.Printf("created: %s\n", r.Timestamp.Local().Format(time.RFC1123))
	fmt.Printf("nodes: %d  height: %d  leaves: %d\n\n", r.Stats.Size, r.Stats.Height, r.Stats.Leaves)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, tr := range r.Traversals {
		fmt.Fprintf(w, "%s\t%s\n", tr.Order, tr.Output)
	}
	return w.Flush()
}

// perfectEncoding returns the encoding of a perfect tree with depth levels,
// labelling nodes A-Z in pre-order.
func perfectEncoding(depth int) string {
	var b strings.Builder
	next := 0
	var write func(level int)
	write = func(level int) {
		if level == 0 {
			b.WriteByte(tree.Sentinel)
			return
		}
		b.WriteByte(byte('A' + next%26))
		next++
		write(level - 1)
		write(level - 1)
	}
	write(depth)
	return b.String()
}

func benchTraversals(cmd *cobra.Command, args []string) error {
	if benchDepth < 1 || benchDepth > 24 {
		return errors.Newf("depth must be between 1 and 24, got %d", benchDepth)
	}
	if benchRounds < 1 {
		benchRounds = 1
	}

	t := tree.Build(perfectEncoding(benchDepth))
	size := tree.Size(t.Root())
	fmt.Printf("perfect tree: depth %d, %d nodes\n\n", benchDepth, size)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tROUNDS\tTIME/ROUND\tNODES/SEC\tMATCHES")
	for _, o := range tree.Orders() {
		var out string
		start := time.Now()
		for i := 0; i < benchRounds; i++ {
			out = tree.Traverse(o, t.Root())
		}
		perRound := time.Since(start) / time.Duration(benchRounds)
		if perRound <= 0 {
			perRound = time.Nanosecond
		}

		matches := "-"
		if c := o.Counterpart(); c != o {
			matches = fmt.Sprint(tree.Traverse(c, t.Root()) == out)
		}
		fmt.Fprintf(w, "%s\t%d\t%v\t%.0f\t%s\n",
			o, benchRounds, perRound, float64(size)/perRound.Seconds(), matches)
	}
	return w.Flush()
}
