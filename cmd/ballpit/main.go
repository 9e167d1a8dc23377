package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/jakecoffman/cp/v2"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/export"
	"github.com/san-kum/ballpit/internal/gui"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
	"github.com/san-kum/ballpit/internal/viz"
	"github.com/san-kum/ballpit/internal/world"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	color      string
	count      int
	angle      float64
	seed       int64
	frames     int
	fps        int
	width      float64
	height     float64
	logLevel   string
	logFile    string
	realtime   bool
	svgFile    string
)

// main runs the terminal view when no subcommand is given. It exits with
// status 1 if the command fails.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "ballpit",
		Short:        "balls bouncing on a tilted ground",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.StringVar(&color, "color", config.DefaultColor, "ball colour")
	pf.IntVar(&count, "count", config.DefaultCount, "number of balls")
	pf.Float64Var(&angle, "angle", config.DefaultAngle, "ground angle in degrees")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	pf.IntVar(&fps, "fps", config.DefaultFPS, "frames per second")
	pf.StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and report metrics",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	runCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "viewport width")
	runCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "viewport height")
	runCmd.Flags().BoolVar(&realtime, "realtime", false, "pace frames at --fps instead of running flat out")
	runCmd.Flags().StringVar(&svgFile, "svg", "", "write the last frame and ball trails to this svg file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
	guiCmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "window width")
	guiCmd.Flags().Float64Var(&height, "height", config.DefaultHeight, "window height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenes",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}

	rootCmd.AddCommand(runCmd, guiCmd, presetsCmd, initCmd)
	return rootCmd
}

// loadConfig layers defaults, the preset, the config file and explicitly
// set flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (see 'ballpit presets')", preset)
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("color") {
		cfg.Scene.Color = color
	}
	if flags.Changed("count") {
		cfg.Scene.Count = count
	}
	if flags.Changed("angle") {
		cfg.Scene.AngleDeg = angle
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("width") {
		cfg.Viewport.Width = width
	}
	if flags.Changed("height") {
		cfg.Viewport.Height = height
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes to w, or to --log-file when set.
func newLogger(cfg *config.Config, w io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "ballpit",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	return logger, closeFn, nil
}

func newLoop(cfg *config.Config, logger *log.Logger, opts ...sim.Option) *sim.Loop {
	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	logger.Debug("seeded", "seed", s)

	w := world.New(cfg.Bounds(), cfg.Physics, rand.New(rand.NewSource(s)))
	return sim.New(w, append([]sim.Option{sim.WithLogger(logger)}, opts...)...)
}

// runTUI hosts the world in the terminal. Logs are discarded unless
// --log-file is set, since stderr shares the alt-screen.
func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	return viz.Run(newLoop(cfg, logger), cfg.Scene, cfg.FPS)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("opening window", "width", cfg.Viewport.Width, "height", cfg.Viewport.Height)
	return gui.Run(newLoop(cfg, logger), cfg.Scene, cfg.FPS)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	var svg *export.SVGRenderer
	var trails [][]cp.Vector
	var opts []sim.Option
	if svgFile != "" {
		svg = export.NewSVGRenderer()
		opts = append(opts, sim.WithRenderer(svg))
	}

	loop := newLoop(cfg, logger, opts...)
	if svg != nil {
		loop.AddObserver(sim.ObserverFunc(func(snap world.Snapshot, stats world.FrameStats) {
			if trails == nil {
				trails = make([][]cp.Vector, len(snap.Bodies))
			}
			for i, b := range snap.Bodies {
				trails[i] = append(trails[i], b.Pos)
			}
		}))
	}
	ms := metrics.Default()
	for _, m := range ms {
		loop.AddMetric(m)
	}
	loop.Configure(cfg.Scene)

	logger.Info("running", "frames", cfg.Frames, "count", cfg.Scene.Count, "angle", cfg.Scene.AngleDeg, "realtime", realtime)

	var result *sim.Result
	if realtime {
		result, err = runPaced(ctx, loop, ms, cfg)
	} else {
		result, err = loop.RunFrames(ctx, sim.Config{FPS: cfg.FPS, Frames: cfg.Frames})
	}
	if errors.Is(err, context.Canceled) && result != nil {
		logger.Warn("interrupted", "frames", result.Frames)
	} else if err != nil {
		return err
	}

	report(cmd.OutOrStdout(), result, ms)

	if svg != nil {
		for _, trail := range trails {
			svg.AddTrail(trail, cfg.Scene.Color)
		}
		if err := svg.WriteFile(svgFile); err != nil {
			return fmt.Errorf("write svg: %w", err)
		}
		logger.Info("wrote svg", "path", svgFile)
	}
	return nil
}

// runPaced steps one frame per tick and stops after cfg.Frames frames.
func runPaced(ctx context.Context, loop *sim.Loop, ms []sim.Metric, cfg *config.Config) (*sim.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	result := &sim.Result{
		Metrics: make(map[string]float64),
		Energy:  make([]float64, 0, cfg.Frames),
	}
	loop.AddObserver(sim.ObserverFunc(func(snap world.Snapshot, stats world.FrameStats) {
		result.Frames++
		result.Collisions += stats.Collisions
		result.Energy = append(result.Energy, snap.KineticEnergy())
		if result.Frames >= cfg.Frames {
			cancel()
		}
	}))

	ticks, stopTicks := sim.Ticker(cfg.FPS)
	defer stopTicks()

	var err error
	if cfg.Frames > 0 {
		err = loop.Run(ctx, ticks)
	}
	if errors.Is(err, context.Canceled) && result.Frames >= cfg.Frames {
		err = nil
	}

	for _, m := range ms {
		result.Metrics[m.Name()] = m.Value()
	}
	result.FinalBodies = loop.World().Snapshot().Bodies
	return result, err
}

func report(out io.Writer, result *sim.Result, ms []sim.Metric) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	fmt.Fprintf(w, "frames\t%d\n", result.Frames)
	fmt.Fprintf(w, "collisions\t%d\n", result.Collisions)
	for _, m := range ms {
		if v, ok := result.Metrics[m.Name()]; ok {
			fmt.Fprintf(w, "%s\t%.4f\n", m.Name(), v)
		}
	}
	w.Flush()
	fmt.Fprintln(out)

	if len(result.Energy) > 1 {
		graph := asciigraph.Plot(result.Energy,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("kinetic energy per frame"),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}

	if len(result.FinalBodies) == 0 {
		return
	}
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX\tY\tVX\tVY")
	for i, b := range result.FinalBodies {
		fmt.Fprintf(w, "%d\t%.1f\t%.1f\t%.3f\t%.3f\n", i, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCOUNT\tANGLE\tCOLOR\tFRAMES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%.0f\t%s\t%d\n", name, p.Scene.Count, p.Scene.AngleDeg, p.Scene.Color, p.Frames)
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}
