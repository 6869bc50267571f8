package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/warp/internal/analysis"
	"github.com/san-kum/warp/internal/config"
	"github.com/san-kum/warp/internal/curvature"
	"github.com/san-kum/warp/internal/export"
	"github.com/san-kum/warp/internal/gui"
	"github.com/san-kum/warp/internal/logging"
	"github.com/san-kum/warp/internal/metrics"
	"github.com/san-kum/warp/internal/sim"
	"github.com/san-kum/warp/internal/surface"
	"github.com/san-kum/warp/internal/viz"
)

var (
	configFile string
	preset     string
	verbose    bool

	mass       float64
	radius     float64
	extent     float64
	resolution int
	capacity   int
	semiMajor  float64
	semiMinor  float64
	step       float64
	winWidth   int
	winHeight  int
	floor      bool

	frames  int
	pngPath string
	scale   float64
)

// main registers the commands and runs the GUI when no subcommand is given.
// It exits with status 1 on any error.
func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "warp",
		Short:        "spacetime curvature visualizer",
		SilenceUsage: true,
		RunE:         runWindow,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	pf.Float64Var(&mass, "mass", config.DefaultMass, "body mass (kg)")
	pf.Float64Var(&radius, "radius", config.DefaultRadius, "body radius")
	pf.Float64Var(&extent, "extent", config.DefaultExtent, "grid side length")
	pf.IntVar(&resolution, "resolution", config.DefaultResolution, "grid cells per side")
	pf.IntVar(&capacity, "capacity", 0, "surface buffer capacity in samples (0 = sample count)")
	pf.Float64Var(&semiMajor, "semi-major", config.DefaultSemiMajor, "orbit semi-major axis")
	pf.Float64Var(&semiMinor, "semi-minor", config.DefaultSemiMinor, "orbit semi-minor axis")
	pf.Float64Var(&step, "step", config.DefaultStep, "orbit angle increment per frame")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the window and run the visualization",
		RunE:  runWindow,
	}
	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().IntVar(&winWidth, "width", config.DefaultWidth, "window width")
		c.Flags().IntVar(&winHeight, "height", config.DefaultHeight, "window height")
		c.Flags().BoolVar(&floor, "floor", false, "shade the surface with the floor program")
	}

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "print the body diagnostic",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), curvature.Diagnostic(cfg.BodySpec()))
			return nil
		},
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "chart the surface cross-section through the body",
		RunE:  runProfile,
	}
	profileCmd.Flags().IntVar(&frames, "frames", 0, "frames to advance before sampling")
	profileCmd.Flags().StringVar(&pngPath, "png", "", "write the chart to an image file instead")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [path]",
		Short: "write the terminal preview of one frame as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&frames, "frames", 0, "frames to advance before drawing")
	snapshotCmd.Flags().Float64Var(&scale, "scale", 4, "pixels per dot")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal preview of the simulation",
		RunE:  runTUI,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%s\n", name, config.DescribePreset(name))
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, infoCmd, profileCmd, snapshotCmd, tuiCmd, presetsCmd, initCmd)
	return rootCmd
}

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(*cfg, logging.Logger())
}

func newSimulator(cfg *config.Config) (*sim.Simulator, error) {
	surf, err := surface.New(cfg.GridSpec(), cfg.Grid.Capacity)
	if err != nil {
		return nil, err
	}
	return sim.New(cfg.BodySpec(), cfg.OrbitState(), cfg.Orbit.Step, surf)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	for _, m := range metrics.Standard() {
		s.AddMetric(m)
	}

	res, err := s.Run(cmd.Context(), frames)
	if err != nil {
		return err
	}
	logging.Logger().Debug("profile sampled", "frames", res.Frames, "angle", res.Final.Angle)

	pos := res.Final.BodyPos
	profile := analysis.Slice(res.Final.Samples, cfg.GridSpec(), pos.Z)
	out := cmd.OutOrStdout()

	if pngPath != "" {
		title := fmt.Sprintf("Surface height, body at (%.2f, %.2f)", pos.X, pos.Z)
		if err := analysis.SavePNG(pngPath, title, profile); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", pngPath)
		return nil
	}

	fmt.Fprintln(out, analysis.Chart(profile, 60, 12))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", res.Frames)
	fmt.Fprintf(w, "body\t(%.3f, %.3f, %.3f)\n", pos.X, pos.Y, pos.Z)
	x, h := profile.Min()
	fmt.Fprintf(w, "deepest\t%.6f at x=%.3f\n", h, x)
	for _, name := range []string{"max_depth", "mean_depth", "path_length"} {
		if v, ok := res.Metrics[name]; ok && res.Frames > 0 {
			fmt.Fprintf(w, "%s\t%.6f\n", name, v)
		}
	}
	return w.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	if _, err := s.Run(cmd.Context(), frames); err != nil {
		return err
	}

	canvas := viz.NewCanvas(96, 32)
	viz.Draw(canvas, s, viz.DefaultOrbiter())
	if err := export.SaveSVG(args[0], canvas, scale); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSimulator(cfg)
	if err != nil {
		return err
	}
	// The preview logs nothing; a handler on stderr would tear the screen.
	logging.SetLogger(nil)
	return viz.Run(s, metrics.Standard()...)
}
