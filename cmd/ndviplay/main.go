package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ndviplay/internal/config"
	"github.com/san-kum/ndviplay/internal/cvwin"
	"github.com/san-kum/ndviplay/internal/frame"
	"github.com/san-kum/ndviplay/internal/gui"
	"github.com/san-kum/ndviplay/internal/metrics"
	"github.com/san-kum/ndviplay/internal/pipeline"
	"github.com/san-kum/ndviplay/internal/playback"
	"github.com/san-kum/ndviplay/internal/report"
	"github.com/san-kum/ndviplay/internal/source"
	"github.com/san-kum/ndviplay/internal/viz"
)

var (
	configFile     string
	preset         string
	dir            string
	pattern        string
	interval       time.Duration
	backend        string
	emptySelection string
	holdKeys       []string
	logFile        string
	// inspect/series
	bins      int
	seriesOut string
)

// main registers the playback root command and its helpers, and exits with
// status 1 when any of them fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "ndviplay",
		Short:        "false-color index playback of an image sequence",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runPlayback,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&dir, "dir", config.DefaultDir, "directory holding the frames")
	rootCmd.PersistentFlags().StringVar(&pattern, "pattern", config.DefaultPattern, "glob selecting frame files")
	rootCmd.Flags().DurationVar(&interval, "interval", config.DefaultInterval, "time each frame stays on screen")
	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "display backend (tui, gui, cv)")
	rootCmd.Flags().StringVar(&emptySelection, "empty-selection", config.DefaultEmptySelection, "what an empty baseline selection does (clear, keep)")
	rootCmd.Flags().StringSliceVar(&holdKeys, "hold-key", nil, "keys that toggle hold")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")

	inspectCmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "render one frame and print its index statistics",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectFrame,
	}
	inspectCmd.Flags().IntVar(&bins, "bins", 20, "histogram bins")

	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "plot the mean index of every frame",
		Args:  cobra.NoArgs,
		RunE:  plotSeries,
	}
	seriesCmd.Flags().StringVar(&seriesOut, "out", "", "write the series to a .json or .csv file instead of plotting")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "config-dump [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  dumpConfig,
	}

	rootCmd.AddCommand(inspectCmd, seriesCmd, presetsCmd, dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and explicitly set flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = dir
	}
	if flags.Changed("pattern") {
		cfg.Pattern = pattern
	}
	if flags.Changed("interval") {
		cfg.Interval = interval
	}
	if flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Changed("empty-selection") {
		cfg.EmptySelection = emptySelection
	}
	if flags.Changed("hold-key") {
		cfg.Keys.Hold = holdKeys
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger picks the log destination. The terminal backend owns stdout and
// stderr, so without a log file it logs nowhere.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "ndviplay")
		if err != nil {
			return nil, nil, err
		}
		return slog.New(slog.NewTextHandler(f, nil)), f, nil
	}
	if cfg.Backend == "tui" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	return slog.New(slog.NewTextHandler(os.Stderr, nil)), io.NopCloser(nil), nil
}

type surface interface {
	playback.Surface
	Close() error
}

type guiSurface struct {
	*gui.Window
}

func (g guiSurface) Close() error {
	g.Window.Close()
	return nil
}

func openSurface(cfg *config.Config, windows []string) (surface, error) {
	switch cfg.Backend {
	case "gui":
		return guiSurface{gui.Open(gui.Options{Windows: windows})}, nil
	case "cv":
		return cvwin.Open(windows)
	default:
		t := viz.New(viz.Options{
			Windows: windows,
			Cols:    cfg.Preview.Width,
			Rows:    cfg.Preview.Height,
		})
		t.Start()
		return t, nil
	}
}

func runPlayback(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	src := source.New(cfg.Dir, cfg.Pattern)
	files, err := src.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "cannot find image files. exiting...")
		return frame.ErrNoFrames
	}

	opts, err := cfg.PlaybackOptions()
	if err != nil {
		return err
	}
	logger, logCloser, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logCloser.Close()
	opts.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	surf, err := openSurface(cfg, []string{opts.IndexWindow, opts.DiffWindow})
	if err != nil {
		return err
	}

	ctrl, err := playback.New(playback.Sequence(files), src, surf, opts)
	if err != nil {
		surf.Close()
		return err
	}
	for _, m := range metrics.Defaults() {
		ctrl.AddMetric(m)
	}

	logger.Info("playback started", "frames", len(files), "backend", cfg.Backend, "interval", cfg.Interval)
	runErr := ctrl.Run(ctx)
	return errors.Join(runErr, surf.Close())
}

func inspectFrame(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := args[0]
	img, err := source.New("", "").Decode(path)
	if err != nil {
		return err
	}

	out := pipeline.Filter{Kind: pipeline.ColormapFilter}.Transform(img)
	preview := viz.NewPreview(out.Color, cfg.Preview.Width, cfg.Preview.Height)
	fmt.Println(preview.Render(image.Rectangle{}, image.Point{X: -1, Y: -1}))
	fmt.Println()

	lo, hi := out.Index.MinMax()
	fmt.Printf("file: %s\n", path)
	fmt.Printf("size: %dx%d\n", img.Width, img.Height)
	fmt.Printf("index min: %.4f\n", lo)
	fmt.Printf("index max: %.4f\n", hi)
	fmt.Printf("index mean: %.4f\n\n", out.Index.Mean(out.Index.Bounds()))

	if len(out.Index.Data) == 0 {
		return nil
	}
	hist := metrics.Histogram(out.Index, bins, -1, 1)
	graph := asciigraph.Plot(hist,
		asciigraph.Height(8),
		asciigraph.Caption("index histogram (-1 to 1)"),
	)
	fmt.Println(graph)
	return nil
}

func plotSeries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	src := source.New(cfg.Dir, cfg.Pattern)
	files, err := src.List()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return frame.ErrNoFrames
	}

	series := report.New(cfg.Dir, cfg.Pattern)
	for _, path := range files {
		img, err := src.Decode(path)
		if err != nil {
			series.AddError(path, err)
			continue
		}
		out := pipeline.Filter{Kind: pipeline.IndexFilter}.Transform(img)
		series.Add(path, out.Index)
	}

	if seriesOut != "" {
		if err := series.Save(seriesOut); err != nil {
			return err
		}
		fmt.Printf("series written to %s\n", seriesOut)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tSIZE\tMIN\tMAX\tMEAN")
	for _, fs := range series.Frames {
		if fs.Error != "" {
			fmt.Fprintf(w, "%s\t-\t-\t-\t%s\n", fs.Path, fs.Error)
			continue
		}
		fmt.Fprintf(w, "%s\t%dx%d\t%.4f\t%.4f\t%.4f\n", fs.Path, fs.Width, fs.Height, fs.Min, fs.Max, fs.Mean)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	means := series.Means()
	if len(means) < 2 {
		return nil
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(means,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean index per frame"),
	))
	return nil
}

func dumpConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if err := config.Save(args[0], cfg); err != nil {
			return err
		}
		fmt.Printf("config written to %s\n", args[0])
		return nil
	}
	data, err := cfg.YAML()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
