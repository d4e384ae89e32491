package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"paleochart/internal/chart"
	"paleochart/internal/config"
	"paleochart/internal/export"
	"paleochart/internal/proxy"
	"paleochart/internal/tui"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file")
		file       = flag.String("file", "", "load records from a local .json or .csv file instead of the url")
		exportPath = flag.String("export", "", "render to .svg, .png or .html and exit")
		zoom       = flag.Float64("zoom", 1, "zoom factor applied before an image export")
		pan        = flag.Float64("pan", 0, "horizontal pan in pixels applied before an image export")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolvePath(*configPath))
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}

	if *exportPath != "" {
		log := setupLogger(cfg.Env, os.Stderr)
		if err := runExport(log, cfg, *file, *exportPath, *zoom, *pan); err != nil {
			log.Error("Export failed", "err", err)
			os.Exit(1)
		}
		return
	}

	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		os.Exit(2)
	}
	defer closeLog()
	log := setupLogger(cfg.Env, logOut)
	log.Info("Starting paleochart", "env", cfg.Env, "url", cfg.Source.URL, "file", *file)

	opts := viewerOptions(cfg)
	opts.Path = *file
	m := tui.New(opts, log, proxy.NewFetcher(log, cfg.Source.Timeout))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error("Viewer stopped", "err", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runExport reads the dataset, applies the gesture flags and writes the file.
func runExport(log *slog.Logger, cfg *config.Config, file, path string, k, dx float64) error {
	var (
		recs []proxy.Record
		err  error
	)
	if file != "" {
		recs, err = proxy.LoadFile(file)
	} else {
		recs, err = proxy.NewFetcher(log, cfg.Source.Timeout).Fetch(context.Background(), cfg.Source.URL)
	}
	if err != nil {
		return err
	}
	kept := proxy.Filter(recs, filterOptions(cfg))
	log.Info("Filtered records", "read", len(recs), "kept", len(kept))

	l := canvasLayout(cfg)
	z := l.Zoom(cfg.Canvas.MinZoom, cfg.Canvas.MaxZoom)
	log.Debug("Chart built", "chart", chart.New(kept, l, z).Describe())
	t := z.ScaleBy(chart.Identity, k, z.Center())
	t = z.TranslateBy(t, -dx, 0)
	o := export.Options{
		Layout:    l,
		MinZoom:   cfg.Canvas.MinZoom,
		MaxZoom:   cfg.Canvas.MaxZoom,
		Transform: t,
	}
	if err := export.WriteFile(path, kept, o); err != nil {
		return err
	}
	log.Info("Exported chart", "path", path, "k", t.K, "x", t.X)
	return nil
}

func viewerOptions(cfg *config.Config) tui.Options {
	o := tui.DefaultOptions()
	o.URL = cfg.Source.URL
	o.Filter = filterOptions(cfg)
	o.Canvas = canvasLayout(cfg)
	o.MinZoom = cfg.Canvas.MinZoom
	o.MaxZoom = cfg.Canvas.MaxZoom
	return o
}

func filterOptions(cfg *config.Config) proxy.FilterOptions {
	return proxy.FilterOptions{
		MinYears:    cfg.Source.MinYears,
		MaxYears:    cfg.Source.MaxYears,
		Limit:       cfg.Source.MaxRecords,
		ValidateAll: cfg.Source.ValidateAll,
	}
}

func canvasLayout(cfg *config.Config) chart.Layout {
	mg := cfg.Canvas.Margin
	return chart.Layout{
		Width:    cfg.Canvas.Width,
		Height:   cfg.Canvas.Height,
		Margin:   chart.Margins{Top: mg, Right: mg, Bottom: mg, Left: mg},
		Overscan: cfg.Canvas.Overscan,
	}
}

// openLog opens the viewer's log file. Without one, logs are discarded so
// they do not draw over the alt screen.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func setupLogger(env string, w io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = slog.New(
			slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvDev:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case config.EnvProd:
		log = slog.New(
			slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(slog.NewTextHandler(w, nil))
	}

	return log
}
