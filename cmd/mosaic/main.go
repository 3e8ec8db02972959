package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/mosaic/pkg/adapters/filesink"
	"github.com/user/mosaic/pkg/adapters/fonts"
	"github.com/user/mosaic/pkg/adapters/ggcanvas"
	"github.com/user/mosaic/pkg/adapters/logger"
	"github.com/user/mosaic/pkg/adapters/nullsink"
	"github.com/user/mosaic/pkg/adapters/osfilesystem"
	"github.com/user/mosaic/pkg/adapters/pdfcanvas"
	"github.com/user/mosaic/pkg/config"
	"github.com/user/mosaic/pkg/drawing"
	"github.com/user/mosaic/pkg/orchestrator"
	"github.com/user/mosaic/pkg/platform"
	"github.com/user/mosaic/pkg/ports"
	"github.com/user/mosaic/pkg/stages/draw"
	"github.com/user/mosaic/pkg/stages/export"
	"github.com/user/mosaic/pkg/summarizer"
	"github.com/user/mosaic/pkg/textlayout"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "mosaic",
		Usage:   l10n.T("Draw scripted shapes, text and images onto a canvas"),
		Version: version,
		Commands: []*cli.Command{
			renderCommand(),
			measureCommand(),
			wrapCommand(),
			{
				Name:  "version",
				Usage: l10n.T("Show version information"),
				Action: func(c *cli.Context) error {
					p := platform.New(runtime.GOOS, userAgent(), nil, nil)
					fmt.Fprintln(c.App.Writer, l10n.F("mosaic version %s (%s)", version, p.UserAgent))
					return nil
				},
			},
		},
	}
}

func userAgent() string {
	return fmt.Sprintf("mosaic/%s (%s; %s) %s", version, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func fontFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Configuration")},
		&cli.StringFlag{Name: "font", Usage: l10n.T("Font name (default from config)"), Category: l10n.T("Text")},
		&cli.Float64Flag{Name: "size", Usage: l10n.T("Font size in pixels (default from config)"), Category: l10n.T("Text")},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     l10n.T("Render a draw script to PNG, JPEG or PDF"),
		ArgsUsage: "<script.yaml>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Required: true, Usage: l10n.T("Output file path (required)"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: l10n.T("Output format: png, jpeg or pdf (default: from the output extension)"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Output render summary to file (Markdown format)"), Category: l10n.T("Output")},
			&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Configuration")},
			&cli.StringFlag{Name: "backend", Aliases: []string{"b"}, Usage: l10n.T("Drawing backend: raster or pdf"), Category: l10n.T("Configuration")},
			&cli.Float64Flag{Name: "scale", Usage: l10n.T("Override the script scale factor"), Category: l10n.T("Configuration")},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: l10n.T("Save the parsed script and per-op snapshots"), Category: l10n.T("Debug")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.StringFlag{Name: "log-file", Usage: l10n.T("Also write logs to a rotated file"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all console log output"), Category: l10n.T("Logging")},
		},
		Action: runRender,
	}
}

func measureCommand() *cli.Command {
	return &cli.Command{
		Name:      "measure",
		Usage:     l10n.T("Print the metrics of a line of text"),
		ArgsUsage: "<text>",
		Flags:     fontFlags(),
		Action: func(c *cli.Context) error {
			surface, opts, err := textSurface(c)
			if err != nil {
				return err
			}
			m := surface.MeasureText(c.Args().First(), opts)
			fmt.Fprintln(c.App.Writer, l10n.F("width %.2f ascent %.2f descent %.2f height %.2f", m.Width, m.Ascent, m.Descent, m.Height()))
			return nil
		},
	}
}

func wrapCommand() *cli.Command {
	flags := append(fontFlags(),
		&cli.Float64Flag{Name: "width", Aliases: []string{"w"}, Required: true, Usage: l10n.T("Maximum line width in pixels (required)"), Category: l10n.T("Text")},
		&cli.Float64Flag{Name: "line-height", Usage: l10n.T("Line height in pixels (default from config)"), Category: l10n.T("Text")},
	)
	return &cli.Command{
		Name:      "wrap",
		Usage:     l10n.T("Wrap text to a width and print the lines"),
		ArgsUsage: "<text>",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			surface, opts, err := textSurface(c)
			if err != nil {
				return err
			}
			if c.IsSet("line-height") {
				opts.LineHeight = c.Float64("line-height")
			}
			for _, line := range textlayout.Wrap(surface, c.Args().First(), c.Float64("width"), opts) {
				fmt.Fprintf(c.App.Writer, "%7.2f  %s\n", line.Metrics.Width, line.Text)
			}
			return nil
		},
	}
}

func runRender(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit(l10n.T("render needs exactly one script path"), 2)
	}
	scriptPath := c.Args().First()
	output := c.String("output")

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	applyRenderFlags(c, &cfg, output)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closeLog := buildLogger(cfg, c.Bool("quiet"))
	defer closeLog()

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	fs := osfilesystem.New()

	registry, err := loadFonts(fs, cfg, log)
	if err != nil {
		return err
	}

	var sink ports.DebugSink
	if cfg.Debug.Enabled {
		if err := fs.MkdirAll(cfg.Debug.Dir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.Debug.Dir, fs)
	} else {
		sink = nullsink.New()
	}

	orchConfig, err := cfg.ToOrchestratorConfig(scriptPath, output)
	if err != nil {
		return err
	}
	if c.IsSet("scale") {
		orchConfig.ScaleFactor = c.Float64("scale")
	}

	drawStage := draw.NewStage(fs, sink, log, draw.WithFontCatalog(registry))
	exportStage := export.NewStage(log)

	orch := orchestrator.New(
		drawStage,
		exportStage,
		targetFactory(registry),
		fs,
		sink,
		log,
	)

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, l10n.F("%d ops, %dx%d @%gx, %s, %d bytes",
		result.OpCount, result.Width, result.Height, result.ScaleFactor, result.Format, result.FileSize))

	if path := c.String("summary"); path != "" {
		summary := buildSummary(cfg, orchConfig, result)
		if err := summarizer.NewWriter(summarizer.NewMarkdownFormatter(), fs).Write(path, summary); err != nil {
			return err
		}
		log.Info("Summary saved to %s", path)
	}
	return nil
}

func buildSummary(cfg config.Config, oc orchestrator.Config, result orchestrator.RunResult) *summarizer.Summary {
	fontNames := make([]string, 0, len(cfg.Fonts))
	for name := range cfg.Fonts {
		fontNames = append(fontNames, name)
	}
	sort.Strings(fontNames)

	return summarizer.NewBuilder().
		WithScript(oc.ScriptPath, result.OpCount, result.OpKinds).
		WithTiming(result.Duration).
		WithSettings(summarizer.Settings{
			Backend:     string(result.Backend),
			Format:      result.Format.String(),
			Quality:     oc.Quality,
			ScaleFactor: result.ScaleFactor,
			Fonts:       fontNames,
			Debug:       cfg.Debug.Enabled,
		}).
		WithOutput(summarizer.OutputInfo{
			Path:     oc.OutputPath,
			FileSize: result.FileSize,
			Width:    result.Width,
			Height:   result.Height,
		}).
		Build()
}

func loadConfig(c *cli.Context) (config.Config, error) {
	if path := c.String("config"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Defaults(), nil
}

// applyRenderFlags overlays command line flags on cfg. An unset format
// follows the output file extension.
func applyRenderFlags(c *cli.Context, cfg *config.Config, output string) {
	switch {
	case c.IsSet("format"):
		cfg.Output.Format = c.String("format")
	default:
		if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(output)), "."); ext != "" {
			if _, err := config.ParseFormat(ext); err == nil {
				cfg.Output.Format = ext
			}
		}
	}
	if c.IsSet("quality") {
		cfg.Output.Quality = c.Int("quality")
	}
	if c.IsSet("backend") {
		cfg.Backend = c.String("backend")
	}
	if c.IsSet("debug") {
		cfg.Debug.Enabled = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.Debug.Dir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-file") {
		cfg.Log.File = c.String("log-file")
	}
}

// buildLogger returns the console logger, teed into a rotated file when
// configured. The returned func closes the file.
func buildLogger(cfg config.Config, quiet bool) (ports.Logger, func()) {
	level, _ := ports.ParseLogLevel(cfg.Log.Level)

	var console ports.Logger
	if quiet {
		console = logger.NewNoop()
	} else {
		console = logger.NewConsole(level)
	}

	if cfg.Log.File == "" {
		return console, func() {}
	}
	file := logger.NewFile(cfg.Log.File, level)
	return logger.NewTee(console, file), func() { file.Close() }
}

func loadFonts(fs ports.FileSystem, cfg config.Config, log ports.Logger) (*fonts.Registry, error) {
	registry := fonts.New(fs)
	for name, path := range cfg.Fonts {
		if err := registry.LoadFile(name, path); err != nil {
			return nil, fmt.Errorf("load font %s: %w", name, err)
		}
	}
	if len(cfg.Fonts) > 0 {
		log.Info("Loaded %d fonts", len(cfg.Fonts))
	}
	return registry, nil
}

func targetFactory(registry *fonts.Registry) orchestrator.TargetFactory {
	return func(backend orchestrator.Backend) (ports.Target, error) {
		switch backend {
		case orchestrator.BackendPDF:
			return pdfcanvas.New(0, 0, pdfcanvas.WithFonts(registry)), nil
		case orchestrator.BackendRaster:
			return ggcanvas.New(0, 0, ggcanvas.WithFonts(registry)), nil
		default:
			return nil, fmt.Errorf("unknown backend %q", backend)
		}
	}
}

// textSurface builds a raster surface for the text commands.
func textSurface(c *cli.Context) (*drawing.Surface, textlayout.Options, error) {
	if c.NArg() != 1 {
		return nil, textlayout.Options{}, cli.Exit(l10n.T("expected exactly one text argument"), 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return nil, textlayout.Options{}, err
	}

	registry, err := loadFonts(osfilesystem.New(), cfg, logger.NewNoop())
	if err != nil {
		return nil, textlayout.Options{}, err
	}

	opts := textlayout.Options{
		FontName:   cfg.Text.Font,
		FontSize:   cfg.Text.Size,
		LineHeight: cfg.Text.LineHeight,
	}
	if c.IsSet("font") {
		opts.FontName = c.String("font")
	}
	if c.IsSet("size") {
		if !c.IsSet("line-height") && opts.FontSize > 0 {
			opts.LineHeight = opts.LineHeight * c.Float64("size") / opts.FontSize
		}
		opts.FontSize = c.Float64("size")
	}
	if err := opts.Validate(); err != nil {
		return nil, textlayout.Options{}, err
	}

	surface, err := drawing.New(drawing.Options{
		Target: ggcanvas.New(1, 1, ggcanvas.WithFonts(registry)),
	})
	if err != nil {
		return nil, textlayout.Options{}, err
	}
	return surface, opts, nil
}
