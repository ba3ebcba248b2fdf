// Command radarchart renders a radar chart description to SVG or PNG.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/radar"
	"github.com/gogpu/radar/backend/raster"
	"github.com/gogpu/radar/backend/svg"
	"github.com/gogpu/radar/icon"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "radarchart [chart.yaml]",
		Short: "Render a radar chart",
		Long: `radarchart reads categories, series and marker layers from a YAML,
JSON or TOML file and renders the chart as SVG or PNG.

Every setting can also be given as a RADAR_* environment variable.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd, v, path)
		},
	}

	flags := rootCmd.Flags()
	flags.StringP("output", "o", "", "Output file path (default: stdout)")
	flags.String("format", "svg", "Output format: svg, png or any registered backend")
	flags.Float64("width", 400, "Viewport width")
	flags.Float64("height", 300, "Viewport height")
	flags.Int("levels", radar.DefaultLevels, "Number of grid rings")
	flags.Bool("skip-degenerate", false, "Omit all-zero series instead of collapsing them")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log chart diagnostics to stderr")

	for key, name := range map[string]string{
		"output":          "output",
		"format":          "format",
		"width":           "width",
		"height":          "height",
		"levels":          "levels",
		"skip_degenerate": "skip-degenerate",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper, path string) error {
	if verbose {
		radar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg, err := LoadConfig(v, path)
	if err != nil {
		return err
	}
	data, err := cfg.Data()
	if err != nil {
		return fmt.Errorf("invalid chart: %w", err)
	}
	icons, err := cfg.IconSet()
	if err != nil {
		return err
	}
	b, err := newBackend(cfg.Format, icons)
	if err != nil {
		return err
	}

	vp := radar.Viewport{Width: cfg.Width, Height: cfg.Height}
	if !vp.Valid() {
		return fmt.Errorf("%w: %vx%v", radar.ErrDegenerateViewport, cfg.Width, cfg.Height)
	}

	// Missing data and per-series problems are not fatal: the plan is
	// still written, empty or with the affected layers left out.
	plan, err := radar.New(cfg.ChartOptions()...).Build(vp, data)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	if err := plan.Playback(b); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if cfg.Output == "" {
		_, err := b.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := b.SaveToFile(cfg.Output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// outputBackend is what the command needs from a backend.
type outputBackend interface {
	radar.WriterBackend
	radar.FileBackend
}

func newBackend(format string, icons *icon.Set) (outputBackend, error) {
	if format == "png" {
		format = "raster"
	}
	if !radar.IsRegistered(format) {
		return nil, fmt.Errorf("invalid format: %s (must be one of %s)", format, strings.Join(formats(), ", "))
	}
	switch format {
	case "svg":
		return svg.NewBackend(svg.WithIcons(icons)), nil
	case "raster":
		return raster.NewBackend(raster.WithIcons(icons)), nil
	}
	b, err := radar.NewBackend(format)
	if err != nil {
		return nil, err
	}
	ob, ok := b.(outputBackend)
	if !ok {
		return nil, fmt.Errorf("backend %q cannot write output", format)
	}
	return ob, nil
}

func formats() []string {
	return append(radar.Backends(), "png")
}
