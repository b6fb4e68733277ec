package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"uav-route-plot/internal/adapters/render"
	"uav-route-plot/internal/adapters/repositories"
	"uav-route-plot/internal/config"
	"uav-route-plot/internal/domain"
	"uav-route-plot/internal/platform/logging"
	"uav-route-plot/internal/services"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type options struct {
	stylePath string
	suffix    string
	logLevel  string
}

// main is the application composition root.
// It wires the text-file repositories and the PNG renderer behind ports and runs one plot.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, envLoaded := config.Load()

	cmd := newRootCmd(cfg, envLoaded, stdout, stderr)
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var usageErr *domain.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(stderr, "uavplot: %v\n\n%s", err, cmd.UsageString())
			return exitUsage
		}
		fmt.Fprintf(stderr, "uavplot: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func newRootCmd(cfg config.Config, envLoaded bool, stdout, stderr io.Writer) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "uavplot <problem-file> <solution-file>",
		Short: "Render a UAV delivery route as a PNG",
		Long: `uavplot draws the route described by a solution file over its problem instance.

The image shows start and end, the visited waypoints in route order and the
skipped waypoints with their penalties. It is written next to the problem file
with the extension replaced by the output suffix (default "_path.png").`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return &domain.UsageError{Msg: fmt.Sprintf("expected 2 arguments <problem-file> <solution-file>, got %d", len(args))}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return plot(args[0], args[1], opts, envLoaded, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &domain.UsageError{Msg: err.Error()}
	})

	cmd.Flags().StringVar(&opts.stylePath, "style", cfg.StylePath, "YAML style file (env UAVPLOT_STYLE)")
	cmd.Flags().StringVar(&opts.suffix, "suffix", cfg.OutputSuffix, "output suffix replacing the problem file extension (env UAVPLOT_OUTPUT_SUFFIX)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "debug, info, warn or error (env UAVPLOT_LOG_LEVEL)")

	return cmd
}

func plot(problemPath, solutionPath string, opts options, envLoaded bool, stdout, stderr io.Writer) error {
	logger, err := logging.New(stderr, opts.logLevel)
	if err != nil {
		return &domain.UsageError{Msg: err.Error()}
	}
	if !envLoaded {
		level.Debug(logger).Log("msg", "no .env file found (using environment variables)")
	}

	if strings.TrimSpace(opts.suffix) == "" {
		return &domain.UsageError{Msg: "output suffix must be non-empty"}
	}

	style := render.DefaultStyle()
	if opts.stylePath != "" {
		style, err = render.LoadStyle(opts.stylePath)
		if err != nil {
			return err
		}
	}

	res, err := services.PlotRoute(
		logger,
		services.PlotRequest{OutputPath: services.OutputPath(problemPath, opts.suffix)},
		repositories.NewTextInstanceRepository(problemPath),
		repositories.NewTextSolutionRepository(solutionPath),
		render.NewPNGRenderer(style),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Plot saved as %s\n", res.OutputPath)
	return nil
}
