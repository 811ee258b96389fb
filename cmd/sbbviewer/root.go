package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/sbbviewer/internal/config"
	"github.com/cwbudde/sbbviewer/internal/logging"
	"github.com/cwbudde/sbbviewer/internal/pipeline"
	"github.com/cwbudde/sbbviewer/internal/ui"
	"github.com/cwbudde/sbbviewer/internal/view"
	"github.com/cwbudde/sbbviewer/sbb"
)

// app carries the global flags and the process streams.
type app struct {
	configPath string
	logFile    string
	verbose    bool

	out    io.Writer
	errOut io.Writer

	// run drives the interactive program.
	run func(m tea.Model) error
}

func newApp() *app {
	return &app{
		out:    os.Stdout,
		errOut: os.Stderr,
		run:    runProgram,
	}
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sbbviewer [file.sbb]",
		Short: "Plot SBB sensor-log channels in the terminal",
		Long: `sbbviewer deinterleaves SBB sensor-log files into the channels named in
the settings file and shows them in two stacked plots that share the
sample axis. Channels can be low-pass filtered (zero-phase Butterworth)
and decimated before plotting.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.view(args)
		},
	}

	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", config.DefaultPath, "settings file (.json, .yaml or .yml)")
	flags.StringVar(&a.logFile, "log-file", "", "write the log to this file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(newInfoCmd(a))

	return cmd
}

// setup loads the settings and builds the loader and filter pipeline.
func (a *app) setup() (*config.Settings, *sbb.Loader, *pipeline.Pipeline, error) {
	settings, err := config.Load(a.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	order, err := settings.Endian()
	if err != nil {
		return nil, nil, nil, err
	}

	loader, err := sbb.NewLoader(settings.Signals, settings.N, sbb.WithByteOrder(order))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build loader: %w", err)
	}

	pipe, err := pipeline.FromSettings(settings)
	if err != nil {
		return nil, nil, nil, err
	}

	return settings, loader, pipe, nil
}

// viewerLogger logs to --log-file, or nowhere: the terminal belongs to the UI.
func (a *app) viewerLogger() (*zap.Logger, error) {
	if a.logFile == "" {
		return logging.Nop(), nil
	}

	return logging.New(logging.WithFile(a.logFile), logging.WithVerbose(a.verbose))
}

func (a *app) view(args []string) error {
	settings, loader, pipe, err := a.setup()
	if err != nil {
		return err
	}

	log, err := a.viewerLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting viewer",
		zap.String("config", a.configPath),
		zap.Strings("signals", settings.Signals),
		zap.Int("n", settings.N),
		zap.String("filter", fmt.Sprint(pipe.Filter())),
		zap.Int("decim", pipe.Stride()),
	)

	session := view.NewSession(settings.Signals, loader, pipe,
		view.WithLogger(log),
		view.WithPanStep(settings.PanStep),
	)

	opts := []ui.Option{ui.WithLogger(log)}
	if len(args) == 1 {
		opts = append(opts, ui.WithFile(args[0]))
	}

	if err := a.run(ui.New(session, opts...)); err != nil {
		log.Error("viewer stopped", zap.Error(err))
		return fmt.Errorf("viewer: %w", err)
	}

	return nil
}
