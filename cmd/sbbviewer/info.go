package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/sbbviewer/internal/logging"
	"github.com/cwbudde/sbbviewer/stats"
)

func newInfoCmd(a *app) *cobra.Command {
	var filtered bool

	cmd := &cobra.Command{
		Use:   "info file.sbb",
		Short: "Print per-channel statistics of an SBB file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.info(args[0], filtered)
		},
	}
	cmd.Flags().BoolVar(&filtered, "filtered", false, "summarize the filtered, decimated channels")

	return cmd
}

func (a *app) info(path string, filtered bool) error {
	_, loader, pipe, err := a.setup()
	if err != nil {
		return err
	}

	log, err := logging.New(logging.WithConsole(), logging.WithVerbose(a.verbose), logging.WithFile(a.logFile))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ds, err := loader.ReadFile(path)
	if err != nil {
		log.Error("load failed", zap.String("path", path), zap.Error(err))
		return err
	}
	log.Debug("dataset loaded", zap.String("path", path), zap.Int("samples", ds.Len()))

	if _, err := fmt.Fprintf(a.out, "%s: %d samples, %d channels\n", path, ds.Len(), len(ds.Names())); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if filtered {
		if _, err := fmt.Fprintf(a.out, "%s, decimation %d\n", pipe.Filter(), pipe.Stride()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Channel\tSamples\tMin\tMin@\tMax\tMax@\tMean\tStd\tRMS\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-------\t-------\t---\t----\t---\t----\t----\t---\t---\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	for _, name := range ds.Names() {
		xs := ds.Sample()
		ys, _ := ds.Series(name)
		if filtered {
			if xs, ys, err = pipe.Process(xs, ys); err != nil {
				log.Warn("channel not filtered", zap.String("channel", name), zap.Error(err))
				if _, err := fmt.Fprintf(tw, "%s%s\n", name, strings.Repeat("\t-", 8)); err != nil {
					return fmt.Errorf("failed to write output row: %w", err)
				}
				continue
			}
		}

		st := stats.Summarize(ys)
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.6g\t%s\t%.6g\t%s\t%.6g\t%.6g\t%.6g\n",
			name,
			st.Count,
			st.Min,
			sampleAt(xs, st.MinIndex),
			st.Max,
			sampleAt(xs, st.MaxIndex),
			st.Mean,
			st.StdDev,
			st.RMS,
		); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return nil
}

// sampleAt returns the sample index at position i of the sample axis xs.
func sampleAt(xs []float64, i int) string {
	if i < 0 || i >= len(xs) {
		return "-"
	}

	return fmt.Sprintf("%g", xs[i])
}
