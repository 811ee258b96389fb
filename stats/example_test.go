package stats_test

import (
	"fmt"

	"github.com/cwbudde/sbbviewer/stats"
)

func ExampleSummarize() {
	s := stats.Summarize([]float64{1, -1, 1, -1})
	fmt.Printf("rms=%.1f peak=%.1f crossings=%d\n", s.RMS, s.Peak, s.MeanCrossings)

	// Output:
	// rms=1.0 peak=1.0 crossings=3
}
