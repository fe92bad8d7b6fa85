package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-cic/dsp/filter/design/ciccomp"
)

// printSummary writes the design parameter and verification summary.
func printSummary(w io.Writer, cfg ciccomp.Config, res *ciccomp.Result) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "CIC stages\t%d\n", cfg.Stages)
	fmt.Fprintf(tw, "Differential delay\t%d\n", cfg.DifferentialDelay)
	fmt.Fprintf(tw, "Decimation factor\t%d\n", cfg.Decimation)
	fmt.Fprintf(tw, "Input rate\t%.6g Hz\n", cfg.SampleRate)
	fmt.Fprintf(tw, "Output rate\t%.6g Hz\n", res.OutputRate)
	fmt.Fprintf(tw, "Passband edge\t%.6g Hz (%.1f%% of output Nyquist)\n",
		cfg.PassbandEdge, 100*res.PassbandFraction)
	fmt.Fprintf(tw, "Compensation taps\t%d\n", len(res.Coefficients))
	fmt.Fprintf(tw, "Equivalent conventional taps\t%d\n", res.EquivalentTaps)
	fmt.Fprintf(tw, "Cascaded passband ripple\t%.3f dB\n", res.Verification.PassbandRippleDB)

	tw.Flush()
}

// printCoefficients writes the taps one per line, index-tagged.
func printCoefficients(w io.Writer, taps []float64) {
	for i, c := range taps {
		fmt.Fprintf(w, "h[%d] = %+.12e\n", i, c)
	}
}

// printAliasing reports which folded-mainlobe bins the forward response
// dominates.
func printAliasing(w io.Writer, res *ciccomp.Result) {
	fmt.Fprintf(w, "Folded mainlobe bins: %d\n", res.Aliasing.Region)
	fmt.Fprintf(w, "Bins dominating their alias: %d\n", len(res.Aliasing.Kept))
}
