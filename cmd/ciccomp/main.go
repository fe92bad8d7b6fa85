// Command ciccomp designs a CIC passband-droop compensation FIR filter
// and reports the cascaded response.
//
// Usage:
//
//	ciccomp [flags]
//
// Examples:
//
//	ciccomp -stages 3 -decimation 10 -rate 1000 -passband 25 -order 31
//	ciccomp -stages 5 -decimation 8 -delay 2 -rate 8000 -passband 400 -order 63 -sidelobe 60
//	ciccomp -coeffs -stages 3 -decimation 10 -rate 1000 -passband 25 -order 31
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cwbudde/algo-cic/dsp/filter/design/ciccomp"
)

func main() {
	stages := flag.Int("stages", 3, "CIC integrator/comb stage count (M)")
	decim := flag.Int("decimation", 10, "decimation factor (R)")
	delay := flag.Int("delay", 1, "comb differential delay (N)")
	rate := flag.Float64("rate", 1000, "input sample rate in Hz")
	passband := flag.Float64("passband", 25, "compensated passband edge in Hz")
	order := flag.Int("order", 31, "FIR order; the design produces order+1 taps")
	points := flag.Int("points", 1000, "analysis frequency points")
	sidelobe := flag.Float64("sidelobe", 50, "window sidelobe attenuation in dB")
	floor := flag.Float64("floor", -80, "display floor for dB output")
	coeffsOnly := flag.Bool("coeffs", false, "print coefficients only, one per line")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ciccomp [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs an FIR filter compensating CIC passband droop and\n")
		fmt.Fprintf(os.Stderr, "verifies the cascaded response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ciccomp -stages 3 -decimation 10 -rate 1000 -passband 25 -order 31\n")
		fmt.Fprintf(os.Stderr, "  ciccomp -coeffs -order 63 -stages 5 -decimation 8 -rate 8000 -passband 400\n")
	}
	flag.Parse()

	cfg := ciccomp.Config{
		Stages:            *stages,
		Decimation:        *decim,
		DifferentialDelay: *delay,
		SampleRate:        *rate,
		PassbandEdge:      *passband,
		Order:             *order,
		FreqPoints:        *points,
		SidelobeDB:        *sidelobe,
		FloorDB:           *floor,
	}

	res, err := ciccomp.Design(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *coeffsOnly {
		printCoefficients(os.Stdout, res.Coefficients)
		return
	}

	printSummary(os.Stdout, cfg, res)
	fmt.Println()
	printCoefficients(os.Stdout, res.Coefficients)
	fmt.Println()
	printAliasing(os.Stdout, res)
}
