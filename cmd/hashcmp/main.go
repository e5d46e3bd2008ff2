// Package main provides the CLI entry point for hashcmp, a comparison
// tool for traditional and SNARK-friendly hash functions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/zkbench/hashcmp/bench"
	"github.com/zkbench/hashcmp/hashfn"
	"github.com/zkbench/hashcmp/report"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "hashcmp",
		Short: "Compare traditional and SNARK-friendly hash functions",
		Long: `Hashcmp benchmarks SHA-256, Keccak-256, and Poseidon for raw execution
speed over a fixed input and reports static estimates of their zkSNARK
circuit constraint counts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runComparison(cmd, logger, outputJSON)
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of the console report")

	return cmd
}

func runComparison(
	cmd *cobra.Command,
	logger *slog.Logger,
	outputJSON bool,
) error {
	ctx := cmd.Context()

	logger.InfoContext(ctx, "starting comparison",
		slog.Int("iterations", bench.DefaultIterations),
		slog.Int("input_bytes", len(bench.DefaultInput)),
	)

	results := bench.RunAll(logger, bench.DefaultInput, bench.DefaultIterations)
	estimates := hashfn.ConstraintEstimates()

	if outputJSON {
		if err := report.GenerateJSON(os.Stdout, results, estimates); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	} else {
		if err := report.Generate(os.Stdout, results, estimates); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	}

	logger.InfoContext(ctx, "comparison complete")

	return nil
}
