// Package report formats benchmark results and constraint estimates into
// a console comparison report.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/zkbench/hashcmp/bench"
	"github.com/zkbench/hashcmp/hashfn"
)

const ruleWidth = 70

// profile carries the static per-hash guidance shown in the use-case and
// summary sections.
type profile struct {
	EthereumUse string
	BestFor     string
	Notes       []string
}

var profiles = map[string]profile{
	"SHA-256": {
		EthereumUse: "Legacy systems",
		BestFor:     "General purpose",
		Notes: []string{
			"+ General-purpose cryptographic hashing",
			"+ Bitcoin and legacy systems",
			"- Not optimized for zkSNARKs (high constraint count)",
		},
	},
	"Keccak-256": {
		EthereumUse: "Native (EVM)",
		BestFor:     "Smart contracts",
		Notes: []string{
			"+ Ethereum smart contracts (native opcode)",
			"+ Address generation and transaction hashing",
			"- Very expensive in zkSNARKs",
		},
	},
	"Poseidon": {
		EthereumUse: "zkApps/Rollups",
		BestFor:     "Zero-knowledge",
		Notes: []string{
			"+ Zero-knowledge proof systems",
			"+ Rollups and Layer 2 solutions",
			"+ Privacy-preserving applications",
			"- Not hardware-accelerated like SHA-256",
		},
	},
}

// Generate writes the full comparison report for the given results and
// constraint estimates. It only writes to w and has no other effects.
func Generate(
	w io.Writer,
	results []bench.Result,
	estimates []hashfn.ConstraintEstimate,
) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	writeHeader(w, results[0].Iterations)

	// Timing section.
	writeSection(w, "1. Performance Benchmarks")
	fmt.Fprintln(w)

	for _, r := range results {
		fmt.Fprintf(w, "  %-10s => %s total (%s)\n",
			r.Name, formatMs(r.Total), formatPerOp(r.Avg))
	}

	// Static circuit-cost section. The figures are literature
	// approximations, not compiled circuit sizes.
	writeSection(w, "2. SNARK Constraint Estimates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  (Lower is better for zero-knowledge proofs;"+
		" approximate literature figures)")
	fmt.Fprintln(w)

	for _, e := range estimates {
		fmt.Fprintf(w, "  %-10s => ~%7s constraints\n",
			e.Name, formatConstraints(e.Constraints))
	}

	writeUseCases(w, results)
	writeSummaryTable(w, results, estimates)

	return nil
}

// GenerateJSON writes results and estimates as indented JSON to w.
func GenerateJSON(
	w io.Writer,
	results []bench.Result,
	estimates []hashfn.ConstraintEstimate,
) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Results             []bench.Result              `json:"results"`
		ConstraintEstimates []hashfn.ConstraintEstimate `json:"constraint_estimates"`
	}{
		Results:             results,
		ConstraintEstimates: estimates,
	})
}

func writeHeader(w io.Writer, iterations int) {
	rule := strings.Repeat("=", ruleWidth)

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "    Ethereum Hash Function Comparison Framework")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Comparing traditional vs SNARK-friendly hash functions")
	fmt.Fprintf(w, "Iterations: %d\n", iterations)
	fmt.Fprintln(w, rule)
}

func writeSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n>>> %s\n", title)
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}

func writeUseCases(w io.Writer, results []bench.Result) {
	writeSection(w, "3. Use Case Recommendations")

	for _, r := range results {
		p, ok := profiles[r.Name]
		if !ok {
			continue
		}

		fmt.Fprintf(w, "\n  %s:\n", r.Name)

		for _, note := range p.Notes {
			fmt.Fprintf(w, "    %s\n", note)
		}
	}
}

func writeSummaryTable(
	w io.Writer,
	results []bench.Result,
	estimates []hashfn.ConstraintEstimate,
) {
	writeSection(w, "4. Summary Comparison Table")
	fmt.Fprintln(w)

	constraints := make(map[string]int, len(estimates))
	for _, e := range estimates {
		constraints[e.Name] = e.Constraints
	}

	writeRow := func(property string, cell func(r bench.Result) string) {
		fmt.Fprintf(w, "  %-15s", property)

		for _, r := range results {
			fmt.Fprintf(w, " %-20s", cell(r))
		}

		fmt.Fprintln(w)
	}

	writeRow("Property", func(r bench.Result) string { return r.Name })
	fmt.Fprintln(w, "  "+strings.Repeat("-", ruleWidth+5))
	writeRow("Speed", func(r bench.Result) string {
		return formatMs(r.Total)
	})
	writeRow("SNARK Cost", func(r bench.Result) string {
		return fmt.Sprintf("~%s constr.", formatConstraints(constraints[r.Name]))
	})
	writeRow("Ethereum Use", func(r bench.Result) string {
		return profiles[r.Name].EthereumUse
	})
	writeRow("Best For", func(r bench.Result) string {
		return profiles[r.Name].BestFor
	})
	fmt.Fprintln(w)
}

func formatMs(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	return fmt.Sprintf("%.2fs", d.Seconds())
}

func formatPerOp(avg time.Duration) string {
	if avg < time.Millisecond {
		return fmt.Sprintf("%dµs per hash", avg.Microseconds())
	}

	return fmt.Sprintf("%.2fms per hash", float64(avg.Microseconds())/1000)
}

func formatConstraints(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder

	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}

	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}

		b.WriteString(s[i : i+3])
	}

	return b.String()
}
