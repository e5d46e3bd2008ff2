package bench

import (
	"log/slog"
	"time"

	"github.com/zkbench/hashcmp/hashfn"
)

// DefaultIterations is the fixed iteration count for a benchmark run.
const DefaultIterations = 1000

// DefaultInput is the fixed message hashed on every iteration.
var DefaultInput = []byte("This is a test message.")

// Run times iterations sequential invocations of fn over input. The
// elapsed total uses the monotonic clock. An iteration count of zero or
// less performs no hashing and yields zero durations.
func Run(fn hashfn.Func, input []byte, iterations int) Result {
	result := Result{
		Name:       fn.Name,
		Iterations: iterations,
	}

	if iterations <= 0 {
		return result
	}

	start := time.Now()

	for i := 0; i < iterations; i++ {
		fn.Hash(input)
	}

	result.Total = time.Since(start)
	result.Avg = result.Total / time.Duration(iterations)

	return result
}

// RunAll benchmarks every compared hash function sequentially, in report
// order: SHA-256, then Keccak-256, then Poseidon.
func RunAll(logger *slog.Logger, input []byte, iterations int) []Result {
	fns := hashfn.All()
	results := make([]Result, 0, len(fns))

	for _, fn := range fns {
		logger.Info("benchmarking hash function",
			slog.String("name", fn.Name),
			slog.Int("iterations", iterations),
		)

		result := Run(fn, input, iterations)

		logger.Info("benchmark finished",
			slog.String("name", fn.Name),
			slog.Duration("total", result.Total),
			slog.Duration("avg", result.Avg),
		)

		results = append(results, result)
	}

	return results
}
