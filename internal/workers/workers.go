package workers

import (
	"os"
	"runtime"
	"strconv"
)

// Count returns a worker pool size for the given workload shape. It reads
// GOMAXPROCS rather than NumCPU so container CPU limits are respected
// (Go 1.19+ sets GOMAXPROCS from cgroup limits).
//
// The multiplier adjusts for task characteristics:
//   - 1.0 for CPU-bound tasks
//   - 2.0 for I/O-bound tasks
//   - 1.5 for mixed tasks
//
// limit caps the pool; 0 means uncapped. The PREWARM_WORKERS environment
// variable overrides the calculation entirely, still subject to limit.
func Count(multiplier float64, limit int) int {
	if override := os.Getenv("PREWARM_WORKERS"); override != "" {
		if count, err := strconv.Atoi(override); err == nil && count > 0 {
			return capped(count, limit)
		}
	}

	workers := int(float64(runtime.GOMAXPROCS(0)) * multiplier)
	if workers < 1 {
		workers = 1
	}
	return capped(workers, limit)
}

func capped(n, limit int) int {
	if limit > 0 && n > limit {
		return limit
	}
	return n
}

// ForCPU sizes a pool for CPU-bound work, one worker per CPU.
func ForCPU(limit int) int {
	return Count(1.0, limit)
}

// ForIO sizes a pool for I/O-bound work, two workers per CPU.
func ForIO(limit int) int {
	return Count(2.0, limit)
}

// ForMixed sizes a pool for work that alternates between computation and
// waiting on the disk, 1.5 workers per CPU. Preview prewarming is the
// canonical caller: each file is one decode burst bracketed by reads and
// a cache write.
func ForMixed(limit int) int {
	return Count(1.5, limit)
}
