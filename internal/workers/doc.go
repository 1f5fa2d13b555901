/*
Package workers sizes worker pools for containerized environments.

# Overview

When the service runs under a container CPU limit, runtime.NumCPU() still
reports the host machine's core count. Go 1.19+ sets GOMAXPROCS from the
cgroup limit, so this package derives pool sizes from GOMAXPROCS and never
from NumCPU:

	// Wrong: returns 64 on a 64-core node even with a 2-CPU limit
	workers := runtime.NumCPU()

	// Correct: returns 2 under the same limit
	workers := runtime.GOMAXPROCS(0)

Spawning a pool per host core inside a small container just buys context
switching and CPU throttling.

# Usage

The helpers encode worker-to-CPU ratios for common workload shapes:

	import "filmstrip/internal/workers"

	// CPU-bound: decoding, scaling, PNG encoding
	n := workers.ForCPU(8)

	// I/O-bound: stat and read sweeps over the library
	n := workers.ForIO(16)

	// Mixed: preview prewarming (read, decode, cache write)
	n := workers.ForMixed(12)

For other ratios use Count directly:

	n := workers.Count(3.0, 24) // 3 per CPU, capped at 24
	n := workers.Count(2.0, 0)  // uncapped

# Environment Variable Override

The PREWARM_WORKERS environment variable overrides the calculation, still
subject to the caller's cap:

	env:
	- name: PREWARM_WORKERS
	  value: "4"

Operators use this to pin concurrency when the automatic sizing fights
with a shared NFS mount or a small Redis instance.

# Kubernetes Example

With a 2-CPU limit:

	resources:
	  limits:
	    cpu: "2"

GOMAXPROCS resolves to 2, so ForCPU(8) returns 2, ForIO(8) returns 4, and
ForMixed(8) returns 3.

All functions are safe for concurrent use.
*/
package workers
