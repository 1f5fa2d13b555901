// Package memory provides container-aware memory limit configuration
// and a pressure monitor for batch rendering.
//
// # GOMEMLIMIT Configuration
//
// ConfigureFromEnv sets the Go runtime's soft memory limit from the
// container's memory limit, leaving headroom for everything the Go heap
// does not account for: ffmpeg child processes, libvips decode buffers,
// and goroutine stacks. It honors three environment variables:
//
//   - GOMEMLIMIT: standard Go variable; when set it wins outright
//   - MEMORY_LIMIT: container limit in bytes (Kubernetes Downward API)
//   - MEMORY_RATIO: fraction of MEMORY_LIMIT given to the heap (default 0.85)
//
// Call it first in main, before any significant allocation:
//
//	func main() {
//	    memory.ConfigureFromEnv()
//	    // ...
//	}
//
// # Pressure Monitor
//
// Monitor samples heap usage on an interval and flips into a paused
// state when usage crosses the critical watermark, forcing a GC and
// holding WaitIfPaused callers until usage falls back below the high
// watermark. The prewarm workers gate on it between files, so a batch
// run over a large library backs off instead of tripping the container
// OOM killer.
//
// Rendering decodes full frames before scaling, so transient spikes of
// tens of megabytes per worker are normal. Pausing starts at 85% of the
// limit and resumes below 70%; the gap keeps the gate from flapping.
//
// With no limit configured the monitor is inert: Start is a no-op and
// WaitIfPaused never blocks.
package memory
