// Command prewarm renders preview rasters for every media file in the
// library and commits them to the configured cache backend, so the first
// browse of a large library is not a cold-cache render storm.
//
// It walks MEDIA_DIR, skips files whose preview is already cached, and
// renders the rest through the same pipeline the HTTP server uses.
// Per-file failures are logged and tallied but do not stop the run.
//
// Usage:
//
//	prewarm [flags]
//
// Flags:
//
//	-rows     grid rows (default: PREVIEW_ROWS)
//	-cols     grid columns (default: PREVIEW_COLS)
//	-width    still width in pixels (default: STILL_WIDTH)
//	-height   still height in pixels (default: STILL_HEIGHT)
//	-workers  worker count (default: sized from available CPU)
//	-v        enable debug logging
//
// The rendering flags default to the server's configured values. A run
// that overrides them warms the matching non-default cache variants
// instead of the default previews.
//
// Environment:
//
// The command reads the same environment variables as the server, so a
// prewarm run in the server's container warms exactly the cache the
// server reads. PREWARM_WORKERS overrides the worker heuristic; the
// -workers flag overrides both.
//
// When GOMEMLIMIT or MEMORY_LIMIT is set, workers pause between files
// while heap usage is critical and resume once it recovers, keeping a
// batch run over large media inside the container's memory budget.
//
// Notes:
//
// Progress is drawn on stdout when it is a terminal; log output goes to
// stderr, so piped runs stay machine-readable. The command exits
// non-zero if the run was interrupted or could not start. Per-file
// render failures are reported in the summary but do not change the
// exit status.
package main
