/*
Package filesystem provides resilient filesystem operations with automatic retry logic
for NFS stale file handle errors.

# Purpose

This package wraps standard filesystem operations (os.Stat, os.Open) with retry logic
for transient NFS failures, particularly ESTALE (stale file handle) errors that occur
when NFS-mounted media is accessed during network issues or server-side changes.

# Key Features

  - Automatic retry with exponential backoff for NFS ESTALE errors (errno 116)
  - Configurable retry attempts (default: 3) and backoff timings
  - Transparent fallback to standard os operations for non-NFS errors
  - Retry telemetry through a pluggable [Observer]

# Usage

Basic usage with default retry configuration:

	info, err := filesystem.StatWithRetry("/media/clip.mp4", filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}

	file, err := filesystem.OpenWithRetry("/media/cover.jpg", filesystem.DefaultRetryConfig())
	if err != nil {
	    return err
	}
	defer file.Close()

Custom retry configuration:

	config := filesystem.RetryConfig{
	    MaxRetries:     5,
	    InitialBackoff: 100 * time.Millisecond,
	    MaxBackoff:     1 * time.Second,
	}
	info, err := filesystem.StatWithRetry(path, config)

# Retry Behavior

The retry logic implements exponential backoff with the following defaults:
  - MaxRetries: 3 attempts
  - InitialBackoff: 50ms
  - MaxBackoff: 500ms

Only NFS stale file handle errors (ESTALE) trigger retries. All other errors
fail immediately without retry attempts.

# Telemetry

Retry counts and durations are recorded through the [Observer] interface.
The metrics package provides the Prometheus implementation; wire it once
at startup:

	filesystem.SetObserver(metrics.NewFilesystemObserver())

Without a registered observer, telemetry is silently dropped.
*/
package filesystem
