package metrics

// InitializeMetrics pre-populates all expected label combinations so that
// every metric is exported from the first Prometheus scrape.
// Call this once at startup after metric registration.
func InitializeMetrics() {
	// --- Preview generation by media type × outcome ---
	for _, media := range []string{"image", "video"} {
		GenerationsTotal.WithLabelValues(media, "ok")
		GenerationsTotal.WithLabelValues(media, "failed")
		GenerationDuration.WithLabelValues(media)
		MediaFilesTotal.WithLabelValues(media)
	}

	// --- Generation failure kinds ---
	for _, kind := range []string{"video_unplayable", "image_unloadable", "other"} {
		GenerationFailures.WithLabelValues(kind)
	}

	// --- Prewarm outcomes ---
	for _, status := range []string{"generated", "failed", "skipped"} {
		PrewarmFilesTotal.WithLabelValues(status)
	}

	// --- Filesystem retry metrics per retry-operation ---
	for _, op := range []string{"stat", "open"} {
		FilesystemRetryAttempts.WithLabelValues(op)
		FilesystemRetrySuccess.WithLabelValues(op)
		FilesystemRetryFailures.WithLabelValues(op)
		FilesystemStaleErrors.WithLabelValues(op)
		FilesystemRetryDuration.WithLabelValues(op)
	}
}
