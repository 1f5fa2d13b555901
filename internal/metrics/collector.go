package metrics

import (
	"io/fs"
	"path/filepath"
	"time"

	"filmstrip/internal/logging"
)

// StatsProvider supplies media library counts for the collector.
type StatsProvider interface {
	GetStats() Stats
}

// Stats holds the current media library statistics.
type Stats struct {
	Images int
	Videos int
}

// Collector periodically collects and updates gauge metrics.
type Collector struct {
	statsProvider StatsProvider
	cacheDir      string
	interval      time.Duration
	stopChan      chan struct{}
}

// NewCollector creates a new metrics collector.
func NewCollector(provider StatsProvider, interval time.Duration) *Collector {
	return &Collector{
		statsProvider: provider,
		interval:      interval,
		stopChan:      make(chan struct{}),
	}
}

// SetCacheDir points the collector at the on-disk preview cache so its
// total size is reported. Leave unset for backends without a directory.
func (c *Collector) SetCacheDir(dir string) {
	c.cacheDir = dir
}

// Start begins the metrics collection loop
func (c *Collector) Start() {
	go c.collectLoop()
}

// Stop stops the metrics collection
func (c *Collector) Stop() {
	close(c.stopChan)
}

func (c *Collector) collectLoop() {
	// Collect immediately on start
	c.collect()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.collect()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Collector) collect() {
	c.collectCacheSize()

	if c.statsProvider == nil {
		return
	}

	stats := c.statsProvider.GetStats()

	MediaFilesTotal.WithLabelValues("image").Set(float64(stats.Images))
	MediaFilesTotal.WithLabelValues("video").Set(float64(stats.Videos))

	logging.Debug("Metrics collected: images=%d, videos=%d", stats.Images, stats.Videos)
}

func (c *Collector) collectCacheSize() {
	if c.cacheDir == "" {
		return
	}

	size, err := dirSize(c.cacheDir)
	if err != nil {
		logging.Warn("Failed to size preview cache dir %s: %v", c.cacheDir, err)
		CacheDiskUsageBytes.Set(0)
		return
	}
	CacheDiskUsageBytes.Set(float64(size))
}

func dirSize(root string) (int64, error) {
	var total int64
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	return total, err
}
