package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type mockStatsProvider struct {
	stats Stats
}

func (m *mockStatsProvider) GetStats() Stats {
	return m.stats
}

func TestNewCollector(t *testing.T) {
	provider := &mockStatsProvider{
		stats: Stats{Images: 80, Videos: 20},
	}

	collector := NewCollector(provider, 5*time.Second)

	if collector == nil {
		t.Fatal("NewCollector returned nil")
	}

	if collector.statsProvider != provider {
		t.Error("statsProvider not set correctly")
	}

	if collector.interval != 5*time.Second {
		t.Errorf("interval = %v, want %v", collector.interval, 5*time.Second)
	}

	if collector.stopChan == nil {
		t.Error("stopChan not initialized")
	}

	if collector.cacheDir != "" {
		t.Errorf("cacheDir should be empty by default, got %q", collector.cacheDir)
	}
}

func TestCollectWithNilProvider(t *testing.T) {
	collector := NewCollector(nil, 1*time.Second)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("collect() panicked with nil provider: %v", r)
		}
	}()

	collector.collect()
}

func TestCollectorStartStop(_ *testing.T) {
	provider := &mockStatsProvider{
		stats: Stats{Images: 50},
	}

	collector := NewCollector(provider, 100*time.Millisecond)

	collector.Start()
	time.Sleep(150 * time.Millisecond)
	collector.Stop()

	// Test should complete without hanging
}

func TestCollectorStopBeforeStart(t *testing.T) {
	collector := NewCollector(&mockStatsProvider{}, 1*time.Second)

	// The goroutine was never started; Stop just closes the channel.
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Stop() before Start() panicked: %v", r)
		}
	}()

	collector.Stop()
}

func TestCollectorImmediateCollection(_ *testing.T) {
	provider := &mockStatsProvider{
		stats: Stats{Images: 50},
	}

	// An interval that never fires during the test still collects once
	// immediately on Start.
	collector := NewCollector(provider, 1*time.Hour)

	collector.Start()
	time.Sleep(10 * time.Millisecond)
	collector.Stop()
}

func TestCollectUpdatesMetrics(_ *testing.T) {
	provider := &mockStatsProvider{
		stats: Stats{Images: 50, Videos: 25},
	}

	collector := NewCollector(provider, 1*time.Second)
	collector.collect()

	// Verify metrics can be collected again without error
	collector.collect()
}

func TestSetCacheDir(t *testing.T) {
	collector := NewCollector(nil, 1*time.Second)

	if collector.cacheDir != "" {
		t.Errorf("initial cacheDir should be empty, got %q", collector.cacheDir)
	}

	collector.SetCacheDir("/path/to/cache")

	if collector.cacheDir != "/path/to/cache" {
		t.Errorf("cacheDir = %q, want %q", collector.cacheDir, "/path/to/cache")
	}
}

func TestCollectCacheSizeWithEmptyPath(_ *testing.T) {
	collector := NewCollector(nil, 1*time.Second)
	// cacheDir is "" by default; should return early without panic.
	collector.collectCacheSize()
}

func TestCollectCacheSizeWithNonexistentDir(_ *testing.T) {
	collector := NewCollector(nil, 1*time.Second)
	collector.SetCacheDir("/nonexistent/cache/dir")

	// Should not panic, should set metric to 0
	collector.collectCacheSize()
}

func TestCollectCacheSize(t *testing.T) {
	cacheDir := t.TempDir()

	files := []struct {
		path string
		size int
	}{
		{"a.png", 1024},
		{"b.png", 512},
		{"nested/c.png", 256},
	}

	for _, f := range files {
		path := filepath.Join(cacheDir, f.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, make([]byte, f.size), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	collector := NewCollector(nil, 1*time.Second)
	collector.SetCacheDir(cacheDir)
	collector.collectCacheSize()
}

func TestDirSize(t *testing.T) {
	tempDir := t.TempDir()

	files := []struct {
		path string
		size int
	}{
		{"file1.png", 100},
		{"file2.png", 200},
		{"subdir/file3.png", 300},
	}

	var expectedSize int64
	for _, f := range files {
		path := filepath.Join(tempDir, f.path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory: %v", err)
		}
		if err := os.WriteFile(path, make([]byte, f.size), 0o644); err != nil {
			t.Fatalf("failed to create file: %v", err)
		}
		expectedSize += int64(f.size)
	}

	size, err := dirSize(tempDir)
	if err != nil {
		t.Fatalf("dirSize failed: %v", err)
	}

	if size != expectedSize {
		t.Errorf("dirSize() = %d, want %d", size, expectedSize)
	}
}

func TestDirSizeEmptyDir(t *testing.T) {
	size, err := dirSize(t.TempDir())
	if err != nil {
		t.Fatalf("dirSize on empty dir failed: %v", err)
	}

	if size != 0 {
		t.Errorf("dirSize() on empty dir = %d, want 0", size)
	}
}

func TestDirSizeNonexistent(t *testing.T) {
	if _, err := dirSize("/nonexistent/path"); err == nil {
		t.Error("dirSize on nonexistent path should return error")
	}
}

func TestStatsProviderInterface(_ *testing.T) {
	var _ StatsProvider = (*mockStatsProvider)(nil)
	var _ StatsProvider = (*LibraryProvider)(nil)
}

func TestLibraryProviderCounts(t *testing.T) {
	root := t.TempDir()

	media := []string{"a.jpg", "b.png", "sub/c.mp4", "sub/d.mkv", "sub/e.webm"}
	for _, name := range media {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	// Non-media files are not counted.
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	provider := NewLibraryProvider(root)
	stats := provider.GetStats()

	if stats.Images != 2 {
		t.Errorf("Images = %d, want 2", stats.Images)
	}
	if stats.Videos != 3 {
		t.Errorf("Videos = %d, want 3", stats.Videos)
	}
}

func TestLibraryProviderMissingRoot(t *testing.T) {
	provider := NewLibraryProvider(filepath.Join(t.TempDir(), "nope"))
	stats := provider.GetStats()

	if stats.Images != 0 || stats.Videos != 0 {
		t.Errorf("GetStats() for missing root = %+v, want zero counts", stats)
	}
}
