package metrics

import (
	"testing"
)

func TestHTTPMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"HTTPRequestsTotal", HTTPRequestsTotal},
		{"HTTPRequestDuration", HTTPRequestDuration},
		{"HTTPRequestsInFlight", HTTPRequestsInFlight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestGenerationMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"GenerationsTotal", GenerationsTotal},
		{"GenerationDuration", GenerationDuration},
		{"GenerationFailures", GenerationFailures},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestCacheMetricsExist(t *testing.T) {
	tests := []struct {
		name   string
		metric interface{}
	}{
		{"CacheHits", CacheHits},
		{"CacheMisses", CacheMisses},
		{"CacheStores", CacheStores},
		{"CacheBackendInfo", CacheBackendInfo},
		{"CacheDiskUsageBytes", CacheDiskUsageBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.metric == nil {
				t.Errorf("%s metric is nil", tt.name)
			}
		})
	}
}

func TestHTTPMetricTypes(t *testing.T) {
	t.Run("HTTPRequestsTotal is CounterVec", func(_ *testing.T) {
		HTTPRequestsTotal.WithLabelValues("GET", "/test", "200").Add(0)
	})

	t.Run("HTTPRequestDuration is HistogramVec", func(_ *testing.T) {
		HTTPRequestDuration.WithLabelValues("GET", "/test").Observe(0.1)
	})

	t.Run("HTTPRequestsInFlight is Gauge", func(_ *testing.T) {
		HTTPRequestsInFlight.Set(0)
	})
}

func TestGenerationMetricOperations(t *testing.T) {
	t.Run("GenerationsTotal with labels", func(_ *testing.T) {
		GenerationsTotal.WithLabelValues("video", "ok").Add(0)
		GenerationsTotal.WithLabelValues("image", "failed").Add(0)
	})

	t.Run("GenerationDuration observe", func(_ *testing.T) {
		GenerationDuration.WithLabelValues("video").Observe(1.5)
		GenerationDuration.WithLabelValues("image").Observe(0.1)
	})

	t.Run("GenerationFailures by kind", func(_ *testing.T) {
		GenerationFailures.WithLabelValues("video_unplayable").Add(0)
		GenerationFailures.WithLabelValues("image_unloadable").Add(0)
		GenerationFailures.WithLabelValues("other").Add(0)
	})
}

func TestCacheMetricOperations(t *testing.T) {
	t.Run("CacheHits increment", func(_ *testing.T) {
		CacheHits.Add(0)
	})

	t.Run("CacheMisses increment", func(_ *testing.T) {
		CacheMisses.Add(0)
	})

	t.Run("CacheStores increment", func(_ *testing.T) {
		CacheStores.Add(0)
	})

	t.Run("CacheDiskUsageBytes set", func(_ *testing.T) {
		CacheDiskUsageBytes.Set(1024 * 1024)
		CacheDiskUsageBytes.Set(0)
	})
}

func TestSetCacheBackend(t *testing.T) {
	if CacheBackendInfo == nil {
		t.Fatal("CacheBackendInfo metric is nil")
	}

	t.Run("SetCacheBackend function", func(_ *testing.T) {
		SetCacheBackend("disk")
		SetCacheBackend("redis")
	})
}

func TestMediaLibraryMetricOperations(t *testing.T) {
	t.Run("MediaFilesTotal by type", func(_ *testing.T) {
		MediaFilesTotal.WithLabelValues("image").Set(1000)
		MediaFilesTotal.WithLabelValues("video").Set(500)
	})
}

func TestAsyncMetricOperations(t *testing.T) {
	t.Run("AsyncRequestsInFlight toggle", func(_ *testing.T) {
		AsyncRequestsInFlight.Inc()
		AsyncRequestsInFlight.Dec()
	})
}

func TestPrewarmMetricOperations(t *testing.T) {
	t.Run("PrewarmFilesTotal by status", func(_ *testing.T) {
		PrewarmFilesTotal.WithLabelValues("generated").Set(100)
		PrewarmFilesTotal.WithLabelValues("skipped").Set(50)
		PrewarmFilesTotal.WithLabelValues("failed").Set(5)
	})

	t.Run("PrewarmLastRunDuration set", func(_ *testing.T) {
		PrewarmLastRunDuration.Set(12.5)
	})
}

func TestAppInfoMetric(t *testing.T) {
	if AppInfo == nil {
		t.Fatal("AppInfo metric is nil")
	}

	t.Run("SetAppInfo function", func(_ *testing.T) {
		SetAppInfo("1.0.0", "abc123", "go1.25.0")
		SetAppInfo("2.0.0", "def456", "go1.25.1")
	})
}

func TestGenerationDurationBuckets(*testing.T) {
	// Buckets cover everything from a cached image to a long seek-heavy
	// video: 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30
	testDurations := []float64{
		0.01, // fast image
		0.1,  // normal image
		1.0,  // single video frame
		5.0,  // multi-frame filmstrip
		30.0, // very slow source
	}

	for _, duration := range testDurations {
		GenerationDuration.WithLabelValues("image").Observe(duration)
		GenerationDuration.WithLabelValues("video").Observe(duration)
	}
}

func TestMetricsAreRegistered(t *testing.T) {
	// Using the metrics exercises the default registry registration done
	// by promauto; a duplicate registration would have panicked at init.
	t.Run("Collect HTTP metrics", func(t *testing.T) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Collecting HTTP metrics panicked: %v", r)
			}
		}()

		HTTPRequestsTotal.WithLabelValues("GET", "/", "200").Add(1)
		HTTPRequestDuration.WithLabelValues("GET", "/").Observe(0.1)
		HTTPRequestsInFlight.Inc()
		HTTPRequestsInFlight.Dec()
	})

	t.Run("Collect generation metrics", func(t *testing.T) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Collecting generation metrics panicked: %v", r)
			}
		}()

		GenerationsTotal.WithLabelValues("video", "ok").Add(1)
		GenerationDuration.WithLabelValues("video").Observe(1.5)
		GenerationFailures.WithLabelValues("other").Add(1)
	})

	t.Run("Collect cache metrics", func(t *testing.T) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Collecting cache metrics panicked: %v", r)
			}
		}()

		CacheHits.Inc()
		CacheMisses.Inc()
		CacheStores.Inc()
	})
}

func TestMetricsConcurrentAccess(t *testing.T) {
	done := make(chan bool, 10)

	for i := 0; i < 10; i++ {
		go func(id int) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Goroutine %d panicked: %v", id, r)
				}
				done <- true
			}()

			HTTPRequestsTotal.WithLabelValues("GET", "/test", "200").Inc()
			GenerationsTotal.WithLabelValues("image", "ok").Inc()
			CacheHits.Inc()
			AsyncRequestsInFlight.Inc()
			AsyncRequestsInFlight.Dec()
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestInitializeMetrics(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("InitializeMetrics() panicked: %v", r)
		}
	}()

	InitializeMetrics()
}

func TestInitializeMetricsIdempotent(t *testing.T) {
	// Calling InitializeMetrics multiple times should not panic or cause
	// duplicate registration errors (WithLabelValues on existing labels is safe).
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("InitializeMetrics() panicked on second call: %v", r)
		}
	}()

	InitializeMetrics()
	InitializeMetrics()
}

func BenchmarkHTTPMetricsIncrement(b *testing.B) {
	b.Run("Counter increment", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			HTTPRequestsTotal.WithLabelValues("GET", "/api/preview", "200").Inc()
		}
	})

	b.Run("Histogram observe", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			HTTPRequestDuration.WithLabelValues("GET", "/api/preview").Observe(0.1)
		}
	})

	b.Run("Gauge set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			HTTPRequestsInFlight.Set(float64(i % 100))
		}
	})
}

func BenchmarkGenerationMetrics(b *testing.B) {
	b.Run("Generation counter", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			GenerationsTotal.WithLabelValues("image", "ok").Inc()
		}
	})

	b.Run("Cache hits", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			CacheHits.Inc()
		}
	})

	b.Run("Duration histogram", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			GenerationDuration.WithLabelValues("image").Observe(0.1)
		}
	})
}
