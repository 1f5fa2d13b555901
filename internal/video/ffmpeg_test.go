package video

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func TestFormatSeekTime(t *testing.T) {
	tests := []struct {
		name     string
		seconds  float64
		expected string
	}{
		{
			name:     "Zero seconds",
			seconds:  0.0,
			expected: "00:00:00.000",
		},
		{
			name:     "Less than 1 second",
			seconds:  0.1,
			expected: "00:00:00.100",
		},
		{
			name:     "Exactly 1 second",
			seconds:  1.0,
			expected: "00:00:01.000",
		},
		{
			name:     "Millisecond precision",
			seconds:  0.055,
			expected: "00:00:00.055",
		},
		{
			name:     "Over 1 minute",
			seconds:  65.5,
			expected: "00:01:05.500",
		},
		{
			name:     "Over 1 hour",
			seconds:  3661.25,
			expected: "01:01:01.250",
		},
		{
			name:     "Multiple hours",
			seconds:  7384.999,
			expected: "02:03:04.999",
		},
		{
			name:     "Negative clamps to zero",
			seconds:  -3.5,
			expected: "00:00:00.000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := formatSeekTime(tt.seconds)
			if result != tt.expected {
				t.Errorf("formatSeekTime(%.3f) = %s, want %s", tt.seconds, result, tt.expected)
			}
		})
	}
}

func TestHandlePlayability(t *testing.T) {
	tests := []struct {
		name     string
		probe    Probe
		playable bool
	}{
		{
			name:     "video stream with duration",
			probe:    Probe{Duration: 10 * time.Second, HasVideo: true, Codec: "h264"},
			playable: true,
		},
		{
			name:     "no video stream",
			probe:    Probe{Duration: 10 * time.Second, HasVideo: false},
			playable: false,
		},
		{
			name:     "video stream without duration",
			probe:    Probe{Duration: 0, HasVideo: true},
			playable: false,
		},
		{
			name:     "empty probe",
			probe:    Probe{},
			playable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &ffmpegHandle{path: "test.mp4", probe: tt.probe}
			if got := h.IsPlayable(); got != tt.playable {
				t.Errorf("IsPlayable() = %v, want %v", got, tt.playable)
			}
			if h.Duration() != tt.probe.Duration {
				t.Errorf("Duration() = %v, want %v", h.Duration(), tt.probe.Duration)
			}
			if err := h.Close(); err != nil {
				t.Errorf("Close() = %v, want nil", err)
			}
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	var src FFmpeg
	_, err := src.Open(context.Background(), filepath.Join(t.TempDir(), "missing.mp4"))
	if err == nil {
		t.Error("Open on a missing file should error before running ffprobe")
	}
}
