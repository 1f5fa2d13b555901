package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"time"
)

// Probe holds the stream facts ffprobe reports for one file.
type Probe struct {
	Duration time.Duration `json:"duration"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Codec    string        `json:"codec"`
	HasVideo bool          `json:"hasVideo"`
}

// probeReport mirrors the parts of ffprobe's JSON output we read.
type probeReport struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType string `json:"codec_type"`
		CodecName string `json:"codec_name"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

func runProbe(ctx context.Context, path string) (Probe, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return Probe{}, fmt.Errorf("ffprobe %s: %w - %s", path, err, stderr.String())
	}

	return parseProbe(stdout.Bytes())
}

func parseProbe(raw []byte) (Probe, error) {
	var report probeReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return Probe{}, fmt.Errorf("parse ffprobe output: %w", err)
	}

	var p Probe
	if secs, err := strconv.ParseFloat(report.Format.Duration, 64); err == nil {
		p.Duration = time.Duration(secs * float64(time.Second))
	}

	for _, s := range report.Streams {
		if s.CodecType == "video" {
			p.HasVideo = true
			p.Codec = s.CodecName
			p.Width = s.Width
			p.Height = s.Height
			break
		}
	}

	return p, nil
}
