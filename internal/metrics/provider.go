package metrics

import (
	"context"

	"filmstrip/internal/media"
)

// LibraryProvider implements StatsProvider by walking a media library
// root and counting files by type. A failed walk reports zero counts.
type LibraryProvider struct {
	root string
}

// NewLibraryProvider creates a provider that scans root on each collection.
func NewLibraryProvider(root string) *LibraryProvider {
	return &LibraryProvider{root: root}
}

func (p *LibraryProvider) GetStats() Stats {
	var stats Stats

	paths, err := media.Scan(context.Background(), p.root)
	if err != nil {
		return stats
	}

	for _, path := range paths {
		switch media.TypeOf(path) {
		case media.TypeImage:
			stats.Images++
		case media.TypeVideo:
			stats.Videos++
		}
	}
	return stats
}
