package cache

import (
	"context"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"filmstrip/internal/logging"

	"github.com/google/renameio/v2"
	"golang.org/x/crypto/blake2b"
)

// Disk persists rasters as PNG files, one per id, committed by atomic
// rename so a reader never observes a torn file.
type Disk struct {
	dir string
}

// NewDisk creates the cache directory if needed and returns a Disk cache
// rooted there.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir %s: %w", dir, err)
	}
	return &Disk{dir: dir}, nil
}

// path hashes the id so arbitrary caller-derived ids stay filesystem-safe.
func (d *Disk) path(id string) string {
	sum := blake2b.Sum256([]byte(id))
	return filepath.Join(d.dir, hex.EncodeToString(sum[:])+".png")
}

// Fetch reads the PNG stored under id.
func (d *Disk) Fetch(_ context.Context, id string) (image.Image, bool) {
	data, err := os.ReadFile(d.path(id))
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("disk cache read %s: %v", id, err)
		}
		return nil, false
	}

	img, err := decodePNG(data)
	if err != nil {
		logging.Warn("disk cache entry %s is not a valid png: %v", id, err)
		return nil, false
	}
	return img, true
}

// Store writes the raster to a pending file and commits it with an
// atomic rename. fsync happens before the rename, so a committed entry
// survives power loss whole or not at all.
func (d *Disk) Store(_ context.Context, id string, img image.Image) {
	data, err := encodePNG(img)
	if err != nil {
		logging.Warn("disk cache encode %s: %v", id, err)
		return
	}

	pending, err := renameio.NewPendingFile(d.path(id))
	if err != nil {
		logging.Warn("disk cache create pending file for %s: %v", id, err)
		return
	}
	defer func() {
		if err := pending.Cleanup(); err != nil {
			logging.Debug("disk cache cleanup pending file for %s: %v", id, err)
		}
	}()

	if _, err := pending.Write(data); err != nil {
		logging.Warn("disk cache write %s: %v", id, err)
		return
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		logging.Warn("disk cache commit %s: %v", id, err)
	}
}
