package cache

import (
	"context"
	"errors"
	"fmt"
	"image"

	"filmstrip/internal/logging"

	"github.com/dgraph-io/badger/v4"
)

// Badger stores rasters as PNG bytes in an embedded Badger database.
// Badger transactions commit whole values, satisfying the Cache contract
// without extra locking.
type Badger struct {
	db *badger.DB
}

// NewBadger opens (or creates) a Badger database at dir.
func NewBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache at %s: %w", dir, err)
	}
	logging.Info("badger preview cache ready at %s", dir)
	return &Badger{db: db}, nil
}

// Fetch reads the PNG bytes stored under id.
func (b *Badger) Fetch(_ context.Context, id string) (image.Image, bool) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			data = append([]byte(nil), val...)
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false
	}
	if err != nil {
		logging.Warn("badger cache fetch %s: %v", id, err)
		return nil, false
	}

	img, err := decodePNG(data)
	if err != nil {
		logging.Warn("badger cache entry %s is not a valid png: %v", id, err)
		return nil, false
	}
	return img, true
}

// Store writes the raster under id in one transaction.
func (b *Badger) Store(_ context.Context, id string, img image.Image) {
	data, err := encodePNG(img)
	if err != nil {
		logging.Warn("badger cache encode %s: %v", id, err)
		return
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(id), data)
	})
	if err != nil {
		logging.Warn("badger cache store %s: %v", id, err)
	}
}

// Close flushes and closes the database.
func (b *Badger) Close() error {
	return b.db.Close()
}
