package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"time"

	"filmstrip/internal/logging"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver
)

const sqliteTimeout = 5 * time.Second

// SQLite persists rasters as PNG blobs in a single-table database.
// SQLite's transactional writes give the whole-value commit the Cache
// contract demands.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database file at dbPath in WAL mode.
// The parent directory must already exist.
func NewSQLite(ctx context.Context, dbPath string) (*SQLite, error) {
	// busy_timeout prevents "database is locked" errors under write races
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, sqliteTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("close cache database after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("connect to cache database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	schema := `CREATE TABLE IF NOT EXISTS previews (
		id         TEXT PRIMARY KEY,
		png        BLOB NOT NULL,
		created_at INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("close cache database after schema failure: %v", closeErr)
		}
		return nil, fmt.Errorf("initialize cache schema: %w", err)
	}

	logging.Info("sqlite preview cache ready at %s", dbPath)
	return &SQLite{db: db}, nil
}

// Fetch reads the PNG blob stored under id.
func (s *SQLite) Fetch(ctx context.Context, id string) (image.Image, bool) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT png FROM previews WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		logging.Warn("sqlite cache fetch %s: %v", id, err)
		return nil, false
	}

	img, err := decodePNG(data)
	if err != nil {
		logging.Warn("sqlite cache entry %s is not a valid png: %v", id, err)
		return nil, false
	}
	return img, true
}

// Store upserts the raster under id.
func (s *SQLite) Store(ctx context.Context, id string, img image.Image) {
	data, err := encodePNG(img)
	if err != nil {
		logging.Warn("sqlite cache encode %s: %v", id, err)
		return
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO previews (id, png, created_at) VALUES (?, ?, ?)`,
		id, data, time.Now().Unix())
	if err != nil {
		logging.Warn("sqlite cache store %s: %v", id, err)
	}
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
