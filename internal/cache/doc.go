// Package cache stores composed preview rasters keyed by media identity.
//
// Every backend honors the same contract: values are committed whole, a
// Fetch never observes a partially written raster, and when two Stores
// race on one key exactly one committed value remains observable. A
// backend failure is never surfaced to callers; a failed Store is a
// logged no-op and a failed Fetch is a miss, so preview generation keeps
// working without its cache.
//
// Backends:
//   - Memory: bounded in-process map
//   - Disk: one PNG file per entry, committed by atomic rename
//   - SQLite: PNG blobs in a WAL-mode database
//   - Redis: PNG bytes with a TTL
//   - Badger: PNG bytes in an embedded key-value store
//
// Open selects a backend from configuration. Absence of caching is
// modeled as a nil Cache, which all call sites skip.
package cache
