// Package raster provides pixel-level primitives for preview generation:
// decoding still images from disk at a target size, the placeholder
// raster substituted when generation fails, and pixel comparison.
//
// Decoding prefers libvips (decode-time shrinking, low memory) when
// InitVips has been called, and falls back to the pure Go decoders
// otherwise. JPEG, PNG, GIF, BMP, TIFF, and WebP are supported without
// libvips.
package raster
