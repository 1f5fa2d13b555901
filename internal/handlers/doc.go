// Package handlers provides HTTP request handlers for the preview API.
//
// It includes handlers for:
//   - Preview rendering (filmstrip grids for videos, stills for images)
//   - Media probing and cache state inspection
//   - Health, liveness and readiness checks
//   - Version and build information
//
// All media paths resolve under the configured media directory and are
// checked against traversal before any file is touched.
package handlers
