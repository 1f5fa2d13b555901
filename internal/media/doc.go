// Package media provides file classification and identity for preview
// generation.
//
// This package exists as a dependency-light foundation that can be imported
// by other packages without creating import cycles. It contains the Ref
// value that the rest of the application passes around, plus extension
// tables and pure classification helpers.
//
// # File Types
//
// Use TypeOf to classify a path by its extension:
//
//	switch media.TypeOf(path) {
//	case media.TypeImage:
//	    // decode directly
//	case media.TypeVideo:
//	    // sample frames
//	}
//
// # References
//
// NewRef stats a file and derives a stable opaque identity from its path,
// size, and modification time. Editing a file therefore changes its
// identity, and previews cached under the old identity simply stop being
// looked up.
package media
