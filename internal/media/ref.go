package media

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"filmstrip/internal/filesystem"
)

// Ref identifies one media file for preview generation.
//
// ID is opaque and stable; the cache layer keys on it and nothing else.
// Callers that need distinct cache entries per rendering variant may
// construct a Ref literally with a derived ID.
type Ref struct {
	ID      string
	Path    string
	IsImage bool
}

// NewRef builds a Ref for the file at path. The ID digests the path
// together with the file's size and modification time, so an edited file
// gets a fresh identity and its stale previews stop being looked up.
// The stat goes through the NFS retry helper since this is the first
// touch of the source file on every request.
func NewRef(path string) (Ref, error) {
	info, err := filesystem.StatWithRetry(path, filesystem.DefaultRetryConfig())
	if err != nil {
		return Ref{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return Ref{}, fmt.Errorf("%s is a directory, not a media file", path)
	}

	input := fmt.Sprintf("%s|%d|%d", path, info.Size(), info.ModTime().UnixNano())
	sum := blake2b.Sum256([]byte(input))

	return Ref{
		ID:      hex.EncodeToString(sum[:]),
		Path:    path,
		IsImage: TypeOf(path) == TypeImage,
	}, nil
}
