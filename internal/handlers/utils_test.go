package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// =============================================================================
// isSubPath Tests
// =============================================================================

func TestIsSubPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		parent   string
		child    string
		expected bool
	}{
		{
			name:     "Direct child",
			parent:   "/media",
			child:    "/media/photos",
			expected: true,
		},
		{
			name:     "Deep child",
			parent:   "/media",
			child:    "/media/photos/vacation/image.jpg",
			expected: true,
		},
		{
			name:     "Same path",
			parent:   "/media",
			child:    "/media",
			expected: true,
		},
		{
			name:     "Not a subpath - sibling",
			parent:   "/media",
			child:    "/videos",
			expected: false,
		},
		{
			name:     "Not a subpath - similar prefix",
			parent:   "/media",
			child:    "/media-backup",
			expected: false,
		},
		{
			name:     "Parent path",
			parent:   "/media/photos",
			child:    "/media",
			expected: false,
		},
		{
			name:     "Relative components in parent",
			parent:   "/media/../media",
			child:    "/media/photos",
			expected: true,
		},
		{
			name:     "Relative components in child",
			parent:   "/media",
			child:    "/media/photos/../videos/clip.mp4",
			expected: true,
		},
		{
			name:     "Empty parent",
			parent:   "",
			child:    "/media",
			expected: false,
		},
		{
			name:     "Empty child",
			parent:   "/media",
			child:    "",
			expected: false,
		},
		{
			name:     "Path traversal attempt",
			parent:   "/media",
			child:    "/media/../etc/passwd",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isSubPath(tt.parent, tt.child)
			if result != tt.expected {
				t.Errorf("isSubPath(%q, %q) = %v, want %v", tt.parent, tt.child, result, tt.expected)
			}
		})
	}
}

func TestIsSubPathRealPaths(t *testing.T) {
	t.Parallel()

	parent := filepath.Join(t.TempDir(), "media")
	child := filepath.Join(parent, "subfolder", "file.jpg")

	if !isSubPath(parent, child) {
		t.Errorf("isSubPath(%q, %q) = false, want true", parent, child)
	}
	if isSubPath(child, parent) {
		t.Errorf("isSubPath(%q, %q) = true, want false", child, parent)
	}
}

// =============================================================================
// JSON Helper Tests
// =============================================================================

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	writeJSON(w, map[string]int{"count": 3})

	var body map[string]int
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["count"] != 3 {
		t.Errorf("count = %d, want 3", body["count"])
	}
}

func TestWriteJSONError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	writeJSONError(w, "something broke", 418)

	if w.Code != 418 {
		t.Errorf("Expected status 418, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["error"] != "something broke" {
		t.Errorf("error = %q, want %q", body["error"], "something broke")
	}
}

func TestWriteJSONStatus(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	writeJSONStatus(w, "alive")

	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "alive" {
		t.Errorf("status = %q, want alive", body["status"])
	}
}
