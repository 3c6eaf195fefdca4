package utils

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetAbsolutePath(t *testing.T) {
	absolutePath := "/palworld/server"
	if runtime.GOOS == "windows" {
		absolutePath = "C:\\palworld\\server"
	}

	tests := []struct {
		name     string
		path     string
		baseDir  string
		expected string
	}{
		{"already absolute", absolutePath, "/base/dir", absolutePath},
		{"relative", "Pal/Saved/SaveGames/0", "/palworld", filepath.FromSlash("/palworld/Pal/Saved/SaveGames/0")},
		{"dot path", "./server", "/base/dir", filepath.FromSlash("/base/dir/server")},
		{"double dot path", "../server", "/base/dir", filepath.FromSlash("/base/server")},
		{"empty path", "", "/base/dir", filepath.FromSlash("/base/dir")},
		{"empty base dir", "server", "", "server"},
		{"path cleaning", "a//b/../c", "/base//dir", filepath.FromSlash("/base/dir/a/c")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAbsolutePath(tt.path, tt.baseDir); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}
