package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/saya-palworld/saya/src/internal/log"
)

func CloseOrWarn(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Warnf("Failed to close file: %v", err)
	}
}

// WriteFile creates the parent directory if needed and overwrites path with data.
// The write is not atomic: a crash mid-write can leave a truncated file.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
