package util

import (
	"fmt"
	"os"
)

// ReadSnapshotCSVFromFile loads a raw CSV snapshot from disk.
func ReadSnapshotCSVFromFile(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	return string(data), nil
}
