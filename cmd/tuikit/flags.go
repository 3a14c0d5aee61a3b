package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateFilePath(flag, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("--%s file is required", flag)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s path: %w", flag, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("%s file does not exist: %w", flag, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s path %s is a directory", flag, abs)
	}

	return nil
}
