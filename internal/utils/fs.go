package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// Files maps every regular file in dir to a single-element slice holding
// its lowercased extension without the dot. Files with unknown extensions
// are passed through; rejecting them is the loader's job.
func Files(dir string) (map[string][]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	fnames := make(map[string][]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(entry.Name()), "."))
		fnames[filepath.Join(dir, entry.Name())] = []string{ext}
	}

	return fnames, nil
}

func MoveFile(src, dstDir string) error {
	base := filepath.Base(src)
	dst := filepath.Join(dstDir, base)

	// append a timestamp if the destination already exists
	if _, err := os.Stat(dst); err == nil {
		ext := filepath.Ext(base)
		name := base[:len(base)-len(ext)]
		dst = filepath.Join(
			dstDir,
			fmt.Sprintf("%s_%d%s", name, time.Now().Unix(), ext),
		)
	}

	return os.Rename(src, dst)
}
