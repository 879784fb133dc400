package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var (
	migrationFile = regexp.MustCompile(`^(\d+)_[a-z0-9_]+\.(up|down)\.sql$`)
	nonWord       = regexp.MustCompile(`[^a-z0-9]+`)
)

// NewFiles names the pair written by Create
type NewFiles struct {
	Version  int
	UpPath   string
	DownPath string
}

// Create writes an empty NNNNNN_name.up.sql / .down.sql pair numbered one past the highest
// version already in dir
func Create(dir, name string) (*NewFiles, error) {
	slug := Slug(name)
	if slug == "" {
		return nil, fmt.Errorf("migration name %q has no usable characters", name)
	}
	latest, err := LatestVersion(dir)
	if err != nil {
		return nil, err
	}

	next := latest + 1
	base := fmt.Sprintf("%06d_%s", next, slug)
	files := &NewFiles{
		Version:  next,
		UpPath:   filepath.Join(dir, base+".up.sql"),
		DownPath: filepath.Join(dir, base+".down.sql"),
	}
	if err := writeNew(files.UpPath, fmt.Sprintf("-- %s\n", name)); err != nil {
		return nil, err
	}
	if err := writeNew(files.DownPath, fmt.Sprintf("-- revert %s\n", name)); err != nil {
		_ = os.Remove(files.UpPath)
		return nil, err
	}
	return files, nil
}

func writeNew(path, content string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// LatestVersion returns the highest migration version in dir, 0 for an empty or missing dir
func LatestVersion(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read migrations dir: %w", err)
	}
	latest := 0
	for _, e := range entries {
		match := migrationFile.FindStringSubmatch(e.Name())
		if e.IsDir() || match == nil {
			continue
		}
		v, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		latest = max(latest, v)
	}
	return latest, nil
}

// Slug lower-cases name and collapses everything but letters and digits into single underscores
func Slug(name string) string {
	return strings.Trim(nonWord.ReplaceAllString(strings.ToLower(name), "_"), "_")
}
