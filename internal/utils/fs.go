package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// DirState is what CheckDir found out about a directory.
type DirState struct {
	Exists   bool
	Writable bool
	Err      error
}

// CheckDir creates dir when it is missing and reports whether files can be
// created in it.
func CheckDir(dir string) DirState {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warnf("Cannot create directory %s: %v", dir, err)
		return DirState{Err: err}
	}
	f, err := os.CreateTemp(dir, ".suggestlog-*")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dir, err)
		return DirState{Exists: true, Err: err}
	}
	f.Close()
	os.Remove(f.Name())
	return DirState{Exists: true, Writable: true}
}

// FileExists reports whether path can be stat'ed.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteTOMLFile encodes v into a temp file beside path and renames it over
// path, so a failed write leaves the previous file in place.
func WriteTOMLFile(path string, v any) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = toml.NewEncoder(tmp).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// AbsPath returns path made absolute, or path itself when that fails.
func AbsPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// ExecutableDir returns the directory of the running binary.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}
