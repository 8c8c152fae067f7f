package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// PathResolver finds dictionary directories relative to the places a
// suggestlog binary is usually run from.
type PathResolver struct {
	executableDir string
	workingDir    string
	configDir     string
}

// NewPathResolver creates a resolver rooted at the running executable, the
// working directory and configDir. configDir may be empty.
func NewPathResolver(configDir string) (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	// Resolve any symlinks to get the actual binary location
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
	}
	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workingDir:    cwd,
		configDir:     configDir,
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s",
		pr.executableDir, pr.workingDir, pr.configDir)
	return pr, nil
}

// Candidates lists where dir/lang is looked for, in order:
// 1. dir itself, if absolute
// 2. relative to the working directory
// 3. relative to the executable directory
// 4. relative to the config directory
func (pr *PathResolver) Candidates(dir, lang string) []string {
	if filepath.IsAbs(dir) {
		return []string{filepath.Join(dir, lang)}
	}
	var out []string
	for _, root := range []string{pr.workingDir, pr.executableDir, pr.configDir} {
		if root == "" {
			continue
		}
		out = append(out, filepath.Join(root, dir, lang))
	}
	return out
}

// DictionaryPath returns the first candidate that exists. When none does the
// first candidate is returned so the caller can report it.
func (pr *PathResolver) DictionaryPath(dir, lang string) string {
	candidates := pr.Candidates(dir, lang)
	if len(candidates) == 0 {
		return filepath.Join(dir, lang)
	}
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found dictionary at: %s", path)
			return path
		}
		log.Debugf("Dictionary candidate not found: %s", path)
	}
	return candidates[0]
}
