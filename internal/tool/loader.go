package tool

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// manifestFile is the expected manifest name inside each tool directory.
const manifestFile = "tool.yaml"

// Manifest is the on-disk declaration of a directory tool.
type Manifest struct {
	Name               string   `yaml:"name"`
	Description        string   `yaml:"description"`
	Params             []Param  `yaml:"params"`
	RequiresPermission bool     `yaml:"requires_permission"`
	Command            []string `yaml:"command"`
	TimeoutSeconds     int      `yaml:"timeout_seconds"`
}

// Timeout returns the declared execution timeout, or zero when the
// manifest leaves it unset.
func (m Manifest) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// LoadIssue records a tool directory that failed to load. Invalid entries
// are skipped and reported; they never abort the scan.
type LoadIssue struct {
	Path string
	Err  error
}

// LoadDir scans a directory for tool manifests and registers the valid
// ones. Each immediate subdirectory containing a tool.yaml yields one
// tool. Entries that fail to parse, validate, or register are collected
// as issues and skipped. A missing root directory is not an error.
func (r *Registry) LoadDir(root string) ([]LoadIssue, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tool directory: %w", err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)

	var issues []LoadIssue
	for _, dir := range dirs {
		manifestPath := filepath.Join(root, dir, manifestFile)
		t, err := loadManifest(manifestPath)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			issues = append(issues, LoadIssue{Path: manifestPath, Err: err})
			continue
		}
		if err := r.Register(t); err != nil {
			issues = append(issues, LoadIssue{Path: manifestPath, Err: err})
		}
	}
	return issues, nil
}

// loadManifest parses one manifest and builds the subprocess tool it
// declares.
func loadManifest(path string) (*ExecTool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: parse manifest: %v", ErrInvalidSpec, err)
	}

	if m.Name == "" {
		return nil, fmt.Errorf("%w: manifest has no name", ErrInvalidSpec)
	}
	if m.Description == "" {
		return nil, fmt.Errorf("%w: %s: manifest has no description", ErrInvalidSpec, m.Name)
	}
	if len(m.Command) == 0 {
		return nil, fmt.Errorf("%w: %s: manifest has no command", ErrInvalidSpec, m.Name)
	}

	return &ExecTool{
		manifest: m,
		dir:      filepath.Dir(path),
	}, nil
}
