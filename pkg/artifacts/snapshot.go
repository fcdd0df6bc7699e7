// Package artifacts handles everything produced by persona work: output
// directory snapshots and diffs, substance scoring of produced files,
// deliverable attribution against phase contracts, and stamping of
// accepted artifacts into the per-iteration archive.
package artifacts

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Directories never included in snapshots. The artifact archive and log
// output live inside the workspace and must not count as persona work.
var ignoredDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"artifacts":    true,
	"logs":         true,
	"__pycache__":  true,
	".venv":        true,
	"vendor":       true,
}

// Snapshot records the content hash of every file under a workspace
// root at a point in time. Paths are slash-separated and relative to
// the root.
type Snapshot struct {
	Root    string            `json:"root"`
	Files   map[string]string `json:"files"`
	TakenAt time.Time         `json:"taken_at"`
}

// TakeSnapshot walks root and hashes every regular file. A missing root
// yields an empty snapshot rather than an error so pre-work snapshots
// of a not-yet-created output directory succeed.
func TakeSnapshot(root string) (*Snapshot, error) {
	snap := &Snapshot{
		Root:    root,
		Files:   make(map[string]string),
		TakenAt: time.Now().UTC(),
	}

	if _, err := os.Stat(root); os.IsNotExist(err) {
		return snap, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if ignoredDirs[d.Name()] || (strings.HasPrefix(d.Name(), ".") && path != root) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		sum, err := hashFile(path)
		if err != nil {
			return fmt.Errorf("failed to hash %s: %w", rel, err)
		}
		snap.Files[filepath.ToSlash(rel)] = sum
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot %s: %w", root, err)
	}
	return snap, nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// DiffResult lists workspace changes between two snapshots, sorted by
// path.
type DiffResult struct {
	Added    []string `json:"added"`
	Modified []string `json:"modified"`
	Removed  []string `json:"removed"`
}

// Produced returns added plus modified paths, the set attributed to the
// work that happened between the snapshots.
func (d DiffResult) Produced() []string {
	produced := make([]string, 0, len(d.Added)+len(d.Modified))
	produced = append(produced, d.Added...)
	produced = append(produced, d.Modified...)
	sort.Strings(produced)
	return produced
}

// Diff compares this (pre-work) snapshot against post.
func (s *Snapshot) Diff(post *Snapshot) DiffResult {
	var result DiffResult
	for path, sum := range post.Files {
		prev, existed := s.Files[path]
		switch {
		case !existed:
			result.Added = append(result.Added, path)
		case prev != sum:
			result.Modified = append(result.Modified, path)
		}
	}
	for path := range s.Files {
		if _, still := post.Files[path]; !still {
			result.Removed = append(result.Removed, path)
		}
	}
	sort.Strings(result.Added)
	sort.Strings(result.Modified)
	sort.Strings(result.Removed)
	return result
}
