package artifacts

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// StampMeta carries the provenance recorded alongside a stamped
// artifact.
type StampMeta struct {
	IterationID string `json:"iteration_id"`
	NodeID      string `json:"node_id"`
	PersonaID   string `json:"persona_id,omitempty"`
	Phase       string `json:"phase,omitempty"`
	Deliverable string `json:"deliverable,omitempty"`
}

// Stamped describes one artifact accepted into the archive, as written
// to the .meta.json sidecar.
type Stamped struct {
	ArtifactID  string    `json:"artifact_id"`
	SourcePath  string    `json:"source_path"`
	ArchivePath string    `json:"archive_path"`
	SHA256      string    `json:"sha256"`
	SizeBytes   int64     `json:"size_bytes"`
	IterationID string    `json:"iteration_id"`
	NodeID      string    `json:"node_id"`
	PersonaID   string    `json:"persona_id,omitempty"`
	Phase       string    `json:"phase,omitempty"`
	Deliverable string    `json:"deliverable,omitempty"`
	StampedAt   time.Time `json:"stamped_at"`
}

// Stamp copies a produced file into the iteration archive under
// artifacts/{iteration}/{node}/ and writes a .meta.json sidecar with
// its provenance and content hash. relPath is relative to root.
func Stamp(root, relPath string, meta StampMeta) (*Stamped, error) {
	if meta.IterationID == "" || meta.NodeID == "" {
		return nil, fmt.Errorf("stamp requires iteration and node ids")
	}

	srcPath := filepath.Join(root, filepath.FromSlash(relPath))
	info, err := os.Stat(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat artifact source: %w", err)
	}

	archiveDir := filepath.Join(root, "artifacts", meta.IterationID, meta.NodeID)
	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact archive directory: %w", err)
	}

	base := filepath.Base(relPath)
	destPath := filepath.Join(archiveDir, base)
	if err := copyFile(srcPath, destPath); err != nil {
		return nil, fmt.Errorf("failed to archive artifact %s: %w", relPath, err)
	}

	sum, err := hashFile(destPath)
	if err != nil {
		return nil, fmt.Errorf("failed to hash archived artifact: %w", err)
	}

	stamped := &Stamped{
		ArtifactID:  uuid.New().String(),
		SourcePath:  filepath.ToSlash(relPath),
		ArchivePath: filepath.ToSlash(filepath.Join("artifacts", meta.IterationID, meta.NodeID, base)),
		SHA256:      sum,
		SizeBytes:   info.Size(),
		IterationID: meta.IterationID,
		NodeID:      meta.NodeID,
		PersonaID:   meta.PersonaID,
		Phase:       meta.Phase,
		Deliverable: meta.Deliverable,
		StampedAt:   time.Now().UTC(),
	}

	sidecar, err := json.MarshalIndent(stamped, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal artifact sidecar: %w", err)
	}
	if err := os.WriteFile(destPath+".meta.json", sidecar, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write artifact sidecar: %w", err)
	}

	return stamped, nil
}

// LoadStamped reads the sidecar metadata for an archived artifact.
func LoadStamped(root, archivePath string) (*Stamped, error) {
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(archivePath)) + ".meta.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact sidecar: %w", err)
	}
	var stamped Stamped
	if err := json.Unmarshal(data, &stamped); err != nil {
		return nil, fmt.Errorf("failed to parse artifact sidecar: %w", err)
	}
	return &stamped, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
