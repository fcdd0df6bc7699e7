package artifacts

import (
	"path/filepath"
	"strings"
)

// ProjectType classifies a workspace so validation can weigh
// deliverables in context: a docs-only project is not missing
// source_code, a pure backend is not missing frontend_code.
type ProjectType string

const (
	ProjectTypeBackend   ProjectType = "backend"
	ProjectTypeFrontend  ProjectType = "frontend"
	ProjectTypeFullstack ProjectType = "fullstack"
	ProjectTypeLibrary   ProjectType = "library"
	ProjectTypeDocs      ProjectType = "docs"
	ProjectTypeUnknown   ProjectType = "unknown"
)

var (
	backendExts  = map[string]bool{".go": true, ".py": true, ".java": true, ".rb": true, ".rs": true, ".php": true, ".cs": true}
	frontendExts = map[string]bool{".tsx": true, ".jsx": true, ".vue": true, ".svelte": true, ".html": true, ".css": true, ".scss": true}
	docExts      = map[string]bool{".md": true, ".rst": true, ".adoc": true, ".txt": true}
)

// InferProjectType classifies the workspace from the file paths in a
// snapshot. JS/TS files count as frontend when they live under a
// frontend-ish directory, backend otherwise.
func InferProjectType(paths []string) ProjectType {
	var backend, frontend, docs, other int

	for _, p := range paths {
		ext := strings.ToLower(filepath.Ext(p))
		dir := strings.ToLower(filepath.ToSlash(p))
		switch {
		case backendExts[ext]:
			backend++
		case frontendExts[ext]:
			frontend++
		case ext == ".ts" || ext == ".js":
			if strings.HasPrefix(dir, "frontend/") || strings.HasPrefix(dir, "ui/") ||
				strings.Contains(dir, "/components/") || strings.Contains(dir, "/pages/") {
				frontend++
			} else {
				backend++
			}
		case docExts[ext]:
			docs++
		default:
			other++
		}
	}

	switch {
	case backend > 0 && frontend > 0:
		return ProjectTypeFullstack
	case frontend > 0:
		return ProjectTypeFrontend
	case backend > 0:
		// A codebase with no entrypoint-ish files and mostly docs
		// alongside reads as a library; the distinction only relaxes
		// deployment deliverables, so a coarse heuristic is enough.
		if docs > backend {
			return ProjectTypeLibrary
		}
		return ProjectTypeBackend
	case docs > 0:
		return ProjectTypeDocs
	default:
		return ProjectTypeUnknown
	}
}

// relevantFor reports whether a deliverable name applies to the project
// type. Only a small set of deliverables is type-gated; everything else
// applies everywhere.
func (pt ProjectType) relevantFor(deliverable string) bool {
	switch deliverable {
	case "frontend_code":
		return pt == ProjectTypeFrontend || pt == ProjectTypeFullstack
	case "source_code":
		return pt != ProjectTypeDocs
	case "deployment_config":
		return pt != ProjectTypeDocs && pt != ProjectTypeLibrary
	default:
		return true
	}
}
