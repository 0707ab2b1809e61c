// Package naming derives the logical names of catalog entries from their
// paths. A name is the path relative to the root directory, with the
// environments directory prefix and a known extension removed, always using
// forward slashes.
package naming

import (
	"path/filepath"
	"strings"
)

// EnvsDir is the reserved directory, directly below the root, that holds
// environment documents.
const EnvsDir = "envs"

// EnvironmentExtensions are the environment document formats reqq can parse.
var EnvironmentExtensions = []string{".json", ".yaml", ".yml", ".toml", ".env"}

// DefaultRequestExtensions are stripped from request template names.
var DefaultRequestExtensions = []string{".http", ".json", ".req", ".txt"}

// Derive returns the logical name of path below root. The first matching
// extension in exts is removed.
func Derive(root, path string, exts []string) string {
	root = filepath.ToSlash(filepath.Clean(root))
	name := filepath.ToSlash(path)

	if root != "." {
		name = strings.TrimPrefix(name, root)
	}
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimPrefix(name, EnvsDir+"/")

	for _, ext := range exts {
		if trimmed, ok := strings.CutSuffix(name, ext); ok && trimmed != "" {
			return trimmed
		}
	}
	return name
}

// InEnvsDir reports whether path lies strictly inside the environments
// directory of root. The directory itself is not inside.
func InEnvsDir(root, path string) bool {
	envs := filepath.Join(filepath.Clean(root), EnvsDir)
	return strings.HasPrefix(filepath.Clean(path), envs+string(filepath.Separator))
}
