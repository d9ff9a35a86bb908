package agentdoc

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

const documentPattern = "*.md"

var excludedNames = map[string]struct{}{
	"README.md":       {},
	"CONTRIBUTING.md": {},
	"LICENSE.md":      {},
}

// ExcludedNames returns the file names that are never treated as agent
// documents, sorted.
func ExcludedNames() []string {
	names := make([]string, 0, len(excludedNames))
	for name := range excludedNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsExcluded reports whether name is one of the fixed non-agent documents.
func IsExcluded(name string) bool {
	_, ok := excludedNames[name]
	return ok
}

// IsAgentDocumentName reports whether name follows the agent document naming
// convention: a .md file whose base name is entirely upper-case and which is
// not excluded.
func IsAgentDocumentName(name string) bool {
	if path.Ext(name) != ".md" || IsExcluded(name) {
		return false
	}
	return isUpper(strings.TrimSuffix(name, ".md"))
}

// isUpper requires at least one cased letter and no lower-case ones.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			return false
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			cased = true
		}
	}
	return cased
}

// SelectCandidates returns the agent documents at the root of fsys in
// lexicographic order. An empty result is not an error.
func SelectCandidates(fsys fs.FS) ([]string, error) {
	matches, err := doublestar.Glob(fsys, documentPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list agent documents: %w", err)
	}

	candidates := make([]string, 0, len(matches))
	for _, name := range matches {
		if IsAgentDocumentName(name) {
			candidates = append(candidates, name)
		}
	}
	sort.Strings(candidates)

	return candidates, nil
}
