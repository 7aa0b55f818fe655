package pegrat

import "fmt"

// GrammarLoader is the contract for the file-loading collaborator
// that reads grammar source text from disk (or anywhere else) given
// an import path and the path of whatever referenced it. The engine
// depends only on this interface; an embedding application supplies
// the implementation that knows about real filesystems, module search
// paths, and so on.
type GrammarLoader interface {
	// Path resolves importPath (as written at the import site) to a
	// canonical path, given the path of the grammar that imported
	// it.
	Path(importPath, parentPath string) (string, error)

	// Content returns the grammar source text at path.
	Content(path string) (string, error)
}

// InMemoryLoader is a GrammarLoader backed by an in-memory map,
// useful for tests that exercise grammar composition without
// touching a real filesystem.
type InMemoryLoader struct {
	sources map[string]string
}

// NewInMemoryLoader returns an empty InMemoryLoader.
func NewInMemoryLoader() *InMemoryLoader {
	return &InMemoryLoader{sources: make(map[string]string)}
}

// Add registers source text under path.
func (l *InMemoryLoader) Add(path, source string) {
	l.sources[path] = source
}

// Path for an InMemoryLoader is the identity function: import paths
// are looked up verbatim, there is no directory structure to resolve
// against.
func (l *InMemoryLoader) Path(importPath, _ string) (string, error) {
	return importPath, nil
}

// Content returns the source registered under path, or an error if
// nothing was registered there.
func (l *InMemoryLoader) Content(path string) (string, error) {
	src, ok := l.sources[path]
	if !ok {
		return "", fmt.Errorf("no grammar source registered for %q", path)
	}
	return src, nil
}
