package blog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = fs.ErrNotExist

// ContentStore reads and writes raw Markdown documents in a directory.
// It is the only component that touches the filesystem; the pipeline
// consumes fully-read documents and never blocks on I/O itself.
type ContentStore struct {
	dir string
}

// NewContentStore ensures the content directory exists and returns a store
// over it.
func NewContentStore(dir string) (*ContentStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ContentStore{dir: dir}, nil
}

// Dir returns the directory the store operates on.
func (s *ContentStore) Dir() string {
	return s.dir
}

// List returns every .md document in the directory, read in full, together
// with its modification time. Unreadable entries are skipped.
func (s *ContentStore) List() ([]Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var docs []Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		doc := Document{Filename: entry.Name(), Raw: raw}
		if info, err := entry.Info(); err == nil {
			doc.ModTime = info.ModTime()
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Read returns one document by filename.
func (s *ContentStore) Read(filename string) (Document, error) {
	path := filepath.Join(s.dir, filepath.Base(filename))
	raw, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	doc := Document{Filename: filepath.Base(filename), Raw: raw}
	if info, err := os.Stat(path); err == nil {
		doc.ModTime = info.ModTime()
	}
	return doc, nil
}

// Write stores a document, replacing any previous version.
func (s *ContentStore) Write(filename string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, filepath.Base(filename)), data, 0o644)
}

// Delete removes a document. Deleting a missing document returns ErrNotFound.
func (s *ContentStore) Delete(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(filename)))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

// Exists reports whether a document with the given filename is present.
func (s *ContentStore) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.dir, filepath.Base(filename)))
	return err == nil
}
