// Package artifact persists rendered workbooks to disk and serves
// them back for download.
package artifact

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const hexNameLen = 32

// Artifact identifies one saved workbook.
type Artifact struct {
	Name string
	Path string
}

// Store writes workbooks into a single directory under generated
// names. Names embed a random token so they never collide and never
// reveal anything about the estimate.
type Store struct {
	dir    string
	prefix string
	ext    string
}

// NewStore prepares the output directory. The file extension is taken
// from the template path so macro-enabled templates keep producing
// macro-enabled output.
func NewStore(dir, prefix, templatePath string) (*Store, error) {
	ext := filepath.Ext(templatePath)
	if ext == "" {
		ext = ".xlsx"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return &Store{dir: dir, prefix: prefix, ext: ext}, nil
}

// Save writes the workbook to a freshly named file.
func (s *Store) Save(f *excelize.File) (Artifact, error) {
	id := uuid.New()
	name := s.prefix + hex.EncodeToString(id[:]) + s.ext
	path := filepath.Join(s.dir, name)
	if err := f.SaveAs(path); err != nil {
		return Artifact{}, fmt.Errorf("save workbook %s: %w", name, err)
	}
	return Artifact{Name: name, Path: path}, nil
}

// ValidName reports whether name matches the shape Save produces.
// Anything else is rejected before touching the filesystem, so path
// traversal via the download route is impossible.
func (s *Store) ValidName(name string) bool {
	if !strings.HasPrefix(name, s.prefix) || !strings.HasSuffix(name, s.ext) {
		return false
	}
	token := strings.TrimSuffix(strings.TrimPrefix(name, s.prefix), s.ext)
	if len(token) != hexNameLen {
		return false
	}
	for _, r := range token {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}

// Open returns a reader for a previously saved artifact. Unknown or
// malformed names come back as fs.ErrNotExist.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	if !s.ValidName(name) {
		return nil, fmt.Errorf("artifact %s: %w", name, fs.ErrNotExist)
	}
	return os.Open(filepath.Join(s.dir, name))
}

// ContentType returns the MIME type matching the store's extension.
func (s *Store) ContentType() string {
	if s.ext == ".xlsm" {
		return "application/vnd.ms-excel.sheet.macroEnabled.12"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
