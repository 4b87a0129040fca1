// Package exportfile writes downloaded candidate exports to disk.
package exportfile

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ExportStore inside one directory.
type Store struct {
	dir string
}

var _ ports.ExportStore = (*Store)(nil)

// NewStore creates a Store writing into dir.
func NewStore(dir string) *Store {
	return &Store{dir: filepath.Clean(dir)}
}

// Save writes the file atomically and returns its path. Only the base name of
// the file name is used, so a server cannot direct the write elsewhere.
func (s *Store) Save(file *domain.ExportFile) (string, error) {
	name := filepath.Base(strings.ReplaceAll(file.Filename, "\\", "/"))
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", zerr.With(zerr.New("invalid export file name"), "filename", file.Filename)
	}

	path := filepath.Join(s.dir, name)
	if err := atomicWriteFile(path, file.Data); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write export"), "path", path)
	}
	return path, nil
}

// atomicWriteFile writes data to a temp file in the target directory and
// renames it into place.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
