package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/vtdesigner/pkg/document"
	"github.com/matzehuels/vtdesigner/pkg/errors"
)

// IsRawPool reports whether path names a raw object pool (".iop") rather
// than a project file.
func IsRawPool(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".iop")
}

// ReadFile loads a document from path. Raw pools are recognized by their
// extension; everything else is read as a project file.
func ReadFile(path string) (*document.Document, error) {
	if err := errors.ValidateFilePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if IsRawPool(path) {
		return document.FromIOP(data)
	}
	return document.LoadProject(data)
}

// WriteFile stores the committed state of d at path in the format implied
// by its extension. The file is replaced atomically.
func WriteFile(d *document.Document, path string) error {
	if err := errors.ValidateFilePath(path); err != nil {
		return err
	}
	var (
		data []byte
		err  error
	)
	if IsRawPool(path) {
		data, err = d.ExportIOP()
	} else {
		data, err = d.SaveProject()
	}
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
