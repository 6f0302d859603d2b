// Package camp appends stashed items to a plain-text camp file.
package camp

import (
	"fmt"
	"io"
	"os"

	"github.com/kasuganosora/packmule/equipment"
)

// File is an append-only camp log. It is created on first write and never truncated.
type File struct {
	path string
}

// New returns a camp file writer for path.
func New(path string) *File {
	return &File{path: path}
}

// Path is the file being written.
func (f *File) Path() string { return f.path }

// Stash appends one item block to the camp file.
func (f *File) Stash(rec equipment.Record) error {
	out, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open camp file: %w", err)
	}
	defer out.Close()

	if err := WriteEntry(out, rec); err != nil {
		return fmt.Errorf("write camp file: %w", err)
	}
	return out.Close()
}

// WriteEntry formats one camp block.
func WriteEntry(w io.Writer, rec equipment.Record) error {
	_, err := fmt.Fprintf(w, "Item: %s\nDescription: %s\nWeight: %.2f\n", rec.Name, rec.Description, rec.Weight)
	return err
}
