package source

import (
	"os"
	"path/filepath"
)

// Load reads a file from disk, strips a UTF-8 BOM, normalizes CRLF line
// endings, and builds the line table.
func Load(path string) (*File, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return &File{
		Path:    normalizePath(path),
		Content: content,
		Flags:   flags,
		lines:   SplitLines(string(content)),
	}, nil
}

// NewVirtual builds a file from in-memory content (tests, stdin). The
// content goes through the same BOM/CRLF normalization as Load.
func NewVirtual(name string, content []byte) *File {
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileVirtual
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return &File{
		Path:    name,
		Content: content,
		Flags:   flags,
		lines:   SplitLines(string(content)),
	}
}

// NumLines returns the line count, counting the way SplitLines does: a
// trailing newline terminates the last line instead of opening an
// empty one.
func (f *File) NumLines() int {
	return len(f.lines)
}

// Line returns the zero-based line idx without its terminator, or ""
// when idx is out of range.
func (f *File) Line(idx int) string {
	if idx < 0 || idx >= len(f.lines) {
		return ""
	}
	return f.lines[idx]
}

// Lines returns the file's lines. The slice is shared; callers must not
// modify it.
func (f *File) Lines() []string {
	return f.lines
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
