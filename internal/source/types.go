package source

type (
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File holds the normalized content of a single source file.
type File struct {
	Path    string
	Content []byte
	Flags   FileFlags
	lines   []string
}
