package objfile

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Magic identifies an HF object file.
const Magic = "HFOB"

// FormatVersion is incremented whenever the Artifact layout changes.
const FormatVersion uint16 = 1

// Extension is the suffix object files are persisted under.
const Extension = ".o"

var (
	// ErrBadMagic marks bytes that are not an HF object file.
	ErrBadMagic = errors.New("not an HF object file")
	// ErrVersionMismatch marks an object file written by an
	// incompatible toolchain version.
	ErrVersionMismatch = errors.New("object format version mismatch")
)

// Artifact is the in-memory object produced by code generation: a
// small header describing how the code was compiled, plus the encoded
// code bytes. It is immutable once built.
type Artifact struct {
	Magic        string `msgpack:"magic"`
	Version      uint16 `msgpack:"version"`
	Module       string `msgpack:"module"`
	Arch         string `msgpack:"arch"`
	Convention   string `msgpack:"convention"`
	PointerWidth uint8  `msgpack:"pointer_width"`
	OptLevel     uint8  `msgpack:"opt_level"`
	Entry        string `msgpack:"entry"`
	Code         []byte `msgpack:"code"`
}

// Write serializes the artifact to the bytes persisted on disk.
func (a *Artifact) Write() ([]byte, error) {
	data, err := msgpack.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("encode object: %w", err)
	}
	return data, nil
}

// Read decodes and validates serialized artifact bytes.
func Read(data []byte) (*Artifact, error) {
	var a Artifact
	if err := msgpack.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	if a.Magic != Magic {
		return nil, ErrBadMagic
	}
	if a.Version != FormatVersion {
		return nil, fmt.Errorf("%w: file has %d, tool expects %d",
			ErrVersionMismatch, a.Version, FormatVersion)
	}
	return &a, nil
}
