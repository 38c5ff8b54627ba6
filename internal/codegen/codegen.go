package codegen

import (
	"fortio.org/safecast"

	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/ir"
	"github.com/HF-Foundation/HF-CLI/internal/objfile"
	"github.com/HF-Foundation/HF-CLI/internal/target"
)

// Options configures a Generator.
type Options struct {
	// OptLevel selects the IR passes to run, 0 through
	// ir.MaxOptLevel. The caller validates the range.
	OptLevel uint8
}

// Generator lowers IR modules to bytecode objects for one resolved
// target. It is immutable after construction and reused for every
// file of an invocation.
type Generator struct {
	target target.Descriptor
	opts   Options
}

// New builds a generator for the given target and options.
func New(tgt target.Descriptor, opts Options) *Generator {
	return &Generator{target: tgt, opts: opts}
}

// CompileToObject optimizes and encodes a module into an object
// artifact named after moduleName.
func (g *Generator) CompileToObject(m *ir.Module, moduleName string) (*objfile.Artifact, *diag.CodegenError) {
	if err := validateModuleName(moduleName); err != nil {
		return nil, err
	}

	optimized := ir.Optimize(m, g.opts.OptLevel)
	code, err := encode(optimized)
	if err != nil {
		return nil, err
	}
	if _, convErr := safecast.Conv[uint32](len(code)); convErr != nil {
		return nil, diag.Codegenf("program too large: %d code bytes exceed the object format", len(code))
	}

	return &objfile.Artifact{
		Magic:        objfile.Magic,
		Version:      objfile.FormatVersion,
		Module:       moduleName,
		Arch:         g.target.Arch.String(),
		Convention:   g.target.Convention.String(),
		PointerWidth: g.target.Arch.PointerWidth(),
		OptLevel:     g.opts.OptLevel,
		Entry:        decorateSymbol(moduleName, g.target.Convention),
		Code:         code,
	}, nil
}

func validateModuleName(name string) *diag.CodegenError {
	if name == "" {
		return diag.Codegenf("module name is empty")
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return diag.Codegenf("module name %q is invalid", name)
		}
	}
	return nil
}

// decorateSymbol applies the calling convention's name mangling to
// the entry symbol: Cdecl and Stdcall prefix an underscore, Stdcall
// adds the argument-byte suffix, everything else is undecorated.
func decorateSymbol(name string, convention target.CallingConvention) string {
	switch convention {
	case target.Cdecl:
		return "_" + name
	case target.Stdcall:
		return "_" + name + "@0"
	default:
		return name
	}
}
