package target

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"strings"
)

// Resolution failure kinds. Callers distinguish bad shape from bad
// architecture from absent OS with errors.Is.
var (
	// ErrMalformedTriple marks input that does not split into
	// exactly three dash-separated components.
	ErrMalformedTriple = errors.New("malformed target triple")
	// ErrUnknownArchitecture marks a host component outside the
	// closed architecture table.
	ErrUnknownArchitecture = errors.New("unknown architecture")
	// ErrNoTargetOS marks a system component no OS is known for.
	// There is no calling-convention fallback without an OS; a
	// future target configuration mechanism may fill this gap.
	ErrNoTargetOS = errors.New("no target OS")
	// ErrUnsupportedHost marks a native platform outside the closed
	// tables.
	ErrUnsupportedHost = errors.New("unsupported host platform")
)

// ResolutionError wraps one of the sentinel kinds together with the
// input that failed to resolve.
type ResolutionError struct {
	Input string
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve target %q: %v", e.Input, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

func failResolve(input string, kind error) (Descriptor, error) {
	return Descriptor{}, &ResolutionError{Input: input, Err: kind}
}

var archTable = map[string]Architecture{
	"x86":     X86,
	"x86_64":  X8664,
	"wasm32":  Wasm32,
	"wasm64":  Wasm64,
	"aarch64": AArch64,
	"riscv32": Riscv32,
	"riscv64": Riscv64,
	"mips":    Mips,
	"powerpc": PowerPC,
	"sparc":   Sparc,
	"z390":    Z390,
	"m68k":    M68k,
	"spirv":   Spirv,
}

var osTable = map[string]OS{
	"windows": Windows,
	"linux":   Linux,
	"bsd":     BSD,
	"solaris": Solaris,
	"illumos": Illumos,
	"haiku":   Haiku,
	"redox":   Redox,
	"theseus": Theseus,
}

// Parse resolves a `<host>-<vendor>-<system>` triple into a
// Descriptor. The vendor component is parsed but ignored. Matching is
// case-sensitive and exact; the tables are closed.
func Parse(triple string) (Descriptor, error) {
	parts := strings.Split(triple, "-")
	if len(parts) != 3 {
		return failResolve(triple, ErrMalformedTriple)
	}

	arch, ok := archTable[parts[0]]
	if !ok {
		return failResolve(triple, ErrUnknownArchitecture)
	}

	// parts[1] is the vendor; nothing downstream depends on it.

	os, ok := osTable[parts[2]]
	if !ok {
		// An unrecognized system is not an error by itself, but
		// without an OS there is no calling convention to derive.
		return failResolve(triple, ErrNoTargetOS)
	}

	return Descriptor{
		Arch:       arch,
		OS:         os,
		Convention: conventionFor(arch, os),
	}, nil
}

// conventionFor is total over the closed tables. Only the x86 family
// is OS-sensitive.
func conventionFor(arch Architecture, os OS) CallingConvention {
	switch arch {
	case X8664:
		if os == Windows {
			return Win64
		}
		return SysV64
	case X86:
		if os == Windows {
			return Stdcall
		}
		return Cdecl
	case AArch64:
		return AAPCS64
	case Wasm32, Wasm64:
		return WasmBasic
	case Riscv32:
		return RiscvILP32
	case Riscv64:
		return RiscvLP64
	case Mips:
		return MipsO32
	case PowerPC:
		return PPC32SysV
	case Sparc:
		return SparcV8
	case Z390:
		return ZSeriesELF
	case M68k:
		return M68kSysV
	case Spirv:
		return SpirFunc
	}
	return SysV64
}

var goarchTable = map[string]Architecture{
	"386":     X86,
	"amd64":   X8664,
	"arm64":   AArch64,
	"riscv64": Riscv64,
	"mips":    Mips,
	"s390x":   Z390,
	"wasm":    Wasm32,
}

var goosTable = map[string]OS{
	"windows":   Windows,
	"linux":     Linux,
	"freebsd":   BSD,
	"netbsd":    BSD,
	"openbsd":   BSD,
	"dragonfly": BSD,
	"solaris":   Solaris,
	"illumos":   Illumos,
}

// Native resolves the descriptor of the machine running the tool,
// used when no triple is supplied. The tables stay closed: a host
// outside them is ErrUnsupportedHost, not a new entry.
func Native() (Descriptor, error) {
	return nativeFor(runtime.GOARCH, runtime.GOOS)
}

func nativeFor(goarch, goos string) (Descriptor, error) {
	arch, ok := goarchTable[goarch]
	if !ok {
		return failResolve(goarch+"/"+goos, ErrUnsupportedHost)
	}
	os, ok := goosTable[goos]
	if !ok {
		return failResolve(goarch+"/"+goos, ErrUnsupportedHost)
	}
	return Descriptor{
		Arch:       arch,
		OS:         os,
		Convention: conventionFor(arch, os),
	}, nil
}

// Architectures returns the supported architectures sorted by their
// host token.
func Architectures() []Architecture {
	out := make([]Architecture, 0, len(archTable))
	for _, a := range archTable {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Systems returns the supported operating systems sorted by name.
func Systems() []OS {
	out := make([]OS, 0, len(osTable))
	for _, o := range osTable {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
