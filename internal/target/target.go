package target

// Architecture is the closed set of instruction set architectures a
// triple's host component can name.
type Architecture uint8

const (
	X86 Architecture = iota
	X8664
	Wasm32
	Wasm64
	AArch64
	Riscv32
	Riscv64
	Mips
	PowerPC
	Sparc
	Z390
	M68k
	Spirv
)

// String returns the host token the architecture is parsed from.
func (a Architecture) String() string {
	switch a {
	case X86:
		return "x86"
	case X8664:
		return "x86_64"
	case Wasm32:
		return "wasm32"
	case Wasm64:
		return "wasm64"
	case AArch64:
		return "aarch64"
	case Riscv32:
		return "riscv32"
	case Riscv64:
		return "riscv64"
	case Mips:
		return "mips"
	case PowerPC:
		return "powerpc"
	case Sparc:
		return "sparc"
	case Z390:
		return "z390"
	case M68k:
		return "m68k"
	case Spirv:
		return "spirv"
	}
	return "unknown"
}

// PointerWidth returns the width of a data pointer in bits.
func (a Architecture) PointerWidth() uint8 {
	switch a {
	case X8664, Wasm64, AArch64, Riscv64, Z390:
		return 64
	default:
		return 32
	}
}

// OS is the closed set of operating systems a triple's system
// component can name. The zero value means no OS was recognized.
type OS uint8

const (
	NoOS OS = iota
	Windows
	Linux
	BSD
	Solaris
	Illumos
	Haiku
	Redox
	Theseus
)

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case Linux:
		return "linux"
	case BSD:
		return "bsd"
	case Solaris:
		return "solaris"
	case Illumos:
		return "illumos"
	case Haiku:
		return "haiku"
	case Redox:
		return "redox"
	case Theseus:
		return "theseus"
	}
	return "none"
}

// CallingConvention is the ABI contract derived from an
// (architecture, OS) pair.
type CallingConvention uint8

const (
	SysV64 CallingConvention = iota
	Win64
	Cdecl
	Stdcall
	AAPCS64
	WasmBasic
	RiscvILP32
	RiscvLP64
	MipsO32
	PPC32SysV
	SparcV8
	ZSeriesELF
	M68kSysV
	SpirFunc
)

func (c CallingConvention) String() string {
	switch c {
	case SysV64:
		return "sysv64"
	case Win64:
		return "win64"
	case Cdecl:
		return "cdecl"
	case Stdcall:
		return "stdcall"
	case AAPCS64:
		return "aapcs64"
	case WasmBasic:
		return "wasm-basic"
	case RiscvILP32:
		return "riscv-ilp32"
	case RiscvLP64:
		return "riscv-lp64"
	case MipsO32:
		return "mips-o32"
	case PPC32SysV:
		return "ppc32-sysv"
	case SparcV8:
		return "sparc-v8"
	case ZSeriesELF:
		return "zseries-elf"
	case M68kSysV:
		return "m68k-sysv"
	case SpirFunc:
		return "spir-func"
	}
	return "unknown"
}

// Descriptor is a resolved compilation target. It is immutable and
// shared read-only across every file compiled in one invocation.
type Descriptor struct {
	Arch       Architecture
	OS         OS
	Convention CallingConvention
}

// Triple renders the descriptor back into triple form with an
// `unknown` vendor.
func (d Descriptor) Triple() string {
	return d.Arch.String() + "-unknown-" + d.OS.String()
}
