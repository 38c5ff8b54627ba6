package ir

// Op identifies one IR instruction.
type Op uint8

const (
	// Add adjusts the current cell by Arg (negative for decrements).
	Add Op = iota
	// Move shifts the data pointer by Arg cells (negative for left).
	Move
	// In reads one byte from the input stream into the current cell.
	In
	// Out writes the current cell to the output stream.
	Out
	// Set stores Arg into the current cell. Produced by the
	// clear-loop pass; never by lowering.
	Set
	// Transfer adds the current cell into the cell Arg away and
	// clears it. Produced by the transfer-loop pass.
	Transfer
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Move:
		return "move"
	case In:
		return "in"
	case Out:
		return "out"
	case Set:
		return "set"
	case Transfer:
		return "transfer"
	}
	return "unknown"
}

// HasArg reports whether the op carries an operand.
func (o Op) HasArg() bool {
	switch o {
	case Add, Move, Set, Transfer:
		return true
	}
	return false
}

// Node is one element of a block body: an Instr or a Loop.
type Node interface {
	node()
}

// Instr is a single straight-line instruction.
type Instr struct {
	Op  Op
	Arg int32
}

func (Instr) node() {}

// Loop runs its body while the current cell is non-zero.
type Loop struct {
	Body []Node
}

func (*Loop) node() {}

// Module is the lowered form of one source file.
type Module struct {
	Body []Node
}
