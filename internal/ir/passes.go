package ir

// MaxOptLevel is the highest supported optimization level.
const MaxOptLevel = 3

// Optimize applies the passes selected by level, cumulatively:
// level 1 folds runs of Add/Move, level 2 adds clear-loop
// recognition, level 3 adds transfer-loop recognition. Level 0 returns
// the module unchanged.
func Optimize(m *Module, level uint8) *Module {
	if level == 0 {
		return m
	}
	body := foldRuns(m.Body)
	if level >= 2 {
		body = recognizeClears(body)
	}
	if level >= 3 {
		body = recognizeTransfers(body)
	}
	return &Module{Body: body}
}

// foldRuns merges adjacent Add and Move instructions and drops runs
// that cancel to zero. Loops are folded recursively.
func foldRuns(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		if loop, ok := n.(*Loop); ok {
			out = append(out, &Loop{Body: foldRuns(loop.Body)})
			continue
		}
		instr := n.(Instr)
		if instr.Op != Add && instr.Op != Move {
			out = append(out, instr)
			continue
		}
		if len(out) > 0 {
			if prev, ok := out[len(out)-1].(Instr); ok && prev.Op == instr.Op {
				merged := Instr{Op: instr.Op, Arg: prev.Arg + instr.Arg}
				if merged.Arg == 0 {
					out = out[:len(out)-1]
				} else {
					out[len(out)-1] = merged
				}
				continue
			}
		}
		out = append(out, instr)
	}
	return out
}

// recognizeClears rewrites loops whose folded body is a single odd
// Add into Set 0. `[-]` and `[+]` both terminate with the cell at
// zero for wrapping cells.
func recognizeClears(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		loop, ok := n.(*Loop)
		if !ok {
			out = append(out, n)
			continue
		}
		body := recognizeClears(loop.Body)
		if len(body) == 1 {
			if instr, ok := body[0].(Instr); ok && instr.Op == Add && odd(instr.Arg) {
				out = append(out, Instr{Op: Set, Arg: 0})
				continue
			}
		}
		out = append(out, &Loop{Body: body})
	}
	return out
}

// recognizeTransfers rewrites balanced single-destination transfer
// loops (`[->+<]`, `[>+<-]`, `[-<+>]`, ...) into a Transfer. The
// folded body must decrement the source once per iteration, add
// exactly one into a single destination, and return the pointer to
// where it started.
func recognizeTransfers(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		loop, ok := n.(*Loop)
		if !ok {
			out = append(out, n)
			continue
		}
		body := recognizeTransfers(loop.Body)
		if offset, ok := transferOffset(body); ok {
			out = append(out, Instr{Op: Transfer, Arg: offset})
			continue
		}
		out = append(out, &Loop{Body: body})
	}
	return out
}

// transferOffset matches a folded body of four instructions in either
// decrement-first or decrement-last order and returns the destination
// offset.
func transferOffset(body []Node) (int32, bool) {
	if len(body) != 4 {
		return 0, false
	}
	instrs := make([]Instr, 0, 4)
	for _, n := range body {
		instr, ok := n.(Instr)
		if !ok {
			return 0, false
		}
		instrs = append(instrs, instr)
	}

	// [->+<] shape: Add -1, Move d, Add 1, Move -d.
	if match := matchTransfer(instrs[0], instrs[1], instrs[2], instrs[3]); match != 0 {
		return match, true
	}
	// [>+<-] shape: Move d, Add 1, Move -d, Add -1.
	if instrs[0].Op == Move && instrs[3].Op == Add && instrs[3].Arg == -1 {
		if match := matchTransfer(instrs[3], instrs[0], instrs[1], instrs[2]); match != 0 {
			return match, true
		}
	}
	return 0, false
}

// matchTransfer checks the canonical order: dec, move out, inc,
// move back. Returns the destination offset or 0 on no match.
func matchTransfer(dec, out, inc, back Instr) int32 {
	if dec.Op != Add || dec.Arg != -1 {
		return 0
	}
	if out.Op != Move || out.Arg == 0 {
		return 0
	}
	if inc.Op != Add || inc.Arg != 1 {
		return 0
	}
	if back.Op != Move || back.Arg != -out.Arg {
		return 0
	}
	return out.Arg
}

func odd(n int32) bool {
	return n&1 != 0
}
