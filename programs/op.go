package programs

import "github.com/reusee/robo/boards"

type Opcode uint8

const (
	OpNop Opcode = iota
	OpForward
	OpTurnLeft
	OpTurnRight
	OpPaint1
	OpPaint2
	OpPaint3
	OpCall0
	OpCall1
	OpCall2

	NumOpcodes = int(OpCall2) + 1
)

// Cond is the optional tile-color guard on an instruction.
// CondAny means unconditional.
type Cond uint8

const (
	CondAny Cond = iota
	Cond1
	Cond2
	Cond3

	NumConds = int(Cond3) + 1
)

func (c Cond) Matches(color boards.Color) bool {
	if c == CondAny {
		return true
	}
	return boards.Color(c) == color
}

// CallTarget returns the function slot an opcode calls, or false.
func (op Opcode) CallTarget() (int, bool) {
	switch op {
	case OpCall0:
		return 0, true
	case OpCall1:
		return 1, true
	case OpCall2:
		return 2, true
	}
	return 0, false
}

// PaintColor returns the color an opcode paints, or false.
func (op Opcode) PaintColor() (boards.Color, bool) {
	switch op {
	case OpPaint1:
		return boards.Color1, true
	case OpPaint2:
		return boards.Color2, true
	case OpPaint3:
		return boards.Color3, true
	}
	return boards.ColorNone, false
}

type Instruction struct {
	Cond Cond
	Op   Opcode
}

func (i Instruction) IsCall() bool {
	_, ok := i.Op.CallTarget()
	return ok
}

type Function []Instruction

// Program is one instruction sequence per function slot.
// Immutable once handed to a VM; generators must copy before yielding.
type Program []Function

func (p Program) Len() int {
	n := 0
	for _, fn := range p {
		n += len(fn)
	}
	return n
}

func (p Program) Clone() Program {
	clone := make(Program, len(p))
	for i, fn := range p {
		clone[i] = make(Function, len(fn))
		copy(clone[i], fn)
	}
	return clone
}
