package robovm

import (
	"encoding/gob"
	"io"

	"github.com/reusee/robo/boards"
	"github.com/reusee/robo/programs"
)

type Limits struct {
	// MaxSteps caps popped instructions per run. Correctness backstop for
	// loops the detector misses.
	MaxSteps int
	// MaxStack caps the execution stack length; self-calls that only grow
	// the stack die here.
	MaxStack int
	// DetectLoops enables the recurring-state detector.
	DetectLoops bool
}

func DefaultLimits() Limits {
	return Limits{
		MaxSteps:    4096,
		MaxStack:    1024,
		DetectLoops: true,
	}
}

// VM executes one Program against one board. The board is a private copy;
// nothing is shared with other runs. The execution stack holds pending
// instructions with the next one at the end; a call prepends the callee body
// by pushing it reversed. There are no return frames.
type VM struct {
	Board   boards.Board
	X       int
	Y       int
	Dir     boards.Direction
	Stars   int
	Program programs.Program
	Exec    []programs.Instruction
	Steps   int
	Limits  Limits

	seen map[uint64]struct{}
}

func New(board boards.Board, start boards.Pose, prog programs.Program, limits Limits) *VM {
	v := &VM{
		Board:   board.Clone(),
		X:       start.X,
		Y:       start.Y,
		Dir:     start.Dir,
		Stars:   board.Stars(),
		Program: prog,
		Exec:    make([]programs.Instruction, 0, 64),
		Limits:  limits,
	}
	if len(prog) > 0 {
		v.prepend(prog[0])
	}
	if limits.DetectLoops {
		v.seen = make(map[uint64]struct{}, 256)
	}
	return v
}

// prepend puts fn at the front of the pending instructions. The stack keeps
// its front at the highest index, so the body goes on reversed.
func (v *VM) prepend(fn programs.Function) {
	for i := len(fn) - 1; i >= 0; i-- {
		v.Exec = append(v.Exec, fn[i])
	}
}

func (v *VM) pop() programs.Instruction {
	inst := v.Exec[len(v.Exec)-1]
	v.Exec = v.Exec[:len(v.Exec)-1]
	return inst
}

func (v *VM) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	return enc.Encode(v)
}

func (v *VM) Restore(r io.Reader) error {
	dec := gob.NewDecoder(r)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if v.Limits.DetectLoops {
		// the visited set is not part of the snapshot; start it over
		v.seen = make(map[uint64]struct{}, 256)
	}
	return nil
}
