package solvers

import "github.com/reusee/robo/programs"

// Constraints travels along a partial instruction sequence and rejects
// extensions that are provably dominated by a shorter equivalent. Pure
// pruning heuristics: nothing rejected here can be part of a minimal
// solution, since the shorter equivalent is tried at an earlier depth.
type Constraints struct {
	// Terminated: an unconditional call was emitted; nothing after it in
	// the same slot can ever run.
	Terminated bool
	// LastTurn and TurnRun track consecutive identical unconditional
	// turns, for the roundabout rule.
	LastTurn programs.Opcode
	TurnRun  int
}

// Extend returns the constraints after appending inst, or false when the
// extension is pruned.
func (c Constraints) Extend(inst programs.Instruction) (Constraints, bool) {
	if c.Terminated {
		return c, false
	}

	unconditional := inst.Cond == programs.CondAny

	// roundabout elimination: left,left,right is equivalent to a single
	// left; only unconditional turns count, a guarded turn may not fire
	if unconditional && c.TurnRun >= 2 {
		if (c.LastTurn == programs.OpTurnLeft && inst.Op == programs.OpTurnRight) ||
			(c.LastTurn == programs.OpTurnRight && inst.Op == programs.OpTurnLeft) {
			return c, false
		}
	}

	next := Constraints{}
	if unconditional {
		switch inst.Op {
		case programs.OpCall0, programs.OpCall1, programs.OpCall2:
			next.Terminated = true
		case programs.OpTurnLeft, programs.OpTurnRight:
			if c.LastTurn == inst.Op {
				next.LastTurn = inst.Op
				next.TurnRun = c.TurnRun + 1
			} else {
				next.LastTurn = inst.Op
				next.TurnRun = 1
			}
		}
	}
	return next, true
}
