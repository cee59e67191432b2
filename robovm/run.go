package robovm

import (
	"github.com/reusee/robo/boards"
	"github.com/reusee/robo/programs"
)

// Run executes to completion. Deterministic: same board and program, same
// Result, same step count, every time.
func (v *VM) Run() Result {
	for {
		// termination checks, in priority order
		if v.Stars == 0 {
			return Result{Outcome: OutcomeSolved, Steps: v.Steps}
		}
		if len(v.Exec) == 0 {
			return Result{Outcome: OutcomeExhausted, Steps: v.Steps}
		}
		if len(v.Exec) > v.Limits.MaxStack {
			return Result{Outcome: OutcomeDied, Reason: ReasonOverflow, Steps: v.Steps}
		}
		if v.Steps >= v.Limits.MaxSteps {
			return Result{Outcome: OutcomeStepLimit, Steps: v.Steps}
		}

		if v.seen != nil {
			key := v.stateKey()
			if _, ok := v.seen[key]; ok {
				return Result{Outcome: OutcomeDied, Reason: ReasonLoop, Steps: v.Steps}
			}
			v.seen[key] = struct{}{}
		}

		inst := v.pop()
		v.Steps++

		// guard: on mismatch the instruction is discarded, nothing else
		if !inst.Cond.Matches(v.Board.At(v.X, v.Y).Color()) {
			continue
		}

		switch inst.Op {

		case programs.OpNop:

		case programs.OpForward:
			dx, dy := v.Dir.Delta()
			x, y := v.X+dx, v.Y+dy
			if !v.Board.InBounds(x, y) || v.Board.At(x, y).IsVoid() {
				return Result{Outcome: OutcomeDied, Reason: ReasonFell, Steps: v.Steps}
			}
			v.X, v.Y = x, y
			tile := v.Board.At(x, y)
			if tile.HasStar() {
				v.Board.Set(x, y, tile.WithoutStar())
				v.Stars--
			}

		case programs.OpTurnLeft:
			v.Dir = v.Dir.Left()

		case programs.OpTurnRight:
			v.Dir = v.Dir.Right()

		case programs.OpPaint1, programs.OpPaint2, programs.OpPaint3:
			color, _ := inst.Op.PaintColor()
			tile := v.Board.At(v.X, v.Y)
			v.Board.Set(v.X, v.Y, tile.WithColor(color))

		case programs.OpCall0, programs.OpCall1, programs.OpCall2:
			target, _ := inst.Op.CallTarget()
			// calling an empty or undefined slot is a no-op
			if target < len(v.Program) {
				v.prepend(v.Program[target])
			}
		}
	}
}

// Run is the pure form: build a VM, execute, discard.
func Run(board boards.Board, start boards.Pose, prog programs.Program, limits Limits) Result {
	return New(board, start, prog, limits).Run()
}
