package robovm

type Outcome uint8

const (
	// OutcomeSolved: every star collected.
	OutcomeSolved Outcome = iota
	// OutcomeDied: the robot fell, the stack blew up, or a loop was detected.
	OutcomeDied
	// OutcomeExhausted: the execution stack drained before the last star.
	OutcomeExhausted
	// OutcomeStepLimit: the step cap fired first.
	OutcomeStepLimit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSolved:
		return "solved"
	case OutcomeDied:
		return "died"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeStepLimit:
		return "step limit"
	}
	return "invalid"
}

type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonFell: forward off the board or onto a void tile.
	ReasonFell
	// ReasonOverflow: execution stack grew past the ceiling.
	ReasonOverflow
	// ReasonLoop: a runtime state recurred, so the program cannot terminate.
	ReasonLoop
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return ""
	case ReasonFell:
		return "fell"
	case ReasonOverflow:
		return "stack overflow"
	case ReasonLoop:
		return "loop"
	}
	return "invalid"
}

// Result is the full outcome of one VM run. Steps counts every instruction
// popped from the execution stack, including guard mismatches.
type Result struct {
	Outcome Outcome
	Reason  Reason
	Steps   int
}
