package solvers

import (
	"context"

	"github.com/reusee/robo/levels"
	"github.com/reusee/robo/programs"
	"github.com/reusee/robo/robovm"
)

// Engine drives one search: validates the level, then hands the session to
// the configured strategy. Zero value fields get defaults; the zero
// strategy is exhaustive deepening.
type Engine struct {
	Level  *levels.Spec
	Limits robovm.Limits
	// Strategy defaults to ExhaustiveDeepening{}.
	Strategy Strategy
	// NoPrune disables constraint propagation in the generator. Same
	// answers, found slower; kept switchable for A/B verification.
	NoPrune bool
	// Workers > 1 evaluates candidates in parallel within a tier.
	Workers int
	// CheckEvery bounds the cadence of deadline/cancellation checks and
	// progress callbacks, in candidates.
	CheckEvery int
	Progress   Progress
}

const defaultCheckEvery = 256

// Solve runs the search until a solution, exhaustion of the whole space, or
// the context's deadline/cancellation. A malformed level is an error, not a
// search failure.
func (e *Engine) Solve(ctx context.Context) (Result, error) {
	if err := e.Level.Validate(); err != nil {
		return Result{}, err
	}

	limits := e.Limits
	if limits == (robovm.Limits{}) {
		limits = robovm.DefaultLimits()
	} else {
		def := robovm.DefaultLimits()
		if limits.MaxSteps <= 0 {
			limits.MaxSteps = def.MaxSteps
		}
		if limits.MaxStack <= 0 {
			limits.MaxStack = def.MaxStack
		}
	}

	checkEvery := e.CheckEvery
	if checkEvery <= 0 {
		checkEvery = defaultCheckEvery
	}

	workers := e.Workers
	if workers <= 0 {
		workers = 1
	}

	strategy := e.Strategy
	if strategy == nil {
		strategy = ExhaustiveDeepening{}
	}

	bufs := make([][]programs.Instruction, len(e.Level.Budgets))
	for slot, budget := range e.Level.Budgets {
		bufs[slot] = make([]programs.Instruction, budget)
	}

	s := &session{
		ctx:        ctx,
		level:      e.Level,
		limits:     limits,
		gen:        NewGenerator(e.Level.Allowed, !e.NoPrune),
		checkEvery: checkEvery,
		workers:    workers,
		progress:   e.Progress,
		bufs:       bufs,
	}

	strategy.search(s)
	return s.result(), nil
}
