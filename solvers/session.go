package solvers

import (
	"context"
	"errors"
	"fmt"

	"github.com/reusee/robo/levels"
	"github.com/reusee/robo/programs"
	"github.com/reusee/robo/robovm"
)

type Status uint8

const (
	StatusSolved Status = iota + 1
	StatusExhausted
	StatusTimeout
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusExhausted:
		return "exhausted"
	case StatusTimeout:
		return "timeout"
	case StatusCancelled:
		return "cancelled"
	}
	return "invalid"
}

// Stats tallies candidate run outcomes. The step-limit share drives the
// adaptive step-cap widening.
type Stats struct {
	Solved      int
	Fell        int
	Overflowed  int
	Looped      int
	Exhausted   int
	StepLimited int
}

func (s *Stats) add(res robovm.Result) {
	switch res.Outcome {
	case robovm.OutcomeSolved:
		s.Solved++
	case robovm.OutcomeDied:
		switch res.Reason {
		case robovm.ReasonFell:
			s.Fell++
		case robovm.ReasonOverflow:
			s.Overflowed++
		case robovm.ReasonLoop:
			s.Looped++
		}
	case robovm.OutcomeExhausted:
		s.Exhausted++
	case robovm.OutcomeStepLimit:
		s.StepLimited++
	}
}

// Progress is invoked at a bounded cadence with the number of candidates
// tested so far and a description of the current search tier. It must not
// block for long; the engine calls it inline.
type Progress func(tested int, tier string)

// Result is the engine-level outcome. Solution is set when a solve was
// found before the cutoff, whatever the final status.
type Result struct {
	Status   Status
	Solution *programs.Solution
	Tested   int
	Stats    Stats
}

// session carries the per-solve state shared by strategies: the candidate
// counter, outcome tallies, the best solution, and the bounded-cadence
// cancellation check.
type session struct {
	ctx        context.Context
	level      *levels.Spec
	limits     robovm.Limits
	gen        *Generator
	checkEvery int
	workers    int
	progress   Progress
	tier       string

	// one reusable buffer per slot; generation never allocates per candidate
	bufs [][]programs.Instruction

	tested  int
	stats   Stats
	stopped Status
	best    *programs.Solution
}

// eachProgram assembles, for one length distribution, every candidate
// program over the session's slot buffers. The yielded program aliases the
// buffers; clone before keeping or sharing.
func (s *session) eachProgram(lens []int, yield func(programs.Program) bool) bool {
	prog := make(programs.Program, len(lens))
	var fill func(slot int) bool
	fill = func(slot int) bool {
		if slot == len(lens) {
			return yield(prog)
		}
		return s.gen.Each(s.bufs[slot], lens[slot], func(fn programs.Function) bool {
			prog[slot] = fn
			return fill(slot + 1)
		})
	}
	return fill(0)
}

// test runs one candidate. Returns the VM result, the stars still on the
// board, and false when the search must halt (solved, cancelled, or
// deadline hit).
func (s *session) test(p programs.Program, limits robovm.Limits) (robovm.Result, int, bool) {
	vm := robovm.New(s.level.Board, s.level.Start, p, limits)
	res := vm.Run()
	s.tested++
	s.stats.add(res)

	if res.Outcome == robovm.OutcomeSolved {
		s.best = &programs.Solution{
			Program:    p.Clone(),
			Steps:      res.Steps,
			Candidates: s.tested,
		}
		s.stopped = StatusSolved
		return res, vm.Stars, false
	}

	// cooperative cancellation, checked at a bounded interval
	if s.tested%s.checkEvery == 0 {
		if err := s.ctx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				s.stopped = StatusTimeout
			} else {
				s.stopped = StatusCancelled
			}
			return res, vm.Stars, false
		}
		if s.progress != nil {
			s.progress(s.tested, s.tier)
		}
	}

	return res, vm.Stars, true
}

func (s *session) halted() bool {
	return s.stopped != 0
}

func (s *session) setTier(total, stepCap int) {
	s.tier = fmt.Sprintf("depth=%d cap=%d", total, stepCap)
}

func (s *session) result() Result {
	status := s.stopped
	if status == 0 {
		status = StatusExhausted
	}
	return Result{
		Status:   status,
		Solution: s.best,
		Tested:   s.tested,
		Stats:    s.stats,
	}
}
