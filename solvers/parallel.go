package solvers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/reusee/robo/programs"
	"github.com/reusee/robo/robovm"
	"github.com/reusee/robo/syncs"
)

// runTierParallel tests one tier's candidates across workers. Each worker
// owns its VM and board copy; the level is shared read-only. A shared
// atomic stop flag halts producers and workers once a solution lands.
// The first solution is still reproducible: workers report the candidate's
// generation index and the lowest index wins, which is exactly the
// candidate the sequential order would have found first.
func runTierParallel(s *session, total int, limits robovm.Limits) {
	sem := syncs.NewSemaphore(s.workers)
	var stop atomic.Bool

	var mu sync.Mutex
	bestIdx := -1
	bestSteps := 0
	var bestProg programs.Program
	var tally Stats
	tested := 0

	produced := 0
	distributions(s.level.Budgets, total, func(lens []int) bool {
		return s.eachProgram(lens, func(p programs.Program) bool {
			if stop.Load() {
				return false
			}

			idx := produced
			produced++
			candidate := p.Clone()

			sem.Acquire()
			go func() {
				defer sem.Release()
				res := robovm.Run(s.level.Board, s.level.Start, candidate, limits)
				mu.Lock()
				defer mu.Unlock()
				tested++
				tally.add(res)
				if res.Outcome == robovm.OutcomeSolved {
					if bestIdx < 0 || idx < bestIdx {
						bestIdx = idx
						bestSteps = res.Steps
						bestProg = candidate
					}
					stop.Store(true)
				}
			}()

			// bounded-cadence deadline and progress checks, from the
			// producer side
			if produced%s.checkEvery == 0 {
				if err := s.ctx.Err(); err != nil {
					if errors.Is(err, context.DeadlineExceeded) {
						s.stopped = StatusTimeout
					} else {
						s.stopped = StatusCancelled
					}
					return false
				}
				if s.progress != nil {
					mu.Lock()
					n := s.tested + tested
					mu.Unlock()
					s.progress(n, s.tier)
				}
			}
			return true
		})
	})

	// wait for in-flight candidates
	for range s.workers {
		sem.Acquire()
	}
	for range s.workers {
		sem.Release()
	}

	s.tested += tested
	s.stats.Solved += tally.Solved
	s.stats.Fell += tally.Fell
	s.stats.Overflowed += tally.Overflowed
	s.stats.Looped += tally.Looped
	s.stats.Exhausted += tally.Exhausted
	s.stats.StepLimited += tally.StepLimited

	if bestIdx >= 0 {
		s.best = &programs.Solution{
			Program:    bestProg,
			Steps:      bestSteps,
			Candidates: s.tested,
		}
		s.stopped = StatusSolved
	}
}
