package solvers

import (
	"container/heap"

	"github.com/reusee/robo/procs"
	"github.com/reusee/robo/programs"
)

// Strategy is the closed set of search strategies. All of them share the VM,
// the candidate generator and the session bookkeeping; only the traversal
// order differs.
type Strategy interface {
	search(s *session)
}

// ExhaustiveDeepening searches by increasing total instruction count across
// all slots combined. The first solution found is minimal in instruction
// count, since smaller totals are exhausted first.
type ExhaustiveDeepening struct {
	// Widen re-queues a tier with a larger step cap when too many of its
	// candidates died of step exhaustion. An optimization for levels that
	// need longer runs, not more instructions; off by default because it
	// trades away the strict depth ordering.
	Widen bool
}

const (
	// tier cost is total*widenWeight + stepCap
	widenWeight = 1024
	widenFactor = 4
	widenMaxCap = 1 << 20
)

type tier struct {
	total   int
	stepCap int
}

func (t tier) cost() int {
	return t.total*widenWeight + t.stepCap
}

type tierQueue []tier

func (q tierQueue) Len() int { return len(q) }

func (q tierQueue) Less(i, j int) bool { return q[i].cost() < q[j].cost() }

func (q tierQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *tierQueue) Push(x any) { *q = append(*q, x.(tier)) }

func (q *tierQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

// deepeningProc runs one tier per Run call: the engine state machine, one
// Searching(depth) transition at a time.
type deepeningProc struct {
	widen    bool
	maxTotal int
	baseCap  int
	queue    tierQueue
	queued   map[tier]bool
}

func (p *deepeningProc) push(t tier) {
	if p.queued[t] {
		return
	}
	p.queued[t] = true
	heap.Push(&p.queue, t)
}

func (p *deepeningProc) Run(s *session) (procs.Proc[*session], error) {
	if s.halted() || p.queue.Len() == 0 {
		return nil, nil
	}
	t := heap.Pop(&p.queue).(tier)

	testedBefore := s.tested
	limitedBefore := s.stats.StepLimited
	runTier(s, t.total, t.stepCap)
	if s.halted() {
		return nil, nil
	}

	if t.total < p.maxTotal {
		p.push(tier{total: t.total + 1, stepCap: p.baseCap})
	}
	if p.widen {
		tested := s.tested - testedBefore
		limited := s.stats.StepLimited - limitedBefore
		nextCap := t.stepCap * widenFactor
		if tested > 0 && limited*4 >= tested && nextCap <= widenMaxCap {
			p.push(tier{total: t.total, stepCap: nextCap})
		}
	}
	return p, nil
}

func (e ExhaustiveDeepening) search(s *session) {
	maxTotal := 0
	for _, budget := range s.level.Budgets {
		maxTotal += budget
	}
	p := &deepeningProc{
		widen:    e.Widen,
		maxTotal: maxTotal,
		baseCap:  s.limits.MaxSteps,
		queued:   make(map[tier]bool),
	}
	p.push(tier{total: 1, stepCap: p.baseCap})

	var proc procs.Proc[*session] = p
	for proc != nil {
		next, err := proc.Run(s)
		if err != nil {
			return
		}
		proc = next
	}
}

// runTier tests every program whose total instruction count is exactly
// total, in a fixed order: first slot greediest first, then generation
// order within each slot.
func runTier(s *session, total, stepCap int) {
	limits := s.limits
	limits.MaxSteps = stepCap
	s.setTier(total, stepCap)

	if s.workers > 1 {
		runTierParallel(s, total, limits)
		return
	}

	distributions(s.level.Budgets, total, func(lens []int) bool {
		return s.eachProgram(lens, func(p programs.Program) bool {
			_, _, cont := s.test(p, limits)
			return cont
		})
	})
}

// ConstraintGuidedDFS fills the slots depth-first to their full budgets,
// longest first, testing every complete assignment. Finds solutions on
// deep-but-narrow levels faster than deepening; no minimality guarantee.
type ConstraintGuidedDFS struct{}

func (ConstraintGuidedDFS) search(s *session) {
	limits := s.limits
	s.tier = "dfs"
	prog := make(programs.Program, len(s.level.Budgets))
	var fill func(slot int) bool
	fill = func(slot int) bool {
		if slot == len(s.level.Budgets) {
			_, _, cont := s.test(prog, limits)
			return cont
		}
		for l := s.level.Budgets[slot]; l >= 0; l-- {
			ok := s.gen.Each(s.bufs[slot], l, func(fn programs.Function) bool {
				prog[slot] = fn
				return fill(slot + 1)
			})
			if !ok {
				return false
			}
		}
		return true
	}
	fill(0)
}
