package solvers

import (
	"sort"

	"github.com/reusee/robo/programs"
)

// BeamSearch grows programs one instruction at a time, keeping only the
// Width most promising partial programs per generation, scored by stars
// still uncollected (fewer is better) and steps taken. Fast on levels with
// smooth progress gradients; can miss solutions that need a detour.
type BeamSearch struct {
	Width int
}

type beamNode struct {
	prog programs.Program
	cons []Constraints
	// stars left after running the partial program, then steps
	starsLeft int
	steps     int
}

func (b BeamSearch) search(s *session) {
	width := b.Width
	if width <= 0 {
		width = 64
	}
	limits := s.limits
	s.tier = "beam"

	budgets := s.level.Budgets
	root := &beamNode{
		prog:      make(programs.Program, len(budgets)),
		cons:      make([]Constraints, len(budgets)),
		starsLeft: s.level.Stars(),
	}
	beam := []*beamNode{root}

	maxTotal := 0
	for _, budget := range budgets {
		maxTotal += budget
	}

	for range maxTotal {
		var children []*beamNode
		for _, node := range beam {
			for slot := range budgets {
				if len(node.prog[slot]) >= budgets[slot] {
					continue
				}
				for _, inst := range s.gen.alphabet {
					cons, ok := node.cons[slot].Extend(inst)
					if !ok && s.gen.prune {
						continue
					}
					child := &beamNode{
						prog: node.prog.Clone(),
						cons: append([]Constraints(nil), node.cons...),
					}
					child.prog[slot] = append(child.prog[slot], inst)
					child.cons[slot] = cons

					res, starsLeft, cont := s.test(child.prog, limits)
					if !cont {
						return
					}
					child.starsLeft = starsLeft
					child.steps = res.Steps
					children = append(children, child)
				}
			}
		}
		if len(children) == 0 {
			return
		}
		sort.SliceStable(children, func(i, j int) bool {
			if children[i].starsLeft != children[j].starsLeft {
				return children[i].starsLeft < children[j].starsLeft
			}
			return children[i].steps < children[j].steps
		})
		if len(children) > width {
			children = children[:width]
		}
		beam = children
	}
}
