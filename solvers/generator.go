package solvers

import "github.com/reusee/robo/programs"

// Generator enumerates instruction sequences for one function slot,
// depth-first, one instruction at a time, over a single reused buffer.
// The alphabet order is fixed (opcode order, then condition order), so the
// enumeration order is reproducible.
type Generator struct {
	alphabet []programs.Instruction
	prune    bool
}

func NewGenerator(set programs.Set, prune bool) *Generator {
	g := &Generator{
		prune: prune,
	}
	for op := range programs.NumOpcodes {
		if !set.HasOp(programs.Opcode(op)) {
			continue
		}
		for cond := range programs.NumConds {
			if !set.HasCond(programs.Cond(cond)) {
				continue
			}
			g.alphabet = append(g.alphabet, programs.Instruction{
				Cond: programs.Cond(cond),
				Op:   programs.Opcode(op),
			})
		}
	}
	return g
}

// Alphabet is the per-position branching factor.
func (g *Generator) Alphabet() int {
	return len(g.alphabet)
}

// Each fills buf[:length] with every sequence of exactly length instructions
// that survives constraint propagation, calling yield for each. The yielded
// slice aliases buf: copy before keeping. Returns false when yield stopped
// the enumeration.
func (g *Generator) Each(buf []programs.Instruction, length int, yield func(programs.Function) bool) bool {
	return g.extend(buf, 0, length, Constraints{}, yield)
}

func (g *Generator) extend(buf []programs.Instruction, pos, length int, cons Constraints, yield func(programs.Function) bool) bool {
	if pos == length {
		return yield(programs.Function(buf[:length]))
	}
	for _, inst := range g.alphabet {
		next, ok := cons.Extend(inst)
		if !ok && g.prune {
			continue
		}
		if !g.prune {
			next = Constraints{}
		}
		buf[pos] = inst
		if !g.extend(buf, pos+1, length, next, yield) {
			return false
		}
	}
	return true
}

// distributions enumerates every way to split total instructions across the
// slots within their budgets, first slot greediest first. Fixed order, so
// the engine's candidate order is reproducible.
func distributions(budgets []int, total int, yield func(lens []int) bool) bool {
	lens := make([]int, len(budgets))
	return distribute(budgets, lens, 0, total, yield)
}

func distribute(budgets, lens []int, slot, remaining int, yield func([]int) bool) bool {
	if slot == len(budgets) {
		if remaining != 0 {
			return true
		}
		return yield(lens)
	}
	max := min(budgets[slot], remaining)
	for l := max; l >= 0; l-- {
		lens[slot] = l
		if !distribute(budgets, lens, slot+1, remaining-l, yield) {
			return false
		}
	}
	return true
}
