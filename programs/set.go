package programs

import "strings"

// Set is the level's allowed-instruction set: a bitmask over opcodes and a
// bitmask over conditions. An instruction is legal when both its opcode and
// its condition are members.
type Set struct {
	Ops   uint16
	Conds uint8
}

func NewSet(ops []Opcode, conds []Cond) Set {
	var s Set
	for _, op := range ops {
		s.Ops |= 1 << op
	}
	s.Conds |= 1 << CondAny
	for _, c := range conds {
		s.Conds |= 1 << c
	}
	return s
}

// ParseSet reads instruction and condition names, e.g.
// ["fwd", "left", "right", "call0", "c1", "c2"].
func ParseSet(names []string) (Set, error) {
	var s Set
	s.Conds = 1 << CondAny
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if op, ok := ParseOp(name); ok {
			s.Ops |= 1 << op
			continue
		}
		if cond, ok := ParseCond(name); ok {
			s.Conds |= 1 << cond
			continue
		}
		return Set{}, &UnknownNameError{Name: name}
	}
	return s, nil
}

type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return "unknown instruction name: " + e.Name
}

func (s Set) HasOp(op Opcode) bool {
	return s.Ops&(1<<op) != 0
}

func (s Set) HasCond(c Cond) bool {
	return s.Conds&(1<<c) != 0
}

func (s Set) Allows(inst Instruction) bool {
	return s.HasOp(inst.Op) && s.HasCond(inst.Cond)
}

// Size counts the legal (condition, opcode) pairs: the per-position
// branching factor of the candidate space.
func (s Set) Size() int {
	ops := 0
	for op := range NumOpcodes {
		if s.HasOp(Opcode(op)) {
			ops++
		}
	}
	conds := 0
	for c := range NumConds {
		if s.HasCond(Cond(c)) {
			conds++
		}
	}
	return ops * conds
}

// Allowed validates a program against the set and the per-slot budgets.
func (s Set) Allowed(p Program, budgets []int) bool {
	if len(p) != len(budgets) {
		return false
	}
	for slot, fn := range p {
		if len(fn) > budgets[slot] {
			return false
		}
		for _, inst := range fn {
			if !s.Allows(inst) {
				return false
			}
		}
	}
	return true
}
