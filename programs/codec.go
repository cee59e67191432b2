package programs

import (
	"fmt"
	"strings"
)

var opNames = [NumOpcodes]string{
	OpNop:       "nop",
	OpForward:   "fwd",
	OpTurnLeft:  "left",
	OpTurnRight: "right",
	OpPaint1:    "paint1",
	OpPaint2:    "paint2",
	OpPaint3:    "paint3",
	OpCall0:     "call0",
	OpCall1:     "call1",
	OpCall2:     "call2",
}

var condNames = [NumConds]string{
	CondAny: "",
	Cond1:   "c1",
	Cond2:   "c2",
	Cond3:   "c3",
}

func (op Opcode) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("op%d", uint8(op))
}

func (c Cond) String() string {
	if c == CondAny {
		return "any"
	}
	if int(c) < len(condNames) {
		return condNames[c]
	}
	return fmt.Sprintf("cond%d", uint8(c))
}

func ParseOp(str string) (Opcode, bool) {
	for op, name := range opNames {
		if name == str {
			return Opcode(op), true
		}
	}
	switch str {
	case "forward":
		return OpForward, true
	case "turnleft":
		return OpTurnLeft, true
	case "turnright":
		return OpTurnRight, true
	}
	return 0, false
}

func ParseCond(str string) (Cond, bool) {
	switch str {
	case "", "any":
		return CondAny, true
	case "c1", "cond1":
		return Cond1, true
	case "c2", "cond2":
		return Cond2, true
	case "c3", "cond3":
		return Cond3, true
	}
	return 0, false
}

func (i Instruction) String() string {
	if i.Cond == CondAny {
		return i.Op.String()
	}
	return condNames[i.Cond] + ":" + i.Op.String()
}

// ParseInstruction reads "fwd" or "c2:fwd".
func ParseInstruction(str string) (Instruction, error) {
	condStr := ""
	opStr := str
	if idx := strings.IndexByte(str, ':'); idx >= 0 {
		condStr = str[:idx]
		opStr = str[idx+1:]
	}
	cond, ok := ParseCond(condStr)
	if !ok {
		return Instruction{}, fmt.Errorf("unknown condition: %s", condStr)
	}
	op, ok := ParseOp(opStr)
	if !ok {
		return Instruction{}, fmt.Errorf("unknown opcode: %s", opStr)
	}
	return Instruction{Cond: cond, Op: op}, nil
}

// Format renders a program as one line per function slot:
//
//	F0: fwd c1:left call0
//	F1: -
func Format(p Program) string {
	var sb strings.Builder
	for slot, fn := range p {
		if slot > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "F%d:", slot)
		if len(fn) == 0 {
			sb.WriteString(" -")
			continue
		}
		for _, inst := range fn {
			sb.WriteByte(' ')
			sb.WriteString(inst.String())
		}
	}
	return sb.String()
}

// Parse reads the Format notation back. Slot headers are optional when the
// input is a single function.
func Parse(str string) (Program, error) {
	var p Program
	for line := range strings.SplitSeq(str, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if idx := strings.IndexByte(line, ':'); idx >= 0 && len(line) > 1 && line[0] == 'F' {
			line = line[idx+1:]
		}
		var fn Function
		for field := range strings.FieldsSeq(line) {
			if field == "-" {
				continue
			}
			inst, err := ParseInstruction(field)
			if err != nil {
				return nil, err
			}
			fn = append(fn, inst)
		}
		p = append(p, fn)
	}
	if len(p) == 0 {
		return nil, fmt.Errorf("empty program")
	}
	return p, nil
}
