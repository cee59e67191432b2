package levels

import (
	"fmt"

	"github.com/reusee/robo/boards"
	"github.com/reusee/robo/programs"
)

// Spec is the immutable input to the solver: the initial board, the robot's
// starting pose, the per-slot instruction budgets and the allowed
// instruction set. The solver never mutates it; each VM run works on a
// private board copy.
type Spec struct {
	Name    string
	Board   boards.Board
	Start   boards.Pose
	Budgets []int
	Allowed programs.Set
}

func (s *Spec) Stars() int {
	return s.Board.Stars()
}

// Validate checks structural well-formedness before any search begins.
// The core does not heal bad input.
func (s *Spec) Validate() error {
	if s.Board.Width <= 0 || s.Board.Height <= 0 {
		return fmt.Errorf("level %s: empty board", s.Name)
	}
	if len(s.Board.Cells) != s.Board.Width*s.Board.Height {
		return fmt.Errorf("level %s: board cells do not match dimensions", s.Name)
	}
	if len(s.Budgets) < 1 || len(s.Budgets) > 3 {
		return fmt.Errorf("level %s: want 1 to 3 function slots, got %d", s.Name, len(s.Budgets))
	}
	for slot, budget := range s.Budgets {
		if budget < 0 {
			return fmt.Errorf("level %s: negative budget for F%d", s.Name, slot)
		}
	}
	if !s.Board.InBounds(s.Start.X, s.Start.Y) {
		return fmt.Errorf("level %s: start position out of bounds", s.Name)
	}
	if s.Board.At(s.Start.X, s.Start.Y).IsVoid() {
		return fmt.Errorf("level %s: start position on a void tile", s.Name)
	}
	if s.Start.Dir > boards.DirLeft {
		return fmt.Errorf("level %s: invalid start direction", s.Name)
	}
	if s.Board.Stars() == 0 {
		return fmt.Errorf("level %s: no stars on the board", s.Name)
	}
	if s.Allowed.Ops == 0 {
		return fmt.Errorf("level %s: empty instruction set", s.Name)
	}
	for y := range s.Board.Height {
		for x := range s.Board.Width {
			t := s.Board.At(x, y)
			if t.IsVoid() && t.HasStar() {
				return fmt.Errorf("level %s: star on void tile at %d,%d", s.Name, x, y)
			}
		}
	}
	return nil
}
