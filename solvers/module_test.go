package solvers

import (
	"context"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/robo/logs"
	"github.com/reusee/robo/modes"
	"github.com/reusee/robo/roboconfigs"
)

func TestNewEngine(t *testing.T) {
	dscope.New(
		new(Module),
		new(roboconfigs.Module),
		new(logs.Module),
		modes.ForTest(t),
	).Call(func(
		newEngine NewEngine,
	) {
		level := corridorLevel(t, []string{"nnN"}, []int{3}, "fwd", "left", "right")
		engine := newEngine(level, nil)
		if engine.Limits.MaxSteps != 4096 {
			t.Fatalf("got %d", engine.Limits.MaxSteps)
		}
		if !engine.Limits.DetectLoops {
			t.Fatal()
		}

		res, err := engine.Solve(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != StatusSolved {
			t.Fatalf("got %v", res.Status)
		}
	})
}
