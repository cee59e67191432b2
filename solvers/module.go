package solvers

import (
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/levels"
	"github.com/reusee/robo/roboconfigs"
	"github.com/reusee/robo/robovm"
)

type Module struct {
	dscope.Module
}

var strategyFlag = cmds.Var[string]("-strategy")

var noPruneFlag = cmds.Switch("-no-prune")

// NewEngine builds a solve engine for one level, configured from flags
// and config files.
type NewEngine func(level *levels.Spec, progress Progress) *Engine

func (Module) NewEngine(
	stepLimit roboconfigs.StepLimit,
	stackLimit roboconfigs.StackLimit,
	workers roboconfigs.Workers,
	beamWidth roboconfigs.BeamWidth,
	checkEvery roboconfigs.CheckEvery,
) NewEngine {
	return func(level *levels.Spec, progress Progress) *Engine {

		var strategy Strategy
		switch *strategyFlag {
		case "", "deepening":
			strategy = ExhaustiveDeepening{}
		case "widen":
			strategy = ExhaustiveDeepening{Widen: true}
		case "beam":
			strategy = BeamSearch{Width: int(beamWidth)}
		case "dfs":
			strategy = ConstraintGuidedDFS{}
		default:
			panic(fmt.Errorf("unknown strategy: %s", *strategyFlag))
		}

		return &Engine{
			Level: level,
			Limits: robovm.Limits{
				MaxSteps:    int(stepLimit),
				MaxStack:    int(stackLimit),
				DetectLoops: true,
			},
			Strategy:   strategy,
			NoPrune:    *noPruneFlag,
			Workers:    int(workers),
			CheckEvery: int(checkEvery),
			Progress:   progress,
		}
	}
}
