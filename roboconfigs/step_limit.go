package roboconfigs

import (
	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/configs"
	"github.com/reusee/robo/robovm"
	"github.com/reusee/robo/vars"
)

// StepLimit caps how many instructions one candidate run may execute.
type StepLimit int

var stepLimitFlag = cmds.Var[int]("-step-limit")

func (Module) StepLimit(
	loader configs.Loader,
) StepLimit {
	return StepLimit(vars.FirstNonZero(
		*stepLimitFlag,
		configs.First[int](loader, "step_limit"),
		robovm.DefaultLimits().MaxSteps,
	))
}
