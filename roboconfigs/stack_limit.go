package roboconfigs

import (
	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/configs"
	"github.com/reusee/robo/robovm"
	"github.com/reusee/robo/vars"
)

// StackLimit caps the execution stack depth before a run dies of
// unbounded recursion.
type StackLimit int

var stackLimitFlag = cmds.Var[int]("-stack-limit")

func (Module) StackLimit(
	loader configs.Loader,
) StackLimit {
	return StackLimit(vars.FirstNonZero(
		*stackLimitFlag,
		configs.First[int](loader, "stack_limit"),
		robovm.DefaultLimits().MaxStack,
	))
}
