package roboconfigs

import (
	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/configs"
	"github.com/reusee/robo/vars"
)

// Workers is the number of parallel candidate evaluators. Zero or one
// keeps the search sequential.
type Workers int

var workersFlag = cmds.Var[int]("-workers")

func (Module) Workers(
	loader configs.Loader,
) Workers {
	return Workers(vars.FirstNonZero(
		*workersFlag,
		configs.First[int](loader, "workers"),
	))
}
