package roboconfigs

import (
	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/configs"
	"github.com/reusee/robo/vars"
)

// CheckEvery is how many candidates the search tests between context
// checks and progress reports.
type CheckEvery int

var checkEveryFlag = cmds.Var[int]("-check-every")

func (Module) CheckEvery(
	loader configs.Loader,
) CheckEvery {
	return CheckEvery(vars.FirstNonZero(
		*checkEveryFlag,
		configs.First[int](loader, "check_every"),
		256,
	))
}
