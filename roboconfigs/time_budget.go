package roboconfigs

import (
	"time"

	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/configs"
	"github.com/reusee/robo/vars"
)

// TimeBudget bounds one solve run. Zero means no deadline.
type TimeBudget time.Duration

var timeBudgetFlag = cmds.Var[string]("-timeout")

func (Module) TimeBudget(
	loader configs.Loader,
) TimeBudget {
	str := vars.FirstNonZero(
		*timeBudgetFlag,
		configs.First[string](loader, "time_budget"),
	)
	if str == "" {
		return 0
	}
	d, err := time.ParseDuration(str)
	if err != nil {
		panic(err)
	}
	return TimeBudget(d)
}
