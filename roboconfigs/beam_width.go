package roboconfigs

import (
	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/configs"
	"github.com/reusee/robo/vars"
)

// BeamWidth is how many partial programs the beam strategy keeps per
// generation.
type BeamWidth int

var beamWidthFlag = cmds.Var[int]("-beam-width")

func (Module) BeamWidth(
	loader configs.Loader,
) BeamWidth {
	return BeamWidth(vars.FirstNonZero(
		*beamWidthFlag,
		configs.First[int](loader, "beam_width"),
		64,
	))
}
