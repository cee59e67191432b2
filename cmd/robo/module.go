package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/robo/logs"
	"github.com/reusee/robo/roboconfigs"
	"github.com/reusee/robo/solvers"
)

type Module struct {
	dscope.Module
	Solvers solvers.Module
	Configs roboconfigs.Module
	Logs    logs.Module
}
