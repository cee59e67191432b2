package main

import (
	"context"
	"os"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/robo/cmds"
	"github.com/reusee/robo/levels"
	"github.com/reusee/robo/logs"
	"github.com/reusee/robo/modes"
	"github.com/reusee/robo/programs"
	"github.com/reusee/robo/roboconfigs"
	"github.com/reusee/robo/solvers"
)

var levelFiles = cmds.Collect[string]("-level")

var outFlag = cmds.Var[string]("-out")

func main() {
	ce(cmds.Execute(os.Args[1:]))
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newEngine solvers.NewEngine,
		timeBudget roboconfigs.TimeBudget,
	) {

		if len(*levelFiles) == 0 {
			cmds.PrintUsage()
			os.Exit(1)
		}

		for _, path := range *levelFiles {
			specs, err := levels.Load(path)
			ce(err)
			for _, level := range specs {
				solveOne(ctx, logger, newSpan, newEngine, timeBudget, level)
			}
		}

	})
}

func solveOne(
	ctx context.Context,
	logger logs.Logger,
	newSpan logs.NewSpan,
	newEngine solvers.NewEngine,
	timeBudget roboconfigs.TimeBudget,
	level *levels.Spec,
) {
	ctx, _ = newSpan(ctx, "")
	if timeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeBudget))
		defer cancel()
	}

	logger.InfoContext(ctx, "solve",
		"level", level.Name,
		"stars", level.Stars(),
		"budgets", level.Budgets,
	)

	engine := newEngine(level, func(tested int, tier string) {
		logger.DebugContext(ctx, "progress",
			"tested", tested,
			"tier", tier,
		)
	})

	started := time.Now()
	res, err := engine.Solve(ctx)
	if err != nil {
		ce(logs.WrapSpan(ctx, err))
	}

	switch res.Status {

	case solvers.StatusSolved:
		logger.InfoContext(ctx, "solved",
			"level", level.Name,
			"steps", res.Solution.Steps,
			"tested", res.Tested,
			"elapsed", time.Since(started),
		)
		pt("%s\n", programs.Format(res.Solution.Program))
		if *outFlag != "" {
			data, err := programs.MarshalSolution(res.Solution)
			ce(err)
			ce(os.WriteFile(*outFlag, data, 0644))
		}

	case solvers.StatusExhausted:
		logger.WarnContext(ctx, "no solution",
			"level", level.Name,
			"tested", res.Tested,
		)

	case solvers.StatusTimeout:
		logger.WarnContext(ctx, "time budget exceeded",
			"level", level.Name,
			"tested", res.Tested,
		)

	case solvers.StatusCancelled:
		logger.WarnContext(ctx, "cancelled",
			"level", level.Name,
		)

	}
}
