package solvers

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/robo/boards"
	"github.com/reusee/robo/levels"
	"github.com/reusee/robo/programs"
	"github.com/reusee/robo/robovm"
)

func corridorLevel(t *testing.T, rows []string, budgets []int, names ...string) *levels.Spec {
	t.Helper()
	board, ok := boards.ParseRows(rows)
	if !ok {
		t.Fatal("bad board fixture")
	}
	set, err := programs.ParseSet(names)
	if err != nil {
		t.Fatal(err)
	}
	return &levels.Spec{
		Name:    "test",
		Board:   board,
		Start:   boards.Pose{X: 0, Y: 0, Dir: boards.DirRight},
		Budgets: budgets,
		Allowed: set,
	}
}

func TestSolveMinimal(t *testing.T) {
	level := corridorLevel(t, []string{"nnN"}, []int{3}, "fwd", "left", "right")
	engine := &Engine{Level: level}
	res, err := engine.Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("got %v", res.Status)
	}
	if res.Solution == nil {
		t.Fatal()
	}
	// depth order guarantees the 2-instruction program, not the 3
	if got := programs.Format(res.Solution.Program); got != "F0: fwd fwd" {
		t.Fatalf("got %q", got)
	}
	if res.Solution.Steps != 2 {
		t.Fatalf("got %d steps", res.Solution.Steps)
	}
	if res.Tested < 1 || res.Solution.Candidates != res.Tested {
		t.Fatalf("got %d tested, %d candidates", res.Tested, res.Solution.Candidates)
	}
}

func TestSolveFindsCallLoop(t *testing.T) {
	level := corridorLevel(t, []string{"nnnnnN"}, []int{2}, "fwd", "left", "right", "call0")
	engine := &Engine{Level: level}
	res, err := engine.Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("got %v", res.Status)
	}
	if got := programs.Format(res.Solution.Program); got != "F0: fwd call0" {
		t.Fatalf("got %q", got)
	}
	if res.Solution.Steps != 9 {
		t.Fatalf("got %d steps", res.Solution.Steps)
	}
}

func TestSolveDeterministic(t *testing.T) {
	level := corridorLevel(t, []string{
		"nnnn",
		"...N",
	}, []int{3}, "fwd", "left", "right")
	first, err := (&Engine{Level: level}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		again, err := (&Engine{Level: level}).Solve(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(first, again); diff != "" {
			t.Fatalf("non-deterministic search:\n%s", diff)
		}
	}
}

// disabling pruning must never change the answer, only the work done
func TestPruningSoundness(t *testing.T) {
	level := corridorLevel(t, []string{"nnnnnN"}, []int{2}, "fwd", "left", "right", "call0")

	pruned, err := (&Engine{Level: level}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	unpruned, err := (&Engine{Level: level, NoPrune: true}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(pruned.Solution.Program, unpruned.Solution.Program); diff != "" {
		t.Fatalf("pruning changed the answer:\n%s", diff)
	}
	if pruned.Tested > unpruned.Tested {
		t.Fatalf("pruning tested more: %d > %d", pruned.Tested, unpruned.Tested)
	}
}

func TestSolveExhausted(t *testing.T) {
	// the star is across a void gap no program can cross
	level := corridorLevel(t, []string{"n.N"}, []int{2}, "fwd", "left", "right")
	res, err := (&Engine{Level: level}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusExhausted {
		t.Fatalf("got %v", res.Status)
	}
	if res.Solution != nil {
		t.Fatal()
	}
	if res.Tested == 0 {
		t.Fatal()
	}
	if res.Stats.Fell == 0 {
		t.Fatal("some candidates should have fallen into the gap")
	}
}

func TestSolveTimeout(t *testing.T) {
	level := corridorLevel(t, []string{"n.N"}, []int{5}, "fwd", "left", "right", "call0")
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	res, err := (&Engine{Level: level, CheckEvery: 1}).Solve(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusTimeout {
		t.Fatalf("got %v", res.Status)
	}
}

func TestSolveCancelled(t *testing.T) {
	level := corridorLevel(t, []string{"n.N"}, []int{5}, "fwd", "left", "right", "call0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := (&Engine{Level: level, CheckEvery: 1}).Solve(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusCancelled {
		t.Fatalf("got %v", res.Status)
	}
}

func TestSolveInvalidLevel(t *testing.T) {
	level := corridorLevel(t, []string{"nnN"}, nil, "fwd")
	if _, err := (&Engine{Level: level}).Solve(context.Background()); err == nil {
		t.Fatal("should error before searching")
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	level := corridorLevel(t, []string{"nnnnnN"}, []int{2}, "fwd", "left", "right", "call0")

	seq, err := (&Engine{Level: level}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	par, err := (&Engine{Level: level, Workers: 4}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if par.Status != StatusSolved {
		t.Fatalf("got %v", par.Status)
	}
	if diff := cmp.Diff(seq.Solution.Program, par.Solution.Program); diff != "" {
		t.Fatalf("parallel found a different first solution:\n%s", diff)
	}
	if seq.Solution.Steps != par.Solution.Steps {
		t.Fatal()
	}
}

func TestAdaptiveWidening(t *testing.T) {
	// ten-tile corridor: F0=[fwd,call0] needs 17 steps, over the base cap
	level := corridorLevel(t, []string{"nnnnnnnnnN"}, []int{2}, "fwd", "left", "right", "call0")
	engine := &Engine{
		Level:    level,
		Limits:   robovm.Limits{MaxSteps: 8, MaxStack: 64, DetectLoops: true},
		Strategy: ExhaustiveDeepening{Widen: true},
	}
	res, err := engine.Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("got %v", res.Status)
	}
	if got := programs.Format(res.Solution.Program); got != "F0: fwd call0" {
		t.Fatalf("got %q", got)
	}
	if res.Stats.StepLimited == 0 {
		t.Fatal("the base cap should have truncated some runs")
	}

	// without widening, the same limits exhaust unsolved
	engine.Strategy = ExhaustiveDeepening{}
	res, err = engine.Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusExhausted {
		t.Fatalf("got %v", res.Status)
	}
}

func TestBeamSearch(t *testing.T) {
	level := corridorLevel(t, []string{"nnnN"}, []int{4}, "fwd", "left", "right")
	res, err := (&Engine{Level: level, Strategy: BeamSearch{Width: 16}}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("got %v", res.Status)
	}
	if got := programs.Format(res.Solution.Program); got != "F0: fwd fwd fwd" {
		t.Fatalf("got %q", got)
	}
}

func TestConstraintGuidedDFS(t *testing.T) {
	level := corridorLevel(t, []string{"nnN"}, []int{3}, "fwd", "left", "right")
	res, err := (&Engine{Level: level, Strategy: ConstraintGuidedDFS{}}).Solve(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != StatusSolved {
		t.Fatalf("got %v", res.Status)
	}
	// DFS tries full-budget programs first; any solution is acceptable,
	// minimality is not guaranteed
	vmRes := robovm.Run(level.Board, level.Start, res.Solution.Program, robovm.DefaultLimits())
	if vmRes.Outcome != robovm.OutcomeSolved {
		t.Fatalf("got %v", vmRes.Outcome)
	}
}

func TestProgressCallback(t *testing.T) {
	level := corridorLevel(t, []string{"nnnnnN"}, []int{2}, "fwd", "left", "right", "call0")
	calls := 0
	engine := &Engine{
		Level:      level,
		CheckEvery: 2,
		Progress: func(tested int, tier string) {
			calls++
			if tested == 0 || tier == "" {
				t.Fatal("empty progress report")
			}
		},
	}
	if _, err := engine.Solve(context.Background()); err != nil {
		t.Fatal(err)
	}
	if calls == 0 {
		t.Fatal("progress never reported")
	}
}
