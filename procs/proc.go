package procs

// Proc is a resumable process: Run performs one bounded unit of work and
// returns the next Proc, or nil when finished. The solver's deepening loop
// is a Proc, one search tier per Run call, so a host can interleave its own
// work between tiers.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}
