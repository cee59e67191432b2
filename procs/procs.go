package procs

// Procs runs its elements in sequence, still one unit of work per Run call.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return p[1:], nil
	}
	p[0] = next
	return p, nil
}
