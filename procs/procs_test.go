package procs

import "testing"

type step func(ctx *int) (Proc[*int], error)

func (s step) Run(ctx *int) (Proc[*int], error) {
	return s(ctx)
}

func countdown(left int) Proc[*int] {
	return step(func(ctx *int) (Proc[*int], error) {
		*ctx++
		if left <= 1 {
			return nil, nil
		}
		return countdown(left - 1), nil
	})
}

func TestProc(t *testing.T) {
	n := 0
	var p Proc[*int] = countdown(3)
	for p != nil {
		next, err := p.Run(&n)
		if err != nil {
			t.Fatal(err)
		}
		p = next
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}
}

func TestProcs(t *testing.T) {
	n := 0
	var p Proc[*int] = Procs[*int]{
		countdown(2),
		countdown(1),
	}
	for p != nil {
		next, err := p.Run(&n)
		if err != nil {
			t.Fatal(err)
		}
		p = next
	}
	if n != 3 {
		t.Fatalf("got %d", n)
	}
}
