package robovm

const (
	fnvOffset = 14695981039346656037
	fnvPrime  = 1099511628211

	// stackPreview bounds how much of the execution stack's head goes into
	// the key. Keeps hashing O(1) per step; two different infinite loops
	// sharing a short head can collide, which the step cap covers.
	stackPreview = 8
)

// stateKey canonicalizes pose, remaining stars, board contents, stack depth
// and the stack head into one comparable value. Recurrence of a key means
// the run can never make further progress.
func (v *VM) stateKey() uint64 {
	h := uint64(fnvOffset)
	h = (h ^ uint64(v.X)) * fnvPrime
	h = (h ^ uint64(v.Y)) * fnvPrime
	h = (h ^ uint64(v.Dir)) * fnvPrime
	h = (h ^ uint64(v.Stars)) * fnvPrime
	h = (h ^ v.Board.Hash()) * fnvPrime
	h = (h ^ uint64(len(v.Exec))) * fnvPrime
	n := len(v.Exec)
	for i := n - 1; i >= 0 && i >= n-stackPreview; i-- {
		inst := v.Exec[i]
		h = (h ^ uint64(inst.Op)) * fnvPrime
		h = (h ^ uint64(inst.Cond)<<8) * fnvPrime
	}
	return h
}
