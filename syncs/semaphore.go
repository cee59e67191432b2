package syncs

// Semaphore bounds concurrent work; the parallel candidate evaluator
// acquires one slot per in-flight VM run.
type Semaphore chan bool

func NewSemaphore(n int) Semaphore {
	return make(chan bool, n)
}

func (s Semaphore) Acquire() {
	s <- true
}

func (s Semaphore) Release() {
	<-s
}
