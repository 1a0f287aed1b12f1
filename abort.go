package clustergo

// AbortStrategy decides at every iteration boundary whether a run should
// proceed. Continue receives the iteration index, the previous and the
// candidate distance sum and the configured iteration budget; it is
// called exactly once per iteration by either variant engine and is
// never retroactive. Both engines additionally enforce the maxIter
// cutoff themselves.
type AbortStrategy interface {
	Continue(iter int, prevDistsum, newDistsum float64, maxIter int) bool
}

// AbortNever runs the full iteration budget; only the maxIter cutoff
// terminates the run.
type AbortNever struct{}

// Continue implements AbortStrategy.
func (AbortNever) Continue(iter int, _, _ float64, maxIter int) bool {
	return iter+1 < maxIter
}

// AbortOnConvergence stops as soon as the distance sum improves by less
// than MinImprovement. With the zero value it stops on the first
// iteration that yields no improvement at all, which is the classic
// Lloyd's convergence test. Unsuitable for mini-batch runs, whose
// batch-local distance sums are non-monotonic.
type AbortOnConvergence struct {
	// MinImprovement is the smallest prev-cur delta still counted as
	// progress.
	MinImprovement float64
}

// Continue implements AbortStrategy.
func (s AbortOnConvergence) Continue(iter int, prevDistsum, newDistsum float64, maxIter int) bool {
	if iter+1 >= maxIter {
		return false
	}
	return prevDistsum-newDistsum > s.MinImprovement
}

// AbortOnNoImprovement stops after Patience consecutive iterations
// without a new best distance sum. It tolerates noisy, non-monotonic
// sequences and is the default for mini-batch runs.
//
// The value is stateful: use a fresh instance per run.
type AbortOnNoImprovement struct {
	// Patience is the number of consecutive non-improving iterations
	// tolerated before stopping. Values below 1 behave like 1.
	Patience int

	best    float64
	bad     int
	started bool
}

// Continue implements AbortStrategy.
func (s *AbortOnNoImprovement) Continue(iter int, _, newDistsum float64, maxIter int) bool {
	if iter+1 >= maxIter {
		return false
	}

	patience := s.Patience
	if patience < 1 {
		patience = 1
	}

	if !s.started || newDistsum < s.best {
		s.best = newDistsum
		s.bad = 0
		s.started = true
		return true
	}

	s.bad++
	return s.bad < patience
}
