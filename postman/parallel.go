package postman

import "golang.org/x/sync/errgroup"

// forEach calls fn(i) for i in [0, n) with at most workers calls in flight.
// Every index runs to completion; the error returned is that of the lowest
// failing index, independent of scheduling.
func forEach(workers, n int, fn func(i int) error) error {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	errs := make([]error, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			errs[i] = fn(i)
			return errs[i]
		})
	}
	// Wait reports whichever failure finished first; the scan below picks
	// the lowest index instead.
	if g.Wait() == nil {
		return nil
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
