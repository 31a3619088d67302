package life

import "golang.org/x/sync/errgroup"

// stepBands computes the next generation in up to n horizontal bands at once.
// Bands write disjoint rows of nxt and read only cur.
func (l *Life) stepBands(n int) {
	if n > l.rows {
		n = l.rows
	}
	var g errgroup.Group
	for i := 0; i < n; i++ {
		from := i * l.rows / n
		to := (i + 1) * l.rows / n
		g.Go(func() error {
			l.stepRows(from, to)
			return nil
		})
	}
	// Bands never return an error.
	g.Wait()
}
