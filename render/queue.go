// Package render holds the data-parallel Newton kernel and the worker queue
// it runs on.
package render

import (
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"fractal/hal"
)

// Queue executes 2-D data-parallel passes over a rectangular index range on
// a fixed pool of workers. Run2D returns only after every cell has been
// visited, so consecutive passes are ordered without further
// synchronization.
type Queue struct {
	workers int
	logger  hal.Logger

	// fault handles a panic escaping a pass body. The default logs the
	// fault and terminates the process.
	fault func(error)
}

// NewQueue returns a queue with the given worker count. workers <= 0 picks
// one worker per CPU.
func NewQueue(workers int, logger hal.Logger) *Queue {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	q := &Queue{workers: workers, logger: logger}
	q.fault = q.logAndExit
	return q
}

func (q *Queue) logAndExit(err error) {
	if q.logger != nil {
		q.logger.WriteLineString(fmt.Sprintf("fault: %v", err))
	}
	os.Exit(1)
}

// Run2D runs body for every (row, col) in [0, rows) x [0, cols), fanning
// contiguous row bands out across the workers and blocking until the whole
// range is done.
func (q *Queue) Run2D(rows, cols int, body func(row, col int)) {
	if rows <= 0 || cols <= 0 {
		return
	}

	band := (rows + q.workers - 1) / q.workers
	var g errgroup.Group
	for r0 := 0; r0 < rows; r0 += band {
		r0 := r0
		r1 := min(r0+band, rows)
		g.Go(func() (err error) {
			defer func() {
				if p := recover(); p != nil {
					err = fmt.Errorf("render pass: %v", p)
				}
			}()
			for row := r0; row < r1; row++ {
				for col := 0; col < cols; col++ {
					body(row, col)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		q.fault(err)
	}
}
