// Package parallel runs scanline work across goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// bandsPerWorker is how many bands a call to Bands cuts per worker. Extra
// bands let a worker that finished a cheap band claim another one.
const bandsPerWorker = 4

// Pool is a set of long-lived goroutines that convert bands of rows.
//
// Bands publishes one job per call. The caller and every worker that
// picks the job up claim bands from it through a shared cursor until none
// remain, so no band is assigned to a worker ahead of time.
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	jobs    chan *job
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// job is one call to Bands.
type job struct {
	bands  [][2]int
	fn     func(y0, y1 int) error
	next   atomic.Int64
	failed atomic.Bool
	errs   []error

	// helpers counts the workers that took the job.
	helpers sync.WaitGroup
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		workers: workers,
		jobs:    make(chan *job),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case j := <-p.jobs:
			j.run()
			j.helpers.Done()
		}
	}
}

// run claims bands until none are left or one has failed.
func (j *job) run() {
	for !j.failed.Load() {
		i := int(j.next.Add(1) - 1)
		if i >= len(j.bands) {
			return
		}
		b := j.bands[i]
		if err := j.fn(b[0], b[1]); err != nil {
			j.errs[i] = &BandError{Y0: b[0], Y1: b[1], Err: err}
			j.failed.Store(true)
		}
	}
}

// Bands calls fn for bands of rows [0, height) and returns the errors of
// the failed bands joined. After a band fails no new band is started.
// On a closed pool every band runs on the calling goroutine.
func (p *Pool) Bands(height int, fn func(y0, y1 int) error) error {
	bands := Split(height, p.workers*bandsPerWorker)
	if len(bands) == 0 {
		return nil
	}
	j := &job{bands: bands, fn: fn, errs: make([]error, len(bands))}

	// The caller works too, so one helper fewer than bands is enough.
offer:
	for range min(p.workers, len(bands)-1) {
		j.helpers.Add(1)
		select {
		case p.jobs <- j:
		case <-p.done:
			j.helpers.Done()
			break offer
		}
	}
	j.run()
	j.helpers.Wait()
	return errors.Join(j.errs...)
}

// Close stops the workers. A Bands call in progress finishes its bands
// on the calling goroutine. Close is safe to call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int { return p.workers }

// IsRunning reports whether the pool accepts work.
func (p *Pool) IsRunning() bool { return p.running.Load() }
