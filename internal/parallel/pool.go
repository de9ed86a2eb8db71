// Package parallel runs independent image jobs on a fixed set of goroutines.
//
// The seedfill scans themselves are sequential; parallelism only exists across
// jobs that share no buffers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a pool of goroutines pulling work from a shared queue.
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// work feeds the workers. It is closed by Close.
	work chan func()

	// wg waits for all workers to exit.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// closeMu orders sends on work against closing it.
	closeMu sync.RWMutex
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// Workers start immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		work:    make(chan func(), workers*4),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

// worker runs work items until the queue is closed and drained.
func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for fn := range p.work {
		fn()
	}
}

// ExecuteAll runs every item of work and waits for all of them to finish.
// Items run concurrently in no particular order. Nil items are skipped.
// If the pool is closed, the remaining items run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	if len(work) == 0 {
		return
	}

	var done sync.WaitGroup
	for _, fn := range work {
		if fn == nil {
			continue
		}
		done.Add(1)
		wrapped := func() {
			defer done.Done()
			fn()
		}
		if !p.submit(wrapped) {
			wrapped()
		}
	}
	done.Wait()
}

// submit queues fn for a worker. It returns false once the pool is closed.
func (p *WorkerPool) submit(fn func()) bool {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if !p.running.Load() {
		return false
	}
	p.work <- fn
	return true
}

// Close stops accepting work, lets queued work finish and stops the workers.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	p.closeMu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.closeMu.Unlock()
		return
	}
	close(p.work)
	p.closeMu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
