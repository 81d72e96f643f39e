package parallel

import (
	"runtime"
	"sync"
)

// Pool runs jobs on a fixed number of workers. A pool with a single worker
// runs every job inline on the submitting goroutine.
type Pool struct {
	wg    sync.WaitGroup
	jobs  chan func()
	close func()
}

func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{close: func() {}}
	if numWorkers == 1 {
		return pool
	}

	pool.jobs = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.jobs {
				f()
			}
		})
	}
	pool.close = sync.OnceFunc(func() { close(pool.jobs) })

	return pool
}

func (p *Pool) Do(f func()) {
	if p.jobs == nil {
		f()
		return
	}
	p.jobs <- f
}

// Wait stops accepting jobs and blocks until every submitted job returned.
func (p *Pool) Wait() {
	p.close()
	p.wg.Wait()
}

// Each calls fn(i) for every i in [0, n) on a fresh pool and waits for all of
// them to finish.
func Each(numWorkers, n int, fn func(i int)) {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := Start(max(1, min(numWorkers, n)))
	for i := range n {
		pool.Do(func() { fn(i) })
	}
	pool.Wait()
}
