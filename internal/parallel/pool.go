// Package parallel runs index-range work across a fixed set of goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a pool of goroutines that split index ranges between them.
//
// Each worker owns a queue. Idle workers steal from the other queues, which
// keeps all workers busy when chunks take uneven time.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool

	// mu is held for reading while tasks are queued and for writing while
	// the pool shuts down, so no task lands in a queue after its drain.
	mu sync.RWMutex
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
		default:
			if fn := p.steal(id); fn != nil {
				fn()
				continue
			}
			select {
			case <-p.done:
				drain(own)
				return
			case fn := <-own:
				fn()
			}
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Range calls fn for consecutive sub-ranges [lo, hi) covering [0, n), each
// at most chunk long, and returns when all calls have finished.
// On a closed pool the ranges run on the calling goroutine.
func (p *Pool) Range(n, chunk int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if chunk <= 0 {
		chunk = Chunk(n, p.workers)
	}
	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for lo := 0; lo < n; lo += chunk {
			fn(lo, min(lo+chunk, n))
		}
		return
	}

	var wg sync.WaitGroup
	for i, lo := 0, 0; lo < n; i, lo = i+1, lo+chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		p.queues[i%p.workers] <- func() {
			defer wg.Done()
			fn(lo, hi)
		}
	}
	p.mu.RUnlock()
	wg.Wait()
}

// Close stops the workers after the queued work has run.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool still accepts work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}

// Chunk returns a chunk length that gives each worker about four chunks.
func Chunk(n, workers int) int {
	if workers <= 0 {
		workers = 1
	}
	return max(1, (n+workers*4-1)/(workers*4))
}

var (
	sharedOnce sync.Once
	shared     *Pool
)

// Shared returns a process-wide pool with GOMAXPROCS workers, started on
// first use. It is never closed.
func Shared() *Pool {
	sharedOnce.Do(func() {
		shared = NewPool(0)
	})
	return shared
}
