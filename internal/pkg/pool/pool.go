package pool

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Pool is a fixed-size worker pool shared by all requests. Tasks queue
// without backpressure and always run to completion; callers join on their
// own results.
type Pool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup

	mu      sync.Mutex
	started bool
	stopped bool
}

func New(workers int) *Pool {
	if workers <= 0 {
		workers = 10
	}
	return &Pool{
		workers: workers,
		tasks:   make(chan func(), workers),
	}
}

func (p *Pool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}

	logrus.Infof("Prefetch pool started with %d workers", p.workers)
}

// Submit queues a task. It blocks while all workers are busy and the queue is
// full, which is the only limit on in-flight work.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Shutdown stops accepting tasks and waits for queued ones to finish.
func (p *Pool) Shutdown() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	p.mu.Unlock()

	close(p.tasks)
	p.wg.Wait()

	logrus.Info("Prefetch pool stopped")
}
