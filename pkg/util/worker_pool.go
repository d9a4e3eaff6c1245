package util

import (
	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"
)

// WorkerPool represents the tool for control
// the execution of go-routine pool.
type WorkerPool interface {
	// Submit queues a function for execution
	// in a separate routine.
	//
	// Implementation must return any error encountered
	// that prevented the function from being queued.
	Submit(func()) error

	// Release releases worker pool resources. All `Submit` calls will
	// finish with ErrPoolClosed. It doesn't wait until all submitted
	// functions have returned so synchronization must be achieved
	// via other means (e.g. sync.WaitGroup).
	Release()
}

// ErrPoolClosed is returned when submitting task to a closed pool.
var ErrPoolClosed = ants.ErrPoolClosed

type antsWorkerPool struct {
	pool *ants.Pool
}

// NewWorkerPool returns a worker pool executing submitted functions in at
// most sz concurrent routines.
func NewWorkerPool(sz int) (WorkerPool, error) {
	p, err := ants.NewPool(sz)
	if err != nil {
		return nil, err
	}

	return &antsWorkerPool{pool: p}, nil
}

// Submit queues fn on the underlying ants pool.
func (p *antsWorkerPool) Submit(fn func()) error {
	return p.pool.Submit(fn)
}

// Release closes the underlying ants pool.
func (p *antsWorkerPool) Release() {
	p.pool.Release()
}

// pseudoWorkerPool represents pseudo worker pool which executes submitted job immediately in the caller's routine.
type pseudoWorkerPool struct {
	closed atomic.Bool
}

// NewPseudoWorkerPool returns new instance of a synchronous worker pool.
func NewPseudoWorkerPool() WorkerPool {
	return &pseudoWorkerPool{}
}

// Submit executes passed function immediately.
//
// Always returns nil.
func (p *pseudoWorkerPool) Submit(fn func()) error {
	if p.closed.Load() {
		return ErrPoolClosed
	}

	fn()

	return nil
}

// Release implements WorkerPool interface.
func (p *pseudoWorkerPool) Release() {
	p.closed.Store(true)
}
