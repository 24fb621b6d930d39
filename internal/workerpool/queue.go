package workerpool

import "sync"

// queue is an unbounded FIFO shared by every worker of a pool.
// The lock is held only while a job is taken off the queue.
type queue struct {
	mu        sync.Mutex
	ready     *sync.Cond
	items     []Job
	closed    bool
	receivers int
}

func newQueue(receivers int) *queue {
	q := &queue{receivers: receivers}
	q.ready = sync.NewCond(&q.mu)
	return q
}

func (q *queue) send(job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrPoolClosed
	}
	if q.receivers == 0 {
		return ErrNoReceivers
	}
	q.items = append(q.items, job)
	q.ready.Signal()
	return nil
}

// receive blocks until a job is available or the queue is closed and drained.
func (q *queue) receive() (Job, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 && !q.closed {
		q.ready.Wait()
	}
	if len(q.items) == 0 {
		return nil, false
	}

	job := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return job, true
}

func (q *queue) close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.ready.Broadcast()
}

// detach is called by a worker on exit.
func (q *queue) detach() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.receivers--
}

func (q *queue) depth() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
