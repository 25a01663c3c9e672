package mining

// DefaultCapacity is used when NewQueue is given a non-positive capacity.
const DefaultCapacity = 50

// Queue is a bounded FIFO of host names awaiting redeployment.
type Queue struct {
	ch chan string
}

// NewQueue returns a Queue holding up to capacity pending hosts.
func NewQueue(capacity int) *Queue {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Queue{ch: make(chan string, capacity)}
}

// Notify enqueues host without blocking. It returns false when the queue is
// full.
func (q *Queue) Notify(host string) bool {
	select {
	case q.ch <- host:
		return true
	default:
		return false
	}
}

// Len returns the number of pending hosts.
func (q *Queue) Len() int { return len(q.ch) }

// Cap returns the queue capacity.
func (q *Queue) Cap() int { return cap(q.ch) }
