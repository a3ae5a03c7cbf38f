package growth

// Queue is the FIFO of snapshots waiting to be drawn.
type Queue struct {
	items []*Structure
}

func (q *Queue) Push(s *Structure) {
	q.items = append(q.items, s)
}

func (q *Queue) Len() int { return len(q.items) }

// Drain removes and returns every queued snapshot in enqueue order.
// An empty queue yields nil.
func (q *Queue) Drain() []*Structure {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Clear() {
	q.items = nil
}
