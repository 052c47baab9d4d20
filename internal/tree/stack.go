package tree

type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(v T) { s.items = append(s.items, v) }

func (s *stack[T]) pop() T {
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return v
}

func (s *stack[T]) len() int { return len(s.items) }

// queue is a FIFO over a slice; head advances instead of reslicing on every
// dequeue so the backing array is reused until the queue drains.
type queue[T any] struct {
	items []T
	head  int
}

func (q *queue[T]) enqueue(v T) { q.items = append(q.items, v) }

func (q *queue[T]) dequeue() T {
	v := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v
}

func (q *queue[T]) len() int { return len(q.items) - q.head }
