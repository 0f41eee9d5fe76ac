package game

// floodQueue is the worklist for the reveal engine's breadth-first
// expansion. It is a fixed-capacity ring sized to the maximum cell count:
// a cell is enqueued at most once per flood fill (the visited bit is set
// before any enqueue), so the producer index can never lap the consumer
// and the queue never overflows by construction.
type floodQueue struct {
	xs, ys [cellCount]int
	head   int
	tail   int
}

func (q *floodQueue) reset() {
	q.head, q.tail = 0, 0
}

func (q *floodQueue) push(x, y int) {
	q.xs[q.tail] = x
	q.ys[q.tail] = y
	if q.tail++; q.tail == cellCount {
		q.tail = 0
	}
}

func (q *floodQueue) pop() (x, y int) {
	x, y = q.xs[q.head], q.ys[q.head]
	if q.head++; q.head == cellCount {
		q.head = 0
	}
	return x, y
}

func (q *floodQueue) empty() bool {
	return q.head == q.tail
}
