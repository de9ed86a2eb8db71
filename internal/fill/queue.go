package fill

// point is a pixel coordinate in the propagation queue.
type point struct {
	i, j int32
}

// queue is a growable FIFO ring buffer of pixel coordinates.
// It is created per call and dropped when the call returns.
type queue struct {
	buf  []point
	head int
	n    int

	pushed int // total pushes, for stats
}

// newQueue creates an empty queue with room for capacity points.
func newQueue(capacity int) *queue {
	return &queue{buf: make([]point, max(capacity, 16))}
}

func (q *queue) len() int {
	return q.n
}

// push appends (i, j), doubling the ring when it is full.
func (q *queue) push(i, j int) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = point{int32(i), int32(j)}
	q.n++
	q.pushed++
}

// pop removes and returns the oldest point. The queue must not be empty.
func (q *queue) pop() (i, j int) {
	p := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return int(p.i), int(p.j)
}

func (q *queue) grow() {
	buf := make([]point, 2*len(q.buf))
	k := copy(buf, q.buf[q.head:])
	copy(buf[k:], q.buf[:q.head])
	q.buf = buf
	q.head = 0
}
