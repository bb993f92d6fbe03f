package orbit

// Point is a position in the orbital plane, meters, focus at the origin.
type Point struct {
	X, Y float64
}

// Trail is a fixed-capacity ring buffer of recent positions. When full, each
// push overwrites the oldest entry.
type Trail struct {
	buf   []Point
	head  int // next write index
	count int
}

// NewTrail allocates a trail holding up to capacity points.
func NewTrail(capacity int) *Trail {
	return &Trail{buf: make([]Point, capacity)}
}

// Push appends a point, evicting the oldest when at capacity.
func (t *Trail) Push(p Point) {
	t.buf[t.head] = p
	t.head = (t.head + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// Len returns the number of stored points.
func (t *Trail) Len() int { return t.count }

// Cap returns the trail capacity.
func (t *Trail) Cap() int { return len(t.buf) }

// Points returns the stored points in chronological order, oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, t.count)
	start := t.head - t.count
	if start < 0 {
		start += len(t.buf)
	}
	for i := 0; i < t.count; i++ {
		out[i] = t.buf[(start+i)%len(t.buf)]
	}
	return out
}

// Reset discards all stored points.
func (t *Trail) Reset() {
	t.head = 0
	t.count = 0
}
