package fill

import "testing"

func TestQueueFIFO(t *testing.T) {
	q := newQueue(0)
	if q.len() != 0 {
		t.Fatalf("len() = %d, want 0", q.len())
	}
	for k := range 5 {
		q.push(k, -k)
	}
	for k := range 5 {
		i, j := q.pop()
		if i != k || j != -k {
			t.Fatalf("pop() = (%d, %d), want (%d, %d)", i, j, k, -k)
		}
	}
	if q.len() != 0 {
		t.Errorf("len() = %d after draining, want 0", q.len())
	}
}

func TestQueueGrowWrapped(t *testing.T) {
	q := newQueue(16)

	// Move head forward so the ring wraps before it grows.
	for k := range 10 {
		q.push(k, k)
	}
	for range 10 {
		q.pop()
	}

	const n = 100
	for k := range n {
		q.push(k, 2*k)
	}
	if q.len() != n {
		t.Fatalf("len() = %d, want %d", q.len(), n)
	}
	if len(q.buf) < n {
		t.Errorf("ring capacity %d below content %d", len(q.buf), n)
	}
	for k := range n {
		i, j := q.pop()
		if i != k || j != 2*k {
			t.Fatalf("pop() #%d = (%d, %d), want (%d, %d)", k, i, j, k, 2*k)
		}
	}
	if q.pushed != 10+n {
		t.Errorf("pushed = %d, want %d", q.pushed, 10+n)
	}
}

func TestQueueInterleaved(t *testing.T) {
	q := newQueue(16)
	next, want := 0, 0
	for round := range 50 {
		for range round%7 + 1 {
			q.push(next, 0)
			next++
		}
		for range round % 5 {
			if q.len() == 0 {
				break
			}
			i, _ := q.pop()
			if i != want {
				t.Fatalf("pop() = %d, want %d", i, want)
			}
			want++
		}
	}
	if q.len() != next-want {
		t.Errorf("len() = %d, want %d", q.len(), next-want)
	}
}

func BenchmarkQueue(b *testing.B) {
	q := newQueue(1024)
	b.ReportAllocs()
	for b.Loop() {
		for k := range 1000 {
			q.push(k, k)
		}
		for q.len() > 0 {
			q.pop()
		}
	}
}
