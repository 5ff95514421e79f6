package mailbox

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestDrainAllPreservesEnqueueOrder(t *testing.T) {
	m := New[int]()
	for i := 0; i < 100; i++ {
		m.Post(i)
	}

	batch := m.DrainAll()
	if len(batch) != 100 {
		t.Fatalf("drained %d messages, want 100", len(batch))
	}
	for i, v := range batch {
		if v != i {
			t.Fatalf("batch[%d] = %d, want %d (FIFO violated)", i, v, i)
		}
	}
}

func TestDrainAllEmptiesQueueExactlyOnce(t *testing.T) {
	m := New[string]()
	m.Post("a")
	m.Post("b")

	first := m.DrainAll()
	if len(first) != 2 {
		t.Fatalf("first drain = %d messages, want 2", len(first))
	}
	if second := m.DrainAll(); second != nil {
		t.Fatalf("second drain returned %v, want nil (each message applied exactly once)", second)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d after drain", m.Len())
	}
}

func TestConcurrentProducersAllDelivered(t *testing.T) {
	m := New[int]()
	const producers = 16
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				m.Post(base + i)
			}
		}(p * perProducer)
	}
	wg.Wait()

	seen := make(map[int]bool)
	for _, v := range m.DrainAll() {
		if seen[v] {
			t.Fatalf("message %d delivered twice", v)
		}
		seen[v] = true
	}
	if len(seen) != producers*perProducer {
		t.Fatalf("delivered %d messages, want %d", len(seen), producers*perProducer)
	}
}

func TestGoPostsExactlyOneMessage(t *testing.T) {
	m := New[string]()
	m.Go(func() string { return "done" }, func(error) string { return "failed" })

	batch := waitForDrain(t, m, 1)
	if batch[0] != "done" {
		t.Errorf("got %q, want %q", batch[0], "done")
	}
}

func TestGoConvertsPanicIntoFailureMessage(t *testing.T) {
	m := New[string]()
	m.Go(
		func() string { panic(errors.New("exploded")) },
		func(err error) string { return "failure: " + err.Error() },
	)

	batch := waitForDrain(t, m, 1)
	if batch[0] != "failure: exploded" {
		t.Errorf("got %q", batch[0])
	}
}

func TestGoConvertsNonErrorPanic(t *testing.T) {
	m := New[string]()
	m.Go(
		func() string { panic("raw string panic") },
		func(err error) string { return err.Error() },
	)

	batch := waitForDrain(t, m, 1)
	if batch[0] != "worker panic: raw string panic" {
		t.Errorf("got %q", batch[0])
	}
}

// waitForDrain polls until n messages have arrived, mimicking the UI
// loop's fixed-tick consumer.
func waitForDrain[T any](t *testing.T, m *Mailbox[T], n int) []T {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	var got []T
	for time.Now().Before(deadline) {
		got = append(got, m.DrainAll()...)
		if len(got) >= n {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d messages, got %d", n, len(got))
	return nil
}
