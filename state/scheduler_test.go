package state

import "testing"

func TestQueue_Flush(t *testing.T) {
	queue := NewQueue()
	calls := make([]int, 0, 2)

	queue.Schedule(func() {
		calls = append(calls, 1)
	})
	queue.Schedule(func() {
		calls = append(calls, 2)
	})

	if flushed := queue.Flush(); flushed != 2 {
		t.Fatalf("expected 2 callbacks flushed, got %d", flushed)
	}
	if len(calls) != 2 || calls[0] != 1 || calls[1] != 2 {
		t.Fatalf("unexpected callback order: %v", calls)
	}
	if flushed := queue.Flush(); flushed != 0 {
		t.Fatalf("expected empty flush, got %d", flushed)
	}
}

func TestQueue_Len(t *testing.T) {
	queue := NewQueue()
	if queue.Len() != 0 {
		t.Fatalf("expected empty queue, got %d", queue.Len())
	}
	queue.Schedule(func() {})
	queue.Schedule(func() {})
	if queue.Len() != 2 {
		t.Fatalf("expected 2 pending, got %d", queue.Len())
	}
	queue.Flush()
	if queue.Len() != 0 {
		t.Fatalf("expected empty queue after flush, got %d", queue.Len())
	}
}

func TestQueue_ScheduleDuringFlushWaits(t *testing.T) {
	queue := NewQueue()
	var order []string

	queue.Schedule(func() {
		order = append(order, "first")
		queue.Schedule(func() {
			order = append(order, "second")
		})
	})

	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 callback in first flush, got %d", flushed)
	}
	if len(order) != 1 {
		t.Fatalf("callback scheduled during flush must wait, got %v", order)
	}
	if flushed := queue.Flush(); flushed != 1 {
		t.Fatalf("expected 1 callback in second flush, got %d", flushed)
	}
	if len(order) != 2 || order[1] != "second" {
		t.Fatalf("unexpected order: %v", order)
	}
}
