package queue

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/golocube/kioskd/internal/domain"
)

func TestFIFOOrder(t *testing.T) {
	q := New(16)

	for i := 0; i < 5; i++ {
		cmd := domain.Command{Kind: domain.KindShowStatic, AssetID: fmt.Sprintf("%d", i)}
		if err := q.Enqueue(cmd); err != nil {
			t.Fatalf("enqueue %d: %v", i, err)
		}
	}

	for i := 0; i < 5; i++ {
		cmd, ok := q.Dequeue()
		if !ok {
			t.Fatalf("dequeue %d: queue unexpectedly empty", i)
		}
		if want := fmt.Sprintf("%d", i); cmd.AssetID != want {
			t.Errorf("dequeue %d: got asset %q, want %q", i, cmd.AssetID, want)
		}
	}

	if _, ok := q.Dequeue(); ok {
		t.Error("expected empty queue after draining")
	}
}

func TestCapacityBound(t *testing.T) {
	q := New(2)

	if err := q.Enqueue(domain.Command{Kind: domain.KindStop}); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	if err := q.Enqueue(domain.Command{Kind: domain.KindStop}); err != nil {
		t.Fatalf("second enqueue: %v", err)
	}

	err := q.Enqueue(domain.Command{Kind: domain.KindStop})
	if !errors.Is(err, domain.ErrQueueFull) {
		t.Fatalf("expected ErrQueueFull, got %v", err)
	}

	// Draining frees capacity again
	if _, ok := q.Dequeue(); !ok {
		t.Fatal("dequeue failed")
	}
	if err := q.Enqueue(domain.Command{Kind: domain.KindStop}); err != nil {
		t.Fatalf("enqueue after drain: %v", err)
	}
}

func TestDefaultCapacity(t *testing.T) {
	q := New(0)
	if q.capacity != DefaultCapacity {
		t.Errorf("capacity = %d, want %d", q.capacity, DefaultCapacity)
	}
}

func TestConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 50

	q := New(producers * perProducer)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				if err := q.Enqueue(domain.Command{Kind: domain.KindVolume, Volume: domain.VolumeUp}); err != nil {
					t.Errorf("enqueue: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	if got := q.Len(); got != producers*perProducer {
		t.Fatalf("Len = %d, want %d", got, producers*perProducer)
	}

	drained := 0
	for {
		if _, ok := q.Dequeue(); !ok {
			break
		}
		drained++
	}
	if drained != producers*perProducer {
		t.Fatalf("drained %d, want %d", drained, producers*perProducer)
	}
}
