package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"
)

func entry(id string) Entry {
	return Entry{
		TestCaseID:  id,
		QuestionKey: "bmi",
		Passed:      true,
		Confidence:  0.9,
		CreatedAt:   time.Now(),
	}
}

func TestInMemoryHistoryAppendAndRecent(t *testing.T) {
	ctx := context.Background()
	h := NewInMemoryHistory(10)

	for i := 0; i < 3; i++ {
		if err := h.Append(ctx, entry(fmt.Sprintf("case_%d", i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, err := h.Len(ctx)
	if err != nil {
		t.Fatalf("len: %v", err)
	}
	if n != 3 {
		t.Errorf("Expected 3 entries, got %d", n)
	}

	recent, err := h.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(recent))
	}
	if recent[0].TestCaseID != "case_2" || recent[1].TestCaseID != "case_1" {
		t.Errorf("Expected most recent first, got %s then %s", recent[0].TestCaseID, recent[1].TestCaseID)
	}
}

func TestInMemoryHistoryEviction(t *testing.T) {
	ctx := context.Background()
	h := NewInMemoryHistory(3)

	for i := 0; i < 5; i++ {
		if err := h.Append(ctx, entry(fmt.Sprintf("case_%d", i))); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	n, _ := h.Len(ctx)
	if n != 3 {
		t.Errorf("Expected capacity bound of 3, got %d", n)
	}

	recent, err := h.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []string{"case_4", "case_3", "case_2"}
	for i, id := range want {
		if recent[i].TestCaseID != id {
			t.Errorf("Expected %s at %d, got %s", id, i, recent[i].TestCaseID)
		}
	}
}

func TestInMemoryHistoryDefaultCapacity(t *testing.T) {
	h := NewInMemoryHistory(0)
	if len(h.entries) != DefaultCapacity {
		t.Errorf("Expected default capacity %d, got %d", DefaultCapacity, len(h.entries))
	}
}

func TestInMemoryHistoryConcurrentAppend(t *testing.T) {
	ctx := context.Background()
	h := NewInMemoryHistory(100)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = h.Append(ctx, entry(fmt.Sprintf("case_%d", i)))
		}(i)
	}
	wg.Wait()

	n, _ := h.Len(ctx)
	if n != 50 {
		t.Errorf("Expected 50 entries, got %d", n)
	}
}
