package history

import (
	"fmt"
	"sync"
	"testing"

	"github.com/passforge/passforge-go/internal/model"
)

func entry(password string) model.HistoryEntry {
	return model.HistoryEntry{Password: password, Length: len(password)}
}

func TestPushAndListNewestFirst(t *testing.T) {
	s := NewStore(5)
	s.Push(1, entry("first"))
	s.Push(1, entry("second"))
	s.Push(1, entry("third"))

	got := s.List(1)
	if len(got) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(got))
	}
	if got[0].Password != "third" || got[2].Password != "first" {
		t.Errorf("List() order = %q, %q, %q; want newest first", got[0].Password, got[1].Password, got[2].Password)
	}
}

func TestPushEvictsOldest(t *testing.T) {
	s := NewStore(3)
	for i := 1; i <= 5; i++ {
		s.Push(1, entry(fmt.Sprintf("pw-%d", i)))
	}

	got := s.List(1)
	if len(got) != 3 {
		t.Fatalf("List() returned %d entries, want capacity 3", len(got))
	}
	if got[0].Password != "pw-5" || got[2].Password != "pw-3" {
		t.Errorf("unexpected retained entries: %v", got)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	s := NewStore(5)
	s.Push(1, entry("mine"))
	s.Push(2, entry("theirs"))

	if got := s.List(1); len(got) != 1 || got[0].Password != "mine" {
		t.Errorf("user 1 list = %v", got)
	}
	if got := s.List(2); len(got) != 1 || got[0].Password != "theirs" {
		t.Errorf("user 2 list = %v", got)
	}
}

func TestClear(t *testing.T) {
	s := NewStore(5)
	s.Push(1, entry("secret"))
	s.Push(2, entry("kept"))

	s.Clear(1)

	if got := s.List(1); len(got) != 0 {
		t.Errorf("List() after Clear() = %v, want empty", got)
	}
	if got := s.List(2); len(got) != 1 {
		t.Errorf("Clear(1) affected user 2: %v", got)
	}
}

func TestDefaultCapacityFallback(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < DefaultCapacity+10; i++ {
		s.Push(1, entry(fmt.Sprintf("pw-%d", i)))
	}
	if got := s.List(1); len(got) != DefaultCapacity {
		t.Errorf("List() returned %d entries, want %d", len(got), DefaultCapacity)
	}
}

func TestConcurrentPush(t *testing.T) {
	s := NewStore(50)
	var wg sync.WaitGroup

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Push(int64(n%3), entry(fmt.Sprintf("pw-%d-%d", n, j)))
			}
		}(i)
	}
	wg.Wait()

	for userID := int64(0); userID < 3; userID++ {
		if got := s.List(userID); len(got) != 50 {
			t.Errorf("user %d has %d entries, want 50", userID, len(got))
		}
	}
}
