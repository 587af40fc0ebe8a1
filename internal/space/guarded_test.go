package space

import (
	"sync"
	"testing"
)

func TestGuardedConcurrentUpdates(t *testing.T) {
	s, err := NewCyclicEnum([]string{"e"}, []string{"s0", "s1", "s2", "s3", "s4"})
	if err != nil {
		t.Fatalf("NewCyclicEnum: %v", err)
	}
	g := Guard(s)

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := g.Update("e"); err != nil {
					t.Errorf("update: %v", err)
					return
				}
				g.Check()
			}
		}()
	}
	wg.Wait()

	if !g.Check() {
		t.Fatal("expected check to pass")
	}
	idx, _ := s.Index("e")
	want := (workers * perWorker) % s.Enum().Len()
	if idx != want {
		t.Fatalf("expected index %d after %d updates, got %d", want, workers*perWorker, idx)
	}
}

func TestGuardedUnknownSelector(t *testing.T) {
	s, err := NewCyclicEnum([]string{"e"}, []string{"s0"})
	if err != nil {
		t.Fatalf("NewCyclicEnum: %v", err)
	}
	g := Guard(s)
	if err := g.Update("nope"); err == nil {
		t.Fatal("expected error for unknown selector")
	}
	if res := g.Resolve(); res.Collapsed {
		t.Fatal("expected no-op resolve through the guard")
	}
}
