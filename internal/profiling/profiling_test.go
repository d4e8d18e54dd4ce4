package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	Reset()
	for i := 0; i < 3; i++ {
		Track("world.Build")()
	}
	Track("noise.Generate")()

	if c := Count("world.Build"); c != 3 {
		t.Errorf("Expected 3 world.Build entries, got %d", c)
	}
	snap := Snapshot()
	if _, ok := snap["noise.Generate"]; !ok {
		t.Errorf("Expected noise.Generate in snapshot, got %v", snap)
	}
	if SumWithPrefix("world.") != snap["world.Build"] {
		t.Errorf("SumWithPrefix mismatch")
	}

	Reset()
	if len(Snapshot()) != 0 {
		t.Errorf("Expected empty snapshot after Reset")
	}
}

func TestTopNOrdering(t *testing.T) {
	Reset()
	mu.Lock()
	totals["a"] = 2 * time.Millisecond
	totals["b"] = 5*time.Millisecond + 500*time.Microsecond
	totals["c"] = time.Millisecond
	mu.Unlock()

	got := TopN(2)
	want := "b:5.5ms, a:2ms"
	if got != want {
		t.Errorf("TopN(2) = %q, want %q", got, want)
	}
	if !strings.Contains(TopN(10), "c:1ms") {
		t.Errorf("TopN(10) should include every entry, got %q", TopN(10))
	}
	Reset()
}
