package pick

import (
	"errors"
	"testing"
)

func TestAddValidation(t *testing.T) {
	cases := []struct {
		name     string
		trace    int
		time     float64
		velocity float64
		ok       bool
	}{
		{"valid", 3, 250, 1750, true},
		{"zero time", 0, 0, 1500, true},
		{"negative time", 0, -1, 1500, false},
		{"zero velocity", 0, 100, 0, false},
		{"negative velocity", 0, 100, -1500, false},
		{"negative trace", -1, 100, 1500, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := NewStore()
			p, err := st.Add(tc.trace, tc.time, tc.velocity)
			if tc.ok {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if p.Origin != OriginAdded {
					t.Fatalf("origin=%v, want added", p.Origin)
				}
				return
			}
			if !errors.Is(err, ErrInvalidPick) {
				t.Fatalf("err=%v, want ErrInvalidPick", err)
			}
			if st.Len() != 0 {
				t.Fatal("failed add must not grow the store")
			}
		})
	}
}

func TestEditDeleteNotFound(t *testing.T) {
	st := NewStore()
	if err := st.Edit(ID("missing"), 2000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("edit err=%v, want ErrNotFound", err)
	}
	if err := st.Delete(ID("missing")); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete err=%v, want ErrNotFound", err)
	}
}

func TestEditMarksOrigin(t *testing.T) {
	st := NewStore()
	if err := st.Load([]Pick{{Trace: 0, Time: 100, Velocity: 1500}}); err != nil {
		t.Fatal(err)
	}

	id := st.Snapshot()[0].ID
	if err := st.Edit(id, 1650); err != nil {
		t.Fatal(err)
	}

	p, ok := st.Get(id)
	if !ok {
		t.Fatal("pick vanished after edit")
	}
	if p.Velocity != 1650 || p.Origin != OriginEdited {
		t.Fatalf("got %+v, want velocity 1650 origin edited", p)
	}

	if err := st.Edit(id, -10); !errors.Is(err, ErrInvalidPick) {
		t.Fatalf("err=%v, want ErrInvalidPick", err)
	}
}

func TestDeleteReindexes(t *testing.T) {
	st := NewStore()
	a, _ := st.Add(0, 100, 1500)
	b, _ := st.Add(0, 200, 1600)
	c, _ := st.Add(1, 150, 1550)

	if err := st.Delete(b.ID); err != nil {
		t.Fatal(err)
	}
	if st.Len() != 2 {
		t.Fatalf("len=%d, want 2", st.Len())
	}
	if _, ok := st.Get(b.ID); ok {
		t.Fatal("deleted pick still resolvable")
	}
	if _, ok := st.Get(a.ID); !ok {
		t.Fatal("surviving pick lost after delete")
	}
	if _, ok := st.Get(c.ID); !ok {
		t.Fatal("surviving pick lost after delete")
	}
	if got := st.TracePicks(0); len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("trace 0 index stale after delete: %+v", got)
	}
}

func TestShiftTimeClamps(t *testing.T) {
	st := NewStore()
	low, _ := st.Add(0, 100, 1500)
	st.Add(0, 1000, 1800)

	clamped := st.ShiftTime(-200)
	if len(clamped) != 1 || clamped[0] != low.ID {
		t.Fatalf("clamped=%v, want exactly [%s]", clamped, low.ID)
	}

	p, _ := st.Get(low.ID)
	if p.Time != 0 {
		t.Fatalf("clamped time=%v, want 0", p.Time)
	}

	picks := st.TracePicks(0)
	if picks[1].Time != 800 {
		t.Fatalf("shifted time=%v, want 800", picks[1].Time)
	}

	if got := st.ShiftTime(50); got != nil {
		t.Fatalf("positive shift must not clamp, got %v", got)
	}
}

func TestTraceIndexSortedByTime(t *testing.T) {
	st := NewStore()
	st.Add(2, 900, 1900)
	st.Add(2, 100, 1500)
	st.Add(2, 500, 1700)
	st.Add(7, 300, 1600)

	got := st.TracePicks(2)
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Time > got[i].Time {
			t.Fatalf("trace picks not time-sorted: %v", got)
		}
	}

	traces := st.Traces()
	if len(traces) != 2 || traces[0] != 2 || traces[1] != 7 {
		t.Fatalf("traces=%v, want [2 7]", traces)
	}
}

func TestDuplicatesFlagged(t *testing.T) {
	st := NewStore()
	st.Add(1, 100, 1500)
	st.Add(1, 100, 1520) // same coordinate, different velocity
	st.Add(1, 200, 1600)

	dups := st.Duplicates()
	if len(dups) != 1 {
		t.Fatalf("duplicates=%d, want 1", len(dups))
	}
	if dups[0].Velocity != 1520 {
		t.Fatalf("flagged the wrong pick: %+v", dups[0])
	}
}

func TestLoadAndReset(t *testing.T) {
	st := NewStore()
	err := st.Load([]Pick{
		{Trace: 0, Time: 100, Velocity: 1500},
		{Trace: 5, Time: 800, Velocity: 1900},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range st.Snapshot() {
		if p.Origin != OriginOriginal {
			t.Fatalf("loaded origin=%v, want original", p.Origin)
		}
		if p.ID == "" {
			t.Fatal("loaded pick missing ID")
		}
	}

	st.Add(3, 400, 1700)
	st.ShiftTime(-50)
	st.Reset()

	if st.Len() != 2 {
		t.Fatalf("len after reset=%d, want 2", st.Len())
	}
	if p := st.TracePicks(0)[0]; p.Time != 100 {
		t.Fatalf("reset did not restore time: %v", p.Time)
	}

	if err := st.Load([]Pick{{Trace: 0, Time: -5, Velocity: 1500}}); !errors.Is(err, ErrInvalidPick) {
		t.Fatalf("load err=%v, want ErrInvalidPick", err)
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	st := NewStore()
	st.Add(0, 100, 1500)

	snap := st.Snapshot()
	snap[0].Velocity = 9999

	if st.TracePicks(0)[0].Velocity != 1500 {
		t.Fatal("mutating a snapshot must not touch the store")
	}
}

func TestGroupByTrace(t *testing.T) {
	picks := []Pick{
		{Trace: 4, Time: 900, Velocity: 1900},
		{Trace: 1, Time: 300, Velocity: 1600},
		{Trace: 4, Time: 100, Velocity: 1500},
	}

	groups := GroupByTrace(picks)
	if len(groups) != 2 {
		t.Fatalf("groups=%d, want 2", len(groups))
	}
	g := groups[4]
	if len(g) != 2 || g[0].Time != 100 || g[1].Time != 900 {
		t.Fatalf("trace 4 group not time-sorted: %v", g)
	}
}
