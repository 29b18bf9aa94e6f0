package pick

import (
	"fmt"
	"sort"
)

// Store holds the current set of velocity picks. Picks keep their
// insertion order; a derived index groups positions by trace, sorted by
// time within each trace. Every mutation rebuilds the index so it is
// never stale.
//
// A Store is not safe for concurrent use. Interpolation runs must work
// on a Snapshot, never on the live store.
type Store struct {
	picks    []Pick
	original []Pick // picks as loaded, for Reset
	byID     map[ID]int
	byTrace  map[int][]int
	traces   []int // sorted trace indices present in the set
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		byID:    make(map[ID]int),
		byTrace: make(map[int][]int),
	}
}

// Load replaces the store contents with externally parsed picks. All
// loaded picks get OriginOriginal and fresh IDs; the loaded state is
// remembered for Reset. Rows failing validation abort the load.
func (st *Store) Load(rows []Pick) error {
	picks := make([]Pick, 0, len(rows))
	for i, r := range rows {
		if err := validateTrace(r.Trace); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := validate(r.Time, r.Velocity); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		picks = append(picks, Pick{
			ID:       NewID(),
			Trace:    r.Trace,
			Time:     r.Time,
			Velocity: r.Velocity,
			Origin:   OriginOriginal,
		})
	}

	st.picks = picks
	st.original = make([]Pick, len(picks))
	copy(st.original, picks)
	st.reindex()
	return nil
}

// Reset restores the picks as they were at load time.
func (st *Store) Reset() {
	st.picks = make([]Pick, len(st.original))
	copy(st.picks, st.original)
	st.reindex()
}

// Add appends a new pick with OriginAdded and returns it.
func (st *Store) Add(trace int, time, velocity float64) (Pick, error) {
	if err := validateTrace(trace); err != nil {
		return Pick{}, err
	}
	if err := validate(time, velocity); err != nil {
		return Pick{}, err
	}

	p := Pick{
		ID:       NewID(),
		Trace:    trace,
		Time:     time,
		Velocity: velocity,
		Origin:   OriginAdded,
	}
	st.picks = append(st.picks, p)
	st.reindex()
	return p, nil
}

// Edit changes the velocity of an existing pick and marks it edited.
func (st *Store) Edit(id ID, velocity float64) error {
	i, ok := st.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if velocity <= 0 {
		return fmt.Errorf("%w: velocity must be > 0 m/s: %f", ErrInvalidPick, velocity)
	}

	st.picks[i].Velocity = velocity
	st.picks[i].Origin = OriginEdited
	return nil
}

// Delete removes a pick.
func (st *Store) Delete(id ID) error {
	i, ok := st.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	st.picks = append(st.picks[:i], st.picks[i+1:]...)
	st.reindex()
	return nil
}

// ShiftTime adds delta (ms) to every pick's time. Picks whose shifted
// time would drop below zero are clamped to zero; their IDs are returned
// so the caller can surface a warning. The shift itself always succeeds.
func (st *Store) ShiftTime(delta float64) []ID {
	var clamped []ID
	for i := range st.picks {
		t := st.picks[i].Time + delta
		if t < 0 {
			t = 0
			clamped = append(clamped, st.picks[i].ID)
		}
		st.picks[i].Time = t
	}
	st.reindex()
	return clamped
}

// Len returns the number of picks.
func (st *Store) Len() int {
	return len(st.picks)
}

// Get returns the pick with the given ID.
func (st *Store) Get(id ID) (Pick, bool) {
	i, ok := st.byID[id]
	if !ok {
		return Pick{}, false
	}
	return st.picks[i], true
}

// Snapshot returns an independent copy of the picks in insertion order.
// Interpolation strategies operate on snapshots so concurrent preview
// and final runs never share mutable state.
func (st *Store) Snapshot() []Pick {
	out := make([]Pick, len(st.picks))
	copy(out, st.picks)
	return out
}

// Traces returns the sorted trace indices that carry at least one pick.
func (st *Store) Traces() []int {
	out := make([]int, len(st.traces))
	copy(out, st.traces)
	return out
}

// TracePicks returns the picks of one trace sorted by time.
func (st *Store) TracePicks(trace int) []Pick {
	idx := st.byTrace[trace]
	out := make([]Pick, len(idx))
	for i, pos := range idx {
		out[i] = st.picks[pos]
	}
	return out
}

// Duplicates returns picks sharing an exact (trace, time) coordinate
// with an earlier pick. Duplicates are legal but degrade the scattered
// interpolation, so the editing layer should flag them.
func (st *Store) Duplicates() []Pick {
	type coord struct {
		trace int
		time  float64
	}

	seen := make(map[coord]bool, len(st.picks))
	var dups []Pick
	for _, p := range st.picks {
		c := coord{p.Trace, p.Time}
		if seen[c] {
			dups = append(dups, p)
			continue
		}
		seen[c] = true
	}
	return dups
}

// reindex rebuilds the ID map and the per-trace time-sorted index.
func (st *Store) reindex() {
	st.byID = make(map[ID]int, len(st.picks))
	st.byTrace = make(map[int][]int)
	for i, p := range st.picks {
		st.byID[p.ID] = i
		st.byTrace[p.Trace] = append(st.byTrace[p.Trace], i)
	}

	st.traces = st.traces[:0]
	for t, idx := range st.byTrace {
		sort.Slice(idx, func(a, b int) bool {
			return st.picks[idx[a]].Time < st.picks[idx[b]].Time
		})
		st.traces = append(st.traces, t)
	}
	sort.Ints(st.traces)
}

// GroupByTrace groups a pick snapshot by trace index, each group sorted
// by time. Strategies use this to build their per-trace views without
// touching the store.
func GroupByTrace(picks []Pick) map[int][]Pick {
	groups := make(map[int][]Pick)
	for _, p := range picks {
		groups[p.Trace] = append(groups[p.Trace], p)
	}
	for _, g := range groups {
		sort.Slice(g, func(a, b int) bool { return g[a].Time < g[b].Time })
	}
	return groups
}
