// Package pick holds the editable set of velocity picks feeding the
// interpolation strategies. A Store keeps picks in insertion order,
// maintains a derived per-trace index sorted by time, and validates all
// mutations. Strategies never see the Store itself; they receive an
// immutable Snapshot.
package pick
