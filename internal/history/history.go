// Package history tracks bounded per-access-point signal histories.
package history

// DefaultCapacity is the number of samples kept per access point.
const DefaultCapacity = 10

// Tracker keeps the most recent signal readings per hardware address.
// Each address holds at most the capacity's worth of samples, oldest
// evicted first. Entries are never removed, so the map grows with the
// number of distinct addresses seen over the process lifetime.
//
// A Tracker is owned by a single goroutine; construct one per consumer
// rather than sharing.
type Tracker struct {
	capacity int
	samples  map[string][]int
}

// NewTracker creates a Tracker keeping up to capacity samples per address.
// Non-positive capacities fall back to DefaultCapacity.
func NewTracker(capacity int) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{
		capacity: capacity,
		samples:  make(map[string][]int),
	}
}

// Capacity returns the per-address sample limit.
func (t *Tracker) Capacity() int {
	return t.capacity
}

// Record appends a signal reading for the given hardware address,
// evicting the oldest reading once the capacity is exceeded. The first
// sighting of an address creates its entry.
func (t *Tracker) Record(hw string, signal int) {
	seq := append(t.samples[hw], signal)
	if len(seq) > t.capacity {
		seq = seq[len(seq)-t.capacity:]
	}
	t.samples[hw] = seq
}

// Samples returns a copy of the stored readings for an address, oldest
// first. Unseen addresses yield nil.
func (t *Tracker) Samples(hw string) []int {
	seq, ok := t.samples[hw]
	if !ok {
		return nil
	}
	out := make([]int, len(seq))
	copy(out, seq)
	return out
}
