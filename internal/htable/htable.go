// Package htable implements the open-addressed, integer-valued hash table
// primitive behind the symbol table's dedupe lookups: a
// power-of-two bucket array probed quadratically, growing at a 0.75 load
// factor ceiling.
//
// Table stores only opaque int values (conventionally indices into a
// caller-owned array) keyed by a caller-supplied 64-bit hash. It does not
// retain hashes itself, so growing the table requires the caller to
// supply a HashOf callback capable of recomputing an item's hash from the
// item's own backing storage — exactly as the reference table_reinit
// rehashes live items into a newly enlarged bucket array.
package htable

import (
	"github.com/tawesoft/corpus/v2/internal/growth"
)

// Empty is the sentinel stored in unoccupied buckets.
const Empty = -1

// load factor ceiling of 0.75, expressed without floating point.
const loadFactorNum = 3
const loadFactorDen = 4

// Table is an open-addressed table mapping a 64-bit hash to an int value.
type Table struct {
	items []int
	mask  uint64
	count int
}

// HashOf recomputes the hash for a previously-added item, for use when
// growing the table forces every live item to be re-inserted.
type HashOf func(item int) uint64

// Init resets the table to a fresh, empty state with minimum capacity.
func (t *Table) Init() {
	t.items = []int{Empty}
	t.mask = 0
	t.count = 0
}

// Clear empties every bucket without shrinking the backing array.
func (t *Table) Clear() {
	for i := range t.items {
		t.items[i] = Empty
	}
	t.count = 0
}

// Len returns the number of occupied buckets.
func (t *Table) Len() int {
	return t.count
}

func (t *Table) ensureInit() {
	if t.items == nil {
		t.Init()
	}
}

// Probe visits candidate buckets for a given hash in quadratic-probe
// order: h(k,i) = h + 0.5i + 0.5i^2 (mod capacity, a permutation of the
// bucket indices since capacity is a power of two).
type Probe struct {
	t       *Table
	hash    uint64
	i       uint64
	Index   int // current candidate bucket index
	Current int // current candidate bucket's value (Empty if unoccupied)
}

// NewProbe starts a probe sequence for the given hash.
func (t *Table) NewProbe(hash uint64) Probe {
	t.ensureInit()
	return Probe{t: t, hash: hash, i: 0}
}

// Advance moves to the next candidate bucket. It always succeeds: the
// 0.75 load factor ceiling guarantees an empty bucket exists before every
// slot has been visited.
func (p *Probe) Advance() bool {
	m := p.t.mask
	idx := (p.hash + (p.i+p.i*p.i)/2) & m
	p.Index = int(idx)
	p.Current = p.t.items[idx]
	p.i++
	return true
}

// NextEmpty returns the first empty bucket index for hash.
func (t *Table) NextEmpty(hash uint64) int {
	p := t.NewProbe(hash)
	for p.Advance() {
		if p.Current == Empty {
			return p.Index
		}
	}
	panic("htable: probe sequence exhausted without finding an empty bucket")
}

// Find walks the probe sequence for hash, calling eq(item) for each
// occupied candidate bucket. Returns the first item for which eq returns
// true, or (0, false) if the probe reaches an empty bucket first.
func (t *Table) Find(hash uint64, eq func(item int) bool) (int, bool) {
	if t.items == nil {
		return 0, false
	}
	p := t.NewProbe(hash)
	for p.Advance() {
		if p.Current == Empty {
			return 0, false
		}
		if eq(p.Current) {
			return p.Current, true
		}
	}
	return 0, false
}

// EnsureCapacity grows the table, if necessary, so that it can hold
// wantCount occupied buckets without exceeding the load factor ceiling.
// Growing rehashes every live item via hashOf (nil only permitted when
// the table is currently empty).
func (t *Table) EnsureCapacity(wantCount int, hashOf HashOf) error {
	t.ensureInit()
	cap := len(t.items)
	if wantCount*loadFactorDen <= cap*loadFactorNum {
		return nil
	}

	minSize := wantCount*loadFactorDen/loadFactorNum + 1
	newSize := 1
	for newSize < minSize {
		grown, err := growth.Next(newSize, newSize+1)
		if err != nil {
			return err
		}
		newSize = grown
	}
	// round up to a power of two, required for the quadratic-probe
	// permutation property
	p := 1
	for p < newSize {
		p *= 2
	}
	newSize = p

	return t.resize(newSize, hashOf)
}

func (t *Table) resize(newSize int, hashOf HashOf) error {
	old := t.items
	t.items = make([]int, newSize)
	for i := range t.items {
		t.items[i] = Empty
	}
	t.mask = uint64(newSize - 1)
	t.count = 0

	for _, v := range old {
		if v == Empty {
			continue
		}
		idx := t.NextEmpty(hashOf(v))
		t.items[idx] = v
		t.count++
	}
	return nil
}

// Add records item at the first empty bucket for hash. The caller must
// have already called EnsureCapacity for the new occupancy.
func (t *Table) Add(hash uint64, item int) {
	t.ensureInit()
	idx := t.NextEmpty(hash)
	t.items[idx] = item
	t.count++
}
