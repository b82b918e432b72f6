package emf

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/skdltmxn/emf-go/enums"
)

// maxHandle bounds the handle values tracked. The header stores the handle
// count in 16 bits, so larger values cannot name a real object.
const maxHandle = 0xFFFF

// handleTable maps live object handles to the record that created them.
// It is written only during the scan.
type handleTable struct {
	live   *bitset.BitSet
	owners map[uint32]*Record
}

func newHandleTable() *handleTable {
	return &handleTable{
		live:   bitset.New(256),
		owners: make(map[uint32]*Record),
	}
}

// create registers r as the owner of h, replacing any earlier owner. Stock
// and out-of-range handles are never stored.
func (t *handleTable) create(h uint32, r *Record) bool {
	if enums.IsStock(h) || h > maxHandle {
		return false
	}
	t.live.Set(uint(h))
	t.owners[h] = r
	return true
}

// lookup returns the creation record of a live handle.
func (t *handleTable) lookup(h uint32) (*Record, bool) {
	if enums.IsStock(h) || h > maxHandle || !t.live.Test(uint(h)) {
		return nil, false
	}
	return t.owners[h], true
}

// remove forgets h. A later reference resolves only after a new creation.
func (t *handleTable) remove(h uint32) {
	if enums.IsStock(h) || h > maxHandle {
		return
	}
	t.live.Clear(uint(h))
	delete(t.owners, h)
}

// count returns the number of live handles.
func (t *handleTable) count() uint {
	return t.live.Count()
}

// stateStack tracks the records that saved a graphic state.
type stateStack struct {
	saves []*Record
}

func (s *stateStack) push(r *Record) {
	s.saves = append(s.saves, r)
}

// restore resolves a restore index and pops every state above and including
// the one restored. A negative index counts back from the most recent save,
// so -1 is the top of the stack. A positive index is the 1-based position
// from the bottom. Zero and out-of-range indices resolve to nothing and
// leave the stack untouched.
func (s *stateStack) restore(rel int32) (*Record, bool) {
	var i int
	switch {
	case rel < 0:
		i = len(s.saves) + int(rel)
	case rel > 0:
		i = int(rel) - 1
	default:
		return nil, false
	}
	if i < 0 || i >= len(s.saves) {
		return nil, false
	}
	r := s.saves[i]
	s.saves = s.saves[:i]
	return r, true
}

func (s *stateStack) depth() int { return len(s.saves) }
