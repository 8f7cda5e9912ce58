// Package cache implements the two-segment LRU buffer cache (LRU-2Q): a
// probationary segment L for one-shot traffic and a protected segment R for
// re-accessed sectors, so a scan of L never evicts hot sectors resident in R.
package cache

import "container/list"

// Buffer represents one resident cache entry. Equality is by sector
// identity: two buffers for the same sector never coexist.
type Buffer struct {
	Sector int
}

// LRU2Q is the two-segment LRU cache over a fixed-capacity buffer pool.
type LRU2Q struct {
	totalBuffers    int
	maxRightSegment int

	left  *list.List // probationary segment, front = MRU
	right *list.List // protected segment, front = MRU

	index map[int]*list.Element // sector -> element in left or right
	inRight map[int]bool        // membership side, keyed by sector
}

// New constructs an empty LRU2Q. maxRightSegment must be < totalBuffers.
func New(totalBuffers, maxRightSegment int) *LRU2Q {
	return &LRU2Q{
		totalBuffers:    totalBuffers,
		maxRightSegment: maxRightSegment,
		left:            list.New(),
		right:           list.New(),
		index:           make(map[int]*list.Element, totalBuffers),
		inRight:         make(map[int]bool, totalBuffers),
	}
}

// Access implements the hit/miss semantics of §4.2.
//
// Hit: the buffer is removed from whichever segment holds it and promoted to
// the front of R via pushRight.
//
// Miss: if there is free capacity, a fresh buffer is allocated. Otherwise the
// tail of L is evicted; if L is empty, the tail of R is evicted instead (the
// documented fallback — L-first eviction must still make room even though it
// means a "protected" buffer can be displaced). The new buffer is inserted at
// the front of L.
func (c *LRU2Q) Access(sector int) (buf *Buffer, miss bool) {
	if elem, ok := c.index[sector]; ok {
		buf = elem.Value.(*Buffer)
		if c.inRight[sector] {
			c.right.Remove(elem)
		} else {
			c.left.Remove(elem)
		}
		delete(c.index, sector)
		delete(c.inRight, sector)
		c.pushRight(buf)
		return buf, false
	}

	if c.left.Len()+c.right.Len() >= c.totalBuffers {
		var evicted *list.Element
		if c.left.Len() == 0 {
			evicted = c.right.Back()
			c.right.Remove(evicted)
		} else {
			evicted = c.left.Back()
			c.left.Remove(evicted)
		}
		evictedBuf := evicted.Value.(*Buffer)
		delete(c.index, evictedBuf.Sector)
		delete(c.inRight, evictedBuf.Sector)
	}

	buf = &Buffer{Sector: sector}
	elem := c.left.PushFront(buf)
	c.index[sector] = elem
	return buf, true
}

// pushRight pushes buf to the front of R, demoting R's current tail to the
// front of L first if R is already at capacity. Demotion never evicts.
func (c *LRU2Q) pushRight(buf *Buffer) {
	if c.right.Len() >= c.maxRightSegment {
		demoted := c.right.Back()
		c.right.Remove(demoted)
		demotedBuf := demoted.Value.(*Buffer)
		elem := c.left.PushFront(demotedBuf)
		c.index[demotedBuf.Sector] = elem
		delete(c.inRight, demotedBuf.Sector)
	}

	elem := c.right.PushFront(buf)
	c.index[buf.Sector] = elem
	c.inRight[buf.Sector] = true
}

// LeftLen returns the current size of the probationary segment.
func (c *LRU2Q) LeftLen() int { return c.left.Len() }

// RightLen returns the current size of the protected segment.
func (c *LRU2Q) RightLen() int { return c.right.Len() }

// LeftSectors returns the sectors in L, front (MRU) first.
func (c *LRU2Q) LeftSectors() []int { return sectorsOf(c.left) }

// RightSectors returns the sectors in R, front (MRU) first.
func (c *LRU2Q) RightSectors() []int { return sectorsOf(c.right) }

func sectorsOf(l *list.List) []int {
	out := make([]int, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*Buffer).Sector)
	}
	return out
}
