package handleset

import "unsafe"

// groupEntries is the number of element slots per group (GROUP_ENTRIES).
const groupEntries = 7

// statusFullBit is the sticky was-ever-full flag, bit 7 of the status byte.
const statusFullBit = 1 << 7

// presenceMask isolates the 7 occupancy bits of the status byte from the
// was-full bit.
const presenceMask = 0x7F

// group is a fixed-size record sized to one L1 cache line on a 64-bit
// system: an 8-byte header (1 status byte + 7 hint bytes) followed by 7
// pointer-width entries. Packing status and hints into one 8-byte word lets
// hint matching do a single aligned load and a branch-free byte compare
// instead of 7 separate byte comparisons.
//
// header[0] is the status byte: bits 0..6 are presence bits for the 7
// slots (1 = occupied), bit 7 is the was-full sticky flag. header[1+i] is
// the cached hint byte for slot i, meaningful only while that slot's
// presence bit is set.
type group[E any] struct {
	header  [8]byte
	entries [groupEntries]E
}

func (g *group[E]) status() uint8 {
	return g.header[0]
}

func (g *group[E]) setStatus(s uint8) {
	g.header[0] = s
}

// headerWord reads the group's header as a single little-endian uint64: the
// status byte in the low byte, hint bytes in the remaining 7.
func (g *group[E]) headerWord() uint64 {
	return *(*uint64)(unsafe.Pointer(&g.header))
}

func (g *group[E]) setHint(i int, h uint8) {
	g.header[1+i] = h
}

// wasFull reports the sticky was-ever-full bit. Once set it is only ever
// cleared by rehashing the group out of existence.
func (g *group[E]) wasFull() bool {
	return g.status()&statusFullBit != 0
}

// isFull reports whether all 7 presence bits are currently set.
func (g *group[E]) isFull() bool {
	return g.status()&presenceMask == presenceMask
}

func (g *group[E]) occupied(i int) bool {
	return g.status()&(1<<uint(i)) != 0
}

// insertAt installs e at slot i. Precondition: slot i is empty. If the
// group becomes full as a result, the was-full bit is set -- this is the
// only place that bit is ever set.
func (g *group[E]) insertAt(i int, e E, hint uint8) {
	g.entries[i] = e
	g.setHint(i, hint)

	s := g.status() | (1 << uint(i))
	if s&presenceMask == presenceMask {
		s |= statusFullBit
	}
	g.setStatus(s)
}

// overwriteAt replaces the entry at an already-occupied slot without
// touching its cached hint: the hash of an element the caller considers
// equal is contractually unchanged.
func (g *group[E]) overwriteAt(i int, e E) {
	g.entries[i] = e
}

// eraseAt clears slot i and returns its prior entry. It does not touch the
// was-full bit -- this is what gives the table its tombstone-free erase: a
// group that was once saturated keeps passing probes on to the next group
// even after a deletion leaves it with empty slots again.
func (g *group[E]) eraseAt(i int) E {
	prior := g.entries[i]
	var zero E
	g.entries[i] = zero
	g.setHint(i, 0)
	g.setStatus(g.status() &^ (1 << uint(i)))
	return prior
}

// hintMatch returns a bitset with slot i set for every occupied slot whose
// cached hint equals hint. Implemented as a branch-free SWAR byte compare
// over the header word, then masked by the occupancy bits -- any
// byte-wise equivalent is fine as long as non-occupied lanes are masked
// off, since an empty slot's hint byte is stale, not a sentinel.
func (g *group[E]) hintMatch(hint uint8) bitset {
	eq := matchByte(g.headerWord(), hint) >> 8
	return bitset(eq) & presenceLanes(g.status())
}

// emptySlots returns a bitset with slot i set for every unoccupied slot.
func (g *group[E]) emptySlots() bitset {
	return ^presenceLanes(g.status()) & allLanes
}
