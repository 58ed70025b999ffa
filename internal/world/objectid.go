package world

import "sync/atomic"

// Kind selects an ID range.
type Kind uint8

const (
	KindPlayer Kind = iota + 1
	KindDragon
	KindProjectile
	KindFireball
	KindEmber
	KindBomb
	KindHeart
	KindWall

	kindCount
)

// kindShift places the kind in the top nibble of an ID.
//
// ID ranges (convention):
//
//	0x00000000 - 0x0FFFFFFF: Reserved (0 = invalid)
//	0x10000000 - 0x1FFFFFFF: Player
//	0x20000000 - 0x2FFFFFFF: Dragons
//	0x30000000 - 0x3FFFFFFF: Player blasts
//	0x40000000 - 0x4FFFFFFF: Fireballs
//	0x50000000 - 0x5FFFFFFF: Embers
//	0x60000000 - 0x6FFFFFFF: Bombs
//	0x70000000 - 0x7FFFFFFF: Hearts
//	0x80000000 - 0x8FFFFFFF: Temporary walls
const kindShift = 28

const idMask = 1<<kindShift - 1

// IDAllocator hands out unique entity IDs so renderers can match entities
// across frames. Each kind counts independently inside its own range.
type IDAllocator struct {
	next [kindCount]atomic.Uint32
}

// NewIDAllocator creates a new allocator.
func NewIDAllocator() *IDAllocator {
	return &IDAllocator{}
}

// Next returns the next ID for kind. The per-kind counter wraps inside its range.
func (a *IDAllocator) Next(k Kind) uint32 {
	if k == 0 || k >= kindCount {
		return 0
	}
	n := a.next[k].Add(1) & idMask
	if n == 0 {
		n = a.next[k].Add(1) & idMask
	}
	return uint32(k)<<kindShift | n
}

// KindOf extracts the kind of an ID produced by Next.
func KindOf(id uint32) Kind {
	return Kind(id >> kindShift)
}

// Reset restarts every counter.
func (a *IDAllocator) Reset() {
	for i := range a.next {
		a.next[i].Store(0)
	}
}
