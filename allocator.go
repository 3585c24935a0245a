package fsindex

import "sync/atomic"

// IDAllocator hands out file identifiers. Implementations must return
// strictly increasing values and never reuse an ID, even after the file
// it was assigned to has been removed. Allocations are never rolled
// back; an ID consumed by a failed add stays consumed.
type IDAllocator interface {
	Next() int64
}

// monotonicAllocator is the default allocator, scoped to one store.
type monotonicAllocator struct {
	last atomic.Int64
}

func (a *monotonicAllocator) Next() int64 {
	return a.last.Add(1)
}
