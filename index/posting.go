package index

import "slices"

// PostingList holds the ordered set of file IDs sharing one attribute value.
//
// IDs are stored strictly increasing in a dense slice. Binary search keeps
// membership checks at O(log n) while insert/remove pay a linear shift;
// the flat layout costs one word per entry, which beats a hash set for
// footprint and makes ordered range merges trivial.
type PostingList struct {
	ids []int64
}

// Insert adds id to the list, keeping it sorted.
// Inserting an ID that is already present is a no-op.
func (pl *PostingList) Insert(id int64) {
	i, found := slices.BinarySearch(pl.ids, id)
	if found {
		return
	}

	pl.ids = slices.Insert(pl.ids, i, id)
}

// Remove deletes id from the list.
// Removing an ID that is not present is a no-op.
func (pl *PostingList) Remove(id int64) {
	i, found := slices.BinarySearch(pl.ids, id)
	if !found {
		return
	}

	pl.ids = slices.Delete(pl.ids, i, i+1)
}

// Contains reports whether id is present.
func (pl *PostingList) Contains(id int64) bool {
	_, found := slices.BinarySearch(pl.ids, id)
	return found
}

// IDs returns a copy of the ordered contents.
func (pl *PostingList) IDs() []int64 {
	return slices.Clone(pl.ids)
}

// Len returns the number of IDs in the list.
func (pl *PostingList) Len() int {
	return len(pl.ids)
}

// Empty returns true when the list holds no IDs.
func (pl *PostingList) Empty() bool {
	return len(pl.ids) == 0
}

// MemoryFootprint estimates the payload size in bytes.
// Only used for reporting, never for correctness.
func (pl *PostingList) MemoryFootprint() int64 {
	return int64(len(pl.ids)) * 8
}
