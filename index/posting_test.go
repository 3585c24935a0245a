package index

import (
	"slices"
	"testing"
)

func TestPostingList_InsertKeepsOrder(t *testing.T) {
	pl := &PostingList{}

	for _, id := range []int64{42, 7, 19, 3, 100, 7, 42} {
		pl.Insert(id)
	}

	got := pl.IDs()
	want := []int64{3, 7, 19, 42, 100}

	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if pl.Len() != 5 {
		t.Errorf("expected length 5, got %d", pl.Len())
	}
}

func TestPostingList_InsertIdempotent(t *testing.T) {
	pl := &PostingList{}

	pl.Insert(10)
	pl.Insert(10)
	pl.Insert(10)

	if pl.Len() != 1 {
		t.Errorf("expected single entry, got %d", pl.Len())
	}
}

func TestPostingList_Remove(t *testing.T) {
	pl := &PostingList{}

	for _, id := range []int64{1, 2, 3, 4, 5} {
		pl.Insert(id)
	}

	pl.Remove(3)
	pl.Remove(1)
	// Removing an absent ID must be a no-op
	pl.Remove(99)

	got := pl.IDs()
	want := []int64{2, 4, 5}

	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if pl.Contains(3) {
		t.Error("removed ID still reported as present")
	}

	if !pl.Contains(4) {
		t.Error("remaining ID not reported as present")
	}
}

func TestPostingList_Empty(t *testing.T) {
	pl := &PostingList{}

	if !pl.Empty() {
		t.Error("fresh list not empty")
	}

	pl.Insert(1)
	if pl.Empty() {
		t.Error("list with entry reported empty")
	}

	pl.Remove(1)
	if !pl.Empty() {
		t.Error("drained list not empty")
	}
}

func TestPostingList_MemoryFootprint(t *testing.T) {
	pl := &PostingList{}

	for i := int64(1); i <= 16; i++ {
		pl.Insert(i)
	}

	if got := pl.MemoryFootprint(); got != 16*8 {
		t.Errorf("expected footprint %d, got %d", 16*8, got)
	}
}

func TestPostingList_IDsReturnsCopy(t *testing.T) {
	pl := &PostingList{}
	pl.Insert(1)
	pl.Insert(2)

	ids := pl.IDs()
	ids[0] = 99

	if got := pl.IDs(); got[0] != 1 {
		t.Errorf("internal state mutated through returned slice: %v", got)
	}
}
