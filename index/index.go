// Package index maintains the secondary attribute indexes for the store.
// Each of the four dimensions (extension, size, owner, creation time) maps
// an attribute value to the posting list of file IDs carrying that value.
package index

import (
	"slices"
	"sync"

	"github.com/mwantia/fsindex/data"
	"github.com/tidwall/btree"
)

// Set bundles the four attribute indexes behind a single reader/writer lock.
//
// The size index uses a B-tree so range queries can walk keys in order;
// the remaining dimensions are exact-match lookups and stay plain maps.
// Every mutation appears atomic to concurrent readers of any dimension.
type Set struct {
	mu sync.RWMutex

	extensions map[string]*PostingList
	owners     map[string]*PostingList
	created    map[string]*PostingList

	// Ordered size → posting list mapping for range scans
	sizes *btree.Map[int64, *PostingList]
}

// NewSet creates an empty index set.
func NewSet() *Set {
	return &Set{
		extensions: make(map[string]*PostingList),
		owners:     make(map[string]*PostingList),
		created:    make(map[string]*PostingList),
		sizes:      btree.NewMap[int64, *PostingList](0),
	}
}

// Register inserts the record's ID into all four dimension indexes,
// creating attribute entries on first use.
func (s *Set) Register(rec *data.FileRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	insertMap(s.extensions, rec.Extension, rec.ID)
	insertMap(s.owners, rec.Owner, rec.ID)
	insertMap(s.created, rec.Created, rec.ID)

	list, exists := s.sizes.Get(rec.Size)
	if !exists {
		list = &PostingList{}
		s.sizes.Set(rec.Size, list)
	}
	list.Insert(rec.ID)
}

// Deregister removes the record's ID from all four dimension indexes.
// Attribute entries whose posting list empties are dropped entirely so
// index memory stays bounded by the set of live attribute values.
func (s *Set) Deregister(rec *data.FileRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removeMap(s.extensions, rec.Extension, rec.ID)
	removeMap(s.owners, rec.Owner, rec.ID)
	removeMap(s.created, rec.Created, rec.ID)

	if list, exists := s.sizes.Get(rec.Size); exists {
		list.Remove(rec.ID)
		if list.Empty() {
			s.sizes.Delete(rec.Size)
		}
	}
}

// QueryExtension returns the ordered IDs registered under the extension.
// Unknown values yield an empty result, never an error.
func (s *Set) QueryExtension(ext string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return queryMap(s.extensions, ext)
}

// QueryOwner returns the ordered IDs registered under the owner.
func (s *Set) QueryOwner(owner string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return queryMap(s.owners, owner)
}

// QueryCreated returns the ordered IDs registered under the creation time token.
func (s *Set) QueryCreated(created string) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return queryMap(s.created, created)
}

// QuerySizeRange returns the IDs of all files whose size lies in
// [minSize, maxSize], both bounds inclusive.
//
// The scan spans multiple size keys, so the concatenation has to be
// sorted and deduplicated before it is returned as one sequence.
func (s *Set) QuerySizeRange(minSize, maxSize int64) []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []int64
	s.sizes.Ascend(minSize, func(size int64, list *PostingList) bool {
		if size > maxSize {
			return false
		}

		result = append(result, list.ids...)
		return true
	})

	slices.Sort(result)
	return slices.Compact(result)
}

// MemoryFootprint sums the payload estimates of every posting list
// across all four dimensions.
func (s *Set) MemoryFootprint() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, list := range s.extensions {
		total += list.MemoryFootprint()
	}
	for _, list := range s.owners {
		total += list.MemoryFootprint()
	}
	for _, list := range s.created {
		total += list.MemoryFootprint()
	}
	s.sizes.Scan(func(_ int64, list *PostingList) bool {
		total += list.MemoryFootprint()
		return true
	})

	return total
}

func insertMap(idx map[string]*PostingList, key string, id int64) {
	list, exists := idx[key]
	if !exists {
		list = &PostingList{}
		idx[key] = list
	}

	list.Insert(id)
}

func removeMap(idx map[string]*PostingList, key string, id int64) {
	list, exists := idx[key]
	if !exists {
		return
	}

	list.Remove(id)
	if list.Empty() {
		delete(idx, key)
	}
}

func queryMap(idx map[string]*PostingList, key string) []int64 {
	if list, exists := idx[key]; exists {
		return list.IDs()
	}

	return nil
}
