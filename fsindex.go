// Package fsindex implements an in-memory file metadata store over a
// simulated hierarchical namespace, paired with secondary attribute
// indexes so queries by extension, owner, size range, or creation time
// run without traversing the tree.
package fsindex

import (
	"sync"

	"github.com/mwantia/fsindex/data"
	"github.com/mwantia/fsindex/index"
	"github.com/mwantia/fsindex/log"
	"github.com/mwantia/fsindex/metrics"
	"github.com/mwantia/fsindex/namespace"
)

// FileStore coordinates the namespace tree, the flat record table, and
// the secondary index set, and guarantees their joint consistency.
//
// Two locks protect the store. The structural lock below guards the
// tree and the record table together, since the two are always mutated
// as one unit. The index set carries its own reader/writer lock.
// Writers acquire structural before index, never the other way around;
// this fixed ordering is what rules out deadlock between the two.
type FileStore struct {
	// Structural lock: namespace tree + flat record table
	mu sync.RWMutex

	log     *log.Logger
	tree    *namespace.Tree
	records map[int64]*data.FileRecord
	indexes *index.Set
	alloc   IDAllocator
	metrics *metrics.Collector
}

// NewFileStore creates an empty store.
func NewFileStore(opts ...FileStoreOption) (*FileStore, error) {
	options := newDefaultFileStoreOptions()
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}

	logger := options.Logger
	if logger == nil {
		logger = log.New("fsindex", log.Info)
	}

	return &FileStore{
		log:     logger,
		tree:    namespace.NewTree(),
		records: make(map[int64]*data.FileRecord),
		indexes: index.NewSet(),
		alloc:   options.Allocator,
		metrics: options.Metrics,
	}, nil
}
