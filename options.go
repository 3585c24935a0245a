package fsindex

import (
	"github.com/mwantia/fsindex/log"
	"github.com/mwantia/fsindex/metrics"
)

type FileStoreOptions struct {
	Logger    *log.Logger
	Allocator IDAllocator
	Metrics   *metrics.Collector
}

type FileStoreOption func(*FileStoreOptions) error

func newDefaultFileStoreOptions() *FileStoreOptions {
	return &FileStoreOptions{
		Allocator: &monotonicAllocator{},
	}
}

// WithLogger replaces the default stdout logger.
func WithLogger(logger *log.Logger) FileStoreOption {
	return func(opts *FileStoreOptions) error {
		opts.Logger = logger
		return nil
	}
}

// WithAllocator injects an identifier allocator, mainly so tests can
// run against a deterministic ID sequence.
func WithAllocator(alloc IDAllocator) FileStoreOption {
	return func(opts *FileStoreOptions) error {
		opts.Allocator = alloc
		return nil
	}
}

// WithMetrics attaches a metrics collector to the store.
func WithMetrics(collector *metrics.Collector) FileStoreOption {
	return func(opts *FileStoreOptions) error {
		opts.Metrics = collector
		return nil
	}
}
