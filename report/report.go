// Package report measures the store's query performance, comparing the
// full-traversal baseline against the indexed path, and records the
// results of each benchmark run.
package report

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mwantia/fsindex"
	"github.com/mwantia/fsindex/log"
	"github.com/mwantia/fsindex/metrics"
	"github.com/mwantia/fsindex/workload"
)

// Result captures one benchmark pass at a single population scale.
type Result struct {
	Scale        int
	TotalFiles   int
	PopulateMs   int64
	BaselineUs   int64
	IndexedUs    int64
	Speedup      float64
	SizeRangeUs  int64
	OwnerUs      int64
	IndexBytes   int64
	BytesPerFile float64
}

// ConcurrentResult captures the concurrent query phase.
type ConcurrentResult struct {
	Scale        int
	Workers      int
	OpsPerWorker int
	Hits         int64
	ElapsedMs    int64
	QPS          float64
}

// Harness drives benchmark passes against freshly built stores.
type Harness struct {
	log        *log.Logger
	seed       uint64
	queryCount int
}

// NewHarness creates a harness. queryCount is the number of repetitions
// each query benchmark averages over.
func NewHarness(logger *log.Logger, seed uint64, queryCount int) *Harness {
	if queryCount < 1 {
		queryCount = 100
	}

	return &Harness{
		log:        logger.Named("report"),
		seed:       seed,
		queryCount: queryCount,
	}
}

// Run populates a fresh store with scale files and measures baseline
// versus indexed extension queries, a size range query, an owner query,
// and the index memory footprint.
func (h *Harness) Run(ctx context.Context, scale int) (*Result, error) {
	collector := metrics.NewCollector()

	store, err := fsindex.NewFileStore(
		fsindex.WithLogger(h.log.Named("store")),
		fsindex.WithMetrics(collector),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build store: %w", err)
	}

	populateStart := time.Now()
	if err := workload.NewGenerator(h.seed).Populate(ctx, store, scale); err != nil {
		return nil, fmt.Errorf("failed to populate %d files: %w", scale, err)
	}
	populateElapsed := time.Since(populateStart)

	h.log.Info("populated %d files in %d ms", scale, populateElapsed.Milliseconds())

	baseline := h.measure(func() {
		store.QueryByExtension(ctx, ".jpg")
	})
	indexed := h.measure(func() {
		store.QueryByExtensionIndexed(ctx, ".jpg")
	})
	sizeRange := h.measure(func() {
		store.QueryBySizeRangeIndexed(ctx, 100_000, 1_000_000)
	})
	owner := h.measure(func() {
		store.QueryByOwnerIndexed(ctx, "user1")
	})

	result := &Result{
		Scale:       scale,
		TotalFiles:  store.TotalFiles(),
		PopulateMs:  populateElapsed.Milliseconds(),
		BaselineUs:  baseline.Microseconds(),
		IndexedUs:   indexed.Microseconds(),
		SizeRangeUs: sizeRange.Microseconds(),
		OwnerUs:     owner.Microseconds(),
		IndexBytes:  store.IndexMemoryFootprint(),
	}

	if result.IndexedUs > 0 {
		result.Speedup = float64(result.BaselineUs) / float64(result.IndexedUs)
	}
	if result.TotalFiles > 0 {
		result.BytesPerFile = float64(result.IndexBytes) / float64(result.TotalFiles)
	}

	h.log.Info("extension query x%d: baseline %d us, indexed %d us (%.2fx)",
		h.queryCount, result.BaselineUs, result.IndexedUs, result.Speedup)
	h.log.Info("size range %d us, owner %d us, index memory %d bytes (%.1f per file)",
		result.SizeRangeUs, result.OwnerUs, result.IndexBytes, result.BytesPerFile)

	h.logOperationCounts(collector)

	return result, nil
}

// RunConcurrent populates a fresh store and fires workers goroutines,
// each issuing opsPerWorker indexed queries, reporting aggregate QPS.
func (h *Harness) RunConcurrent(ctx context.Context, scale, workers, opsPerWorker int) (*ConcurrentResult, error) {
	store, err := fsindex.NewFileStore(fsindex.WithLogger(h.log.Named("store")))
	if err != nil {
		return nil, fmt.Errorf("failed to build store: %w", err)
	}

	if err := workload.NewGenerator(h.seed).Populate(ctx, store, scale); err != nil {
		return nil, fmt.Errorf("failed to populate %d files: %w", scale, err)
	}

	var hits atomic.Int64
	var wg sync.WaitGroup

	start := time.Now()
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for range opsPerWorker {
				if records := store.QueryByExtensionIndexed(ctx, ".jpg"); len(records) > 0 {
					hits.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	result := &ConcurrentResult{
		Scale:        scale,
		Workers:      workers,
		OpsPerWorker: opsPerWorker,
		Hits:         hits.Load(),
		ElapsedMs:    elapsed.Milliseconds(),
	}

	if seconds := elapsed.Seconds(); seconds > 0 {
		result.QPS = float64(result.Hits) / seconds
	}

	h.log.Info("concurrent phase: %d workers x %d ops in %d ms (%.0f qps)",
		workers, opsPerWorker, result.ElapsedMs, result.QPS)

	return result, nil
}

// measure times queryCount repetitions of fn and returns the total.
func (h *Harness) measure(fn func()) time.Duration {
	start := time.Now()
	for range h.queryCount {
		fn()
	}

	return time.Since(start)
}

func (h *Harness) logOperationCounts(collector *metrics.Collector) {
	families, err := collector.Gather()
	if err != nil {
		h.log.Warn("failed to gather metrics: %v", err)
		return
	}

	for _, family := range families {
		if family.GetName() != "fsindex_operations_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				h.log.Debug("op %s: %.0f", label.GetValue(), metric.GetCounter().GetValue())
			}
		}
	}
}
