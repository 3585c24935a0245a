package report

import (
	"testing"

	"github.com/google/uuid"
	"github.com/mwantia/fsindex/log"
)

func newTestHarness(t *testing.T) *Harness {
	t.Helper()
	return NewHarness(log.New("test", log.Error), 42, 5)
}

func TestHarness_Run(t *testing.T) {
	harness := newTestHarness(t)

	result, err := harness.Run(t.Context(), 500)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.TotalFiles != 500 {
		t.Errorf("expected 500 files, got %d", result.TotalFiles)
	}

	if result.IndexBytes <= 0 {
		t.Errorf("expected positive index footprint, got %d", result.IndexBytes)
	}

	if result.BytesPerFile <= 0 {
		t.Errorf("expected positive per-file footprint, got %f", result.BytesPerFile)
	}
}

func TestHarness_RunConcurrent(t *testing.T) {
	harness := newTestHarness(t)

	result, err := harness.RunConcurrent(t.Context(), 500, 4, 50)
	if err != nil {
		t.Fatalf("RunConcurrent failed: %v", err)
	}

	// Every worker should find .jpg files in a 500-file population
	if want := int64(4 * 50); result.Hits != want {
		t.Errorf("expected %d hits, got %d", want, result.Hits)
	}
}

func TestResultStore_RoundTrip(t *testing.T) {
	store, err := OpenResultStore(":memory:")
	if err != nil {
		t.Fatalf("OpenResultStore failed: %v", err)
	}
	defer store.Close()

	runID := uuid.NewString()
	ctx := t.Context()

	saved := &Result{
		Scale:        1000,
		TotalFiles:   1000,
		PopulateMs:   12,
		BaselineUs:   900,
		IndexedUs:    30,
		Speedup:      30.0,
		SizeRangeUs:  45,
		OwnerUs:      20,
		IndexBytes:   32000,
		BytesPerFile: 32.0,
	}

	if err := store.SaveResult(ctx, runID, saved); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	if err := store.SaveConcurrent(ctx, runID, &ConcurrentResult{
		Scale:        1000,
		Workers:      4,
		OpsPerWorker: 100,
		Hits:         400,
		ElapsedMs:    8,
		QPS:          50000,
	}); err != nil {
		t.Fatalf("SaveConcurrent failed: %v", err)
	}

	results, err := store.Results(ctx, runID)
	if err != nil {
		t.Fatalf("Results failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}

	if *results[0] != *saved {
		t.Errorf("round trip mismatch: saved %+v, loaded %+v", saved, results[0])
	}

	// Unknown run IDs yield an empty result set
	other, err := store.Results(ctx, uuid.NewString())
	if err != nil {
		t.Fatalf("Results for unknown run failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("unknown run returned %d results", len(other))
	}
}
