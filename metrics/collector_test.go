package metrics

import (
	"testing"
	"time"
)

func TestCollector_ObserveAndGather(t *testing.T) {
	collector := NewCollector()

	collector.ObserveOp("add", 15*time.Microsecond)
	collector.ObserveOp("add", 20*time.Microsecond)
	collector.ObserveOp("remove", 5*time.Microsecond)
	collector.SetLiveFiles(7)
	collector.SetIndexBytes(1024)

	families, err := collector.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	byName := make(map[string]float64)
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				for _, label := range metric.GetLabel() {
					byName[family.GetName()+"/"+label.GetValue()] = metric.GetCounter().GetValue()
				}
			case metric.GetGauge() != nil:
				byName[family.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}

	if got := byName["fsindex_operations_total/add"]; got != 2 {
		t.Errorf("expected 2 add operations, got %f", got)
	}
	if got := byName["fsindex_operations_total/remove"]; got != 1 {
		t.Errorf("expected 1 remove operation, got %f", got)
	}
	if got := byName["fsindex_live_files"]; got != 7 {
		t.Errorf("expected 7 live files, got %f", got)
	}
	if got := byName["fsindex_index_memory_bytes"]; got != 1024 {
		t.Errorf("expected 1024 index bytes, got %f", got)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var collector *Collector

	collector.ObserveOp("add", time.Microsecond)
	collector.SetLiveFiles(1)
	collector.SetIndexBytes(1)

	families, err := collector.Gather()
	if err != nil {
		t.Fatalf("nil Gather errored: %v", err)
	}
	if families != nil {
		t.Errorf("nil Gather returned %v", families)
	}
}
