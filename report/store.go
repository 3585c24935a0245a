package report

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ResultStore persists benchmark results in an embedded SQLite
// database, so runs can be compared over time. This covers benchmark
// output only; the file metadata store itself stays in memory.
type ResultStore struct {
	db *sql.DB
}

// OpenResultStore opens or creates the results database at path.
// ":memory:" is accepted for throwaway runs.
func OpenResultStore(path string) (*ResultStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	rs := &ResultStore{db: db}
	if err := rs.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return rs, nil
}

func (rs *ResultStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS bench_results (
		run_id TEXT NOT NULL,
		recorded_at INTEGER NOT NULL,
		scale INTEGER NOT NULL,
		total_files INTEGER NOT NULL,
		populate_ms INTEGER NOT NULL,
		baseline_us INTEGER NOT NULL,
		indexed_us INTEGER NOT NULL,
		speedup REAL NOT NULL,
		size_range_us INTEGER NOT NULL,
		owner_us INTEGER NOT NULL,
		index_bytes INTEGER NOT NULL,
		bytes_per_file REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_bench_results_run ON bench_results(run_id);

	CREATE TABLE IF NOT EXISTS bench_concurrent (
		run_id TEXT NOT NULL,
		recorded_at INTEGER NOT NULL,
		scale INTEGER NOT NULL,
		workers INTEGER NOT NULL,
		ops_per_worker INTEGER NOT NULL,
		hits INTEGER NOT NULL,
		elapsed_ms INTEGER NOT NULL,
		qps REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_bench_concurrent_run ON bench_concurrent(run_id);
	`

	_, err := rs.db.Exec(schema)
	return err
}

// SaveResult stores one benchmark pass under the given run ID.
func (rs *ResultStore) SaveResult(ctx context.Context, runID string, result *Result) error {
	_, err := rs.db.ExecContext(ctx, `
		INSERT INTO bench_results (run_id, recorded_at, scale, total_files, populate_ms,
			baseline_us, indexed_us, speedup, size_range_us, owner_us, index_bytes, bytes_per_file)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, time.Now().Unix(), result.Scale, result.TotalFiles, result.PopulateMs,
		result.BaselineUs, result.IndexedUs, result.Speedup,
		result.SizeRangeUs, result.OwnerUs, result.IndexBytes, result.BytesPerFile)

	return err
}

// SaveConcurrent stores one concurrent phase under the given run ID.
func (rs *ResultStore) SaveConcurrent(ctx context.Context, runID string, result *ConcurrentResult) error {
	_, err := rs.db.ExecContext(ctx, `
		INSERT INTO bench_concurrent (run_id, recorded_at, scale, workers, ops_per_worker, hits, elapsed_ms, qps)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, runID, time.Now().Unix(), result.Scale, result.Workers,
		result.OpsPerWorker, result.Hits, result.ElapsedMs, result.QPS)

	return err
}

// Results loads every benchmark pass recorded under the given run ID.
func (rs *ResultStore) Results(ctx context.Context, runID string) ([]*Result, error) {
	rows, err := rs.db.QueryContext(ctx, `
		SELECT scale, total_files, populate_ms, baseline_us, indexed_us,
			speedup, size_range_us, owner_us, index_bytes, bytes_per_file
		FROM bench_results WHERE run_id = ? ORDER BY scale
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*Result
	for rows.Next() {
		result := &Result{}
		if err := rows.Scan(&result.Scale, &result.TotalFiles, &result.PopulateMs,
			&result.BaselineUs, &result.IndexedUs, &result.Speedup,
			&result.SizeRangeUs, &result.OwnerUs, &result.IndexBytes, &result.BytesPerFile); err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, rows.Err()
}

// Close releases the database handle.
func (rs *ResultStore) Close() error {
	return rs.db.Close()
}
