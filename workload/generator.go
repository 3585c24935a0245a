// Package workload generates synthetic file populations for exercising
// and benchmarking the store.
package workload

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/mwantia/fsindex"
	"golang.org/x/sync/errgroup"
)

// FileSpec describes one file to be added to a store.
type FileSpec struct {
	Path      string
	Name      string
	Extension string
	Size      int64
	Owner     string
	Created   string
}

// Generator produces pseudo-random file specs drawn from fixed pools of
// extensions, owners, and base paths. The same seed always yields the
// same sequence, so benchmark runs stay reproducible.
type Generator struct {
	rng *rand.Rand

	extensions []string
	owners     []string
	basePaths  []string

	minSize int64
	maxSize int64
}

// NewGenerator creates a generator seeded for a reproducible sequence.
func NewGenerator(seed uint64) *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(seed, seed)),

		extensions: []string{".jpg", ".png", ".pdf", ".txt", ".doc", ".mp4", ".mp3"},
		owners:     []string{"user1", "user2", "user3", "admin", "guest"},
		basePaths:  []string{"/home/user1", "/home/user2", "/documents", "/pictures", "/videos"},

		minSize: 1 << 10,  // 1 KiB
		maxSize: 10 << 20, // 10 MiB
	}
}

// Next produces the spec for the i-th generated file.
func (g *Generator) Next(i int) FileSpec {
	extension := g.extensions[g.rng.IntN(len(g.extensions))]

	return FileSpec{
		Path:      g.basePaths[g.rng.IntN(len(g.basePaths))],
		Name:      fmt.Sprintf("file%d%s", i, extension),
		Extension: extension,
		Size:      g.minSize + g.rng.Int64N(g.maxSize-g.minSize+1),
		Owner:     g.owners[g.rng.IntN(len(g.owners))],
		Created:   fmt.Sprintf("2024-%d-%d", i%12+1, i%28+1),
	}
}

// Populate adds count generated files to the store.
func (g *Generator) Populate(ctx context.Context, store *fsindex.FileStore, count int) error {
	for i := range count {
		spec := g.Next(i)

		if _, err := store.AddFile(ctx, spec.Path, spec.Name, spec.Extension, spec.Size, spec.Owner, spec.Created); err != nil {
			return fmt.Errorf("failed to populate store at file %d: %w", i, err)
		}
	}

	return nil
}

// PopulateConcurrent adds count generated files using the given number
// of workers. Specs are drawn up front so the generated population
// stays identical to a serial Populate with the same seed; only the
// insertion interleaving differs.
func (g *Generator) PopulateConcurrent(ctx context.Context, store *fsindex.FileStore, count, workers int) error {
	if workers < 1 {
		workers = 1
	}

	specs := make([]FileSpec, count)
	for i := range count {
		specs[i] = g.Next(i)
	}

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	for _, spec := range specs {
		grp.Go(func() error {
			_, err := store.AddFile(ctx, spec.Path, spec.Name, spec.Extension, spec.Size, spec.Owner, spec.Created)
			return err
		})
	}

	return grp.Wait()
}
