// Package picker selects puzzles from a candidate batch, preferring ids
// the corpus has not seen before.
package picker

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"sudoq/internal/fetch"
	"sudoq/internal/model"
)

var (
	// ErrNotFound means no candidate matches the selector.
	ErrNotFound = errors.New("puzzle id fragment not found")
	// ErrAmbiguousID means an id fragment matches more than one candidate.
	ErrAmbiguousID = errors.New("puzzle id fragment is ambiguous")
	// ErrIndexOutOfRange means an explicit index misses the batch.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInsufficient means the attempt budget ran out before enough
	// unique puzzles were collected.
	ErrInsufficient = errors.New("not enough unique puzzles")
)

// Options configures a single selection.
type Options struct {
	// IDFragment selects by case-insensitive substring match on ids.
	IDFragment string
	// Index selects by 1-based position; 0 means the first element.
	// Only consulted when HasIndex is set.
	Index    int
	HasIndex bool
	// Seed makes random selection reproducible when HasSeed is set.
	Seed    int64
	HasSeed bool
	// UsedIDs biases random selection away from already stored puzzles.
	UsedIDs map[string]bool
}

func (o Options) newRand() *rand.Rand {
	if o.HasSeed {
		return rand.New(rand.NewSource(o.Seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Pick selects one candidate per Options. Selector precedence: id
// fragment, then explicit index, then random draw from the fresh pool
// (falling back to the full batch once every candidate has been seen).
func Pick(candidates []model.Record, opts Options) (model.Record, int, error) {
	if len(candidates) == 0 {
		return model.Record{}, 0, fmt.Errorf("%w: empty batch", ErrNotFound)
	}

	if opts.IDFragment != "" {
		return pickByFragment(candidates, opts.IDFragment)
	}

	if opts.HasIndex {
		i := opts.Index
		if i != 0 {
			i--
		}
		if i < 0 || i >= len(candidates) {
			return model.Record{}, 0, fmt.Errorf("%w: %d (have %d puzzles)",
				ErrIndexOutOfRange, opts.Index, len(candidates))
		}
		return candidates[i], i, nil
	}

	pool := make([]int, 0, len(candidates))
	for i, rec := range candidates {
		if !opts.UsedIDs[rec.ID] {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		// Every candidate was seen before; keep making progress.
		for i := range candidates {
			pool = append(pool, i)
		}
	}

	i := pool[opts.newRand().Intn(len(pool))]
	return candidates[i], i, nil
}

func pickByFragment(candidates []model.Record, fragment string) (model.Record, int, error) {
	needle, err := model.NormalizeID(fragment)
	if err != nil {
		return model.Record{}, 0, err
	}
	needle = strings.ToLower(needle)

	var matches []int
	for i, rec := range candidates {
		if strings.Contains(strings.ToLower(rec.ID), needle) {
			matches = append(matches, i)
		}
	}

	switch {
	case len(matches) == 0:
		return model.Record{}, 0, fmt.Errorf("%w: %s", ErrNotFound, fragment)
	case len(matches) > 1:
		sample := matches
		if len(sample) > 5 {
			sample = sample[:5]
		}
		ids := make([]string, len(sample))
		for i, m := range sample {
			ids[i] = candidates[m].ID
		}
		extra := ""
		if len(matches) > 5 {
			extra = fmt.Sprintf(" (+%d more)", len(matches)-5)
		}
		return model.Record{}, 0, fmt.Errorf("%w (%d matches): %s%s",
			ErrAmbiguousID, len(matches), strings.Join(ids, ", "), extra)
	}
	return candidates[matches[0]], matches[0], nil
}

// Picked is one selection from a batch.
type Picked struct {
	Record model.Record
	Index  int
	Total  int
}

// PickMany collects count unique puzzles by re-fetching candidate batches
// until satisfied. Each fresh batch is shuffled before taking what is
// still needed; ids already stored or already chosen this run are skipped.
// The attempt budget max(5, count*4) bounds upstream work even when
// batches overlap heavily.
func PickMany(ctx context.Context, fetchBatch fetch.Fetcher, count int, opts Options) ([]Picked, error) {
	if count < 1 {
		return nil, fmt.Errorf("count must be >= 1, got %d", count)
	}

	rng := opts.newRand()
	chosen := make(map[string]bool)
	var selected []Picked

	maxAttempts := count * 4
	if maxAttempts < 5 {
		maxAttempts = 5
	}

	attempts := 0
	for len(selected) < count && attempts < maxAttempts {
		attempts++
		batch, err := fetchBatch(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch batch: %w", err)
		}

		var fresh []Picked
		for i, rec := range batch {
			if opts.UsedIDs[rec.ID] || chosen[rec.ID] {
				continue
			}
			fresh = append(fresh, Picked{Record: rec, Index: i, Total: len(batch)})
		}
		if len(fresh) == 0 {
			continue
		}

		rng.Shuffle(len(fresh), func(a, b int) {
			fresh[a], fresh[b] = fresh[b], fresh[a]
		})

		needed := count - len(selected)
		if needed > len(fresh) {
			needed = len(fresh)
		}
		for _, p := range fresh[:needed] {
			chosen[p.Record.ID] = true
			selected = append(selected, p)
		}
	}

	if len(selected) < count {
		return nil, fmt.Errorf("%w: got %d of %d after %d batch fetches",
			ErrInsufficient, len(selected), count, attempts)
	}
	return selected, nil
}
