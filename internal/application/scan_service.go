package application

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/t4sanity/t4sanity/internal/domain"
)

// ScanService runs sanity checks over every dataset directory found under a
// parent directory. Dataset versions share no mutable state, so they are
// checked on a worker pool bounded by the CPU count; report ordering inside
// a result and the final result ordering stay deterministic regardless.
type ScanService struct {
	sanity *SanityService
}

func NewScanService(sanity *SanityService) *ScanService {
	return &ScanService{sanity: sanity}
}

// Scan checks every dataset under dbParent and returns the results sorted by
// dataset id, then version. Cancelling ctx aborts the remaining queue while
// already-completed results are kept.
func (s *ScanService) Scan(ctx context.Context, dbParent string, opts RunOptions) ([]domain.SanityResult, error) {
	roots, err := datasetRoots(dbParent)
	if err != nil {
		return nil, err
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("no dataset directories found under %s", dbParent)
	}

	results := make([]domain.SanityResult, len(roots))
	done := make([]bool, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, root := range roots {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			results[i] = s.sanity.CheckDataset(root, opts)
			done[i] = true
			return nil
		})
	}
	runErr := g.Wait()

	completed := results[:0]
	for i, r := range results {
		if done[i] {
			completed = append(completed, r)
		}
	}
	domain.SortResults(completed)

	if runErr != nil && len(completed) == 0 {
		return nil, runErr
	}
	return completed, nil
}

// datasetRoots lists the dataset directories under dbParent in name order.
func datasetRoots(dbParent string) ([]string, error) {
	entries, err := os.ReadDir(dbParent)
	if err != nil {
		return nil, fmt.Errorf("reading scan root: %w", err)
	}
	var roots []string
	for _, entry := range entries {
		if entry.IsDir() {
			roots = append(roots, filepath.Join(dbParent, entry.Name()))
		}
	}
	sort.Strings(roots)
	return roots, nil
}
