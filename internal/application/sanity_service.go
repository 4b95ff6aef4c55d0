package application

import (
	"path/filepath"

	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/sanity"
)

// RunOptions carries the per-run knobs resolved from flags and config.
type RunOptions struct {
	Excludes []string
	Revision int // 0 selects the latest version directory
	Strict   bool
	Fix      bool
}

// SanityService runs the full check pipeline for one dataset version:
// resolve version -> load snapshot -> resolve rule set -> run engine.
type SanityService struct {
	loader   domain.SnapshotLoader
	writer   domain.TableWriter
	git      domain.GitInfo
	registry *sanity.Registry
}

func NewSanityService(
	loader domain.SnapshotLoader,
	writer domain.TableWriter,
	git domain.GitInfo,
	registry *sanity.Registry,
) *SanityService {
	return &SanityService{
		loader:   loader,
		writer:   writer,
		git:      git,
		registry: registry,
	}
}

// Registry exposes the rule catalog backing this service.
func (s *SanityService) Registry() *sanity.Registry { return s.registry }

// CheckDataset runs every active rule against one dataset root. Load
// failures never escape: they surface as a TIV failure inside the result.
func (s *SanityService) CheckDataset(dbRoot string, opts RunOptions) domain.SanityResult {
	datasetID := filepath.Base(dbRoot)

	dataRoot, version, resolveErr := s.loader.Resolve(dbRoot, opts.Revision)
	versioned := resolveErr == nil && version > 0
	if resolveErr != nil {
		dataRoot = dbRoot
	}

	snap, loadErr := s.loader.Load(dataRoot)
	if resolveErr != nil {
		snap, loadErr = nil, resolveErr
	}

	ctx := sanity.NewContext(datasetID, dataRoot, version, versioned, snap, loadErr)
	set := s.registry.Resolve(opts.Excludes)
	engine := sanity.NewEngine(s.writer)

	result := domain.SanityResult{
		DatasetID: datasetID,
		Version:   version,
		Reports:   engine.Run(ctx, set, opts.Fix),
	}
	if s.git != nil && s.git.IsGitRepo(dbRoot) {
		if hash, err := s.git.CommitHash(dbRoot); err == nil {
			result.CommitHash = hash
		}
	}
	return result
}

// UnknownExcludes reports exclude entries that match no rule id or group, so
// the CLI can warn the operator about probable typos.
func (s *SanityService) UnknownExcludes(excludes []string) []string {
	return s.registry.Resolve(excludes).UnknownExcludes
}
