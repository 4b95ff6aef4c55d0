package domain

import "github.com/t4sanity/t4sanity/internal/domain/schema"

// SnapshotLoader resolves and loads one dataset version into a Snapshot.
type SnapshotLoader interface {
	// Resolve picks the version directory under dbRoot. revision pins a
	// specific version; 0 selects the latest numeric directory. A dataset
	// without version directories resolves to dbRoot itself with version 0.
	Resolve(dbRoot string, revision int) (dataRoot string, version int, err error)

	// Load reads the annotation tables under dataRoot. Failures are
	// reported as *LoadError.
	Load(dataRoot string) (*schema.Snapshot, error)
}

// TableWriter persists a rewritten table back to disk. It is handed only to
// the fix path, never to checkers.
type TableWriter interface {
	WriteTable(dataRoot string, name schema.TableName, records schema.Table) error
}

// ConfigLoader reads the run configuration for a scan root.
type ConfigLoader interface {
	Load(scanRoot string) (RunConfig, error)
}

// GitInfo inspects version-control metadata of a dataset root.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
