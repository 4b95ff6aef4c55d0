// Package loader reads the annotation tables of one dataset version from
// disk into a schema.Snapshot.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

// JSONLoader implements domain.SnapshotLoader and domain.TableWriter over
// the on-disk JSON table layout.
type JSONLoader struct{}

func New() *JSONLoader { return &JSONLoader{} }

// Resolve picks the dataset version directory. Version directories are
// plain integer names directly under the dataset root; with revision 0 the
// highest one wins. A dataset without version directories resolves to the
// root itself with version 0.
func (l *JSONLoader) Resolve(dbRoot string, revision int) (string, int, error) {
	entries, err := os.ReadDir(dbRoot)
	if err != nil {
		return "", 0, &domain.LoadError{Path: dbRoot, Err: err}
	}

	if revision > 0 {
		dataRoot := filepath.Join(dbRoot, strconv.Itoa(revision))
		if info, statErr := os.Stat(dataRoot); statErr != nil || !info.IsDir() {
			return "", 0, &domain.LoadError{
				Path: dbRoot,
				Err:  fmt.Errorf("version directory %d not found", revision),
			}
		}
		return dataRoot, revision, nil
	}

	latest := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if v, convErr := strconv.Atoi(entry.Name()); convErr == nil && v > latest {
			latest = v
		}
	}
	if latest == 0 {
		return dbRoot, 0, nil
	}
	return filepath.Join(dbRoot, strconv.Itoa(latest)), latest, nil
}

// Load reads every annotation table present under dataRoot. A missing
// optional or even mandatory file leaves the table absent from the snapshot
// (the structure rules report on it); a missing annotation directory or
// malformed JSON fails the load as a whole.
func (l *JSONLoader) Load(dataRoot string) (*schema.Snapshot, error) {
	annotationDir := filepath.Join(dataRoot, "annotation")
	if info, err := os.Stat(annotationDir); err != nil || !info.IsDir() {
		return nil, &domain.LoadError{
			Path: dataRoot,
			Err:  fmt.Errorf("annotation directory not found: %s", annotationDir),
		}
	}

	tables := make(map[schema.TableName]schema.Table, len(schema.TableNames))
	for _, name := range schema.TableNames {
		path := filepath.Join(annotationDir, name.Filename())
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, &domain.LoadError{Path: dataRoot, Err: err}
		}

		var records schema.Table
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, &domain.LoadError{
				Path: dataRoot,
				Err:  fmt.Errorf("parsing %s: %w", name.Filename(), err),
			}
		}
		tables[name] = records
	}
	return schema.NewSnapshot(tables), nil
}

// WriteTable persists a repaired table back to its annotation JSON file.
func (l *JSONLoader) WriteTable(dataRoot string, name schema.TableName, records schema.Table) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name.Filename(), err)
	}
	path := filepath.Join(dataRoot, "annotation", name.Filename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name.Filename(), err)
	}
	return nil
}
