package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t4sanity/t4sanity/internal/adapters/outbound/loader"
	"github.com/t4sanity/t4sanity/internal/application"
	"github.com/t4sanity/t4sanity/internal/datasettest"
	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/sanity"
	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

func newService() *application.SanityService {
	store := loader.New()
	return application.NewSanityService(store, store, nil, sanity.Builtin())
}

func TestCheckDataset_ValidDataset(t *testing.T) {
	dbRoot := datasettest.Write(t, t.TempDir(), "dataset0")

	result := newService().CheckDataset(dbRoot, application.RunOptions{})

	assert.Equal(t, "dataset0", result.DatasetID)
	assert.Equal(t, 1, result.Version)
	assert.Empty(t, result.CommitHash)
	assert.Equal(t, domain.RunSuccess, result.Status())
	require.Len(t, result.Reports, 57)
}

func TestCheckDataset_MissingAnnotationDir(t *testing.T) {
	parent := t.TempDir()
	dbRoot := datasettest.Write(t, parent, "dataset0")
	removeAnnotation(t, dbRoot)

	result := newService().CheckDataset(dbRoot, application.RunOptions{})

	byID := indexReports(result)
	assert.Equal(t, domain.StatusFailed, byID["TIV001"].Status)
	assert.Equal(t, domain.StatusFailed, byID["STR002"].Status)
	assert.Equal(t, domain.StatusPassed, byID["STR003"].Status)
	assert.Equal(t, domain.StatusSkipped, byID["REC001"].Status)
	assert.Equal(t, []string{"dataset not loaded"}, byID["REC001"].Reasons)
	assert.Equal(t, domain.RunFailure, result.Status())
}

func TestCheckDataset_UnversionedDataset(t *testing.T) {
	// No numeric version directory: the dataset root itself is checked.
	dbRoot := t.TempDir()

	result := newService().CheckDataset(dbRoot, application.RunOptions{})

	byID := indexReports(result)
	assert.Equal(t, 0, result.Version)
	assert.Equal(t, domain.StatusFailed, byID["STR001"].Status)
	assert.Equal(t, []string{"version directory doesn't exist"}, byID["STR001"].Reasons)
	assert.Equal(t, domain.StatusFailed, byID["TIV001"].Status)
}

func TestCheckDataset_PinnedRevisionMissing(t *testing.T) {
	dbRoot := datasettest.Write(t, t.TempDir(), "dataset0")

	result := newService().CheckDataset(dbRoot, application.RunOptions{Revision: 7})

	byID := indexReports(result)
	assert.Equal(t, domain.StatusFailed, byID["TIV001"].Status)
	assert.Contains(t, byID["TIV001"].Reasons[0], "version directory 7 not found")
}

func TestCheckDataset_ExcludesAreSkipped(t *testing.T) {
	dbRoot := datasettest.Write(t, t.TempDir(), "dataset0")

	result := newService().CheckDataset(dbRoot, application.RunOptions{Excludes: []string{"FMT"}})

	for _, r := range result.Reports {
		if domain.GroupOf(r.ID) == domain.GroupFormat {
			assert.Equal(t, domain.StatusSkipped, r.Status)
		}
	}
}

func TestCheckDataset_FixPersistsRepair(t *testing.T) {
	dbRoot := datasettest.Write(t, t.TempDir(), "dataset0")
	dataRoot := datasettest.DataRoot(dbRoot)

	categories := datasettest.LoadTable(t, dataRoot, schema.TableCategory)
	categories[0]["index"] = 0.0
	datasettest.RewriteTable(t, dataRoot, schema.TableCategory, categories)

	result := newService().CheckDataset(dbRoot, application.RunOptions{Fix: true})

	byID := indexReports(result)
	assert.True(t, byID["REC007"].Fixed)
	assert.Equal(t, domain.RunSuccess, result.Status())

	repaired := datasettest.LoadTable(t, dataRoot, schema.TableCategory)
	for i, rec := range repaired {
		assert.Equal(t, float64(i), rec["index"])
	}

	// The repaired dataset now passes without fixing.
	clean := newService().CheckDataset(dbRoot, application.RunOptions{})
	assert.Equal(t, domain.StatusPassed, indexReports(clean)["REC007"].Status)
}

func TestUnknownExcludes(t *testing.T) {
	svc := newService()
	assert.Equal(t, []string{"BOGUS"}, svc.UnknownExcludes([]string{"REC", "BOGUS"}))
	assert.Empty(t, svc.UnknownExcludes([]string{"STR001"}))
}

func removeAnnotation(t *testing.T, dbRoot string) {
	t.Helper()
	require.NoError(t, os.RemoveAll(filepath.Join(datasettest.DataRoot(dbRoot), "annotation")))
}

func indexReports(result domain.SanityResult) map[string]domain.Report {
	byID := make(map[string]domain.Report, len(result.Reports))
	for _, r := range result.Reports {
		byID[r.ID] = r
	}
	return byID
}
