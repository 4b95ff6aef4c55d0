package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t4sanity/t4sanity/internal/application"
	"github.com/t4sanity/t4sanity/internal/datasettest"
	"github.com/t4sanity/t4sanity/internal/domain"
)

func TestScan_MultipleDatasetsSorted(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset-b")
	datasettest.Write(t, parent, "dataset-a")
	datasettest.Write(t, parent, "dataset-c")

	scan := application.NewScanService(newService())
	results, err := scan.Scan(context.Background(), parent, application.RunOptions{})

	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "dataset-a", results[0].DatasetID)
	assert.Equal(t, "dataset-b", results[1].DatasetID)
	assert.Equal(t, "dataset-c", results[2].DatasetID)
}

func TestScan_BrokenDatasetDoesNotAbortOthers(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset-good")
	broken := datasettest.Write(t, parent, "dataset-broken")
	removeAnnotation(t, broken)

	scan := application.NewScanService(newService())
	results, err := scan.Scan(context.Background(), parent, application.RunOptions{})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, domain.RunFailure, results[0].Status())
	assert.Equal(t, domain.RunSuccess, results[1].Status())
	assert.Equal(t, 1, domain.ExitCode(results, false))
}

func TestScan_EmptyParentFails(t *testing.T) {
	scan := application.NewScanService(newService())
	_, err := scan.Scan(context.Background(), t.TempDir(), application.RunOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no dataset directories found")
}

func TestScan_CancelledContext(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset-a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scan := application.NewScanService(newService())
	_, err := scan.Scan(ctx, parent, application.RunOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
