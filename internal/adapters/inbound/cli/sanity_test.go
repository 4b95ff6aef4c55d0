package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/t4sanity/t4sanity/internal/adapters/inbound/cli"
	"github.com/t4sanity/t4sanity/internal/datasettest"
	"github.com/t4sanity/t4sanity/internal/domain"
)

func TestSanityCommand_ValidDataset(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset0")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"sanity", parent})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "dataset0")
	assert.Contains(t, buf.String(), string(domain.RunSuccess))
}

func TestSanityCommand_JSON(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset0")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"sanity", parent, "--json"})

	require.NoError(t, cmd.Execute())

	var results []domain.SanityResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "dataset0", results[0].DatasetID)
	assert.Len(t, results[0].Reports, 57)
}

func TestSanityCommand_BrokenDatasetFails(t *testing.T) {
	parent := t.TempDir()
	dbRoot := datasettest.Write(t, parent, "dataset0")
	require.NoError(t, os.RemoveAll(filepath.Join(dbRoot, "1", "annotation")))

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"sanity", parent})

	assert.Error(t, cmd.Execute())
}

func TestSanityCommand_OutputFile(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset0")
	outFile := filepath.Join(t.TempDir(), "results.json")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"sanity", parent, "-o", outFile})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	var results []domain.SanityResult
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results, 1)
}

func TestSanityCommand_UnknownExcludeWarns(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset0")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	errBuf := new(bytes.Buffer)
	cmd.SetErr(errBuf)
	cmd.SetArgs([]string{"sanity", parent, "-e", "NOPE"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, errBuf.String(), `exclude "NOPE" matches no rule or group`)
}

func TestSanityCommand_ConfigFileExcludes(t *testing.T) {
	parent := t.TempDir()
	datasettest.Write(t, parent, "dataset0")
	cfg := "excludes:\n  - FMT\n"
	require.NoError(t, os.WriteFile(filepath.Join(parent, ".t4sanity.yaml"), []byte(cfg), 0o644))

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"sanity", parent, "--json"})

	require.NoError(t, cmd.Execute())

	var results []domain.SanityResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	for _, r := range results[0].Reports {
		if domain.GroupOf(r.ID) == domain.GroupFormat {
			assert.Equal(t, domain.StatusSkipped, r.Status)
		}
	}
}

func TestRulesCommand_ListsCatalog(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rules"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "STR001")
	assert.Contains(t, buf.String(), "category-indices-consistent")
	assert.Contains(t, buf.String(), "(fixable)")
	assert.Contains(t, buf.String(), "TIV001")
}

func TestRulesCommand_JSON(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"rules", "--json"})

	require.NoError(t, cmd.Execute())

	var rules []domain.Rule
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rules))
	assert.Len(t, rules, 57)
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "t4sanity")
}
