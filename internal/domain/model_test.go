package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/t4sanity/t4sanity/internal/domain"
)

func errorRule(id string) domain.Rule {
	return domain.Rule{ID: id, Name: "rule-" + id, Severity: domain.SeverityError}
}

func warningRule(id string) domain.Rule {
	return domain.Rule{ID: id, Name: "rule-" + id, Severity: domain.SeverityWarning}
}

func TestGroupOf(t *testing.T) {
	assert.Equal(t, domain.GroupStructure, domain.GroupOf("STR001"))
	assert.Equal(t, domain.GroupRecord, domain.GroupOf("REC007"))
	assert.Equal(t, domain.GroupReference, domain.GroupOf("REF107"))
	assert.Equal(t, domain.GroupFormat, domain.GroupOf("FMT016"))
	assert.Equal(t, domain.GroupTier4, domain.GroupOf("TIV001"))
}

func TestRuleLess_GroupOrder(t *testing.T) {
	assert.True(t, domain.RuleLess("STR009", "REC001"))
	assert.True(t, domain.RuleLess("REC007", "REF001"))
	assert.True(t, domain.RuleLess("REF202", "FMT001"))
	assert.True(t, domain.RuleLess("FMT017", "TIV001"))
}

func TestRuleLess_NumericSuffixWithinGroup(t *testing.T) {
	assert.True(t, domain.RuleLess("REF002", "REF010"))
	assert.True(t, domain.RuleLess("REF014", "REF101"))
	assert.False(t, domain.RuleLess("STR002", "STR001"))
}

func TestNewReport_PassedWhenNoReasons(t *testing.T) {
	report := domain.NewReport(errorRule("STR001"), nil)
	assert.Equal(t, domain.StatusPassed, report.Status)
	assert.True(t, report.IsPassed(true))
}

func TestNewReport_FailedWithReasons(t *testing.T) {
	report := domain.NewReport(errorRule("STR001"), []string{"version directory doesn't exist"})
	assert.Equal(t, domain.StatusFailed, report.Status)
	assert.False(t, report.IsPassed(false))
	assert.True(t, report.IsFailed(false))
}

func TestReport_WarningPassesUnlessStrict(t *testing.T) {
	report := domain.NewReport(warningRule("STR003"), []string{"path not found: data"})

	assert.True(t, report.IsPassed(false))
	assert.False(t, report.IsFailed(false))
	assert.False(t, report.IsPassed(true))
	assert.True(t, report.IsFailed(true))
}

func TestReport_FixedCountsAsPassedEvenStrict(t *testing.T) {
	report := domain.NewReport(errorRule("REC007"), []string{"duplicate index"})
	report.Fixed = true

	assert.Equal(t, domain.StatusFailed, report.Status, "fixed keeps the failure status")
	assert.True(t, report.IsPassed(true))
	assert.False(t, report.IsFailed(true))
}

func TestReport_SkippedAlwaysPasses(t *testing.T) {
	report := domain.NewSkipped(errorRule("REC001"), "missing scene.json")
	assert.True(t, report.IsSkipped())
	assert.True(t, report.IsPassed(true))
	assert.Equal(t, []string{"missing scene.json"}, report.Reasons)
}

func TestSanityResult_Status(t *testing.T) {
	result := domain.SanityResult{Reports: []domain.Report{
		domain.NewReport(errorRule("STR001"), nil),
		domain.NewReport(warningRule("STR003"), []string{"path not found"}),
	}}
	assert.Equal(t, domain.RunSuccess, result.Status(), "warning failures never flip the status")

	result.Reports = append(result.Reports, domain.NewReport(errorRule("REC001"), []string{"empty"}))
	assert.Equal(t, domain.RunFailure, result.Status())
}

func TestSanityResult_Status_FixedErrorIsSuccess(t *testing.T) {
	failed := domain.NewReport(errorRule("REC007"), []string{"duplicate index"})
	failed.Fixed = true
	result := domain.SanityResult{Reports: []domain.Report{failed}}
	assert.Equal(t, domain.RunSuccess, result.Status())
}

func TestSummarize_CountersAreNotMutuallyExclusive(t *testing.T) {
	fixedWarning := domain.NewReport(warningRule("REF202"), []string{"file not found"})
	fixedWarning.Fixed = true

	result := domain.SanityResult{Reports: []domain.Report{
		domain.NewReport(errorRule("STR001"), nil),
		domain.NewReport(errorRule("REC001"), []string{"empty"}),
		domain.NewSkipped(errorRule("REC002"), "missing sample.json"),
		fixedWarning,
	}}

	summary := result.Summarize(false)
	assert.Equal(t, 3, summary.Passed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Warnings, "a fixed warning still counts as a warning")
	assert.Equal(t, 1, summary.Fixed)
}

func TestSortResults(t *testing.T) {
	results := []domain.SanityResult{
		{DatasetID: "b", Version: 1},
		{DatasetID: "a", Version: 2},
		{DatasetID: "a", Version: 1},
	}
	domain.SortResults(results)

	assert.Equal(t, "a", results[0].DatasetID)
	assert.Equal(t, 1, results[0].Version)
	assert.Equal(t, 2, results[1].Version)
	assert.Equal(t, "b", results[2].DatasetID)
}

func TestExitCode(t *testing.T) {
	errorFail := domain.SanityResult{Reports: []domain.Report{
		domain.NewReport(errorRule("REC001"), []string{"empty"}),
	}}
	warnFail := domain.SanityResult{Reports: []domain.Report{
		domain.NewReport(warningRule("STR003"), []string{"path not found"}),
	}}
	clean := domain.SanityResult{Reports: []domain.Report{
		domain.NewReport(errorRule("STR001"), nil),
	}}

	assert.Equal(t, 1, domain.ExitCode([]domain.SanityResult{clean, errorFail}, false))
	assert.Equal(t, 1, domain.ExitCode([]domain.SanityResult{errorFail}, true))
	assert.Equal(t, 0, domain.ExitCode([]domain.SanityResult{warnFail}, false))
	assert.Equal(t, 1, domain.ExitCode([]domain.SanityResult{warnFail}, true))
	assert.Equal(t, 0, domain.ExitCode([]domain.SanityResult{clean}, true))
}

func TestExitCode_FixedFailuresDoNotCount(t *testing.T) {
	fixed := domain.NewReport(errorRule("REC007"), []string{"duplicate index"})
	fixed.Fixed = true
	result := domain.SanityResult{Reports: []domain.Report{fixed}}

	assert.Equal(t, 0, domain.ExitCode([]domain.SanityResult{result}, true))
}
