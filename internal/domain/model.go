package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Severity classifies how a rule violation affects the overall outcome.
// ERROR violations always fail the run; WARNING violations fail it only in
// strict mode.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

func (s Severity) IsError() bool   { return s == SeverityError }
func (s Severity) IsWarning() bool { return s == SeverityWarning }

// Status is the runtime outcome of a single rule.
type Status string

const (
	StatusPassed  Status = "PASSED"
	StatusFailed  Status = "FAILED"
	StatusSkipped Status = "SKIPPED"
)

// RunStatus is the aggregated outcome of one dataset version.
type RunStatus string

const (
	RunSuccess RunStatus = "SUCCESS"
	RunFailure RunStatus = "FAILURE"
)

// Group is a rule family derived from the rule identifier prefix.
type Group string

const (
	GroupStructure Group = "STR"
	GroupRecord    Group = "REC"
	GroupReference Group = "REF"
	GroupFormat    Group = "FMT"
	GroupTier4     Group = "TIV"
)

// groupOrder fixes the execution order of the built-in groups. Extension
// groups sort after the built-ins, alphabetically.
var groupOrder = map[Group]int{
	GroupStructure: 0,
	GroupRecord:    1,
	GroupReference: 2,
	GroupFormat:    3,
	GroupTier4:     4,
}

// GroupOf derives the group from a rule identifier, e.g. "REF101" -> REF.
func GroupOf(id string) Group {
	i := 0
	for i < len(id) && (id[i] < '0' || id[i] > '9') {
		i++
	}
	return Group(id[:i])
}

// Rule is the immutable metadata of one sanity check.
type Rule struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Severity    Severity `json:"severity"`
	Fixable     bool     `json:"fixable"`
	Description string   `json:"description"`
}

// Group returns the rule family derived from the identifier prefix.
func (r Rule) Group() Group { return GroupOf(r.ID) }

// RuleLess reports whether rule id a orders before b: by group
// (STR < REC < REF < FMT < TIV, extension groups after), then by the numeric
// suffix within a group. The same ordering drives checker execution so every
// run yields an identically ordered report list.
func RuleLess(a, b string) bool {
	ga, gb := GroupOf(a), GroupOf(b)
	oa, aok := groupOrder[ga]
	ob, bok := groupOrder[gb]
	switch {
	case aok && !bok:
		return true
	case !aok && bok:
		return false
	case !aok && !bok && ga != gb:
		return ga < gb
	case oa != ob:
		return oa < ob
	}
	na, _ := strconv.Atoi(strings.TrimPrefix(a, string(ga)))
	nb, _ := strconv.Atoi(strings.TrimPrefix(b, string(gb)))
	return na < nb
}

// Report is the outcome of one rule against one dataset version. Reasons is
// nil exactly when the rule passed outright; a failed report that was later
// repaired keeps its original reasons with Fixed set for audit.
type Report struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Status      Status   `json:"status"`
	Reasons     []string `json:"reasons"`
	Fixed       bool     `json:"fixed"`
}

// NewReport builds a PASSED or FAILED report depending on reasons.
func NewReport(rule Rule, reasons []string) Report {
	r := Report{
		ID:          rule.ID,
		Name:        rule.Name,
		Severity:    rule.Severity,
		Description: rule.Description,
		Status:      StatusPassed,
	}
	if len(reasons) > 0 {
		r.Status = StatusFailed
		r.Reasons = reasons
	}
	return r
}

// NewSkipped builds a SKIPPED report carrying a single reason.
func NewSkipped(rule Rule, reason string) Report {
	return Report{
		ID:          rule.ID,
		Name:        rule.Name,
		Severity:    rule.Severity,
		Description: rule.Description,
		Status:      StatusSkipped,
		Reasons:     []string{reason},
	}
}

// IsPassed reports whether this rule counts as passing. Skipped rules and
// fixed failures count as passing; unfixed WARNING failures count as passing
// unless strict is set.
func (r Report) IsPassed(strict bool) bool {
	return r.Status == StatusPassed ||
		r.Status == StatusSkipped ||
		r.Fixed ||
		(!strict && r.Severity.IsWarning())
}

// IsFailed reports whether this rule counts as failing under the given mode.
func (r Report) IsFailed(strict bool) bool {
	return r.Status == StatusFailed && !r.Fixed && (r.Severity.IsError() || strict)
}

func (r Report) IsSkipped() bool { return r.Status == StatusSkipped }

// SanityResult is the full outcome of one dataset version.
type SanityResult struct {
	DatasetID  string   `json:"dataset_id"`
	Version    int      `json:"version"`
	CommitHash string   `json:"commit_hash,omitempty"`
	Reports    []Report `json:"reports"`
}

// Status is SUCCESS unless some ERROR-severity rule failed and was not fixed.
// Strict mode is deliberately not folded in here: the report is
// mode-independent, only the exit code honors strictness.
func (sr SanityResult) Status() RunStatus {
	for _, r := range sr.Reports {
		if r.Status == StatusFailed && !r.Fixed && r.Severity.IsError() {
			return RunFailure
		}
	}
	return RunSuccess
}

// Summary holds the per-dataset-version counters shown in the summary table.
type Summary struct {
	Passed   int
	Failed   int
	Skipped  int
	Warnings int
	Fixed    int
}

// Summarize computes the summary counters. A fixed WARNING increments both
// Warnings and Fixed; the counters are not mutually exclusive.
func (sr SanityResult) Summarize(strict bool) Summary {
	var s Summary
	for _, r := range sr.Reports {
		if r.IsPassed(strict) {
			s.Passed++
		} else {
			s.Failed++
		}
		if r.IsSkipped() {
			s.Skipped++
		}
		if r.Severity.IsWarning() && len(r.Reasons) > 0 && !r.IsSkipped() {
			s.Warnings++
		}
		if r.Fixed {
			s.Fixed++
		}
	}
	return s
}

// SortResults orders batch results by dataset id, then version, so the
// summary table is deterministic regardless of scan parallelism.
func SortResults(results []SanityResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].DatasetID != results[j].DatasetID {
			return results[i].DatasetID < results[j].DatasetID
		}
		return results[i].Version < results[j].Version
	})
}

// ExitCode maps the aggregated results to a process exit code. A fixed ERROR
// does not count as a failure; WARNING failures flip the exit code only in
// strict mode.
func ExitCode(results []SanityResult, strict bool) int {
	hasErrorFail := false
	hasWarnFail := false
	for _, sr := range results {
		for _, r := range sr.Reports {
			if r.Status != StatusFailed || r.Fixed {
				continue
			}
			if r.Severity.IsError() {
				hasErrorFail = true
			} else {
				hasWarnFail = true
			}
		}
	}
	if hasErrorFail {
		return 1
	}
	if strict && hasWarnFail {
		return 1
	}
	return 0
}
