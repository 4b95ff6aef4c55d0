package sanity

import (
	"fmt"

	"github.com/t4sanity/t4sanity/internal/domain"
)

// Engine runs a resolved rule set against one dataset version. Checkers run
// strictly sequentially in registry order: later groups assume earlier
// structural rules already probed the filesystem, and fixes mutate shared
// state that must not be observed concurrently.
type Engine struct {
	writer domain.TableWriter
}

// NewEngine builds an engine. writer is only consulted on the fix path; it
// may be nil when fixes are never requested.
func NewEngine(writer domain.TableWriter) *Engine {
	return &Engine{writer: writer}
}

// Run executes every checker of the set and returns one report per rule, in
// registry order. Excluded rules never execute; when the snapshot could not
// be constructed, every rule that needs loaded tables is skipped while the
// filesystem (STR) and load (TIV) rules still run.
func (e *Engine) Run(ctx *Context, set RuleSet, fix bool) []domain.Report {
	reports := make([]domain.Report, 0, len(set.Checkers))
	for _, checker := range set.Checkers {
		reports = append(reports, e.runOne(ctx, checker, set, fix))
	}
	return reports
}

func (e *Engine) runOne(ctx *Context, checker Checker, set RuleSet, fix bool) domain.Report {
	rule := checker.Rule()

	if set.Excluded[rule.ID] {
		return domain.NewSkipped(rule, "excluded by configuration")
	}
	if !ctx.Loaded() && needsSnapshot(rule.Group()) {
		return domain.NewSkipped(rule, "dataset not loaded")
	}
	if skipper, ok := checker.(Skipper); ok {
		if reason, skip := skipper.Skip(ctx); skip {
			return domain.NewSkipped(rule, reason)
		}
	}

	reasons, internalErr := safeCheck(checker, ctx)
	if internalErr != nil {
		return domain.NewReport(rule, []string{internalErr.Error()})
	}
	report := domain.NewReport(rule, reasons)
	if report.Status != domain.StatusFailed || !fix || !rule.Fixable {
		return report
	}

	fixer, ok := checker.(Fixer)
	if !ok {
		return report
	}
	if !fixer.Fix(NewFixContext(ctx, e.writer)) {
		return report
	}
	recheck, internalErr := safeCheck(checker, ctx)
	if internalErr == nil && recheck == nil {
		// Repair verified: the report counts as passed while the original
		// reasons stay attached for audit.
		report.Fixed = true
	}
	return report
}

// safeCheck contains a checker's own defects: a panic becomes a failure of
// that rule instead of aborting the remaining rules.
func safeCheck(checker Checker, ctx *Context) (reasons []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error in rule %s: %v", checker.Rule().ID, r)
		}
	}()
	return checker.Check(ctx), nil
}

// needsSnapshot reports whether a rule group operates on loaded tables.
// Structure rules probe the filesystem and the load rule reports the load
// outcome itself, so both run even for an unloadable dataset.
func needsSnapshot(g domain.Group) bool {
	return g != domain.GroupStructure && g != domain.GroupTier4
}
