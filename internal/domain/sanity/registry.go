package sanity

import (
	"sort"

	"github.com/t4sanity/t4sanity/internal/domain"
)

// Registry is the catalog of known checkers, keyed by rule identifier. It is
// populated once before the first run; the only permitted later mutation is
// the explicit Override path for user customization.
type Registry struct {
	checkers map[string]Checker
}

func NewRegistry() *Registry {
	return &Registry{checkers: make(map[string]Checker)}
}

// Register adds a checker under its rule identifier. Registering the same
// identifier twice is a misconfiguration: two checkers would silently shadow
// each other, so it fails with DuplicateRuleError instead.
func (r *Registry) Register(c Checker) error {
	id := c.Rule().ID
	if _, exists := r.checkers[id]; exists {
		return &domain.DuplicateRuleError{ID: id}
	}
	r.checkers[id] = c
	return nil
}

// Override replaces a registered checker. This is the deliberate escape
// hatch for user-supplied replacements of built-ins; it is never the
// default registration path.
func (r *Registry) Override(c Checker) {
	r.checkers[c.Rule().ID] = c
}

// All returns every checker ordered by group (STR < REC < REF < FMT < TIV)
// and numeric suffix within the group.
func (r *Registry) All() []Checker {
	all := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		all = append(all, c)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return domain.RuleLess(all[i].Rule().ID, all[j].Rule().ID)
	})
	return all
}

// RuleSet is the resolved outcome of applying an exclude list to the
// registry. Checkers keeps the full registry order; Excluded marks the rule
// ids that must be materialized as SKIPPED without ever executing.
type RuleSet struct {
	Checkers []Checker
	Excluded map[string]bool

	// UnknownExcludes are exclude entries matching no rule id or group.
	// They are surfaced as operator warnings, not silently ignored, since
	// a typo would otherwise mask intended filtering.
	UnknownExcludes []string
}

// Resolve marks every checker whose rule identifier or group prefix appears
// in excludes.
func (r *Registry) Resolve(excludes []string) RuleSet {
	set := RuleSet{
		Checkers: r.All(),
		Excluded: make(map[string]bool),
	}
	for _, entry := range excludes {
		matched := false
		for _, c := range set.Checkers {
			rule := c.Rule()
			if rule.ID == entry || string(rule.Group()) == entry {
				set.Excluded[rule.ID] = true
				matched = true
			}
		}
		if !matched {
			set.UnknownExcludes = append(set.UnknownExcludes, entry)
		}
	}
	return set
}
