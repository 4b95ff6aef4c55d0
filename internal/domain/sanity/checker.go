// Package sanity implements the rule-based validation engine: the checker
// protocol, the rule registry, the execution engine and the built-in rule
// catalog.
package sanity

import "github.com/t4sanity/t4sanity/internal/domain"

// Checker is one sanity rule's validation unit. Check must be a pure
// function of the context: it returns nil when the dataset satisfies the
// rule, otherwise a non-empty ordered list of reasons, each specific enough
// to localize the offending record.
type Checker interface {
	Rule() domain.Rule
	Check(ctx *Context) []string
}

// Fixer is implemented by checkers whose rule has an automated repair.
// Fix must be idempotent; the engine only invokes it when the rule is
// marked fixable and repair was requested.
type Fixer interface {
	Fix(ctx *FixContext) bool
}

// Skipper is implemented by checkers that can decide they do not apply to
// this dataset, e.g. because their table's annotation file is absent.
type Skipper interface {
	Skip(ctx *Context) (reason string, ok bool)
}

// checkFunc adapts plain functions to the Checker interface. Most built-in
// rules are declared this way so the catalog stays a configuration table.
type checkFunc struct {
	rule   domain.Rule
	checkF func(*Context) []string
	skipF  func(*Context) (string, bool)
}

func (c *checkFunc) Rule() domain.Rule { return c.rule }

func (c *checkFunc) Check(ctx *Context) []string { return c.checkF(ctx) }

func (c *checkFunc) Skip(ctx *Context) (string, bool) {
	if c.skipF == nil {
		return "", false
	}
	return c.skipF(ctx)
}
