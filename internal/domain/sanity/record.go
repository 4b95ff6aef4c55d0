package sanity

import (
	"fmt"

	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

// Record (REC) rules enforce table-level cardinality and uniqueness
// invariants on the loaded snapshot.

func recordCheckers() []Checker {
	return []Checker{
		&checkFunc{
			rule: domain.Rule{
				ID: "REC001", Name: "scene-single", Severity: domain.SeverityError,
				Description: "'Scene' record is a single.",
			},
			skipF: skipMissingTable(schema.TableScene),
			checkF: func(ctx *Context) []string {
				if n := len(ctx.Table(schema.TableScene)); n != 1 {
					return []string{fmt.Sprintf("'Scene' must contain exactly one element: %d", n)}
				}
				return nil
			},
		},
		notEmptyChecker("REC002", "sample-not-empty", schema.TableSample),
		notEmptyChecker("REC003", "sample-data-not-empty", schema.TableSampleData),
		notEmptyChecker("REC004", "ego-pose-not-empty", schema.TableEgoPose),
		notEmptyChecker("REC005", "calibrated-sensor-not-empty", schema.TableCalibratedSensor),
		&checkFunc{
			rule: domain.Rule{
				ID: "REC006", Name: "instance-not-empty", Severity: domain.SeverityError,
				Description: "'Instance' record is not empty whenever object annotations exist.",
			},
			skipF: func(ctx *Context) (string, bool) {
				if reason, skip := skipMissingTable(schema.TableInstance)(ctx); skip {
					return reason, true
				}
				if len(ctx.Table(schema.TableSampleAnnotation)) == 0 && len(ctx.Table(schema.TableObjectAnn)) == 0 {
					return "dataset has no 3D or 2D object annotations", true
				}
				return "", false
			},
			checkF: func(ctx *Context) []string {
				if len(ctx.Table(schema.TableInstance)) == 0 {
					return []string{"'Instance' record must not be empty"}
				}
				return nil
			},
		},
		&categoryIndexChecker{},
	}
}

func notEmptyChecker(id, name string, table schema.TableName) Checker {
	return &checkFunc{
		rule: domain.Rule{
			ID: id, Name: name, Severity: domain.SeverityError,
			Description: fmt.Sprintf("'%s' record is not empty.", table),
		},
		skipF: skipMissingTable(table),
		checkF: func(ctx *Context) []string {
			if len(ctx.Table(table)) == 0 {
				return []string{fmt.Sprintf("'%s' record must not be empty", table)}
			}
			return nil
		},
	}
}

// skipMissingTable skips a rule when the table's annotation file is absent;
// its absence is STR007's failure, not this rule's.
func skipMissingTable(names ...schema.TableName) func(*Context) (string, bool) {
	return func(ctx *Context) (string, bool) {
		for _, name := range names {
			if !ctx.HasTable(name) {
				return fmt.Sprintf("missing %s", name.Filename()), true
			}
		}
		return "", false
	}
}

// categoryIndexChecker enforces that 'Category.index' is either set on every
// record with unique values, or null on every record. Partial indexing is
// repairable: the fix backfills sequential indices over the whole table.
type categoryIndexChecker struct{}

func (c *categoryIndexChecker) Rule() domain.Rule {
	return domain.Rule{
		ID: "REC007", Name: "category-indices-consistent", Severity: domain.SeverityError,
		Fixable:     true,
		Description: "All categories must either have a unique 'index' or all have a 'null' index.",
	}
}

func (c *categoryIndexChecker) Skip(ctx *Context) (string, bool) {
	return skipMissingTable(schema.TableCategory)(ctx)
}

func (c *categoryIndexChecker) Check(ctx *Context) []string {
	records := ctx.Table(schema.TableCategory)

	allNull := true
	someNull := false
	seen := make(map[float64]bool, len(records))
	duplicated := false
	for _, rec := range records {
		index, ok := rec["index"].(float64)
		if !ok {
			someNull = true
			continue
		}
		allNull = false
		if seen[index] {
			duplicated = true
		}
		seen[index] = true
	}

	switch {
	case allNull:
		return nil
	case someNull:
		return []string{"all categories either must have an 'index' set or all have a 'null' index"}
	case duplicated:
		return []string{"categories must have unique 'index' values"}
	default:
		return nil
	}
}

// Fix assigns sequential indices to every category record, so the table ends
// fully indexed, never mixed. Re-running it on an already-repaired table
// rewrites the same values, keeping the operation idempotent.
func (c *categoryIndexChecker) Fix(ctx *FixContext) bool {
	records := ctx.Table(schema.TableCategory)
	repaired := make(schema.Table, len(records))
	for i, rec := range records {
		clone := make(schema.Record, len(rec))
		for k, v := range rec {
			clone[k] = v
		}
		clone["index"] = float64(i)
		repaired[i] = clone
	}
	return ctx.Rewrite(schema.TableCategory, repaired) == nil
}
