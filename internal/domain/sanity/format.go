package sanity

import (
	"fmt"

	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/schema"
)

// Format (FMT) rules validate every field of every record against the
// declared table type grammar. One generic validator interprets the
// schema.TableSpecs table, so the rules below are pure configuration.

func formatCheckers() []Checker {
	checkers := make([]Checker, 0, len(schema.TableNames))
	for i, name := range schema.TableNames {
		checkers = append(checkers, formatChecker(fmt.Sprintf("FMT%03d", i+1), name))
	}
	return checkers
}

func formatChecker(id string, table schema.TableName) Checker {
	return &checkFunc{
		rule: domain.Rule{
			ID: id, Name: fieldRuleName(table), Severity: domain.SeverityError,
			Description: fmt.Sprintf("All types of '%s' fields are valid.", table),
		},
		skipF: func(ctx *Context) (string, bool) {
			// A missing optional table passes; a missing mandatory table is
			// STR007's failure, so the format rule steps aside.
			if !ctx.HasTable(table) && table.Mandatory() {
				return fmt.Sprintf("no '%s' found", table.Filename()), true
			}
			return "", false
		},
		checkF: func(ctx *Context) []string {
			spec := schema.TableSpecs[table]
			var reasons []string
			for _, rec := range ctx.Table(table) {
				for _, msg := range spec.Validate(rec) {
					reasons = append(reasons, fmt.Sprintf("[%s] %s: %s", table, rec.Token(), msg))
				}
			}
			return reasons
		},
	}
}

// fieldRuleName derives the rule name from the table's JSON file name,
// e.g. "sample_data.json" -> "sample-data-field".
func fieldRuleName(table schema.TableName) string {
	base := table.Filename()
	base = base[:len(base)-len(".json")]
	name := make([]byte, len(base))
	for i := 0; i < len(base); i++ {
		if base[i] == '_' {
			name[i] = '-'
		} else {
			name[i] = base[i]
		}
	}
	return string(name) + "-field"
}
