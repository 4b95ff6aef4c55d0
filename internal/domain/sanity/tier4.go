package sanity

import (
	"fmt"

	"github.com/t4sanity/t4sanity/internal/domain"
)

// tier4Checkers holds the meta rules about the dataset snapshot itself.
func tier4Checkers() []Checker {
	return []Checker{
		&checkFunc{
			rule: domain.Rule{
				ID: "TIV001", Name: "snapshot-load", Severity: domain.SeverityError,
				Description: "The dataset snapshot is constructed successfully.",
			},
			checkF: func(ctx *Context) []string {
				if ctx.Loaded() {
					return nil
				}
				return []string{fmt.Sprintf("failed to load dataset: %v", ctx.LoadErr())}
			},
		},
	}
}
