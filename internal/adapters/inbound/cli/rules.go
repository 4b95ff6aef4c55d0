package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/sanity"
)

func newRulesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rule catalog",
		Long:  "Print every registered rule with its id, name, severity, and whether it can be repaired with --fix.",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := make([]domain.Rule, 0)
			for _, c := range sanity.Builtin().All() {
				rules = append(rules, c.Rule())
			}

			if jsonOutput {
				return renderJSON(cmd, rules)
			}
			for _, rule := range rules {
				fixable := ""
				if rule.Fixable {
					fixable = "  (fixable)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %-8s %s%s\n", rule.ID, rule.Severity, rule.Name, fixable)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the catalog as JSON")
	return cmd
}
