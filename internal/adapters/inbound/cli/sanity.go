package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	configloader "github.com/t4sanity/t4sanity/internal/adapters/outbound/config"
	"github.com/t4sanity/t4sanity/internal/adapters/outbound/gitinfo"
	"github.com/t4sanity/t4sanity/internal/adapters/outbound/loader"
	"github.com/t4sanity/t4sanity/internal/adapters/outbound/tui"
	"github.com/t4sanity/t4sanity/internal/application"
	"github.com/t4sanity/t4sanity/internal/domain"
	"github.com/t4sanity/t4sanity/internal/domain/sanity"
)

func newSanityCmd() *cobra.Command {
	var (
		outputPath     string
		revision       int
		excludes       []string
		strict         bool
		includeWarning bool
		fix            bool
		jsonOutput     bool
	)

	cmd := &cobra.Command{
		Use:   "sanity [path]",
		Short: "Check every dataset under a directory",
		Long:  "Run all sanity rules against every dataset directory found under path and report per-rule outcomes plus a summary table.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := configloader.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			// Flags win over .t4sanity.yaml; the config file only fills
			// in knobs the operator did not set on the command line.
			if !cmd.Flags().Changed("strict") {
				strict = cfg.Strict
			}
			if !cmd.Flags().Changed("include-warning") {
				includeWarning = cfg.IncludeWarning
			}
			if !cmd.Flags().Changed("fix") {
				fix = cfg.Fix
			}
			excludes = append(excludes, cfg.Excludes...)

			store := loader.New()
			svc := application.NewSanityService(store, store, gitinfo.New(), sanity.Builtin())
			for _, unknown := range svc.UnknownExcludes(excludes) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: exclude %q matches no rule or group\n", unknown)
			}

			opts := application.RunOptions{
				Excludes: excludes,
				Revision: revision,
				Strict:   strict,
				Fix:      fix,
			}
			results, err := application.NewScanService(svc).Scan(cmd.Context(), absPath, opts)
			if err != nil {
				return fmt.Errorf("sanity scan failed: %w", err)
			}

			if outputPath != "" {
				if err := writeResultsFile(outputPath, results); err != nil {
					return err
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, results); err != nil {
					return err
				}
			} else {
				for _, result := range results {
					fmt.Fprint(cmd.OutOrStdout(), tui.RenderResult(result, includeWarning))
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderSummary(results, strict))
			}

			if domain.ExitCode(results, strict) != 0 {
				return fmt.Errorf("sanity check failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write results as JSON to a file")
	cmd.Flags().IntVar(&revision, "revision", 0, "Dataset version to check (0 selects the latest)")
	cmd.Flags().StringArrayVarP(&excludes, "exclude", "e", nil, "Rule id or group to exclude (repeatable)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().BoolVar(&includeWarning, "include-warning", false, "Show failed WARNING rules in the checklist")
	cmd.Flags().BoolVar(&fix, "fix", false, "Repair fixable violations in place")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeResultsFile(path string, results []domain.SanityResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
