package tui

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/t4sanity/t4sanity/internal/domain"
)

// RenderSummary renders the per-dataset counter table shown after a scan.
func RenderSummary(results []domain.SanityResult, strict bool) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("t4sanity"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Dataset Sanity Report"))
	b.WriteString("\n\n")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Dataset", "Version", "Status", "Passed", "Failed", "Skipped", "Warnings", "Fixed"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Version", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Warnings", Align: text.AlignRight},
		{Name: "Fixed", Align: text.AlignRight},
	})

	for _, result := range results {
		summary := result.Summarize(strict)
		status := passStyle.Render(string(domain.RunSuccess))
		if result.Status() == domain.RunFailure {
			status = failStyle.Render(string(domain.RunFailure))
		}
		tw.AppendRow(table.Row{
			result.DatasetID,
			result.Version,
			status,
			summary.Passed,
			summary.Failed,
			summary.Skipped,
			summary.Warnings,
			summary.Fixed,
		})
	}

	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
