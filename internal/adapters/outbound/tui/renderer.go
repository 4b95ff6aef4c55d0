package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/t4sanity/t4sanity/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#06B6D4") // cyan
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	fixedStyle    = lipgloss.NewStyle().Foreground(success).Bold(true)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult renders one dataset's checklist: every rule with its outcome,
// failure reasons indented beneath the failing rule. Failed WARNING rules
// are hidden unless includeWarning is set.
func RenderResult(result domain.SanityResult, includeWarning bool) string {
	var b strings.Builder

	title := titleStyle.Render(result.DatasetID)
	version := dimStyle.Render(fmt.Sprintf("version %d", result.Version))
	header := title + "  " + version
	if result.CommitHash != "" {
		header += "  " + faintStyle.Render(shortHash(result.CommitHash))
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	for _, report := range result.Reports {
		failedWarning := report.Status == domain.StatusFailed && report.Severity.IsWarning()
		if failedWarning && !includeWarning {
			continue
		}
		renderReport(&b, report)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n")
	return b.String()
}

func renderReport(b *strings.Builder, report domain.Report) {
	label := fmt.Sprintf("[%s] %s", report.ID, report.Name)

	switch {
	case report.IsSkipped():
		reason := ""
		if len(report.Reasons) > 0 {
			reason = "  " + dimStyle.Render(report.Reasons[0])
		}
		fmt.Fprintf(b, "  %s %s%s\n", skipStyle.Render("○"), dimStyle.Render(label), reason)
	case report.Status == domain.StatusPassed:
		fmt.Fprintf(b, "  %s %s\n", passStyle.Render("✓"), label)
	default:
		tag := errorTagStyle.Render(string(report.Severity))
		mark := failStyle.Render("✗")
		reasonStyle := failStyle
		if report.Severity.IsWarning() {
			tag = warnTagStyle.Render(string(report.Severity))
			mark = warnStyle.Render("!")
			reasonStyle = warnStyle
		}
		suffix := ""
		if report.Fixed {
			suffix = "  " + fixedStyle.Render("--> FIXED")
		}
		fmt.Fprintf(b, "  %s %s %s%s\n", mark, label, tag, suffix)
		for _, reason := range report.Reasons {
			fmt.Fprintf(b, "      %s %s\n", faintStyle.Render("·"), reasonStyle.Render(reason))
		}
	}
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
