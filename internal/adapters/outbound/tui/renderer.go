package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/conflint/conflint/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	passStyle     = lipgloss.NewStyle().Foreground(success).Bold(true)
	okStyle       = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)
)

// RenderReport renders a passing report: summary line, one OK/FAIL line
// per config file, and a skipped section for non-config files.
func RenderReport(r *domain.Report) string {
	var b strings.Builder

	configFiles := r.ConfigFiles()
	skipped := r.SkippedFiles()

	if len(configFiles) > 0 {
		summary := fmt.Sprintf("%s Validation passed! Checked %d config file(s).",
			passStyle.Render("[PASS]"), len(configFiles))
		b.WriteString(boxStyle.Render(titleStyle.Render("conflint") + "  " + summary))
		b.WriteString("\n\n")

		for _, f := range configFiles {
			b.WriteString("  " + renderFileLine(f) + "\n")
		}
	} else {
		b.WriteString(fmt.Sprintf("%s No config files to validate. Checked %d file(s).\n",
			dimStyle.Render("[INFO]"), len(r.Files)))
	}

	if len(skipped) > 0 {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Skipped %d non-config file(s):", len(skipped))))
		b.WriteString("\n")
		for _, f := range skipped {
			b.WriteString(fmt.Sprintf("    %s %s %s\n",
				skipStyle.Render("[SKIP]"), f.Path, fileStyle.Render("("+string(f.Type)+")")))
		}
	}

	return b.String()
}

func renderFileLine(f domain.FileResult) string {
	status := okStyle.Render("[OK]")
	if !f.Valid {
		status = failStyle.Render("[FAIL]")
	}
	return fmt.Sprintf("%s %s %s", status, f.Path, fileStyle.Render("("+string(f.Type)+")"))
}

// RenderFailures renders the aggregate errors of a failed run, one
// ERROR:-prefixed line per entry. Intended for the error stream.
func RenderFailures(r *domain.Report) string {
	var b strings.Builder

	b.WriteString(failStyle.Render("Validation failed!"))
	b.WriteString("\n\n")

	for _, e := range r.Errors {
		b.WriteString(fmt.Sprintf("%s %s\n", errorTagStyle.Render("ERROR:"), e))
	}

	return b.String()
}
