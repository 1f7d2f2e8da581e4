// pattern: Imperative Shell

package tui

import (
	"fmt"
	"strings"

	prog "sweeper/internal/progress"
)

// View renders the three phase sections, the log panel, and either the
// confirm modal or the final summary when present.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.TitleStyle().Render("sweeper"))
	b.WriteString("\n")

	b.WriteString(m.renderScan())
	b.WriteString(m.renderPool("Delete", m.deleteSnap, m.deleteBar.ViewAs))
	b.WriteString(m.renderPool("Clean", m.cleanSnap, m.cleanBar.ViewAs))

	if m.confirm != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.BoxStyle().Render(
			m.styles.WarnStyle().Render(m.confirm.Message) + "\n\n" +
				m.styles.DimStyle().Render("y: proceed    n: abort")))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
		b.WriteString(m.styles.HelpStyle().Render("press q to exit"))
		b.WriteString("\n")
	}

	if len(m.logs) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderLogs())
	}

	return b.String()
}

func (m Model) renderScan() string {
	phase := m.styles.PhaseStyle().Render("Scan ")
	if m.scanDone {
		return fmt.Sprintf("%s %s\n", phase, m.styles.InfoStyle().Render(fmt.Sprintf(
			"%d directories scanned, %d trash, %d projects",
			m.scanResult.Scanned, len(m.scanResult.TrashDirs), len(m.scanResult.Projects))))
	}
	return fmt.Sprintf("%s%s %s\n", phase, m.spinner.View(), m.styles.DimStyle().Render(fmt.Sprintf(
		"%d scanned  %s", m.scanNote.Scanned, m.scanNote.Current)))
}

func (m Model) renderPool(name string, snap *prog.Snapshot, bar func(float64) string) string {
	phase := m.styles.PhaseStyle().Render(name)
	if snap == nil {
		return fmt.Sprintf("%s %s\n", phase, m.styles.DimStyle().Render("waiting"))
	}

	line := fmt.Sprintf("%s %s %s\n", phase,
		bar(snap.Percent()/100),
		m.styles.InfoStyle().Render(fmt.Sprintf("%d/%d", snap.Completed, snap.Total)))

	detail := fmt.Sprintf("eta %s", prog.FormatDuration(snap.ETA()))
	if active := snap.ActiveList(); active != "" {
		detail += "  " + active
	}
	return line + "      " + m.styles.DimStyle().Render(detail) + "\n"
}

func (m Model) renderSummary() string {
	var sb strings.Builder
	sb.WriteString(m.styles.SuccessStyle().Render("Done") + "\n")
	sb.WriteString(fmt.Sprintf("elapsed      %s\n", prog.FormatDuration(m.summary.Elapsed)))
	sb.WriteString(fmt.Sprintf("scanned      %d directories\n", m.summary.Scanned))
	sb.WriteString(fmt.Sprintf("space freed  %s\n", prog.FormatBytes(m.summary.FreedBytes)))
	sb.WriteString(fmt.Sprintf("cleaned      %d projects\n", m.summary.ProjectsCleaned))
	if len(m.summary.FailedDeletions) > 0 {
		sb.WriteString(m.styles.ErrorStyle().Render(
			fmt.Sprintf("failed to delete %d paths:", len(m.summary.FailedDeletions))) + "\n")
		for _, p := range m.summary.FailedDeletions {
			sb.WriteString("  " + p + "\n")
		}
	}
	if m.runErr != nil {
		sb.WriteString(m.styles.ErrorStyle().Render(m.runErr.Error()) + "\n")
	}
	return m.styles.BoxStyle().Render(strings.TrimRight(sb.String(), "\n")) + "\n"
}

func (m Model) renderLogs() string {
	var sb strings.Builder
	for _, e := range m.logs {
		line := e.String()
		switch e.Level {
		case "ERROR":
			line = m.styles.ErrorStyle().Render(line)
		case "WARN":
			line = m.styles.WarnStyle().Render(line)
		default:
			line = m.styles.DimStyle().Render(line)
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
