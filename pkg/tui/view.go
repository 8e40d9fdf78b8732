package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const minWidth = 40
const minHeight = 10

// View implements tea.Model.
func (m Model) View() string {
	w := m.width
	h := m.height
	if w < minWidth {
		w = minWidth
	}
	if h < minHeight {
		h = minHeight
	}

	if m.showHelpModal {
		return placeOverlay(m.renderHelpModal(), w, h)
	}
	if m.showDeleteConfirm {
		return placeOverlay(m.renderDeleteModal(), w, h)
	}

	var b strings.Builder

	b.WriteString(m.renderHeader(w))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")

	contentHeight := h - 5 // header, tabs, two separators, footer
	var content string
	switch m.activeTab {
	case tabDashboard:
		content = m.renderDashboard(w)
	case tabWorkouts:
		content = m.renderWorkouts(w, contentHeight)
	case tabRecords:
		content = m.renderRecords(w, contentHeight)
	case tabGoals:
		content = m.renderGoals(w, contentHeight)
	}
	for i := 0; i < contentHeight; i++ {
		b.WriteString(getLine(content, i, w))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", w))
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render(truncate(m.keys.ShortHelp(), w)))

	return b.String()
}

func (m Model) renderHeader(width int) string {
	title := HeaderStyle.Render("FitTrack")

	streak := ""
	if m.stats.CurrentStreak > 0 {
		streak = StreakStyle.Render(fmt.Sprintf("🔥 %d day streak", m.stats.CurrentStreak)) + "  "
	}
	counts := HeaderCountStyle.Render(fmt.Sprintf("%d workouts", m.stats.TotalWorkouts))

	status := ""
	if m.statusMsg != "" && time.Now().Before(m.statusTimeout) {
		status = StatusStyle.Render(m.statusMsg) + "  "
	}

	right := status + streak + counts
	gap := width - lipgloss.Width(title) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + right
}

func (m Model) renderTabs() string {
	var tabs []string
	for i, name := range tabNames {
		if i == m.activeTab {
			tabs = append(tabs, ActiveTabStyle.Render(name))
		} else {
			tabs = append(tabs, InactiveTabStyle.Render(name))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderDashboard(width int) string {
	var b strings.Builder

	statLine := func(label, value string) {
		b.WriteString("  ")
		b.WriteString(StatLabelStyle.Render(fmt.Sprintf("%-16s", label)))
		b.WriteString(StatValueStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	statLine("This week", fmt.Sprintf("%d / %d workouts", m.stats.WeeklyWorkouts, m.stats.WeeklyGoal))
	b.WriteString("  ")
	b.WriteString(progressBar(float64(m.stats.WeeklyWorkouts), float64(m.stats.WeeklyGoal), 30))
	b.WriteString("\n\n")
	statLine("Total workouts", fmt.Sprintf("%d", m.stats.TotalWorkouts))
	statLine("Current streak", fmt.Sprintf("%d days", m.stats.CurrentStreak))
	statLine("Total sets", fmt.Sprintf("%d", m.stats.TotalSets))
	statLine("Total reps", fmt.Sprintf("%d", m.stats.TotalReps))
	statLine("Total volume", fmt.Sprintf("%d lbs", m.stats.TotalWeight))
	statLine("Time trained", fmt.Sprintf("%d hours", m.stats.TotalHours))
	statLine("Avg duration", fmt.Sprintf("%d min", m.stats.AvgDuration))

	if m.session != nil && len(m.session.Exercises) > 0 {
		sum := m.session.Summary()
		b.WriteString("\n  ")
		b.WriteString(StreakStyle.Render(fmt.Sprintf("▶ Workout in progress: %s (%d%% done)",
			sum.WorkoutName, sum.ProgressPercentage)))
		b.WriteString("\n")
	}

	earned := 0
	for _, a := range m.achievements {
		if a.Earned {
			earned++
		}
	}
	b.WriteString("\n  ")
	b.WriteString(StatLabelStyle.Render(fmt.Sprintf("Achievements (%d/%d unlocked)", earned, len(m.achievements))))
	b.WriteString("\n")
	for _, a := range m.achievements {
		mark := DimStyle.Render("○")
		style := DimStyle
		if a.Earned {
			mark = CompleteStyle.Render("✓")
			style = NormalStyle
		}
		line := fmt.Sprintf("  %s %s", mark, style.Render(a.Title))
		if !a.Earned && a.Target > 0 {
			line += DimStyle.Render(fmt.Sprintf("  %d/%d", a.Progress, a.Target))
		}
		b.WriteString(truncate(line, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) renderWorkouts(width, height int) string {
	if len(m.workouts) == 0 {
		return "\n  " + DimStyle.Render("No workouts yet. Log one with: fittrack log")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Selected workout detail takes the bottom half
	listHeight := height/2 - 1
	if listHeight < 3 {
		listHeight = 3
	}

	start := 0
	if m.cursor[tabWorkouts] >= listHeight {
		start = m.cursor[tabWorkouts] - listHeight + 1
	}
	for i := start; i < len(m.workouts) && i < start+listHeight; i++ {
		w := m.workouts[i]
		line := fmt.Sprintf("  %s  %-24s %3d min  %d sets  %d lbs",
			w.Date.Local().Format("Jan 02"), truncate(w.Name, 24), w.Duration, w.TotalSets, w.TotalWeight)
		if i == m.cursor[tabWorkouts] {
			b.WriteString(SelectedStyle.Render(truncate(line, width)))
		} else {
			b.WriteString(NormalStyle.Render(truncate(line, width)))
		}
		b.WriteString("\n")
	}

	if i := m.cursor[tabWorkouts]; i < len(m.workouts) {
		b.WriteString("\n")
		b.WriteString("  " + strings.Repeat("┄", width-4) + "\n")
		for _, ex := range m.workouts[i].Exercises {
			b.WriteString("  " + StatValueStyle.Render(ex.Name))
			b.WriteString(DimStyle.Render("  ("+ex.Category+")") + "\n")
			for _, set := range ex.Sets {
				mark := DimStyle.Render("○")
				if set.Completed {
					mark = CompleteStyle.Render("✓")
				}
				b.WriteString(fmt.Sprintf("    %s %g lbs × %d\n", mark, set.Weight, set.Reps))
			}
		}
	}

	return b.String()
}

func (m Model) renderRecords(width, height int) string {
	if len(m.records) == 0 {
		return "\n  " + DimStyle.Render("No personal records yet — complete some sets first.")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, rec := range m.records {
		line := fmt.Sprintf("  🏆 %-24s %g lbs × %d  %s",
			truncate(rec.Exercise, 24), rec.Weight, rec.Reps, rec.Date.Local().Format("Jan 02, 2006"))
		if rec.Improvement > 0 {
			line += "  " + ImprovementStyle.Render(fmt.Sprintf("+%g lbs", rec.Improvement))
		}
		if i == m.cursor[tabRecords] {
			b.WriteString(SelectedStyle.Render(truncate(line, width)))
		} else {
			b.WriteString(RecordStyle.Render(truncate(line, width)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderGoals(width, height int) string {
	if len(m.goals) == 0 {
		return "\n  " + DimStyle.Render("No goals yet. Press g to add starter goals, or: fittrack goal add")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, g := range m.goals {
		mark := DimStyle.Render("○")
		if g.Completed {
			mark = CompleteStyle.Render("✓")
		}
		title := NormalStyle.Render(truncate(g.Title, 32))
		if i == m.cursor[tabGoals] {
			title = SelectedStyle.Render(truncate(g.Title, 32))
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", mark, title))
		b.WriteString("    ")
		b.WriteString(progressBar(g.Current, g.Target, 24))
		b.WriteString(DimStyle.Render(fmt.Sprintf("  %g / %g %s", g.Current, g.Target, g.Unit)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderHelpModal() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Key Bindings"))
	b.WriteString("\n\n")
	for _, row := range m.keys.FullHelp() {
		b.WriteString(fmt.Sprintf("%-14s %s\n", StatValueStyle.Render(row[0]), row[1]))
	}
	b.WriteString("\n")
	b.WriteString(FooterStyle.Render("esc to close"))
	return ModalStyle.Render(b.String())
}

func (m Model) renderDeleteModal() string {
	kind := "workout"
	if m.deleteIsGoal {
		kind = "goal"
	}
	body := fmt.Sprintf("Delete this %s?\n\n%s", kind,
		FooterStyle.Render("y to confirm, n to cancel"))
	return ModalStyle.Render(body)
}

// progressBar renders a fixed-width bar, clamped at full.
func progressBar(current, target float64, width int) string {
	ratio := 0.0
	if target > 0 {
		ratio = current / target
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	bar := CompleteStyle.Render(strings.Repeat("█", filled)) +
		DimStyle.Render(strings.Repeat("░", width-filled))
	return bar
}

// placeOverlay centers content in a w×h screen.
func placeOverlay(content string, w, h int) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, content)
}

// getLine extracts line i from s, padded/truncated to width.
func getLine(s string, i, width int) string {
	lines := strings.Split(s, "\n")
	if i >= len(lines) {
		return strings.Repeat(" ", width)
	}
	line := lines[i]
	lw := lipgloss.Width(line)
	if lw > width {
		return truncate(line, width)
	}
	return line + strings.Repeat(" ", width-lw)
}

// truncate shortens s to width display cells, appending … when cut. Styled
// strings are measured with lipgloss so ANSI sequences don't count.
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	// Walk runes until the display width is reached. Good enough for the
	// plain strings passed here.
	var b strings.Builder
	total := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if total+rw > width-1 {
			break
		}
		b.WriteRune(r)
		total += rw
	}
	return b.String() + "…"
}
