package result

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/practice"
	"github.com/abhisek/keydrill/internal/ui/components"
	"github.com/abhisek/keydrill/internal/ui/theme"
)

// maxShownShortcuts caps the recommended shortcuts listed on screen.
const maxShownShortcuts = 5

func (r *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	half := (cw - 2) / 2

	left := components.Panel(r.renderScore(half-6)+"\n\n"+r.renderCategories(half-6), half)
	right := components.Panel(r.renderPractice(half-6), half)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	sections := []string{
		theme.Title.Render("Quiz complete"),
		body,
		r.buttons.View(),
	}
	if r.errMsg != "" {
		sections = append(sections, theme.Incorrect.Render(r.errMsg))
	}
	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (r *ResultScreen) renderScore(w int) string {
	st := r.report.Stats
	streak := r.report.Streak

	var b strings.Builder
	b.WriteString(theme.Section.Render("Score"))
	b.WriteString("\n")
	b.WriteString(theme.Body.Bold(true).Render(
		fmt.Sprintf("%d / %d correct  (%.2f%%)", st.CorrectAnswers, st.TotalQuestions, st.Accuracy)))
	b.WriteString("\n")
	b.WriteString(theme.Dimmed.Render(
		fmt.Sprintf("avg %.2fs · %d hints · best streak %d", st.AverageTime, st.HintsUsed, streak.Max)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", st.Accuracy, "", w).View())
	return b.String()
}

func (r *ResultScreen) renderCategories(w int) string {
	st := r.report.Stats

	var b strings.Builder
	b.WriteString(theme.Section.Render("By category"))
	for _, c := range st.SortedCategories() {
		cs := st.CategoryStats[c]
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(c.Icon() + " " + c.DisplayName()))
		b.WriteString("\n")
		b.WriteString(components.NewProgressBar("", cs.Accuracy()*100,
			fmt.Sprintf("%d/%d", cs.Correct, cs.Total), w).View())
	}
	return b.String()
}

func (r *ResultScreen) renderPractice(w int) string {
	rep := r.report
	wrap := lipgloss.NewStyle().Width(w)

	var b strings.Builder
	b.WriteString(theme.Section.Render("Level: " + levelLabel(rep.Practice.Level)))
	b.WriteString("\n")
	b.WriteString(theme.Dimmed.Render(fmt.Sprintf("%d mastered · %d struggling · %.2f%% of catalog",
		len(rep.Progress.Mastered), len(rep.Progress.Struggling), rep.Progress.ProgressPercentage)))
	b.WriteString("\n")

	for _, msg := range rep.Practice.Recommendations {
		b.WriteString("\n")
		b.WriteString(wrap.Render(theme.Body.Render("• " + msg)))
	}

	if len(rep.Practice.WeakCategories) > 0 {
		names := make([]string, len(rep.Practice.WeakCategories))
		for i, c := range rep.Practice.WeakCategories {
			names[i] = c.DisplayName()
		}
		b.WriteString("\n\n")
		b.WriteString(wrap.Render(theme.Incorrect.Render("Weak: " + strings.Join(names, ", "))))
	}

	if len(rep.RecommendedShortcuts) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Section.Render("Review these"))
		for _, s := range rep.RecommendedShortcuts[:min(len(rep.RecommendedShortcuts), maxShownShortcuts)] {
			b.WriteString("\n")
			b.WriteString(renderShortcut(s, w))
		}
	}
	return b.String()
}

func renderShortcut(s catalog.Shortcut, w int) string {
	line := theme.Selected.Render(s.Key) + "  " + theme.Dimmed.Render(s.Action)
	return lipgloss.NewStyle().Width(w).MaxHeight(1).Render(line)
}

func levelLabel(l practice.Level) string {
	switch l {
	case practice.LevelAdvanced:
		return "Advanced"
	case practice.LevelIntermediate:
		return "Intermediate"
	default:
		return "Beginner"
	}
}
