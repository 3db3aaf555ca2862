package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/session"
	"github.com/abhisek/keydrill/internal/ui/components"
	"github.com/abhisek/keydrill/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.confirming {
		return renderQuitConfirm(width, height)
	}

	cur, ok := q.sess.CurrentQuestion()
	if !ok {
		return components.Center(theme.Dimmed.Render("No question to show."), width, height)
	}

	cw := components.ContentWidth(width)
	p := q.sess.Progress()

	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", p.Current, p.Total),
		p.Percentage, "", cw,
	).View()

	meta := theme.Dimmed.Render(fmt.Sprintf("%s %s  ·  %s",
		cur.CategoryIcon, cur.Category.DisplayName(), catalog.DifficultyOf(cur.Key)))

	var card strings.Builder
	card.WriteString(lipgloss.PlaceHorizontal(cw-6, lipgloss.Center, theme.KeyCap.Render(cur.Key)))
	card.WriteString("\n\n")
	card.WriteString(theme.Body.Bold(true).Render("What does this shortcut do?"))
	card.WriteString("\n\n")
	card.WriteString(q.choices.View())

	sections := []string{bar, meta, components.Panel(card.String(), cw)}

	switch q.sess.Phase() {
	case session.PhaseAwaitingAnswer:
		if q.sess.HintUsed() {
			sections = append(sections, theme.Hint.Render("💡 "+cur.Hint))
		} else {
			sections = append(sections, theme.Dimmed.Render("Select 1-4 or use arrows + Enter · h for a hint"))
		}
	case session.PhaseAnswered:
		sections = append(sections, q.renderFeedback(cur, cw))
	}

	return components.Center(strings.Join(sections, "\n\n"), width, height)
}

func (q *QuizScreen) renderFeedback(cur session.Question, cw int) string {
	fb := q.sess.Feedback()

	var b strings.Builder
	if fb.Kind == session.FeedbackCorrect {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
		b.WriteString("  ")
		b.WriteString(theme.Body.Render("Answer: " + cur.Options[cur.AnswerIndex].Text))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(cur.Description))
	if cur.Tips != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Tip: " + cur.Tips))
	}

	border := theme.Success
	if fb.Kind != session.FeedbackCorrect {
		border = theme.Error
	}
	return components.HighlightPanel(b.String(), cw, border)
}

func renderQuitConfirm(width, height int) string {
	content := theme.Title.Render("End this quiz?") + "\n\n" +
		theme.Body.Render("Your answers so far will be discarded.") + "\n\n" +
		theme.Dimmed.Render("Y to go home · N to keep going")
	return components.Center(components.Panel(content, 44), width, height)
}
