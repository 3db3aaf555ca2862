package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/keydrill/internal/catalog"
	"github.com/abhisek/keydrill/internal/report"
	"github.com/abhisek/keydrill/internal/session"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Run a quiz in plain line mode (no full-screen UI)",
	Long: `Ask the quiz questions one by one on stdin/stdout.

Type the option number to answer, h for the hint, or q to stop.
Useful over slow connections or when piping answers in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = e.log.Sync() }()

		return runDrill(cmd.InOrStdin(), cmd.OutOrStdout(), e.sess)
	},
}

// runDrill plays one quiz over in and out and prints the report at the end.
func runDrill(in io.Reader, out io.Writer, sess *session.Session) error {
	if err := sess.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	settings := sess.Settings()
	fmt.Fprintf(out, "keydrill: %d questions · %s · %s\n\n",
		sess.Progress().Total, settings.Difficulty, settings.CategoryLabel())

	for sess.Page() == session.PageQuiz {
		q, ok := sess.CurrentQuestion()
		if !ok {
			break
		}
		p := sess.Progress()

		fmt.Fprintf(out, "── Question %d/%d ──\n", p.Current, p.Total)
		fmt.Fprintf(out, "%s  [%s %s · %s]\n", q.Key, q.CategoryIcon, q.Category.DisplayName(), catalog.DifficultyOf(q.Key))
		for i, o := range q.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, o.Text)
		}

		choice, quit := readChoice(scanner, out, sess, q)
		if quit {
			sess.ResetToHome()
			fmt.Fprintln(out, "\nQuiz abandoned.")
			return nil
		}

		sess.SubmitAnswer(choice)
		if sess.Feedback().Kind == session.FeedbackCorrect {
			fmt.Fprintln(out, "✓ Correct!")
		} else {
			fmt.Fprintf(out, "✗ Not quite. Answer: %s\n", q.Options[q.AnswerIndex].Text)
		}
		fmt.Fprintln(out, q.Description)
		if q.Tips != "" {
			fmt.Fprintf(out, "Tip: %s\n", q.Tips)
		}
		fmt.Fprintln(out)

		sess.Advance()
	}

	printReport(out, report.FromSession(sess))
	sess.ResetToHome()
	return nil
}

// readChoice prompts until a valid option number is entered. It reports
// quit when the user types q or input ends.
func readChoice(scanner *bufio.Scanner, out io.Writer, sess *session.Session, q session.Question) (int, bool) {
	for {
		fmt.Fprintf(out, "Your answer (1-%d, h for hint, q to quit): ", len(q.Options))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return 0, true
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch input {
		case "q", "quit":
			return 0, true
		case "h", "hint":
			if sess.UseHint() {
				fmt.Fprintf(out, "Hint: %s\n", q.Hint)
			} else {
				fmt.Fprintln(out, "Hint already shown.")
			}
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", len(q.Options))
			continue
		}
		return n - 1, false
	}
}

func printReport(out io.Writer, rep *report.Report) {
	st := rep.Stats
	fmt.Fprintf(out, "── Summary: %d/%d correct (%.2f%%) ──\n", st.CorrectAnswers, st.TotalQuestions, st.Accuracy)
	fmt.Fprintf(out, "Average time: %.2fs · Hints: %d · Best streak: %d\n", st.AverageTime, st.HintsUsed, rep.Streak.Max)

	for _, c := range st.SortedCategories() {
		cs := st.CategoryStats[c]
		fmt.Fprintf(out, "  %s %-28s %d/%d\n", c.Icon(), c.DisplayName(), cs.Correct, cs.Total)
	}

	fmt.Fprintf(out, "\nLevel: %s\n", rep.Practice.Level)
	for _, msg := range rep.Practice.Recommendations {
		fmt.Fprintf(out, "  • %s\n", msg)
	}

	if len(rep.RecommendedShortcuts) > 0 {
		fmt.Fprintln(out, "\nReview these:")
		for _, s := range rep.RecommendedShortcuts {
			fmt.Fprintf(out, "  %-28s %s\n", s.Key, s.Action)
		}
	}
}
