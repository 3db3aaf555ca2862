package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/keydrill/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the shortcut catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shortcuts (optionally filtered by category or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		return listShortcuts(cmd.OutOrStdout(), catalog.Default(), category, difficulty)
	},
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search keys, actions, descriptions, tips and hints",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyword := strings.Join(args, " ")
		matches := catalog.Default().Search(keyword)
		if len(matches) == 0 {
			return fmt.Errorf("no shortcuts match %q", keyword)
		}
		printShortcuts(cmd.OutOrStdout(), matches)
		return nil
	},
}

func init() {
	// catalog list defines its own filters; the root persistent ones
	// configure the quiz.
	catalogListCmd.Flags().String("category", "", "Filter by category (cursor, edit, history, control, advanced)")
	catalogListCmd.Flags().String("difficulty", "", "Filter by difficulty (easy, medium, hard)")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
}

func listShortcuts(out io.Writer, cat *catalog.Catalog, category, difficulty string) error {
	shortcuts := cat.All()

	if category != "" {
		c := catalog.Category(category)
		if !c.Valid() {
			return fmt.Errorf("unknown category %q", category)
		}
		shortcuts = cat.ByCategory(c)
	}

	if difficulty != "" {
		d, err := catalog.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}
		filtered := shortcuts[:0]
		for _, s := range shortcuts {
			if d.Matches(s.Key) {
				filtered = append(filtered, s)
			}
		}
		shortcuts = filtered
	}

	if len(shortcuts) == 0 {
		return fmt.Errorf("no shortcuts match category %q and difficulty %q", category, difficulty)
	}
	printShortcuts(out, shortcuts)
	return nil
}

func printShortcuts(out io.Writer, shortcuts []catalog.Shortcut) {
	fmt.Fprintf(out, "%-28s  %-30s  %-8s  %s\n", "Key", "Action", "Level", "Category")
	fmt.Fprintln(out, strings.Repeat("─", 100))

	for _, s := range shortcuts {
		action := s.Action
		if len(action) > 30 {
			action = action[:27] + "..."
		}
		fmt.Fprintf(out, "%-28s  %-30s  %-8s  %s\n",
			s.Key, action, catalog.DifficultyOf(s.Key), s.Category.DisplayName())
	}

	fmt.Fprintf(out, "\n%d shortcuts\n", len(shortcuts))
}
