package cli

import (
	"fmt"

	"github.com/alexanderramin/skatelog/internal/cli/formatter"
	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/progress"
	"github.com/spf13/cobra"
)

func newSkillsCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List catalog skills with status and days practiced",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := "Skills"
			var cat domain.Category
			if category != "" {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				cat, title = c, c.Label()
			}
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatSkillRows(title, app.Tracker.CatalogRows(cat), app.Tracker.Today()))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only this category: jumps, spins, footwork, field-moves")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(domain.Categories()))
		for _, c := range domain.Categories() {
			out = append(out, string(c))
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status SKILL_ID STATUS",
		Short: "Set a skill's status: new, learning or mastered",
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return []string{string(domain.StatusNew), string(domain.StatusLearning), string(domain.StatusMastered)}, cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}
			if err := app.Tracker.ChangeSkillStatus(cmd.Context(), args[0], status); err != nil {
				return err
			}
			name := args[0]
			if skill, err := app.Tracker.Catalog().Lookup(args[0]); err == nil {
				name = skill.Name
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", formatter.Bold(name), formatter.StatusPill(status))
			warnIfUnsaved(cmd, app)
			return nil
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show progress of practiced skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := app.Tracker.Today()
			if all {
				fmt.Fprintln(cmd.OutOrStdout(),
					formatter.FormatSkillRows("All skills", app.Tracker.CatalogRows(""), today))
				return nil
			}
			entries := app.Tracker.Progress()
			progress.SortForDisplay(entries)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProgress(entries, today))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include catalog skills that were never practiced")

	return cmd
}
