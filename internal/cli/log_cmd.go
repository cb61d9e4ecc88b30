package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/skatelog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var variant, note string

	cmd := &cobra.Command{
		Use:   "log [SKILL_ID]",
		Short: "Log a practiced skill for the selected date",
		Long: "Log a practiced skill for the selected date (--date, default today).\n" +
			"Without SKILL_ID an interactive picker opens when running in a terminal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var skillID string
			if len(args) == 1 {
				skillID = args[0]
			} else {
				if !app.interactive() {
					return errors.New("skill id required (list ids with: skatelog skills)")
				}
				picker := app.PickSkill
				if picker == nil {
					picker = huhSkillPicker
				}
				picked, err := picker(ctx, app.Tracker.Catalog(), app.Tracker.Status)
				if err != nil {
					return err
				}
				skillID, variant = picked.SkillID, picked.Variant
				if note == "" {
					note = picked.Note
				}
			}

			entry, err := app.Tracker.LogPracticeByID(ctx, skillID, variant, strings.TrimSpace(note))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLogged(entry))
			warnIfUnsaved(cmd, app)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", "Variant, required for skills that have them (e.g. Single)")
	cmd.Flags().StringVar(&note, "note", "", "Note for this log")

	return cmd
}

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day",
		Short: "Show the logs of the selected date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date := app.Tracker.SelectedDate()
			fmt.Fprintln(cmd.OutOrStdout(),
				formatter.FormatDayLogs(date, app.Tracker.Today(), app.Tracker.LogsForDate(date)))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a practice log (ID may be a unique prefix)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Tracker.ResolveLogID(args[0])
			if err != nil {
				return err
			}
			entry := findLog(app, id)
			if !app.Tracker.DeleteLog(cmd.Context(), id) {
				return fmt.Errorf("practice log %s disappeared", id)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s on %s\n",
				formatter.StyleRed.Render("✖ Deleted"), formatter.Bold(entry), formatter.TruncID(id))
			warnIfUnsaved(cmd, app)
			return nil
		},
	}
}

func newNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note ID [TEXT...]",
		Short: "Set or clear the note of a practice log",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Tracker.ResolveLogID(args[0])
			if err != nil {
				return err
			}
			text := strings.TrimSpace(strings.Join(args[1:], " "))
			if !app.Tracker.UpdateNote(cmd.Context(), id, text) {
				return fmt.Errorf("practice log %s disappeared", id)
			}
			msg := "Note saved"
			if text == "" {
				msg = "Note cleared"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.StyleGreen.Render("✔ "+msg), formatter.TruncID(id))
			warnIfUnsaved(cmd, app)
			return nil
		},
	}
}

// findLog returns "SkillName (date)" for display, or the id if absent.
func findLog(app *App, id string) string {
	for _, l := range app.Tracker.Logs() {
		if l.ID == id {
			return fmt.Sprintf("%s (%s)", l.SkillName, l.Date)
		}
	}
	return id
}
