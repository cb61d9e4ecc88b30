package cli

import (
	"fmt"

	"github.com/alexanderramin/skatelog/internal/cli/formatter"
	"github.com/alexanderramin/skatelog/internal/progress"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month as a practice heat grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if month == "" {
				month = app.Tracker.SelectedDate()[:7]
			}
			m, err := progress.MonthGrid(month, app.Tracker.Logs())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCalendar(m, app.Tracker.Today()))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month YYYY-MM (default month of the selected date)")

	return cmd
}

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show practice timeline, top skills and category split",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs := app.Tracker.Logs()
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStats(formatter.Stats{
				Daily:      progress.DailyCounts(logs),
				Skills:     progress.SkillCounts(logs),
				Categories: progress.CategoryCounts(logs, app.Tracker.Catalog()),
				TotalLogs:  len(logs),
			}, app.Tracker.Today()))
			return nil
		},
	}
}
