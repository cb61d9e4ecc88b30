package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/skatelog/internal/cli/formatter"
	"github.com/alexanderramin/skatelog/internal/service"
	"github.com/spf13/cobra"
)

// App holds everything the commands need. Tracker may be left nil when
// Bootstrap is set; it is then built before the first command runs.
type App struct {
	Tracker   *service.Tracker
	ExportDir string

	// IsInteractive reports whether stdin is a terminal; nil means never.
	IsInteractive func() bool
	// PickSkill prompts for a skill when "log" is run without one.
	PickSkill SkillPicker
	// Bootstrap loads config and opens storage using the --config path.
	Bootstrap func(ctx context.Context, app *App, configPath string) error
	// Now defaults to time.Now and stamps export file names.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "skatelog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath, date string

	root := &cobra.Command{
		Use:           "skatelog",
		Short:         "Figure skating practice tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Tracker == nil {
				if app.Bootstrap == nil {
					return errors.New("tracker is not configured")
				}
				if err := app.Bootstrap(cmd.Context(), app, configPath); err != nil {
					return err
				}
			}
			if date == "" {
				date = app.Tracker.Today()
			}
			return app.Tracker.SelectDate(date)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/skatelog/config.yaml)")
	root.PersistentFlags().StringVar(&date, "date", "", "Practice date YYYY-MM-DD (default today)")

	root.AddCommand(
		newSkillsCmd(app),
		newLogCmd(app),
		newDayCmd(app),
		newDeleteCmd(app),
		newNoteCmd(app),
		newStatusCmd(app),
		newProgressCmd(app),
		newCalendarCmd(app),
		newStatsCmd(app),
		newExportCmd(app),
	)

	return root
}

// warnIfUnsaved reports a failed save after a mutation. The change is kept in
// memory only, which for a one-shot command means it is lost.
func warnIfUnsaved(cmd *cobra.Command, app *App) {
	if err := app.Tracker.LastSaveError(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Warning(fmt.Sprintf("change not saved: %v", err)))
	}
}
