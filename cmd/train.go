package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"skatetrack/internal/calendar"
	"skatetrack/internal/domain"
	"skatetrack/internal/training"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Plan and record training sessions",
}

var trainListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show planned and completed sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		snap := env.tracker.Snapshot()

		fmt.Println("Sessões Agendadas")
		fmt.Println(strings.Repeat("─", 72))
		planned := training.Planned(snap.Trainings)
		if len(planned) == 0 {
			fmt.Println("  (nenhuma)")
		}
		for _, s := range planned {
			printSession(s, snap.UserSports)
		}

		fmt.Println()
		fmt.Println("Sessões Concluídas")
		fmt.Println(strings.Repeat("─", 72))
		completed := training.Completed(snap.Trainings)
		if len(completed) == 0 {
			fmt.Println("  (nenhuma)")
		}
		for _, s := range completed {
			printSession(s, snap.UserSports)
		}
		return nil
	},
}

var trainAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Schedule a new training session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := domain.CleanName(args[0])
		if title == "" {
			return fmt.Errorf("session title must not be empty")
		}

		date, _ := cmd.Flags().GetString("date")
		at, _ := cmd.Flags().GetString("time")
		duration, _ := cmd.Flags().GetInt("duration")

		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
		}
		if _, err := time.Parse("15:04", at); err != nil {
			return fmt.Errorf("invalid time %q, want HH:MM", at)
		}
		if duration <= 0 {
			return fmt.Errorf("duration must be positive")
		}

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		session := domain.TrainingSession{
			ID:       domain.NewID("session"),
			Title:    title,
			Date:     date,
			Time:     at,
			Duration: duration,
		}
		env.tracker.AddTrainingSession(session)
		fmt.Println("Scheduled", session.ID, "for", training.FormatDate(date))
		return nil
	},
}

var trainCompleteCmd = &cobra.Command{
	Use:   "complete <session-id>",
	Short: "Mark a session as completed with a performance grade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetString("grade")
		notes, _ := cmd.Flags().GetString("notes")

		performance := domain.Performance(grade)
		if !performance.Valid() {
			return fmt.Errorf("grade must be one of: %s, %s, %s",
				domain.PerformanceGood, domain.PerformanceOk, domain.PerformanceBad)
		}

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		env.tracker.CompleteTrainingSession(args[0], performance, notes)
		fmt.Println("Completed", args[0])
		return nil
	},
}

var trainDeleteCmd = &cobra.Command{
	Use:   "delete <session-id>",
	Short: "Delete a training session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		env.tracker.DeleteTrainingSession(args[0])
		fmt.Println("Deleted", args[0])
		return nil
	},
}

var trainExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export planned sessions as an iCalendar file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		loc, err := time.LoadLocation(env.cfg.TimeZone)
		if err != nil {
			return fmt.Errorf("load time zone %q: %w", env.cfg.TimeZone, err)
		}

		snap := env.tracker.Snapshot()
		ics := calendar.ICS(training.Planned(snap.Trainings), loc)

		if out == "" {
			fmt.Print(ics)
			return nil
		}
		if err := os.WriteFile(out, []byte(ics), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Println("Wrote", out)
		return nil
	},
}

var trainPublishCmd = &cobra.Command{
	Use:   "publish <session-id>...",
	Short: "Publish sessions to your Google Calendar",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		cache := calendar.NewTokenCache(0)
		if flagToken, _ := cmd.Flags().GetString("token"); flagToken != "" {
			cache.Set(flagToken)
		} else if env.cfg.GoogleToken != "" {
			cache.Set(env.cfg.GoogleToken)
		}
		token, ok := cache.Token()
		if !ok {
			return fmt.Errorf("no access token: set SKATETRACK_GOOGLE_TOKEN or pass --token")
		}

		loc, err := time.LoadLocation(env.cfg.TimeZone)
		if err != nil {
			return fmt.Errorf("load time zone %q: %w", env.cfg.TimeZone, err)
		}

		logf := logfFor(cmd)
		status := calendar.NewStatusTracker(0, func(s calendar.Status) {
			logf("calendar: %s", s)
		})
		client := calendar.NewClient()
		snap := env.tracker.Snapshot()

		for _, id := range args {
			session, found := findSession(snap.Trainings, id)
			if !found {
				return fmt.Errorf("session %q not found", id)
			}

			ev, err := calendar.EventForSession(session, loc)
			if err != nil {
				return err
			}

			status.Begin()
			created, err := client.CreateEvent(cmd.Context(), token, ev)
			status.Finish(err)
			if err != nil {
				return fmt.Errorf("publish %s: %w", id, err)
			}
			fmt.Printf("Published %s: %s\n", id, created.HTMLLink)
		}
		return nil
	},
}

func printSession(s domain.TrainingSession, sports []domain.Sport) {
	status := s.Time
	if s.IsCompleted {
		status = string(s.Performance)
	}
	fmt.Printf("  %-14s  %-28s  %s  %dmin  %s\n",
		s.ID, truncate(s.Title, 28), training.FormatDate(s.Date), s.Duration, status)

	for _, sec := range s.Sections {
		fmt.Printf("      %s\n", sec.Name)
		for _, ex := range sec.Exercises {
			name := training.ExerciseName(sports, ex)
			if name == "" {
				name = "(exercício removido)"
			}
			fmt.Printf("        - %s  %s\n", name, training.FormatExerciseDetails(ex))
		}
	}
	if s.Notes != "" {
		fmt.Printf("      Notas: %s\n", s.Notes)
	}
}

func findSession(sessions []domain.TrainingSession, id string) (domain.TrainingSession, bool) {
	for _, s := range sessions {
		if s.ID == id {
			return s, true
		}
	}
	return domain.TrainingSession{}, false
}

func init() {
	trainAddCmd.Flags().String("date", "", "Session date (YYYY-MM-DD)")
	trainAddCmd.Flags().String("time", "10:00", "Session start time (HH:MM)")
	trainAddCmd.Flags().Int("duration", 60, "Session length in minutes")
	trainAddCmd.MarkFlagRequired("date")

	trainCompleteCmd.Flags().String("grade", "", "Performance grade (Bom, Ok or Ruim)")
	trainCompleteCmd.Flags().String("notes", "", "Notes about how the session went")
	trainCompleteCmd.MarkFlagRequired("grade")

	trainExportCmd.Flags().String("out", "", "Write the .ics to a file instead of stdout")

	trainPublishCmd.Flags().String("token", "", "Google OAuth access token")

	trainCmd.AddCommand(trainListCmd)
	trainCmd.AddCommand(trainAddCmd)
	trainCmd.AddCommand(trainCompleteCmd)
	trainCmd.AddCommand(trainDeleteCmd)
	trainCmd.AddCommand(trainExportCmd)
	trainCmd.AddCommand(trainPublishCmd)
}
