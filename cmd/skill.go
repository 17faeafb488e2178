package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"skatetrack/internal/dashboard"
	"skatetrack/internal/domain"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage your skill dashboard",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show your skills and progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		snap := env.tracker.Snapshot()
		if len(snap.UserSports) == 0 {
			fmt.Println("No sports yet.")
			return nil
		}

		for _, sport := range snap.UserSports {
			fmt.Printf("%s  (%s)\n", sport.Name, sport.ID)
			fmt.Println(strings.Repeat("─", 72))

			if len(sport.Skills) == 0 {
				fmt.Println("  (no skills adopted yet, try `skatetrack shop list`)")
				fmt.Println()
				continue
			}

			for _, skill := range sport.Skills {
				fmt.Printf("  %-12s  %s\n", skill.ID, skill.Name)
				for _, sub := range skill.SubSkills {
					fmt.Printf("    %-12s  %-34s  %s  %d/%d\n",
						sub.ID, truncate(sub.Name, 34),
						progressBar(sub.Progress), sub.Progress, domain.MaxProgress)
				}
			}
			fmt.Println()
		}
		return nil
	},
}

var skillAdoptCmd = &cobra.Command{
	Use:   "adopt <sport-id> <skill-id>",
	Short: "Copy a skill from the shop onto your dashboard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		env.tracker.AdoptSkill(args[0], args[1])
		fmt.Printf("Adopted %s into %s\n", args[1], args[0])
		return nil
	},
}

var skillAddCmd = &cobra.Command{
	Use:   "add <sport-id> <name>",
	Short: "Create a custom skill on your dashboard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := domain.CleanName(args[1])
		if name == "" {
			return fmt.Errorf("skill name must not be empty")
		}

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		id := env.tracker.AddCustomSkill(args[0], name)
		if id == "" {
			return fmt.Errorf("sport %q not found", args[0])
		}
		fmt.Println("Created skill", id)
		return nil
	},
}

var skillSubCmd = &cobra.Command{
	Use:   "sub <sport-id> <skill-id> <name>",
	Short: "Add a sub-skill to one of your skills",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := domain.CleanName(args[2])
		if name == "" {
			return fmt.Errorf("sub-skill name must not be empty")
		}

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		id := env.tracker.AddSubSkill(args[0], args[1], name)
		if id == "" {
			return fmt.Errorf("skill %q not found in sport %q", args[1], args[0])
		}
		fmt.Println("Created sub-skill", id)
		return nil
	},
}

var skillUpdateCmd = &cobra.Command{
	Use:   "update <sport-id> <skill-id> <sub-skill-id>",
	Short: "Update progress, notes or links on a sub-skill",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var upd dashboard.SubSkillUpdate

		if cmd.Flags().Changed("progress") {
			p, _ := cmd.Flags().GetInt("progress")
			if p < 0 || p > domain.MaxProgress {
				return fmt.Errorf("progress must be between 0 and %d", domain.MaxProgress)
			}
			upd.Progress = &p
		}
		if cmd.Flags().Changed("description") {
			d, _ := cmd.Flags().GetString("description")
			upd.Description = &d
		}
		if cmd.Flags().Changed("progression") {
			p, _ := cmd.Flags().GetString("progression")
			upd.Progression = &p
		}
		links, _ := cmd.Flags().GetStringArray("link")
		for _, l := range links {
			if !domain.IsYouTubeLink(l) {
				return fmt.Errorf("%q is not a YouTube link", l)
			}
		}

		if upd.Progress == nil && upd.Description == nil && upd.Progression == nil && len(links) == 0 {
			return fmt.Errorf("nothing to update: pass --progress, --description, --progression or --link")
		}

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if len(links) > 0 {
			merged := subSkillLinks(env.tracker.Snapshot().UserSports, args[0], args[1], args[2])
			for _, l := range links {
				merged = domain.AddLink(merged, l)
			}
			upd.YoutubeLinks = merged
		}

		env.tracker.UpdateSubSkill(args[0], args[1], args[2], upd)
		fmt.Println("Updated", args[2])
		return nil
	},
}

var skillRemoveCmd = &cobra.Command{
	Use:   "remove <sport-id> <skill-id> [sub-skill-id]",
	Short: "Remove a skill or a single sub-skill from your dashboard",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		if len(args) == 3 {
			env.tracker.DeleteSubSkill(args[0], args[1], args[2])
			fmt.Println("Removed sub-skill", args[2])
			return nil
		}
		env.tracker.DeleteSkill(args[0], args[1])
		fmt.Println("Removed skill", args[1])
		return nil
	},
}

func progressBar(p int) string {
	if p < 0 {
		p = 0
	}
	if p > domain.MaxProgress {
		p = domain.MaxProgress
	}
	return strings.Repeat("■", p) + strings.Repeat("·", domain.MaxProgress-p)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// subSkillLinks returns the sub-skill's current links, or nil when it does
// not exist.
func subSkillLinks(sports []domain.Sport, sportID, skillID, subSkillID string) []string {
	for _, sport := range sports {
		if sport.ID != sportID {
			continue
		}
		for _, skill := range sport.Skills {
			if skill.ID != skillID {
				continue
			}
			for _, sub := range skill.SubSkills {
				if sub.ID == subSkillID {
					return sub.YoutubeLinks
				}
			}
		}
	}
	return nil
}

func init() {
	skillUpdateCmd.Flags().Int("progress", 0, fmt.Sprintf("Progress level (0-%d)", domain.MaxProgress))
	skillUpdateCmd.Flags().String("description", "", "Free-form notes about the sub-skill")
	skillUpdateCmd.Flags().String("progression", "", "Next step you are working toward")
	skillUpdateCmd.Flags().StringArray("link", nil, "YouTube link to attach (repeatable)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillAdoptCmd)
	skillCmd.AddCommand(skillAddCmd)
	skillCmd.AddCommand(skillSubCmd)
	skillCmd.AddCommand(skillUpdateCmd)
	skillCmd.AddCommand(skillRemoveCmd)
}
