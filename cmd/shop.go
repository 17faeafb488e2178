package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"skatetrack/internal/domain"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse the skill catalog",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog skills available to adopt",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		snap := env.tracker.Snapshot()
		adopted := adoptedIDs(snap.UserSports)

		for _, sport := range snap.ShopSports {
			fmt.Printf("%s  (%s)\n", sport.Name, sport.ID)
			fmt.Println(strings.Repeat("─", 72))

			for _, skill := range sport.Skills {
				mark := " "
				if adopted[skill.ID] {
					mark = "✓"
				}
				fmt.Printf("%s %-12s  %-30s  %d sub-skills\n",
					mark, skill.ID, truncate(skill.Name, 30), len(skill.SubSkills))
			}
			fmt.Println()
		}

		fmt.Println("✓ = already on your dashboard")
		return nil
	},
}

var shopAddCmd = &cobra.Command{
	Use:   "add <sport-id> <name>",
	Short: "Add a new skill to the catalog",
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

		id := env.tracker.AddSkillToShop(args[0], name)
		if id == "" {
			return fmt.Errorf("sport %q not found", args[0])
		}
		fmt.Println("Added catalog skill", id)
		return nil
	},
}

var shopSportCmd = &cobra.Command{
	Use:   "sport <name>",
	Short: "Create a new sport in the catalog and on your dashboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := domain.CleanName(args[0])
		if name == "" {
			return fmt.Errorf("sport name must not be empty")
		}

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		id := env.tracker.AddSport(name)
		fmt.Println("Created sport", id)
		return nil
	},
}

var shopRemoveCmd = &cobra.Command{
	Use:   "remove <sport-id> <skill-id>",
	Short: "Remove a skill from the catalog and from your dashboard",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		env.tracker.RemoveSkillFromShop(args[0], args[1])
		fmt.Println("Removed", args[1])
		return nil
	},
}

// adoptedIDs collects the skill IDs already present on the dashboard.
func adoptedIDs(sports []domain.Sport) map[string]bool {
	out := make(map[string]bool)
	for _, sport := range sports {
		for _, skill := range sport.Skills {
			out[skill.ID] = true
		}
	}
	return out
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopAddCmd)
	shopCmd.AddCommand(shopRemoveCmd)
	shopCmd.AddCommand(shopSportCmd)
}
