package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"skatetrack/internal/dashboard"
	"skatetrack/internal/tips"
)

var tipsCmd = &cobra.Command{
	Use:   "tips <skill name>",
	Short: "Get AI coaching tips for a skill",
	Long: "Asks the configured model for a short coaching guide in Brazilian\n" +
		"Portuguese: technique details, common mistakes and practice drills.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		skillName := strings.Join(args, " ")

		cfg := tips.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Timeout)
		defer cancel()

		provider, err := tips.NewProvider(ctx, cfg, logfFor(cmd))
		if err != nil {
			return err
		}

		coach := tips.NewCoach(provider)
		guide, err := coach.ForSkill(ctx, skillName)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			fmt.Println(tips.FallbackMessage)
			return nil
		}

		rendered := guide.Render()
		fmt.Printf("Dicas para %q (%s)\n\n", skillName, provider.ModelID())
		fmt.Println(rendered)

		saveTo, _ := cmd.Flags().GetString("save-to")
		if saveTo == "" {
			return nil
		}
		parts := strings.Split(saveTo, "/")
		if len(parts) != 3 {
			return fmt.Errorf("--save-to wants <sport-id>/<skill-id>/<sub-skill-id>, got %q", saveTo)
		}

		env, err := openAppEnv(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		env.tracker.UpdateSubSkill(parts[0], parts[1], parts[2], dashboard.SubSkillUpdate{
			Description: &rendered,
		})
		fmt.Printf("Saved tips to sub-skill %s\n", parts[2])
		return nil
	},
}

func init() {
	tipsCmd.Flags().String("save-to", "", "Write the tips into a sub-skill description (<sport-id>/<skill-id>/<sub-skill-id>)")
}
