package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	resetMode          string
	resetSchedulesOnly bool
	forceReset         bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear ratings, leaderboards and review schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseModeArg(resetMode)
		if err != nil {
			return err
		}
		scope := "every drill"
		if mode != "" {
			scope = "the " + string(mode) + " drill"
		}
		what := "all progress"
		if resetSchedulesOnly {
			what = "review schedules"
		}

		if !forceReset {
			fmt.Printf("⚠️  Are you sure you want to clear %s of %s for profile %q? (y/N): ", what, scope, cfg.Profile)
			reader := bufio.NewReader(os.Stdin)
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(strings.ToLower(input))
			if input != "y" && input != "yes" {
				fmt.Println("❌ Cancelled.")
				return nil
			}
		}

		engine, store, err := openEngine()
		if err != nil {
			return err
		}
		defer store.Close()

		if resetSchedulesOnly {
			n, err := engine.ResetSchedules(mode)
			if err != nil {
				return err
			}
			fmt.Printf("✅ Removed %d review schedules.\n", n)
			return nil
		}

		if err := engine.ResetProgress(mode); err != nil {
			return err
		}
		if mode == "" {
			if err := store.DeleteProfile(cfg.Profile); err != nil {
				return err
			}
		}
		fmt.Println("✅ Progress cleared.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().StringVarP(&resetMode, "mode", "m", "", "only this drill")
	resetCmd.Flags().BoolVar(&resetSchedulesOnly, "schedules", false, "only clear review schedules")
	resetCmd.Flags().BoolVarP(&forceReset, "force", "f", false, "Skip confirmation")
}
