package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/models"
)

var leaderboardCmd = &cobra.Command{
	Use:       "leaderboard [mode]",
	Short:     "Show the top results of a drill",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"chord", "scale", "interval", "cadence", "progression"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := drill.ParseMode(args[0])
		if err != nil {
			return err
		}
		engine, store, err := openEngine()
		if err != nil {
			return err
		}
		defer store.Close()

		printLeaderboard(os.Stdout, mode, engine.Leaderboard(mode))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leaderboardCmd)
}

func printLeaderboard(out io.Writer, mode drill.Mode, lb models.Leaderboard) {
	if len(lb) == 0 {
		fmt.Fprintf(out, "No %s quizzes completed yet.\n", mode)
		return
	}

	fmt.Fprintf(out, "\n🏆 %s leaderboard\n\n", mode)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tAccuracy\tScore\tTime\tDifficulty\tRating\tDate")
	fmt.Fprintln(w, "-\t--------\t-----\t----\t----------\t------\t----")
	for i, r := range lb {
		fmt.Fprintf(w, "%d\t%.0f%%\t%d/%d\t%s\t%s\t%+d\t%s\n",
			i+1, r.Accuracy*100, r.Correct, r.Total, r.TotalTime.Round(time.Second),
			r.Difficulty, r.RatingDelta, r.CompletedAt.Format("2006-01-02"))
	}
	w.Flush()
}
