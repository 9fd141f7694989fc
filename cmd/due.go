package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/jazzdrill/internal/algorithm"
)

var dueMode string

var dueCmd = &cobra.Command{
	Use:   "due",
	Short: "Show drill items due for review",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := parseModeArg(dueMode)
		if err != nil {
			return err
		}
		engine, store, err := openEngine()
		if err != nil {
			return err
		}
		defer store.Close()

		now := time.Now()
		printDue(os.Stdout, engine.DueItems(mode, now), now)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dueCmd)
	dueCmd.Flags().StringVarP(&dueMode, "mode", "m", "", "only this drill")
}

func printDue(out io.Writer, items []algorithm.Schedule, now time.Time) {
	if len(items) == 0 {
		fmt.Fprintln(out, "✅ Nothing due for review. Good job.")
		return
	}

	fmt.Fprintf(out, "🔥 %d items due:\n\n", len(items))

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Drill\tTopic\tKey\tQuestion\tDue\tOverdue\tInterval\tEase\tAccuracy")
	fmt.Fprintln(w, "-----\t-----\t---\t--------\t---\t-------\t--------\t----\t--------")
	for _, s := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.1fd\t%.2f\t%.0f%%\n",
			s.Item.Mode, s.Item.Topic, s.Item.Key, s.Item.Variant,
			s.DueDate.Format("2006-01-02"), s.Overdue(now).Round(time.Minute),
			s.IntervalDays, s.EaseFactor, s.Accuracy()*100)
	}
	w.Flush()
}
