package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/models"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ratings, accuracy and review history",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, store, err := openEngine()
		if err != nil {
			return err
		}
		defer store.Close()

		reviews, err := store.GetReviewStats(cfg.Profile)
		if err != nil {
			return fmt.Errorf("error fetching review stats: %w", err)
		}
		printStats(os.Stdout, engine, reviews)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func printStats(out io.Writer, engine *drill.Engine, reviews *models.ReviewStats) {
	fmt.Fprintln(out, "\n📊 Drill Ratings")
	fmt.Fprintln(out, "================")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Drill\tRating\tPeak\tRank\tAnswered\tAccuracy\tPractice")
	fmt.Fprintln(w, "-----\t------\t----\t----\t--------\t--------\t--------")
	for _, d := range engine.Definitions() {
		st := engine.Stats(d.Mode)
		rating, rank := engine.Rating(d.Mode)
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%.0f%%\t%s\n",
			d.Mode, rating, st.PeakRating, rank.Title, st.TotalQuestionsAnswered,
			st.Accuracy()*100, st.TotalPracticeTime.Round(time.Second))
	}
	w.Flush()

	for _, d := range engine.Definitions() {
		st := engine.Stats(d.Mode)
		if weak := weakest(st.PerSymbol, 3); len(weak) > 0 {
			fmt.Fprintf(out, "\n🎯 Weakest %s topics: ", d.Mode)
			for i, k := range weak {
				if i > 0 {
					fmt.Fprint(out, ", ")
				}
				fmt.Fprintf(out, "%s (%.0f%%)", k, st.PerSymbol[k].Accuracy()*100)
			}
			fmt.Fprintln(out)
		}
	}

	if reviews == nil {
		return
	}
	fmt.Fprintln(out, "\n📈 Review History")
	fmt.Fprintln(out, "=================")
	fmt.Fprintf(out, "Total Reviews:      %d\n", reviews.TotalReviews)
	fmt.Fprintf(out, "Reviews Last 7D:    %d\n", reviews.ReviewsLast7Days)
	fmt.Fprintf(out, "Accuracy:           %.0f%%\n", reviews.Accuracy*100)
	fmt.Fprintf(out, "Avg Response:       %.1fs\n", reviews.AverageResponseMS/1000)

	modes := make([]string, 0, len(reviews.CountByMode))
	for m := range reviews.CountByMode {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	for _, m := range modes {
		count := reviews.CountByMode[m]
		bar := ""
		for j := 0; j < count && j < 40; j++ {
			bar += "█"
		}
		fmt.Fprintf(out, "  %-12s %4d %s\n", m, count, bar)
	}
	fmt.Fprintln(out)
}

// weakest returns up to n answered keys with the lowest accuracy.
func weakest(tallies map[string]models.Tally, n int) []string {
	keys := make([]string, 0, len(tallies))
	for k, t := range tallies {
		if t.Answered > 0 {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ai, aj := tallies[keys[i]].Accuracy(), tallies[keys[j]].Accuracy()
		if ai != aj {
			return ai < aj
		}
		return keys[i] < keys[j]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
