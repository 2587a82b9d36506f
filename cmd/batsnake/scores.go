package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/batsnake/internal/core"
	"github.com/vovakirdan/batsnake/internal/registry"
	"github.com/vovakirdan/batsnake/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [edition]",
	Short: "Show the record and best runs",
	Long: `Display the persisted high score and the best recorded runs for an
edition. Without an edition, shows a summary of every edition.

Examples:
  batsnake scores
  batsnake scores gotham --limit 5
  batsnake scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history of the edition")
}

func runScores(_ *cobra.Command, args []string) error {
	history, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening history database: %w", err)
	}
	defer history.Close()

	scores := storage.NewHighScoreStore(settings.Storage, history, nil)

	if len(args) == 0 {
		return printSummary(history, scores)
	}

	edition := args[0]
	if !registry.Exists(edition) {
		return fmt.Errorf("unknown edition %q (run 'batsnake list')", edition)
	}

	if flagScoresClear {
		if err := history.ClearRuns(edition); err != nil {
			return err
		}
		fmt.Printf("Cleared run history for %s.\n", edition)
		return nil
	}

	runs, err := history.TopRuns(edition, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", edition)
	fmt.Printf("Record: %d\n", scores.Read(edition))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-4s  %-12s  %-8s  %s\n", "Rank", "Score", "Len", "Difficulty", "Hero", "Date")
	fmt.Printf("  %-4s  %-6s  %-4s  %-12s  %-8s  %s\n", "----", "-----", "---", "----------", "----", "----")
	for i, run := range runs {
		hero := run.Hero
		if hero == "" {
			hero = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-4d  %-12s  %-8s  %s\n",
			i+1, run.Score, run.Length, run.Difficulty, hero, run.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(history *storage.Store, scores core.HighScoreStore) error {
	stats, err := history.Stats()
	if err != nil {
		return err
	}

	fmt.Printf("  %-8s  %-6s  %-5s  %-6s  %-7s  %s\n", "Edition", "Record", "Runs", "Avg", "Longest", "Last played")
	fmt.Printf("  %-8s  %-6s  %-5s  %-6s  %-7s  %s\n", "-------", "------", "----", "---", "-------", "-----------")
	for _, e := range registry.List() {
		st, ok := stats[e.ID]
		if !ok {
			fmt.Printf("  %-8s  %-6d  %-5d  %-6s  %-7s  %s\n", e.ID, scores.Read(e.ID), 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-8s  %-6d  %-5d  %-6.1f  %-7d  %s\n",
			e.ID, scores.Read(e.ID), st.RunsCount, st.AvgScore, st.LongestLen, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
