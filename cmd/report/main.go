// golazo-report prints analytics tables straight from the CSV dataset,
// without going through the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/golazo-dev/golazo/internal/adapters/dataset"
	"github.com/golazo-dev/golazo/internal/domain/stats"
	"github.com/golazo-dev/golazo/internal/report"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "golazo-report",
	Short: "World Cup analytics report tool",
	Long:  "Compute descriptive statistics over the World Cup dataset and print them as tables.",
}

var worldcupsCmd = &cobra.Command{
	Use:   "worldcups",
	Short: "Goals and per-match averages for every edition",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		records, err := engine.GoalsPerWorldCup()
		if err != nil {
			return err
		}
		report.PrintWorldCupsTo(cmd.OutOrStdout(), records)
		return nil
	},
}

var (
	teamsMetric string
	teamsLimit  int
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "Top teams by wins, goals, appearances or titles",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		metric := stats.ParseMetric(teamsMetric)
		report.PrintTopTeamsTo(cmd.OutOrStdout(), engine.TopTeams(metric, teamsLimit), metric)
		return nil
	},
}

var continentsCmd = &cobra.Command{
	Use:   "continents",
	Short: "Total goals attributed to each continent",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd.Context())
		if err != nil {
			return err
		}
		report.PrintContinentsTo(cmd.OutOrStdout(), engine.GoalsByContinent())
		return nil
	},
}

func loadEngine(ctx context.Context) (*stats.Engine, error) {
	ds, err := dataset.Load(ctx, dataDir)
	if err != nil {
		return nil, err
	}
	return stats.New(ds.Matches, ds.Tournaments), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "data", "directory holding matches.csv and tournaments.csv")
	teamsCmd.Flags().StringVar(&teamsMetric, "metric", "wins", "ranking metric: wins, goals, appearances or titles")
	teamsCmd.Flags().IntVar(&teamsLimit, "limit", stats.DefaultTopLimit, "number of teams to print")

	rootCmd.AddCommand(worldcupsCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(continentsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
