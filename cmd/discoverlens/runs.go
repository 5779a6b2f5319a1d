package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mriviere/discoverlens/internal/analysis"
	"github.com/mriviere/discoverlens/internal/cli"
	"github.com/mriviere/discoverlens/internal/export"
	"github.com/mriviere/discoverlens/internal/patterns"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved analysis runs",
	}

	cmd.AddCommand(runsListCmd())
	cmd.AddCommand(runsShowCmd())

	return cmd
}

func runsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent runs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx := c.Context()
			limit, _ := c.Flags().GetInt("limit")

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("Failed to close database", "error", closeErr)
				}
			}()

			runs, err := store.ListRuns(ctx, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No saved runs"))
				return nil
			}

			fmt.Println(cli.FormatTitle("Saved runs"))
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("  %-5s %-16s  %-30s %6s  %s",
				"id", "date", "source", "titres", "modèle")))
			for _, run := range runs {
				fmt.Printf("  #%-4d %s  %-30s %5d titres  (%s)\n",
					run.ID, run.CreatedAt.Format("2006-01-02 15:04"),
					run.Source, run.TotalTitles, run.Model)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of runs to list")

	return cmd
}

func runsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <run-id>",
		Short: "Re-aggregate and display a saved run",
		Long: `Rebuild the full report of a saved run from its stored
classifications. No embedding backend is touched: aggregation is a pure
function of the classified set, so the report matches the original run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			ctx := c.Context()

			runID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid run id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("Failed to close database", "error", closeErr)
				}
			}()

			run, err := store.GetRun(ctx, runID)
			if err != nil {
				return err
			}
			if run == nil {
				return fmt.Errorf("run %d not found", runID)
			}

			results, err := store.GetRunResults(ctx, runID)
			if err != nil {
				return err
			}

			pipeline := analysis.NewPipeline(nil, patterns.NewDefaultMiner(), slog.Default())
			report := pipeline.Aggregate(results)

			fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("run #%d  %s  %s",
				run.ID, run.CreatedAt.Format("2006-01-02 15:04"), run.Source)))
			fmt.Println(export.NewFormatter().FormatSummary(report))
			return nil
		},
	}
}
