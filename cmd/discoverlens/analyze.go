package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mriviere/discoverlens/internal/analysis"
	"github.com/mriviere/discoverlens/internal/cli"
	"github.com/mriviere/discoverlens/internal/export"
	"github.com/mriviere/discoverlens/internal/input"
	"github.com/mriviere/discoverlens/internal/patterns"
	"github.com/mriviere/discoverlens/internal/storage"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file.csv>",
		Short: "Run a full title analysis",
		Long: `Classify every title of a CSV file, aggregate the category
distribution, mine structural patterns per category and generate insights.

Examples:
  discoverlens analyze titles.csv
  discoverlens analyze titles.csv --column headline --export-json report.json
  discoverlens analyze titles.csv --keyword-only --save`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("column", "c", "title", "CSV column holding the titles")
	cmd.Flags().Bool("keyword-only", false, "Skip embeddings, score on keywords alone")
	cmd.Flags().Bool("save", false, "Persist the run in the local database")
	cmd.Flags().String("export-json", "", "Write the full report as JSON to this path")
	cmd.Flags().String("export-csv", "", "Write per-title classifications as CSV to this path")

	_ = viper.BindPFlag("analyze.column", cmd.Flags().Lookup("column"))
	_ = viper.BindPFlag("analyze.keyword_only", cmd.Flags().Lookup("keyword-only"))
	_ = viper.BindPFlag("analyze.save", cmd.Flags().Lookup("save"))
	_ = viper.BindPFlag("analyze.export_json", cmd.Flags().Lookup("export-json"))
	_ = viper.BindPFlag("analyze.export_csv", cmd.Flags().Lookup("export-csv"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	source := args[0]
	column := viper.GetString("analyze.column")
	keywordOnly := viper.GetBool("analyze.keyword_only")

	titles, err := input.ReadTitles(source, column)
	if err != nil {
		return err
	}
	slog.Info("Loaded titles", "source", source, "count", len(titles))

	cls, err := buildClassifier(keywordOnly)
	if err != nil {
		return err
	}

	pipeline := analysis.NewPipeline(cls, patterns.NewDefaultMiner(), slog.Default())

	report, err := pipeline.Run(ctx, titles)
	if err != nil {
		return err
	}

	fmt.Println(export.NewFormatter().FormatSummary(report))
	slog.Info("Analysis finished", "elapsed", formatElapsed(report.Elapsed))

	if path := viper.GetString("analyze.export_json"); path != "" {
		if err := export.WriteJSON(path, source, report); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess("Rapport exporté : " + path))
	}
	if path := viper.GetString("analyze.export_csv"); path != "" {
		if err := export.WriteResultsCSV(path, report.Results); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess("Classifications exportées : " + path))
	}

	if viper.GetBool("analyze.save") {
		store, err := initStorage(ctx)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				slog.Error("Failed to close database", "error", closeErr)
			}
		}()

		runID, err := store.SaveRun(ctx, storage.Run{
			Source:      source,
			TitleColumn: column,
			Model:       embeddingModelName(keywordOnly),
		}, report.Results)
		if err != nil {
			return fmt.Errorf("failed to save run: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Run #%d enregistré", runID)))
	}

	return nil
}
