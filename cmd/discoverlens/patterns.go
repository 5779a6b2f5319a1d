package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mriviere/discoverlens/internal/cli"
	"github.com/mriviere/discoverlens/internal/input"
	"github.com/mriviere/discoverlens/internal/patterns"
)

func patternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns <file.csv>",
		Short: "Mine structural patterns without classifying",
		Long: `Detect structural patterns and frequent n-grams over a whole title
file. No embedding backend is needed: mining is purely lexical.

Examples:
  discoverlens patterns titles.csv
  discoverlens patterns titles.csv --column headline --top 20`,
		Args: cobra.ExactArgs(1),
		RunE: runPatterns,
	}

	cmd.Flags().StringP("column", "c", "title", "CSV column holding the titles")
	cmd.Flags().Int("top", 10, "Number of patterns and n-grams to show")

	_ = viper.BindPFlag("patterns.column", cmd.Flags().Lookup("column"))
	_ = viper.BindPFlag("patterns.top", cmd.Flags().Lookup("top"))

	return cmd
}

func runPatterns(_ *cobra.Command, args []string) error {
	source := args[0]
	column := viper.GetString("patterns.column")
	top := viper.GetInt("patterns.top")

	titles, err := input.ReadTitles(source, column)
	if err != nil {
		return err
	}

	miner := patterns.NewDefaultMiner()
	structures := miner.DetectStructures(titles)

	ids := make([]string, 0, len(structures))
	for id := range structures {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := len(structures[ids[i]]), len(structures[ids[j]])
		if ci != cj {
			return ci > cj
		}
		return ids[i] < ids[j]
	})
	if len(ids) > top {
		ids = ids[:top]
	}

	fmt.Println(cli.FormatTitle(fmt.Sprintf("%s Patterns structurels (%d titres)", cli.SearchIcon, len(titles))))
	for _, id := range ids {
		fmt.Printf("  %-28s %d\n", id, len(structures[id]))
	}

	ngrams := patterns.ExtractNgrams(titles, 2, 5)
	if len(ngrams) > top {
		ngrams = ngrams[:top]
	}

	fmt.Println()
	fmt.Println(cli.SubtitleStyle.Render("N-grammes fréquents"))
	for _, ng := range ngrams {
		fmt.Printf("  %-40s %d\n", ng.Ngram, ng.Count)
	}

	return nil
}
