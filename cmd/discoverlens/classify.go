package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mriviere/discoverlens/internal/cli"
	"github.com/mriviere/discoverlens/internal/model"
)

// lowConfidenceWarning is shown under this confidence level.
const lowConfidenceWarning = 0.3

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <title>...",
		Short: "Classify a single title",
		Long: `Classify one title and print its category, score, confidence and
runner-up categories.

Examples:
  discoverlens classify "Cette recette de gratin va vous surprendre"
  discoverlens classify --keyword-only "10 astuces pour économiser"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassifySingle,
	}

	cmd.Flags().Bool("keyword-only", false, "Skip embeddings, score on keywords alone")
	_ = viper.BindPFlag("classify.keyword_only", cmd.Flags().Lookup("keyword-only"))

	return cmd
}

func runClassifySingle(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	title := strings.Join(args, " ")
	keywordOnly := viper.GetBool("classify.keyword_only")

	cls, err := buildClassifier(keywordOnly)
	if err != nil {
		return err
	}

	result, err := cls.Classify(ctx, title)
	if err != nil {
		return err
	}

	fmt.Println(formatClassification(result, cls.CategoryName))
	return nil
}

// formatClassification renders one result as a boxed summary.
func formatClassification(result model.ClassificationResult, nameFor func(string) string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%s)\n", cli.SuccessIcon, result.MainCategoryName, result.MainCategory)
	fmt.Fprintf(&b, "score %.4f, confiance %.2f", result.MainScore, result.Confidence)

	for _, s := range result.Secondary {
		fmt.Fprintf(&b, "\naussi : %s (%.4f)", nameFor(s.Category), s.Score)
	}
	if result.KeywordOnly {
		b.WriteString("\n" + cli.SubtleStyle.Render("score lexical uniquement"))
	}
	if result.Confidence < lowConfidenceWarning {
		b.WriteString("\n" + cli.WarningStyle.Render("confiance faible : catégories proches"))
	}

	return cli.RenderBox(result.Title, b.String())
}
