package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mriviere/discoverlens/internal/cli"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the configured categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			categories, err := loadCategorySet()
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Catégories (%d)", len(categories))))
			for _, cat := range categories {
				fmt.Printf("  %s %-28s %s\n", cat.Emoji, cat.Key, cat.Name)

				preview := strings.Join(cat.Keywords, ", ")
				if len(cat.Keywords) > 8 {
					preview = strings.Join(cat.Keywords[:8], ", ") + ", …"
				}
				fmt.Printf("     %s\n", cli.SubtleStyle.Render(preview))
			}
			return nil
		},
	}
}
