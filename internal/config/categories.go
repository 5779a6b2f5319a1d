// Package config provides configuration loading for the application.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mriviere/discoverlens/internal/common"
	"github.com/mriviere/discoverlens/internal/model"
)

// categoriesFile mirrors the on-disk YAML layout:
//
//	categories:
//	  - key: RECETTES_CUISINE
//	    name: Recettes & Cuisine
//	    emoji: "🍽️"
//	    keywords: [recette, cuisine, plat]
type categoriesFile struct {
	Categories []model.Category `yaml:"categories"`
}

// LoadCategories reads and validates a category configuration file.
// The returned slice preserves declaration order, which breaks score ties
// during classification.
func LoadCategories(path string) ([]model.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", common.ErrMissingConfig, path, err)
	}

	var file categoriesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", common.ErrInvalidConfig, path, err)
	}

	if err := ValidateCategories(file.Categories); err != nil {
		return nil, err
	}

	return file.Categories, nil
}

// ValidateCategories checks that a category set is usable for classification.
func ValidateCategories(categories []model.Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("%w: no categories defined", common.ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(categories))
	for i, cat := range categories {
		if cat.Key == "" {
			return fmt.Errorf("%w: category %d has no key", common.ErrInvalidConfig, i)
		}
		if cat.Name == "" {
			return fmt.Errorf("%w: category %q has no name", common.ErrInvalidConfig, cat.Key)
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("%w: category %q has no keywords", common.ErrInvalidConfig, cat.Key)
		}
		if seen[cat.Key] {
			return fmt.Errorf("%w: duplicate category key %q", common.ErrInvalidConfig, cat.Key)
		}
		seen[cat.Key] = true

		for _, kw := range cat.Keywords {
			if kw != strings.ToLower(kw) {
				return fmt.Errorf("%w: category %q keyword %q must be lowercase", common.ErrInvalidConfig, cat.Key, kw)
			}
		}
	}

	return nil
}
