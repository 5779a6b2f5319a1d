package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mriviere/discoverlens/internal/common"
	"github.com/mriviere/discoverlens/internal/model"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadCategories(t *testing.T) {
	path := writeTempConfig(t, `
categories:
  - key: RECETTES_CUISINE
    name: Recettes & Cuisine
    emoji: "🍽️"
    keywords: [recette, gratin, cuisine]
  - key: FINANCE_INVESTISSEMENT
    name: Finance & Investissement
    keywords: [argent, livret]
`)

	categories, err := LoadCategories(path)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "RECETTES_CUISINE", categories[0].Key)
	assert.Equal(t, "Recettes & Cuisine", categories[0].Name)
	assert.Equal(t, "🍽️", categories[0].Emoji)
	assert.Equal(t, []string{"recette", "gratin", "cuisine"}, categories[0].Keywords)

	// Declaration order is preserved: it breaks score ties downstream.
	assert.Equal(t, "FINANCE_INVESTISSEMENT", categories[1].Key)
}

func TestLoadCategories_MissingFile(t *testing.T) {
	_, err := LoadCategories(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestLoadCategories_MalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "categories: [key: {{")
	_, err := LoadCategories(path)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestValidateCategories(t *testing.T) {
	tests := []struct {
		name       string
		errSubstr  string
		categories []model.Category
		wantErr    bool
	}{
		{
			name: "valid",
			categories: []model.Category{
				{Key: "A", Name: "A", Keywords: []string{"un"}},
			},
		},
		{
			name:      "empty set",
			wantErr:   true,
			errSubstr: "no categories",
		},
		{
			name: "missing key",
			categories: []model.Category{
				{Name: "A", Keywords: []string{"un"}},
			},
			wantErr:   true,
			errSubstr: "no key",
		},
		{
			name: "missing name",
			categories: []model.Category{
				{Key: "A", Keywords: []string{"un"}},
			},
			wantErr:   true,
			errSubstr: "no name",
		},
		{
			name: "no keywords",
			categories: []model.Category{
				{Key: "A", Name: "A"},
			},
			wantErr:   true,
			errSubstr: "no keywords",
		},
		{
			name: "duplicate keys",
			categories: []model.Category{
				{Key: "A", Name: "A", Keywords: []string{"un"}},
				{Key: "A", Name: "B", Keywords: []string{"deux"}},
			},
			wantErr:   true,
			errSubstr: "duplicate",
		},
		{
			name: "uppercase keyword",
			categories: []model.Category{
				{Key: "A", Name: "A", Keywords: []string{"Recette"}},
			},
			wantErr:   true,
			errSubstr: "lowercase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCategories(tt.categories)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errSubstr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()

	assert.Len(t, categories, 12)
	require.NoError(t, ValidateCategories(categories))

	// The built-in set starts with health, a deliberate tie-break anchor.
	assert.Equal(t, "SANTE_NATURELLE", categories[0].Key)
}

func TestRepresentativeText(t *testing.T) {
	keywords := make([]string, 25)
	for i := range keywords {
		keywords[i] = string(rune('a' + i))
	}

	cat := model.Category{Key: "X", Name: "Exemple", Keywords: keywords}
	text := cat.RepresentativeText()

	assert.Contains(t, text, "Exemple")
	// Only the first 20 keywords feed the representative embedding.
	assert.Contains(t, text, " t")
	assert.NotContains(t, text, " u")
}
