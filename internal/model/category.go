// Package model defines the core domain models used throughout the application.
package model

// Category represents one editorial bucket a title can be classified into.
// The set of categories is fixed configuration; instances are immutable after load.
type Category struct {
	// Key is the stable identifier (e.g. "RECETTES_CUISINE") used in results,
	// storage and exports. Renaming a key is a breaking change.
	Key string `yaml:"key"`
	// Name is the human-readable display name.
	Name string `yaml:"name"`
	// Emoji is an optional short icon string shown in reports.
	Emoji string `yaml:"emoji"`
	// Keywords is the ordered list of lowercase terms matched by substring
	// containment against lowercased titles.
	Keywords []string `yaml:"keywords"`
}

// RepresentativeText builds the text encoded to produce the category's
// reference embedding: the display name followed by the first 20 keywords.
func (c Category) RepresentativeText() string {
	keywords := c.Keywords
	if len(keywords) > 20 {
		keywords = keywords[:20]
	}

	text := c.Name
	for _, kw := range keywords {
		text += " " + kw
	}
	return text
}
