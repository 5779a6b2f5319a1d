// Package features extracts linguistic features from titles and derives
// writing recommendations from them.
package features

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Features describes the measurable surface properties of one title.
type Features struct {
	Title          string  `json:"title"`
	Length         int     `json:"length"`
	WordCount      int     `json:"word_count"`
	AvgWordLength  float64 `json:"avg_word_length"`
	NumberCount    int     `json:"number_count"`
	FirstNumber    int     `json:"first_number"`
	AllCapsWords   int     `json:"all_caps_words"`
	PowerWords     int     `json:"power_words_count"`
	EmotionalWords int     `json:"emotional_words_count"`
	ActionWords    int     `json:"action_words_count"`
	UrgencyWords   int     `json:"urgency_words_count"`
	EmotionScore   float64 `json:"emotion_score"`
	UrgencyScore   float64 `json:"urgency_score"`

	HasQuestion        bool `json:"has_question"`
	HasExclamation     bool `json:"has_exclamation"`
	HasEllipsis        bool `json:"has_ellipsis"`
	HasColon           bool `json:"has_colon"`
	HasQuotes          bool `json:"has_quotes"`
	HasParentheses     bool `json:"has_parentheses"`
	HasNumbers         bool `json:"has_numbers"`
	HasCaps            bool `json:"has_caps"`
	StartsWithNumber   bool `json:"starts_with_number"`
	StartsWithQuestion bool `json:"starts_with_question"`
	StartsWithVerb     bool `json:"starts_with_verb"`
}

// Word inventories driving the lexical feature counts. Matching is the same
// loose substring containment used for category keywords.
var (
	powerWords = []string{
		"secret", "révélé", "incroyable", "extraordinaire", "miracle",
		"révolutionnaire", "exclusif", "urgent", "alerte", "danger",
		"gratuit", "facile", "simple", "rapide", "immédiat",
		"nouveau", "découverte", "astuce", "méthode", "technique",
	}
	emotionalWords = []string{
		"adorer", "aimer", "détester", "haïr", "peur", "joie",
		"bonheur", "tristesse", "colère", "surprise", "choc",
		"incroyable", "extraordinaire", "fantastique", "horrible",
	}
	actionWords = []string{
		"découvrir", "apprendre", "maîtriser", "réussir", "obtenir",
		"gagner", "perdre", "économiser", "investir", "acheter",
		"vendre", "créer", "fabriquer", "construire", "détruire",
	}
	urgencyWords = []string{
		"maintenant", "immédiatement", "urgent", "vite", "rapidement",
		"aujourd'hui", "dernière", "chance", "limité", "exclusif",
	}
	actionVerbPrefixes = []string{
		"décou", "appre", "essay", "teste", "profi",
		"écono", "gagne", "créez", "évite", "arrêt",
		"comme", "termi", "réuss", "obten", "deven",
	}
	questionOpeners = []string{"comment", "pourquoi", "quand", "où", "qui", "que"}
)

var (
	ellipsisRe    = regexp.MustCompile(`\.{3}`)
	quotesRe      = regexp.MustCompile(`[«»""]`)
	parenthesesRe = regexp.MustCompile(`[()]`)
	numberRe      = regexp.MustCompile(`\d+`)
	leadNumberRe  = regexp.MustCompile(`^\d+`)
	avantQuRe     = regexp.MustCompile(`avant\s+qu`)
	derniereRe    = regexp.MustCompile(`dernière\s+chance`)
)

// Extractor computes Features for titles. Stateless and safe for
// concurrent use.
type Extractor struct{}

// NewExtractor creates a feature extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract computes all features of a single title.
func (e *Extractor) Extract(title string) Features {
	titleLower := strings.ToLower(title)
	words := strings.Fields(title)

	f := Features{
		Title:     title,
		Length:    utf8.RuneCountInString(title),
		WordCount: len(words),
	}

	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += utf8.RuneCountInString(w)
		}
		f.AvgWordLength = float64(total) / float64(len(words))
	}

	f.HasQuestion = strings.Contains(title, "?")
	f.HasExclamation = strings.Contains(title, "!")
	f.HasEllipsis = ellipsisRe.MatchString(title)
	f.HasColon = strings.Contains(title, ":")
	f.HasQuotes = quotesRe.MatchString(title)
	f.HasParentheses = parenthesesRe.MatchString(title)

	f.HasCaps = hasUpperAfterFirst(title)
	for _, w := range words {
		if utf8.RuneCountInString(w) > 1 && w == strings.ToUpper(w) && strings.ToUpper(w) != strings.ToLower(w) {
			f.AllCapsWords++
		}
	}

	numbers := numberRe.FindAllString(title, -1)
	f.NumberCount = len(numbers)
	f.HasNumbers = len(numbers) > 0
	if len(numbers) > 0 {
		if n, err := strconv.Atoi(numbers[0]); err == nil {
			f.FirstNumber = n
		}
	}

	f.PowerWords = countContained(titleLower, powerWords)
	f.EmotionalWords = countContained(titleLower, emotionalWords)
	f.ActionWords = countContained(titleLower, actionWords)
	f.UrgencyWords = countContained(titleLower, urgencyWords)

	f.StartsWithNumber = leadNumberRe.MatchString(title)
	f.StartsWithQuestion = startsWithAny(titleLower, questionOpeners)
	f.StartsWithVerb = startsWithVerb(titleLower)

	if len(words) > 0 {
		f.EmotionScore = float64(f.EmotionalWords) / float64(len(words))
		f.UrgencyScore = urgencyScore(titleLower, f.UrgencyWords, len(words))
	}

	return f
}

// ExtractBatch computes features for each title, in input order.
func (e *Extractor) ExtractBatch(titles []string) []Features {
	out := make([]Features, len(titles))
	for i, title := range titles {
		out[i] = e.Extract(title)
	}
	return out
}

// Recommendations derives French writing advice from a title's features.
func (e *Extractor) Recommendations(f Features) []string {
	var recs []string

	if f.Length < 50 {
		recs = append(recs, "Titre trop court - visez 60-80 caractères")
	} else if f.Length > 100 {
		recs = append(recs, "Titre trop long - réduisez à 80 caractères max")
	}

	if !f.HasNumbers {
		recs = append(recs, "Ajoutez des chiffres pour plus d'impact")
	}
	if f.PowerWords == 0 {
		recs = append(recs, "Utilisez des mots puissants (secret, révélé, incroyable...)")
	}
	if !f.HasQuestion && !f.StartsWithQuestion {
		recs = append(recs, "Considérez une formulation en question")
	}
	if f.UrgencyScore < 0.1 {
		recs = append(recs, "Ajoutez un sentiment d'urgence ou de rareté")
	}
	if f.EmotionScore < 0.1 {
		recs = append(recs, "Renforcez l'impact émotionnel")
	}

	return recs
}

// urgencyScore weights urgency vocabulary with bonuses for the two
// strongest scarcity constructions.
func urgencyScore(titleLower string, urgencyCount, wordCount int) float64 {
	count := urgencyCount
	if avantQuRe.MatchString(titleLower) {
		count += 2
	}
	if derniereRe.MatchString(titleLower) {
		count += 3
	}
	return float64(count) / float64(wordCount)
}

func countContained(titleLower string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(titleLower, w) {
			count++
		}
	}
	return count
}

func startsWithAny(titleLower string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(titleLower, p) {
			return true
		}
	}
	return false
}

// startsWithVerb matches the first word against known action-verb stems.
func startsWithVerb(titleLower string) bool {
	words := strings.Fields(titleLower)
	if len(words) == 0 {
		return false
	}
	for _, stem := range actionVerbPrefixes {
		if strings.HasPrefix(words[0], stem) {
			return true
		}
	}
	return false
}

// hasUpperAfterFirst reports whether any rune past the first is uppercase.
// The leading capital of a sentence is not a signal.
func hasUpperAfterFirst(title string) bool {
	first := true
	for _, r := range title {
		if first {
			first = false
			continue
		}
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// Stats summarizes one numeric feature over a batch.
type Stats struct {
	Feature string  `json:"feature"`
	Mean    float64 `json:"mean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

// BatchStats computes descriptive statistics for the numeric features of a
// batch, keyed by feature name.
func BatchStats(batch []Features) map[string]Stats {
	if len(batch) == 0 {
		return map[string]Stats{}
	}

	numeric := map[string]func(Features) float64{
		"length":          func(f Features) float64 { return float64(f.Length) },
		"word_count":      func(f Features) float64 { return float64(f.WordCount) },
		"avg_word_length": func(f Features) float64 { return f.AvgWordLength },
		"number_count":    func(f Features) float64 { return float64(f.NumberCount) },
		"power_words":     func(f Features) float64 { return float64(f.PowerWords) },
		"emotion_score":   func(f Features) float64 { return f.EmotionScore },
		"urgency_score":   func(f Features) float64 { return f.UrgencyScore },
	}

	stats := make(map[string]Stats, len(numeric))
	for name, get := range numeric {
		s := Stats{Feature: name}
		var sum float64
		for i, f := range batch {
			v := get(f)
			sum += v
			if i == 0 || v < s.Min {
				s.Min = v
			}
			if i == 0 || v > s.Max {
				s.Max = v
			}
		}
		s.Mean = sum / float64(len(batch))
		stats[name] = s
	}
	return stats
}

// String renders a compact one-line view, used in debug logs.
func (f Features) String() string {
	return fmt.Sprintf("len=%d words=%d numbers=%d power=%d emotion=%.2f urgency=%.2f",
		f.Length, f.WordCount, f.NumberCount, f.PowerWords, f.EmotionScore, f.UrgencyScore)
}
