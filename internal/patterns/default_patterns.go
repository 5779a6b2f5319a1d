package patterns

// Family groups structural patterns by the rhetorical feature they detect.
type Family string

// Pattern families.
const (
	FamilyOpening   Family = "opening"
	FamilyClosing   Family = "closing"
	FamilyNumeric   Family = "numeric"
	FamilyAuthority Family = "authority"
	FamilyEmotional Family = "emotional"
)

// StructurePattern is one regex rule applied to lowercased titles.
// IDs are stable external identifiers: downstream insight text and exported
// reports key off them, so renaming one is a breaking change.
type StructurePattern struct {
	ID     string
	Family Family
	Regex  string
}

// RE2's \b is an ASCII word boundary, so alternatives that start or end with
// an accented letter (étude, éviter, à, célébrité, prouvé...) use an explicit
// (?:^|[^\p{L}]) style boundary instead.

// DefaultStructurePatterns returns the fixed battery of structural patterns
// mined from titles, grouped into five families.
func DefaultStructurePatterns() []StructurePattern {
	return []StructurePattern{
		// Opening-phrase anchors.
		{ID: "opening_voici", Family: FamilyOpening, Regex: `^voici\s+`},
		{ID: "opening_decouvrez", Family: FamilyOpening, Regex: `^découvrez\s+`},
		{ID: "opening_comment", Family: FamilyOpening, Regex: `^comment\s+`},
		{ID: "opening_pourquoi", Family: FamilyOpening, Regex: `^pourquoi\s+`},
		{ID: "opening_cette", Family: FamilyOpening, Regex: `^cette?\s+`},
		{ID: "opening_ces", Family: FamilyOpening, Regex: `^ces\s+`},
		{ID: "opening_savez_vous", Family: FamilyOpening, Regex: `^savez[-\s]?vous\s+`},
		{ID: "opening_connaissez_vous", Family: FamilyOpening, Regex: `^connaissez[-\s]?vous\s+`},
		{ID: "opening_attention", Family: FamilyOpening, Regex: `^attention\s+`},
		{ID: "opening_alerte", Family: FamilyOpening, Regex: `^alerte\s+`},
		{ID: "opening_enfin", Family: FamilyOpening, Regex: `^enfin\s+`},
		{ID: "opening_nouvelle", Family: FamilyOpening, Regex: `^nouvelle?\s+`},
		{ID: "opening_exclusive", Family: FamilyOpening, Regex: `^exclusi(f|ve)\s+`},

		// Closing-phrase anchors.
		{ID: "closing_minutes", Family: FamilyClosing, Regex: `\s+en\s+\d+\s+minutes?$`},
		{ID: "closing_jours", Family: FamilyClosing, Regex: `\s+en\s+\d+\s+jours?$`},
		{ID: "closing_sans_effort", Family: FamilyClosing, Regex: `\s+sans\s+effort$`},
		{ID: "closing_qui_marche", Family: FamilyClosing, Regex: `\s+qui\s+march(e|ent)$`},
		{ID: "closing_revolutionnaire", Family: FamilyClosing, Regex: `\s+révolutionnaire$`},
		{ID: "closing_simple", Family: FamilyClosing, Regex: `\s+simple$`},
		{ID: "closing_facile", Family: FamilyClosing, Regex: `\s+facile$`},
		{ID: "closing_gratuit", Family: FamilyClosing, Regex: `\s+gratuit(e)?$`},
		{ID: "closing_immediat", Family: FamilyClosing, Regex: `\s+imm[eé]diat(ement)?$`},

		// Numeric mentions.
		{ID: "numeric_top_x", Family: FamilyNumeric, Regex: `\b(top\s+)?\d+\s+(meilleur|conseil|astuce|erreur|raison|façon)`},
		{ID: "numeric_x_euros", Family: FamilyNumeric, Regex: `\b\d+\s*€|euros?\b`},
		{ID: "numeric_pourcentage", Family: FamilyNumeric, Regex: `\b\d+\s*%`},
		{ID: "numeric_age", Family: FamilyNumeric, Regex: `(?:^|[^\p{L}\d])(?:après|dès|avant|à)\s+\d+\s+ans\b`},
		{ID: "numeric_annee", Family: FamilyNumeric, Regex: `\b20\d{2}\b`},
		{ID: "numeric_chiffre", Family: FamilyNumeric, Regex: `\b\d+\b`},

		// Authority and credibility markers.
		{ID: "authority_expert", Family: FamilyAuthority, Regex: `\b(expert|spécialiste|professionnel|docteur|médecin|coach)\b`},
		{ID: "authority_scientifique", Family: FamilyAuthority, Regex: `(?:^|[^\p{L}])(?:étude|recherche|science|chercheur|prouvé|démontré)(?:[^\p{L}]|$)`},
		{ID: "authority_celebrite", Family: FamilyAuthority, Regex: `(?:^|[^\p{L}])(?:star|célébrité|people|influenceur)(?:[^\p{L}]|$)`},
		{ID: "authority_temoignage", Family: FamilyAuthority, Regex: `\b(j'ai|mon|ma|mes|témoignage|expérience|vécu)\b`},

		// Emotional triggers.
		{ID: "emotional_urgence", Family: FamilyEmotional, Regex: `\b(urgent|vite|maintenant|immédiatement|avant\s+qu)`},
		{ID: "emotional_peur", Family: FamilyEmotional, Regex: `(?:^|[^\p{L}])(?:danger|attention|alerte|risque|éviter|jamais|arrêt)`},
		{ID: "emotional_curiosite", Family: FamilyEmotional, Regex: `\b(secret|révél|découv|cach|mystèr|vérité)`},
		{ID: "emotional_espoir", Family: FamilyEmotional, Regex: `\b(enfin|solution|révolution|miracle|incroyable|extraordinaire)`},
		{ID: "emotional_facilite", Family: FamilyEmotional, Regex: `\b(simple|facile|rapide|sans\s+effort|automatique)`},
	}
}
