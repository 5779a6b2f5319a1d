package patterns

// frenchStopwords are excluded from the unique-word rankings. The set is
// deliberately small: only the function words that would otherwise dominate
// every category's word list.
var frenchStopwords = map[string]struct{}{
	"le": {}, "la": {}, "les": {}, "un": {}, "une": {}, "des": {},
	"de": {}, "du": {}, "pour": {}, "et": {}, "ou": {}, "à": {},
	"avec": {}, "sans": {}, "sur": {}, "dans": {}, "par": {}, "en": {},
	"ce": {}, "ces": {}, "cet": {}, "cette": {}, "qui": {}, "que": {},
	"dont": {}, "où": {},
}

// isStopword reports whether a lowercase token is a French stopword.
func isStopword(token string) bool {
	_, ok := frenchStopwords[token]
	return ok
}
