// Package textnorm turns free text into the normalized tokens that catalog
// keywords and situations are compared on.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stopWords = ToSet(
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below", "between", "both",
	"but", "by", "can", "could", "did", "do", "does", "doing", "dont", "down", "during", "each",
	"even", "feel", "feeling", "feels", "few", "for", "from", "further", "get", "gets", "getting",
	"got", "had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how", "i", "id", "if", "ill", "im", "in", "into", "is", "isnt", "it",
	"its", "itself", "ive", "just", "keep", "keeps", "know", "like", "lot", "make", "me",
	"more", "most", "much", "must", "my", "myself", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "ourselves", "out", "over", "own", "really",
	"same", "she", "should", "so", "some", "such", "than", "that", "the", "their", "theirs",
	"them", "themselves", "then", "there", "these", "they", "theyll", "thing", "things", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was", "wasnt", "we",
	"were", "what", "when", "where", "which", "while", "who", "whom", "why", "will", "with",
	"would", "yet", "you", "your", "yours", "yourself",
)

// Suffixes stripped by stem, longest first. "ation" is deliberately absent so
// that "procrastination" and "procrastinating" share a stem.
var suffixes = []string{"ings", "ions", "ness", "ing", "ion", "ed", "es", "ly", "s"}

const minStemLen = 4

// Normalize lower-cases text, folds accents, strips punctuation, removes stop
// words and stems what remains. The result preserves input order and may
// contain duplicates.
func Normalize(text string) []string {
	folded := foldText(text)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if stopWords[f] {
			continue
		}
		tokens = append(tokens, stem(f))
	}
	return tokens
}

// foldText removes combining marks and apostrophes so "don't" and "café"
// become "dont" and "cafe" before tokenizing.
func foldText(text string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	folded = strings.NewReplacer("'", "", "’", "").Replace(folded)
	// A Caser is stateful, so each call gets its own.
	return cases.Lower(language.Und).String(folded)
}

func stem(word string) string {
	for _, suf := range suffixes {
		if strings.HasSuffix(word, suf) && len(word)-len(suf) >= minStemLen {
			return word[:len(word)-len(suf)]
		}
	}
	return word
}

// ToSet returns the given words as a set.
func ToSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// TokenSet returns the distinct tokens of text.
func TokenSet(text string) map[string]bool {
	return ToSet(Normalize(text)...)
}

// ContainsPhrase reports whether phrase occurs as a whole-token run in text.
// Both arguments are space-joined normalized tokens.
func ContainsPhrase(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}
