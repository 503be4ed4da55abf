package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/reframe/internal/domain"
)

const (
	// NamePlaceholder stands in for the reader's name when none is given.
	NamePlaceholder = "[Name]"
	// MaxAffirmationWords caps the outcome after "will".
	MaxAffirmationWords = 15
)

var futurePrefixes = []string{"i will ", "i'll ", "i am going to ", "i'm going to ", "i can "}

// GenerateAffirmation fills "I, <name>, will <outcome>" from the entry.
func GenerateAffirmation(name string, entry domain.PatternEntry) string {
	return "I, " + DisplayName(name) + ", will " + Outcome(entry)
}

// DisplayName collapses whitespace in name, or returns the placeholder.
func DisplayName(name string) string {
	n := strings.Join(strings.Fields(name), " ")
	if n == "" {
		return NamePlaceholder
	}
	return n
}

// Outcome returns the entry's authored outcome, or one derived from its
// after-text, trimmed to MaxAffirmationWords.
func Outcome(entry domain.PatternEntry) string {
	if o := cleanOutcome(entry.Outcome); o != "" {
		return o
	}
	if o := cleanOutcome(deriveOutcome(entry.After)); o != "" {
		return o
	}
	return "take one small step forward today"
}

// deriveOutcome picks the after-text sentence that states an intention and
// strips its first-person future prefix.
func deriveOutcome(after string) string {
	sentences := splitSentences(after)
	if len(sentences) == 0 {
		return ""
	}
	for i := len(sentences) - 1; i >= 0; i-- {
		lower := strings.ToLower(sentences[i])
		for _, p := range futurePrefixes {
			if strings.HasPrefix(lower, p) {
				return sentences[i][len(p):]
			}
		}
	}
	return "remember that " + lowerFirst(sentences[len(sentences)-1])
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range strings.FieldsFunc(text, func(r rune) bool { return r == '.' || r == '!' || r == '?' }) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func cleanOutcome(s string) string {
	words := strings.Fields(s)
	if len(words) > MaxAffirmationWords {
		words = words[:MaxAffirmationWords]
	}
	out := strings.Join(words, " ")
	out = strings.TrimRightFunc(out, func(r rune) bool { return unicode.IsPunct(r) || unicode.IsSpace(r) })
	return lowerFirst(out)
}

// lowerFirst lower-cases the first letter unless the word is "I" or an "I'"
// contraction.
func lowerFirst(s string) string {
	if s == "" || s == "I" || strings.HasPrefix(s, "I ") || strings.HasPrefix(s, "I'") {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
