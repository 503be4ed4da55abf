package generator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/cespare/xxhash/v2"
)

// DefaultCloserAttempts bounds regeneration when a line was used recently.
const DefaultCloserAttempts = 6

// Closer templates. {topic} is the lower-case category and {Topic} the same
// with a capital letter.
var closerTemplates = map[domain.CloserStyle][]string{
	domain.CloserStoic: {
		"Whatever {topic} is handing you right now, it is weather, not climate.",
		"This stretch of {topic} is real, and it is still only a stretch. It will pass.",
		"Nothing about {topic} stays fixed; this chapter closes like the others did.",
		"Give this {topic} moment a week, then a month. It shrinks every time you look back.",
		"The Stoics would call this {topic} storm temporary, and so can you.",
		"{Topic} feels heavy today; time is already turning the volume down.",
	},
	domain.CloserSystemsWin: {
		"One small rep on {topic} beats any amount of worrying about it.",
		"You fall to the level of your {topic} system, so make it a good one.",
		"Win the next ten minutes of {topic} and let the system carry the rest.",
		"{Topic} gets fixed by boring, repeatable steps, not by a perfect mood.",
		"Show up for {topic} again tomorrow. Systems win where motivation quits.",
		"Track one {topic} rep today; the streak will outlast the doubt.",
	},
}

// DefaultCloserStyles maps Temporary to the stoic style and every other
// theme to systems-win.
func DefaultCloserStyles() map[domain.Theme]domain.CloserStyle {
	return map[domain.Theme]domain.CloserStyle{
		domain.ThemeControl:   domain.CloserSystemsWin,
		domain.ThemeGrayAreas: domain.CloserSystemsWin,
		domain.ThemeSmallPart: domain.CloserSystemsWin,
		domain.ThemeTemporary: domain.CloserStoic,
	}
}

// CloserGenerator writes the closing line and keeps it fresh within a session.
type CloserGenerator struct {
	styles      map[domain.Theme]domain.CloserStyle
	maxAttempts int
}

// NewCloserGenerator copies styles over the defaults. maxAttempts <= 0 uses
// DefaultCloserAttempts.
func NewCloserGenerator(styles map[domain.Theme]domain.CloserStyle, maxAttempts int) *CloserGenerator {
	merged := DefaultCloserStyles()
	for t, s := range styles {
		if _, ok := closerTemplates[s]; ok {
			merged[t] = s
		}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultCloserAttempts
	}
	return &CloserGenerator{styles: merged, maxAttempts: maxAttempts}
}

// Style returns the closer style for theme.
func (g *CloserGenerator) Style(theme domain.Theme) domain.CloserStyle {
	if s, ok := g.styles[theme]; ok {
		return s
	}
	return domain.CloserSystemsWin
}

// Generate returns a closer for the theme and category. The starting variant
// is a hash of category and seed, so identical inputs produce identical lines.
// When a candidate is in the session's recent history the next variant is
// tried, up to maxAttempts; after that the first candidate is accepted even if
// it repeats.
func (g *CloserGenerator) Generate(theme domain.Theme, category, seed string, history *domain.SessionState) string {
	variants := closerTemplates[g.Style(theme)]
	topic := closerTopic(category)
	start := int(xxhash.Sum64String(category+"\x00"+seed) % uint64(len(variants)))

	first := fillCloser(variants[start], topic)
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		line := fillCloser(variants[(start+attempt)%len(variants)], topic)
		if !history.Contains(line) {
			return line
		}
	}
	return first
}

func closerTopic(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" || c == strings.ToLower(domain.FallbackCategory) {
		return "life"
	}
	return c
}

func fillCloser(tmpl, topic string) string {
	upper := topic
	if r, size := utf8.DecodeRuneInString(topic); size > 0 {
		upper = string(unicode.ToUpper(r)) + topic[size:]
	}
	return strings.NewReplacer("{topic}", topic, "{Topic}", upper).Replace(tmpl)
}
