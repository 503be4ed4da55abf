package domain

// FallbackCategory labels the default entries used when nothing in the
// catalog clears the confidence floor.
const FallbackCategory = "General problem-framing"

// PatternEntry is one curated reframe in the catalog.
type PatternEntry struct {
	ID       string
	Category string
	Before   string
	After    string
	Themes   []Theme
	Keywords []string
	Outcome  string
	Fallback bool
}

// PrimaryTheme is the first-declared theme of the entry.
func (e PatternEntry) PrimaryTheme() Theme {
	if len(e.Themes) == 0 {
		return ThemeControl
	}
	return e.Themes[0]
}

// HasTheme reports whether the entry is tagged with t.
func (e PatternEntry) HasTheme(t Theme) bool {
	for _, th := range e.Themes {
		if th == t {
			return true
		}
	}
	return false
}

// ChemicalRule maps a set of emotional keywords to a mechanism.
type ChemicalRule struct {
	Mechanism Mechanism
	Rationale string
	Keywords  []string
}

// Situation is the caller's input for one reframe request.
type Situation struct {
	Text      string
	Name      string
	SessionID string
}

// ReframePair is a (before, after) statement pair.
type ReframePair struct {
	Before string
	After  string
}

// ChemicalAngle is the optional physiological framing.
type ChemicalAngle struct {
	Mechanism Mechanism
	Rationale string
}

// MatchReasonCode identifies which scoring factor contributed to a match.
type MatchReasonCode string

const (
	ReasonKeyword  MatchReasonCode = "KEYWORD_OVERLAP"
	ReasonCategory MatchReasonCode = "CATEGORY_OVERLAP"
	ReasonBefore   MatchReasonCode = "BEFORE_OVERLAP"
	ReasonAfter    MatchReasonCode = "AFTER_OVERLAP"
	ReasonPhrase   MatchReasonCode = "PHRASE_MATCH"
	ReasonFallback MatchReasonCode = "FALLBACK"
)

// MatchReason explains one factor of an entry's score.
type MatchReason struct {
	Code        MatchReasonCode
	Message     string
	WeightDelta float64
}

// EntryMatch records a selected entry with its score, for diagnostics.
type EntryMatch struct {
	EntryID  string
	Category string
	Score    float64
	Reasons  []MatchReason
}

// ReframeResult is the structured output of one reframe request.
// Matches and Fallback are diagnostics and are not part of the rendered layout.
type ReframeResult struct {
	Pairs       []ReframePair
	Theme       Theme
	Chemical    *ChemicalAngle
	Action      string
	Affirmation string
	Closer      string

	Matches  []EntryMatch
	Fallback bool
}
