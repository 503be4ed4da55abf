package knowledge

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
	"github.com/alexanderramin/reframe/internal/textnorm"
)

// MaxOutcomeWords caps authored affirmation outcomes.
const MaxOutcomeWords = 15

// ValidateCatalog checks a CatalogSchema for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateCatalog(schema *CatalogSchema) []error {
	var errs []error

	if len(schema.Entries) == 0 {
		errs = append(errs, fmt.Errorf("at least one entry is required"))
	}

	ids := map[string]bool{}
	fallbacks := 0
	for i, e := range schema.Entries {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("entry[%d]: id is required", i))
		} else if ids[e.ID] {
			errs = append(errs, fmt.Errorf("entry[%d]: duplicate id %q", i, e.ID))
		}
		ids[e.ID] = true

		if strings.TrimSpace(e.Category) == "" {
			errs = append(errs, fmt.Errorf("entry[%d]: category is required", i))
		}
		if strings.TrimSpace(e.Before) == "" {
			errs = append(errs, fmt.Errorf("entry[%d]: before is required", i))
		}
		if strings.TrimSpace(e.After) == "" {
			errs = append(errs, fmt.Errorf("entry[%d]: after is required", i))
		}
		for _, f := range []struct{ name, value string }{
			{"category", e.Category}, {"before", e.Before}, {"after", e.After}, {"outcome", e.Outcome},
		} {
			if strings.ContainsAny(f.value, "\r\n") {
				errs = append(errs, fmt.Errorf("entry[%d]: %s must be a single line", i, f.name))
			}
		}
		if len(e.Themes) == 0 {
			errs = append(errs, fmt.Errorf("entry[%d]: at least one theme is required", i))
		}
		for _, t := range e.Themes {
			if !domain.ValidThemes[t] {
				errs = append(errs, fmt.Errorf("entry[%d]: unknown theme %q", i, t))
			}
		}
		if n := len(strings.Fields(e.Outcome)); n > MaxOutcomeWords {
			errs = append(errs, fmt.Errorf("entry[%d]: outcome has %d words, max %d", i, n, MaxOutcomeWords))
		}
		errs = append(errs, validateKeywords(fmt.Sprintf("entry[%d]", i), e.Keywords)...)
		if e.Fallback {
			fallbacks++
		}
	}
	if len(schema.Entries) > 0 && fallbacks == 0 {
		errs = append(errs, fmt.Errorf("at least one fallback entry is required"))
	}
	if len(schema.Entries) > 0 && fallbacks == len(schema.Entries) {
		errs = append(errs, fmt.Errorf("at least one non-fallback entry is required"))
	}

	if len(schema.Chemicals) == 0 {
		errs = append(errs, fmt.Errorf("at least one chemical rule is required"))
	}
	seen := map[domain.Mechanism]bool{}
	for i, c := range schema.Chemicals {
		m := domain.Mechanism(c.Mechanism)
		if !m.Valid() {
			errs = append(errs, fmt.Errorf("chemical[%d]: unknown mechanism %q", i, c.Mechanism))
		} else if seen[m] {
			errs = append(errs, fmt.Errorf("chemical[%d]: duplicate mechanism %q", i, c.Mechanism))
		}
		seen[m] = true
		if strings.TrimSpace(c.Rationale) == "" {
			errs = append(errs, fmt.Errorf("chemical[%d]: rationale is required", i))
		}
		if strings.ContainsAny(c.Rationale, "\r\n") {
			errs = append(errs, fmt.Errorf("chemical[%d]: rationale must be a single line", i))
		}
		if len(c.Keywords) == 0 {
			errs = append(errs, fmt.Errorf("chemical[%d]: at least one keyword is required", i))
		}
		errs = append(errs, validateKeywords(fmt.Sprintf("chemical[%d]", i), c.Keywords)...)
	}

	return errs
}

// validateKeywords rejects keywords the matcher can never hit: blank strings
// and keywords made only of stop words.
func validateKeywords(owner string, keywords []string) []error {
	var errs []error
	for j, kw := range keywords {
		switch {
		case strings.TrimSpace(kw) == "":
			errs = append(errs, fmt.Errorf("%s: keyword %d is blank", owner, j))
		case len(textnorm.Normalize(kw)) == 0:
			errs = append(errs, fmt.Errorf("%s: keyword %q has no matchable words", owner, kw))
		}
	}
	return errs
}
