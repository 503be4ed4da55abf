package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/reframe/internal/domain"
)

// ErrMalformedLayout is returned (wrapped) when Parse cannot read a section.
var ErrMalformedLayout = errors.New("malformed reframe layout")

// Parse reads text produced by Render back into a ReframeResult. Diagnostic
// fields (Matches, Fallback) are not part of the layout and stay empty.
func Parse(text string) (*domain.ReframeResult, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	p := &parser{lines: lines}
	return p.parse()
}

type parser struct {
	lines []string
	pos   int
}

func (p *parser) parse() (*domain.ReframeResult, error) {
	r := &domain.ReframeResult{}

	line, ok := p.next()
	if !ok || line != headerPairs {
		return nil, p.errorf("expected %q", headerPairs)
	}

	for {
		line, ok = p.peek()
		if !ok || !isPairLine(line) {
			break
		}
		p.pos++
		before, err := p.pairBefore(line, len(r.Pairs)+1)
		if err != nil {
			return nil, err
		}
		afterLine, ok := p.next()
		if !ok || !strings.HasPrefix(afterLine, afterIndent+prefixAfter) {
			return nil, p.errorf("expected %q after pair %d", strings.TrimSpace(prefixAfter), len(r.Pairs)+1)
		}
		r.Pairs = append(r.Pairs, domain.ReframePair{
			Before: before,
			After:  strings.TrimPrefix(afterLine, afterIndent+prefixAfter),
		})
	}
	if len(r.Pairs) == 0 || len(r.Pairs) > 3 {
		return nil, fmt.Errorf("%w: %d reframe pairs, want 1 to 3", ErrMalformedLayout, len(r.Pairs))
	}

	themeLabel, err := p.field(prefixTheme)
	if err != nil {
		return nil, err
	}
	if r.Theme, err = domain.ParseTheme(themeLabel); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
	}

	if line, ok = p.peek(); ok && strings.HasPrefix(line, prefixChemical) {
		p.pos++
		rest := strings.TrimPrefix(line, prefixChemical)
		label, rationale, found := strings.Cut(rest, mechanismSep)
		if !found {
			return nil, p.errorf("chemical angle needs %q separator", strings.TrimSpace(mechanismSep))
		}
		mech, err := domain.ParseMechanism(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedLayout, err)
		}
		r.Chemical = &domain.ChemicalAngle{Mechanism: mech, Rationale: rationale}
	}

	if r.Action, err = p.field(prefixAction); err != nil {
		return nil, err
	}
	if r.Affirmation, err = p.field(prefixAffirm); err != nil {
		return nil, err
	}
	if r.Closer, err = p.field(prefixCloser); err != nil {
		return nil, err
	}

	if line, ok = p.next(); ok {
		return nil, p.errorf("unexpected trailing line %q", line)
	}
	return r, nil
}

// next returns the next non-blank line.
func (p *parser) next() (string, bool) {
	line, ok := p.peek()
	if ok {
		p.pos++
	}
	return line, ok
}

// peek skips blank lines and returns the next line without consuming it.
func (p *parser) peek() (string, bool) {
	for p.pos < len(p.lines) {
		line := strings.TrimRight(p.lines[p.pos], " \t")
		if line != "" {
			return p.lines[p.pos], true
		}
		p.pos++
	}
	return "", false
}

func (p *parser) field(prefix string) (string, error) {
	line, ok := p.next()
	if !ok || !strings.HasPrefix(line, prefix) {
		return "", p.errorf("expected %q", strings.TrimSpace(prefix))
	}
	return strings.TrimPrefix(line, prefix), nil
}

func (p *parser) pairBefore(line string, want int) (string, error) {
	num, rest, _ := strings.Cut(line, ". ")
	n, err := strconv.Atoi(num)
	if err != nil || n != want {
		return "", p.errorf("expected pair number %d", want)
	}
	return strings.TrimPrefix(rest, prefixBefore), nil
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformedLayout, p.pos, fmt.Sprintf(format, args...))
}

func isPairLine(line string) bool {
	num, rest, ok := strings.Cut(line, ". ")
	if !ok || !strings.HasPrefix(rest, prefixBefore) {
		return false
	}
	_, err := strconv.Atoi(num)
	return err == nil
}
