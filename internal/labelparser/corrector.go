package labelparser

import (
	"fmt"
	"regexp"
)

// Corrector rewrites common recognition errors using an ordered rule table.
// Each rule sees the output of the previous one.
type Corrector struct {
	rules []compiledRule
}

type compiledRule struct {
	name    string
	re      *regexp.Regexp
	replace string
}

// NewCorrector compiles rules in the given order.
func NewCorrector(rules []Rule) (*Corrector, error) {
	c := &Corrector{rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		re, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("correction rule %d (%s): %w", i, r.Name, err)
		}
		c.rules = append(c.rules, compiledRule{name: r.Name, re: re, replace: r.Replace})
	}
	return c, nil
}

// maxPasses bounds how often one rule is re-applied to its own output.
const maxPasses = 8

// Correct applies every rule to line. Unmatched text passes through unchanged.
// A rule is repeated until the line stops changing, so guard characters a
// match consumed (the "2" in "1O2O") can still guard the next match.
func (c *Corrector) Correct(line string) string {
	for _, r := range c.rules {
		for i := 0; i < maxPasses; i++ {
			next := r.re.ReplaceAllString(line, r.replace)
			if next == line {
				break
			}
			line = next
		}
	}
	return line
}

// Rules returns the names of the compiled rules in application order.
func (c *Corrector) Rules() []string {
	names := make([]string, len(c.rules))
	for i, r := range c.rules {
		names[i] = r.name
	}
	return names
}
