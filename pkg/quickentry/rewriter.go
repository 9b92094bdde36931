package quickentry

import "time"

// Rewriter applies an ordered list of rules to a line of text.
type Rewriter struct {
	rules []Rule
}

var defaultRewriter = New(DefaultRules()...)

// New creates a Rewriter that applies rules in the given order.
func New(rules ...Rule) *Rewriter {
	return &Rewriter{rules: append([]Rule(nil), rules...)}
}

// Rules returns a copy of the rewriter's rules in application order.
func (r *Rewriter) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Transform applies every rule in order; each rule sees the previous rule's output.
func (r *Rewriter) Transform(text string, now time.Time) string {
	for _, rule := range r.rules {
		if rule.Match(text) {
			text = rule.Replace(text, now)
		}
	}
	return text
}

// Transform rewrites text with the default rules anchored at now.
func Transform(text string, now time.Time) string {
	return defaultRewriter.Transform(text, now)
}
