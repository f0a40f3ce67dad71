package content

import (
	"github.com/gerunddev/postrender/internal/markup"
	"github.com/gerunddev/postrender/internal/render"
)

// ResultKind tells the walker what to do with a classified element.
type ResultKind int

const (
	// NoMatch means the rule does not apply; the next rule is tried.
	NoMatch ResultKind = iota
	// Decline carries a (possibly rewritten) element to be emitted generically.
	Decline
	// Rendered carries a finished render node.
	Rendered
	// Drop removes the element from the output.
	Drop
)

func (k ResultKind) String() string {
	switch k {
	case NoMatch:
		return "no-match"
	case Decline:
		return "decline"
	case Rendered:
		return "rendered"
	case Drop:
		return "drop"
	default:
		return "unknown"
	}
}

// Result is the outcome of classifying one element
type Result struct {
	Kind    ResultKind
	Element *markup.Element
	Node    render.Node
}

var noMatch = Result{Kind: NoMatch}

// Rule is a named rewrite applied to elements before their children are rendered
type Rule struct {
	Name  string
	Apply func(el *markup.Element) Result
}

// Classify runs the rules in order and returns the first result that is
// not NoMatch. Without a match el is declined unchanged.
func (r *Renderer) Classify(el *markup.Element) Result {
	for _, rule := range r.rules {
		res := rule.Apply(el)
		if res.Kind == NoMatch {
			continue
		}
		r.log.RuleApplied(rule.Name, el.Name)
		return res
	}
	return Result{Kind: Decline, Element: el}
}
