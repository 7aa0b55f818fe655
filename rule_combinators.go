package pegrat

import (
	"fmt"
	"math"
	"strings"
)

// Infinite is the "no upper bound" value for Repeat.Max.
const Infinite = math.MaxInt32

// Sequence matches every item in order, advancing the offset by each
// sub-match's length; any sub-rule failure fails the whole sequence
// with no partial match returned.
type Sequence struct {
	ruleBase
	Items []Rule
}

// Seq builds a Sequence rule.
func Seq(items ...Rule) *Sequence {
	return &Sequence{ruleBase: newRuleBase(), Items: items}
}

func (r *Sequence) evaluate(in *Input, offset int) (*Match, bool) {
	cur := offset
	children := make([]*Match, 0, len(r.Items))
	for _, item := range r.Items {
		m, ok := in.Match(item, cur)
		if !ok {
			return nil, false
		}
		children = append(children, m)
		cur += m.Length()
	}
	return newMatch(r, in, offset, cur-offset, children, nil), true
}

func (r *Sequence) ToPeg() string {
	parts := make([]string, len(r.Items))
	for i, item := range r.Items {
		parts[i] = embed(item)
	}
	return strings.Join(parts, " ")
}

func (r *Sequence) subrules() []Rule { return r.Items }

// Choice tries each item in order at the same offset and returns the
// first success, wrapped as a single-child match.
type Choice struct {
	ruleBase
	Items []Rule
}

// Alt builds a Choice rule.
func Alt(items ...Rule) *Choice {
	return &Choice{ruleBase: newRuleBase(), Items: items}
}

func (r *Choice) evaluate(in *Input, offset int) (*Match, bool) {
	for _, item := range r.Items {
		if m, ok := in.Match(item, offset); ok {
			return newMatch(r, in, offset, m.Length(), []*Match{m}, nil), true
		}
	}
	return nil, false
}

func (r *Choice) ToPeg() string {
	parts := make([]string, len(r.Items))
	for i, item := range r.Items {
		parts[i] = embed(item)
	}
	return strings.Join(parts, " | ")
}

func (r *Choice) subrules() []Rule { return r.Items }

// Repeat greedily matches Expr until it fails, Max matches have been
// collected, or a zero-width match is detected (see below), then
// succeeds iff the count lies in [Min, Max].
type Repeat struct {
	ruleBase
	Min, Max int
	Expr     Rule
}

// Rep builds a Repeat rule. Panics with a GrammarError-shaped message
// if min > max, a programmer error, not a parse failure.
func Rep(expr Rule, min, max int) *Repeat {
	if min > max {
		panic(newGrammarError("repeat: min %d > max %d", min, max))
	}
	return &Repeat{ruleBase: newRuleBase(), Min: min, Max: max, Expr: expr}
}

// OneOrMore builds Rep(expr, 1, Infinite).
func OneOrMore(expr Rule) *Repeat { return Rep(expr, 1, Infinite) }

// ZeroOrMore builds Rep(expr, 0, Infinite).
func ZeroOrMore(expr Rule) *Repeat { return Rep(expr, 0, Infinite) }

// Optional builds Rep(expr, 0, 1).
func Optional(expr Rule) *Repeat { return Rep(expr, 0, 1) }

func (r *Repeat) evaluate(in *Input, offset int) (*Match, bool) {
	cur := offset
	var children []*Match
	for len(children) < r.Max {
		m, ok := in.Match(r.Expr, cur)
		if !ok {
			break
		}
		children = append(children, m)
		if m.Length() == 0 {
			// A zero-width repeat still counts once toward the
			// repetition, but the offset never advances, so looping
			// to Max would hang forever when Max is Infinite.
			// Saturate instead of looping: one zero-width match is
			// enough to prove the count, further iterations would be
			// identical.
			break
		}
		cur += m.Length()
	}
	if len(children) < r.Min || len(children) > r.Max {
		return nil, false
	}
	return newMatch(r, in, offset, cur-offset, children, nil), true
}

func (r *Repeat) ToPeg() string {
	return embed(r.Expr) + r.op()
}

func (r *Repeat) op() string {
	switch {
	case r.Min == 0 && r.Max == 1:
		return "?"
	case r.Min == 1 && r.Max >= Infinite:
		return "+"
	case r.Min == 0 && r.Max >= Infinite:
		return "*"
	case r.Max >= Infinite:
		return fmt.Sprintf("%d*", r.Min)
	default:
		return fmt.Sprintf("%d*%d", r.Min, r.Max)
	}
}

func (r *Repeat) subrules() []Rule { return []Rule{r.Expr} }

// embed renders a sub-rule for use inside a Sequence/Choice/Repeat,
// parenthesizing it when it is itself a multi-item Sequence or
// Choice, so the rendered PEG notation round-trips unambiguously.
func embed(r Rule) string {
	switch v := r.(type) {
	case *Sequence:
		if len(v.Items) > 1 {
			return "(" + v.ToPeg() + ")"
		}
	case *Choice:
		if len(v.Items) > 1 {
			return "(" + v.ToPeg() + ")"
		}
	}
	return r.ToPeg()
}
