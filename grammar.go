package pegrat

import (
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
)

// Grammar is a named ordered collection of rules with an ancestor
// inclusion chain. Rules may reference each other by name (Alias), or
// reference an ancestor's same-named rule (Super), resolved lazily so
// forward references and mutual recursion are permitted.
type Grammar struct {
	name      string
	ruleNames []string
	rules     map[string]Rule
	ancestors []*Grammar // most recently included first
	rootName  string

	log *logrus.Entry
}

// NewGrammar creates an anonymous grammar, or a named one if name is
// given. If builder is non-nil, it is called with the new grammar so
// it can install rules.
func NewGrammar(name string, builder func(*Grammar)) *Grammar {
	g := &Grammar{
		name:  name,
		rules: make(map[string]Rule),
		log:   logrus.WithField("component", "pegrat.grammar"),
	}
	if builder != nil {
		builder(g)
	}
	return g
}

// Name is the grammar's own name, empty for anonymous grammars.
func (g *Grammar) Name() string { return g.name }

// RuleNames returns the grammar's own rule names in insertion order.
func (g *Grammar) RuleNames() []string {
	out := make([]string, len(g.ruleNames))
	copy(out, g.ruleNames)
	return out
}

// Rules returns a copy of the grammar's own name->rule mapping.
func (g *Grammar) Rules() map[string]Rule {
	out := make(map[string]Rule, len(g.rules))
	for k, v := range g.rules {
		out[k] = v
	}
	return out
}

// Define installs def under name. def may be a Rule, a string
// (FixedWidth), a *regexp.Regexp (Expression), an int (FixedWidth of
// its decimal rendering), a []Rule (Sequence), or a CharRange
// (Choice over its enumeration).
func (g *Grammar) Define(name string, def interface{}) (Rule, error) {
	rule, err := toRule(def)
	if err != nil {
		return nil, wrapGrammarError(err, "defining rule %q", name)
	}

	rule.setName(name)
	g.rebindGrammar(rule)

	if _, exists := g.rules[name]; !exists {
		g.ruleNames = append(g.ruleNames, name)
	} else {
		g.log.WithField("rule", name).Debug("redefining existing rule")
	}
	g.rules[name] = rule

	if g.rootName == "" {
		g.rootName = name
	}
	return rule, nil
}

// toRule converts a rule-definition value into a Rule.
func toRule(def interface{}) (Rule, error) {
	switch v := def.(type) {
	case Rule:
		return v, nil
	case string:
		return Literal(v), nil
	case *regexp.Regexp:
		return &Expression{ruleBase: newRuleBase(), Pattern: v}, nil
	case int:
		return Literal(fmt.Sprintf("%d", v)), nil
	case []Rule:
		return Seq(v...), nil
	case CharRange:
		items := make([]Rule, 0, v.Hi-v.Lo+1)
		for c := v.Lo; c <= v.Hi; c++ {
			items = append(items, Literal(string(c)))
		}
		return Alt(items...), nil
	default:
		return nil, newGrammarError("invalid rule definition of type %T", def)
	}
}

// CharRange is a bounded range of characters, converted by Define
// into a Choice over its single-character enumeration. Kept small and
// explicit rather than accepting any integer range, since an
// unbounded range would silently build an enormous Choice.
type CharRange struct{ Lo, Hi rune }

// rebindGrammar sets rule's grammar reference, and recurses into its
// subrules so every Alias/Super nested inside it (however deep)
// points at the same grammar and re-resolves against it whenever a
// rule is (re)installed.
func (g *Grammar) rebindGrammar(rule Rule) {
	rule.setGrammar(g)
	if resettable, ok := rule.(interface{ resetResolution() }); ok {
		resettable.resetResolution()
	}
	for _, sub := range rule.subrules() {
		g.rebindGrammar(sub)
	}
}

// rule returns the rule registered locally under name, or if not
// found locally, walks included grammars in inclusion order (most
// recently included first) and returns the first match.
func (g *Grammar) rule(name string) (Rule, bool) {
	if r, ok := g.rules[name]; ok {
		return r, true
	}
	for _, ancestor := range g.ancestors {
		if r, ok := ancestor.rule(name); ok {
			return r, true
		}
	}
	return nil, false
}

// superRule is the same walk as rule but skips this grammar's own
// local rules, used by Super resolution.
func (g *Grammar) superRule(name string) (Rule, bool) {
	for _, ancestor := range g.ancestors {
		if r, ok := ancestor.rule(name); ok {
			return r, true
		}
	}
	return nil, false
}

// Include prepends other to this grammar's ancestor list, the
// tie-break for multiple inclusion: the most recently included
// ancestor wins when more than one defines the same name.
func (g *Grammar) Include(other *Grammar) {
	g.ancestors = append([]*Grammar{other}, g.ancestors...)
	for _, rule := range g.rules {
		g.rebindGrammar(rule)
	}
}

// Root gets the grammar's root rule name when called with no
// arguments, or sets it when called with one.
func (g *Grammar) Root(name ...string) string {
	if len(name) > 0 {
		g.rootName = name[0]
	}
	return g.rootName
}
