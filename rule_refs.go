package pegrat

import "sync"

// Label matches iff Expr matches, then renames the resulting match to
// Label before returning it. The rename does not affect caching: the
// sub-rule's cache entry is shared by every Label pointing at it.
type LabelRule struct {
	ruleBase
	Label string
	Expr  Rule
}

// Label builds a LabelRule.
func Label(label string, expr Rule) *LabelRule {
	return &LabelRule{ruleBase: newRuleBase(), Label: label, Expr: expr}
}

func (r *LabelRule) evaluate(in *Input, offset int) (*Match, bool) {
	m, ok := in.Match(r.Expr, offset)
	if !ok {
		return nil, false
	}
	renamed := *m
	renamed.name = r.Label
	return &renamed, true
}

func (r *LabelRule) ToPeg() string    { return r.Label + ":" + embed(r.Expr) }
func (r *LabelRule) subrules() []Rule { return []Rule{r.Expr} }

// Alias is a proxy that resolves targetName to a rule in the enclosing
// grammar (or an included grammar, if not found locally) and
// delegates to it. If the alias is itself named in a grammar, the
// delegate's match is renamed to the alias's own name.
type Alias struct {
	ruleBase
	targetName string

	resolveOnce sync.Once
	resolved    Rule
	resolveErr  error
}

// AliasRef builds an Alias rule referencing name.
func AliasRef(name string) *Alias {
	return &Alias{ruleBase: newRuleBase(), targetName: name}
}

func (r *Alias) resolve() (Rule, error) {
	r.resolveOnce.Do(func() {
		if r.grm == nil {
			r.resolveErr = newGrammarError("alias %q used before its grammar was installed", r.targetName)
			return
		}
		target, ok := r.grm.rule(r.targetName)
		if !ok {
			r.resolveErr = newGrammarError("alias %q does not resolve to any rule in grammar %q", r.targetName, r.grm.name)
			return
		}
		r.resolved = target
	})
	return r.resolved, r.resolveErr
}

func (r *Alias) evaluate(in *Input, offset int) (*Match, bool) {
	target, err := r.resolve()
	if err != nil {
		panic(err)
	}
	m, ok := in.Match(target, offset)
	if !ok {
		return nil, false
	}
	if r.name == "" {
		return m, true
	}
	renamed := *m
	renamed.name = r.name
	return &renamed, true
}

func (r *Alias) ToPeg() string    { return r.targetName }
func (r *Alias) subrules() []Rule { return nil }

// Super is a proxy that resolves targetName to a rule of that name in the
// enclosing grammar's ancestor chain only, skipping the grammar
// itself — the redefined-rule "call the parent" idiom.
type Super struct {
	ruleBase
	targetName string

	resolveOnce sync.Once
	resolved    Rule
	resolveErr  error
}

// SuperRef builds a Super rule referencing name.
func SuperRef(name string) *Super {
	return &Super{ruleBase: newRuleBase(), targetName: name}
}

func (r *Super) resolve() (Rule, error) {
	r.resolveOnce.Do(func() {
		if r.grm == nil {
			r.resolveErr = newGrammarError("super %q used before its grammar was installed", r.targetName)
			return
		}
		target, ok := r.grm.superRule(r.targetName)
		if !ok {
			r.resolveErr = newGrammarError("super %q does not resolve: no ancestor of grammar %q defines it", r.targetName, r.grm.name)
			return
		}
		r.resolved = target
	})
	return r.resolved, r.resolveErr
}

func (r *Super) evaluate(in *Input, offset int) (*Match, bool) {
	target, err := r.resolve()
	if err != nil {
		panic(err)
	}
	m, ok := in.Match(target, offset)
	if !ok {
		return nil, false
	}
	if r.name == "" {
		return m, true
	}
	renamed := *m
	renamed.name = r.name
	return &renamed, true
}

func (r *Super) ToPeg() string    { return "super" }
func (r *Super) subrules() []Rule { return nil }

// resetResolution clears a cached Alias/Super resolution so a newly
// included ancestor grammar becomes visible to a later re-resolve.
// Grammar.rebindGrammar calls this whenever a rule is (re)installed.
func (r *Alias) resetResolution() { r.resolveOnce = sync.Once{}; r.resolved, r.resolveErr = nil, nil }
func (r *Super) resetResolution() { r.resolveOnce = sync.Once{}; r.resolved, r.resolveErr = nil, nil }
