package pegrat

// AndPredicate matches iff Expr matches, consuming no input and
// producing an empty match either way.
type AndPredicate struct {
	ruleBase
	Expr Rule
}

// AndPred builds an AndPredicate rule.
func AndPred(expr Rule) *AndPredicate {
	return &AndPredicate{ruleBase: newRuleBase(), Expr: expr}
}

func (r *AndPredicate) evaluate(in *Input, offset int) (*Match, bool) {
	if _, ok := in.Match(r.Expr, offset); !ok {
		return nil, false
	}
	return newMatch(r, in, offset, 0, nil, nil), true
}

func (r *AndPredicate) ToPeg() string    { return "&" + embed(r.Expr) }
func (r *AndPredicate) subrules() []Rule { return []Rule{r.Expr} }

// NotPredicate matches iff Expr does NOT match, consuming no input
// and producing an empty match on success.
type NotPredicate struct {
	ruleBase
	Expr Rule
}

// NotPred builds a NotPredicate rule.
func NotPred(expr Rule) *NotPredicate {
	return &NotPredicate{ruleBase: newRuleBase(), Expr: expr}
}

func (r *NotPredicate) evaluate(in *Input, offset int) (*Match, bool) {
	if _, ok := in.Match(r.Expr, offset); ok {
		return nil, false
	}
	return newMatch(r, in, offset, 0, nil, nil), true
}

func (r *NotPredicate) ToPeg() string    { return "!" + embed(r.Expr) }
func (r *NotPredicate) subrules() []Rule { return []Rule{r.Expr} }
