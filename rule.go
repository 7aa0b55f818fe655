package pegrat

import "sync/atomic"

// Rule is the closed set of PEG rule variants. Every match operation
// MUST be dispatched through Input.Match rather than calling a
// sub-rule's evaluate directly — that indirection through the
// memoized cache is what makes the engine packrat.
//
// The variant set is fixed: FixedWidth, Expression, Sequence, Choice,
// Repeat, AndPredicate, NotPredicate, Label, Alias, Super — one struct
// per variant rather than a single tagged node.
type Rule interface {
	// evaluate performs this rule's own matching logic at offset,
	// asking in.Match for any sub-rule it needs. Called only by
	// Input.Match; never call it directly on a sub-rule.
	evaluate(in *Input, offset int) (*Match, bool)

	// ToPeg renders the rule back to canonical PEG notation.
	ToPeg() string

	// ID is this rule's stable cache-key identity, distinct from
	// its Name: an alias and its target share a name but must not
	// share a cache entry.
	ID() uint64

	// Name is the symbol this rule is registered under in its
	// owning grammar, or "" if anonymous.
	Name() string

	// Grammar is the owning grammar, set once the rule is
	// installed via Grammar.Define, or nil before that.
	Grammar() *Grammar

	// Extension returns the opaque handle an embedding application
	// attached to this rule, if any.
	Extension() (ExtensionTag, bool)

	// subrules returns this rule's immediate children, used for
	// generic tree walks (grammar-rebinding on install, mostly).
	subrules() []Rule

	setName(string)
	setGrammar(*Grammar)
	setExtension(ExtensionTag)
}

var ruleIDSeq uint64

// nextRuleID hands out a monotonically increasing identity at rule
// construction time. A plain counter, not a random UUID: identity
// also needs to reflect construction order for diagnostics, which a
// UUID can't give us.
func nextRuleID() uint64 {
	return atomic.AddUint64(&ruleIDSeq, 1)
}

// ExtensionTag is an opaque handle an embedding application attaches
// to a rule at construction time; it is propagated to every Match the
// rule produces. The engine itself never interprets it.
type ExtensionTag int

// NoExtension is the zero value meaning "no extension tag attached".
const NoExtension ExtensionTag = 0

// ExtensionFunc is the embedding-supplied behavior associated with an
// ExtensionTag. Its signature is deliberately minimal (take the match
// that carries the tag, return whatever semantic value the embedding
// computes, or an error) — richer contracts belong to the embedding,
// not to this engine.
type ExtensionFunc func(m *Match) (interface{}, error)

var extensionRegistry = map[ExtensionTag]ExtensionFunc{}

// RegisterExtension associates tag with fn for later lookup by
// ResolveExtension. Embeddings call this during setup, before
// parsing; the engine never calls it itself.
func RegisterExtension(tag ExtensionTag, fn ExtensionFunc) {
	extensionRegistry[tag] = fn
}

// ResolveExtension looks up the function registered for tag.
func ResolveExtension(tag ExtensionTag) (ExtensionFunc, bool) {
	fn, ok := extensionRegistry[tag]
	return fn, ok
}

// ruleBase carries the fields every rule variant shares: identity,
// optional name, owning grammar, and optional extension tag. Embedded
// by every variant struct so each variant only declares the fields
// specific to it.
type ruleBase struct {
	id     uint64
	name   string
	grm    *Grammar
	ext    ExtensionTag
	hasExt bool
}

func newRuleBase() ruleBase {
	return ruleBase{id: nextRuleID()}
}

func (b *ruleBase) ID() uint64                     { return b.id }
func (b *ruleBase) Name() string                   { return b.name }
func (b *ruleBase) Grammar() *Grammar               { return b.grm }
func (b *ruleBase) Extension() (ExtensionTag, bool) { return b.ext, b.hasExt }
func (b *ruleBase) setName(name string)             { b.name = name }
func (b *ruleBase) setGrammar(g *Grammar)           { b.grm = g }
func (b *ruleBase) setExtension(tag ExtensionTag)   { b.ext, b.hasExt = tag, true }

// WithExtension attaches tag to r and returns r, for chaining at
// construction time: e.g. WithExtension(Literal("x"), tagFoo).
func WithExtension(r Rule, tag ExtensionTag) Rule {
	r.setExtension(tag)
	return r
}

// newMatch builds the Match a rule's evaluate should return on
// success, carrying the rule's own name (empty if the rule is
// anonymous) and extension tag.
func newMatch(owner Rule, in *Input, offset, length int, children []*Match, captures []string) *Match {
	tag, hasExt := owner.Extension()
	return &Match{
		input:    in,
		offset:   offset,
		length:   length,
		children: children,
		captures: captures,
		name:     owner.Name(),
		ext:      tag,
		hasExt:   hasExt,
	}
}
