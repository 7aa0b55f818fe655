package pegrat

// Match is a node in the result parse tree: a text span, its ordered
// children, any regex captures, an optional name, and an optional
// extension tag inherited from the rule that produced it. Every rule
// variant produces the same Match shape, so one struct suffices
// rather than a tagged union of node kinds.
//
// A Match's text is always input[offset:offset+length]; it is never
// copied out of the input eagerly, terminal or not — slicing the
// backing string is cheap and keeps every Match, however deep, a pure
// view over the same input.
type Match struct {
	input    *Input
	offset   int
	length   int
	children []*Match
	captures []string
	name     string
	ext      ExtensionTag
	hasExt   bool
}

// Text returns the matched substring.
func (m *Match) Text() string { return m.input.Slice(m.offset, m.length) }

// Offset is the byte offset into the input where this match starts.
func (m *Match) Offset() int { return m.offset }

// Length is the code-unit length of the matched text.
func (m *Match) Length() int { return m.length }

// Children are this match's ordered sub-matches. Sequence and Repeat
// children appear in source order; Choice produces exactly one child;
// terminals and predicates have none.
func (m *Match) Children() []*Match { return m.children }

// Captures are the ordered regex capture groups, empty unless this
// match originated from an Expression rule.
func (m *Match) Captures() []string { return m.captures }

// Name is the symbol this match is known by: the originating rule's
// registered name, or whatever a containing Label/Alias renamed it
// to. Empty if none applies.
func (m *Match) Name() string { return m.name }

// Extension returns the extension tag inherited from the rule that
// produced this match.
func (m *Match) Extension() (ExtensionTag, bool) { return m.ext, m.hasExt }

// Terminal reports whether this match has no children.
func (m *Match) Terminal() bool { return len(m.children) == 0 }

// Equal reports whether this match's text equals s.
func (m *Match) Equal(s string) bool { return m.Text() == s }

// First returns the first immediate child named name, or the first
// child overall if name is omitted. Returns nil if there is no such
// child.
func (m *Match) First(name ...string) *Match {
	if len(name) == 0 {
		if len(m.children) == 0 {
			return nil
		}
		return m.children[0]
	}
	for _, c := range m.children {
		if c.name == name[0] {
			return c
		}
	}
	return nil
}

// Find returns every descendant match named name. When deep is false
// only immediate children are considered; when true the full subtree
// is searched in pre-order.
func (m *Match) Find(name string, deep bool) []*Match {
	return m.FindFunc(deep, func(c *Match) bool { return c.name == name })
}

// FindFunc generalizes Find to an arbitrary predicate via a pre-order
// walk. When deep is false only immediate children are checked.
func (m *Match) FindFunc(deep bool, predicate func(*Match) bool) []*Match {
	var out []*Match
	if !deep {
		for _, c := range m.children {
			if predicate(c) {
				out = append(out, c)
			}
		}
		return out
	}
	var walk func(*Match)
	walk = func(n *Match) {
		for _, c := range n.children {
			if predicate(c) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(m)
	return out
}
