package pegrat

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrammarDefineOverloads(t *testing.T) {
	t.Run("string becomes FixedWidth", func(t *testing.T) {
		g := NewGrammar("", nil)
		r, err := g.Define("word", "hello")
		require.NoError(t, err)
		_, ok := r.(*FixedWidth)
		assert.True(t, ok)
	})

	t.Run("regexp.Regexp becomes Expression", func(t *testing.T) {
		g := NewGrammar("", nil)
		r, err := g.Define("digits", regexp.MustCompile(`\d+`))
		require.NoError(t, err)
		_, ok := r.(*Expression)
		assert.True(t, ok)
	})

	t.Run("int becomes FixedWidth of its decimal rendering", func(t *testing.T) {
		g := NewGrammar("", nil)
		r, err := g.Define("fortytwo", 42)
		require.NoError(t, err)
		fw, ok := r.(*FixedWidth)
		require.True(t, ok)
		assert.Equal(t, "42", fw.Value)
	})

	t.Run("[]Rule becomes Sequence", func(t *testing.T) {
		g := NewGrammar("", nil)
		r, err := g.Define("ab", []Rule{Literal("a"), Literal("b")})
		require.NoError(t, err)
		seq, ok := r.(*Sequence)
		require.True(t, ok)
		assert.Len(t, seq.Items, 2)
	})

	t.Run("CharRange becomes Choice over its enumeration", func(t *testing.T) {
		g := NewGrammar("", nil)
		r, err := g.Define("digit", CharRange{'0', '9'})
		require.NoError(t, err)
		choice, ok := r.(*Choice)
		require.True(t, ok)
		assert.Len(t, choice.Items, 10)

		m, err := g.Parse("7")
		require.NoError(t, err)
		assert.Equal(t, "7", m.Text())
	})

	t.Run("invalid definition type is a grammar error", func(t *testing.T) {
		g := NewGrammar("", nil)
		_, err := g.Define("bad", 3.14)
		require.Error(t, err)
		var gerr *GrammarError
		assert.ErrorAs(t, err, &gerr)
	})

	t.Run("first defined rule becomes the default root", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("first", Literal("a"))
		g.Define("second", Literal("b"))
		assert.Equal(t, "first", g.Root())
	})

	t.Run("Root can be overridden explicitly", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("first", Literal("a"))
		g.Define("second", Literal("b"))
		g.Root("second")
		assert.Equal(t, "second", g.Root())
	})

	t.Run("RuleNames preserves insertion order and suppresses duplicates", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("a", Literal("a"))
		g.Define("b", Literal("b"))
		g.Define("a", Literal("aa")) // redefinition, not a new entry
		assert.Equal(t, []string{"a", "b"}, g.RuleNames())
	})
}

func TestGrammarParsePreconditions(t *testing.T) {
	t.Run("empty grammar is a fatal error", func(t *testing.T) {
		g := NewGrammar("empty", nil)
		_, err := g.Parse("x")
		require.Error(t, err)
		var gerr *GrammarError
		assert.ErrorAs(t, err, &gerr)
	})

	t.Run("missing root override is a fatal error", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("start", Literal("a"))
		_, err := g.Parse("a", WithRoot("missing"))
		require.Error(t, err)
		var gerr *GrammarError
		assert.ErrorAs(t, err, &gerr)
	})
}

func TestToPegRendering(t *testing.T) {
	table := []struct {
		name string
		rule Rule
		want string
	}{
		{"literal", Literal("abc"), `"abc"`},
		{"sequence", Seq(Literal("a"), Literal("b"), Literal("c")), `"a" "b" "c"`},
		{"choice", Alt(Literal("a"), Literal("b")), `"a" | "b"`},
		{"label", Label("l", Literal("a")), `l:"a"`},
		{"label with a sequence body is parenthesized", Label("l", Seq(Literal("a"), Literal("b"))), `l:("a" "b")`},
		{"and-predicate", AndPred(Literal("a")), `&"a"`},
		{"not-predicate", NotPred(Literal("a")), `!"a"`},
		{"alias", AliasRef("name"), "name"},
		{"super", SuperRef("name"), "super"},
	}
	for _, tc := range table {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.ToPeg())
		})
	}
}
