package pegrat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedWidth(t *testing.T) {
	t.Run("matches exact text", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("abc", Literal("abc"))
		m, err := g.Parse("abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", m.Text())
		assert.Equal(t, 3, m.Length())
		assert.True(t, m.Terminal())
	})

	t.Run("empty literal matches anywhere with zero length", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("empty", Literal(""))
		m, err := g.Parse("", WithoutConsumeAll())
		require.NoError(t, err)
		assert.Equal(t, 0, m.Length())
	})

	t.Run("mismatch fails", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("abc", Literal("abc"))
		_, err := g.Parse("abd")
		assert.Error(t, err)
		var perr *ParseError
		assert.ErrorAs(t, err, &perr)
	})
}

func TestExpression(t *testing.T) {
	t.Run("matches and exposes no captures without groups", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("alpha", MustRegex("(?i)[a-z]+"))
		m, err := g.Parse("abc")
		require.NoError(t, err)
		assert.Equal(t, "abc", m.Text())
		assert.Empty(t, m.Captures())
	})

	t.Run("captures ordered submatches", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("kv", MustRegex(`(\w+)=(\w+)`))
		m, err := g.Parse("key=value")
		require.NoError(t, err)
		require.Len(t, m.Captures(), 2)
		assert.Equal(t, "key", m.Captures()[0])
		assert.Equal(t, "value", m.Captures()[1])
	})

	t.Run("rejects a match that starts past position 0", func(t *testing.T) {
		g := NewGrammar("", nil)
		g.Define("digits", MustRegex(`\d+`))
		_, err := g.Parse("abc123", WithoutConsumeAll())
		assert.Error(t, err)
	})

	t.Run("bad pattern is a host error", func(t *testing.T) {
		_, err := Regex("(unclosed")
		assert.Error(t, err)
	})
}

func TestTerminalToPeg(t *testing.T) {
	assert.Equal(t, `"abc"`, Literal("abc").ToPeg())
	assert.Equal(t, "/[a-z]+/", MustRegex("[a-z]+").ToPeg())
}
