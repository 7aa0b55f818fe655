package pegrat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryLoader(t *testing.T) {
	l := NewInMemoryLoader()
	l.Add("greeting.peg", `greeting = "hi"`)

	path, err := l.Path("greeting.peg", "")
	require.NoError(t, err)
	assert.Equal(t, "greeting.peg", path)

	src, err := l.Content(path)
	require.NoError(t, err)
	assert.Equal(t, `greeting = "hi"`, src)

	_, err = l.Content("missing.peg")
	assert.Error(t, err)
}
