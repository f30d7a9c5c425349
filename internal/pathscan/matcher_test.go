package pathscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralMatcher(t *testing.T) {
	m, err := NewMatcher("ls", MatchOptions{})
	require.NoError(t, err)

	cases := []struct {
		name string
		want Kind
	}{
		{"ls", Exact},
		{"lsblk", Related},
		{"pls", Related},
		{"false", Related},
		{"LS", NoMatch},
		{"cat", NoMatch},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, m.Match(c.name), c.name)
	}
}

func TestLiteralMatcher_IgnoreCase(t *testing.T) {
	m, err := NewMatcher("Python", MatchOptions{IgnoreCase: true})
	require.NoError(t, err)

	assert.Equal(t, Exact, m.Match("python"))
	assert.Equal(t, Exact, m.Match("PYTHON"))
	assert.Equal(t, Related, m.Match("python3-config"))
	assert.Equal(t, NoMatch, m.Match("perl"))
}

func TestLiteralMatcher_RegexMetacharactersAreLiteral(t *testing.T) {
	m, err := NewMatcher("g++", MatchOptions{})
	require.NoError(t, err)

	assert.Equal(t, Exact, m.Match("g++"))
	assert.Equal(t, Related, m.Match("x86_64-linux-gnu-g++"))
	assert.Equal(t, NoMatch, m.Match("gg"))
}

func TestRegexMatcher(t *testing.T) {
	m, err := NewMatcher("py(thon)?[0-9]", MatchOptions{Regex: true})
	require.NoError(t, err)

	assert.Equal(t, Exact, m.Match("python3"))
	assert.Equal(t, Exact, m.Match("py3"))
	assert.Equal(t, Related, m.Match("python3-config"))
	assert.Equal(t, NoMatch, m.Match("python"))
}

func TestRegexMatcher_AlternationIsWholeName(t *testing.T) {
	m, err := NewMatcher("vi|vim", MatchOptions{Regex: true})
	require.NoError(t, err)

	assert.Equal(t, Exact, m.Match("vim"))
	assert.Equal(t, Exact, m.Match("vi"))
	assert.Equal(t, Related, m.Match("gvimdiff"))
}

func TestRegexMatcher_IgnoreCase(t *testing.T) {
	m, err := NewMatcher("^git", MatchOptions{Regex: true, IgnoreCase: true})
	require.NoError(t, err)

	assert.Equal(t, Related, m.Match("GIT-lfs"))
	assert.Equal(t, NoMatch, m.Match("tig"))
}

func TestRegexMatcher_InvalidPattern(t *testing.T) {
	_, err := NewMatcher("a(b", MatchOptions{Regex: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}
