package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCSS(t *testing.T) {
	t.Parallel()

	css := string(Default().CSS())
	require.Contains(t, css, "--background-primary:#ffffff;")
	require.Contains(t, css, "--border-color:#e5e7eb;")
	require.Equal(t, ":root{", css[:6])
}

func TestParseOverlaysInOrder(t *testing.T) {
	t.Parallel()

	th, err := Parse([]byte("tokens:\n  accent: \"#a78bfa\"\n  surface-glow: rgba(124, 58, 237, 0.2)\n"))
	require.NoError(t, err)

	v, ok := th.Get("accent")
	require.True(t, ok)
	require.Equal(t, "#a78bfa", v)

	toks := th.Tokens()
	require.Equal(t, "surface-glow", toks[len(toks)-1].Name)
	require.Equal(t, "background-primary", toks[0].Name)
}

func TestParseRejectsInvalid(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"tokens:\n  Bad_Name: red\n",
		"tokens:\n  accent: \"red;}body{display:none\"\n",
		"tokens:\n  accent: \"</style>\"\n",
		"tokens:\n  accent:\n    nested: red\n",
		"tokens: [a, b]\n",
	} {
		_, err := Parse([]byte(raw))
		require.ErrorIs(t, err, ErrInvalidToken, raw)
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	th, err := Parse([]byte("# no tokens\n"))
	require.NoError(t, err)
	require.Equal(t, Default().CSS(), th.CSS())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	th, err := Load("")
	require.NoError(t, err)
	require.Len(t, th.Tokens(), len(Default().Tokens()))

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tokens:\n  text-primary: \"#000\"\n"), 0o600))
	th, err = Load(path)
	require.NoError(t, err)
	v, _ := th.Get("text-primary")
	require.Equal(t, "#000", v)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
