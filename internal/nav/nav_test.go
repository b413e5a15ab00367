package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnchorsCoverLandingSections(t *testing.T) {
	t.Parallel()

	require.ElementsMatch(t, []string{"como-funciona", "planos", "sobre", "contato", "faq"}, Anchors())
}

func TestBuildMarksAnchors(t *testing.T) {
	t.Parallel()

	items := Build()
	require.Len(t, items, len(Main))
	for _, it := range items {
		require.True(t, it.Anchor, it.Href)
		require.False(t, it.External)
	}
}

func TestFooterHasLogin(t *testing.T) {
	t.Parallel()

	var found bool
	for _, g := range BuildFooter() {
		for _, it := range g.Items {
			if it.Href == LoginPath {
				found = true
				require.Equal(t, "footer.login", it.LabelKey)
				require.False(t, it.Anchor)
			}
		}
	}
	require.True(t, found, "footer must link to the login page")
}
