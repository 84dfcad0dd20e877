package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKnown(t *testing.T) {
	t.Parallel()

	for _, k := range Kinds() {
		require.True(t, Known(string(k)))
	}
	require.False(t, Known(""))
	require.False(t, Known("Buton"))
	require.False(t, Known("button")) // matching is exact
}

func TestHasText(t *testing.T) {
	t.Parallel()

	require.False(t, HasText(KindFrame))
	require.True(t, HasText(KindButton))
	require.True(t, HasText(KindEntry))
}

func TestClosestSuggestsNearestKind(t *testing.T) {
	t.Parallel()

	require.Equal(t, KindButton, Closest("Buton"))
	require.Equal(t, KindLabel, Closest("lable"))
	require.Equal(t, KindFrame, Closest("frame"))
}
