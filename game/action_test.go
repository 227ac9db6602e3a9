package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	t.Run("parsing every action name", func(t *testing.T) {
		for _, action := range append([]Action{Stop}, Actions...) {
			got, err := ParseAction(action.String())
			require.NoError(t, err)
			require.Equal(t, action, got, "Should round trip %s", action)
		}
	})

	t.Run("parsing is case insensitive", func(t *testing.T) {
		got, err := ParseAction(" North ")
		require.NoError(t, err)
		require.Equal(t, North, got)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := ParseAction("jump")
		require.Error(t, err, "Should reject unknown names")
	})
}

func TestActionDelta(t *testing.T) {
	dx, dy := Stop.Delta()
	require.Zero(t, dx)
	require.Zero(t, dy)

	dx, dy = North.Delta()
	require.Equal(t, 0, dx)
	require.Equal(t, -1, dy, "North should move up a row")

	dx, dy = West.Delta()
	require.Equal(t, -1, dx, "West should move left a column")
	require.Equal(t, 0, dy)
}
