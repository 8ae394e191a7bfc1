package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPlayers(t *testing.T, n int) []*Player {
	t.Helper()
	players, err := NewPlayers(n)
	require.NoError(t, err)
	return players
}

func testLayout(t *testing.T, players []*Player, lines ...string) *Board {
	t.Helper()
	b, err := ReadLayout(strings.NewReader(strings.Join(lines, "\n")), players)
	require.NoError(t, err)
	return b
}

func requireLayout(t *testing.T, b *Board, lines ...string) {
	t.Helper()
	players := b.Players()
	want := testLayout(t, players, lines...)
	require.Equal(t, want.String(), b.String())
}
