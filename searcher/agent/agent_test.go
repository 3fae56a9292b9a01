package agent

import (
	"testing"
	"time"

	"isolation/game"
	"isolation/searcher"

	"github.com/stretchr/testify/require"
)

// newWinningBoard returns a 3x3 board with player1 at (0,0) to move and
// player2 stuck in the centre.
func newWinningBoard(t *testing.T) *game.Board {
	b := game.NewBoard(3, 3)
	require.NoError(t, b.Apply(game.Move{Row: 0, Col: 0}))
	require.NoError(t, b.Apply(game.Move{Row: 1, Col: 1}))
	return b
}

func newStuckBoard(t *testing.T) *game.Board {
	b := game.NewBoard(3, 3)
	require.NoError(t, b.Apply(game.Move{Row: 1, Col: 1}))
	require.NoError(t, b.Apply(game.Move{Row: 0, Col: 0}))
	return b
}

func TestSearchAgent(t *testing.T) {
	t.Run("finding the winning move in time", func(t *testing.T) {
		s := searcher.NewSearcher(searcher.WithMethod(searcher.AlphaBeta), searcher.WithMetrics())
		a := NewSearchAgent(s, 5*time.Millisecond)

		move, metric := a.FindMove(newWinningBoard(t), time.Second)

		require.Equal(t, game.Move{Row: 1, Col: 2}, move)
		require.Equal(t, "alphabeta", metric.Method)
		require.False(t, metric.TimedOut)
		require.Equal(t, 1, metric.Depth, "The tree ends after a single move")
	})

	t.Run("playing the first legal move without time to search", func(t *testing.T) {
		b := game.NewBoard(5, 5)
		s := searcher.NewSearcher(searcher.WithMetrics())
		a := NewSearchAgent(s, 10*time.Millisecond)

		move, metric := a.FindMove(b, 5*time.Millisecond)

		require.Equal(t, game.Move{Row: 0, Col: 0}, move)
		require.True(t, metric.TimedOut)
	})

	t.Run("forfeiting when stuck", func(t *testing.T) {
		a := NewSearchAgent(searcher.NewSearcher(), 0)

		move, _ := a.FindMove(newStuckBoard(t), time.Second)

		require.Equal(t, game.NoMove, move)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("playing legal moves", func(t *testing.T) {
		a := NewRandomAgent()
		b := game.NewBoard(5, 5)
		for !b.IsTerminal(b.Active()) {
			move, _ := a.FindMove(b, time.Second)
			require.Contains(t, b.LegalMoves(b.Active()), move)
			require.NoError(t, b.Apply(move))
		}
	})

	t.Run("forfeiting when stuck", func(t *testing.T) {
		move, _ := NewRandomAgent().FindMove(newStuckBoard(t), time.Second)

		require.Equal(t, game.NoMove, move)
	})
}

func TestGreedyAgent(t *testing.T) {
	t.Run("keeping the first of equally good moves", func(t *testing.T) {
		move, metric := NewGreedyAgent(nil).FindMove(newWinningBoard(t), time.Second)

		require.Equal(t, game.Move{Row: 1, Col: 2}, move)
		require.Equal(t, 2, metric.Nodes)
	})

	t.Run("maximizing the score after one move", func(t *testing.T) {
		b := game.NewBoard(5, 5)
		require.NoError(t, b.Apply(game.Move{Row: 0, Col: 0}))
		require.NoError(t, b.Apply(game.Move{Row: 4, Col: 4}))

		move, _ := NewGreedyAgent(game.DistanceScore).FindMove(b, time.Second)

		// From (0,0) the jumps are (1,2) and (2,1), and both score 2.5
		require.Equal(t, game.Move{Row: 1, Col: 2}, move)
	})

	t.Run("forfeiting when stuck", func(t *testing.T) {
		move, _ := NewGreedyAgent(game.OpenMoveScore).FindMove(newStuckBoard(t), time.Second)

		require.Equal(t, game.NoMove, move)
	})
}
