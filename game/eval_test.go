package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("scoring an open position", func(t *testing.T) {
		b := newCornerBoard(t)

		require.Equal(t, 0.0, NullScore(b, Player1))
		require.Equal(t, 2.0, OpenMoveScore(b, Player1), "Player1 has two jumps")
		require.Equal(t, 0.0, ImprovedScore(b, Player1), "Both players have two jumps")
		require.Equal(t, 4.5, DistanceScore(b, Player1), "Corner is 1.5 rows and columns away")
	})

	t.Run("favoring the more mobile player", func(t *testing.T) {
		b := NewBoard(5, 5)
		require.NoError(t, b.Apply(Move{2, 2}))
		require.NoError(t, b.Apply(Move{0, 0}))

		require.Equal(t, 8.0-2.0, ImprovedScore(b, Player1))
		require.Equal(t, 2.0-8.0, ImprovedScore(b, Player2))
	})

	t.Run("overriding heuristics on a decided board", func(t *testing.T) {
		b := NewBoard(3, 3)
		require.NoError(t, b.Apply(Move{1, 1}))
		require.NoError(t, b.Apply(Move{0, 0}))

		for name, evaluate := range evaluations {
			require.Equal(t, math.Inf(-1), evaluate(b, Player1), "%s should score a loss", name)
			require.Equal(t, math.Inf(1), evaluate(b, Player2), "%s should score a win", name)
		}
	})
}

// playBoard applies the moves in turn on a fresh board.
func playBoard(t *testing.T, rows, cols int, moves ...Move) *Board {
	b := NewBoard(rows, cols)
	for _, m := range moves {
		require.NoError(t, b.Apply(m))
	}
	return b
}

func TestPositionalFactors(t *testing.T) {
	tests := []struct {
		name       string
		board      func(t *testing.T) *Board
		center     float64
		reflection float64
		partition  float64
		improved   float64
	}{
		{
			// Player1 at (0,1) can jump to the centre; the board edge next to
			// (2,0) is two cells thick
			name:   "centre reachable on an odd board",
			board:  func(t *testing.T) *Board { return playBoard(t, 5, 5, Move{0, 1}, Move{4, 4}) },
			center: 2, reflection: 1, partition: 4, improved: 1,
		},
		{
			// (2,0) mirrors player2 at (2,4)
			name:   "mirror of the opponent reachable",
			board:  func(t *testing.T) *Board { return playBoard(t, 5, 5, Move{0, 1}, Move{2, 4}) },
			center: 2, reflection: 2, partition: 4, improved: -1,
		},
		{
			name:   "no centre cell on an even board",
			board:  func(t *testing.T) *Board { return playBoard(t, 4, 4, Move{0, 1}, Move{3, 3}) },
			center: 1, reflection: 1, partition: 4, improved: 1,
		},
		{
			name:   "open ground around every move",
			board:  func(t *testing.T) *Board { return playBoard(t, 7, 7, Move{3, 3}, Move{0, 0}) },
			center: 1, reflection: 1, partition: 1, improved: 6,
		},
		{
			// (1,2) borders player2 at (2,2)
			name:   "single blocked cell next to a move",
			board:  func(t *testing.T) *Board { return playBoard(t, 7, 7, Move{3, 3}, Move{2, 2}) },
			center: 1, reflection: 1, partition: 2, improved: 0,
		},
		{
			// (2,2) has (1,2) and (0,2) blocked above it
			name: "two blocked cells in a row next to a move",
			board: func(t *testing.T) *Board {
				return playBoard(t, 7, 7, Move{0, 2}, Move{0, 0}, Move{1, 0}, Move{1, 2})
			},
			center: 1, reflection: 1, partition: 4, improved: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.board(t)
			player := b.Active()
			sum := tt.center + tt.reflection + tt.partition

			require.Equal(t, tt.center, CenterScore(b, player), "center")
			require.Equal(t, tt.reflection, ReflectionScore(b, player), "reflection")
			require.Equal(t, tt.partition, PartitionScore(b, player), "partition")
			require.Equal(t, tt.improved, ImprovedScore(b, player), "improved")
			require.Equal(t, tt.center+tt.reflection, CenterReflectionScore(b, player))
			require.Equal(t, tt.center+tt.partition, CenterPartitionScore(b, player))
			require.Equal(t, tt.reflection+tt.partition, ReflectionPartitionScore(b, player))
			require.Equal(t, sum, CombinedScore(b, player))
			require.Equal(t, sum*tt.improved, CombinedImprovedScore(b, player))
		})
	}

	t.Run("neutral factors on an empty board", func(t *testing.T) {
		b := NewBoard(5, 5)

		require.Equal(t, 2.0, CenterScore(b, Player1), "The centre is open for the first placement")
		require.Equal(t, 1.0, ReflectionScore(b, Player1))
		require.Equal(t, 1.0, PartitionScore(b, Player1))
	})
}

func TestLookupEvaluate(t *testing.T) {
	t.Run("finding registered heuristics", func(t *testing.T) {
		evaluate, err := LookupEvaluate("improved")

		require.NoError(t, err)
		require.Equal(t, 0.0, evaluate(newCornerBoard(t), Player1))
	})

	t.Run("rejecting unknown heuristics", func(t *testing.T) {
		_, err := LookupEvaluate("mystery")

		require.ErrorContains(t, err, "mystery")
	})

	t.Run("listing names alphabetically", func(t *testing.T) {
		require.Equal(t, []string{
			"center", "center_partition", "center_reflection", "combined", "combined_improved", "distance",
			"improved", "null", "open", "partition", "reflection", "reflection_partition",
		}, EvaluateNames())
	})
}
