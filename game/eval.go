package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NullScore only distinguishes decided boards; every other position is worth 0.
func NullScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	return 0
}

// OpenMoveScore counts the moves available to the player.
func OpenMoveScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	return float64(len(b.LegalMoves(player)))
}

// ImprovedScore is the difference between the player's and the opponent's
// mobility.
func ImprovedScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	own := len(b.LegalMoves(player))
	opp := len(b.LegalMoves(player.Opponent()))
	return float64(own - opp)
}

// DistanceScore is the squared distance of the player from the centre of the
// board, favoring the edges where the opponent has fewer ways in.
func DistanceScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	loc := b.Location(player)
	if loc == NoMove {
		return 0
	}
	h, w := float64(b.rows)/2, float64(b.cols)/2
	dy, dx := h-float64(loc.Row), w-float64(loc.Col)
	return dy*dy + dx*dx
}

// CenterScore is 2 while the centre cell is one of the player's moves, 1
// otherwise. Boards with an even side have no centre cell.
func CenterScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	return centerFactor(b, player)
}

// ReflectionScore is 2 while the player can jump to the cell mirroring the
// opponent through the centre of the board, 1 otherwise.
func ReflectionScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	return reflectionFactor(b, player)
}

// PartitionScore rewards moves that run along walls, which may cut the board
// in two. The first of the player's moves next to a blocked or off-board
// cell scores 4 when that wall is two cells thick in the same direction and
// 2 otherwise. Without such a move the score is 1.
func PartitionScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	return partitionFactor(b, player)
}

// combine sums factors on undetermined boards.
func combine(factors ...func(b *Board, player Player) float64) Evaluate {
	return func(b *Board, player Player) float64 {
		if outcome := b.Outcome(player); outcome != Undetermined {
			return b.Utility(player)
		}
		score := 0.0
		for _, factor := range factors {
			score += factor(b, player)
		}
		return score
	}
}

var (
	CenterReflectionScore    = combine(centerFactor, reflectionFactor)
	CenterPartitionScore     = combine(centerFactor, partitionFactor)
	ReflectionPartitionScore = combine(reflectionFactor, partitionFactor)
	CombinedScore            = combine(centerFactor, reflectionFactor, partitionFactor)
)

// CombinedImprovedScore scales the mobility difference by the sum of the
// centre, reflection and partition factors.
func CombinedImprovedScore(b *Board, player Player) float64 {
	if outcome := b.Outcome(player); outcome != Undetermined {
		return b.Utility(player)
	}
	return CombinedScore(b, player) * ImprovedScore(b, player)
}

func centerFactor(b *Board, player Player) float64 {
	if b.rows%2 == 0 || b.cols%2 == 0 {
		return 1
	}
	center := Move{Row: b.rows / 2, Col: b.cols / 2}
	if slices.Contains(b.LegalMoves(player), center) {
		return 2
	}
	return 1
}

func reflectionFactor(b *Board, player Player) float64 {
	opp := b.Location(player.Opponent())
	if b.moveCount == 0 || opp == NoMove {
		return 1
	}
	mirror := Move{Row: b.rows - 1 - opp.Row, Col: b.cols - 1 - opp.Col}
	if slices.Contains(b.LegalMoves(player), mirror) {
		return 2
	}
	return 1
}

var sides = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func partitionFactor(b *Board, player Player) float64 {
	if b.moveCount == 0 {
		return 1
	}
	for _, move := range b.LegalMoves(player) {
		for _, side := range sides {
			next := Move{Row: move.Row + side[0], Col: move.Col + side[1]}
			beyond := Move{Row: move.Row + 2*side[0], Col: move.Col + 2*side[1]}
			if b.IsBlocked(next) && b.IsBlocked(beyond) {
				return 4
			}
		}
		for _, side := range sides {
			if b.IsBlocked(Move{Row: move.Row + side[0], Col: move.Col + side[1]}) {
				return 2
			}
		}
	}
	return 1
}

var evaluations = map[string]Evaluate{
	"null":                 NullScore,
	"open":                 OpenMoveScore,
	"improved":             ImprovedScore,
	"distance":             DistanceScore,
	"center":               CenterScore,
	"reflection":           ReflectionScore,
	"partition":            PartitionScore,
	"center_reflection":    CenterReflectionScore,
	"center_partition":     CenterPartitionScore,
	"reflection_partition": ReflectionPartitionScore,
	"combined":             CombinedScore,
	"combined_improved":    CombinedImprovedScore,
}

// LookupEvaluate returns the heuristic registered under name.
func LookupEvaluate(name string) (Evaluate, error) {
	evaluate, ok := evaluations[name]
	if !ok {
		return nil, fmt.Errorf("unknown heuristic %q, expected one of %v", name, EvaluateNames())
	}
	return evaluate, nil
}

// EvaluateNames lists the registered heuristics in alphabetical order.
func EvaluateNames() []string {
	names := make([]string, 0, len(evaluations))
	for name := range evaluations {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
