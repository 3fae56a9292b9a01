package game

import "fmt"

// Player identifies one of the two pieces on the board.
type Player int

const (
	NoPlayer Player = iota
	Player1         // Moves first
	Player2
)

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// Move is the (row, column) cell a player jumps to.
type Move struct {
	Row int
	Col int
}

// NoMove is returned when a player has no legal move to make.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.Row, m.Col)
}

// Outcome of a board from one player's point of view.
type Outcome int

const (
	Undetermined Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "undetermined"
	}
}

// InvalidMoveError is returned when a move outside of the legal moves is played.
type InvalidMoveError struct {
	Player Player
	Move   Move
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("invalid move %v for %v", e.Move, e.Player)
}

// Evaluates the board to a score indicating how favorable the position is to
// the given player; higher is better. Must be finite for non-terminal boards.
type Evaluate func(b *Board, player Player) float64

// Opponent returns the other player.
func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}
