package game

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/cespare/xxhash"
)

// Knight jumps ordered so that the destinations of any origin come out in
// row-major order (ascending row, then ascending column).
var jumps = [8][2]int{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// Board represents the state of an Isolation game at any point. Search must
// only ever use Forecast, which returns a copy; Apply mutates and is reserved
// for the match driver.
type Board struct {
	rows      int
	cols      int
	blocked   []bool  // Cells ever occupied, indexed by row*cols+col
	locations [3]Move // Current cell per player, NoMove until placed
	active    Player  // The player to move
	moveCount int
	lastMove  Move
}

// NewBoard initializes an empty board where Player1 moves first.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", rows, cols))
	}
	return &Board{
		rows:      rows,
		cols:      cols,
		blocked:   make([]bool, rows*cols),
		locations: [3]Move{NoMove, NoMove, NoMove},
		active:    Player1,
		lastMove:  NoMove,
	}
}

func (b *Board) Copy() *Board {
	blocked := make([]bool, len(b.blocked))
	copy(blocked, b.blocked)

	next := *b
	next.blocked = blocked
	return &next
}

func (b *Board) Rows() int        { return b.rows }
func (b *Board) Cols() int        { return b.cols }
func (b *Board) Active() Player   { return b.active }
func (b *Board) Inactive() Player { return b.active.Opponent() }
func (b *Board) MoveCount() int   { return b.moveCount }
func (b *Board) LastMove() Move   { return b.lastMove }

// Location returns the player's current cell, or NoMove before its first placement.
func (b *Board) Location(player Player) Move {
	if player != Player1 && player != Player2 {
		return NoMove
	}
	return b.locations[player]
}

// IsBlocked reports whether the cell has been occupied at some point. Cells
// off the board, NoMove included, count as blocked.
func (b *Board) IsBlocked(m Move) bool {
	return !b.inBounds(m) || b.blocked[b.index(m)]
}

func (b *Board) inBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.rows && m.Col >= 0 && m.Col < b.cols
}

func (b *Board) isOpen(m Move) bool {
	return b.inBounds(m) && !b.blocked[b.index(m)]
}

func (b *Board) index(m Move) int {
	return m.Row*b.cols + m.Col
}

// BlankCells returns every open cell in row-major order.
func (b *Board) BlankCells() []Move {
	cells := []Move{}
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if !b.blocked[r*b.cols+c] {
				cells = append(cells, Move{Row: r, Col: c})
			}
		}
	}
	return cells
}

// LegalMoves returns the player's legal moves in row-major order. A fresh
// slice is built on every call.
func (b *Board) LegalMoves(player Player) []Move {
	if player != Player1 && player != Player2 {
		return nil
	}
	from := b.locations[player]
	if from == NoMove {
		return b.BlankCells()
	}

	moves := make([]Move, 0, len(jumps))
	for _, jump := range jumps {
		to := Move{Row: from.Row + jump[0], Col: from.Col + jump[1]}
		if b.isOpen(to) {
			moves = append(moves, to)
		}
	}
	return moves
}

func (b *Board) hasLegalMoves(player Player) bool {
	from := b.locations[player]
	if from == NoMove {
		for _, blocked := range b.blocked {
			if !blocked {
				return true
			}
		}
		return false
	}
	for _, jump := range jumps {
		if b.isOpen(Move{Row: from.Row + jump[0], Col: from.Col + jump[1]}) {
			return true
		}
	}
	return false
}

// IsLegal reports whether the active player may play the move.
func (b *Board) IsLegal(m Move) bool {
	if !b.isOpen(m) {
		return false
	}
	from := b.locations[b.active]
	if from == NoMove {
		return true
	}
	dr, dc := abs(m.Row-from.Row), abs(m.Col-from.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// Forecast returns a new board with the move applied for the active player.
// The receiver is never modified.
func (b *Board) Forecast(m Move) (*Board, error) {
	next := b.Copy()
	if err := next.Apply(m); err != nil {
		return nil, err
	}
	return next, nil
}

// Apply plays the move for the active player in place and passes the turn.
func (b *Board) Apply(m Move) error {
	if !b.IsLegal(m) {
		return &InvalidMoveError{Player: b.active, Move: m}
	}
	b.blocked[b.index(m)] = true
	b.locations[b.active] = m
	b.lastMove = m
	b.moveCount++
	b.active = b.active.Opponent()
	return nil
}

// IsTerminal reports whether the player has no legal moves left.
func (b *Board) IsTerminal(player Player) bool {
	if player != Player1 && player != Player2 {
		return false
	}
	return !b.hasLegalMoves(player)
}

// Outcome is decided the instant the player to move has no legal moves: that
// player loses and the opponent wins.
func (b *Board) Outcome(player Player) Outcome {
	if !b.IsTerminal(b.active) {
		return Undetermined
	}
	if player == b.active {
		return Loss
	}
	return Win
}

func (b *Board) IsWinner(player Player) bool { return b.Outcome(player) == Win }
func (b *Board) IsLoser(player Player) bool  { return b.Outcome(player) == Loss }

// Utility returns +Inf for a won board, -Inf for a lost one and 0 while the
// game is undetermined.
func (b *Board) Utility(player Player) float64 {
	switch b.Outcome(player) {
	case Win:
		return math.Inf(1)
	case Loss:
		return math.Inf(-1)
	default:
		return 0
	}
}

// Hash identifies the position (cells, locations and turn).
func (b *Board) Hash() uint64 {
	buf := make([]byte, 0, 12+5*4+len(b.blocked)/8+1)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(b.rows))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(b.cols))
	buf = append(buf, byte(b.active))
	for _, p := range []Player{Player1, Player2} {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(b.locations[p].Row)))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(b.locations[p].Col)))
	}
	var bits byte
	for i, blocked := range b.blocked {
		if blocked {
			bits |= 1 << (i % 8)
		}
		if i%8 == 7 {
			buf = append(buf, bits)
			bits = 0
		}
	}
	buf = append(buf, bits)
	return xxhash.Sum64(buf)
}

// String renders the board with 1 and 2 for the players, - for blocked cells
// and . for open ones.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < b.cols; c++ {
		fmt.Fprintf(&sb, "%2d", c)
	}
	sb.WriteString("\n")
	for r := 0; r < b.rows; r++ {
		fmt.Fprintf(&sb, "%2d ", r)
		for c := 0; c < b.cols; c++ {
			m := Move{Row: r, Col: c}
			switch {
			case m == b.locations[Player1]:
				sb.WriteString(" 1")
			case m == b.locations[Player2]:
				sb.WriteString(" 2")
			case b.blocked[b.index(m)]:
				sb.WriteString(" -")
			default:
				sb.WriteString(" .")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
