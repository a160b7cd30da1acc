package entity

import "fmt"

// CellMark is the content of a single board cell.
type CellMark uint8

const (
	Empty CellMark = iota
	PlayerOneMark
	PlayerTwoMark
)

const (
	BoardSide = 3
	CellCount = BoardSide * BoardSide

	// NoSelection is the cell index reported when the pointer is not over the board.
	NoSelection = -1
)

// Board is the 3x3 grid stored row-major: index = row*3 + col.
type Board [CellCount]CellMark

// Status is the state of the current game.
type Status uint8

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDraw
)

// ResultKind tells the caller what a placement attempt did.
type ResultKind uint8

const (
	ResultNoOp ResultKind = iota
	ResultRejected
	ResultContinue
	ResultWin
	ResultDraw
)

func (that ResultKind) String() string {
	switch that {
	case ResultNoOp:
		return "noop"
	case ResultRejected:
		return "rejected"
	case ResultContinue:
		return "continue"
	case ResultWin:
		return "win"
	case ResultDraw:
		return "draw"
	default:
		return fmt.Sprintf("result(%d)", uint8(that))
	}
}

// PlacementResult is the outcome of GameState.TryPlace. Winner is only meaningful for ResultWin.
type PlacementResult struct {
	Kind   ResultKind
	Winner Player
}

// IsTerminal reports whether the placement ended the game.
func (that PlacementResult) IsTerminal() bool {
	return that.Kind == ResultWin || that.Kind == ResultDraw
}

// winningPartners lists, for every cell, the partner pairs that complete a line through it.
// Corners sit on 3 lines, edge midpoints on 2 and the centre on 4.
var winningPartners = [CellCount][][2]int{
	0: {{1, 2}, {4, 8}, {3, 6}},
	1: {{0, 2}, {4, 7}},
	2: {{1, 0}, {4, 6}, {5, 8}},
	3: {{0, 6}, {4, 5}},
	4: {{0, 8}, {1, 7}, {2, 6}, {3, 5}},
	5: {{8, 2}, {3, 4}},
	6: {{0, 3}, {4, 2}, {7, 8}},
	7: {{1, 4}, {6, 8}},
	8: {{2, 5}, {4, 0}, {6, 7}},
}

// GameState owns the board of a single hot-seat game.
//
// Invariants: emptyCells always equals the number of Empty cells on the board,
// and the turn only alternates after a placement that does not end the game.
type GameState struct {
	board      Board
	turn       Player
	emptyCells int
	status     Status
	winner     Player
}

// NewGameState returns a game with an empty board and player one to move.
func NewGameState() *GameState {
	state := &GameState{}
	state.Reset()

	return state
}

// Reset - clears the board and gives the first move back to player one.
func (that *GameState) Reset() {
	that.board = Board{}
	that.turn = PlayerOne
	that.emptyCells = CellCount
	that.status = StatusInProgress
	that.winner = PlayerOne
}

// TryPlace - places the current player's mark on the cell.
//
// NoSelection and out-of-range indices are a no-op. Occupied cells and any
// placement after the game has ended are rejected without touching the state.
func (that *GameState) TryPlace(cell int) PlacementResult {
	if cell < 0 || cell >= CellCount {
		return PlacementResult{Kind: ResultNoOp}
	}

	if that.status != StatusInProgress || that.board[cell] != Empty {
		return PlacementResult{Kind: ResultRejected}
	}

	mark := that.turn.Mark()
	that.board[cell] = mark
	that.emptyCells--

	if that.HasWinAt(cell, mark) {
		that.status = StatusWon
		that.winner = that.turn

		return PlacementResult{Kind: ResultWin, Winner: that.turn}
	}

	if that.emptyCells == 0 {
		that.status = StatusDraw

		return PlacementResult{Kind: ResultDraw}
	}

	that.turn = that.turn.Opponent()

	return PlacementResult{Kind: ResultContinue}
}

// HasWinAt reports whether mark completes a line through cell.
// Only the lines passing through cell are checked.
func (that *GameState) HasWinAt(cell int, mark CellMark) bool {
	if cell < 0 || cell >= CellCount || mark == Empty {
		return false
	}

	for _, pair := range winningPartners[cell] {
		if that.board[pair[0]] == mark && that.board[pair[1]] == mark {
			return true
		}
	}

	return false
}

func (that *GameState) Board() Board {
	return that.board
}

func (that *GameState) CurrentTurn() Player {
	return that.turn
}

func (that *GameState) EmptyCellsRemaining() int {
	return that.emptyCells
}

func (that *GameState) Status() Status {
	return that.status
}

// Winner returns the winning player and true once the game is won.
func (that *GameState) Winner() (Player, bool) {
	return that.winner, that.status == StatusWon
}

func (that *GameState) IsFinished() bool {
	return that.status != StatusInProgress
}
