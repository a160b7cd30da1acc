package entity

// Player is the side whose turn it is.
type Player uint8

const (
	PlayerOne Player = iota
	PlayerTwo
)

// Mark returns the cell mark the player places on the board.
func (that Player) Mark() CellMark {
	if that == PlayerTwo {
		return PlayerTwoMark
	}
	return PlayerOneMark
}

// Opponent returns the other player.
func (that Player) Opponent() Player {
	if that == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func (that Player) String() string {
	if that == PlayerTwo {
		return "player 2"
	}
	return "player 1"
}
