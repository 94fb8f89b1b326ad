package board

import (
	"actor-tictactoe/impl/apperror"
	"fmt"
	"strings"
)

const Size = 9

type Cell int8

const (
	Empty Cell = iota
	MarkA
	MarkB
)

func (c Cell) String() string {
	switch c {
	case MarkA:
		return "X"
	case MarkB:
		return "O"
	default:
		return " "
	}
}

// Board is the 3x3 grid stored row by row. It is a value type: Write returns a
// new board and never touches the receiver.
type Board [Size]Cell

func (b Board) EmptyPositions() []int {
	positions := make([]int, 0, Size)
	for i, cell := range b {
		if cell == Empty {
			positions = append(positions, i)
		}
	}
	return positions
}

func (b Board) HasEmpty() bool {
	for _, cell := range b {
		if cell == Empty {
			return true
		}
	}
	return false
}

func (b Board) Occupied() int {
	occupied := 0
	for _, cell := range b {
		if cell != Empty {
			occupied++
		}
	}
	return occupied
}

// Write places mark at index. A cell is written at most once.
func (b Board) Write(index int, mark Cell) (Board, error) {
	if index < 0 || index >= Size {
		return b, fmt.Errorf("%w: index %d is outside of the board", apperror.ErrInvalidCell, index)
	}
	if mark == Empty {
		return b, fmt.Errorf("%w: cannot write an empty mark", apperror.ErrInvalidCell)
	}
	if b[index] != Empty {
		return b, fmt.Errorf("%w: cell %d holds %s", apperror.ErrDuplicateWrite, index, b[index])
	}
	b[index] = mark
	return b, nil
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("\n-+-+-\n")
		}
		for col := 0; col < 3; col++ {
			if col > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(b[row*3+col].String())
		}
	}
	return sb.String()
}
