package board

import (
	"actor-tictactoe/impl/apperror"
	"fmt"
	"strings"
)

type TurnOrder int8

const (
	PlayerA TurnOrder = iota
	PlayerB
)

func (t TurnOrder) Mark() Cell {
	if t == PlayerB {
		return MarkB
	}
	return MarkA
}

func (t TurnOrder) Next() TurnOrder {
	if t == PlayerA {
		return PlayerB
	}
	return PlayerA
}

func (t TurnOrder) String() string {
	if t == PlayerB {
		return "playerB"
	}
	return "playerA"
}

func ParseTurnOrder(s string) (TurnOrder, error) {
	switch strings.ToLower(s) {
	case "a", "playera":
		return PlayerA, nil
	case "b", "playerb":
		return PlayerB, nil
	}
	return PlayerA, fmt.Errorf("%w: unknown player %q", apperror.ErrInvalidParameters, s)
}
