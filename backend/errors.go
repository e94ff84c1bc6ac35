package main

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("out of bounds")
	ErrCellOccupied  = errors.New("cell occupied")
	ErrForbiddenMove = errors.New("forbidden move")
	ErrGameOver      = errors.New("game is over")
	ErrNotYourTurn   = errors.New("not your turn")
)

type ForbiddenKind int

const (
	ForbiddenDoubleThree ForbiddenKind = iota + 1
	ForbiddenDoubleFour
	ForbiddenOverline
)

func (k ForbiddenKind) String() string {
	switch k {
	case ForbiddenDoubleThree:
		return "double_three"
	case ForbiddenDoubleFour:
		return "double_four"
	case ForbiddenOverline:
		return "overline"
	default:
		return "unknown"
	}
}

// ForbiddenMoveError rejects a Black placement under the renju restrictions.
type ForbiddenMoveError struct {
	Kind ForbiddenKind
	Move Move
}

func (e *ForbiddenMoveError) Error() string {
	return fmt.Sprintf("forbidden move %s at %s", e.Kind, e.Move)
}

func (e *ForbiddenMoveError) Is(target error) bool {
	return target == ErrForbiddenMove
}

// rejectionCode is the stable short name of a rejection, used by the API and
// metrics labels.
func rejectionCode(err error) string {
	var forbidden *ForbiddenMoveError
	switch {
	case errors.As(err, &forbidden):
		return forbidden.Kind.String()
	case errors.Is(err, ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, ErrCellOccupied):
		return "occupied"
	case errors.Is(err, ErrGameOver):
		return "game_over"
	case errors.Is(err, ErrNotYourTurn):
		return "not_your_turn"
	default:
		return "invalid"
	}
}
