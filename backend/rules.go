package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// WinLength is the exact run length that wins; longer runs do not.
const WinLength = 5

type Rules struct{}

func NewRules() Rules {
	return Rules{}
}

// CheckMove validates a placement for player without mutating the board.
func (r Rules) CheckMove(board *Board, move Move, player PlayerColor) error {
	if !move.IsValid() {
		return fmt.Errorf("%s: %w", move, ErrOutOfBounds)
	}
	if board.Get(move) != CellEmpty {
		return fmt.Errorf("%s: %w", move, ErrCellOccupied)
	}
	if player != PlayerBlack {
		return nil
	}
	if kind, forbidden := r.ForbiddenKind(board, move); forbidden {
		return &ForbiddenMoveError{Kind: kind, Move: move}
	}
	return nil
}

// IsWin reports whether the stone at lastMove sits in a run of exactly five.
func (r Rules) IsWin(board *Board, lastMove Move) bool {
	_, ok := r.WinningLine(board, lastMove)
	return ok
}

// WinningLine returns the five stones through lastMove, if any.
func (r Rules) WinningLine(board *Board, lastMove Move) ([]Move, bool) {
	if !lastMove.IsValid() {
		return nil, false
	}
	cell := board.Get(lastMove)
	if cell == CellEmpty {
		return nil, false
	}
	for _, dir := range Directions {
		if ScanRun(board, lastMove, dir, cell).Length == WinLength {
			return RunStones(board, lastMove, dir, cell), true
		}
	}
	return nil, false
}

func (r Rules) IsDraw(board *Board) bool {
	return board.AllFilled()
}

// Outcome classifies the position right after a stone landed on lastMove.
func (r Rules) Outcome(board *Board, lastMove Move) Outcome {
	if r.IsWin(board, lastMove) {
		if board.Get(lastMove) == CellBlack {
			return OutcomeBlackWins
		}
		return OutcomeWhiteWins
	}
	if r.IsDraw(board) {
		return OutcomeDraw
	}
	return OutcomeOngoing
}

func (r Rules) IsForbidden(board *Board, move Move) bool {
	_, forbidden := r.ForbiddenKind(board, move)
	return forbidden
}

// ForbiddenKind evaluates the renju restrictions for a Black stone on move.
// The stone is placed transiently and the cell is restored before return.
func (r Rules) ForbiddenKind(board *Board, move Move) (ForbiddenKind, bool) {
	if !board.IsEmpty(move.X, move.Y) {
		return 0, false
	}
	defer board.place(move, CellBlack)()

	openThrees := 0
	fours := 0
	overline := false
	for _, dir := range Directions {
		run := ScanRun(board, move, dir, CellBlack)
		switch {
		case run.Length == 3 && run.OpenEnds() == 2:
			openThrees++
		case run.Length == 4 && run.OpenEnds() > 0:
			fours++
		case run.Length > WinLength:
			overline = true
		}
	}
	switch {
	case openThrees >= 2:
		if e := log.Debug(); e.Enabled() {
			e.Stringer("move", move).Interface("threes", r.openThreeLines(board, move)).Msg("double three rejected")
		}
		return ForbiddenDoubleThree, true
	case fours >= 2:
		return ForbiddenDoubleFour, true
	case overline:
		return ForbiddenOverline, true
	}
	return 0, false
}

// CountOpenThree reports whether a Black stone on move forms an open three
// along dir: a run of exactly three with both ends empty.
func (r Rules) CountOpenThree(board *Board, move Move, dir Direction) bool {
	run := ScanRun(board, move, dir, CellBlack)
	return run.Length == 3 && run.OpenEnds() == 2
}

// CountOpenFour reports a run of exactly four with at least one empty end.
func (r Rules) CountOpenFour(board *Board, move Move, dir Direction) bool {
	run := ScanRun(board, move, dir, CellBlack)
	return run.Length == 4 && run.OpenEnds() > 0
}

func (r Rules) openThreeLines(board *Board, move Move) [][]Move {
	lines := [][]Move{}
	for _, dir := range Directions {
		if r.CountOpenThree(board, move, dir) {
			lines = append(lines, RunStones(board, move, dir, CellBlack))
		}
	}
	return lines
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d, renju=black}", BoardSize, WinLength)
}
