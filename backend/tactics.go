package main

// TacticalTier names the resolver step that produced a forced move.
type TacticalTier int

const (
	TierNone TacticalTier = iota
	TierWhiteWin
	TierWhiteFour
	TierBlockJumpFour
	TierBlockFour
	TierBlockOpenThree
	TierBlockJumpThree
	TierBlockBlackWin
)

func (t TacticalTier) String() string {
	switch t {
	case TierWhiteWin:
		return "white_win"
	case TierWhiteFour:
		return "white_four"
	case TierBlockJumpFour:
		return "block_jump_four"
	case TierBlockFour:
		return "block_four"
	case TierBlockOpenThree:
		return "block_open_three"
	case TierBlockJumpThree:
		return "block_jump_three"
	case TierBlockBlackWin:
		return "block_black_win"
	default:
		return "none"
	}
}

type tacticalStep struct {
	tier TacticalTier
	find func(board *Board, rules Rules) (Move, bool)
}

// tacticalSteps are tried in order; the first hit is the forced reply.
var tacticalSteps = []tacticalStep{
	{TierWhiteWin, findWhiteWin},
	{TierWhiteFour, findWhiteFour},
	{TierBlockJumpFour, findBlackJumpFour},
	{TierBlockFour, findBlackFour},
	{TierBlockOpenThree, findBlackOpenThree},
	{TierBlockJumpThree, findBlackJumpThree},
	{TierBlockBlackWin, findBlackWin},
}

// ResolveForcedMove returns White's forcing reply if one exists. Every step
// scans in row-major order so the result is deterministic for a board.
func ResolveForcedMove(board *Board, rules Rules) (Move, TacticalTier, bool) {
	for _, step := range tacticalSteps {
		if move, ok := step.find(board, rules); ok {
			return move, step.tier, true
		}
	}
	return Move{}, TierNone, false
}

func findWhiteWin(board *Board, _ Rules) (Move, bool) {
	for _, cell := range board.EmptyCells() {
		if completesFive(board, cell, CellWhite) {
			return cell, true
		}
	}
	return Move{}, false
}

func findWhiteFour(board *Board, _ Rules) (Move, bool) {
	return findRunEnd(board, CellWhite, func(run Run) bool {
		return run.Length == 4 && run.OpenEnds() > 0
	}, preferFiveEnd(board, CellWhite))
}

func findBlackJumpFour(board *Board, _ Rules) (Move, bool) {
	return findJumpGap(board, CellBlack, 4)
}

func findBlackFour(board *Board, _ Rules) (Move, bool) {
	return findRunEnd(board, CellBlack, func(run Run) bool {
		return run.Length == 4 && run.OpenEnds() > 0
	}, firstOpenEnd)
}

func findBlackOpenThree(board *Board, _ Rules) (Move, bool) {
	return findRunEnd(board, CellBlack, func(run Run) bool {
		return run.Length == 3 && run.OpenEnds() == 2
	}, firstOpenEnd)
}

func findBlackJumpThree(board *Board, _ Rules) (Move, bool) {
	return findJumpGap(board, CellBlack, 3)
}

// findBlackWin blocks a cell where Black would complete five, unless the
// placement is forbidden to Black anyway.
func findBlackWin(board *Board, rules Rules) (Move, bool) {
	for _, cell := range board.EmptyCells() {
		if completesFive(board, cell, CellBlack) && !rules.IsForbidden(board, cell) {
			return cell, true
		}
	}
	return Move{}, false
}

func completesFive(board *Board, cell Move, target Cell) bool {
	for _, dir := range Directions {
		if ScanRun(board, cell, dir, target).Length == WinLength {
			return true
		}
	}
	return false
}

// findRunEnd visits each run of target once, from its first stone, and asks
// pick for the end to play when match accepts the run.
func findRunEnd(board *Board, target Cell, match func(Run) bool, pick func(Run) (Move, bool)) (Move, bool) {
	for _, stone := range board.Cells(target) {
		for _, dir := range Directions {
			if !startsRun(board, stone, dir, target) {
				continue
			}
			run := ScanRun(board, stone, dir, target)
			if !match(run) {
				continue
			}
			if end, ok := pick(run); ok {
				return end, true
			}
		}
	}
	return Move{}, false
}

func firstOpenEnd(run Run) (Move, bool) {
	return run.OpenEnd()
}

// preferFiveEnd picks the open end that turns the run into an exact five,
// falling back to any open end.
func preferFiveEnd(board *Board, target Cell) func(Run) (Move, bool) {
	return func(run Run) (Move, bool) {
		for _, end := range []struct {
			open bool
			cell Move
		}{{run.OpenBefore, run.Before}, {run.OpenAfter, run.After}} {
			if end.open && completesFive(board, end.cell, target) {
				return end.cell, true
			}
		}
		return run.OpenEnd()
	}
}

func findJumpGap(board *Board, target Cell, length int) (Move, bool) {
	for _, stone := range board.Cells(target) {
		for _, dir := range Directions {
			if gap, ok := JumpScan(board, stone, dir, target, length); ok {
				return gap, true
			}
		}
	}
	return Move{}, false
}
