package main

type Direction struct {
	DX int
	DY int
}

var (
	DirHorizontal        = Direction{DX: 1, DY: 0}
	DirVertical          = Direction{DX: 0, DY: 1}
	DirDiagonalDownRight = Direction{DX: 1, DY: 1}
	DirDiagonalDownLeft  = Direction{DX: -1, DY: 1}
)

// Directions holds the four line directions; each one also covers its reverse.
var Directions = [4]Direction{DirHorizontal, DirVertical, DirDiagonalDownRight, DirDiagonalDownLeft}

func (d Direction) Reverse() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Run is the contiguous line of same-colour stones through an origin.
type Run struct {
	Length     int
	Before     Move
	After      Move
	OpenBefore bool
	OpenAfter  bool
}

func (r Run) OpenEnds() int {
	ends := 0
	if r.OpenBefore {
		ends++
	}
	if r.OpenAfter {
		ends++
	}
	return ends
}

// OpenEnd returns the first empty end, preferring Before.
func (r Run) OpenEnd() (Move, bool) {
	if r.OpenBefore {
		return r.Before, true
	}
	if r.OpenAfter {
		return r.After, true
	}
	return Move{}, false
}

// ScanRun measures the run of target stones through origin along dir and its
// reverse. The origin always counts as a target stone, whatever the board
// holds there, so callers can probe hypothetical placements without
// mutating the board.
func ScanRun(board *Board, origin Move, dir Direction, target Cell) Run {
	length := 1
	after := origin.Step(dir, 1)
	for board.InBounds(after) && board.Get(after) == target {
		length++
		after = after.Step(dir, 1)
	}
	before := origin.Step(dir, -1)
	for board.InBounds(before) && board.Get(before) == target {
		length++
		before = before.Step(dir, -1)
	}
	return Run{
		Length:     length,
		Before:     before,
		After:      after,
		OpenBefore: board.IsEmpty(before.X, before.Y),
		OpenAfter:  board.IsEmpty(after.X, after.Y),
	}
}

// startsRun reports whether origin is the first stone of its run along dir.
func startsRun(board *Board, origin Move, dir Direction, target Cell) bool {
	prev := origin.Step(dir, -1)
	return !board.InBounds(prev) || board.Get(prev) != target
}

// RunStones lists the stones of the run through origin in dir order.
func RunStones(board *Board, origin Move, dir Direction, target Cell) []Move {
	start := origin
	for {
		prev := start.Step(dir, -1)
		if !board.InBounds(prev) || board.Get(prev) != target {
			break
		}
		start = prev
	}
	stones := []Move{start}
	for next := start.Step(dir, 1); board.InBounds(next) && board.Get(next) == target; next = next.Step(dir, 1) {
		stones = append(stones, next)
	}
	return stones
}

// JumpScan looks for a gapped pattern anchored at origin: exactly length
// target stones (origin included) with one interior empty cell, and at least
// one empty cell just outside the pattern. Both dir and its reverse are
// walked, so the result is unchanged under a 180 degree rotation of the
// board. On success the gap cell is returned.
//
// The walk covers X_XX, XX_X and the four shapes X_XXX, XX_XX, XXX_X.
func JumpScan(board *Board, origin Move, dir Direction, target Cell, length int) (Move, bool) {
	if gap, ok := jumpScanForward(board, origin, dir, target, length); ok {
		return gap, true
	}
	return jumpScanForward(board, origin, dir.Reverse(), target, length)
}

func jumpScanForward(board *Board, origin Move, dir Direction, target Cell, length int) (Move, bool) {
	stones := 1
	gapFound := false
	var gap Move
	cur := origin.Step(dir, 1)
	for board.InBounds(cur) {
		cell := board.Get(cur)
		if cell == target {
			stones++
		} else if cell == CellEmpty && !gapFound && continuesWith(board, cur.Step(dir, 1), target) {
			gapFound = true
			gap = cur
		} else {
			break
		}
		cur = cur.Step(dir, 1)
	}
	if !gapFound || stones != length {
		return Move{}, false
	}
	before := origin.Step(dir, -1)
	if board.IsEmpty(before.X, before.Y) || board.IsEmpty(cur.X, cur.Y) {
		return gap, true
	}
	return Move{}, false
}

func continuesWith(board *Board, m Move, target Cell) bool {
	return board.InBounds(m) && board.Get(m) == target
}
