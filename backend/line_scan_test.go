package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(black, white []Move) *Board {
	b := NewBoard()
	for _, m := range black {
		b.Set(m.X, m.Y, CellBlack)
	}
	for _, m := range white {
		b.Set(m.X, m.Y, CellWhite)
	}
	return b
}

func rotate(m Move) Move {
	return Move{X: BoardSize - 1 - m.X, Y: BoardSize - 1 - m.Y}
}

func rotateAll(moves []Move) []Move {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = rotate(m)
	}
	return out
}

func TestScanRunCountsOriginAsTarget(t *testing.T) {
	b := boardWith([]Move{{3, 5}, {4, 5}}, nil)
	run := ScanRun(b, Move{X: 5, Y: 5}, DirHorizontal, CellBlack)
	assert.Equal(t, 3, run.Length)
	assert.Equal(t, Move{X: 2, Y: 5}, run.Before)
	assert.Equal(t, Move{X: 6, Y: 5}, run.After)
	assert.Equal(t, 2, run.OpenEnds())
	assert.Equal(t, CellEmpty, b.At(5, 5))
}

func TestScanRunBlockedAndEdgeEnds(t *testing.T) {
	b := boardWith([]Move{{3, 5}, {4, 5}}, []Move{{2, 5}})
	run := ScanRun(b, Move{X: 5, Y: 5}, DirHorizontal, CellBlack)
	assert.False(t, run.OpenBefore)
	assert.True(t, run.OpenAfter)
	end, ok := run.OpenEnd()
	require.True(t, ok)
	assert.Equal(t, Move{X: 6, Y: 5}, end)

	b = boardWith([]Move{{1, 0}}, nil)
	run = ScanRun(b, Move{X: 0, Y: 0}, DirHorizontal, CellBlack)
	assert.Equal(t, 2, run.Length)
	assert.False(t, run.OpenBefore)
	assert.True(t, run.OpenAfter)
}

func TestScanRunDiagonals(t *testing.T) {
	b := boardWith([]Move{{4, 4}, {6, 6}, {8, 2}, {6, 4}}, nil)
	assert.Equal(t, 3, ScanRun(b, Move{X: 5, Y: 5}, DirDiagonalDownRight, CellBlack).Length)
	assert.Equal(t, 3, ScanRun(b, Move{X: 7, Y: 3}, DirDiagonalDownLeft, CellBlack).Length)
	assert.Equal(t, 3, ScanRun(b, Move{X: 7, Y: 3}, DirDiagonalDownLeft.Reverse(), CellBlack).Length)
}

func TestRunStonesInDirectionOrder(t *testing.T) {
	b := boardWith([]Move{{2, 9}, {3, 9}, {4, 9}}, nil)
	assert.Equal(t, []Move{{2, 9}, {3, 9}, {4, 9}}, RunStones(b, Move{X: 3, Y: 9}, DirHorizontal, CellBlack))
}

func TestJumpScanShapes(t *testing.T) {
	tests := []struct {
		name   string
		stones []Move
		length int
		gap    Move
		ok     bool
	}{
		{"X_XX", []Move{{2, 9}, {4, 9}, {5, 9}}, 3, Move{X: 3, Y: 9}, true},
		{"XX_X", []Move{{2, 9}, {3, 9}, {5, 9}}, 3, Move{X: 4, Y: 9}, true},
		{"X_XXX", []Move{{2, 9}, {4, 9}, {5, 9}, {6, 9}}, 4, Move{X: 3, Y: 9}, true},
		{"XX_XX", []Move{{2, 9}, {3, 9}, {5, 9}, {6, 9}}, 4, Move{X: 4, Y: 9}, true},
		{"XXX_X", []Move{{2, 9}, {3, 9}, {4, 9}, {6, 9}}, 4, Move{X: 5, Y: 9}, true},
		{"contiguous", []Move{{2, 9}, {3, 9}, {4, 9}}, 3, Move{}, false},
		{"X_XXX is not a jump three", []Move{{2, 9}, {4, 9}, {5, 9}, {6, 9}}, 3, Move{}, false},
		{"two gaps", []Move{{2, 9}, {4, 9}, {6, 9}}, 3, Move{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.stones, nil)
			gap, ok := JumpScan(b, tt.stones[0], DirHorizontal, CellBlack, tt.length)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.gap, gap)
			}
		})
	}
}

func TestJumpScanNeedsAnOpenOutside(t *testing.T) {
	b := boardWith([]Move{{2, 9}, {4, 9}, {5, 9}}, []Move{{1, 9}, {6, 9}})
	_, ok := JumpScan(b, Move{X: 2, Y: 9}, DirHorizontal, CellBlack, 3)
	assert.False(t, ok)
}

func TestJumpScanIsRotationSymmetric(t *testing.T) {
	shapes := [][]Move{
		{{2, 9}, {4, 9}, {5, 9}},
		{{2, 9}, {4, 9}, {5, 9}, {6, 9}},
		{{2, 9}, {3, 9}, {4, 9}, {6, 9}},
		{{3, 3}, {5, 5}, {6, 6}},
		{{10, 2}, {8, 4}, {7, 5}, {6, 6}},
	}
	for _, stones := range shapes {
		for _, length := range []int{3, 4} {
			for _, dir := range Directions {
				b := boardWith(stones, nil)
				rb := boardWith(rotateAll(stones), nil)
				gap, ok := JumpScan(b, stones[0], dir, CellBlack, length)
				rgap, rok := JumpScan(rb, rotate(stones[0]), dir, CellBlack, length)
				require.Equal(t, ok, rok, "stones %v length %d dir %v", stones, length, dir)
				if ok {
					assert.Equal(t, rotate(gap), rgap)
				}
			}
		}
	}
}
