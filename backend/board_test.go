package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, BoardSize*BoardSize, b.Count(CellEmpty))
	assert.False(t, b.AllFilled())
	assert.True(t, b.IsEmpty(Center.X, Center.Y))
	assert.Zero(t, b.Hash())
}

func TestBoardBounds(t *testing.T) {
	b := NewBoard()
	assert.True(t, b.InBounds(Move{X: 0, Y: 0}))
	assert.True(t, b.InBounds(Move{X: BoardSize - 1, Y: BoardSize - 1}))
	assert.False(t, b.InBounds(Move{X: -1, Y: 0}))
	assert.False(t, b.InBounds(Move{X: 0, Y: BoardSize}))
	assert.False(t, b.IsEmpty(BoardSize, 3), "out of bounds is never empty")
}

func TestBoardSetGetClear(t *testing.T) {
	b := NewBoard()
	b.Set(3, 4, CellBlack)
	assert.Equal(t, CellBlack, b.At(3, 4))
	assert.Equal(t, CellBlack, b.Get(Move{X: 3, Y: 4}))
	assert.Equal(t, CellEmpty, b.At(4, 3), "coordinates are (column, row)")
	assert.Equal(t, []Move{{X: 3, Y: 4}}, b.Cells(CellBlack))

	b.Set(3, 4, CellEmpty)
	assert.Equal(t, CellEmpty, b.At(3, 4))
	assert.Zero(t, b.Hash())
}

func TestBoardPlaceRestoresExactly(t *testing.T) {
	b := NewBoard()
	b.Set(9, 9, CellBlack)
	b.Set(10, 9, CellWhite)
	snapshot := *b

	restore := b.place(Move{X: 11, Y: 9}, CellBlack)
	assert.Equal(t, CellBlack, b.At(11, 9))
	assert.NotEqual(t, snapshot.Hash(), b.Hash())
	restore()
	require.Equal(t, snapshot, *b)

	restore = b.place(Move{X: 10, Y: 9}, CellBlack)
	restore()
	require.Equal(t, snapshot, *b)
}

func TestBoardAllFilled(t *testing.T) {
	b := NewBoard()
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.Set(x, y, CellWhite)
		}
	}
	assert.True(t, b.AllFilled())
	assert.Empty(t, b.EmptyCells())
	b.Set(18, 18, CellEmpty)
	assert.False(t, b.AllFilled())
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Set(1, 1, CellBlack)
	clone := b.Clone()
	clone.Set(2, 2, CellWhite)
	assert.Equal(t, CellEmpty, b.At(2, 2))
	assert.Equal(t, CellBlack, clone.At(1, 1))
	assert.NotEqual(t, b.Hash(), clone.Hash())
}
