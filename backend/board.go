package main

import "fmt"

// BoardSize is the fixed side length of the renju grid.
const BoardSize = 19

type Cell int

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

// Center is the default opening cell.
var Center = Move{X: BoardSize / 2, Y: BoardSize / 2}

// Board is a BoardSize x BoardSize grid indexed by (column, row).
// The zero value is an empty board. Copying a Board by value yields an
// independent snapshot.
type Board struct {
	cells [BoardSize * BoardSize]Cell
	hash  uint64
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) Reset() {
	b.cells = [BoardSize * BoardSize]Cell{}
	b.hash = 0
}

// Hash is the Zobrist key of the stones on the board.
func (b *Board) Hash() uint64 {
	return b.hash
}

func (b *Board) write(idx int, value Cell) {
	b.hash ^= zobrist.stone(idx, b.cells[idx]) ^ zobrist.stone(idx, value)
	b.cells[idx] = value
}

func (b *Board) At(x, y int) Cell {
	return b.cells[index(x, y)]
}

func (b *Board) Get(m Move) Cell {
	return b.At(m.X, m.Y)
}

func (b *Board) Set(x, y int, value Cell) {
	b.write(index(x, y), value)
}

// place puts value at m and returns the function restoring the previous
// content. Callers pair it with defer so every exit path restores the cell.
func (b *Board) place(m Move, value Cell) func() {
	idx := index(m.X, m.Y)
	prev := b.cells[idx]
	b.write(idx, value)
	return func() { b.write(idx, prev) }
}

func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < BoardSize && y < BoardSize
}

func (b *Board) InBounds(m Move) bool {
	return InBounds(m.X, m.Y)
}

func (b *Board) IsEmpty(x, y int) bool {
	return InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b *Board) AllFilled() bool {
	for _, cell := range b.cells {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}

func (b *Board) Count(value Cell) int {
	count := 0
	for _, cell := range b.cells {
		if cell == value {
			count++
		}
	}
	return count
}

// Cells lists every coordinate holding value, row by row.
func (b *Board) Cells(value Cell) []Move {
	out := []Move{}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if b.At(x, y) == value {
				out = append(out, Move{X: x, Y: y})
			}
		}
	}
	return out
}

func (b *Board) EmptyCells() []Move {
	return b.Cells(CellEmpty)
}

func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

func index(x, y int) int {
	return y*BoardSize + x
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "Black"
	case CellWhite:
		return "White"
	default:
		return "Empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func PlayerFromCell(cell Cell) (PlayerColor, error) {
	switch cell {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("empty cell has no player")
	}
}
