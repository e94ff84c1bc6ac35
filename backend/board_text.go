package main

import (
	"fmt"
	"strings"
)

// String renders the board as BoardSize rows of '.', 'X' (Black) and 'O'
// (White), row 0 first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * (BoardSize + 1))
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			sb.WriteByte(cellGlyph(b.At(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads the String format back. Blank lines and spaces are
// ignored; every remaining row must hold exactly BoardSize glyphs.
func ParseBoard(text string) (*Board, error) {
	board := NewBoard()
	y := 0
	for lineNo, line := range strings.Split(text, "\n") {
		row := strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if row == "" {
			continue
		}
		if y >= BoardSize {
			return nil, fmt.Errorf("line %d: more than %d rows", lineNo+1, BoardSize)
		}
		if len(row) != BoardSize {
			return nil, fmt.Errorf("line %d: want %d cells, got %d", lineNo+1, BoardSize, len(row))
		}
		for x := 0; x < BoardSize; x++ {
			cell, ok := glyphCell(row[x])
			if !ok {
				return nil, fmt.Errorf("line %d: unknown cell %q", lineNo+1, row[x])
			}
			board.Set(x, y, cell)
		}
		y++
	}
	if y != BoardSize {
		return nil, fmt.Errorf("want %d rows, got %d", BoardSize, y)
	}
	return board, nil
}

func cellGlyph(cell Cell) byte {
	switch cell {
	case CellBlack:
		return 'X'
	case CellWhite:
		return 'O'
	default:
		return '.'
	}
}

func glyphCell(glyph byte) (Cell, bool) {
	switch glyph {
	case '.':
		return CellEmpty, true
	case 'X', 'x':
		return CellBlack, true
	case 'O', 'o':
		return CellWhite, true
	default:
		return CellEmpty, false
	}
}

// ParseMove reads "x,y".
func ParseMove(text string) (Move, error) {
	var m Move
	if _, err := fmt.Sscanf(strings.TrimSpace(text), "%d,%d", &m.X, &m.Y); err != nil {
		return Move{}, fmt.Errorf("parsing move %q: %w", text, err)
	}
	if !m.IsValid() {
		return Move{}, fmt.Errorf("move %s: %w", m, ErrOutOfBounds)
	}
	return m, nil
}
