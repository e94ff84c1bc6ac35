package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func row(y int, xs ...int) []Move {
	out := make([]Move, len(xs))
	for i, x := range xs {
		out[i] = Move{X: x, Y: y}
	}
	return out
}

func column(x int, ys ...int) []Move {
	out := make([]Move, len(ys))
	for i, y := range ys {
		out[i] = Move{X: x, Y: y}
	}
	return out
}

func concat(groups ...[]Move) []Move {
	var out []Move
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestForbiddenNeverOnEmptyBoard(t *testing.T) {
	rules := NewRules()
	b := NewBoard()
	for _, m := range b.EmptyCells() {
		require.False(t, rules.IsForbidden(b, m), "move %s", m)
	}
	require.NoError(t, rules.CheckMove(b, Center, PlayerBlack))
}

func TestCountOpenThreeFillsGap(t *testing.T) {
	rules := NewRules()
	b := boardWith(column(5, 5, 7), nil)
	snapshot := *b

	assert.True(t, rules.CountOpenThree(b, Move{X: 5, Y: 6}, DirVertical))
	assert.False(t, rules.CountOpenThree(b, Move{X: 5, Y: 6}, DirHorizontal))
	require.Equal(t, snapshot, *b)
}

func TestCheckMoveRejections(t *testing.T) {
	rules := NewRules()
	b := boardWith([]Move{Center}, nil)

	err := rules.CheckMove(b, Move{X: -1, Y: 3}, PlayerBlack)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	err = rules.CheckMove(b, Center, PlayerWhite)
	assert.ErrorIs(t, err, ErrCellOccupied)
}

func TestDoubleThreeForbiddenForBlackOnly(t *testing.T) {
	rules := NewRules()
	b := boardWith(concat(column(5, 5, 7), row(6, 4, 6)), nil)
	snapshot := *b
	move := Move{X: 5, Y: 6}

	err := rules.CheckMove(b, move, PlayerBlack)
	require.ErrorIs(t, err, ErrForbiddenMove)
	var forbidden *ForbiddenMoveError
	require.True(t, errors.As(err, &forbidden))
	assert.Equal(t, ForbiddenDoubleThree, forbidden.Kind)
	assert.Equal(t, move, forbidden.Move)
	assert.Equal(t, "double_three", rejectionCode(err))

	assert.NoError(t, rules.CheckMove(b, move, PlayerWhite))
	require.Equal(t, snapshot, *b)
}

func TestClosedThreeDoesNotCountTowardsDoubleThree(t *testing.T) {
	rules := NewRules()
	b := boardWith(concat(column(5, 5, 7), row(6, 4, 6)), []Move{{X: 3, Y: 6}})
	assert.False(t, rules.IsForbidden(b, Move{X: 5, Y: 6}))
}

func TestSingleOpenFourIsLegal(t *testing.T) {
	rules := NewRules()
	b := boardWith(row(9, 5, 6, 7), nil)
	assert.NoError(t, rules.CheckMove(b, Move{X: 8, Y: 9}, PlayerBlack))

	b = boardWith(row(9, 5, 6, 7, 8), nil)
	assert.NoError(t, rules.CheckMove(b, Move{X: 9, Y: 9}, PlayerBlack), "exact five is not a four")
}

func TestDoubleFourForbidden(t *testing.T) {
	rules := NewRules()
	b := boardWith(concat(row(9, 5, 6, 7), column(8, 6, 7, 8)), nil)
	kind, forbidden := rules.ForbiddenKind(b, Move{X: 8, Y: 9})
	require.True(t, forbidden)
	assert.Equal(t, ForbiddenDoubleFour, kind)
	assert.Equal(t, CellEmpty, b.At(8, 9))
}

func TestWinAndOverline(t *testing.T) {
	rules := NewRules()
	b := boardWith(column(2, 2, 3, 4, 5, 6), nil)
	assert.True(t, rules.IsWin(b, Move{X: 2, Y: 4}))
	assert.Equal(t, OutcomeBlackWins, rules.Outcome(b, Move{X: 2, Y: 4}))
	line, ok := rules.WinningLine(b, Move{X: 2, Y: 4})
	require.True(t, ok)
	assert.Equal(t, column(2, 2, 3, 4, 5, 6), line)

	kind, forbidden := rules.ForbiddenKind(b, Move{X: 2, Y: 7})
	require.True(t, forbidden)
	assert.Equal(t, ForbiddenOverline, kind)

	b.Set(2, 7, CellBlack)
	assert.False(t, rules.IsWin(b, Move{X: 2, Y: 4}), "six in a row is not a win")
	assert.Equal(t, OutcomeOngoing, rules.Outcome(b, Move{X: 2, Y: 7}))
}

func TestWhiteOverlineIsLegalButNotAWin(t *testing.T) {
	rules := NewRules()
	b := boardWith(nil, column(2, 2, 3, 4, 5, 6))
	require.NoError(t, rules.CheckMove(b, Move{X: 2, Y: 7}, PlayerWhite))
	b.Set(2, 7, CellWhite)
	assert.False(t, rules.IsWin(b, Move{X: 2, Y: 7}))

	b = boardWith(nil, column(2, 2, 3, 4, 5, 6))
	assert.Equal(t, OutcomeWhiteWins, rules.Outcome(b, Move{X: 2, Y: 6}))
}

func TestDrawOnlyWhenFull(t *testing.T) {
	rules := NewRules()
	b := NewBoard()
	assert.False(t, rules.IsDraw(b))
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.Set(x, y, CellWhite)
		}
	}
	assert.True(t, rules.IsDraw(b))
}

func TestForbiddenKindIsRotationSymmetric(t *testing.T) {
	rules := NewRules()
	positions := []struct {
		black []Move
		white []Move
		move  Move
	}{
		{concat(column(5, 5, 7), row(6, 4, 6)), nil, Move{X: 5, Y: 6}},
		{concat(row(9, 5, 6, 7), column(8, 6, 7, 8)), nil, Move{X: 8, Y: 9}},
		{column(2, 2, 3, 4, 5, 6), nil, Move{X: 2, Y: 7}},
		{concat(column(5, 5, 7), row(6, 4, 6)), []Move{{X: 3, Y: 6}}, Move{X: 5, Y: 6}},
		{[]Move{{3, 3}, {4, 4}, {7, 3}, {6, 4}}, nil, Move{X: 5, Y: 5}},
	}
	for _, p := range positions {
		b := boardWith(p.black, p.white)
		rb := boardWith(rotateAll(p.black), rotateAll(p.white))
		kind, forbidden := rules.ForbiddenKind(b, p.move)
		rkind, rforbidden := rules.ForbiddenKind(rb, rotate(p.move))
		assert.Equal(t, forbidden, rforbidden, "move %s", p.move)
		assert.Equal(t, kind, rkind, "move %s", p.move)
	}
}

func TestRuleQueriesLeaveBoardUntouched(t *testing.T) {
	rules := NewRules()
	b := boardWith(concat(column(5, 5, 7), row(6, 4, 6)), row(12, 3, 4, 5))
	snapshot := *b
	for _, m := range b.EmptyCells() {
		rules.IsForbidden(b, m)
		EvaluatePosition(b, m, PlayerWhite)
		EvaluatePosition(b, m, PlayerBlack)
	}
	require.Equal(t, snapshot, *b)
}
