package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLoneStoneIsNeutral(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, Score(0), EvaluatePosition(b, Center, PlayerWhite))
	assert.Equal(t, Score(0), EvaluatePosition(b, Center, PlayerBlack))
}

func TestEvaluateOwnOpenThreeIsAsymmetric(t *testing.T) {
	white := boardWith(nil, row(9, 7, 8))
	assert.Equal(t, whitePatternWeights.OpenThree, EvaluatePosition(white, Move{X: 9, Y: 9}, PlayerWhite))

	black := boardWith(row(9, 7, 8), nil)
	assert.Equal(t, blackPatternWeights.OpenThree, EvaluatePosition(black, Move{X: 9, Y: 9}, PlayerBlack))
	assert.Greater(t, int(whitePatternWeights.OpenThree), -int(blackPatternWeights.OpenThree))
}

func TestEvaluateFiveDominates(t *testing.T) {
	b := boardWith(nil, row(9, 5, 6, 7, 8))
	score := EvaluatePosition(b, Move{X: 9, Y: 9}, PlayerWhite)
	assert.GreaterOrEqual(t, int(score), int(whitePatternWeights.Five))
}

func TestEvaluateDefensiveTermIsPositiveForEitherMover(t *testing.T) {
	b := boardWith(row(9, 6, 7, 8), nil)
	assert.Equal(t, defendOpenThree, EvaluatePosition(b, Move{X: 9, Y: 9}, PlayerWhite))

	b = boardWith(nil, row(9, 6, 7, 8))
	assert.Equal(t, defendOpenThree, EvaluatePosition(b, Move{X: 9, Y: 9}, PlayerBlack))
}

func TestEvaluateOpponentJumpThree(t *testing.T) {
	b := boardWith(row(9, 5, 7), nil)
	// (8,9) is where Black would turn X_X into X_XX.
	score := EvaluatePosition(b, Move{X: 8, Y: 9}, PlayerWhite)
	assert.Equal(t, defendJumpThree, score)
}

func TestEvaluateRestoresBoard(t *testing.T) {
	b := boardWith(row(9, 5, 6, 7), row(10, 5, 6))
	snapshot := *b
	EvaluatePosition(b, Move{X: 8, Y: 9}, PlayerWhite)
	EvaluatePosition(b, Move{X: 4, Y: 9}, PlayerBlack)
	require.Equal(t, snapshot, *b)
}
