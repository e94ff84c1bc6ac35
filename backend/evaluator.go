package main

// Score is a signed heuristic value; positive favours White, the automated side.
type Score int

// patternWeights scores the mover's own shape through the probed cell.
type patternWeights struct {
	Five        Score
	OpenFour    Score
	ClosedFour  Score
	OpenThree   Score
	ClosedThree Score
	OpenTwo     Score
	JumpThree   Score
	JumpFour    Score
}

// White's bonuses outweigh Black's costs so the machine side leans aggressive.
var (
	whitePatternWeights = patternWeights{
		Five:        100000,
		OpenFour:    30000,
		ClosedFour:  15000,
		OpenThree:   8000,
		ClosedThree: 2000,
		OpenTwo:     500,
		JumpThree:   6000,
		JumpFour:    20000,
	}
	blackPatternWeights = patternWeights{
		Five:        -100000,
		OpenFour:    -25000,
		ClosedFour:  -15000,
		OpenThree:   -7000,
		ClosedThree: -1500,
		OpenTwo:     -300,
		JumpThree:   -4000,
		JumpFour:    -20000,
	}
)

// Defensive terms for the opponent's line through the probed cell. They are
// added unsigned whoever moves.
const (
	defendFour        Score = 60000
	defendOpenThree   Score = 30000
	defendClosedThree Score = 8000
	defendOpenTwo     Score = 500
	defendJumpThree   Score = 15000
	defendJumpFour    Score = 50000
)

func weightsFor(player PlayerColor) patternWeights {
	if player == PlayerWhite {
		return whitePatternWeights
	}
	return blackPatternWeights
}

// EvaluatePosition scores a hypothetical stone of player on pos. The board
// must be in its pre-move state and is left exactly as it was found.
func EvaluatePosition(board *Board, pos Move, player PlayerColor) Score {
	own := CellFromPlayer(player)
	opp := CellFromPlayer(otherPlayer(player))
	weights := weightsFor(player)
	defer board.place(pos, own)()

	var score Score
	for _, dir := range Directions {
		score += ownPatternScore(board, pos, dir, own, weights)
		score += opponentPatternScore(board, pos, dir, opp)
	}
	return score
}

func ownPatternScore(board *Board, pos Move, dir Direction, own Cell, w patternWeights) Score {
	var score Score
	run := ScanRun(board, pos, dir, own)
	open := run.OpenEnds()
	switch {
	case run.Length >= WinLength:
		score += w.Five
	case run.Length == 4 && open == 2:
		score += w.OpenFour
	case run.Length == 4 && open == 1:
		score += w.ClosedFour
	case run.Length == 3 && open == 2:
		score += w.OpenThree
	case run.Length == 3 && open == 1:
		score += w.ClosedThree
	case run.Length == 2 && open == 2:
		score += w.OpenTwo
	}
	if _, ok := JumpScan(board, pos, dir, own, 3); ok {
		score += w.JumpThree
	}
	if _, ok := JumpScan(board, pos, dir, own, 4); ok {
		score += w.JumpFour
	}
	return score
}

// opponentPatternScore measures the opponent stones on both sides of pos, i.e.
// the line the opponent would own if pos were theirs.
func opponentPatternScore(board *Board, pos Move, dir Direction, opp Cell) Score {
	var score Score
	run := ScanRun(board, pos, dir, opp)
	count := run.Length - 1
	open := run.OpenEnds()
	switch {
	case count == 4 && open >= 1:
		score += defendFour
	case count == 3 && open == 2:
		score += defendOpenThree
	case count == 3 && open == 1:
		score += defendClosedThree
	case count == 2 && open == 2:
		score += defendOpenTwo
	}
	if _, ok := JumpScan(board, pos, dir, opp, 3); ok {
		score += defendJumpThree
	}
	if _, ok := JumpScan(board, pos, dir, opp, 4); ok {
		score += defendJumpFour
	}
	return score
}
