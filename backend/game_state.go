package main

type PlayerColor int

const (
	PlayerBlack PlayerColor = iota
	PlayerWhite
)

func (p PlayerColor) String() string {
	if p == PlayerBlack {
		return "black"
	}
	return "white"
}

type Outcome int

const (
	OutcomeOngoing Outcome = iota
	OutcomeBlackWins
	OutcomeWhiteWins
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlackWins:
		return "black_wins"
	case OutcomeWhiteWins:
		return "white_wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "ongoing"
	}
}

func (o Outcome) Finished() bool {
	return o != OutcomeOngoing
}

// GameState is the caller-visible snapshot of a session.
type GameState struct {
	Board       *Board
	ToMove      PlayerColor
	Outcome     Outcome
	HasLastMove bool
	LastMove    Move
	WinningLine []Move
}

func NewGameState() GameState {
	state := GameState{}
	state.Reset()
	return state
}

// Reset clears the state in place, reusing the board if there is one.
func (s *GameState) Reset() {
	if s.Board == nil {
		s.Board = NewBoard()
	} else {
		s.Board.Reset()
	}
	s.ToMove = PlayerBlack
	s.Outcome = OutcomeOngoing
	s.HasLastMove = false
	s.LastMove = Move{X: -1, Y: -1}
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.WinningLine = append([]Move(nil), s.WinningLine...)
	return clone
}

func otherPlayer(player PlayerColor) PlayerColor {
	if player == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}
