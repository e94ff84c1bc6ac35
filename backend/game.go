package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Game is one session: the human plays Black, the engine plays White.
// Game is not safe for concurrent use; GameController serialises access.
type Game struct {
	id        string
	rules     Rules
	state     GameState
	history   MoveHistory
	ai        *AIPlayer
	aiDelay   time.Duration
	turnStart time.Time
	now       func() time.Time
}

func NewGame(ai *AIPlayer, aiDelay time.Duration) *Game {
	g := &Game{
		rules:   NewRules(),
		ai:      ai,
		aiDelay: aiDelay,
		now:     time.Now,
	}
	g.Reset()
	return g
}

func (g *Game) Reset() {
	g.id = uuid.NewString()
	g.state.Reset()
	g.history.Clear()
	g.turnStart = g.now()
	gamesStartedTotal.Inc()
	log.Info().Str("game", g.id).Msg("game started, human is black")
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) Outcome() Outcome {
	return g.state.Outcome
}

func (g *Game) TurnStartedAtMs() int64 {
	return g.turnStart.UnixMilli()
}

// ApplyHumanMove plays a Black stone for the human side.
func (g *Game) ApplyHumanMove(move Move) (Outcome, error) {
	return g.applyMove(move, PlayerBlack, "")
}

// ComputeAutomatedMove selects White's reply without applying it.
func (g *Game) ComputeAutomatedMove() (SearchResult, error) {
	if g.state.Outcome.Finished() {
		return SearchResult{}, ErrGameOver
	}
	if g.state.ToMove != PlayerWhite {
		return SearchResult{}, ErrNotYourTurn
	}
	result, ok := g.ai.ChooseMove(g.state)
	if !ok {
		return SearchResult{}, ErrGameOver
	}
	return result, nil
}

// ApplyAutomatedMove plays White's stone through the same path as a human
// move.
func (g *Game) ApplyAutomatedMove(move Move, source MoveSource) (Outcome, error) {
	return g.applyMove(move, PlayerWhite, source)
}

func (g *Game) applyMove(move Move, player PlayerColor, source MoveSource) (Outcome, error) {
	if g.state.Outcome.Finished() {
		return g.state.Outcome, g.reject(move, ErrGameOver)
	}
	if g.state.ToMove != player {
		return g.state.Outcome, g.reject(move, ErrNotYourTurn)
	}
	if err := g.rules.CheckMove(g.state.Board, move, player); err != nil {
		return g.state.Outcome, g.reject(move, err)
	}

	elapsed := g.now().Sub(g.turnStart)
	g.state.Board.Set(move.X, move.Y, CellFromPlayer(player))
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.history.Push(HistoryEntry{
		Move:      move,
		Player:    player,
		ElapsedMs: float64(elapsed.Milliseconds()),
		IsAi:      source != "",
		Source:    source,
	})
	log.Debug().
		Str("game", g.id).
		Stringer("player", player).
		Stringer("move", move).
		Dur("elapsed", elapsed).
		Msg("move played")

	g.state.Outcome = g.rules.Outcome(g.state.Board, move)
	if g.state.Outcome.Finished() {
		if line, ok := g.rules.WinningLine(g.state.Board, move); ok {
			g.state.WinningLine = line
		}
		gamesFinishedTotal.WithLabelValues(g.state.Outcome.String()).Inc()
		log.Info().Str("game", g.id).Stringer("outcome", g.state.Outcome).Int("moves", g.history.Size()).Msg("game finished")
		return g.state.Outcome, nil
	}
	g.state.ToMove = otherPlayer(player)
	g.turnStart = g.now()
	return g.state.Outcome, nil
}

func (g *Game) reject(move Move, err error) error {
	movesRejectedTotal.WithLabelValues(rejectionCode(err)).Inc()
	log.Debug().Str("game", g.id).Stringer("move", move).Err(err).Msg("move rejected")
	return fmt.Errorf("move %s rejected: %w", move, err)
}

// Tick drives the engine side from the controller loop. It starts a
// background search once White has waited aiDelay and applies the result
// when ready. It reports whether a move was applied.
func (g *Game) Tick() bool {
	if g.state.Outcome.Finished() || g.state.ToMove != PlayerWhite {
		return false
	}
	if g.ai.HasMoveReady() {
		pending := g.ai.TakeMove()
		if pending.GameID != g.id || !pending.OK {
			return false
		}
		if _, err := g.ApplyAutomatedMove(pending.Result.Move, pending.Result.Source); err != nil {
			log.Warn().Err(err).Str("game", g.id).Msg("discarding engine move")
			return false
		}
		return true
	}
	if !g.ai.IsThinking() && g.now().Sub(g.turnStart) >= g.aiDelay {
		g.ai.StartThinking(g.id, g.state)
	}
	return false
}

func (g *Game) AiThinking() bool {
	return g.ai.IsThinking()
}
