package main

import "sync"

type GameController struct {
	mu   sync.Mutex
	game *Game
}

func NewGameController(game *Game) *GameController {
	return &GameController{game: game}
}

func (gc *GameController) ApplyHumanMove(move Move) (Outcome, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.ApplyHumanMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) GameID() string {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.ID()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) CurrentTurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History().Last()
}

func (gc *GameController) AiThinking() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.AiThinking()
}

func (gc *GameController) StartGame() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset()
}

// Snapshot returns the state, history and game id under one lock.
func (gc *GameController) Snapshot() (GameState, MoveHistory, string, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State(), gc.game.History(), gc.game.ID(), gc.game.AiThinking()
}
