package main

import (
	"sync"
	"sync/atomic"
)

// AIPlayer runs the searcher for the White side. Searches never touch the
// live board: each one works on its own clone of the game state.
type AIPlayer struct {
	searchMu   sync.Mutex
	searcher   *Searcher
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	readyMove  PendingMove
}

// PendingMove is a finished background search tagged with the game it was
// computed for.
type PendingMove struct {
	GameID string
	Result SearchResult
	OK     bool
}

func NewAIPlayer(searcher *Searcher) *AIPlayer {
	return &AIPlayer{searcher: searcher}
}

// ChooseMove searches synchronously on a copy of state.
func (a *AIPlayer) ChooseMove(state GameState) (SearchResult, bool) {
	a.searchMu.Lock()
	defer a.searchMu.Unlock()
	board := state.Board.Clone()
	result, ok := a.searcher.ComputeMove(board, state.LastMove, state.HasLastMove)
	if ok {
		observeSearch(result)
	}
	return result, ok
}

// StartThinking launches a background search unless one is already running.
func (a *AIPlayer) StartThinking(gameID string, state GameState) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)

	stateCopy := state.Clone()
	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		result, ok := a.ChooseMove(stateCopy)
		a.moveMutex.Lock()
		a.readyMove = PendingMove{GameID: gameID, Result: result, OK: ok}
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() PendingMove {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove
}

// Wait blocks until the current background search, if any, has finished.
func (a *AIPlayer) Wait() {
	if done := a.workerDone; done != nil {
		<-done
	}
}
