package main

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
)

// MoveSource records which stage of the selector produced a move.
type MoveSource string

const (
	SourceOpening  MoveSource = "opening"
	SourceTactical MoveSource = "tactical"
	SourceSearch   MoveSource = "search"
	SourceFallback MoveSource = "fallback"
)

const (
	winScore Score = 1 << 40
	minScore Score = -(1 << 62)
	maxScore Score = 1 << 62
)

type SearchSettings struct {
	Depth              int
	TimeBudget         time.Duration
	TopK               int
	Radius             int
	OpeningRandomReply bool
}

func DefaultSearchSettings() SearchSettings {
	return SearchSettings{
		Depth:              4,
		TimeBudget:         2 * time.Second,
		TopK:               20,
		Radius:             4,
		OpeningRandomReply: true,
	}
}

type SearchResult struct {
	Move     Move
	Source   MoveSource
	Tier     TacticalTier
	Score    Score
	Nodes    int
	Elapsed  time.Duration
	TimedOut bool
	// Leaf cache probes made by this search.
	LeafHits   uint64
	LeafMisses uint64
}

// Searcher picks White's moves. It mutates the board it is handed during a
// call and restores it before returning; it is not safe for concurrent use.
type Searcher struct {
	rules    Rules
	settings SearchSettings
	rng      *rand.Rand
	now      func() time.Time
	leaves   *LeafCache
}

func NewSearcher(rules Rules, settings SearchSettings, rng *rand.Rand) *Searcher {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Searcher{
		rules:    rules,
		settings: settings,
		rng:      rng,
		now:      time.Now,
		leaves:   NewLeafCache(defaultLeafCacheSize),
	}
}

// SetClock replaces the wall clock used for the deadline.
func (s *Searcher) SetClock(now func() time.Time) {
	s.now = now
}

type searchRun struct {
	board     *Board
	center    Move
	hasCenter bool
	deadline  time.Time
	nodes     int
	timedOut  bool
}

// ComputeMove selects White's reply. lastMove centres the candidate window
// when hasLast is set. It returns false only when the board has no empty
// cell left.
func (s *Searcher) ComputeMove(board *Board, lastMove Move, hasLast bool) (SearchResult, bool) {
	start := s.now()
	hitsBefore, missesBefore := s.leaves.Stats()
	if board.AllFilled() {
		return SearchResult{}, false
	}

	if s.settings.OpeningRandomReply {
		if move, ok := s.openingReply(board); ok {
			return SearchResult{Move: move, Source: SourceOpening, Elapsed: s.now().Sub(start)}, true
		}
	}

	if move, tier, ok := ResolveForcedMove(board, s.rules); ok {
		log.Debug().Stringer("move", move).Stringer("tier", tier).Msg("forced move")
		return SearchResult{Move: move, Source: SourceTactical, Tier: tier, Elapsed: s.now().Sub(start)}, true
	}

	run := &searchRun{
		board:     board,
		center:    lastMove,
		hasCenter: hasLast && lastMove.IsValid(),
		deadline:  start.Add(s.settings.TimeBudget),
	}
	best, bestScore := s.searchRoot(run)
	result := SearchResult{
		Move:     best,
		Source:   SourceSearch,
		Score:    bestScore,
		Nodes:    run.nodes,
		TimedOut: run.timedOut,
	}
	if bestScore == minScore {
		result.Move = s.randomEmpty(board)
		result.Source = SourceFallback
	}
	result.Elapsed = s.now().Sub(start)
	hits, misses := s.leaves.Stats()
	result.LeafHits = hits - hitsBefore
	result.LeafMisses = misses - missesBefore

	log.Debug().
		Stringer("move", result.Move).
		Str("source", string(result.Source)).
		Int64("score", int64(result.Score)).
		Int("nodes", result.Nodes).
		Bool("timed_out", result.TimedOut).
		Dur("elapsed", result.Elapsed).
		Uint64("leaf_hits", result.LeafHits).
		Uint64("leaf_misses", result.LeafMisses).
		Msg("search finished")
	return result, true
}

// openingReply answers a lone Black stone with a random empty neighbour.
func (s *Searcher) openingReply(board *Board) (Move, bool) {
	if board.Count(CellBlack) != 1 {
		return Move{}, false
	}
	stone := board.Cells(CellBlack)[0]
	neighbours := []Move{}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			m := Move{X: stone.X + dx, Y: stone.Y + dy}
			if board.IsEmpty(m.X, m.Y) {
				neighbours = append(neighbours, m)
			}
		}
	}
	if len(neighbours) == 0 {
		return Move{}, false
	}
	return neighbours[s.rng.Intn(len(neighbours))], true
}

func (s *Searcher) searchRoot(run *searchRun) (Move, Score) {
	best := Move{X: -1, Y: -1}
	bestScore := minScore
	alpha := minScore
	for _, cand := range s.relevantCells(run) {
		if s.now().After(run.deadline) {
			run.timedOut = true
			break
		}
		score := s.scoreChild(run, cand, CellWhite, s.settings.Depth, alpha, maxScore)
		if score > bestScore {
			bestScore = score
			best = cand
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore
}

// scoreChild places cell on m, scores the resulting position and restores m.
func (s *Searcher) scoreChild(run *searchRun, m Move, cell Cell, depth int, alpha, beta Score) Score {
	defer run.board.place(m, cell)()
	if s.rules.IsWin(run.board, m) {
		if cell == CellWhite {
			return winScore + Score(depth)
		}
		return -winScore - Score(depth)
	}
	return s.minimax(run, depth, alpha, beta, cell == CellBlack)
}

// minimax returns the White-perspective value of the position with depth
// plies left. It stops at depth zero or once the deadline has passed.
func (s *Searcher) minimax(run *searchRun, depth int, alpha, beta Score, maximizing bool) Score {
	run.nodes++
	if depth <= 0 {
		return s.evaluateBoard(run)
	}
	if s.now().After(run.deadline) {
		run.timedOut = true
		return s.evaluateBoard(run)
	}

	explored := false
	if maximizing {
		value := minScore
		for _, cand := range s.relevantCells(run) {
			explored = true
			value = max(value, s.scoreChild(run, cand, CellWhite, depth-1, alpha, beta))
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		if !explored {
			return s.evaluateBoard(run)
		}
		return value
	}

	value := maxScore
	for _, cand := range s.relevantCells(run) {
		if s.rules.IsForbidden(run.board, cand) {
			continue
		}
		explored = true
		value = min(value, s.scoreChild(run, cand, CellBlack, depth-1, alpha, beta))
		beta = min(beta, value)
		if alpha >= beta {
			break
		}
	}
	if !explored {
		return s.evaluateBoard(run)
	}
	return value
}

type scoredCell struct {
	move  Move
	score Score
}

// relevantCells lists the empty cells in the window around the last move,
// best White-perspective score first, truncated to TopK. Without a last move
// the centre cell is the only candidate while it is free.
func (s *Searcher) relevantCells(run *searchRun) []Move {
	board := run.board
	center := Center
	if run.hasCenter {
		center = run.center
	} else if board.IsEmpty(Center.X, Center.Y) {
		return []Move{Center}
	}

	scored := []scoredCell{}
	r := s.settings.Radius
	for y := max(0, center.Y-r); y <= min(BoardSize-1, center.Y+r); y++ {
		for x := max(0, center.X-r); x <= min(BoardSize-1, center.X+r); x++ {
			if !board.IsEmpty(x, y) {
				continue
			}
			m := Move{X: x, Y: y}
			scored = append(scored, scoredCell{move: m, score: EvaluatePosition(board, m, PlayerWhite)})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if s.settings.TopK > 0 && len(scored) > s.settings.TopK {
		scored = scored[:s.settings.TopK]
	}
	out := make([]Move, len(scored))
	for i, sc := range scored {
		out[i] = sc.move
	}
	return out
}

// evaluateBoard is the static value of a leaf: over every candidate cell,
// White's evaluation minus Black's.
func (s *Searcher) evaluateBoard(run *searchRun) Score {
	key := run.board.Hash() ^ zobrist.window(run.center, run.hasCenter)
	if score, ok := s.leaves.Probe(key); ok {
		return score
	}
	var total Score
	for _, m := range s.relevantCells(run) {
		total += EvaluatePosition(run.board, m, PlayerWhite)
		total -= EvaluatePosition(run.board, m, PlayerBlack)
	}
	s.leaves.Store(key, total)
	return total
}

func (s *Searcher) randomEmpty(board *Board) Move {
	empty := board.EmptyCells()
	return empty[s.rng.Intn(len(empty))]
}
