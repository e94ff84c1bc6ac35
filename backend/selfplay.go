package main

import (
	"context"
	"math/rand"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type SelfPlayResult struct {
	Game    int     `json:"game"`
	Outcome Outcome `json:"-"`
	Result  string  `json:"outcome"`
	Moves   int     `json:"moves"`
}

type SelfPlaySummary struct {
	Games     int              `json:"games"`
	BlackWins int              `json:"black_wins"`
	WhiteWins int              `json:"white_wins"`
	Draws     int              `json:"draws"`
	Results   []SelfPlayResult `json:"results"`
}

// RunSelfPlay plays games of the engine (White) against a random legal Black,
// at most parallel at a time. Game i is seeded from seed+i.
func RunSelfPlay(ctx context.Context, games, parallel int, settings SearchSettings, seed int64) (SelfPlaySummary, error) {
	results := make([]SelfPlayResult, games)
	g, ctx := errgroup.WithContext(ctx)
	if parallel > 0 {
		g.SetLimit(parallel)
	}
	for i := 0; i < games; i++ {
		i := i
		g.Go(func() error {
			result, err := playOne(ctx, i, settings, seed+int64(i))
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SelfPlaySummary{}, err
	}

	summary := SelfPlaySummary{Games: games, Results: results}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeBlackWins:
			summary.BlackWins++
		case OutcomeWhiteWins:
			summary.WhiteWins++
		default:
			summary.Draws++
		}
	}
	return summary, nil
}

func playOne(ctx context.Context, index int, settings SearchSettings, seed int64) (SelfPlayResult, error) {
	blackRng := rand.New(rand.NewSource(seed))
	searcher := NewSearcher(NewRules(), settings, rand.New(rand.NewSource(^seed)))
	game := NewGame(NewAIPlayer(searcher), 0)
	rules := NewRules()

	for !game.Outcome().Finished() {
		if err := ctx.Err(); err != nil {
			return SelfPlayResult{}, err
		}
		state := game.State()
		move, ok := randomLegalBlackMove(state.Board, rules, blackRng)
		if !ok {
			break
		}
		if _, err := game.ApplyHumanMove(move); err != nil {
			return SelfPlayResult{}, err
		}
		if game.Outcome().Finished() {
			break
		}
		result, err := game.ComputeAutomatedMove()
		if err != nil {
			return SelfPlayResult{}, err
		}
		if _, err := game.ApplyAutomatedMove(result.Move, result.Source); err != nil {
			return SelfPlayResult{}, err
		}
	}

	outcome := game.Outcome()
	if !outcome.Finished() {
		outcome = OutcomeDraw
	}
	moves := game.History().Size()
	log.Info().Int("game", index).Stringer("outcome", outcome).Int("moves", moves).Msg("self-play game finished")
	return SelfPlayResult{Game: index, Outcome: outcome, Result: outcome.String(), Moves: moves}, nil
}

// randomLegalBlackMove picks uniformly among the empty cells Black may take.
func randomLegalBlackMove(board *Board, rules Rules, rng *rand.Rand) (Move, bool) {
	legal := []Move{}
	for _, m := range board.EmptyCells() {
		if !rules.IsForbidden(board, m) {
			legal = append(legal, m)
		}
	}
	if len(legal) == 0 {
		return Move{}, false
	}
	return legal[rng.Intn(len(legal))], true
}
