package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	configPath  string
	logLevel    string
	selfGames   int
	selfWorkers int
	selfSeed    int64
	boardPath   string
	lastMoveArg string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("renju exited with error")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "renju",
		Short:         "Renju engine with a local play server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := SetupLogging(cfg.LogLevel, cfg.LogPretty, os.Stderr); err != nil {
				return err
			}
			configStore.Update(cfg)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), GetConfig())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "override the configured log level")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP and websocket API for a human playing Black",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), GetConfig())
		},
	}

	selfplay := &cobra.Command{
		Use:   "selfplay",
		Short: "Play the engine against a random legal Black and print a JSON summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := GetConfig()
			summary, err := RunSelfPlay(cmd.Context(), selfGames, selfWorkers, cfg.Engine.SearchSettings(), selfSeed)
			if err != nil {
				return err
			}
			return writeIndentedJSON(cmd.OutOrStdout(), summary)
		},
	}
	selfplay.Flags().IntVar(&selfGames, "games", 4, "number of games")
	selfplay.Flags().IntVar(&selfWorkers, "parallel", 2, "games played at once")
	selfplay.Flags().Int64Var(&selfSeed, "seed", 1, "base seed; game i uses seed+i")

	bestmove := &cobra.Command{
		Use:   "bestmove",
		Short: "Print White's move for a board diagram read from --board or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBestMove(cmd, GetConfig())
		},
	}
	bestmove.Flags().StringVar(&boardPath, "board", "-", "board diagram file, - for stdin")
	bestmove.Flags().StringVar(&lastMoveArg, "last", "", "last move as x,y")

	root.AddCommand(serve, selfplay, bestmove)
	return root
}

func newRng(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}

func runServe(ctx context.Context, cfg Config) error {
	searcher := NewSearcher(NewRules(), cfg.Engine.SearchSettings(), newRng(cfg.Engine.Seed))
	controller := NewGameController(NewGame(NewAIPlayer(searcher), cfg.Server.AIMoveDelay))
	hub := NewHub()
	srv := NewServer(controller, hub)
	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(ctx.Done())
		return nil
	})
	g.Go(func() error {
		ticker := time.NewTicker(cfg.Server.TickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				srv.tick()
			}
		}
	})
	g.Go(func() error {
		log.Info().Str("addr", cfg.Server.Addr).Msg("backend listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown failed")
			if closeErr := httpServer.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
				return closeErr
			}
		}
		return nil
	})
	return g.Wait()
}

type bestMoveOutput struct {
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Source    string `json:"source"`
	Tier      string `json:"tier,omitempty"`
	Score     int64  `json:"score"`
	Nodes     int    `json:"nodes"`
	ElapsedMs int64  `json:"elapsed_ms"`
	TimedOut  bool   `json:"timed_out"`
}

func runBestMove(cmd *cobra.Command, cfg Config) error {
	var in io.Reader = cmd.InOrStdin()
	if boardPath != "-" {
		f, err := os.Open(boardPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	board, err := ParseBoard(string(data))
	if err != nil {
		return err
	}
	var last Move
	hasLast := lastMoveArg != ""
	if hasLast {
		if last, err = ParseMove(lastMoveArg); err != nil {
			return err
		}
	}

	searcher := NewSearcher(NewRules(), cfg.Engine.SearchSettings(), newRng(cfg.Engine.Seed))
	result, ok := searcher.ComputeMove(board, last, hasLast)
	if !ok {
		return fmt.Errorf("board is full: %w", ErrGameOver)
	}
	out := bestMoveOutput{
		X:         result.Move.X,
		Y:         result.Move.Y,
		Source:    string(result.Source),
		Score:     int64(result.Score),
		Nodes:     result.Nodes,
		ElapsedMs: result.Elapsed.Milliseconds(),
		TimedOut:  result.TimedOut,
	}
	if result.Tier != TierNone {
		out.Tier = result.Tier.String()
	}
	return writeIndentedJSON(cmd.OutOrStdout(), out)
}

func writeIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
