package main

import (
	"context"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/tennis/internal/game"
	"github.com/robalobadob/tennis/internal/rally"
	"github.com/robalobadob/tennis/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()
	setupLogging(cfg)

	if _, err := run(context.Background(), cfg, store.NewMemoryStore()); err != nil {
		log.Fatal().Err(err).Msg("replay failed")
	}
}

// run builds a game from cfg, registers it in st and replays the point log into it.
func run(ctx context.Context, cfg config, st store.Store) (*game.Game, error) {
	players, err := cfg.roster()
	if err != nil {
		return nil, err
	}
	g, err := game.New(players...)
	if err != nil {
		return nil, err
	}
	if err := st.Save(ctx, g); err != nil {
		return nil, err
	}

	points, err := rally.Load(cfg.RallyFile)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("gameId", g.ID).
		Int("mode", g.Mode()).
		Str("team1", teamNames(g, game.Team1)).
		Str("team2", teamNames(g, game.Team2)).
		Int("points", len(points)).
		Msg("starting game")

	err = rally.Replay(g, points, func(n int, t game.Team) {
		log.Debug().
			Str("gameId", g.ID).
			Int("point", n).
			Stringer("wonBy", t).
			Str("score", g.Summary()).
			Msg("point")
	})
	if err != nil {
		return g, err
	}

	ev := log.Info().Str("gameId", g.ID).Str("score", g.Summary()).Stringer("status", g.Status())
	if winner, ok := g.Winner(); ok {
		ev = ev.Stringer("winner", winner).Str("players", teamNames(g, winner))
	}
	ev.Msg("replay finished")
	return g, nil
}

func teamNames(g *game.Game, t game.Team) string {
	players, err := g.Team(t)
	if err != nil {
		return ""
	}
	names := make([]string, len(players))
	for i, p := range players {
		names[i] = p.Name()
	}
	return strings.Join(names, " & ")
}
