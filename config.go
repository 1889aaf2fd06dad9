package main

import (
	"fmt"
	"os"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/tennis/internal/game"
)

// config is read from the environment (and .env, when present).
type config struct {
	LogLevel  string   // LOG_LEVEL: zerolog level name
	LogFormat string   // LOG_FORMAT: "json" or "console"
	Players   []string // PLAYERS: comma-separated, 2 or 4 names
	RallyFile string   // RALLY_FILE: point log path, empty = embedded sample
}

func loadConfig() config {
	return config{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Players:   splitNames(os.Getenv("PLAYERS")),
		RallyFile: os.Getenv("RALLY_FILE"),
	}
}

// setupLogging applies the configured level and output format to the global logger.
func setupLogging(cfg config) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// roster builds the players for a game. With no names configured, two
// title-cased pet names are generated.
func (c config) roster() ([]*game.Player, error) {
	names := c.Players
	if len(names) == 0 {
		names = generatedNames(game.ModeSingle)
	}
	if len(names) != game.ModeSingle && len(names) != game.ModeDoubles {
		return nil, fmt.Errorf("PLAYERS: %w: got %d names", game.ErrInvalidRoster, len(names))
	}
	players := make([]*game.Player, len(names))
	for i, n := range names {
		players[i] = game.NewPlayer(n)
	}
	return players, nil
}

func generatedNames(n int) []string {
	title := cases.Title(language.English)
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)
	for len(out) < n {
		name := title.String(petname.Generate(2, " "))
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
