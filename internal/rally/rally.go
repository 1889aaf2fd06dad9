// internal/rally/rally.go
//
// Point logs: a recorded sequence of point winners that can be replayed
// into a game.
//
// Format:
//   - One point per line naming the winning team.
//   - Accepted tokens: "1", "2", "team1", "team2", "t1", "t2" (any case).
//   - Blank lines and lines starting with "#" are ignored.
//
// Load reads a log from disk, or falls back to the embedded sample in the
// assets package when no path is given.

package rally

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/tennis/assets"
	"github.com/robalobadob/tennis/internal/game"
)

// ErrBadToken is returned for a log line that does not name a team.
var ErrBadToken = errors.New("rally: unknown team token")

// ParseTeam converts a single log token to a team.
func ParseTeam(tok string) (game.Team, error) {
	switch strings.ToLower(strings.TrimSpace(tok)) {
	case "1", "t1", "team1":
		return game.Team1, nil
	case "2", "t2", "team2":
		return game.Team2, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadToken, tok)
}

// Parse reads a point log from r.
func Parse(r io.Reader) ([]game.Team, error) {
	var out []game.Team
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		t, err := ParseTeam(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, t)
	}
	return out, sc.Err()
}

// Load reads the point log at path. An empty path loads the embedded sample.
func Load(path string) ([]game.Team, error) {
	if path == "" {
		return loadDefault()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

func loadDefault() ([]game.Team, error) {
	lines, err := assets.DefaultRally()
	if err != nil {
		return nil, fmt.Errorf("rally: embedded default: %w", err)
	}
	out := make([]game.Team, 0, len(lines))
	for i, l := range lines {
		t, err := ParseTeam(l)
		if err != nil {
			return nil, fmt.Errorf("embedded point %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// Replay awards each point to g in order. fn, if non-nil, is called after
// every point with its 1-based number. The first failed point stops the replay.
func Replay(g *game.Game, points []game.Team, fn func(n int, t game.Team)) error {
	for i, t := range points {
		if err := g.AddPoint(t); err != nil {
			return fmt.Errorf("point %d: %w", i+1, err)
		}
		if fn != nil {
			fn(i+1, t)
		}
	}
	return nil
}
