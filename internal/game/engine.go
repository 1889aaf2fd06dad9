// internal/game/engine.go
//
// Scoring rules for a single tennis game.
// Responsibilities:
//   - Create games with a validated roster (2 or 4 players, none nil).
//   - Partition the roster into teams by position.
//   - Count points and translate them to tennis terminology.
//   - Derive the game status: ongoing → deuce/advantage → won.
//
// Notes:
//   - Scores past "Forty" keep counting in steps of ten ("50", "60", ...).
//     Displayed scores are never capped.
//   - Nothing stops AddPoint after a game is won.
package game

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// calls maps raw points 0..3 to their spoken score.
var calls = [...]string{"Love", "Fifteen", "Thirty", "Forty"}

// New constructs a game for the given players.
// Two players play singles (one per team); four play doubles, with
// players[0..1] on team1 and players[2..3] on team2.
func New(players ...*Player) (*Game, error) {
	if len(players) != ModeSingle && len(players) != ModeDoubles {
		return nil, fmt.Errorf("%w: need %d or %d players, got %d",
			ErrInvalidRoster, ModeSingle, ModeDoubles, len(players))
	}
	for i, p := range players {
		if p == nil {
			return nil, fmt.Errorf("%w: player %d is nil", ErrInvalidRoster, i)
		}
	}
	return &Game{
		ID:      uuid.NewString(),
		players: append([]*Player(nil), players...),
	}, nil
}

// Mode returns the roster size: ModeSingle or ModeDoubles.
func (g *Game) Mode() int { return len(g.players) }

// Players returns a copy of the full roster in construction order.
func (g *Game) Players() []*Player {
	return append([]*Player(nil), g.players...)
}

// Team returns the players on team t in construction order.
func (g *Game) Team(t Team) ([]*Player, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	if len(g.players) == ModeSingle {
		return []*Player{g.players[t]}, nil
	}
	if t == Team1 {
		return []*Player{g.players[0], g.players[1]}, nil
	}
	return []*Player{g.players[2], g.players[3]}, nil
}

// PlayersForTeam is an alias for Team.
func (g *Game) PlayersForTeam(t Team) ([]*Player, error) { return g.Team(t) }

// AddPoint awards one point to team t.
func (g *Game) AddPoint(t Team) error {
	if err := validate(t); err != nil {
		return err
	}
	g.points[t]++
	return nil
}

// Points returns the raw point count for team t.
func (g *Game) Points(t Team) (int, error) {
	if err := validate(t); err != nil {
		return 0, err
	}
	return g.points[t], nil
}

// Score returns the tennis call for team t's points.
func (g *Game) Score(t Team) (string, error) {
	if err := validate(t); err != nil {
		return "", err
	}
	return scoreCall(g.points[t]), nil
}

// Status derives the game state from both point counts.
//
// The deuce/advantage check runs first once either side has three points;
// the win check runs after it once either side has four, and overrides it.
func (g *Game) Status() Status {
	t1, t2 := g.points[Team1], g.points[Team2]
	diff := t1 - t2
	status := StatusOngoing

	if t1 >= 3 || t2 >= 3 {
		switch diff {
		case 1:
			status = StatusTeam1Advantage
		case -1:
			status = StatusTeam2Advantage
		case 0:
			status = StatusDeuce
		}
	}

	if t1 >= 4 || t2 >= 4 {
		if diff >= 2 {
			status = StatusTeam1Won
		} else if diff <= -2 {
			status = StatusTeam2Won
		}
	}
	return status
}

// Winner returns the winning team once the game is won.
func (g *Game) Winner() (Team, bool) {
	switch g.Status() {
	case StatusTeam1Won:
		return Team1, true
	case StatusTeam2Won:
		return Team2, true
	}
	return 0, false
}

// Summary renders both scores and the status, e.g. "Forty-Thirty (ongoing)".
func (g *Game) Summary() string {
	return fmt.Sprintf("%s-%s (%s)",
		scoreCall(g.points[Team1]), scoreCall(g.points[Team2]), g.Status())
}

// scoreCall converts a point count to its tennis call.
func scoreCall(points int) string {
	if points >= 0 && points < len(calls) {
		return calls[points]
	}
	return strconv.Itoa(40 + 10*(points-3))
}

// validate rejects anything other than Team1 or Team2.
func validate(t Team) error {
	if !t.Valid() {
		return fmt.Errorf("%w: use %s or %s, was %d", ErrInvalidTeam, Team1, Team2, int(t))
	}
	return nil
}
