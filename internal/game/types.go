// internal/game/types.go
//
// Core type definitions for the tennis scoring model.
// Defines:
//   - Team: which side of the net a point belongs to (team1/team2).
//   - Status: derived state of a single game (ongoing, deuce, advantage, won).
//   - Player: display-name holder.
//   - Game: point tally plus a fixed roster of 2 or 4 players.

package game

import "errors"

// Game modes, expressed as roster sizes.
const (
	ModeSingle  = 2
	ModeDoubles = 4
)

// Team identifies one side of a game.
type Team int

const (
	Team1 Team = 0
	Team2 Team = 1
)

// Valid reports whether t is Team1 or Team2.
func (t Team) Valid() bool { return t == Team1 || t == Team2 }

// Opponent returns the other side. Invalid teams are returned unchanged.
func (t Team) Opponent() Team {
	switch t {
	case Team1:
		return Team2
	case Team2:
		return Team1
	}
	return t
}

func (t Team) String() string {
	switch t {
	case Team1:
		return "team1"
	case Team2:
		return "team2"
	}
	return "unknown"
}

// Status is the derived state of a game.
type Status string

const (
	StatusOngoing        Status = "ongoing"
	StatusDeuce          Status = "deuce"
	StatusTeam1Advantage Status = "team1_advantage"
	StatusTeam2Advantage Status = "team2_advantage"
	StatusTeam1Won       Status = "team1_won"
	StatusTeam2Won       Status = "team2_won"
)

func (s Status) String() string { return string(s) }

// Finished reports whether one of the teams has won.
func (s Status) Finished() bool {
	return s == StatusTeam1Won || s == StatusTeam2Won
}

// Caller misuse. Operations wrap these with the offending value.
var (
	ErrInvalidRoster = errors.New("invalid roster")
	ErrInvalidTeam   = errors.New("invalid team")
)

// Player is a participant. Only the display name is tracked.
type Player struct {
	name string
}

// NewPlayer returns a player with the given display name.
func NewPlayer(name string) *Player { return &Player{name: name} }

// Name returns the player's display name.
func (p *Player) Name() string { return p.name }

// Game holds the state of a single tennis game.
// It is not safe for concurrent mutation.
type Game struct {
	ID      string    // Unique game identifier (UUID).
	points  [2]int    // indexed by Team
	players []*Player // 2 or 4, fixed at construction
}
