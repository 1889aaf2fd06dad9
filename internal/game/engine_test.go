package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPlayerGame(t *testing.T) (*Game, *Player, *Player) {
	t.Helper()
	p1 := NewPlayer("Ronald McBurger")
	p2 := NewPlayer("Tony Tiger")
	g, err := New(p1, p2)
	require.NoError(t, err)
	return g, p1, p2
}

// play awards points to team1 and team2 alternately, team1 first,
// until each side reaches its target.
func play(t *testing.T, g *Game, team1, team2 int) {
	t.Helper()
	for i := 0; i < team1 || i < team2; i++ {
		if i < team1 {
			require.NoError(t, g.AddPoint(Team1))
		}
		if i < team2 {
			require.NoError(t, g.AddPoint(Team2))
		}
	}
}

func TestNewRejectsBadRosters(t *testing.T) {
	p := NewPlayer("p")
	tests := []struct {
		name    string
		players []*Player
	}{
		{name: "empty", players: nil},
		{name: "one player", players: []*Player{p}},
		{name: "three players", players: []*Player{p, p, p}},
		{name: "five players", players: []*Player{p, p, p, p, p}},
		{name: "nil players", players: []*Player{nil, nil}},
		{name: "one nil in doubles", players: []*Player{p, p, nil, p}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.players...)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, ErrInvalidRoster)
		})
	}
}

func TestGameModes(t *testing.T) {
	g, _, _ := twoPlayerGame(t)
	assert.Equal(t, ModeSingle, g.Mode())
	assert.NotEmpty(t, g.ID)

	d, err := New(NewPlayer("a"), NewPlayer("b"), NewPlayer("c"), NewPlayer("d"))
	require.NoError(t, err)
	assert.Equal(t, ModeDoubles, d.Mode())
	assert.NotEqual(t, g.ID, d.ID)
}

func TestTeamsSingle(t *testing.T) {
	g, p1, p2 := twoPlayerGame(t)

	team1, err := g.Team(Team1)
	require.NoError(t, err)
	require.Len(t, team1, 1)
	assert.Equal(t, p1.Name(), team1[0].Name())

	team2, err := g.PlayersForTeam(Team2)
	require.NoError(t, err)
	require.Len(t, team2, 1)
	assert.Equal(t, p2.Name(), team2[0].Name())
}

func TestTeamsDoubles(t *testing.T) {
	a, b, c, d := NewPlayer("a"), NewPlayer("b"), NewPlayer("c"), NewPlayer("d")
	g, err := New(a, b, c, d)
	require.NoError(t, err)

	team1, err := g.Team(Team1)
	require.NoError(t, err)
	assert.Equal(t, []*Player{a, b}, team1)

	team2, err := g.PlayersForTeam(Team2)
	require.NoError(t, err)
	assert.Equal(t, []*Player{c, d}, team2)
}

func TestRosterIsCopied(t *testing.T) {
	players := []*Player{NewPlayer("a"), NewPlayer("b")}
	g, err := New(players...)
	require.NoError(t, err)

	players[0] = NewPlayer("z")
	team1, err := g.Team(Team1)
	require.NoError(t, err)
	assert.Equal(t, "a", team1[0].Name())

	team1[0] = NewPlayer("y")
	assert.Equal(t, "a", g.Players()[0].Name())
}

func TestAddPoints(t *testing.T) {
	g, _, _ := twoPlayerGame(t)

	for _, team := range []Team{Team1, Team2} {
		n, err := g.Points(team)
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	require.NoError(t, g.AddPoint(Team1))
	require.NoError(t, g.AddPoint(Team2))
	require.NoError(t, g.AddPoint(Team2))

	n, err := g.Points(Team1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = g.Points(Team2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestScore(t *testing.T) {
	g, _, _ := twoPlayerGame(t)
	want := []string{"Love", "Fifteen", "Thirty", "Forty",
		"50", "60", "70", "80", "90", "100", "110", "120"}

	for points, call := range want {
		got, err := g.Score(Team1)
		require.NoError(t, err)
		assert.Equal(t, call, got, "points=%d", points)
		require.NoError(t, g.AddPoint(Team1))
	}

	got, err := g.Score(Team2)
	require.NoError(t, err)
	assert.Equal(t, "Love", got)
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name         string
		team1, team2 int
		want         Status
	}{
		{name: "initial", team1: 0, team2: 0, want: StatusOngoing},
		{name: "two all", team1: 2, team2: 2, want: StatusOngoing},
		{name: "forty love", team1: 3, team2: 0, want: StatusOngoing},
		{name: "deuce", team1: 3, team2: 3, want: StatusDeuce},
		{name: "long deuce", team1: 9, team2: 9, want: StatusDeuce},
		{name: "team1 advantage", team1: 4, team2: 3, want: StatusTeam1Advantage},
		{name: "team2 advantage", team1: 3, team2: 4, want: StatusTeam2Advantage},
		{name: "forty thirty", team1: 3, team2: 2, want: StatusTeam1Advantage},
		{name: "team1 won", team1: 5, team2: 3, want: StatusTeam1Won},
		{name: "team2 won", team1: 2, team2: 4, want: StatusTeam2Won},
		{name: "team1 won to love", team1: 4, team2: 0, want: StatusTeam1Won},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _, _ := twoPlayerGame(t)
			play(t, g, tt.team1, tt.team2)
			assert.Equal(t, tt.want, g.Status())
		})
	}
}

func TestDeuceSequence(t *testing.T) {
	g, _, _ := twoPlayerGame(t)
	for _, team := range []Team{Team1, Team1, Team2, Team2} {
		require.NoError(t, g.AddPoint(team))
	}
	assert.Equal(t, StatusOngoing, g.Status())

	require.NoError(t, g.AddPoint(Team1))
	require.NoError(t, g.AddPoint(Team2))
	assert.Equal(t, StatusDeuce, g.Status())
}

func TestScoringContinuesAfterWin(t *testing.T) {
	g, _, _ := twoPlayerGame(t)
	play(t, g, 4, 0)
	require.True(t, g.Status().Finished())

	require.NoError(t, g.AddPoint(Team2))
	n, err := g.Points(Team2)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWinner(t *testing.T) {
	g, _, _ := twoPlayerGame(t)
	_, ok := g.Winner()
	assert.False(t, ok)

	play(t, g, 2, 4)
	team, ok := g.Winner()
	assert.True(t, ok)
	assert.Equal(t, Team2, team)
}

func TestSummary(t *testing.T) {
	g, _, _ := twoPlayerGame(t)
	assert.Equal(t, "Love-Love (ongoing)", g.Summary())

	play(t, g, 4, 3)
	assert.Equal(t, "50-Forty (team1_advantage)", g.Summary())
}

func TestInvalidTeam(t *testing.T) {
	g, _, _ := twoPlayerGame(t)

	for _, team := range []Team{-1, 2, 42} {
		t.Run(team.String(), func(t *testing.T) {
			assert.ErrorIs(t, g.AddPoint(team), ErrInvalidTeam)

			_, err := g.Points(team)
			assert.ErrorIs(t, err, ErrInvalidTeam)

			_, err = g.Score(team)
			assert.ErrorIs(t, err, ErrInvalidTeam)

			_, err = g.Team(team)
			assert.ErrorIs(t, err, ErrInvalidTeam)

			_, err = g.PlayersForTeam(team)
			assert.ErrorIs(t, err, ErrInvalidTeam)
		})
	}

	n, err := g.Points(Team1)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestTeamHelpers(t *testing.T) {
	assert.Equal(t, Team2, Team1.Opponent())
	assert.Equal(t, Team1, Team2.Opponent())
	assert.Equal(t, Team(7), Team(7).Opponent())
	assert.Equal(t, "team1", Team1.String())
	assert.False(t, Team(2).Valid())
}
