package placement

import (
	"time"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
)

type snapshotBuilder struct {
	s          Snapshot
	nextGoalID int64
}

func newSnapshot() *snapshotBuilder {
	return &snapshotBuilder{nextGoalID: 1}
}

func editionDate(number int) time.Time {
	return time.Date(2024, time.Month(number), 1, 0, 0, 0, 0, time.UTC)
}

func (b *snapshotBuilder) edition(id int64, number int) *snapshotBuilder {
	b.s.Editions = append(b.s.Editions, edition.Edition{ID: id, Number: number, Date: editionDate(number)})
	return b
}

func (b *snapshotBuilder) player(id int64, first, last string) *snapshotBuilder {
	b.s.Players = append(b.s.Players, player.Player{ID: id, FirstName: first, LastName: last, Grade: 7.5})
	return b
}

func (b *snapshotBuilder) team(id, editionID int64, color string, playerIDs ...int64) *snapshotBuilder {
	b.s.Teams = append(b.s.Teams, team.Team{ID: id, EditionID: editionID, Color: color})
	for _, playerID := range playerIDs {
		b.s.Memberships = append(b.s.Memberships, team.Membership{TeamID: id, PlayerID: playerID})
	}
	return b
}

func (b *snapshotBuilder) played(id, editionID int64, typ match.Type, team1, team2 int64, score1, score2 int) *snapshotBuilder {
	s1, s2 := score1, score2
	b.s.Matches = append(b.s.Matches, match.Match{
		ID:         id,
		EditionID:  editionID,
		Team1ID:    team1,
		Team2ID:    team2,
		Type:       typ,
		Team1Score: &s1,
		Team2Score: &s2,
	})
	return b
}

func (b *snapshotBuilder) unplayed(id, editionID int64, typ match.Type, team1, team2 int64) *snapshotBuilder {
	b.s.Matches = append(b.s.Matches, match.Match{
		ID:        id,
		EditionID: editionID,
		Team1ID:   team1,
		Team2ID:   team2,
		Type:      typ,
	})
	return b
}

func (b *snapshotBuilder) goals(matchID, teamID, playerID int64, n int, typ goal.Type) *snapshotBuilder {
	for i := 0; i < n; i++ {
		b.s.Goals = append(b.s.Goals, goal.Goal{
			ID:       b.nextGoalID,
			MatchID:  matchID,
			TeamID:   teamID,
			PlayerID: playerID,
			Type:     typ,
		})
		b.nextGoalID++
	}
	return b
}

func (b *snapshotBuilder) graph() *Graph {
	return NewGraph(b.s)
}

// edition3Scenario: in edition #3 red (P) beats blue (Q) 5-3 in the big final
// and green (R) beats yellow 2-1 in the small final. White (S) only played a
// group match.
func edition3Scenario() *snapshotBuilder {
	return newSnapshot().
		edition(3, 3).
		player(1, "Paulo", "Pereira").
		player(2, "Quim", "Queiroz").
		player(3, "Rui", "Ramos").
		player(4, "Sergio", "Silva").
		player(5, "Tiago", "Teixeira").
		team(31, 3, "red", 1).
		team(32, 3, "blue", 2).
		team(33, 3, "green", 3).
		team(34, 3, "yellow", 5).
		team(35, 3, "white", 4).
		played(301, 3, match.TypeBigFinal, 31, 32, 5, 3).
		played(302, 3, match.TypeSmallFinal, 33, 34, 2, 1).
		played(303, 3, match.TypeGroup, 31, 35, 1, 1).
		unplayed(304, 3, match.TypeGroup, 34, 35).
		goals(301, 31, 1, 4, goal.TypeNormal).
		goals(301, 31, 3, 1, goal.TypeOwnGoal).
		goals(302, 33, 3, 2, goal.TypePenalty).
		goals(302, 34, 5, 1, goal.TypeNormal).
		goals(303, 35, 4, 1, goal.TypeNormal)
}
