package memory

import (
	"time"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
)

const (
	ColorRed    = "red"
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorYellow = "yellow"
)

// SeedSnapshot is a small three-edition competition used by the memory
// driver and by the migration seed command.
func SeedSnapshot() placement.Snapshot {
	return placement.Snapshot{
		Editions:    SeedEditions(),
		Teams:       SeedTeams(),
		Players:     SeedPlayers(),
		Memberships: SeedMemberships(),
		Matches:     SeedMatches(),
		Goals:       SeedGoals(),
	}
}

func SeedEditions() []edition.Edition {
	return []edition.Edition{
		{ID: 1, Number: 1, Date: time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Number: 2, Date: time.Date(2024, time.July, 13, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Number: 3, Date: time.Date(2024, time.November, 16, 0, 0, 0, 0, time.UTC)},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: 1, FirstName: "Bruno", LastName: "Almeida", Grade: 4.5},
		{ID: 2, FirstName: "Caio", LastName: "Barros", Grade: 3.5},
		{ID: 3, FirstName: "Diego", LastName: "Costa", Grade: 4},
		{ID: 4, FirstName: "Edu", LastName: "Duarte", Grade: 3},
		{ID: 5, FirstName: "Felipe", LastName: "Esteves", Grade: 4},
		{ID: 6, FirstName: "Gabriel", LastName: "Freitas", Grade: 2.5},
		{ID: 7, FirstName: "Heitor", LastName: "Gomes", Grade: 3.5},
		{ID: 8, FirstName: "Igor", LastName: "Henriques", Grade: 3},
		{ID: 9, FirstName: "João", LastName: "Lima", Grade: 2},
		{ID: 10, FirstName: "Lucas", LastName: "Moura", Grade: 4.5},
		{ID: 11, FirstName: "Mateus", LastName: "Nunes", Grade: 3},
		{ID: 12, FirstName: "Nicolas", LastName: "Oliveira", Grade: 2.5},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 101, EditionID: 1, Color: ColorRed},
		{ID: 102, EditionID: 1, Color: ColorBlue},
		{ID: 103, EditionID: 1, Color: ColorGreen},
		{ID: 104, EditionID: 1, Color: ColorYellow},
		{ID: 201, EditionID: 2, Color: ColorRed},
		{ID: 202, EditionID: 2, Color: ColorBlue},
		{ID: 203, EditionID: 2, Color: ColorGreen},
		{ID: 204, EditionID: 2, Color: ColorYellow},
		{ID: 301, EditionID: 3, Color: ColorRed},
		{ID: 302, EditionID: 3, Color: ColorBlue},
		{ID: 303, EditionID: 3, Color: ColorGreen},
		{ID: 304, EditionID: 3, Color: ColorYellow},
	}
}

func SeedMemberships() []team.Membership {
	rosters := map[int64][]int64{
		101: {1, 2, 3},
		102: {4, 5, 6},
		103: {7, 8, 9},
		104: {10, 11, 12},
		201: {1, 5, 9},
		202: {2, 6, 10},
		203: {3, 7, 11},
		204: {4, 8, 12},
		301: {1, 6, 11},
		302: {2, 7, 12},
		303: {3, 8, 10},
		// player 4 sat out edition 3
		304: {5, 9},
	}

	out := make([]team.Membership, 0, 35)
	for _, teamID := range []int64{101, 102, 103, 104, 201, 202, 203, 204, 301, 302, 303, 304} {
		for _, playerID := range rosters[teamID] {
			out = append(out, team.Membership{TeamID: teamID, PlayerID: playerID})
		}
	}
	return out
}

func SeedMatches() []match.Match {
	return []match.Match{
		played(1001, 1, 101, 102, match.TypeGroup, "Round 1", 2, 1),
		played(1002, 1, 103, 104, match.TypeGroup, "Round 1", 0, 0),
		played(1003, 1, 101, 103, match.TypeBigFinal, "Final", 3, 2),
		played(1004, 1, 102, 104, match.TypeSmallFinal, "Third place", 1, 0),

		played(2001, 2, 201, 202, match.TypeGroup, "Round 1", 1, 1),
		played(2002, 2, 202, 203, match.TypeBigFinal, "Final", 2, 1),
		played(2003, 2, 201, 204, match.TypeSmallFinal, "Third place", 3, 2),

		played(3001, 3, 301, 304, match.TypeGroup, "Round 1", 2, 0),
		played(3002, 3, 302, 303, match.TypeGroup, "Round 1", 1, 2),
		played(3003, 3, 301, 303, match.TypeBigFinal, "Final", 1, 2),
		played(3004, 3, 302, 304, match.TypeSmallFinal, "Third place", 4, 3),
		{ID: 3005, EditionID: 3, Team1ID: 303, Team2ID: 304, Type: match.TypeGroup, Stage: "Exhibition"},
	}
}

func SeedGoals() []goal.Goal {
	type scorer struct {
		matchID, teamID, playerID int64
		typ                       goal.Type
	}
	scorers := []scorer{
		{1001, 101, 1, goal.TypeNormal},
		{1001, 101, 1, goal.TypeNormal},
		{1001, 102, 4, goal.TypeNormal},
		{1003, 101, 2, goal.TypeNormal},
		{1003, 101, 3, goal.TypePenalty},
		{1003, 101, 1, goal.TypeNormal},
		{1003, 103, 7, goal.TypeNormal},
		{1003, 103, 8, goal.TypeNormal},
		{1004, 102, 5, goal.TypeNormal},

		{2001, 201, 9, goal.TypeNormal},
		{2001, 202, 10, goal.TypeNormal},
		{2002, 202, 6, goal.TypeNormal},
		{2002, 202, 2, goal.TypeNormal},
		{2002, 203, 7, goal.TypePenalty},
		{2003, 201, 1, goal.TypeNormal},
		{2003, 201, 5, goal.TypeNormal},
		{2003, 201, 5, goal.TypeNormal},
		{2003, 204, 4, goal.TypeNormal},
		{2003, 204, 1, goal.TypeOwnGoal},

		{3001, 301, 1, goal.TypeNormal},
		{3001, 301, 11, goal.TypeNormal},
		{3002, 302, 2, goal.TypeNormal},
		{3002, 303, 10, goal.TypeNormal},
		{3002, 303, 10, goal.TypeNormal},
		{3003, 301, 6, goal.TypeNormal},
		{3003, 303, 3, goal.TypeNormal},
		{3003, 303, 10, goal.TypePenalty},
		{3004, 302, 7, goal.TypeNormal},
		{3004, 302, 7, goal.TypeNormal},
		{3004, 302, 12, goal.TypeNormal},
		{3004, 302, 2, goal.TypeNormal},
		{3004, 304, 9, goal.TypeNormal},
		{3004, 304, 5, goal.TypeNormal},
		{3004, 304, 5, goal.TypeNormal},
	}

	out := make([]goal.Goal, 0, len(scorers))
	for i, s := range scorers {
		out = append(out, goal.Goal{
			ID:       int64(i + 1),
			MatchID:  s.matchID,
			TeamID:   s.teamID,
			PlayerID: s.playerID,
			Type:     s.typ,
		})
	}
	return out
}

func played(id, editionID, team1ID, team2ID int64, typ match.Type, stage string, team1Score, team2Score int) match.Match {
	return match.Match{
		ID:         id,
		EditionID:  editionID,
		Team1ID:    team1ID,
		Team2ID:    team2ID,
		Type:       typ,
		Stage:      stage,
		Team1Score: &team1Score,
		Team2Score: &team2Score,
	}
}
