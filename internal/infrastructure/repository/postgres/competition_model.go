package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
)

const (
	tableEditions    = "editions"
	tableTeams       = "teams"
	tablePlayers     = "players"
	tableTeamPlayers = "team_players"
	tableMatches     = "matches"
	tableGoals       = "goals"
)

type editionTableModel struct {
	ID     int64     `db:"id"`
	Number int       `db:"number"`
	HeldOn time.Time `db:"held_on"`
}

type teamTableModel struct {
	ID        int64  `db:"id"`
	EditionID int64  `db:"edition_id"`
	Color     string `db:"color"`
}

type playerTableModel struct {
	ID        int64   `db:"id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Grade     float64 `db:"grade"`
}

type teamPlayerTableModel struct {
	TeamID   int64 `db:"team_id"`
	PlayerID int64 `db:"player_id"`
}

type matchTableModel struct {
	ID         int64         `db:"id"`
	EditionID  int64         `db:"edition_id"`
	Team1ID    int64         `db:"team1_id"`
	Team2ID    int64         `db:"team2_id"`
	MatchType  string        `db:"match_type"`
	Stage      string        `db:"stage"`
	Team1Score sql.NullInt32 `db:"team1_score"`
	Team2Score sql.NullInt32 `db:"team2_score"`
}

type goalTableModel struct {
	ID       int64  `db:"id"`
	MatchID  int64  `db:"match_id"`
	TeamID   int64  `db:"team_id"`
	PlayerID int64  `db:"player_id"`
	GoalType string `db:"goal_type"`
}

func (m editionTableModel) toDomain() edition.Edition {
	return edition.Edition{ID: m.ID, Number: m.Number, Date: m.HeldOn.UTC()}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{ID: m.ID, EditionID: m.EditionID, Color: m.Color}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{ID: m.ID, FirstName: m.FirstName, LastName: m.LastName, Grade: m.Grade}
}

func (m teamPlayerTableModel) toDomain() team.Membership {
	return team.Membership{TeamID: m.TeamID, PlayerID: m.PlayerID}
}

func (m matchTableModel) toDomain() (match.Match, error) {
	typ, err := match.ParseType(m.MatchType)
	if err != nil {
		return match.Match{}, err
	}
	return match.Match{
		ID:         m.ID,
		EditionID:  m.EditionID,
		Team1ID:    m.Team1ID,
		Team2ID:    m.Team2ID,
		Type:       typ,
		Stage:      m.Stage,
		Team1Score: nullInt32ToIntPtr(m.Team1Score),
		Team2Score: nullInt32ToIntPtr(m.Team2Score),
	}, nil
}

func (m goalTableModel) toDomain() (goal.Goal, error) {
	typ, err := goal.ParseType(m.GoalType)
	if err != nil {
		return goal.Goal{}, err
	}
	return goal.Goal{ID: m.ID, MatchID: m.MatchID, TeamID: m.TeamID, PlayerID: m.PlayerID, Type: typ}, nil
}

func editionRow(e edition.Edition) editionTableModel {
	return editionTableModel{ID: e.ID, Number: e.Number, HeldOn: e.Date}
}

func teamRow(t team.Team) teamTableModel {
	return teamTableModel{ID: t.ID, EditionID: t.EditionID, Color: t.Color}
}

func playerRow(p player.Player) playerTableModel {
	return playerTableModel{ID: p.ID, FirstName: p.FirstName, LastName: p.LastName, Grade: p.Grade}
}

func teamPlayerRow(m team.Membership) teamPlayerTableModel {
	return teamPlayerTableModel{TeamID: m.TeamID, PlayerID: m.PlayerID}
}

func matchRow(m match.Match) matchTableModel {
	return matchTableModel{
		ID:         m.ID,
		EditionID:  m.EditionID,
		Team1ID:    m.Team1ID,
		Team2ID:    m.Team2ID,
		MatchType:  string(m.Type),
		Stage:      m.Stage,
		Team1Score: intPtrToNullInt32(m.Team1Score),
		Team2Score: intPtrToNullInt32(m.Team2Score),
	}
}

func goalRow(g goal.Goal) goalTableModel {
	return goalTableModel{ID: g.ID, MatchID: g.MatchID, TeamID: g.TeamID, PlayerID: g.PlayerID, GoalType: string(g.Type)}
}
