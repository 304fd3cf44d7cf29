package httpapi

import (
	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/usecase"
)

const dateLayout = "2006-01-02"

type playerDTO struct {
	PlayerID  int64   `json:"playerId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Name      string  `json:"name"`
	Grade     float64 `json:"grade"`
}

type editionWinnerDTO struct {
	playerDTO
	WinsCount           int `json:"winsCount"`
	EditionsPlayedCount int `json:"editionsPlayedCount"`
}

type scorerDTO struct {
	playerDTO
	TotalGoals int `json:"totalGoals"`
}

type placementStatDTO struct {
	playerDTO
	FirstPlaceCount     int `json:"firstPlaceCount"`
	SecondPlaceCount    int `json:"secondPlaceCount"`
	ThirdPlaceCount     int `json:"thirdPlaceCount"`
	FourthPlaceCount    int `json:"fourthPlaceCount"`
	EditionsPlayedCount int `json:"editionsPlayedCount"`
}

type championsOverviewDTO struct {
	EditionWinners []editionWinnerDTO `json:"editionWinners"`
	AllTimeScorers []scorerDTO        `json:"allTimeScorers"`
	PlacementStats []placementStatDTO `json:"placementStats"`
}

type placementRecordDTO struct {
	EditionID     int64  `json:"editionId"`
	EditionNumber int    `json:"editionNumber"`
	Date          string `json:"date"`
	Placement     int    `json:"placement"`
	FinalType     string `json:"finalType"`
	OpponentColor string `json:"opponentColor"`
	OwnScore      int    `json:"ownScore"`
	OpponentScore int    `json:"opponentScore"`
}

type playerGoalsDTO struct {
	PlayerID  int64  `json:"playerId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	GoalCount int    `json:"goalCount"`
}

type editionDTO struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Date   string `json:"date"`
}

type editionDetailsDTO struct {
	editionDTO
	Teams   []teamRosterDTO  `json:"teams"`
	Matches []matchDTO       `json:"matches"`
	Podium  []podiumEntryDTO `json:"podium"`
}

type teamRosterDTO struct {
	TeamID  int64       `json:"teamId"`
	Color   string      `json:"color"`
	Players []playerDTO `json:"players"`
}

type matchDTO struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Stage      string    `json:"stage,omitempty"`
	Team1ID    int64     `json:"team1Id"`
	Team1Color string    `json:"team1Color"`
	Team2ID    int64     `json:"team2Id"`
	Team2Color string    `json:"team2Color"`
	Team1Score *int      `json:"team1Score"`
	Team2Score *int      `json:"team2Score"`
	Goals      []goalDTO `json:"goals"`
}

type goalDTO struct {
	ID         int64  `json:"id"`
	Type       string `json:"type"`
	TeamID     int64  `json:"teamId"`
	TeamColor  string `json:"teamColor"`
	PlayerID   int64  `json:"playerId"`
	PlayerName string `json:"playerName"`
}

type podiumEntryDTO struct {
	TeamID        int64  `json:"teamId"`
	Color         string `json:"color"`
	Placement     int    `json:"placement"`
	FinalType     string `json:"finalType"`
	OpponentID    int64  `json:"opponentId"`
	OpponentColor string `json:"opponentColor"`
	OwnScore      int    `json:"ownScore"`
	OpponentScore int    `json:"opponentScore"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		PlayerID:  p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Name:      p.FullName(),
		Grade:     p.Grade,
	}
}

func editionWinnersToDTO(items []placement.EditionWinRecord) []editionWinnerDTO {
	out := make([]editionWinnerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, editionWinnerDTO{
			playerDTO:           playerToDTO(item.Player),
			WinsCount:           item.WinsCount,
			EditionsPlayedCount: item.EditionsPlayedCount,
		})
	}
	return out
}

func scorersToDTO(items []placement.ScoringRecord) []scorerDTO {
	out := make([]scorerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scorerDTO{
			playerDTO:  playerToDTO(item.Player),
			TotalGoals: item.TotalGoals,
		})
	}
	return out
}

func placementStatToDTO(item placement.PlacementStatsRecord) placementStatDTO {
	return placementStatDTO{
		playerDTO:           playerToDTO(item.Player),
		FirstPlaceCount:     item.FirstPlaceCount,
		SecondPlaceCount:    item.SecondPlaceCount,
		ThirdPlaceCount:     item.ThirdPlaceCount,
		FourthPlaceCount:    item.FourthPlaceCount,
		EditionsPlayedCount: item.EditionsPlayedCount,
	}
}

func placementStatsToDTO(items []placement.PlacementStatsRecord) []placementStatDTO {
	out := make([]placementStatDTO, 0, len(items))
	for _, item := range items {
		out = append(out, placementStatToDTO(item))
	}
	return out
}

func placementRecordToDTO(rec placement.Record) placementRecordDTO {
	return placementRecordDTO{
		EditionID:     rec.EditionID,
		EditionNumber: rec.EditionNumber,
		Date:          rec.Date.Format(dateLayout),
		Placement:     rec.Placement,
		FinalType:     string(rec.FinalType),
		OpponentColor: rec.OpponentColor,
		OwnScore:      rec.OwnScore,
		OpponentScore: rec.OpponentScore,
	}
}

func editionToDTO(e edition.Edition) editionDTO {
	return editionDTO{
		ID:     e.ID,
		Number: e.Number,
		Date:   e.Date.Format(dateLayout),
	}
}

func editionDetailsToDTO(details usecase.EditionDetails) editionDetailsDTO {
	out := editionDetailsDTO{
		editionDTO: editionToDTO(details.Edition),
		Teams:      make([]teamRosterDTO, 0, len(details.Teams)),
		Matches:    make([]matchDTO, 0, len(details.Matches)),
		Podium:     make([]podiumEntryDTO, 0, len(details.Podium)),
	}

	for _, roster := range details.Teams {
		players := make([]playerDTO, 0, len(roster.Players))
		for _, p := range roster.Players {
			players = append(players, playerToDTO(p))
		}
		out.Teams = append(out.Teams, teamRosterDTO{
			TeamID:  roster.Team.ID,
			Color:   roster.Team.Color,
			Players: players,
		})
	}

	for _, m := range details.Matches {
		goals := make([]goalDTO, 0, len(m.Goals))
		for _, g := range m.Goals {
			goals = append(goals, goalDTO{
				ID:         g.Goal.ID,
				Type:       string(g.Goal.Type),
				TeamID:     g.Goal.TeamID,
				TeamColor:  g.TeamColor,
				PlayerID:   g.Player.ID,
				PlayerName: g.Player.FullName(),
			})
		}
		out.Matches = append(out.Matches, matchDTO{
			ID:         m.Match.ID,
			Type:       string(m.Match.Type),
			Stage:      m.Match.Stage,
			Team1ID:    m.Match.Team1ID,
			Team1Color: m.Team1Color,
			Team2ID:    m.Match.Team2ID,
			Team2Color: m.Team2Color,
			Team1Score: m.Match.Team1Score,
			Team2Score: m.Match.Team2Score,
			Goals:      goals,
		})
	}

	for _, entry := range details.Podium {
		out.Podium = append(out.Podium, podiumEntryDTO{
			TeamID:        entry.Team.ID,
			Color:         entry.Team.Color,
			Placement:     entry.Outcome.Placement,
			FinalType:     string(entry.Outcome.FinalType),
			OpponentID:    entry.Outcome.OpponentID,
			OpponentColor: entry.Outcome.OpponentColor,
			OwnScore:      entry.Outcome.OwnScore,
			OpponentScore: entry.Outcome.OpponentScore,
		})
	}

	return out
}
