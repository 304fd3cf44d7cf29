package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
	"github.com/riskibarqy/galero/internal/platform/tracing"
)

type EditionService struct {
	reader placement.SnapshotReader
}

func NewEditionService(reader placement.SnapshotReader) *EditionService {
	return &EditionService{reader: reader}
}

type EditionDetails struct {
	Edition edition.Edition
	Teams   []TeamRoster
	Matches []MatchDetails
	Podium  []placement.TeamPlacement
}

type TeamRoster struct {
	Team    team.Team
	Players []player.Player
}

type MatchDetails struct {
	Match      match.Match
	Team1Color string
	Team2Color string
	Goals      []GoalDetails
}

type GoalDetails struct {
	Goal      goal.Goal
	TeamColor string
	Player    player.Player
}

func (s *EditionService) List(ctx context.Context) (_ []edition.Edition, err error) {
	ctx, span := tracer.Start(ctx, "EditionService.List")
	defer tracing.End(span, &err)

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return nil, err
	}

	return graph.Editions(), nil
}

func (s *EditionService) Details(ctx context.Context, editionID int64) (_ EditionDetails, err error) {
	ctx, span := tracer.Start(ctx, "EditionService.Details", tracing.AttrEditionID.Int64(editionID))
	defer tracing.End(span, &err)

	if editionID <= 0 {
		return EditionDetails{}, fmt.Errorf("%w: edition id must be > 0", ErrInvalidInput)
	}

	graph, err := loadGraph(ctx, s.reader)
	if err != nil {
		return EditionDetails{}, err
	}

	e, ok := graph.Edition(editionID)
	if !ok {
		return EditionDetails{}, fmt.Errorf("%w: edition=%d", ErrNotFound, editionID)
	}

	podium, err := graph.EditionPodium(editionID)
	if err != nil {
		return EditionDetails{}, engineError(fmt.Sprintf("edition podium edition=%d", editionID), err)
	}

	teams := graph.TeamsInEdition(editionID)
	rosters := make([]TeamRoster, 0, len(teams))
	for _, t := range teams {
		players := graph.PlayersInTeam(t.ID)
		sort.SliceStable(players, func(i, j int) bool {
			if players[i].LastName != players[j].LastName {
				return players[i].LastName < players[j].LastName
			}
			if players[i].FirstName != players[j].FirstName {
				return players[i].FirstName < players[j].FirstName
			}
			return players[i].ID < players[j].ID
		})
		rosters = append(rosters, TeamRoster{Team: t, Players: players})
	}

	teamColor := func(id int64) string {
		t, _ := graph.Team(id)
		return t.Color
	}

	matches := graph.MatchesInEdition(editionID)
	details := make([]MatchDetails, 0, len(matches))
	for _, m := range matches {
		goals := graph.GoalsInMatch(m.ID)
		goalDetails := make([]GoalDetails, 0, len(goals))
		for _, g := range goals {
			scorer, _ := graph.Player(g.PlayerID)
			goalDetails = append(goalDetails, GoalDetails{
				Goal:      g,
				TeamColor: teamColor(g.TeamID),
				Player:    scorer,
			})
		}
		details = append(details, MatchDetails{
			Match:      m,
			Team1Color: teamColor(m.Team1ID),
			Team2Color: teamColor(m.Team2ID),
			Goals:      goalDetails,
		})
	}

	return EditionDetails{
		Edition: e,
		Teams:   rosters,
		Matches: details,
		Podium:  podium,
	}, nil
}
