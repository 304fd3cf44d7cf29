package placement

import (
	"sort"

	"github.com/riskibarqy/galero/internal/domain/player"
)

type EditionWinRecord struct {
	Player              player.Player
	WinsCount           int
	EditionsPlayedCount int
}

type ScoringRecord struct {
	Player     player.Player
	TotalGoals int
}

type PlacementStatsRecord struct {
	Player              player.Player
	FirstPlaceCount     int
	SecondPlaceCount    int
	ThirdPlaceCount     int
	FourthPlaceCount    int
	EditionsPlayedCount int
}

// EditionWinLeaders ranks players by the number of distinct editions whose big
// final their team won. Players without a win are left out. Ties are broken
// by ascending player id.
func (g *Graph) EditionWinLeaders(limit int) ([]EditionWinRecord, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	out := make([]EditionWinRecord, 0)
	for _, playerID := range g.playerIDs {
		editions := g.EditionsForPlayer(playerID)
		wins := 0
		for _, e := range editions {
			outcome, found, err := g.outcomeFor(playerID, e.ID)
			if err != nil {
				return nil, err
			}
			if found && outcome.Placement == PlacementChampion {
				wins++
			}
		}
		if wins == 0 {
			continue
		}
		out = append(out, EditionWinRecord{
			Player:              g.players[playerID],
			WinsCount:           wins,
			EditionsPlayedCount: len(editions),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].WinsCount != out[j].WinsCount {
			return out[i].WinsCount > out[j].WinsCount
		}
		return out[i].Player.ID < out[j].Player.ID
	})

	return truncate(out, limit), nil
}

// AllTimeScorers ranks players by every goal row credited to them, own goals
// included. Players without goals are left out.
func (g *Graph) AllTimeScorers(limit int) ([]ScoringRecord, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	out := make([]ScoringRecord, 0)
	for _, playerID := range g.playerIDs {
		goals := g.goalsByPlayer[playerID]
		if goals == 0 {
			continue
		}
		out = append(out, ScoringRecord{
			Player:     g.players[playerID],
			TotalGoals: goals,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].TotalGoals != out[j].TotalGoals {
			return out[i].TotalGoals > out[j].TotalGoals
		}
		return out[i].Player.ID < out[j].Player.ID
	})

	return truncate(out, limit), nil
}

// PlacementStats ranks every participating player by first places. Players
// who never reached a final are still listed with zero counts.
func (g *Graph) PlacementStats(limit int) ([]PlacementStatsRecord, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}

	out := make([]PlacementStatsRecord, 0)
	for _, playerID := range g.playerIDs {
		record, participated, err := g.placementStats(playerID)
		if err != nil {
			return nil, err
		}
		if !participated {
			continue
		}
		out = append(out, record)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FirstPlaceCount != out[j].FirstPlaceCount {
			return out[i].FirstPlaceCount > out[j].FirstPlaceCount
		}
		return out[i].Player.ID < out[j].Player.ID
	})

	return truncate(out, limit), nil
}

// PlacementStatsForPlayer is PlacementStats scoped to one player. Unlike the
// full ranking it reports ErrNotFound for a player who never participated.
func (g *Graph) PlacementStatsForPlayer(playerID int64) (PlacementStatsRecord, error) {
	if _, ok := g.players[playerID]; !ok {
		return PlacementStatsRecord{}, notFoundf("player %d", playerID)
	}

	record, participated, err := g.placementStats(playerID)
	if err != nil {
		return PlacementStatsRecord{}, err
	}
	if !participated {
		return PlacementStatsRecord{}, notFoundf("player %d has no edition participation", playerID)
	}

	return record, nil
}

func (g *Graph) placementStats(playerID int64) (PlacementStatsRecord, bool, error) {
	editions := g.EditionsForPlayer(playerID)
	if len(editions) == 0 {
		return PlacementStatsRecord{}, false, nil
	}

	record := PlacementStatsRecord{
		Player:              g.players[playerID],
		EditionsPlayedCount: len(editions),
	}
	for _, e := range editions {
		outcome, found, err := g.outcomeFor(playerID, e.ID)
		if err != nil {
			return PlacementStatsRecord{}, false, err
		}
		if !found {
			continue
		}
		switch outcome.Placement {
		case PlacementChampion:
			record.FirstPlaceCount++
		case PlacementRunnerUp:
			record.SecondPlaceCount++
		case PlacementThird:
			record.ThirdPlaceCount++
		case PlacementFourth:
			record.FourthPlaceCount++
		}
	}

	return record, true, nil
}

func truncate[T any](items []T, limit int) []T {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
