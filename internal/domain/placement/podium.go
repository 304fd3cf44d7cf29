package placement

import (
	"sort"

	"github.com/riskibarqy/galero/internal/domain/team"
)

type TeamPlacement struct {
	Team    team.Team
	Outcome Outcome
}

// EditionPodium lists the placement of every team in the edition that played
// a scored final, ordered by placement.
func (g *Graph) EditionPodium(editionID int64) ([]TeamPlacement, error) {
	if _, ok := g.editions[editionID]; !ok {
		return nil, notFoundf("edition %d", editionID)
	}

	out := make([]TeamPlacement, 0, 4)
	for _, t := range g.TeamsInEdition(editionID) {
		m, found, err := g.FinalMatch(editionID, t.ID)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		outcome, err := g.Placement(m, t.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, TeamPlacement{Team: t, Outcome: outcome})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Outcome.Placement != out[j].Outcome.Placement {
			return out[i].Outcome.Placement < out[j].Outcome.Placement
		}
		return out[i].Team.ID < out[j].Team.ID
	})

	return out, nil
}
