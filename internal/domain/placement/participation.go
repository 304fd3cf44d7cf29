package placement

import (
	"sort"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/team"
)

// EditionsForPlayer returns the distinct editions in which the player was on
// some team, most recent first. Unknown players yield an empty result.
func (g *Graph) EditionsForPlayer(playerID int64) []edition.Edition {
	teamIDs := g.teamsByPlayer[playerID]
	if len(teamIDs) == 0 {
		return []edition.Edition{}
	}

	seen := make(map[int64]struct{}, len(teamIDs))
	out := make([]edition.Edition, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		editionID := g.teams[teamID].EditionID
		if _, dup := seen[editionID]; dup {
			continue
		}
		e, ok := g.editions[editionID]
		if !ok {
			continue
		}
		seen[editionID] = struct{}{}
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Newer(out[j]) })
	return out
}

// TeamForPlayer resolves the player's team in an edition. A player listed on
// several teams of the same edition resolves to the lowest team id, so every
// computation agrees on the same team.
func (g *Graph) TeamForPlayer(playerID, editionID int64) (team.Team, bool) {
	for _, teamID := range g.teamsByPlayer[playerID] {
		t := g.teams[teamID]
		if t.EditionID == editionID {
			return t, true
		}
	}
	return team.Team{}, false
}
