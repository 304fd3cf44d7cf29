package placement

import (
	"sort"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
)

// Graph indexes a Snapshot by id. It is immutable after NewGraph returns and
// safe for concurrent readers.
type Graph struct {
	editions map[int64]edition.Edition
	teams    map[int64]team.Team
	players  map[int64]player.Player

	// ascending ids, used as the deterministic iteration order
	editionIDs []int64
	playerIDs  []int64

	teamsByEdition   map[int64][]int64
	teamsByPlayer    map[int64][]int64
	playersByTeam    map[int64][]int64
	matchesByEdition map[int64][]match.Match
	goalsByMatch     map[int64][]goal.Goal
	goalsByPlayer    map[int64]int
}

func NewGraph(s Snapshot) *Graph {
	g := &Graph{
		editions:         make(map[int64]edition.Edition, len(s.Editions)),
		teams:            make(map[int64]team.Team, len(s.Teams)),
		players:          make(map[int64]player.Player, len(s.Players)),
		teamsByEdition:   make(map[int64][]int64),
		teamsByPlayer:    make(map[int64][]int64),
		playersByTeam:    make(map[int64][]int64),
		matchesByEdition: make(map[int64][]match.Match),
		goalsByMatch:     make(map[int64][]goal.Goal),
		goalsByPlayer:    make(map[int64]int),
	}

	for _, e := range s.Editions {
		if _, exists := g.editions[e.ID]; !exists {
			g.editionIDs = append(g.editionIDs, e.ID)
		}
		g.editions[e.ID] = e
	}
	for _, p := range s.Players {
		if _, exists := g.players[p.ID]; !exists {
			g.playerIDs = append(g.playerIDs, p.ID)
		}
		g.players[p.ID] = p
	}
	for _, t := range s.Teams {
		if _, exists := g.teams[t.ID]; !exists {
			g.teamsByEdition[t.EditionID] = append(g.teamsByEdition[t.EditionID], t.ID)
		}
		g.teams[t.ID] = t
	}

	seen := make(map[team.Membership]struct{}, len(s.Memberships))
	for _, m := range s.Memberships {
		if _, dup := seen[m]; dup {
			continue
		}
		if _, ok := g.teams[m.TeamID]; !ok {
			continue
		}
		if _, ok := g.players[m.PlayerID]; !ok {
			continue
		}
		seen[m] = struct{}{}
		g.teamsByPlayer[m.PlayerID] = append(g.teamsByPlayer[m.PlayerID], m.TeamID)
		g.playersByTeam[m.TeamID] = append(g.playersByTeam[m.TeamID], m.PlayerID)
	}

	for _, m := range s.Matches {
		g.matchesByEdition[m.EditionID] = append(g.matchesByEdition[m.EditionID], m)
	}
	for _, gl := range s.Goals {
		g.goalsByMatch[gl.MatchID] = append(g.goalsByMatch[gl.MatchID], gl)
		g.goalsByPlayer[gl.PlayerID]++
	}

	sortIDs(g.editionIDs)
	sortIDs(g.playerIDs)
	for _, ids := range g.teamsByEdition {
		sortIDs(ids)
	}
	for _, ids := range g.teamsByPlayer {
		sortIDs(ids)
	}
	for _, ids := range g.playersByTeam {
		sortIDs(ids)
	}
	for _, items := range g.matchesByEdition {
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	}
	for _, items := range g.goalsByMatch {
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	}

	return g
}

func (g *Graph) Edition(id int64) (edition.Edition, bool) {
	e, ok := g.editions[id]
	return e, ok
}

// Editions returns all editions, most recent first.
func (g *Graph) Editions() []edition.Edition {
	out := make([]edition.Edition, 0, len(g.editionIDs))
	for _, id := range g.editionIDs {
		out = append(out, g.editions[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Newer(out[j]) })
	return out
}

func (g *Graph) Team(id int64) (team.Team, bool) {
	t, ok := g.teams[id]
	return t, ok
}

// TeamsInEdition returns the edition's teams ordered by id.
func (g *Graph) TeamsInEdition(editionID int64) []team.Team {
	ids := g.teamsByEdition[editionID]
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.teams[id])
	}
	return out
}

func (g *Graph) Player(id int64) (player.Player, bool) {
	p, ok := g.players[id]
	return p, ok
}

// PlayersInTeam returns the team's players ordered by id.
func (g *Graph) PlayersInTeam(teamID int64) []player.Player {
	ids := g.playersByTeam[teamID]
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.players[id])
	}
	return out
}

// MatchesInEdition returns the edition's matches ordered by id.
func (g *Graph) MatchesInEdition(editionID int64) []match.Match {
	items := g.matchesByEdition[editionID]
	out := make([]match.Match, len(items))
	copy(out, items)
	return out
}

// GoalsInMatch returns the match goals ordered by id.
func (g *Graph) GoalsInMatch(matchID int64) []goal.Goal {
	items := g.goalsByMatch[matchID]
	out := make([]goal.Goal, len(items))
	copy(out, items)
	return out
}

// GoalCount returns how many goal rows are credited to the player.
func (g *Graph) GoalCount(playerID int64) int {
	return g.goalsByPlayer[playerID]
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
