package placement

import "github.com/riskibarqy/galero/internal/domain/match"

// FinalMatch finds the scored big or small final the team played in the
// edition. The big final wins when both exist. found is false when the team
// never reached a final, which is a normal outcome.
func (g *Graph) FinalMatch(editionID, teamID int64) (m match.Match, found bool, err error) {
	var big, small *match.Match
	for _, candidate := range g.matchesByEdition[editionID] {
		if !candidate.Type.IsFinal() || !candidate.Involves(teamID) || !candidate.HasScore() {
			continue
		}

		item := candidate
		switch item.Type {
		case match.TypeBigFinal:
			if big != nil {
				return match.Match{}, false, invalidStatef("team %d has two big finals in edition %d (matches %d and %d)", teamID, editionID, big.ID, item.ID)
			}
			big = &item
		case match.TypeSmallFinal:
			if small != nil {
				return match.Match{}, false, invalidStatef("team %d has two small finals in edition %d (matches %d and %d)", teamID, editionID, small.ID, item.ID)
			}
			small = &item
		}
	}

	switch {
	case big != nil:
		return *big, true, nil
	case small != nil:
		return *small, true, nil
	default:
		return match.Match{}, false, nil
	}
}
