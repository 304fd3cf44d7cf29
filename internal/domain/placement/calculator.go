package placement

import (
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/galero/internal/domain/match"
)

const (
	PlacementChampion = 1
	PlacementRunnerUp = 2
	PlacementThird    = 3
	PlacementFourth   = 4
)

// Outcome is a team's result in the final it played.
type Outcome struct {
	Placement     int
	FinalType     match.Type
	OpponentID    int64
	OpponentColor string
	OwnScore      int
	OpponentScore int
}

// Code maps a decided final to a placement between 1 and 4.
// Finals are always decisive, so a draw is reported as invalid state.
func Code(finalType match.Type, ownScore, opponentScore int) (int, error) {
	if ownScore == opponentScore {
		return 0, invalidStatef("%s ended level at %d-%d", finalType, ownScore, opponentScore)
	}

	won := ownScore > opponentScore
	switch finalType {
	case match.TypeBigFinal:
		if won {
			return PlacementChampion, nil
		}
		return PlacementRunnerUp, nil
	case match.TypeSmallFinal:
		if won {
			return PlacementThird, nil
		}
		return PlacementFourth, nil
	default:
		return 0, invalidStatef("match type %q does not decide a placement", finalType)
	}
}

// Placement computes the team's outcome in m.
func (g *Graph) Placement(m match.Match, teamID int64) (Outcome, error) {
	if !m.Type.IsFinal() {
		return Outcome{}, invalidStatef("match %d is a %s, not a final", m.ID, m.Type)
	}
	if !m.Involves(teamID) {
		return Outcome{}, invalidStatef("team %d did not play match %d", teamID, m.ID)
	}
	own, opponent, opponentID, ok := m.Side(teamID)
	if !ok {
		return Outcome{}, invalidStatef("match %d has no final score", m.ID)
	}

	code, err := Code(m.Type, own, opponent)
	if err != nil {
		return Outcome{}, crerr.Wrapf(err, "match %d", m.ID)
	}

	return Outcome{
		Placement:     code,
		FinalType:     m.Type,
		OpponentID:    opponentID,
		OpponentColor: g.teams[opponentID].Color,
		OwnScore:      own,
		OpponentScore: opponent,
	}, nil
}

// outcomeFor resolves the player's outcome in one edition. found is false when
// the player's team did not reach a final.
func (g *Graph) outcomeFor(playerID, editionID int64) (Outcome, bool, error) {
	t, ok := g.TeamForPlayer(playerID, editionID)
	if !ok {
		return Outcome{}, false, nil
	}
	m, found, err := g.FinalMatch(editionID, t.ID)
	if err != nil || !found {
		return Outcome{}, false, err
	}
	out, err := g.Placement(m, t.ID)
	if err != nil {
		return Outcome{}, false, err
	}
	return out, true, nil
}
