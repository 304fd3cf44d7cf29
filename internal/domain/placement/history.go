package placement

import (
	"time"

	"github.com/riskibarqy/galero/internal/domain/match"
)

// Record is one edition of a player's placement history.
type Record struct {
	EditionID     int64
	EditionNumber int
	Date          time.Time
	Placement     int
	FinalType     match.Type
	OpponentColor string
	OwnScore      int
	OpponentScore int
}

// PlayerHistory returns placement records for the player's limit most recent
// editions. The limit bounds editions considered, so editions without a final
// use up the limit without producing a record.
func (g *Graph) PlayerHistory(playerID int64, limit int) ([]Record, error) {
	if err := checkLimit(limit); err != nil {
		return nil, err
	}
	if _, ok := g.players[playerID]; !ok {
		return nil, notFoundf("player %d", playerID)
	}

	editions := g.EditionsForPlayer(playerID)
	if len(editions) > limit {
		editions = editions[:limit]
	}

	out := make([]Record, 0, len(editions))
	for _, e := range editions {
		outcome, found, err := g.outcomeFor(playerID, e.ID)
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		out = append(out, Record{
			EditionID:     e.ID,
			EditionNumber: e.Number,
			Date:          e.Date,
			Placement:     outcome.Placement,
			FinalType:     outcome.FinalType,
			OpponentColor: outcome.OpponentColor,
			OwnScore:      outcome.OwnScore,
			OpponentScore: outcome.OpponentScore,
		})
	}

	return out, nil
}
