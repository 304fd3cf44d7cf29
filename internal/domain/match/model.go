package match

import (
	"fmt"
	"strings"
)

// Type classifies a match within an edition.
type Type string

const (
	TypeGroup      Type = "group"
	TypeSmallFinal Type = "small_final"
	TypeBigFinal   Type = "big_final"
)

var AllTypes = map[Type]struct{}{
	TypeGroup:      {},
	TypeSmallFinal: {},
	TypeBigFinal:   {},
}

func ParseType(value string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := AllTypes[t]; !ok {
		return "", fmt.Errorf("invalid match type: %q", value)
	}
	return t, nil
}

func (t Type) IsFinal() bool {
	return t == TypeBigFinal || t == TypeSmallFinal
}

// Match is a game between two teams of the same edition.
// Nil scores mean the match has not been played.
type Match struct {
	ID         int64
	EditionID  int64
	Team1ID    int64
	Team2ID    int64
	Type       Type
	Stage      string
	Team1Score *int
	Team2Score *int
}

func (m Match) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("match id is required")
	}
	if m.EditionID <= 0 {
		return fmt.Errorf("match edition id is required")
	}
	if m.Team1ID <= 0 || m.Team2ID <= 0 {
		return fmt.Errorf("match teams are required")
	}
	if m.Team1ID == m.Team2ID {
		return fmt.Errorf("match teams must be distinct")
	}
	if _, ok := AllTypes[m.Type]; !ok {
		return fmt.Errorf("invalid match type: %s", m.Type)
	}
	if len(m.Stage) > 20 {
		return fmt.Errorf("match stage must be at most 20 characters")
	}
	if (m.Team1Score != nil && *m.Team1Score < 0) || (m.Team2Score != nil && *m.Team2Score < 0) {
		return fmt.Errorf("match scores cannot be negative")
	}

	return nil
}

func (m Match) HasScore() bool {
	return m.Team1Score != nil && m.Team2Score != nil
}

func (m Match) Involves(teamID int64) bool {
	return m.Team1ID == teamID || m.Team2ID == teamID
}

// Side returns the own and opponent scores and the opponent team id as seen
// from teamID. ok is false when teamID did not play the match or the match
// has no score yet.
func (m Match) Side(teamID int64) (own, opponent int, opponentID int64, ok bool) {
	if !m.HasScore() {
		return 0, 0, 0, false
	}
	switch teamID {
	case m.Team1ID:
		return *m.Team1Score, *m.Team2Score, m.Team2ID, true
	case m.Team2ID:
		return *m.Team2Score, *m.Team1Score, m.Team1ID, true
	default:
		return 0, 0, 0, false
	}
}
