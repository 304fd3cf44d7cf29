package goal

import (
	"fmt"
	"strings"
)

// Type describes how a goal was scored.
type Type string

const (
	TypeNormal  Type = "normal"
	TypePenalty Type = "penalty"
	TypeOwnGoal Type = "own_goal"
)

var AllTypes = map[Type]struct{}{
	TypeNormal:  {},
	TypePenalty: {},
	TypeOwnGoal: {},
}

func ParseType(value string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := AllTypes[t]; !ok {
		return "", fmt.Errorf("invalid goal type: %q", value)
	}
	return t, nil
}

// Goal is credited to the player stored on the row, own goals included.
type Goal struct {
	ID       int64
	MatchID  int64
	TeamID   int64
	PlayerID int64
	Type     Type
}

func (g Goal) Validate() error {
	if g.ID <= 0 {
		return fmt.Errorf("goal id is required")
	}
	if g.MatchID <= 0 {
		return fmt.Errorf("goal match id is required")
	}
	if g.TeamID <= 0 {
		return fmt.Errorf("goal team id is required")
	}
	if g.PlayerID <= 0 {
		return fmt.Errorf("goal player id is required")
	}
	if _, ok := AllTypes[g.Type]; !ok {
		return fmt.Errorf("invalid goal type: %s", g.Type)
	}

	return nil
}
