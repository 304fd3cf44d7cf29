package team

import "fmt"

// Team is the group of players fielded in a single edition.
// Teams never carry over between editions.
type Team struct {
	ID        int64
	EditionID int64
	Color     string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.EditionID <= 0 {
		return fmt.Errorf("team edition id is required")
	}
	if t.Color == "" {
		return fmt.Errorf("team color is required")
	}

	return nil
}

// Membership links a player to a team.
type Membership struct {
	TeamID   int64
	PlayerID int64
}

func (m Membership) Validate() error {
	if m.TeamID <= 0 {
		return fmt.Errorf("membership team id is required")
	}
	if m.PlayerID <= 0 {
		return fmt.Errorf("membership player id is required")
	}

	return nil
}
