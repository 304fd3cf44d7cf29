package player

import (
	"fmt"
	"strings"
)

// Player is a person who has been registered for the competition.
// Grade is a display attribute and never influences rankings.
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	Grade     float64
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id is required")
	}
	if strings.TrimSpace(p.FirstName) == "" {
		return fmt.Errorf("player first name is required")
	}
	if strings.TrimSpace(p.LastName) == "" {
		return fmt.Errorf("player last name is required")
	}
	if p.Grade < 0 {
		return fmt.Errorf("player grade cannot be negative")
	}

	return nil
}

func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
