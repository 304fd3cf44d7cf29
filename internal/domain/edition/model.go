package edition

import (
	"fmt"
	"time"
)

// Edition is one full run of the competition.
type Edition struct {
	ID     int64
	Number int
	Date   time.Time
}

func (e Edition) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("edition id is required")
	}
	if e.Number <= 0 {
		return fmt.Errorf("edition number must be greater than zero")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("edition date is required")
	}

	return nil
}

// Newer reports whether e should be listed before other (most recent first).
func (e Edition) Newer(other Edition) bool {
	if e.Number != other.Number {
		return e.Number > other.Number
	}
	return e.ID < other.ID
}
