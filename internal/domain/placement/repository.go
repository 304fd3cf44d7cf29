package placement

import (
	"context"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
)

// Snapshot is a point-in-time copy of every row the engine reads.
type Snapshot struct {
	Editions    []edition.Edition
	Teams       []team.Team
	Players     []player.Player
	Memberships []team.Membership
	Matches     []match.Match
	Goals       []goal.Goal
}

// SnapshotReader loads a consistent snapshot. Implementations must read all
// collections from the same view of storage.
type SnapshotReader interface {
	ReadSnapshot(ctx context.Context) (Snapshot, error)
}
