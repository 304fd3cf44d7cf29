package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/placement"
)

// SnapshotRepository keeps the whole competition in memory. Reads hand out
// copies so callers can never mutate the stored records.
type SnapshotRepository struct {
	mu       sync.RWMutex
	snapshot placement.Snapshot
}

func NewSnapshotRepository(snapshot placement.Snapshot) *SnapshotRepository {
	return &SnapshotRepository{snapshot: cloneSnapshot(snapshot)}
}

func (r *SnapshotRepository) ReadSnapshot(ctx context.Context) (placement.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return placement.Snapshot{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSnapshot(r.snapshot), nil
}

// Replace swaps the stored competition atomically.
func (r *SnapshotRepository) Replace(snapshot placement.Snapshot) {
	cloned := cloneSnapshot(snapshot)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = cloned
}

func cloneSnapshot(s placement.Snapshot) placement.Snapshot {
	out := placement.Snapshot{
		Editions:    slices.Clone(s.Editions),
		Teams:       slices.Clone(s.Teams),
		Players:     slices.Clone(s.Players),
		Memberships: slices.Clone(s.Memberships),
		Matches:     make([]match.Match, 0, len(s.Matches)),
		Goals:       slices.Clone(s.Goals),
	}
	for _, m := range s.Matches {
		m.Team1Score = cloneScore(m.Team1Score)
		m.Team2Score = cloneScore(m.Team2Score)
		out.Matches = append(out.Matches, m)
	}
	return out
}

func cloneScore(score *int) *int {
	if score == nil {
		return nil
	}
	v := *score
	return &v
}
