package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/galero/internal/domain/edition"
	"github.com/riskibarqy/galero/internal/domain/goal"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/domain/player"
	"github.com/riskibarqy/galero/internal/domain/team"
)

type stubSnapshotReader struct {
	snapshot placement.Snapshot
	err      error
	calls    int
	mu       sync.Mutex
}

func (s *stubSnapshotReader) ReadSnapshot(context.Context) (placement.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.snapshot, s.err
}

type recordedComputation struct {
	operation string
	err       error
}

type stubRecorder struct {
	mu    sync.Mutex
	items []recordedComputation
}

func (r *stubRecorder) ObserveComputation(operation string, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, recordedComputation{operation: operation, err: err})
}

func intPtr(v int) *int {
	return &v
}

// twoEditionSnapshot: Ana wins both big finals, Bia loses the first big final
// and wins the second small final, Caio never reaches a final.
func twoEditionSnapshot() placement.Snapshot {
	return placement.Snapshot{
		Editions: []edition.Edition{
			{ID: 1, Number: 1, Date: time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Number: 2, Date: time.Date(2024, 11, 9, 0, 0, 0, 0, time.UTC)},
		},
		Players: []player.Player{
			{ID: 10, FirstName: "Ana", LastName: "Alves", Grade: 8},
			{ID: 20, FirstName: "Bia", LastName: "Borges", Grade: 6.5},
			{ID: 30, FirstName: "Caio", LastName: "Costa", Grade: 5},
			{ID: 40, FirstName: "Duda", LastName: "Dias", Grade: 7},
		},
		Teams: []team.Team{
			{ID: 101, EditionID: 1, Color: "red"},
			{ID: 102, EditionID: 1, Color: "blue"},
			{ID: 103, EditionID: 1, Color: "green"},
			{ID: 201, EditionID: 2, Color: "white"},
			{ID: 202, EditionID: 2, Color: "black"},
			{ID: 203, EditionID: 2, Color: "orange"},
			{ID: 204, EditionID: 2, Color: "purple"},
		},
		Memberships: []team.Membership{
			{TeamID: 101, PlayerID: 10},
			{TeamID: 102, PlayerID: 20},
			{TeamID: 103, PlayerID: 30},
			{TeamID: 201, PlayerID: 10},
			{TeamID: 203, PlayerID: 20},
			{TeamID: 204, PlayerID: 30},
		},
		Matches: []match.Match{
			{ID: 1001, EditionID: 1, Team1ID: 101, Team2ID: 102, Type: match.TypeBigFinal, Team1Score: intPtr(3), Team2Score: intPtr(1)},
			{ID: 1002, EditionID: 1, Team1ID: 101, Team2ID: 103, Type: match.TypeGroup, Stage: "A", Team1Score: intPtr(0), Team2Score: intPtr(0)},
			{ID: 2001, EditionID: 2, Team1ID: 202, Team2ID: 201, Type: match.TypeBigFinal, Team1Score: intPtr(0), Team2Score: intPtr(2)},
			{ID: 2002, EditionID: 2, Team1ID: 203, Team2ID: 204, Type: match.TypeSmallFinal, Team1Score: intPtr(4), Team2Score: intPtr(2)},
		},
		Goals: []goal.Goal{
			{ID: 1, MatchID: 1001, TeamID: 101, PlayerID: 10, Type: goal.TypeNormal},
			{ID: 2, MatchID: 1001, TeamID: 101, PlayerID: 10, Type: goal.TypePenalty},
			{ID: 3, MatchID: 1001, TeamID: 102, PlayerID: 20, Type: goal.TypeNormal},
			{ID: 4, MatchID: 2002, TeamID: 203, PlayerID: 20, Type: goal.TypeNormal},
			{ID: 5, MatchID: 2002, TeamID: 204, PlayerID: 30, Type: goal.TypeOwnGoal},
		},
	}
}
