package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/galero/internal/domain/match"
	"github.com/riskibarqy/galero/internal/domain/placement"
	"github.com/riskibarqy/galero/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/riskibarqy/galero/internal/platform/metrics"
	"github.com/riskibarqy/galero/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedIDs struct{ value string }

func (f fixedIDs) NewID() (string, error) { return f.value, nil }

type failingReader struct{ err error }

func (f failingReader) ReadSnapshot(context.Context) (placement.Snapshot, error) {
	return placement.Snapshot{}, f.err
}

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T, reader placement.SnapshotReader, recorder *metrics.Recorder) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	handler := NewHandler(
		usecase.NewChampionService(reader, recorder, logger, 3),
		usecase.NewPlayerHistoryService(reader, recorder, logger),
		usecase.NewEditionService(reader),
		LimitConfig{Default: 3, Max: 50},
		logger,
	)

	opts := RouterOptions{
		Logger:     logger,
		RequestIDs: fixedIDs{value: "req-fixed"},
	}
	if recorder != nil {
		opts.Observer = recorder
		opts.MetricsHandler = recorder.Handler()
	}
	return NewRouter(handler, opts)
}

func seededRouter(t *testing.T) http.Handler {
	return newTestRouter(t, memory.NewSnapshotRepository(memory.SeedSnapshot()), nil)
}

func doGet(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/healthz")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Equal(t, "ok", body.Data["status"])
	assert.Equal(t, "req-fixed", rec.Header().Get(HeaderRequestID))
}

func TestEditionWinners_DefaultLimit(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/champions/edition-winners")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]editionWinnerDTO](t, rec)
	require.Len(t, body.Data, 3)
	assert.Equal(t, int64(2), body.Data[0].PlayerID)
	assert.Equal(t, "Caio Barros", body.Data[0].Name)
	assert.Equal(t, 2, body.Data[0].WinsCount)
	assert.Equal(t, 3, body.Data[0].EditionsPlayedCount)
	assert.Equal(t, int64(3), body.Data[1].PlayerID)
	assert.Equal(t, int64(10), body.Data[2].PlayerID)
}

func TestEditionWinners_LimitValidation(t *testing.T) {
	router := seededRouter(t)

	for _, raw := range []string{"0", "-1", "abc", "51"} {
		rec := doGet(t, router, "/v1/champions/edition-winners?limit="+raw)
		require.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", raw)

		body := decode[any](t, rec)
		require.NotNil(t, body.Error)
		assert.Equal(t, "INVALID_ARGUMENT", body.Error.Status)
	}
}

func TestAllTimeScorers(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/champions/all-time-scorers?limit=5")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]scorerDTO](t, rec)
	require.Len(t, body.Data, 5)

	ids := make([]int64, 0, len(body.Data))
	for _, item := range body.Data {
		ids = append(ids, item.PlayerID)
	}
	assert.Equal(t, []int64{1, 5, 2, 7, 10}, ids)
	assert.Equal(t, 6, body.Data[0].TotalGoals)
}

func TestPlacementStats(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/champions/placement-stats?limit=12")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]placementStatDTO](t, rec)
	require.Len(t, body.Data, 12)
	for i := 1; i < len(body.Data); i++ {
		assert.GreaterOrEqual(t, body.Data[i-1].FirstPlaceCount, body.Data[i].FirstPlaceCount)
	}
}

func TestChampionsOverview(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/champions/overview?limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[championsOverviewDTO](t, rec)
	assert.Len(t, body.Data.EditionWinners, 2)
	assert.Len(t, body.Data.AllTimeScorers, 2)
	assert.Len(t, body.Data.PlacementStats, 2)
	assert.Equal(t, int64(1), body.Data.AllTimeScorers[0].PlayerID)
}

func TestPlayerHistory(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/players/1/history")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]placementRecordDTO](t, rec)
	require.Len(t, body.Data, 3)

	latest := body.Data[0]
	assert.Equal(t, 3, latest.EditionNumber)
	assert.Equal(t, "2024-11-16", latest.Date)
	assert.Equal(t, 2, latest.Placement)
	assert.Equal(t, string(match.TypeBigFinal), latest.FinalType)
	assert.Equal(t, memory.ColorGreen, latest.OpponentColor)
	assert.Equal(t, 1, latest.OwnScore)
	assert.Equal(t, 2, latest.OpponentScore)

	assert.Equal(t, 3, body.Data[1].Placement)
	assert.Equal(t, 1, body.Data[2].Placement)
}

func TestPlayerHistory_Limit(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/players/1/history?limit=1")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]placementRecordDTO](t, rec)
	require.Len(t, body.Data, 1)
	assert.Equal(t, 3, body.Data[0].EditionNumber)
}

func TestPlayerHistory_Errors(t *testing.T) {
	router := seededRouter(t)

	cases := []struct {
		path   string
		status int
	}{
		{path: "/v1/players/abc/history", status: http.StatusBadRequest},
		{path: "/v1/players/0/history", status: http.StatusBadRequest},
		{path: "/v1/players/1/history?limit=0", status: http.StatusBadRequest},
		{path: "/v1/players/999/history", status: http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := doGet(t, router, tc.path)
		assert.Equal(t, tc.status, rec.Code, tc.path)
	}
}

func TestPlayerPlacementStats(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/players/4/placement-stats")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[placementStatDTO](t, rec)
	assert.Equal(t, int64(4), body.Data.PlayerID)
	assert.Equal(t, 2, body.Data.EditionsPlayedCount)
	assert.Equal(t, 1, body.Data.ThirdPlaceCount)
	assert.Equal(t, 1, body.Data.FourthPlaceCount)
	assert.Zero(t, body.Data.FirstPlaceCount)
}

func TestPlayerGoals(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/players/5/goals")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[playerGoalsDTO](t, rec)
	assert.Equal(t, "Felipe", body.Data.FirstName)
	assert.Equal(t, 5, body.Data.GoalCount)
}

func TestListEditions(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/editions")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[[]editionDTO](t, rec)
	require.Len(t, body.Data, 3)
	assert.Equal(t, 3, body.Data[0].Number)
	assert.Equal(t, "2024-03-09", body.Data[2].Date)
}

func TestGetEdition(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/editions/3")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[editionDetailsDTO](t, rec)
	assert.Equal(t, 3, body.Data.Number)
	assert.Len(t, body.Data.Teams, 4)
	assert.Len(t, body.Data.Matches, 5)
	require.Len(t, body.Data.Podium, 4)
	assert.Equal(t, int64(303), body.Data.Podium[0].TeamID)
	assert.Equal(t, 1, body.Data.Podium[0].Placement)

	var unplayed *matchDTO
	for i := range body.Data.Matches {
		if body.Data.Matches[i].ID == 3005 {
			unplayed = &body.Data.Matches[i]
		}
	}
	require.NotNil(t, unplayed)
	assert.Nil(t, unplayed.Team1Score)
	assert.Nil(t, unplayed.Team2Score)
	assert.Contains(t, rec.Body.String(), `"team1Score":null`)
}

func TestGetEdition_NotFound(t *testing.T) {
	rec := doGet(t, seededRouter(t), "/v1/editions/42")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[any](t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "NOT_FOUND", body.Error.Status)
}

func TestInconsistentDataIsConflict(t *testing.T) {
	snapshot := memory.SeedSnapshot()
	for i := range snapshot.Matches {
		if snapshot.Matches[i].ID == 1003 {
			tied := 2
			snapshot.Matches[i].Team1Score = &tied
			snapshot.Matches[i].Team2Score = &tied
		}
	}
	router := newTestRouter(t, memory.NewSnapshotRepository(snapshot), nil)

	rec := doGet(t, router, "/v1/champions/edition-winners")

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decode[any](t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "FAILED_PRECONDITION", body.Error.Status)
	assert.Equal(t, "inconsistentData", body.Error.Errors[0].Reason)
}

func TestDependencyFailureIsUnavailable(t *testing.T) {
	reader := failingReader{err: errors.New("connection refused")}
	router := newTestRouter(t, reader, nil)

	rec := doGet(t, router, "/v1/editions")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "internal server error")
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	recorder := metrics.New()
	router := newTestRouter(t, memory.NewSnapshotRepository(memory.SeedSnapshot()), recorder)

	require.Equal(t, http.StatusOK, doGet(t, router, "/v1/players/1/history").Code)
	require.Equal(t, http.StatusNotFound, doGet(t, router, "/nope").Code)

	rec := doGet(t, router, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `route="GET /v1/players/{playerID}/history"`), body)
	assert.True(t, strings.Contains(body, `route="unmatched"`), body)
	assert.True(t, strings.Contains(body, `galero_engine_computations_total{operation="player_history",outcome="success"} 1`), body)
}

func TestRouter_PreservesInboundRequestID(t *testing.T) {
	router := seededRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestRouter_CanceledRequestContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	req := httptest.NewRequest(http.MethodGet, "/v1/editions", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	seededRouter(t).ServeHTTP(rec, req)

	assert.NotEqual(t, http.StatusOK, rec.Code)
}
