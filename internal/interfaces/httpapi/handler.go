package httpapi

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/galero/internal/platform/logging"
	"github.com/riskibarqy/galero/internal/usecase"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultLeaderboardLimit = 10
	defaultMaxLimit         = 500
)

type LimitConfig struct {
	Default int
	Max     int
}

type Handler struct {
	championService *usecase.ChampionService
	historyService  *usecase.PlayerHistoryService
	editionService  *usecase.EditionService
	limits          LimitConfig
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	championService *usecase.ChampionService,
	historyService *usecase.PlayerHistoryService,
	editionService *usecase.EditionService,
	limits LimitConfig,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if limits.Default <= 0 {
		limits.Default = defaultLeaderboardLimit
	}
	if limits.Max < limits.Default {
		limits.Max = max(defaultMaxLimit, limits.Default)
	}

	return &Handler{
		championService: championService,
		historyService:  historyService,
		editionService:  editionService,
		limits:          limits,
		logger:          logger,
		validator:       validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// fail logs caller mistakes at warn and everything else at error before
// writing the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	mapped := mapError(err)
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("galero.error_reason", mapped.Reason))
	if mapped.HTTPStatus < http.StatusInternalServerError && mapped.HTTPStatus != http.StatusConflict {
		h.logger.WarnContext(ctx, msg, args...)
	} else {
		span.RecordError(err)
		h.logger.ErrorContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}

// leaderboardLimit reads ?limit=, falling back to the configured default.
func (h *Handler) leaderboardLimit(ctx context.Context, r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return h.limits.Default, nil
	}
	return h.parseLimit(ctx, raw, fmt.Sprintf("gte=1,lte=%d", h.limits.Max))
}

// historyLimit treats a missing ?limit= as every edition.
func (h *Handler) historyLimit(ctx context.Context, r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("limit"))
	if raw == "" {
		return math.MaxInt, nil
	}
	return h.parseLimit(ctx, raw, "gte=1")
}

func (h *Handler) parseLimit(ctx context.Context, raw, rule string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput)
	}
	if err := h.validator.VarCtx(ctx, value, rule); err != nil {
		return 0, fmt.Errorf("%w: limit is out of range: %v", usecase.ErrInvalidInput, err)
	}
	return value, nil
}

func (h *Handler) pathID(ctx context.Context, r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	if err := h.validator.VarCtx(ctx, value, "gt=0"); err != nil {
		return 0, fmt.Errorf("%w: %s must be positive", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
