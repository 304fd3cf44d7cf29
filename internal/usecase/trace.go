package usecase

import "github.com/riskibarqy/galero/internal/platform/tracing"

var tracer = tracing.New("github.com/riskibarqy/galero/internal/usecase", "usecase.")
