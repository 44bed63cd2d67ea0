package services

import (
	"context"
	"errors"
	"log/slog"
	"unicode/utf8"

	"github.com/SscSPs/hardware_shop_erp/internal/apperrors"
	"github.com/SscSPs/hardware_shop_erp/internal/core/domain"
	portsrepo "github.com/SscSPs/hardware_shop_erp/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/hardware_shop_erp/internal/core/ports/services"
	"github.com/SscSPs/hardware_shop_erp/internal/dto"
)

const (
	BackendRunning      = "running"
	DatabaseConnected   = "connected"
	DatabaseUnavailable = "unavailable"

	maxHealthErrorLen = 80
)

type healthService struct {
	BaseService
	healthRepo portsrepo.HealthRepository
}

// NewHealthService reports on healthRepo. A nil repo reports the store unavailable.
func NewHealthService(healthRepo portsrepo.HealthRepository) portssvc.HealthSvc {
	return &healthService{healthRepo: healthRepo}
}

var _ portssvc.HealthSvc = (*healthService)(nil)

func (s *healthService) Check(ctx context.Context) dto.HealthResponse {
	resp := dto.HealthResponse{Backend: BackendRunning, Database: DatabaseUnavailable}
	if s.healthRepo == nil {
		return resp
	}

	if err := s.healthRepo.Ping(ctx); err != nil {
		s.LogWarn(ctx, "Store health check failed", slog.String("error", err.Error()))
		if !errors.Is(err, apperrors.ErrStorageUnavailable) {
			resp.Database = "error: " + truncate(err.Error(), maxHealthErrorLen)
		}
		return resp
	}

	collections, err := s.healthRepo.ListCollections(ctx)
	if err != nil {
		s.LogWarn(ctx, "Failed to list collections", slog.String("error", err.Error()))
		resp.Database = "error: " + truncate(err.Error(), maxHealthErrorLen)
		return resp
	}

	resp.Database = DatabaseConnected
	resp.Collections = collections
	return resp
}

func (s *healthService) Collections() []string {
	return domain.Collections()
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
