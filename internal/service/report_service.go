package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/limbo/workout/internal/repository"
	"github.com/limbo/workout/pkg/entity"
)

type ReportService struct {
	logs repository.LogsRepositoryI
}

func NewReportService(logs repository.LogsRepositoryI) *ReportService {
	if logs == nil {
		log.Fatal("provided nil logsRepo")
	}
	return &ReportService{logs: logs}
}

// GenerateProgressReport returns zero totals for a user without logs.
func (rs *ReportService) GenerateProgressReport(ctx context.Context, userID uuid.UUID) (*entity.ProgressReport, error) {
	report, err := rs.logs.ProgressReport(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("logs repository error: %w", err)
	}
	return report, nil
}
