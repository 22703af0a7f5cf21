package usecase

import (
	"context"
	"errors"
	"salomao_ai/internal/domain/entities"
	"salomao_ai/internal/usecase/interfaces"
	"strings"
)

var (
	ErrReportNotFound         = errors.New("report not found")
	ErrInvalidReportID        = errors.New("invalid report id")
	ErrReportStoreUnavailable = errors.New("report storage not configured")
)

// IReportUseCase reads reports stored by finished conversations.

type IReportUseCase interface {
	GetByID(ctx context.Context, id string) (entities.StoredReport, error)
}

type ReportUseCase struct {
	repo interfaces.IReportRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(repo interfaces.IReportRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo}
}

func (u *ReportUseCase) GetByID(ctx context.Context, id string) (entities.StoredReport, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.StoredReport{}, ErrInvalidReportID
	}
	if u.repo == nil {
		return entities.StoredReport{}, ErrReportStoreUnavailable
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.StoredReport{}, err
	}
	if r.ID == "" {
		return entities.StoredReport{}, ErrReportNotFound
	}
	return r, nil
}
