package interfaces

import (
	"context"
	"salomao_ai/internal/domain/entities"
)

//go:generate mockgen -source=report_repository_interface.go -destination=mocks/report_repository_interface.go -package=mock_interfaces

// IReportRepository abstracts DynamoDB persistence for finished reports.
//
// GetByID returns a zero StoredReport (empty ID) when nothing is stored.

type IReportRepository interface {
	Create(ctx context.Context, r entities.StoredReport) (entities.StoredReport, error)
	GetByID(ctx context.Context, id string) (entities.StoredReport, error)
}
