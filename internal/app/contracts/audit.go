package contracts

import (
	"context"

	"audit-service/internal/app/models"
	"audit-service/internal/pkg/dto/requests"
	"audit-service/internal/pkg/dto/responses"
)

type AuditUsecase interface {
	CreateAudit(ctx context.Context, request *requests.CreateAudit) (*models.Audit, error)
	FindAuditByID(ctx context.Context, auditID string) (*models.Audit, error)
	FindAllAudits(ctx context.Context, request *requests.ListAudits) ([]models.Audit, error)
	UpdateAudit(ctx context.Context, request *requests.UpdateAudit) (*models.Audit, error)
	SubmitAudit(ctx context.Context, request *requests.SubmitAudit) (*responses.SubmitAudit, error)
	DeleteAuditByID(ctx context.Context, auditID string) error
}

type AuditRepository interface {
	CreateAudit(ctx context.Context, audit *models.Audit) (string, error)
	UpdateAudit(ctx context.Context, audit *models.Audit) error
	FindByID(ctx context.Context, auditID string) (*models.Audit, error)
	FindAll(ctx context.Context, status, assignedTo string) ([]models.Audit, error)
	DeleteByID(ctx context.Context, auditID string) error
}
