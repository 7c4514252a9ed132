package contracts

import (
	"context"

	"audit-service/internal/app/models"
	"audit-service/internal/pkg/dto/requests"
	"audit-service/internal/pkg/dto/responses"
)

type TemplateUsecase interface {
	CreateTemplate(ctx context.Context, request *requests.CreateTemplate, createdBy string) (*models.Template, error)
	UpdateTemplate(ctx context.Context, request *requests.UpdateTemplate) (*models.Template, error)
	FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error)
	FindAllTemplates(ctx context.Context, request *requests.ListTemplates) ([]models.Template, error)
	DeleteTemplateByID(ctx context.Context, templateID string) error
	PublishTemplate(ctx context.Context, templateID string) (*models.Template, error)
	ComputeVisibility(ctx context.Context, request *requests.ComputeVisibility) (*responses.Visibility, error)
}

type TemplateRepository interface {
	CreateTemplate(ctx context.Context, template *models.Template) (string, error)
	UpdateTemplate(ctx context.Context, template *models.Template) error
	FindByID(ctx context.Context, templateID string) (*models.Template, error)
	FindAll(ctx context.Context, category string, published *bool) ([]models.Template, error)
	DeleteByID(ctx context.Context, templateID string) error
}
