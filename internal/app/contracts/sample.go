package contracts

import (
	"context"

	"audit-service/internal/app/models"
)

// SampleUsecase serves the built-in starter templates shipped with the
// service. Samples are static and need no storage.
type SampleUsecase interface {
	RetailExecutionTemplate(ctx context.Context) (*models.Template, error)
}
