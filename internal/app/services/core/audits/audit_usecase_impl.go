package audits

import (
	"context"
	"sync"
	"time"

	"audit-service/internal/app/config"
	"audit-service/internal/app/contracts"
	"audit-service/internal/app/models"
	"audit-service/internal/pkg/constvars"
	"audit-service/internal/pkg/dto/requests"
	"audit-service/internal/pkg/dto/responses"
	"audit-service/internal/pkg/engine"
	"audit-service/internal/pkg/exceptions"
	"audit-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type auditUsecase struct {
	AuditRepository contracts.AuditRepository
	TemplateUsecase contracts.TemplateUsecase
	EventPublisher  contracts.EventPublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
}

var (
	auditUsecaseInstance contracts.AuditUsecase
	onceAuditUsecase     sync.Once
)

func NewAuditUsecase(
	auditRepository contracts.AuditRepository,
	templateUsecase contracts.TemplateUsecase,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuditUsecase {
	onceAuditUsecase.Do(func() {
		auditUsecaseInstance = &auditUsecase{
			AuditRepository: auditRepository,
			TemplateUsecase: templateUsecase,
			EventPublisher:  eventPublisher,
			InternalConfig:  internalConfig,
			Log:             logger,
		}
	})
	return auditUsecaseInstance
}

func (uc *auditUsecase) CreateAudit(ctx context.Context, request *requests.CreateAudit) (*models.Audit, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	// The template reference must resolve at evaluation time, so reject
	// audits pointing at templates that do not exist.
	if _, err := uc.TemplateUsecase.FindTemplateByID(ctx, request.TemplateID); err != nil {
		return nil, err
	}

	audit := &models.Audit{
		TemplateID: request.TemplateID,
		AssignedTo: request.AssignedTo,
		Location: models.AuditLocation{
			StoreName: request.Location.StoreName,
			Address:   request.Location.Address,
		},
		Status:    models.AuditStatusPending,
		Responses: models.ResponseSet{},
	}

	auditID, err := uc.AuditRepository.CreateAudit(ctx, audit)
	if err != nil {
		return nil, err
	}
	audit.ID = auditID
	return audit, nil
}

func (uc *auditUsecase) FindAuditByID(ctx context.Context, auditID string) (*models.Audit, error) {
	return uc.findAudit(ctx, auditID)
}

func (uc *auditUsecase) FindAllAudits(ctx context.Context, request *requests.ListAudits) ([]models.Audit, error) {
	return uc.AuditRepository.FindAll(ctx, request.Status, request.AssignedTo)
}

// UpdateAudit saves in-progress responses. The first save moves the audit
// from Pending to InProgress; a Completed audit accepts no further changes.
func (uc *auditUsecase) UpdateAudit(ctx context.Context, request *requests.UpdateAudit) (*models.Audit, error) {
	audit, err := uc.findAudit(ctx, request.AuditID)
	if err != nil {
		return nil, err
	}
	if audit.IsCompleted() {
		return nil, exceptions.ErrAuditAlreadyCompleted(nil)
	}

	if request.Responses != nil {
		audit.Responses = models.ResponseSet(request.Responses)
	}
	if request.Location != nil {
		audit.Location = models.AuditLocation{
			StoreName: request.Location.StoreName,
			Address:   request.Location.Address,
		}
	}
	audit.Status = models.AuditStatusInProgress

	if err := uc.AuditRepository.UpdateAudit(ctx, audit); err != nil {
		return nil, err
	}
	return audit, nil
}

// SubmitAudit freezes the response set and runs the full evaluation pipeline:
// visibility, mandatory validation, then scoring. A validation failure leaves
// the audit untouched. On success the audit transitions to Completed exactly
// once, with SubmittedAt set at that transition.
func (uc *auditUsecase) SubmitAudit(ctx context.Context, request *requests.SubmitAudit) (*responses.SubmitAudit, error) {
	audit, err := uc.findAudit(ctx, request.AuditID)
	if err != nil {
		return nil, err
	}
	if audit.IsCompleted() {
		return nil, exceptions.ErrAuditAlreadyCompleted(nil)
	}

	tpl, err := uc.TemplateUsecase.FindTemplateByID(ctx, audit.TemplateID)
	if err != nil {
		return nil, err
	}

	finalResponses := audit.Responses
	if request.Responses != nil {
		finalResponses = models.ResponseSet(request.Responses)
	}

	visible := engine.ComputeVisible(tpl, finalResponses)
	if result := engine.Validate(tpl, finalResponses, visible); !result.Valid {
		return nil, exceptions.ErrMandatoryQuestionUnfilled(result.FailedQuestion)
	}

	now := time.Now()
	audit.Responses = finalResponses
	audit.Status = models.AuditStatusCompleted
	audit.SubmittedAt = &now

	if scoreResult := engine.Score(tpl, finalResponses); scoreResult != nil {
		audit.Score = &scoreResult.Total
		audit.SectionScores = scoreResult.BySection
	}

	if err := uc.AuditRepository.UpdateAudit(ctx, audit); err != nil {
		return nil, err
	}

	if err := uc.EventPublisher.Publish(ctx, constvars.EventAuditCompleted, audit); err != nil {
		uc.Log.Warn("failed to publish audit completed event",
			zap.String("audit_id", audit.ID),
			zap.Error(err),
		)
	}

	return &responses.SubmitAudit{
		Audit:         audit,
		Score:         audit.Score,
		SectionScores: audit.SectionScores,
	}, nil
}

func (uc *auditUsecase) DeleteAuditByID(ctx context.Context, auditID string) error {
	return uc.AuditRepository.DeleteByID(ctx, auditID)
}

func (uc *auditUsecase) findAudit(ctx context.Context, auditID string) (*models.Audit, error) {
	audit, err := uc.AuditRepository.FindByID(ctx, auditID)
	if err != nil {
		return nil, err
	}
	if audit == nil {
		return nil, exceptions.ErrAuditNotFound(nil)
	}
	return audit, nil
}
