package templates

import (
	"context"
	"fmt"
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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type templateUsecase struct {
	TemplateRepository contracts.TemplateRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	templateUsecaseInstance contracts.TemplateUsecase
	onceTemplateUsecase     sync.Once
)

func NewTemplateUsecase(
	templateRepository contracts.TemplateRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.TemplateUsecase {
	onceTemplateUsecase.Do(func() {
		templateUsecaseInstance = &templateUsecase{
			TemplateRepository: templateRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return templateUsecaseInstance
}

func (uc *templateUsecase) CreateTemplate(ctx context.Context, request *requests.CreateTemplate, createdBy string) (*models.Template, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	tpl := utils.MapCreateTemplateRequestToModel(request, createdBy)
	if err := utils.ValidateTemplateDefinition(tpl); err != nil {
		return nil, err
	}

	templateID, err := uc.TemplateRepository.CreateTemplate(ctx, tpl)
	if err != nil {
		return nil, err
	}
	tpl.ID = templateID
	return tpl, nil
}

func (uc *templateUsecase) UpdateTemplate(ctx context.Context, request *requests.UpdateTemplate) (*models.Template, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	existing, err := uc.findTemplate(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}

	tpl := utils.MapCreateTemplateRequestToModel(&request.CreateTemplate, existing.CreatedBy)
	tpl.ID = existing.ID
	tpl.IsPublished = existing.IsPublished
	if err := utils.ValidateTemplateDefinition(tpl); err != nil {
		return nil, err
	}

	if err := uc.TemplateRepository.UpdateTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx, tpl.ID)
	return tpl, nil
}

func (uc *templateUsecase) FindTemplateByID(ctx context.Context, templateID string) (*models.Template, error) {
	return uc.findTemplate(ctx, templateID)
}

func (uc *templateUsecase) FindAllTemplates(ctx context.Context, request *requests.ListTemplates) ([]models.Template, error) {
	return uc.TemplateRepository.FindAll(ctx, request.Category, request.Published)
}

func (uc *templateUsecase) DeleteTemplateByID(ctx context.Context, templateID string) error {
	if err := uc.TemplateRepository.DeleteByID(ctx, templateID); err != nil {
		return err
	}
	uc.invalidateCache(ctx, templateID)
	return nil
}

func (uc *templateUsecase) PublishTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	tpl, err := uc.findTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}

	tpl.IsPublished = true
	if err := uc.TemplateRepository.UpdateTemplate(ctx, tpl); err != nil {
		return nil, err
	}
	uc.invalidateCache(ctx, templateID)
	return tpl, nil
}

// ComputeVisibility runs the visibility engine against a response snapshot
// and reports, in section-then-question order, which questions are currently
// visible and which of those are mandatory.
func (uc *templateUsecase) ComputeVisibility(ctx context.Context, request *requests.ComputeVisibility) (*responses.Visibility, error) {
	tpl, err := uc.findTemplate(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}

	visible := engine.ComputeVisible(tpl, models.ResponseSet(request.Responses))

	result := &responses.Visibility{
		VisibleQuestionIDs:   make([]string, 0, len(visible)),
		MandatoryQuestionIDs: make([]string, 0),
	}
	for _, section := range tpl.Sections {
		for _, question := range section.Questions {
			if !visible.Contains(question.QuestionID) {
				continue
			}
			result.VisibleQuestionIDs = append(result.VisibleQuestionIDs, question.QuestionID)
			if question.Mandatory {
				result.MandatoryQuestionIDs = append(result.MandatoryQuestionIDs, question.QuestionID)
			}
		}
	}
	return result, nil
}

// findTemplate reads through the redis cache. Cache failures fall back to
// mongo so a degraded redis never breaks reads.
func (uc *templateUsecase) findTemplate(ctx context.Context, templateID string) (*models.Template, error) {
	key := fmt.Sprintf(constvars.RedisKeyTemplateFormat, templateID)

	cached, err := uc.RedisRepository.Get(ctx, key)
	if err == nil && cached != "" {
		tpl := new(models.Template)
		if err := json.Unmarshal([]byte(cached), tpl); err == nil {
			return tpl, nil
		}
	}

	tpl, err := uc.TemplateRepository.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		return nil, exceptions.ErrTemplateNotFound(nil)
	}

	ttl := time.Duration(uc.InternalConfig.App.TemplateCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, key, tpl, ttl); err != nil {
		uc.Log.Warn("failed to cache template", zap.String("template_id", templateID), zap.Error(err))
	}
	return tpl, nil
}

func (uc *templateUsecase) invalidateCache(ctx context.Context, templateID string) {
	key := fmt.Sprintf(constvars.RedisKeyTemplateFormat, templateID)
	if err := uc.RedisRepository.Delete(ctx, key); err != nil {
		uc.Log.Warn("failed to invalidate template cache", zap.String("template_id", templateID), zap.Error(err))
	}
}
