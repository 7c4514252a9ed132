package templates

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"audit-service/internal/app/contracts"
	"audit-service/internal/app/models"
	"audit-service/internal/pkg/constvars"
	"audit-service/internal/pkg/dto/requests"
	"audit-service/internal/pkg/exceptions"
	"audit-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TemplateController struct {
	Log             *zap.Logger
	TemplateUsecase contracts.TemplateUsecase
}

func NewTemplateController(logger *zap.Logger, templateUsecase contracts.TemplateUsecase) *TemplateController {
	return &TemplateController{
		Log:             logger,
		TemplateUsecase: templateUsecase,
	}
}

func (ctrl *TemplateController) CreateTemplate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateTemplate)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	createdBy := sessionUserID(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.CreateTemplate(ctx, request, createdBy)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateTemplateSuccessMessage, response)
}

func (ctrl *TemplateController) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateTemplate)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.TemplateID = chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.UpdateTemplate(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateTemplateSuccessMessage, response)
}

func (ctrl *TemplateController) FindTemplateByID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.FindTemplateByID(ctx, templateID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindTemplateSuccessMessage, response)
}

func (ctrl *TemplateController) FindAllTemplates(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListTemplates{
		Category: r.URL.Query().Get(constvars.QueryParamCategory),
	}
	if rawPublished := r.URL.Query().Get(constvars.QueryParamPublished); rawPublished != "" {
		published, err := strconv.ParseBool(rawPublished)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
		request.Published = &published
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.FindAllTemplates(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListTemplateSuccessMessage, response)
}

func (ctrl *TemplateController) DeleteTemplateByID(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.TemplateUsecase.DeleteTemplateByID(ctx, templateID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteTemplateSuccessMessage, nil)
}

func (ctrl *TemplateController) PublishTemplate(w http.ResponseWriter, r *http.Request) {
	templateID := chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.PublishTemplate(ctx, templateID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PublishTemplateSuccessMessage, response)
}

func (ctrl *TemplateController) ComputeVisibility(w http.ResponseWriter, r *http.Request) {
	request := new(requests.ComputeVisibility)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.TemplateID = chi.URLParam(r, constvars.URLParamTemplateID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TemplateUsecase.ComputeVisibility(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VisibilitySuccessMessage, response)
}

func sessionUserID(r *http.Request) string {
	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok || session == nil {
		return ""
	}
	return session.UserID
}
