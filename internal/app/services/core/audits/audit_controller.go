package audits

import (
	"context"
	"net/http"
	"time"

	"audit-service/internal/app/contracts"
	"audit-service/internal/pkg/constvars"
	"audit-service/internal/pkg/dto/requests"
	"audit-service/internal/pkg/exceptions"
	"audit-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuditController struct {
	Log          *zap.Logger
	AuditUsecase contracts.AuditUsecase
}

func NewAuditController(logger *zap.Logger, auditUsecase contracts.AuditUsecase) *AuditController {
	return &AuditController{
		Log:          logger,
		AuditUsecase: auditUsecase,
	}
}

func (ctrl *AuditController) CreateAudit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateAudit)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuditUsecase.CreateAudit(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAuditSuccessMessage, response)
}

func (ctrl *AuditController) FindAuditByID(w http.ResponseWriter, r *http.Request) {
	auditID := chi.URLParam(r, constvars.URLParamAuditID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuditUsecase.FindAuditByID(ctx, auditID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAuditSuccessMessage, response)
}

func (ctrl *AuditController) FindAllAudits(w http.ResponseWriter, r *http.Request) {
	request := &requests.ListAudits{
		Status:     r.URL.Query().Get(constvars.QueryParamStatus),
		AssignedTo: r.URL.Query().Get(constvars.QueryParamAssignedTo),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuditUsecase.FindAllAudits(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListAuditSuccessMessage, response)
}

func (ctrl *AuditController) UpdateAudit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.UpdateAudit)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.AuditID = chi.URLParam(r, constvars.URLParamAuditID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuditUsecase.UpdateAudit(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAuditSuccessMessage, response)
}

func (ctrl *AuditController) SubmitAudit(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SubmitAudit)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.AuditID = chi.URLParam(r, constvars.URLParamAuditID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AuditUsecase.SubmitAudit(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitAuditSuccessMessage, response)
}

func (ctrl *AuditController) DeleteAuditByID(w http.ResponseWriter, r *http.Request) {
	auditID := chi.URLParam(r, constvars.URLParamAuditID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := ctrl.AuditUsecase.DeleteAuditByID(ctx, auditID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAuditSuccessMessage, nil)
}
