package samples

import (
	"context"
	"net/http"
	"time"

	"audit-service/internal/app/contracts"
	"audit-service/internal/pkg/constvars"
	"audit-service/internal/pkg/exceptions"
	"audit-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type SampleController struct {
	Log           *zap.Logger
	SampleUsecase contracts.SampleUsecase
}

func NewSampleController(logger *zap.Logger, sampleUsecase contracts.SampleUsecase) *SampleController {
	return &SampleController{
		Log:           logger,
		SampleUsecase: sampleUsecase,
	}
}

func (ctrl *SampleController) RetailExecutionTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.SampleUsecase.RetailExecutionTemplate(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SampleTemplateSuccessMessage, response)
}
