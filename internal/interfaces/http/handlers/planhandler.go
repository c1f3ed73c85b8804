package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	planUsecases "gymdesk/internal/application/plan/usecases"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type PlanHandler struct {
	savePlanUC       savePlanUseCase
	getPlanUC        getPlanUseCase
	listPlansUC      listPlansUseCase
	getActivePlansUC getActivePlansUseCase
	setPlanStatusUC  setPlanStatusUseCase
	deletePlanUC     deletePlanUseCase
	logger           logger.Interface
}

func NewPlanHandler(
	savePlanUC savePlanUseCase,
	getPlanUC getPlanUseCase,
	listPlansUC listPlansUseCase,
	getActivePlansUC getActivePlansUseCase,
	setPlanStatusUC setPlanStatusUseCase,
	deletePlanUC deletePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		savePlanUC:       savePlanUC,
		getPlanUC:        getPlanUC,
		listPlansUC:      listPlansUC,
		getActivePlansUC: getActivePlansUC,
		setPlanStatusUC:  setPlanStatusUC,
		deletePlanUC:     deletePlanUC,
		logger:           logger,
	}
}

// SavePlanRequest is the plan editor form. Duration is entered as a value
// and unit; the stored plan always reports whole months.
type SavePlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PriceCents    int64    `json:"price_cents" binding:"min=0"`
	DurationValue int      `json:"duration_value" binding:"required,min=1"`
	DurationUnit  string   `json:"duration_unit" binding:"required,oneof=day week month"`
	Features      []string `json:"features" binding:"required,min=1"`
}

type UpdatePlanStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.savePlanUC.Execute(c.Request.Context(), planUsecases.SavePlanCommand{
		Name:          req.Name,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		DurationValue: req.DurationValue,
		DurationUnit:  req.DurationUnit,
		Features:      req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	sid := c.Param("id")

	var req SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "plan_id", sid, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.savePlanUC.Execute(c.Request.Context(), planUsecases.SavePlanCommand{
		SID:           sid,
		Name:          req.Name,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		DurationValue: req.DurationValue,
		DurationUnit:  req.DurationUnit,
		Features:      req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	result, err := h.getPlanUC.ExecuteBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "")
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := planUsecases.ListPlansQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	result, err := h.listPlansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Plans, result.Total, pagination.Page, pagination.PageSize)
}

// GetActivePlans returns the catalog offered on the enrollment form.
func (h *PlanHandler) GetActivePlans(c *gin.Context) {
	result, err := h.getActivePlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "")
}

func (h *PlanHandler) UpdatePlanStatus(c *gin.Context) {
	sid := c.Param("id")

	var req UpdatePlanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for plan status", "plan_id", sid, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	if err := h.setPlanStatusUC.Execute(c.Request.Context(), sid, req.Status == "active"); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Plan status updated successfully")
}

// DeletePlan removes a plan from the catalog. Existing assignments keep
// running on their recorded dates.
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.deletePlanUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Plan deleted successfully")
}
