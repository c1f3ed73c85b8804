package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	memberUsecases "gymdesk/internal/application/member/usecases"
	"gymdesk/internal/shared/biztime"
	apperrors "gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type MemberHandler struct {
	enrollMemberUC    enrollMemberUseCase
	getMemberUC       getMemberUseCase
	listMembersUC     listMembersUseCase
	updateMemberUC    updateMemberUseCase
	deleteMemberUC    deleteMemberUseCase
	renewMembershipUC renewMembershipUseCase
	logger            logger.Interface
}

func NewMemberHandler(
	enrollMemberUC enrollMemberUseCase,
	getMemberUC getMemberUseCase,
	listMembersUC listMembersUseCase,
	updateMemberUC updateMemberUseCase,
	deleteMemberUC deleteMemberUseCase,
	renewMembershipUC renewMembershipUseCase,
	logger logger.Interface,
) *MemberHandler {
	return &MemberHandler{
		enrollMemberUC:    enrollMemberUC,
		getMemberUC:       getMemberUC,
		listMembersUC:     listMembersUC,
		updateMemberUC:    updateMemberUC,
		deleteMemberUC:    deleteMemberUC,
		renewMembershipUC: renewMembershipUC,
		logger:            logger,
	}
}

// EnrollMemberRequest is the enrollment form: member details plus the
// selected plan. StartDate is optional, formatted YYYY-MM-DD.
type EnrollMemberRequest struct {
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
	PlanID           string `json:"plan_id" binding:"required"`
	StartDate        string `json:"start_date"`
}

type UpdateMemberRequest struct {
	FirstName        string `json:"first_name" binding:"required"`
	LastName         string `json:"last_name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergency_contact"`
}

type RenewMembershipRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// EnrollMember creates a member and their first plan assignment. When the
// member is created but the assignment fails, the response carries both the
// persisted member and the warning, under 207 Multi-Status.
func (h *MemberHandler) EnrollMember(c *gin.Context) {
	var req EnrollMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for enrollment", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := memberUsecases.EnrollMemberCommand{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
		PlanSID:          req.PlanID,
	}
	if req.StartDate != "" {
		startDate, err := biztime.ParseDate(req.StartDate)
		if err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid start_date", err.Error()))
			return
		}
		cmd.StartDate = &startDate
	}

	result, err := h.enrollMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		if apperrors.IsPartialFailureError(err) && result != nil {
			appErr := apperrors.GetAppError(err)
			c.JSON(appErr.Code, utils.APIResponse{
				Success: false,
				Data:    result,
				Error: &utils.ErrorInfo{
					Type:    string(appErr.Type),
					Message: appErr.Message,
					Details: appErr.Details,
				},
			})
			return
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member enrolled successfully")
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	result, err := h.getMemberUC.ExecuteBySID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result, "")
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listMembersUC.Execute(c.Request.Context(), memberUsecases.ListMembersQuery{
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Members, result.Total, pagination.Page, pagination.PageSize)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	sid := c.Param("id")

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update member", "member_id", sid, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateMemberUC.Execute(c.Request.Context(), memberUsecases.UpdateMemberCommand{
		SID:              sid,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		EmergencyContact: req.EmergencyContact,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member updated successfully", result)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	if err := h.deleteMemberUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil, "Member deleted successfully")
}

// RenewMembership closes the member's current assignment and opens a new
// term on the selected plan.
func (h *MemberHandler) RenewMembership(c *gin.Context) {
	sid := c.Param("id")

	var req RenewMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for renewal", "member_id", sid, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.renewMembershipUC.Execute(c.Request.Context(), memberUsecases.RenewMembershipCommand{
		MemberSID: sid,
		PlanSID:   req.PlanID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Membership renewed successfully")
}
