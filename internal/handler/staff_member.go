package handler

import (
	"github.com/zungle102/shiftrec-sub000/internal/dto"
	cErr "github.com/zungle102/shiftrec-sub000/internal/pkg/error"
	"github.com/zungle102/shiftrec-sub000/internal/pkg/response"
	"github.com/zungle102/shiftrec-sub000/internal/service"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"
	"github.com/zungle102/shiftrec-sub000/utils/validate"

	"github.com/gin-gonic/gin"
)

type StaffMemberHandler struct {
	trace        *telemetry.Trace
	staffService *service.StaffMemberService
}

func NewStaffMemberHandler(trace *telemetry.Trace, staffService *service.StaffMemberService) *StaffMemberHandler {
	return &StaffMemberHandler{trace: trace, staffService: staffService}
}

// List 員工列表
// @Summary 取得員工列表
// @Tags StaffMember
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼（1 起算）"
// @Param size query int false "每頁筆數"
// @Param includeArchived query bool false "是否包含已封存"
// @Success 200 {object} dto.StaffMemberListResponseDto
// @Failure 500 {object} map[string]string
// @Router /staff-members [get]
func (h *StaffMemberHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	page, err := validate.GetInt64Query(c, "page", 1)
	if err != nil {
		response.AbortWithError(c, cErr.ValidateErr("page must be an integer"))
		return
	}
	size, err := validate.GetInt64Query(c, "size", 50)
	if err != nil {
		response.AbortWithError(c, cErr.ValidateErr("size must be an integer"))
		return
	}
	includeArchived, err := validate.GetBoolQuery(c, "includeArchived", false)
	if err != nil {
		response.AbortWithError(c, cErr.ValidateErr("includeArchived must be a boolean"))
		return
	}

	res, serviceErr := h.staffService.ListStaffMembers(ctx, ownerEmail(c), includeArchived, page, size)
	if serviceErr != nil {
		end(serviceErr)
		response.AbortWithError(c, serviceErr)
		return
	}
	response.Success(c, res)
}

// Get 取得員工
// @Summary 取得單一員工
// @Tags StaffMember
// @Security BearerAuth
// @Produce json
// @Param staffMemberID path string true "StaffMember ID"
// @Success 200 {object} dto.StaffMemberResponseDto
// @Failure 404 {object} map[string]string
// @Router /staff-members/{staffMemberID} [get]
func (h *StaffMemberHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "staffMemberID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.staffService.GetStaffMember(ctx, ownerEmail(c), id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Create 建立員工
// @Summary 建立員工（同帳號 email 唯一）
// @Tags StaffMember
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateStaffMemberDto true "員工資訊"
// @Success 201 {object} dto.StaffMemberResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /staff-members [post]
func (h *StaffMemberHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateStaffMemberDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.staffService.CreateStaffMember(ctx, ownerEmail(c), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新員工
// @Summary 更新員工（merge-patch）
// @Tags StaffMember
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param staffMemberID path string true "StaffMember ID"
// @Param body body dto.UpdateStaffMemberDto true "員工更新資訊"
// @Success 200 {object} dto.StaffMemberResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /staff-members/{staffMemberID} [patch]
func (h *StaffMemberHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "staffMemberID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateStaffMemberDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.staffService.UpdateStaffMember(ctx, ownerEmail(c), id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Archive 封存員工
// @Summary 封存員工
// @Tags StaffMember
// @Security BearerAuth
// @Produce json
// @Param staffMemberID path string true "StaffMember ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff-members/{staffMemberID}/archive [post]
func (h *StaffMemberHandler) Archive(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "staffMemberID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.staffService.ArchiveStaffMember(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "staff member archived successfully")
}

// Restore 還原員工
// @Summary 還原已封存員工
// @Tags StaffMember
// @Security BearerAuth
// @Produce json
// @Param staffMemberID path string true "StaffMember ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff-members/{staffMemberID}/restore [post]
func (h *StaffMemberHandler) Restore(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "staffMemberID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.staffService.RestoreStaffMember(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "staff member restored successfully")
}

// Delete 永久刪除員工
// @Summary 永久刪除員工（僅限已封存）
// @Tags StaffMember
// @Security BearerAuth
// @Produce json
// @Param staffMemberID path string true "StaffMember ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /staff-members/{staffMemberID} [delete]
func (h *StaffMemberHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "staffMemberID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.staffService.DeleteStaffMember(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "staff member deleted successfully")
}
