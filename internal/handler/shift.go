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

type ShiftHandler struct {
	trace        *telemetry.Trace
	shiftService *service.ShiftService
}

func NewShiftHandler(trace *telemetry.Trace, shiftService *service.ShiftService) *ShiftHandler {
	return &ShiftHandler{trace: trace, shiftService: shiftService}
}

// List 班表列表
// @Summary 取得班表列表（含月曆日期範圍）
// @Tags Shift
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼（1 起算）"
// @Param size query int false "每頁筆數"
// @Param includeArchived query bool false "是否包含已封存"
// @Param dateFrom query string false "服務日起（YYYY-MM-DD）"
// @Param dateTo query string false "服務日迄（YYYY-MM-DD）"
// @Success 200 {object} dto.ShiftListResponseDto
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /shifts [get]
func (h *ShiftHandler) List(c *gin.Context) {
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

	res, serviceErr := h.shiftService.ListShifts(ctx, ownerEmail(c), service.ListShiftsQuery{
		IncludeArchived: includeArchived,
		Page:            page,
		Size:            size,
		DateFrom:        c.Query("dateFrom"),
		DateTo:          c.Query("dateTo"),
	})
	if serviceErr != nil {
		end(serviceErr)
		response.AbortWithError(c, serviceErr)
		return
	}
	response.Success(c, res)
}

// Get 取得班表
// @Summary 取得單一班表（反正規化視圖）
// @Tags Shift
// @Security BearerAuth
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} dto.ShiftResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID} [get]
func (h *ShiftHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.GetShift(ctx, ownerEmail(c), id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Create 建立班表
// @Summary 建立班表
// @Tags Shift
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateShiftDto true "班表資訊"
// @Success 201 {object} dto.ShiftResponseDto
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateShiftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.CreateShift(ctx, ownerEmail(c), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新班表
// @Summary 更新班表（merge-patch，支援舊欄位名）
// @Tags Shift
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Param body body dto.UpdateShiftDto true "班表更新資訊"
// @Success 200 {object} dto.ShiftResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID} [patch]
func (h *ShiftHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateShiftDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.shiftService.UpdateShift(ctx, ownerEmail(c), id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Archive 封存班表
// @Summary 封存班表（軟刪除）
// @Tags Shift
// @Security BearerAuth
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID}/archive [post]
func (h *ShiftHandler) Archive(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.shiftService.ArchiveShift(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "shift archived successfully")
}

// Restore 還原班表
// @Summary 還原已封存班表
// @Tags Shift
// @Security BearerAuth
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID}/restore [post]
func (h *ShiftHandler) Restore(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.shiftService.RestoreShift(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "shift restored successfully")
}

// Delete 永久刪除班表
// @Summary 永久刪除班表（僅限已封存）
// @Tags Shift
// @Security BearerAuth
// @Produce json
// @Param shiftID path string true "Shift ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shifts/{shiftID} [delete]
func (h *ShiftHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "shiftID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.shiftService.DeleteShift(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "shift deleted successfully")
}
