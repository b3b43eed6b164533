package handler

import (
	"github.com/zungle102/shiftrec-sub000/internal/dto"
	"github.com/zungle102/shiftrec-sub000/internal/pkg/response"
	"github.com/zungle102/shiftrec-sub000/internal/service"
	"github.com/zungle102/shiftrec-sub000/internal/telemetry"
	"github.com/zungle102/shiftrec-sub000/utils/validate"

	"github.com/gin-gonic/gin"
)

type ClientTypeHandler struct {
	trace             *telemetry.Trace
	clientTypeService *service.ClientTypeService
}

func NewClientTypeHandler(trace *telemetry.Trace, clientTypeService *service.ClientTypeService) *ClientTypeHandler {
	return &ClientTypeHandler{trace: trace, clientTypeService: clientTypeService}
}

// List 客戶類型列表
// @Summary 取得客戶類型（查表）
// @Tags ClientType
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.ClientTypeResponseDto
// @Failure 500 {object} map[string]string
// @Router /client-types [get]
func (h *ClientTypeHandler) List(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	res, err := h.clientTypeService.ListClientTypes(ctx, ownerEmail(c))
	if err != nil {
		end(err)
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Create 建立客戶類型
// @Summary 建立客戶類型
// @Tags ClientType
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateClientTypeDto true "客戶類型"
// @Success 201 {object} dto.ClientTypeResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /client-types [post]
func (h *ClientTypeHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateClientTypeDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.clientTypeService.CreateClientType(ctx, ownerEmail(c), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}
