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

type ClientHandler struct {
	trace         *telemetry.Trace
	clientService *service.ClientService
}

func NewClientHandler(trace *telemetry.Trace, clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{trace: trace, clientService: clientService}
}

// List 客戶列表
// @Summary 取得客戶列表
// @Tags Client
// @Security BearerAuth
// @Produce json
// @Param page query int false "頁碼（1 起算）"
// @Param size query int false "每頁筆數"
// @Param includeArchived query bool false "是否包含已封存"
// @Success 200 {object} dto.ClientListResponseDto
// @Failure 500 {object} map[string]string
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
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

	res, serviceErr := h.clientService.ListClients(ctx, ownerEmail(c), includeArchived, page, size)
	if serviceErr != nil {
		end(serviceErr)
		response.AbortWithError(c, serviceErr)
		return
	}
	response.Success(c, res)
}

// Get 取得客戶
// @Summary 取得單一客戶
// @Tags Client
// @Security BearerAuth
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponseDto
// @Failure 404 {object} map[string]string
// @Router /clients/{clientID} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "clientID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.clientService.GetClient(ctx, ownerEmail(c), id)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Create 建立客戶
// @Summary 建立客戶（同帳號名稱唯一）
// @Tags Client
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body dto.CreateClientDto true "客戶資訊"
// @Success 201 {object} dto.ClientResponseDto
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	var req dto.CreateClientDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.clientService.CreateClient(ctx, ownerEmail(c), &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Create(c, res)
}

// Update 更新客戶
// @Summary 更新客戶（merge-patch）
// @Tags Client
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param clientID path string true "Client ID"
// @Param body body dto.UpdateClientDto true "客戶更新資訊"
// @Success 200 {object} dto.ClientResponseDto
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /clients/{clientID} [patch]
func (h *ClientHandler) Update(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "clientID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	var req dto.UpdateClientDto
	if cause, respErr := validate.BindAndValidate(c, &req); cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	res, err := h.clientService.UpdateClient(ctx, ownerEmail(c), id, &req)
	if err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, res)
}

// Archive 封存客戶
// @Summary 封存客戶
// @Tags Client
// @Security BearerAuth
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/{clientID}/archive [post]
func (h *ClientHandler) Archive(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "clientID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.clientService.ArchiveClient(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "client archived successfully")
}

// Restore 還原客戶
// @Summary 還原已封存客戶
// @Tags Client
// @Security BearerAuth
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/{clientID}/restore [post]
func (h *ClientHandler) Restore(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "clientID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.clientService.RestoreClient(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "client restored successfully")
}

// Delete 永久刪除客戶
// @Summary 永久刪除客戶（僅限已封存）
// @Tags Client
// @Security BearerAuth
// @Produce json
// @Param clientID path string true "Client ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /clients/{clientID} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	ctx, _, end := h.trace.WithSpan(c)
	defer end(nil)

	id, cause, respErr := validate.ParseObjectID(c, "clientID")
	if cause != nil {
		end(cause)
		response.AbortWithError(c, respErr)
		return
	}

	if err := h.clientService.DeleteClient(ctx, ownerEmail(c), id); err != nil {
		response.AbortWithError(c, err)
		return
	}
	response.Success(c, "client deleted successfully")
}
