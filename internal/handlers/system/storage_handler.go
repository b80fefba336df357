// internal/handlers/system/storage_handler.go
package system

import (
	"coreadmin-service/internal/domain/storage"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type StorageHandler struct {
	storageService *service.StorageService
}

func NewStorageHandler(storageService *service.StorageService) *StorageHandler {
	return &StorageHandler{storageService: storageService}
}

func (h *StorageHandler) List(c *gin.Context) {
	storages, err := h.storageService.List(c.Request.Context(), c.Query("description"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, storages)
}

func (h *StorageHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.storageService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, st)
}

func (h *StorageHandler) Create(c *gin.Context) {
	var req storage.Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	id, err := h.storageService.Create(c.Request.Context(), req, middleware.MustGetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

func (h *StorageHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req storage.Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.storageService.Update(c.Request.Context(), id, req, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *StorageHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c)
	if !ok {
		return
	}
	if err := h.storageService.Delete(c.Request.Context(), ids); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
