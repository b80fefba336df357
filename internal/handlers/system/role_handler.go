// internal/handlers/system/role_handler.go
package system

import (
	"coreadmin-service/internal/domain/rbac"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) List(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, roles)
}

func (h *RoleHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	role, err := h.roleService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, role)
}

func (h *RoleHandler) Create(c *gin.Context) {
	var req rbac.RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	id, err := h.roleService.Create(c.Request.Context(), req, middleware.MustGetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

func (h *RoleHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req rbac.RoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.roleService.Update(c.Request.Context(), id, req, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c)
	if !ok {
		return
	}
	if err := h.roleService.Delete(c.Request.Context(), ids); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
