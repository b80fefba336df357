// internal/handlers/system/user_handler.go
package system

import (
	"coreadmin-service/internal/domain/user"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) List(c *gin.Context) {
	q := user.PageQuery{
		Description: c.Query("description"),
		Status:      queryInt16Ptr(c, "status"),
		DeptID:      queryInt64Ptr(c, "deptId"),
		Page:        queryInt(c, "page", 1),
		Size:        queryInt(c, "size", 10),
	}
	result, err := h.userService.Page(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	resp, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, resp)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	id, err := h.userService.Create(c.Request.Context(), req, middleware.MustGetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req user.UpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.userService.Update(c.Request.Context(), id, req, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c)
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), ids); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

// ResetPassword sets a user's password to a new RSA-encrypted value.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req user.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.userService.ResetPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

// UpdateRoles reassigns a user's roles.
func (h *UserHandler) UpdateRoles(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req user.RoleUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.userService.UpdateRoles(c.Request.Context(), id, req.RoleIDs); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
