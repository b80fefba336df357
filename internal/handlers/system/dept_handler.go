// internal/handlers/system/dept_handler.go
package system

import (
	"coreadmin-service/internal/domain/dept"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type DeptHandler struct {
	deptService *service.DeptService
}

func NewDeptHandler(deptService *service.DeptService) *DeptHandler {
	return &DeptHandler{deptService: deptService}
}

func (h *DeptHandler) List(c *gin.Context) {
	tree, err := h.deptService.Tree(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tree)
}

func (h *DeptHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.deptService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, d)
}

func (h *DeptHandler) Create(c *gin.Context) {
	var req dept.Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	id, err := h.deptService.Create(c.Request.Context(), req, middleware.MustGetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

func (h *DeptHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dept.Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.deptService.Update(c.Request.Context(), id, req, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *DeptHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c)
	if !ok {
		return
	}
	if err := h.deptService.Delete(c.Request.Context(), ids); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
