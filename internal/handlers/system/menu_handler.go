// internal/handlers/system/menu_handler.go
package system

import (
	"coreadmin-service/internal/domain/rbac"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	menuService *service.MenuService
}

func NewMenuHandler(menuService *service.MenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// List returns the full menu management tree, buttons included.
func (h *MenuHandler) List(c *gin.Context) {
	tree, err := h.menuService.Tree(c.Request.Context(), c.Query("title"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tree)
}

func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	menu, err := h.menuService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, menu)
}

func (h *MenuHandler) Create(c *gin.Context) {
	var req rbac.MenuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	id, err := h.menuService.Create(c.Request.Context(), req, middleware.MustGetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req rbac.MenuReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.menuService.Update(c.Request.Context(), id, req, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c)
	if !ok {
		return
	}
	if err := h.menuService.Delete(c.Request.Context(), ids); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
