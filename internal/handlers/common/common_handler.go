// internal/handlers/common/common_handler.go
package common

import (
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

// CommonHandler serves the shared select-box data the front-end forms use.
type CommonHandler struct {
	dictService *service.DictService
	deptService *service.DeptService
	roleService *service.RoleService
	menuService *service.MenuService
	userService *service.UserService
}

func NewCommonHandler(
	dictService *service.DictService,
	deptService *service.DeptService,
	roleService *service.RoleService,
	menuService *service.MenuService,
	userService *service.UserService,
) *CommonHandler {
	return &CommonHandler{
		dictService: dictService,
		deptService: deptService,
		roleService: roleService,
		menuService: menuService,
		userService: userService,
	}
}

// DictOptions returns the enabled items of a dictionary as options.
func (h *CommonHandler) DictOptions(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		response.Fail(c, "400", "dict code is required")
		return
	}
	opts, err := h.dictService.Options(c.Request.Context(), code)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, opts)
}

// DeptTree returns the department tree for pickers.
func (h *CommonHandler) DeptTree(c *gin.Context) {
	tree, err := h.deptService.Tree(c.Request.Context(), c.Query("name"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tree)
}

// MenuTree returns the full menu tree for role assignment pickers.
func (h *CommonHandler) MenuTree(c *gin.Context) {
	tree, err := h.menuService.Tree(c.Request.Context(), c.Query("title"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tree)
}

// RoleOptions returns every role for assignment pickers.
func (h *CommonHandler) RoleOptions(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context(), "")
	if err != nil {
		response.FromError(c, err)
		return
	}
	opts := make([]service.LabelValue, 0, len(roles))
	for _, r := range roles {
		opts = append(opts, service.LabelValue{Label: r.Name, Value: r.ID})
	}
	response.OK(c, opts)
}

// UserOptions returns every user as nickname/id options.
func (h *CommonHandler) UserOptions(c *gin.Context) {
	opts, err := h.userService.Options(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, opts)
}
