// internal/handlers/system/option_handler.go
package system

import (
	"coreadmin-service/internal/domain/option"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type OptionHandler struct {
	optionService *service.OptionService
}

func NewOptionHandler(optionService *service.OptionService) *OptionHandler {
	return &OptionHandler{optionService: optionService}
}

func (h *OptionHandler) List(c *gin.Context) {
	opts, err := h.optionService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, opts)
}

// Update sets a batch of option values.
func (h *OptionHandler) Update(c *gin.Context) {
	var reqs []option.UpdateReq
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.optionService.Update(c.Request.Context(), reqs, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

// Reset restores option defaults for a category and/or code.
func (h *OptionHandler) Reset(c *gin.Context) {
	var req option.ResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.optionService.Reset(c.Request.Context(), req); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
