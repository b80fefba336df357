// internal/handlers/system/dict_handler.go
package system

import (
	"strconv"

	"coreadmin-service/internal/domain/dict"
	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type DictHandler struct {
	dictService *service.DictService
}

func NewDictHandler(dictService *service.DictService) *DictHandler {
	return &DictHandler{dictService: dictService}
}

func (h *DictHandler) List(c *gin.Context) {
	dicts, err := h.dictService.List(c.Request.Context(), c.Query("description"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, dicts)
}

func (h *DictHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.dictService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, d)
}

func (h *DictHandler) Create(c *gin.Context) {
	var req dict.Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	id, err := h.dictService.Create(c.Request.Context(), req, middleware.MustGetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

func (h *DictHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dict.Req
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.dictService.Update(c.Request.Context(), id, req, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *DictHandler) Delete(c *gin.Context) {
	ids, ok := pathIDs(c)
	if !ok {
		return
	}
	if err := h.dictService.Delete(c.Request.Context(), ids); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListItems pages the items of one dictionary.
func (h *DictHandler) ListItems(c *gin.Context) {
	dictID, err := strconv.ParseInt(c.Query("dictId"), 10, 64)
	if err != nil || dictID <= 0 {
		response.Fail(c, "400", "invalid dict id")
		return
	}
	q := dict.ItemPageQuery{
		DictID:      dictID,
		Description: c.Query("description"),
		Status:      queryInt16Ptr(c, "status"),
		Page:        queryInt(c, "page", 1),
		Size:        queryInt(c, "size", 10),
	}
	result, err := h.dictService.PageItems(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

func (h *DictHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.dictService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, item)
}

func (h *DictHandler) CreateItem(c *gin.Context) {
	var req dict.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	id, err := h.dictService.CreateItem(c.Request.Context(), req, middleware.MustGetUserID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"id": id})
}

func (h *DictHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dict.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, "400", "invalid request body")
		return
	}
	if err := h.dictService.UpdateItem(c.Request.Context(), id, req, middleware.MustGetUserID(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func (h *DictHandler) DeleteItems(c *gin.Context) {
	ids, ok := pathIDs(c)
	if !ok {
		return
	}
	if err := h.dictService.DeleteItems(c.Request.Context(), ids); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}
