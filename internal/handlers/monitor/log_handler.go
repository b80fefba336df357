// internal/handlers/monitor/log_handler.go
package monitor

import (
	"strconv"

	"coreadmin-service/internal/domain/syslog"
	"coreadmin-service/internal/pkg/response"
	"coreadmin-service/internal/service/system"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService *system.LogService
}

func NewLogHandler(logService *system.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// List pages the captured request logs.
func (h *LogHandler) List(c *gin.Context) {
	q := syslog.PageQuery{
		Description: c.Query("description"),
		Module:      c.Query("module"),
		IP:          c.Query("ip"),
		Page:        queryInt(c, "page", 1),
		Size:        queryInt(c, "size", 10),
	}
	if v := c.Query("status"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 16); err == nil {
			status := int16(n)
			q.Status = &status
		}
	}

	result, err := h.logService.Page(c.Request.Context(), q)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}

// Get returns one log row including the captured payloads.
func (h *LogHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, "400", "invalid log id")
		return
	}

	detail, err := h.logService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, detail)
}
