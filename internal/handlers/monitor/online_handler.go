// internal/handlers/monitor/online_handler.go
package monitor

import (
	"strconv"
	"time"

	"coreadmin-service/internal/middleware"
	"coreadmin-service/internal/pkg/online"
	"coreadmin-service/internal/pkg/response"
	service "coreadmin-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type OnlineHandler struct {
	store       *online.Store
	authService *service.Service
}

func NewOnlineHandler(store *online.Store, authService *service.Service) *OnlineHandler {
	return &OnlineHandler{store: store, authService: authService}
}

// List pages the currently online sessions, newest login first.
func (h *OnlineHandler) List(c *gin.Context) {
	nickname := c.Query("nickname")
	page := queryInt(c, "page", 1)
	size := queryInt(c, "size", 10)

	loginStart := parseQueryTime(c.Query("loginStartTime"))
	loginEnd := parseQueryTime(c.Query("loginEndTime"))

	list, total := h.store.List(nickname, loginStart, loginEnd, page, size)
	response.OK(c, response.PageResult{List: list, Total: total})
}

// Kickout force-terminates the session identified by token.
func (h *OnlineHandler) Kickout(c *gin.Context) {
	target := c.Param("token")
	caller := middleware.GetSessionToken(c)

	if err := h.authService.Kickout(caller, target); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, nil)
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// parseQueryTime accepts both date-time and bare date query values.
func parseQueryTime(v string) *time.Time {
	if v == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return &t
		}
	}
	return nil
}
