// internal/handlers/system/helpers.go
package system

import (
	"strconv"
	"strings"

	"coreadmin-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, "400", "invalid id")
		return 0, false
	}
	return id, true
}

// pathIDs splits the comma-separated :ids path segment.
func pathIDs(c *gin.Context) ([]int64, bool) {
	parts := strings.Split(c.Param("ids"), ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil || id <= 0 {
			response.Fail(c, "400", "invalid id list")
			return nil, false
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		response.Fail(c, "400", "invalid id list")
		return nil, false
	}
	return ids, true
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

func queryInt16Ptr(c *gin.Context, key string) *int16 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 16)
	if err != nil {
		return nil
	}
	out := int16(n)
	return &out
}

func queryInt64Ptr(c *gin.Context, key string) *int64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
