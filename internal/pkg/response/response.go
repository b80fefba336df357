// internal/pkg/response/response.go
package response

import (
	"net/http"
	"strconv"
	"time"

	xerrors "coreadmin-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
)

// Envelope is the standard API response format. The transport status is
// always 200; failures are encoded in the body with a stable code, which is
// what the front-end expects.
type Envelope struct {
	Code      string      `json:"code"`
	Data      interface{} `json:"data"`
	Msg       string      `json:"msg"`
	Success   bool        `json:"success"`
	Timestamp string      `json:"timestamp"`
}

// PageResult wraps paginated list payloads.
type PageResult struct {
	List  interface{} `json:"list"`
	Total int64       `json:"total"`
}

func nowMillis() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// OK sends a successful response with the given data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{
		Code:      "200",
		Data:      data,
		Msg:       "ok",
		Success:   true,
		Timestamp: nowMillis(),
	})
}

// Fail sends a failure response with a stable error code and message.
func Fail(c *gin.Context, code, msg string) {
	c.Abort()
	c.JSON(http.StatusOK, Envelope{
		Code:      code,
		Msg:       msg,
		Success:   false,
		Timestamp: nowMillis(),
	})
}

// FromError maps an application error to the envelope. Unknown errors are
// generalized so internal detail never reaches the caller.
func FromError(c *gin.Context, err error) {
	if appErr := xerrors.AsAppError(err); appErr != nil {
		Fail(c, appErr.Code, appErr.Message)
		return
	}
	Fail(c, xerrors.ErrInternal.Code, xerrors.ErrInternal.Message)
}

// Unauthorized sends the standard unauthorized failure.
func Unauthorized(c *gin.Context) {
	Fail(c, xerrors.ErrUnauthorized.Code, xerrors.ErrUnauthorized.Message)
}
