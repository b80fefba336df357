// internal/pkg/response/response_test.go
package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	xerrors "coreadmin-service/internal/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(t *testing.T, fn func(c *gin.Context)) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestOK(t *testing.T) {
	t.Parallel()

	w, env := record(t, func(c *gin.Context) {
		OK(c, gin.H{"id": 1})
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "200", env.Code)
	require.True(t, env.Success)
	require.Equal(t, "ok", env.Msg)

	// Timestamp is epoch milliseconds as a string.
	_, err := strconv.ParseInt(env.Timestamp, 10, 64)
	require.NoError(t, err)
}

func TestFailKeepsHTTP200(t *testing.T) {
	t.Parallel()

	w, env := record(t, func(c *gin.Context) {
		Fail(c, "400", "bad input")
	})

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "400", env.Code)
	require.False(t, env.Success)
	require.Equal(t, "bad input", env.Msg)
}

func TestFromErrorMapsAppErrors(t *testing.T) {
	t.Parallel()

	_, env := record(t, func(c *gin.Context) {
		FromError(c, xerrors.ErrInvalidCredentials)
	})
	require.Equal(t, "400", env.Code)
	require.Equal(t, xerrors.ErrInvalidCredentials.Message, env.Msg)
}

func TestFromErrorHidesInternalDetail(t *testing.T) {
	t.Parallel()

	_, env := record(t, func(c *gin.Context) {
		FromError(c, errors.New("pq: connection refused"))
	})
	require.Equal(t, "500", env.Code)
	require.NotContains(t, env.Msg, "pq")
}

func TestUnauthorized(t *testing.T) {
	t.Parallel()

	_, env := record(t, func(c *gin.Context) {
		Unauthorized(c)
	})
	require.Equal(t, "401", env.Code)
	require.False(t, env.Success)
}
