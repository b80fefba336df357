// internal/middleware/logging_middleware_test.go
package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskPasswords(t *testing.T) {
	t.Parallel()

	masked := maskPasswords(`{"username":"admin","password":"secret","newPassword":"other"}`)

	var m map[string]string
	require.NoError(t, json.Unmarshal([]byte(masked), &m))
	require.Equal(t, "admin", m["username"])
	require.Equal(t, "******", m["password"])
	require.Equal(t, "******", m["newPassword"])
}

func TestMaskPasswordsPassesThroughNonJSON(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", maskPasswords(""))
	require.Equal(t, "plain text", maskPasswords("plain text"))
	require.Equal(t, "password=abc", maskPasswords("password=abc"))
	require.Equal(t, `{"username":"admin"}`, maskPasswords(`{"username":"admin"}`))
}

func TestHeadersJSONStripsSensitiveHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("Authorization", "Bearer tok")
	h.Set("Cookie", "session=abc")
	h.Set("Content-Type", "application/json")
	h.Add("Accept", "application/json")
	h.Add("Accept", "text/plain")

	out := headersJSON(h)

	var m map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	require.NotContains(t, m, "Authorization")
	require.NotContains(t, m, "Cookie")
	require.Equal(t, "application/json", m["Content-Type"])
	require.Equal(t, "application/json; text/plain", m["Accept"])
}

func TestInferModule(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Authentication", inferModule("/auth/login"))
	require.Equal(t, "System", inferModule("/system/user/1"))
	require.Equal(t, "Monitoring", inferModule("/monitor/online"))
	require.Equal(t, "Captcha", inferModule("/captcha/image"))
	require.Equal(t, "health", inferModule("/health"))
}
