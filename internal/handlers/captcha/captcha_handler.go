// internal/handlers/captcha/captcha_handler.go
package captcha

import (
	"coreadmin-service/internal/domain/option"
	"coreadmin-service/internal/pkg/captcha"
	"coreadmin-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CaptchaHandler struct {
	store  *captcha.Store
	flags  option.FlagSource
	logger *zap.Logger
}

func NewCaptchaHandler(store *captcha.Store, flags option.FlagSource, logger *zap.Logger) *CaptchaHandler {
	return &CaptchaHandler{store: store, flags: flags, logger: logger}
}

// Image generates a digit captcha and returns it as a data URL together
// with the lookup uuid. When the login captcha option is off, only the
// flag is returned so the front-end can skip the field.
func (h *CaptchaHandler) Image(c *gin.Context) {
	enabled, err := h.flags.IsEnabled(c.Request.Context(), option.LoginCaptchaEnabled)
	if err != nil {
		h.logger.Warn("captcha flag lookup failed", zap.Error(err))
	}
	if !enabled {
		response.OK(c, captcha.Generated{IsEnabled: false})
		return
	}

	generated, err := h.store.Generate(c.Request.Context())
	if err != nil {
		h.logger.Error("captcha generation failed", zap.Error(err))
		response.Fail(c, "500", "failed to generate captcha")
		return
	}
	response.OK(c, generated)
}
