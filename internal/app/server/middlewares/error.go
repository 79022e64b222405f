package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oip/account/internal/app/pkg/errorx"
	"oip/account/internal/app/pkg/ginx"
	"oip/account/internal/app/pkg/logger"
)

// ErrorHandler 统一错误处理中间件
// 处理器通过 c.Error(err) 上报错误，这里统一转换为响应
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		be := errorx.FromError(err)
		if be.Code >= http.StatusInternalServerError {
			log.ErrorContext(c.Request.Context(), "request failed", "path", c.FullPath(), "error", err)
			// 内部错误不向调用方暴露细节
			ginx.Error(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			return
		}
		log.WarnContext(c.Request.Context(), "request rejected", "path", c.FullPath(), "code", be.Code, "error", err)
		ginx.BusinessError(c, be)
	}
}
