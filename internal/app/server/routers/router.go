package routers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"oip/account/internal/app/domains/apimodel/response"
	"oip/account/internal/app/pkg/ginx"
	"oip/account/internal/app/pkg/logger"
	"oip/account/internal/app/server/handlers/account"
	"oip/account/internal/app/server/middlewares"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(accountHandler *account.AccountHandler, log logger.Logger) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	r.GET("/", func(c *gin.Context) {
		ginx.Success(c, response.ServiceInfo{
			Name:    "Account REST API Service",
			Version: "1.0",
			URL:     "/api/v1/accounts",
		})
	})

	v1 := r.Group("/api/v1")
	{
		accounts := v1.Group("/accounts")
		{
			accounts.POST("", accountHandler.Create)
			accounts.GET("", accountHandler.List)
			accounts.GET("/:id", accountHandler.Get)
			accounts.PUT("/:id", accountHandler.Update)
			accounts.DELETE("/:id", accountHandler.Delete)
		}
	}

	return r
}
