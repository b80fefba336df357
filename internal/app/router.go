// internal/app/router.go
package app

import (
	authHandler "coreadmin-service/internal/handlers/auth"
	captchaHandler "coreadmin-service/internal/handlers/captcha"
	commonHandler "coreadmin-service/internal/handlers/common"
	monitorHandler "coreadmin-service/internal/handlers/monitor"
	systemHandler "coreadmin-service/internal/handlers/system"
	"coreadmin-service/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth    *authHandler.AuthHandler
	Captcha *captchaHandler.CaptchaHandler
	Online  *monitorHandler.OnlineHandler
	Log     *monitorHandler.LogHandler
	User    *systemHandler.UserHandler
	Role    *systemHandler.RoleHandler
	Menu    *systemHandler.MenuHandler
	Dept    *systemHandler.DeptHandler
	Dict    *systemHandler.DictHandler
	Storage *systemHandler.StorageHandler
	Option  *systemHandler.OptionHandler
	Common  *commonHandler.CommonHandler

	AuthMiddleware *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, h *Handlers) {
	// ==================== Health Check ====================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== Public Routes ====================
	r.GET("/captcha/image", h.Captcha.Image)
	r.POST("/auth/login", h.Auth.Login)

	// ==================== Authenticated Auth Routes ====================
	auth := r.Group("/auth")
	auth.Use(h.AuthMiddleware.Auth())
	{
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/user/info", h.Auth.GetUserInfo)
		auth.GET("/route", h.Auth.GetRoutes)
	}

	// ==================== System Management ====================
	system := r.Group("/system")
	system.Use(h.AuthMiddleware.Auth())
	{
		system.GET("/user", h.User.List)
		system.GET("/user/:id", h.User.Get)
		system.POST("/user", h.User.Create)
		system.PUT("/user/:id", h.User.Update)
		system.DELETE("/user/:ids", h.User.Delete)
		system.PATCH("/user/:id/password", h.User.ResetPassword)
		system.PATCH("/user/:id/role", h.User.UpdateRoles)

		system.GET("/role", h.Role.List)
		system.GET("/role/:id", h.Role.Get)
		system.POST("/role", h.Role.Create)
		system.PUT("/role/:id", h.Role.Update)
		system.DELETE("/role/:ids", h.Role.Delete)

		system.GET("/menu", h.Menu.List)
		system.GET("/menu/:id", h.Menu.Get)
		system.POST("/menu", h.Menu.Create)
		system.PUT("/menu/:id", h.Menu.Update)
		system.DELETE("/menu/:ids", h.Menu.Delete)

		system.GET("/dept", h.Dept.List)
		system.GET("/dept/:id", h.Dept.Get)
		system.POST("/dept", h.Dept.Create)
		system.PUT("/dept/:id", h.Dept.Update)
		system.DELETE("/dept/:ids", h.Dept.Delete)

		system.GET("/dict", h.Dict.List)
		system.GET("/dict/:id", h.Dict.Get)
		system.POST("/dict", h.Dict.Create)
		system.PUT("/dict/:id", h.Dict.Update)
		system.DELETE("/dict/:ids", h.Dict.Delete)

		system.GET("/dict/item", h.Dict.ListItems)
		system.GET("/dict/item/:id", h.Dict.GetItem)
		system.POST("/dict/item", h.Dict.CreateItem)
		system.PUT("/dict/item/:id", h.Dict.UpdateItem)
		system.DELETE("/dict/item/:ids", h.Dict.DeleteItems)

		system.GET("/storage", h.Storage.List)
		system.GET("/storage/:id", h.Storage.Get)
		system.POST("/storage", h.Storage.Create)
		system.PUT("/storage/:id", h.Storage.Update)
		system.DELETE("/storage/:ids", h.Storage.Delete)

		system.GET("/option", h.Option.List)
		system.PUT("/option", h.Option.Update)
		system.PATCH("/option/value", h.Option.Reset)

		system.GET("/log", h.Log.List)
		system.GET("/log/:id", h.Log.Get)
	}

	// ==================== Monitoring ====================
	monitor := r.Group("/monitor")
	monitor.Use(h.AuthMiddleware.Auth())
	{
		monitor.GET("/online", h.Online.List)
		monitor.DELETE("/online/:token", h.Online.Kickout)

		monitor.GET("/log", h.Log.List)
		monitor.GET("/log/:id", h.Log.Get)
	}

	// ==================== Common ====================
	common := r.Group("/common")
	common.Use(h.AuthMiddleware.Auth())
	{
		common.GET("/dict/:code", h.Common.DictOptions)
		common.GET("/dict/role", h.Common.RoleOptions)
		common.GET("/dict/user", h.Common.UserOptions)
		common.GET("/tree/dept", h.Common.DeptTree)
		common.GET("/tree/menu", h.Common.MenuTree)
	}
}
