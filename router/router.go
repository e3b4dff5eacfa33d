package router

import (
	"time"

	"expense/api"
	"expense/config"
	_ "expense/docs"
	"expense/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiGroup := r.Group("/api")
	{
		// 认证相关路由（无需登录，限制尝试频率）
		authHandler := api.NewAuthHandler(cfg)
		auth := apiGroup.Group("/auth")
		auth.Use(middleware.AuthRateLimit(10, time.Minute))
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		// 公共参考数据（无需登录）
		monthHandler := api.NewMonthHandler()
		currencyHandler := api.NewCurrencyHandler()
		apiGroup.GET("/months", monthHandler.List)
		apiGroup.GET("/currencies", currencyHandler.List)

		// 需要 JWT 认证的路由
		authorized := apiGroup.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			// 用户相关
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)
			authorized.GET("/user/currency", currencyHandler.GetUserCurrency)
			authorized.POST("/user/currency", currencyHandler.SetUserCurrency)

			// 消费类别
			categoryHandler := api.NewCategoryHandler()
			categories := authorized.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			// 消费记录
			expenseHandler := api.NewExpenseHandler(cfg)
			expenses := authorized.Group("/expenses")
			{
				expenses.GET("", expenseHandler.List)
				expenses.POST("", expenseHandler.Create)
				expenses.DELETE("/:id", expenseHandler.Delete)
			}

			// 限额
			limitHandler := api.NewLimitHandler()
			authorized.GET("/limit", limitHandler.GetMonthly)
			authorized.POST("/limit", limitHandler.SetMonthly)
			authorized.GET("/global_limit", limitHandler.GetGlobal)
			authorized.POST("/global_limit", limitHandler.SetGlobal)

			// 汇总
			summaryHandler := api.NewSummaryHandler()
			authorized.GET("/summary", summaryHandler.Get)

			// 导出
			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
