package routes

import (
	"net/http"

	"fruitarians-api/docs"
	"fruitarians-api/internal/config"
	"fruitarians-api/internal/delivery/http/handler"
	domainUser "fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/infrastructure/database"
	"fruitarians-api/internal/logger"
	"fruitarians-api/internal/middleware"
	"fruitarians-api/internal/usecase/article"
	"fruitarians-api/internal/usecase/user"

	"github.com/Depado/ginprom"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"
)

const ServiceName = "fruitarians-api"

// Dependencies are the collaborators built in main and shared by all routes.
type Dependencies struct {
	Store    *database.Store
	Uploader domainUser.Uploader
	Mailer   domainUser.Mailer
	// Redis is optional; without it rate limiting stays in process.
	Redis redis.Cmdable
	// TracerProvider is optional; the global provider is used when nil.
	TracerProvider trace.TracerProvider
}

func SetupRoutes(cfg *config.Config, deps Dependencies) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Order: recovery, request ID, logging, tracing, security headers, CORS, size limit, rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	var otelOpts []otelgin.Option
	if deps.TracerProvider != nil {
		otelOpts = append(otelOpts, otelgin.WithTracerProvider(deps.TracerProvider))
	}
	router.Use(otelgin.Middleware(ServiceName, otelOpts...))
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(cfg.Server.MaxRequestBytes))
	if deps.Redis != nil {
		router.Use(middleware.RedisRateLimitMiddleware(deps.Redis, cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))
	} else {
		router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))
	}

	if cfg.Server.MetricsEnabled {
		p := ginprom.New(
			ginprom.Engine(router),
			ginprom.Subsystem("gin"),
			ginprom.Path("/metrics"),
			ginprom.Ignore("/api-docs/*any"),
		)
		router.Use(p.Instrument())
	}

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		if err := deps.Store.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	userService := user.NewService(deps.Store.Users, deps.Store.Buah, deps.Uploader, deps.Mailer, cfg)
	userHandler := handler.NewUserHandler(userService)
	authHandler := handler.NewAuthHandler(userService)

	articleService := article.NewService(deps.Store.Articles)
	articleHandler := handler.NewArticleHandler(articleService)

	api := router.Group("")
	{
		authHandler.RegisterRoutes(api)
		articleHandler.RegisterRoutes(api)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			userHandler.RegisterProfileRoutes(protected)
		}

		userHandler.RegisterRoutes(api)
	}

	logger.Info("All routes initialized")
	return router
}
