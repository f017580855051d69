package app

import (
	"time"

	"Tracker/internal/auth"
	"Tracker/internal/cache"
	"Tracker/internal/config"
	"Tracker/internal/dates"
	"Tracker/internal/handlers"
	"Tracker/internal/repo"
	"Tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	sessionStore := auth.NewStore(rdb, 24*time.Hour)
	userRepo := repo.NewPGUserRepo(db)
	userSvc := service.NewUserService(userRepo)
	authHandler := handlers.NewAuthHandler(sessionStore, userSvc)
	registerAuthRoutes(api, authHandler)

	clock := dates.System()
	ttl := cfg.Redis.DefaultTTL.Duration()
	reportCache := cache.NewReportCache(rdb, ttl)

	protected := api.Group("", auth.RequireSession(sessionStore))

	taskRepo := repo.NewPGTaskRepo(db)
	taskSvc := service.NewTaskService(taskRepo, cache.NewTaskCache(rdb, ttl), reportCache)
	registerTaskRoutes(protected, handlers.NewTaskHandler(taskSvc, clock))

	categoryRepo := repo.NewPGCategoryRepo(db)
	categorySvc := service.NewCategoryService(categoryRepo, reportCache)
	registerCategoryRoutes(protected, handlers.NewCategoryHandler(categorySvc))

	routineRepo := repo.NewPGRoutineRepo(db)
	routineSvc := service.NewRoutineService(routineRepo, reportCache)
	registerRoutineRoutes(protected, handlers.NewRoutineHandler(routineSvc))

	reportSvc := service.NewReportService(taskRepo, categoryRepo, routineRepo, reportCache, clock)
	protected.GET("/reports", handlers.NewReportHandler(reportSvc).Get)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Task Tracker API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks", h.List)
	api.GET("/tasks/:id", h.GetByID)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/complete", h.Complete)
}

func registerCategoryRoutes(api *gin.RouterGroup, h *handlers.CategoryHandler) {
	api.POST("/categories", h.Create)
	api.GET("/categories", h.List)
	api.PATCH("/categories/:id", h.Update)
	api.DELETE("/categories/:id", h.Delete)
}

func registerRoutineRoutes(api *gin.RouterGroup, h *handlers.RoutineHandler) {
	api.POST("/routines", h.Create)
	api.GET("/routines", h.List)
	api.GET("/routines/:id", h.GetByID)
	api.PATCH("/routines/:id", h.Update)
	api.DELETE("/routines/:id", h.Delete)
	api.POST("/routines/:id/activate", h.Activate)
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
}
