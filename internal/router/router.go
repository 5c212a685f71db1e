package router

import (
	"time"

	"orchid/config"
	"orchid/internal/handler"
	"orchid/internal/middleware"
	"orchid/internal/repository"
	"orchid/pkg/cloudinary"

	"github.com/gin-gonic/gin"
)

func Setup(cfg *config.Config, store *repository.ContentStore, cloud cloudinary.Client) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	// Repositories
	portfolioRepo := repository.NewPortfolioRepository(store)
	tournamentRepo := repository.NewTournamentRepository(store)
	disciplineRepo := repository.NewDisciplineRepository(store)
	settingRepo := repository.NewSettingRepository(store)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg)
	portfolioHandler := handler.NewPortfolioHandler(portfolioRepo)
	tournamentHandler := handler.NewTournamentHandler(tournamentRepo)
	disciplineHandler := handler.NewDisciplineHandler(disciplineRepo)
	settingsHandler := handler.NewSettingsHandler(settingRepo)
	uploadHandler := handler.NewUploadHandler(cloud)

	api := r.Group("/api")
	{
		// Public reads for the marketing pages
		api.GET("/portfolio", portfolioHandler.PublicList)
		api.GET("/tournaments", tournamentHandler.PublicList)
		api.GET("/disciplines", disciplineHandler.PublicList)
		api.GET("/settings", settingsHandler.Get)

		// Slow down password guessing; the rest of the API is uncapped.
		loginLimiter := middleware.NewRateLimiter(10, time.Minute)

		auth := api.Group("/admin/auth")
		{
			auth.POST("", middleware.RateLimit(loginLimiter), authHandler.Login)
			auth.GET("", authHandler.Check)
			auth.DELETE("", authHandler.Logout)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminRequired())
		{
			admin.GET("/portfolio", portfolioHandler.List)
			admin.POST("/portfolio", portfolioHandler.Create)
			admin.PUT("/portfolio", portfolioHandler.Update)
			admin.DELETE("/portfolio", portfolioHandler.Delete)

			admin.GET("/tournaments", tournamentHandler.List)
			admin.POST("/tournaments", tournamentHandler.Create)
			admin.PUT("/tournaments", tournamentHandler.Update)
			admin.DELETE("/tournaments", tournamentHandler.Delete)

			admin.GET("/disciplines", disciplineHandler.List)
			admin.POST("/disciplines", disciplineHandler.Create)
			admin.PUT("/disciplines", disciplineHandler.Update)
			admin.DELETE("/disciplines", disciplineHandler.Delete)

			admin.GET("/settings", settingsHandler.Get)
			admin.PUT("/settings", settingsHandler.Update)

			admin.POST("/upload", uploadHandler.UploadCover)
		}
	}

	return r
}
