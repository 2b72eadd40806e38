package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/zoopark/internal/config"
	"github.com/polkiloo/zoopark/internal/server/http/handlers"
	"github.com/polkiloo/zoopark/internal/server/http/middleware"
)

// Setup configures gin router with handlers, templates, and middleware.
func Setup(facade handlers.ZooFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(middleware.FlashStore(cfg.SessionSecret))
	engine.Use(middleware.Identify(facade))

	engine.LoadHTMLGlob(cfg.TemplateGlob)
	engine.Static("/uploads", cfg.UploadDir)
	engine.Static("/static", cfg.StaticDir)

	pageHandler := handlers.NewPageHandler(facade)
	authHandler := handlers.NewAuthHandler(facade)
	animalHandler := handlers.NewAnimalHandler(facade)

	engine.GET("/", pageHandler.Index)
	engine.GET("/about", pageHandler.About)
	engine.GET("/contact", pageHandler.Contact)

	engine.GET("/register", authHandler.ShowRegister)
	engine.POST("/register", authHandler.Register)
	engine.GET("/login", authHandler.ShowLogin)
	engine.POST("/login", authHandler.Login)
	engine.GET("/logout", authHandler.Logout)

	protected := engine.Group("")
	protected.Use(middleware.AuthRequired())
	protected.GET("/add", animalHandler.ShowAdd)
	protected.POST("/add", animalHandler.Add)
	protected.GET("/update/:id", animalHandler.ShowUpdate)
	protected.POST("/update/:id", animalHandler.Update)
	protected.GET("/delete/:id", animalHandler.Delete)

	return engine
}
