package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"catalogapi/config"
	"catalogapi/handlers"
	"catalogapi/metrics"
	"catalogapi/middleware"
	"catalogapi/service"
	"catalogapi/store"
	"catalogapi/utils"
)

func main() {
	// .env is optional; deployments set the environment directly
	_ = godotenv.Load()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Database.Path).Msg("opening database")
	}
	defer db.Close()

	if err := store.Seed(db); err != nil {
		log.Fatal().Err(err).Msg("seeding database")
	}

	products := service.NewProductService(db)
	handler := handlers.NewProductHandler(products, log.Logger)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.Metrics())

	r.GET("/health-check", handlers.CheckConnection(db))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/")
	if cfg.Auth.Enabled {
		api.Use(middleware.AuthRequired(utils.NewJWTVerifier(cfg.Auth.JWTSecret)))
	}
	{
		api.GET("/products", handler.GetProducts)
		api.GET("/product", handler.GetProduct)
		api.POST("/product", handler.CreateProduct)
		api.PUT("/product", handler.UpdateProduct)
		api.DELETE("/product", handler.DeleteProduct)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"is_success":  false,
			"status_code": 404,
			"message":     "sorry, can't find that!",
			"data":        []any{},
		})
	})

	log.Info().Str("port", cfg.Server.Port).Bool("auth", cfg.Auth.Enabled).Msg("server starting")
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
