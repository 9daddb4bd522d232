package main

import (
	"context"
	"net/http"

	"github.com/leegyver/land-sub002/internal/config"
	"github.com/leegyver/land-sub002/internal/geocoder"
	"github.com/leegyver/land-sub002/internal/handler"
	"github.com/leegyver/land-sub002/internal/repository"
	"github.com/leegyver/land-sub002/internal/resolver"
	"github.com/leegyver/land-sub002/internal/service"
	"github.com/leegyver/land-sub002/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	if level, err := zerolog.ParseLevel(config.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Geocoder, with a Redis cache in front when Redis is reachable.
	kakao := geocoder.NewKakaoClient(config.KakaoAPIBase, config.KakaoAPIKey, config.GeocodeTimeout, log.Logger)
	var geo geocoder.Geocoder = kakao

	rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddress})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warn().Err(err).Msg("redis unreachable, geocode cache disabled")
	} else {
		geo = geocoder.NewCache(kakao, rdb, config.GeocodeCacheTTL, log.Logger)
	}

	// Initialize layers
	repo := repository.NewRepository(conn)
	res := resolver.New(geo, config.RegionPrefix, log.Logger)

	listingService := service.NewListingService(repo)
	mapService := service.NewMapService(repo, res, log.Logger)

	listingHandler := handler.NewListingHandler(listingService)
	mapHandler := handler.NewMapHandler(mapService)
	sessionHandler := handler.NewSessionHandler(listingService, res, session.NewManager(), log.Logger)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	api := r.Group("/api")
	api.GET("/listings", listingHandler.List)
	api.GET("/listings/:id", listingHandler.Get)
	api.GET("/map/markers", mapHandler.Markers)
	api.GET("/map/markers/:id", mapHandler.Marker)
	api.POST("/map/sessions", sessionHandler.Create)
	api.POST("/map/sessions/:id/select", sessionHandler.Select)
	api.DELETE("/map/sessions/:id", sessionHandler.Delete)

	r.Run(config.ServerAddress)
}
