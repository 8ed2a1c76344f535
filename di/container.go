package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"lml-server/api"
	"lml-server/api/lml"
	"lml-server/config"
	"lml-server/dao/redis"
	"lml-server/db"
	"lml-server/models"
	"lml-server/server"
	"lml-server/server/handlers"
	services "lml-server/service"
	"lml-server/state"
)

const PROD_ENV = "prod"

// Container holds all application dependencies.
type Container struct {
	RedisClient      db.RedisClient
	RedisVenueDao    *redis.RedisVenueDAO
	GigsAPI          lml.GigsAPI
	Store            *state.Store
	GigsService      *services.GigsService
	StateHandler     *handlers.StateHandler
	VenueHandler     *handlers.VenueHandler
	MapHandler       *handlers.MapHandler
	MuxRouter        *mux.Router
	Router           *server.Router
	GigMapHttpServer *server.GigMapHttpServer

	closeRedis func() error
}

// NewContainer initializes and wires up all dependencies. Outside prod the
// gigs API is served from the bundled fixture and Redis is kept in memory.
func NewContainer(env string, cfg *config.Config) (*Container, error) {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	var redisClient db.RedisClient
	closeRedis := func() error { return nil }
	var gigsAPI lml.GigsAPI
	if env != PROD_ENV {
		log.Printf("Using in-memory redis and mock gigs api")
		redisClient = db.NewMockRedisClient(ctx)
		gigsAPI = lml.NewGigsApiClientMock(config.GetResourcePath(config.GIGS_RESPONSE_RESOURCE))
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		geoClient := db.NewGeoRedisClient(ctx, redisInternalClient)
		if err := geoClient.Ping(); err != nil {
			redisInternalClient.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddress, err)
		}
		redisClient = geoClient
		closeRedis = redisInternalClient.Close

		log.Printf("Using prod gigs api at %s", cfg.GigsEndpointBase)
		gigsAPI = lml.NewGigsApiClient(api.NewHTTPClient(cfg.GigsEndpointBase))
	}

	redisVenueDao := redis.NewRedisVenueDAO(redisClient)

	store := state.NewStore(state.New(models.Today(time.Now(), location)))
	gigsService := services.NewGigsService(store, gigsAPI, redisVenueDao, cfg.City, location)

	stateHandler := handlers.NewStateHandler(store, gigsService)
	venueHandler := handlers.NewVenueHandler(redisVenueDao, cfg.City)
	mapHandler := handlers.NewMapHandler(store, cfg.MapsAPIKey, cfg.City)
	if cfg.MapsAPIKey == "" {
		log.Printf("MAPS_API_KEY is not set, map routes will answer %q", config.MAP_LOADING_MESSAGE)
	}

	muxRouter := mux.NewRouter()
	router := server.NewRouter(stateHandler, venueHandler, mapHandler, muxRouter)
	gigMapHttpServer := server.NewGigMapHttpServer(router, muxRouter, cfg.ListenAddr())

	return &Container{
		RedisClient:      redisClient,
		RedisVenueDao:    redisVenueDao,
		GigsAPI:          gigsAPI,
		Store:            store,
		GigsService:      gigsService,
		StateHandler:     stateHandler,
		VenueHandler:     venueHandler,
		MapHandler:       mapHandler,
		MuxRouter:        muxRouter,
		Router:           router,
		GigMapHttpServer: gigMapHttpServer,
		closeRedis:       closeRedis,
	}, nil
}

// Close releases the Redis connection pool, if any.
func (c *Container) Close() error {
	return c.closeRedis()
}
