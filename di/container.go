package di

import (
	"context"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"crowd-dashboard/api"
	"crowd-dashboard/api/crowdfeed"
	"crowd-dashboard/config"
	"crowd-dashboard/dao/snapshot"
	"crowd-dashboard/db"
	"crowd-dashboard/server"
	"crowd-dashboard/server/handlers"
	"crowd-dashboard/services"
)

// Container holds all application dependencies.
type Container struct {
	CacheClient              db.CacheClient
	SnapshotDAO              *snapshot.SnapshotDAO
	CrowdFeed                crowdfeed.CrowdFeed
	ObservationLoader        *services.ObservationLoader
	ReportService            *services.ReportService
	SnapshotRefresherService *services.SnapshotRefresherService
	DashboardHandler         *handlers.DashboardHandler
	MuxRouter                *mux.Router
	Router                   *server.Router
	CrowdDashboardHttpServer *server.CrowdDashboardHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)

	// Initialize cache backend
	var cacheClient db.CacheClient
	if env == "prod" {
		ctx := context.Background()
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisCacheClient := db.NewRedisCacheClient(ctx, redisInternalClient)
		if err := redisCacheClient.Ping(); err != nil {
			panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		cacheClient = redisCacheClient
		log.Printf("Using redis cache backend")
	} else {
		cacheClient = db.NewLocalCacheClient()
		log.Printf("Using local cache backend")
	}

	// Initialize snapshot DAO
	snapshotDAO := snapshot.NewSnapshotDAO(cacheClient)

	// Initialize crowd feed - using fixture mock outside prod
	var crowdFeed crowdfeed.CrowdFeed
	if env != "prod" {
		crowdFeed = crowdfeed.NewCrowdFeedClientMock()
		log.Printf("Using mock crowd feed")
	} else {
		log.Printf("Using prod crowd feed")
		httpClient := api.NewHTTPClient(config.CROWD_FEED_ENDPOINT_BASE)
		crowdFeed = crowdfeed.NewCrowdFeedClient(httpClient, config.CROWD_FEED_CSV_PATH)
	}

	// Initialize the loader with its freshness window
	observationLoader := services.NewObservationLoader(
		crowdFeed,
		snapshotDAO,
		config.SNAPSHOT_CACHE_TTL_MINUTES*time.Minute,
	)

	// Initialize the report pipeline
	reportService := services.NewReportService(
		observationLoader,
		services.NewFilterEngine(),
		services.NewAggregator(),
		services.NewStatsSummarizer(),
		services.NewInsightGenerator(),
	)

	snapshotRefresherService := services.NewSnapshotRefresherService(observationLoader)

	// Initialize dashboard handler
	dashboardHandler := handlers.NewDashboardHandler(reportService)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(dashboardHandler, muxRouter)

	// initialize crowd dashboard server
	crowdDashboardHttpServer := server.NewCrowdDashboardHttpServer(router, muxRouter, config.HTTP_LISTEN_ADDRESS)

	return &Container{
		CacheClient:              cacheClient,
		SnapshotDAO:              snapshotDAO,
		CrowdFeed:                crowdFeed,
		ObservationLoader:        observationLoader,
		ReportService:            reportService,
		SnapshotRefresherService: snapshotRefresherService,
		DashboardHandler:         dashboardHandler,
		MuxRouter:                muxRouter,
		Router:                   router,
		CrowdDashboardHttpServer: crowdDashboardHttpServer,
	}
}
