package config

import (
	"os"
	"path/filepath"
)

// Redis Config
const REDIS_DB_ADDRESS = "redis:6379"
const REDIS_DB_PASSWORD = ""
const REDIS_DB = 0

// Crowd feed config
const CROWD_FEED_ENDPOINT_BASE = "https://fitplace24.example.com"
const CROWD_FEED_CSV_PATH = "/fit_place24_data.csv"

// Loader cache config
const SNAPSHOT_CACHE_TTL_MINUTES = 5

// Snapshot refresher config
const SNAPSHOT_REFRESHER_SCHEDULE_MINUTES = 30

// HTTP server config
const HTTP_LISTEN_ADDRESS = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const CROWD_SNAPSHOT_CSV_RESOURCE = "crowd_snapshot.csv"

// Chart output
const WEEKLY_CHARTS_OUTPUT_FILE = "weekly_crowd_charts.html"

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func GetResourcePath(resource_file string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resource_file)
}
