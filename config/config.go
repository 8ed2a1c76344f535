package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/codingconcepts/env"
	"github.com/joho/godotenv"
)

// Gigs API
const GIGS_FETCH_FAILED_MESSAGE = "Failed to fetch gigs data"

// Map widget
const MAP_CENTER_LAT = -37.8136
const MAP_CENTER_LNG = 144.9631
const MAP_ZOOM = 13
const MAP_LOADING_MESSAGE = "Loading Maps..."

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const GIGS_RESPONSE_RESOURCE = "gigs_response.json"

// Config is the runtime configuration read from the process environment
// (and an optional .env file).
type Config struct {
	BindAddr   string `env:"BIND_ADDR"`
	ListenPort uint16 `env:"LISTEN_PORT" default:"8080"`

	GigsEndpointBase string `env:"GIGS_ENDPOINT_BASE" default:"https://api.lml.live"`
	City             string `env:"GIGS_CITY" default:"melbourne"`
	Timezone         string `env:"GIGS_CITY_TIMEZONE" default:"Australia/Melbourne"`

	// MapsAPIKey is required to initialise the map widget.
	MapsAPIKey string `env:"MAPS_API_KEY"`

	RedisAddress  string `env:"REDIS_DB_ADDRESS" default:"redis:6379"`
	RedisPassword string `env:"REDIS_DB_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" default:"0"`
}

// Load reads envFile if it exists, then fills a Config from the environment.
func Load(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
		log.Printf("[config] No %s file found, falling back to system env vars", envFile)
	}

	cfg := Config{}
	if err := env.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// Location resolves the city's timezone, which defines what "today" is.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// ListenAddr is the host:port the HTTP server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.BindAddr, c.ListenPort)
}

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
