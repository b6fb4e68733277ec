package config

import (
	"os"

	"github.com/joho/godotenv"
)

const DefaultOutputSuffix = "_path.png"

// Settings read from the environment (and an optional .env file).
type Config struct {
	OutputSuffix string
	StylePath    string
	LogLevel     string
}

// Load reads .env when present and returns the resolved settings.
// A missing .env file is not an error.
func Load() (Config, bool) {
	envLoaded := godotenv.Load() == nil

	return Config{
		OutputSuffix: Get("UAVPLOT_OUTPUT_SUFFIX", DefaultOutputSuffix),
		StylePath:    Get("UAVPLOT_STYLE", ""),
		LogLevel:     Get("UAVPLOT_LOG_LEVEL", "info"),
	}, envLoaded
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
