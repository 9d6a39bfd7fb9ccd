package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultArticlesDir = "./articles"
	DefaultArticlesExt = "yaml"
	DefaultServerAddr  = ":8080"
)

// Config holds the settings for the article server.
type Config struct {
	ArticlesDir string
	ArticlesExt string
	ServerAddr  string
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it.")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return Config{
		ArticlesDir: getEnv("ARTICLES_DIR", DefaultArticlesDir),
		ArticlesExt: getEnv("ARTICLES_EXT", DefaultArticlesExt),
		ServerAddr:  getEnv("SERVER_ADDR", DefaultServerAddr),
	}
}
