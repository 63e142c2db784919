package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents environment-derived settings.
type Config struct {
	SpotdlFile   string
	MusicFolder  string
	KeepPatterns []string
}

// Load reads the env file (.env when envFile is empty, if present) and validates required settings.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFile); err != nil {
		return Config{}, fmt.Errorf("load env file %q: %w", envFile, err)
	}

	cfg := Config{
		SpotdlFile:  strings.TrimSpace(os.Getenv("SPOTDL_FILE")),
		MusicFolder: strings.TrimSpace(os.Getenv("MUSIC_FOLDER")),
	}

	rawPatterns := strings.TrimSpace(os.Getenv("MUSIC_KEEP"))
	if rawPatterns != "" {
		for _, part := range strings.Split(rawPatterns, ",") {
			pattern := strings.TrimSpace(part)
			if pattern != "" {
				cfg.KeepPatterns = append(cfg.KeepPatterns, pattern)
			}
		}
	}

	if cfg.SpotdlFile == "" || cfg.MusicFolder == "" {
		return cfg, errors.New("SPOTDL_FILE and MUSIC_FOLDER are required (set them in the environment or the .env file)")
	}
	info, err := os.Stat(cfg.MusicFolder)
	if err != nil {
		return cfg, fmt.Errorf("MUSIC_FOLDER %q is not accessible: %w", cfg.MusicFolder, err)
	}
	if !info.IsDir() {
		return cfg, fmt.Errorf("MUSIC_FOLDER %q is not a directory", cfg.MusicFolder)
	}

	return cfg, nil
}
