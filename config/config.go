package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	DataDir         string
	StorageRoot     string
	StoreBackend    string
	FFmpegPath      string
	FFprobePath     string
	MaxUploadSizeMB int
	AcceptedPrefix  []string
	SegmentSeconds  int
	ThumbnailPct    float64
	StageTimeout    time.Duration
	AuthSecret      string
	UploadsPerHour  int
	StrictSniff     bool
	LogLevel        string
}

// MaxUploadBytes is the upload ceiling in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadSizeMB) * 1024 * 1024
}

// Load reads the configuration from the environment. A .env file in the
// working directory, when present, fills variables that are not already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment only.
func FromEnv() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "7890"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	maxUploadSizeMB, err := strconv.Atoi(getEnv("MAX_UPLOAD_SIZE_MB", "500"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: %w", err)
	}
	if maxUploadSizeMB <= 0 {
		return nil, fmt.Errorf("invalid MAX_UPLOAD_SIZE_MB: must be positive")
	}

	segmentSeconds, err := strconv.Atoi(getEnv("HLS_SEGMENT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid HLS_SEGMENT_SECONDS: %w", err)
	}
	if segmentSeconds <= 0 {
		return nil, fmt.Errorf("invalid HLS_SEGMENT_SECONDS: must be positive")
	}

	thumbnailPct, err := strconv.ParseFloat(getEnv("THUMBNAIL_PERCENT", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid THUMBNAIL_PERCENT: %w", err)
	}
	if thumbnailPct < 0 || thumbnailPct > 100 {
		return nil, fmt.Errorf("invalid THUMBNAIL_PERCENT: must be between 0 and 100")
	}

	stageTimeout, err := time.ParseDuration(getEnv("STAGE_TIMEOUT", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid STAGE_TIMEOUT: %w", err)
	}

	uploadsPerHour, err := strconv.Atoi(getEnv("UPLOADS_PER_HOUR", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOADS_PER_HOUR: %w", err)
	}

	strictSniff, err := strconv.ParseBool(getEnv("STRICT_SNIFF", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid STRICT_SNIFF: %w", err)
	}

	backend := strings.ToLower(getEnv("STORE_BACKEND", "sqlite"))
	if backend != "sqlite" && backend != "json" {
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: want sqlite or json", backend)
	}

	authSecret := os.Getenv("AUTH_SECRET")
	if authSecret == "" {
		return nil, fmt.Errorf("AUTH_SECRET is required")
	}

	dataDir := getEnv("DATA_DIR", "/data")

	return &Config{
		Port:            port,
		DataDir:         dataDir,
		StorageRoot:     getEnv("STORAGE_ROOT", filepath.Join(dataDir, "videos")),
		StoreBackend:    backend,
		FFmpegPath:      getEnv("FFMPEG_PATH", "ffmpeg"),
		FFprobePath:     getEnv("FFPROBE_PATH", "ffprobe"),
		MaxUploadSizeMB: maxUploadSizeMB,
		AcceptedPrefix:  splitList(getEnv("ACCEPTED_MEDIA_PREFIXES", "video/")),
		SegmentSeconds:  segmentSeconds,
		ThumbnailPct:    thumbnailPct,
		StageTimeout:    stageTimeout,
		AuthSecret:      authSecret,
		UploadsPerHour:  uploadsPerHour,
		StrictSniff:     strictSniff,
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
