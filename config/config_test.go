package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("DATA_DIR", "/srv/vodpipe")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 7890, cfg.Port)
	assert.Equal(t, "/srv/vodpipe", cfg.DataDir)
	assert.Equal(t, "/srv/vodpipe/videos", cfg.StorageRoot)
	assert.Equal(t, "sqlite", cfg.StoreBackend)
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "ffprobe", cfg.FFprobePath)
	assert.Equal(t, 500, cfg.MaxUploadSizeMB)
	assert.Equal(t, int64(500*1024*1024), cfg.MaxUploadBytes())
	assert.Equal(t, []string{"video/"}, cfg.AcceptedPrefix)
	assert.Equal(t, 10, cfg.SegmentSeconds)
	assert.Equal(t, 10.0, cfg.ThumbnailPct)
	assert.Equal(t, 30*time.Minute, cfg.StageTimeout)
	assert.Equal(t, 30, cfg.UploadsPerHour)
	assert.False(t, cfg.StrictSniff)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_ROOT", "/mnt/media")
	t.Setenv("STORE_BACKEND", "JSON")
	t.Setenv("ACCEPTED_MEDIA_PREFIXES", " Video/ , application/x-mpegurl,,")
	t.Setenv("HLS_SEGMENT_SECONDS", "6")
	t.Setenv("THUMBNAIL_PERCENT", "25.5")
	t.Setenv("STAGE_TIMEOUT", "90s")
	t.Setenv("STRICT_SNIFF", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "/mnt/media", cfg.StorageRoot)
	assert.Equal(t, "json", cfg.StoreBackend)
	assert.Equal(t, []string{"video/", "application/x-mpegurl"}, cfg.AcceptedPrefix)
	assert.Equal(t, 6, cfg.SegmentSeconds)
	assert.Equal(t, 25.5, cfg.ThumbnailPct)
	assert.Equal(t, 90*time.Second, cfg.StageTimeout)
	assert.True(t, cfg.StrictSniff)
}

func TestFromEnv_Errors(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		value  string
		errMsg string
	}{
		{name: "bad port", key: "PORT", value: "abc", errMsg: "invalid PORT"},
		{name: "bad upload size", key: "MAX_UPLOAD_SIZE_MB", value: "0", errMsg: "invalid MAX_UPLOAD_SIZE_MB"},
		{name: "bad segment", key: "HLS_SEGMENT_SECONDS", value: "-2", errMsg: "invalid HLS_SEGMENT_SECONDS"},
		{name: "bad percent", key: "THUMBNAIL_PERCENT", value: "120", errMsg: "invalid THUMBNAIL_PERCENT"},
		{name: "bad timeout", key: "STAGE_TIMEOUT", value: "forever", errMsg: "invalid STAGE_TIMEOUT"},
		{name: "bad backend", key: "STORE_BACKEND", value: "mongo", errMsg: "invalid STORE_BACKEND"},
		{name: "bad sniff flag", key: "STRICT_SNIFF", value: "maybe", errMsg: "invalid STRICT_SNIFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("AUTH_SECRET", "s3cret")
			t.Setenv(tt.key, tt.value)

			cfg, err := FromEnv()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestFromEnv_RequiresAuthSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")

	_, err := FromEnv()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_SECRET is required")
}
