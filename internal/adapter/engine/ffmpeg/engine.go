package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/port"
)

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrInvalidPath = errors.New("path contains null byte")
)

const stderrTailBytes = 2048

func validatePath(p string) error {
	if p == "" {
		return ErrEmptyPath
	}
	if strings.ContainsRune(p, 0) {
		return ErrInvalidPath
	}
	return nil
}

type Engine struct {
	ffmpegPath     string
	ffprobePath    string
	segmentSeconds int
}

func NewEngine(ffmpegPath, ffprobePath string, segmentSeconds int) *Engine {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	if segmentSeconds <= 0 {
		segmentSeconds = 10
	}
	return &Engine{
		ffmpegPath:     ffmpegPath,
		ffprobePath:    ffprobePath,
		segmentSeconds: segmentSeconds,
	}
}

func probeArgs(inputPath string) []string {
	return []string{
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		inputPath,
	}
}

func thumbnailArgs(inputPath, outputPath string, offsetSeconds float64) []string {
	return []string{
		"-ss", domain.FormatTimestamp(offsetSeconds),
		"-i", inputPath,
		"-frames:v", "1",
		"-y",
		outputPath,
	}
}

// segmentBaseURL prefixes every segment URI in the playlist. The manifest is
// served one level above the playlist directory, at /videos/{id}/manifest,
// so segments resolve to /videos/{id}/hls/<segment>.
const segmentBaseURL = domain.PlaylistDir + "/"

func segmentArgs(inputPath, manifestPath string, segmentSeconds int) []string {
	return []string{
		"-i", inputPath,
		"-profile:v", "baseline",
		"-level", "3.0",
		"-start_number", "0",
		"-hls_time", strconv.Itoa(segmentSeconds),
		"-hls_list_size", "0",
		"-hls_base_url", segmentBaseURL,
		"-f", "hls",
		"-y",
		manifestPath,
	}
}

func (e *Engine) Probe(ctx context.Context, inputPath string) (*domain.ProbeResult, error) {
	if err := validatePath(inputPath); err != nil {
		return nil, fmt.Errorf("invalid input path: %w", err)
	}

	cmd := exec.CommandContext(ctx, e.ffprobePath, probeArgs(inputPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		return nil, commandError(ctx, "ffprobe", err, stderr.Bytes())
	}

	result, err := domain.ParseProbeJSON(output)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Thumbnail grabs one frame at atPercent of the input's duration and writes
// it to outDir/thumbnail-01.png.
func (e *Engine) Thumbnail(ctx context.Context, inputPath, outDir string, atPercent float64) (string, error) {
	if err := validatePath(inputPath); err != nil {
		return "", fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(outDir); err != nil {
		return "", fmt.Errorf("invalid output dir: %w", err)
	}

	var offset float64
	if probe, err := e.Probe(ctx, inputPath); err == nil {
		offset = probe.DurationSeconds() * atPercent / 100
	} else {
		logger.Debug.Printf("thumbnail: probe failed for %s, using first frame: %v", logger.SanitizeForLog(inputPath), err)
	}

	outputPath := filepath.Join(outDir, domain.ThumbnailFile)
	if err := e.run(ctx, thumbnailArgs(inputPath, outputPath, offset)); err != nil {
		return "", fmt.Errorf("thumbnail: %w", err)
	}
	return outputPath, nil
}

// Segment writes an HLS VOD playlist and its segments into outDir.
func (e *Engine) Segment(ctx context.Context, inputPath, outDir string) (string, error) {
	if err := validatePath(inputPath); err != nil {
		return "", fmt.Errorf("invalid input path: %w", err)
	}
	if err := validatePath(outDir); err != nil {
		return "", fmt.Errorf("invalid output dir: %w", err)
	}

	manifestPath := filepath.Join(outDir, domain.ManifestFile)
	if err := e.run(ctx, segmentArgs(inputPath, manifestPath, e.segmentSeconds)); err != nil {
		return "", fmt.Errorf("segment: %w", err)
	}
	return manifestPath, nil
}

func (e *Engine) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, e.ffmpegPath, append([]string{"-hide_banner", "-loglevel", "error"}, args...)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug.Printf("exec %s %s", e.ffmpegPath, logger.SanitizeForLog(strings.Join(args, " ")))
	if err := cmd.Run(); err != nil {
		return commandError(ctx, "ffmpeg", err, stderr.Bytes())
	}
	return nil
}

func commandError(ctx context.Context, name string, err error, stderr []byte) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s: %w", name, ctxErr)
	}
	if len(stderr) > stderrTailBytes {
		stderr = stderr[len(stderr)-stderrTailBytes:]
	}
	msg := strings.TrimSpace(string(stderr))
	if msg == "" {
		return fmt.Errorf("%s failed: %w", name, err)
	}
	return fmt.Errorf("%s failed: %w: %s", name, err, msg)
}

var _ port.MediaEngine = (*Engine)(nil)
