package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/infrastructure/metrics"
	"github.com/bnema/vodpipe/internal/port"
)

const (
	stageThumbnail = "thumbnail"
	stageProbe     = "probe"
	stageSegment   = "segment"

	interruptedReason = "interrupted by restart"
	maxReasonLength   = 500

	defaultStageTimeout     = 30 * time.Minute
	defaultThumbnailPercent = 10
)

var (
	errZeroDuration  = errors.New("unknown or zero duration")
	errNoVideoStream = errors.New("no video stream")
)

type OrchestratorConfig struct {
	ThumbnailPercent float64
	StageTimeout     time.Duration
}

// Orchestrator turns an uploaded original into a thumbnail, a duration and an
// HLS rendition, then records the outcome on the asset.
type Orchestrator struct {
	store    port.AssetStore
	engine   port.MediaEngine
	files    port.AssetFiles
	eventBus EventPublisher

	thumbnailPercent float64
	stageTimeout     time.Duration
}

func NewOrchestrator(
	store port.AssetStore,
	engine port.MediaEngine,
	files port.AssetFiles,
	eventBus EventPublisher,
	cfg OrchestratorConfig,
) *Orchestrator {
	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = defaultStageTimeout
	}
	if cfg.ThumbnailPercent < 0 || cfg.ThumbnailPercent > 100 {
		cfg.ThumbnailPercent = defaultThumbnailPercent
	}
	return &Orchestrator{
		store:            store,
		engine:           engine,
		files:            files,
		eventBus:         eventBus,
		thumbnailPercent: cfg.ThumbnailPercent,
		stageTimeout:     cfg.StageTimeout,
	}
}

// Process runs the pipeline for one asset. It never returns an error: every
// failure ends in ProcessingFailed. Calling it for an asset that already
// left Uploading does nothing.
func (o *Orchestrator) Process(ctx context.Context, assetID, originalPath string) {
	metrics.PipelinesInFlight.Inc()
	defer metrics.PipelinesInFlight.Dec()

	defer func() {
		if r := recover(); r != nil {
			logger.Error.Printf("asset %s: panic during processing: %v", assetID, r)
			o.fail(ctx, assetID, fmt.Sprintf("internal error: %v", r))
		}
	}()

	if err := o.store.MarkProcessing(ctx, assetID); err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) || errors.Is(err, domain.ErrNotFound) {
			logger.Warn.Printf("asset %s: not processing: %v", assetID, err)
			return
		}
		logger.Error.Printf("asset %s: mark processing: %v", assetID, err)
		o.fail(ctx, assetID, "mark processing: "+err.Error())
		return
	}
	o.publish(assetID, domain.AssetStateProcessing, "")
	logger.Info.Printf("asset %s: processing started", assetID)

	playlistDir, thumbDir, err := o.files.EnsureOutputDirs(assetID)
	if err != nil {
		o.fail(ctx, assetID, "prepare output: "+err.Error())
		return
	}

	if err := o.stage(ctx, stageThumbnail, func(sctx context.Context) error {
		_, err := o.engine.Thumbnail(sctx, originalPath, thumbDir, o.thumbnailPercent)
		return err
	}); err != nil {
		o.fail(ctx, assetID, err.Error())
		return
	}

	var duration float64
	var width, height int
	if err := o.stage(ctx, stageProbe, func(sctx context.Context) error {
		probe, err := o.engine.Probe(sctx, originalPath)
		if err != nil {
			return err
		}
		if probe.VideoStream() == nil {
			return errNoVideoStream
		}
		width, height = probe.Dimensions()
		duration = probe.DurationSeconds()
		if duration <= 0 {
			return errZeroDuration
		}
		return nil
	}); err != nil {
		o.fail(ctx, assetID, err.Error())
		return
	}

	if err := o.stage(ctx, stageSegment, func(sctx context.Context) error {
		manifestPath, err := o.engine.Segment(sctx, originalPath, playlistDir)
		if err != nil {
			return err
		}
		if _, err := os.Stat(manifestPath); err != nil {
			return fmt.Errorf("manifest not written: %w", err)
		}
		return nil
	}); err != nil {
		o.fail(ctx, assetID, err.Error())
		return
	}

	result := domain.ProcessedResult{
		ManifestLocation:  domain.ManifestLocation(assetID),
		ThumbnailLocation: domain.ThumbnailLocation(assetID),
		DurationSeconds:   duration,
	}
	if err := o.store.MarkProcessed(context.WithoutCancel(ctx), assetID, result); err != nil {
		logger.Error.Printf("asset %s: mark processed: %v", assetID, err)
		o.fail(ctx, assetID, "record result: "+err.Error())
		return
	}

	metrics.AssetsFinishedTotal.WithLabelValues(string(domain.AssetStateProcessed)).Inc()
	o.publish(assetID, domain.AssetStateProcessed, "")
	logger.Info.Printf("asset %s: processed (duration=%.2fs, %dx%d)", assetID, duration, width, height)
}

// stage runs fn under the per-stage timeout and records its duration.
func (o *Orchestrator) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	sctx, cancel := context.WithTimeout(ctx, o.stageTimeout)
	defer cancel()

	start := time.Now()
	err := fn(sctx)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.StageDuration.WithLabelValues(name, outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(sctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%s: timed out after %s", name, o.stageTimeout)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

func (o *Orchestrator) fail(ctx context.Context, assetID, reason string) {
	reason = truncateReason(reason, maxReasonLength)
	logger.Error.Printf("asset %s: processing failed: %s", assetID, logger.SanitizeForLog(reason))

	if err := o.store.MarkFailed(context.WithoutCancel(ctx), assetID, reason); err != nil {
		logger.Error.Printf("asset %s: mark failed: %v", assetID, err)
		return
	}
	metrics.AssetsFinishedTotal.WithLabelValues(string(domain.AssetStateFailed)).Inc()
	o.publish(assetID, domain.AssetStateFailed, reason)
}

// truncateReason cuts reason to at most n bytes without splitting a rune.
func truncateReason(reason string, n int) string {
	if len(reason) <= n {
		return reason
	}
	for n > 0 && !utf8.RuneStart(reason[n]) {
		n--
	}
	return reason[:n]
}

func (o *Orchestrator) publish(assetID string, state domain.AssetState, reason string) {
	if o.eventBus == nil {
		return
	}
	o.eventBus.Publish(assetID, Event{
		AssetID:       assetID,
		State:         state,
		FailureReason: reason,
		At:            time.Now().UTC(),
	})
}

// RecoverInterrupted fails every asset a previous process left mid-flight.
// It must run before new uploads are accepted.
func (o *Orchestrator) RecoverInterrupted(ctx context.Context) (int, error) {
	stuck, err := o.store.ListByState(ctx, []domain.AssetState{domain.AssetStateUploading, domain.AssetStateProcessing})
	if err != nil {
		return 0, fmt.Errorf("list interrupted assets: %w", err)
	}

	recovered := 0
	for _, a := range stuck {
		if err := o.store.MarkFailed(ctx, a.ID, interruptedReason); err != nil {
			logger.Error.Printf("asset %s: recover: %v", a.ID, err)
			continue
		}
		metrics.AssetsFinishedTotal.WithLabelValues(string(domain.AssetStateFailed)).Inc()
		recovered++
	}
	if recovered > 0 {
		logger.Warn.Printf("marked %d interrupted asset(s) as %s", recovered, domain.AssetStateFailed)
	}
	return recovered, nil
}
