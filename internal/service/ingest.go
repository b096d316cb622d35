package service

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"strings"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/infrastructure/metrics"
	"github.com/bnema/vodpipe/internal/port"
)

const dispatchRefusedReason = "not started: server shutting down"

// UploadRequest is a received upload whose bytes already sit in TempPath.
// An empty TempPath means no file was sent.
type UploadRequest struct {
	TempPath    string
	FileName    string
	ContentType string
	Size        int64
	Title       string
	Description string
	OwnerID     string
}

type IngestConfig struct {
	AcceptedPrefixes []string
	MaxUploadBytes   int64
}

type IngestService struct {
	store      port.AssetStore
	files      port.AssetFiles
	dispatcher port.Dispatcher
	prefixes   []string
	maxBytes   int64
}

func NewIngestService(store port.AssetStore, files port.AssetFiles, dispatcher port.Dispatcher, cfg IngestConfig) *IngestService {
	prefixes := cfg.AcceptedPrefixes
	if len(prefixes) == 0 {
		prefixes = []string{"video/"}
	}
	return &IngestService{
		store:      store,
		files:      files,
		dispatcher: dispatcher,
		prefixes:   prefixes,
		maxBytes:   cfg.MaxUploadBytes,
	}
}

// NewUploadFile opens the temp file an upload body is streamed into.
func (s *IngestService) NewUploadFile() (*os.File, error) {
	return s.files.CreateIncoming()
}

// AcceptsContentType reports whether a declared content type starts with
// one of the accepted media-type prefixes.
func (s *IngestService) AcceptsContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if mediaType == "" {
		return false
	}
	for _, prefix := range s.prefixes {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}
	return false
}

func (s *IngestService) MaxUploadBytes() int64 {
	return s.maxBytes
}

// Ingest validates the upload, stores the original, creates the record and
// only then hands the asset to the dispatcher. Rejected uploads leave
// neither a record nor a file behind.
func (s *IngestService) Ingest(ctx context.Context, req UploadRequest) (*domain.MediaAsset, error) {
	if req.TempPath == "" {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, domain.ErrMissingFile
	}

	if err := s.validate(req); err != nil {
		discard(req.TempPath)
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		return nil, err
	}

	asset := domain.NewAsset(domain.NewAssetParams{
		Title:            strings.TrimSpace(req.Title),
		Description:      strings.TrimSpace(req.Description),
		OwnerID:          req.OwnerID,
		OriginalFileName: req.FileName,
		ContentType:      req.ContentType,
		SizeBytes:        req.Size,
	})

	stored, err := s.files.StoreOriginal(req.TempPath, asset)
	if err != nil {
		discard(req.TempPath)
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		logger.Error.Printf("failed to store original for asset %s: %v", asset.ID, err)
		return nil, fmt.Errorf("store original: %w", err)
	}
	asset.SizeBytes = stored.Size
	asset.Checksum = stored.Checksum

	if err := s.store.Create(ctx, asset); err != nil {
		if rmErr := s.files.RemoveAsset(asset.ID); rmErr != nil {
			logger.Error.Printf("failed to remove original of unsaved asset %s: %v", asset.ID, rmErr)
		}
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		logger.Error.Printf("failed to save asset %s: %v", asset.ID, err)
		return nil, fmt.Errorf("save asset: %w", err)
	}

	metrics.UploadsTotal.WithLabelValues("accepted").Inc()
	metrics.UploadBytes.Add(float64(stored.Size))
	logger.Info.Printf("asset uploaded: id=%s, title=%s, file=%s, size=%d",
		asset.ID, logger.SanitizeForLog(asset.Title), logger.SanitizeForLog(asset.OriginalFileName), stored.Size)

	snapshot := *asset
	if !s.dispatcher.Dispatch(asset.ID, stored.Path) {
		if err := s.store.MarkFailed(context.WithoutCancel(ctx), asset.ID, dispatchRefusedReason); err != nil {
			logger.Error.Printf("asset %s: mark failed after refused dispatch: %v", asset.ID, err)
		}
	}

	return &snapshot, nil
}

func (s *IngestService) validate(req UploadRequest) error {
	if !s.AcceptsContentType(req.ContentType) {
		return domain.ErrUnsupportedMediaType
	}
	if strings.TrimSpace(req.Title) == "" {
		return domain.ErrMissingTitle
	}
	if s.maxBytes > 0 && req.Size > s.maxBytes {
		return domain.ErrPayloadTooLarge
	}
	return nil
}

func discard(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn.Printf("failed to remove temp upload %s: %v", path, err)
	}
}
