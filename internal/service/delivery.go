package service

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/infrastructure/metrics"
	"github.com/bnema/vodpipe/internal/port"
)

// DeliveryService resolves playback artifacts of processed assets. The
// record is always checked before the filesystem is touched.
type DeliveryService struct {
	store port.AssetStore
	files port.AssetFiles
}

func NewDeliveryService(store port.AssetStore, files port.AssetFiles) *DeliveryService {
	return &DeliveryService{store: store, files: files}
}

func (s *DeliveryService) Asset(ctx context.Context, id string) (*domain.MediaAsset, error) {
	return s.store.Get(ctx, id)
}

func (s *DeliveryService) streamable(ctx context.Context, id string) (*domain.MediaAsset, error) {
	asset, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !asset.Streamable() {
		return nil, domain.ErrNotProcessed
	}
	return asset, nil
}

// Manifest returns the absolute path of the asset's playlist. A processed
// record whose playlist is gone is reported as ErrManifestMissing.
func (s *DeliveryService) Manifest(ctx context.Context, id string) (string, error) {
	asset, err := s.streamable(ctx, id)
	if err != nil {
		return "", err
	}

	p, err := s.files.Resolve(asset.ManifestLocation)
	if err != nil {
		return "", s.drift(asset, asset.ManifestLocation, err)
	}
	if ok, err := regularFile(p); err != nil || !ok {
		if err == nil {
			err = os.ErrNotExist
		}
		return "", s.drift(asset, p, err)
	}
	return p, nil
}

// PlaylistFile returns a file of the asset's playlist directory, usually a
// segment referenced by the manifest.
func (s *DeliveryService) PlaylistFile(ctx context.Context, id, name string) (string, error) {
	if _, err := s.streamable(ctx, id); err != nil {
		return "", err
	}

	p, err := s.files.PlaylistFile(id, name)
	if err != nil {
		return "", domain.ErrNotFound
	}
	ok, err := regularFile(p)
	if err != nil {
		return "", fmt.Errorf("stat playlist file: %w", err)
	}
	if !ok {
		return "", domain.ErrNotFound
	}
	return p, nil
}

func (s *DeliveryService) Thumbnail(ctx context.Context, id string) (string, error) {
	asset, err := s.streamable(ctx, id)
	if err != nil {
		return "", err
	}
	if asset.ThumbnailLocation == "" {
		return "", domain.ErrNotFound
	}

	p, err := s.files.Resolve(asset.ThumbnailLocation)
	if err != nil {
		return "", domain.ErrNotFound
	}
	ok, err := regularFile(p)
	if err != nil {
		return "", fmt.Errorf("stat thumbnail: %w", err)
	}
	if !ok {
		return "", domain.ErrNotFound
	}
	return p, nil
}

func (s *DeliveryService) drift(asset *domain.MediaAsset, location string, cause error) error {
	metrics.StateDriftTotal.Inc()
	logger.Error.Printf("state drift: asset %s is %s but manifest %s is unavailable: %v",
		asset.ID, asset.State, location, cause)
	return fmt.Errorf("%w: %s", domain.ErrManifestMissing, asset.ID)
}

func regularFile(p string) (bool, error) {
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
