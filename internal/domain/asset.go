package domain

import (
	"mime"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type AssetState string

const (
	AssetStateUploading  AssetState = "uploading"
	AssetStateProcessing AssetState = "processing"
	AssetStateProcessed  AssetState = "processed"
	AssetStateFailed     AssetState = "processing_failed"
)

// IsTerminal reports whether no further automatic transition leaves s.
func (s AssetState) IsTerminal() bool {
	return s == AssetStateProcessed || s == AssetStateFailed
}

// CanTransitionTo reports whether s -> next is a forward move of the asset
// lifecycle. Processing may be skipped: an asset can go straight from
// Uploading to either terminal state.
func (s AssetState) CanTransitionTo(next AssetState) bool {
	switch s {
	case AssetStateUploading:
		return next == AssetStateProcessing || next.IsTerminal()
	case AssetStateProcessing:
		return next.IsTerminal()
	default:
		return false
	}
}

func (s AssetState) Valid() bool {
	switch s {
	case AssetStateUploading, AssetStateProcessing, AssetStateProcessed, AssetStateFailed:
		return true
	}
	return false
}

// Fixed names inside an asset directory. Derived paths are deterministic so
// nothing ever has to be searched for on disk.
const (
	LogicalRoot        = "/videos"
	PlaylistDir        = "hls"
	ManifestFile       = "master.m3u8"
	ThumbnailDir       = "thumbnails"
	ThumbnailFile      = "thumbnail-01.png"
	OriginalBaseName   = "original"
	DefaultOriginalExt = ".bin"
)

type MediaAsset struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Description       string     `json:"description"`
	OwnerID           string     `json:"ownerId"`
	OriginalFileName  string     `json:"originalFileName"`
	OriginalLocation  string     `json:"originalLocation"`
	ContentType       string     `json:"contentType"`
	SizeBytes         int64      `json:"sizeBytes"`
	Checksum          string     `json:"checksum,omitempty"`
	State             AssetState `json:"state"`
	DurationSeconds   float64    `json:"durationSeconds,omitempty"`
	ManifestLocation  string     `json:"manifestLocation,omitempty"`
	ThumbnailLocation string     `json:"thumbnailLocation,omitempty"`
	FailureReason     string     `json:"failureReason,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

type NewAssetParams struct {
	Title            string
	Description      string
	OwnerID          string
	OriginalFileName string
	ContentType      string
	SizeBytes        int64
}

// NewAsset allocates an id and fixes the original location for it. The
// returned asset is in the Uploading state.
func NewAsset(p NewAssetParams) *MediaAsset {
	id := uuid.NewString()
	now := time.Now().UTC()

	return &MediaAsset{
		ID:               id,
		Title:            p.Title,
		Description:      p.Description,
		OwnerID:          p.OwnerID,
		OriginalFileName: p.OriginalFileName,
		OriginalLocation: OriginalLocation(id, OriginalExt(p.OriginalFileName, p.ContentType)),
		ContentType:      p.ContentType,
		SizeBytes:        p.SizeBytes,
		State:            AssetStateUploading,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

type ProcessedResult struct {
	ManifestLocation  string
	ThumbnailLocation string
	DurationSeconds   float64
}

func (a *MediaAsset) MarkProcessing() error {
	if !a.State.CanTransitionTo(AssetStateProcessing) {
		return ErrInvalidTransition
	}
	a.State = AssetStateProcessing
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (a *MediaAsset) MarkProcessed(r ProcessedResult) error {
	if !a.State.CanTransitionTo(AssetStateProcessed) {
		return ErrInvalidTransition
	}
	a.State = AssetStateProcessed
	a.ManifestLocation = r.ManifestLocation
	a.ThumbnailLocation = r.ThumbnailLocation
	a.DurationSeconds = r.DurationSeconds
	a.FailureReason = ""
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func (a *MediaAsset) MarkFailed(reason string) error {
	if !a.State.CanTransitionTo(AssetStateFailed) {
		return ErrInvalidTransition
	}
	a.State = AssetStateFailed
	a.FailureReason = reason
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// Streamable reports whether the record claims a playable manifest.
func (a *MediaAsset) Streamable() bool {
	return a.State == AssetStateProcessed && a.ManifestLocation != ""
}

func AssetLocation(id string) string {
	return path.Join(LogicalRoot, id)
}

func OriginalLocation(id, ext string) string {
	return path.Join(LogicalRoot, id, OriginalBaseName+ext)
}

func ManifestLocation(id string) string {
	return path.Join(LogicalRoot, id, PlaylistDir, ManifestFile)
}

func ThumbnailLocation(id string) string {
	return path.Join(LogicalRoot, id, ThumbnailDir, ThumbnailFile)
}

var extPattern = regexp.MustCompile(`^\.[a-z0-9]{1,8}$`)

// OriginalExt picks the extension of the stored original: the uploaded
// filename's extension when it looks sane, otherwise one registered for the
// content type.
func OriginalExt(filename, contentType string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(filename, "\\", "/")))
	if extPattern.MatchString(ext) {
		return ext
	}
	if contentType != "" {
		if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
			return exts[0]
		}
	}
	return DefaultOriginalExt
}
