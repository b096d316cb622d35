package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bnema/vodpipe/internal/adapter/http/validation"
	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/service"
)

const (
	videoField    = "videoFile"
	maxFieldBytes = 64 << 10
	// room for the non-file parts of the multipart body
	multipartOverhead = 1 << 20
)

const (
	msgUploaded        = "Video uploaded successfully. Processing has started."
	msgSaveFailed      = "Error saving video information."
	msgUploadFailed    = "Error receiving the uploaded file."
	msgMalformedUpload = "Malformed upload request."
	msgTooManyUploads  = "Too many uploads. Please try again later."
	msgVideoNotFound   = "Video not found."
	msgDetailsFailed   = "Error fetching video details."
	msgNotStreamable   = "Video not found or not processed for streaming."
	msgPlaylistFailed  = "Could not send HLS playlist."
	msgStreamFailed    = "Error streaming video."
)

type IngestService interface {
	NewUploadFile() (*os.File, error)
	AcceptsContentType(contentType string) bool
	MaxUploadBytes() int64
	Ingest(ctx context.Context, req service.UploadRequest) (*domain.MediaAsset, error)
}

type DeliveryService interface {
	Asset(ctx context.Context, id string) (*domain.MediaAsset, error)
	Manifest(ctx context.Context, id string) (string, error)
	PlaylistFile(ctx context.Context, id, name string) (string, error)
	Thumbnail(ctx context.Context, id string) (string, error)
}

type UploadLimiter interface {
	Allow(ownerID string) (bool, time.Duration)
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	ingest      IngestService
	delivery    DeliveryService
	health      HealthChecker
	limiter     UploadLimiter
	strictSniff bool
}

// NewHandlers wires the JSON and HLS handlers. limiter may be nil to
// disable upload rate limiting.
func NewHandlers(ingest IngestService, delivery DeliveryService, health HealthChecker, limiter UploadLimiter, strictSniff bool) *Handlers {
	return &Handlers{
		ingest:      ingest,
		delivery:    delivery,
		health:      health,
		limiter:     limiter,
		strictSniff: strictSniff,
	}
}

type uploadResponse struct {
	Message string             `json:"message"`
	Video   *domain.MediaAsset `json:"video"`
}

// errRejected marks an upload that was answered before it reached the
// ingest service.
type errRejected struct {
	status  int
	message string
}

func (e *errRejected) Error() string { return e.message }

func rejectValidation(err *domain.ValidationError) *errRejected {
	status := http.StatusBadRequest
	if err == domain.ErrPayloadTooLarge {
		status = http.StatusRequestEntityTooLarge
	}
	return &errRejected{status: status, message: err.Message}
}

func (h *Handlers) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := OwnerFromContext(r.Context())

		if h.limiter != nil {
			if ok, retryAfter := h.limiter.Allow(owner); !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
				writeMessage(w, http.StatusTooManyRequests, msgTooManyUploads)
				return
			}
		}

		if limit := h.ingest.MaxUploadBytes(); limit > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)
		}

		req, err := h.receive(r)
		if err != nil {
			var rejected *errRejected
			if errors.As(err, &rejected) {
				writeMessage(w, rejected.status, rejected.message)
				return
			}
			logger.Error.Printf("upload from %s: %v", logger.SanitizeForLog(owner), err)
			writeMessage(w, http.StatusInternalServerError, msgUploadFailed)
			return
		}
		req.OwnerID = owner

		asset, err := h.ingest.Ingest(r.Context(), req)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				rejected := rejectValidation(verr)
				writeMessage(w, rejected.status, rejected.message)
				return
			}
			writeMessage(w, http.StatusInternalServerError, msgSaveFailed)
			return
		}

		w.Header().Set("Location", "/videos/"+asset.ID)
		writeJSON(w, http.StatusCreated, uploadResponse{Message: msgUploaded, Video: asset})
	}
}

// receive streams the multipart body. The video part goes straight into an
// incoming temp file; form fields may come before or after it. On error no
// temp file is left behind.
func (h *Handlers) receive(r *http.Request) (req service.UploadRequest, err error) {
	mr, err := r.MultipartReader()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return req, rejectValidation(domain.ErrMissingFile)
		}
		return req, &errRejected{status: http.StatusBadRequest, message: msgMalformedUpload}
	}

	defer func() {
		if err != nil && req.TempPath != "" {
			_ = os.Remove(req.TempPath)
			req.TempPath = ""
		}
	}()

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return req, classifyBodyError(err)
		}

		switch part.FormName() {
		case videoField:
			if req.TempPath != "" || part.FileName() == "" {
				break
			}
			if err := h.receiveFile(part, &req); err != nil {
				_ = part.Close()
				return req, err
			}
		case "title":
			if req.Title, err = readField(part); err != nil {
				_ = part.Close()
				return req, err
			}
		case "description":
			if req.Description, err = readField(part); err != nil {
				_ = part.Close()
				return req, err
			}
		}
		_ = part.Close()
	}

	if req.TempPath != "" && h.strictSniff {
		if err := sniff(req.TempPath); err != nil {
			return req, err
		}
	}
	return req, nil
}

func (h *Handlers) receiveFile(part *multipart.Part, req *service.UploadRequest) error {
	req.FileName = validation.ClientFilename(part.FileName())
	req.ContentType = part.Header.Get("Content-Type")

	// Rejected before anything is written to disk.
	if !h.ingest.AcceptsContentType(req.ContentType) {
		return rejectValidation(domain.ErrUnsupportedMediaType)
	}

	f, err := h.ingest.NewUploadFile()
	if err != nil {
		return fmt.Errorf("create upload file: %w", err)
	}
	req.TempPath = f.Name()

	n, err := io.Copy(f, part)
	closeErr := f.Close()
	if err != nil {
		return classifyBodyError(err)
	}
	if closeErr != nil {
		return fmt.Errorf("close upload file: %w", closeErr)
	}

	if limit := h.ingest.MaxUploadBytes(); limit > 0 && n > limit {
		return rejectValidation(domain.ErrPayloadTooLarge)
	}
	req.Size = n
	return nil
}

func readField(part *multipart.Part) (string, error) {
	b, err := io.ReadAll(io.LimitReader(part, maxFieldBytes+1))
	if err != nil {
		return "", classifyBodyError(err)
	}
	if len(b) > maxFieldBytes {
		return "", &errRejected{status: http.StatusBadRequest, message: msgMalformedUpload}
	}
	return string(b), nil
}

func classifyBodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return rejectValidation(domain.ErrPayloadTooLarge)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, multipart.ErrMessageTooLarge) {
		return &errRejected{status: http.StatusBadRequest, message: msgMalformedUpload}
	}
	return fmt.Errorf("read upload body: %w", err)
}

func sniff(p string) error {
	f, err := os.Open(p)
	if err != nil {
		return fmt.Errorf("open upload file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	detected, plausible, err := validation.SniffVideo(f)
	if err != nil {
		return fmt.Errorf("sniff upload file: %w", err)
	}
	if !plausible {
		logger.Info.Printf("upload rejected: content sniffed as %s", detected)
		return rejectValidation(domain.ErrUnsupportedMediaType)
	}
	return nil
}

func (h *Handlers) Asset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		asset, err := h.delivery.Asset(r.Context(), r.PathValue("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				writeMessage(w, http.StatusNotFound, msgVideoNotFound)
				return
			}
			logger.Error.Printf("fetch asset %s: %v", logger.SanitizeForLog(r.PathValue("id")), err)
			writeMessage(w, http.StatusInternalServerError, msgDetailsFailed)
			return
		}
		writeJSON(w, http.StatusOK, asset)
	}
}

func (h *Handlers) Manifest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		p, err := h.delivery.Manifest(r.Context(), id)
		if err != nil {
			h.deliveryError(w, id, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.apple.mpegurl")
		w.Header().Set("Cache-Control", "no-cache")
		if err := serveFile(w, r, p); err != nil {
			logger.Error.Printf("state drift: send manifest %s of asset %s: %v", p, logger.SanitizeForLog(id), err)
			writeMessage(w, http.StatusInternalServerError, msgPlaylistFailed)
		}
	}
}

// Segment serves the .ts files the manifest references as hls/<name>. The
// playlist itself is only served by Manifest, since its segment URIs are
// relative to /videos/{id}/.
func (h *Handlers) Segment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		name := r.PathValue("file")
		if filepath.Ext(name) != ".ts" {
			writeMessage(w, http.StatusNotFound, msgNotStreamable)
			return
		}
		p, err := h.delivery.PlaylistFile(r.Context(), id, name)
		if err != nil {
			h.deliveryError(w, id, err)
			return
		}
		w.Header().Set("Content-Type", "video/mp2t")
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		if err := serveFile(w, r, p); err != nil {
			writeMessage(w, http.StatusNotFound, msgNotStreamable)
		}
	}
}

func (h *Handlers) Thumbnail() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		p, err := h.delivery.Thumbnail(r.Context(), id)
		if err != nil {
			h.deliveryError(w, id, err)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition", validation.ThumbnailDisposition(id))
		w.Header().Set("Cache-Control", "public, max-age=86400")
		if err := serveFile(w, r, p); err != nil {
			writeMessage(w, http.StatusNotFound, msgNotStreamable)
		}
	}
}

func (h *Handlers) deliveryError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNotProcessed):
		writeMessage(w, http.StatusNotFound, msgNotStreamable)
	case errors.Is(err, domain.ErrManifestMissing):
		writeMessage(w, http.StatusInternalServerError, msgPlaylistFailed)
	default:
		logger.Error.Printf("stream asset %s: %v", logger.SanitizeForLog(id), err)
		writeMessage(w, http.StatusInternalServerError, msgStreamFailed)
	}
}

func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.health.Ping(ctx); err != nil {
			logger.Error.Printf("health check: %v", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// serveFile sends an already resolved file. Content-Type must be set by the
// caller. Nothing is written when the file cannot be opened.
func serveFile(w http.ResponseWriter, r *http.Request, p string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	info, err := f.Stat()
	if err != nil {
		return err
	}
	http.ServeContent(w, r, filepath.Base(p), info.ModTime(), f)
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn.Printf("write json response: %v", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
