package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrNotProcessed      = errors.New("asset not processed for streaming")
	ErrManifestMissing   = errors.New("manifest recorded but missing from storage")
	ErrInvalidTransition = errors.New("invalid asset state transition")
)

// ValidationError is a rejected upload. Message is safe to show to clients.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Code + ": " + e.Message
}

var (
	ErrMissingFile          = &ValidationError{Code: "missing_file", Message: "No video file uploaded."}
	ErrMissingTitle         = &ValidationError{Code: "missing_title", Message: "Video title is required."}
	ErrUnsupportedMediaType = &ValidationError{Code: "unsupported_media_type", Message: "Not a video file! Please upload only videos."}
	ErrPayloadTooLarge      = &ValidationError{Code: "payload_too_large", Message: "File too large."}
)
