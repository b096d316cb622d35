// Package validation holds upload checks that run before a file reaches the
// ingest service.
package validation

import (
	"errors"
	"io"
	"net/http"
	"strings"
)

// magicBytesBufferSize is the number of bytes to read for content type detection.
const magicBytesBufferSize = 512

// unknownBinary is what http.DetectContentType reports for bytes it cannot
// classify. Many valid containers land here, so it is not a rejection.
const unknownBinary = "application/octet-stream"

// SniffVideo detects the content type of an upload from its first bytes and
// reports whether it may be a video. The reader is rewound before returning.
func SniffVideo(reader io.ReadSeeker) (detected string, plausible bool, err error) {
	buf := make([]byte, magicBytesBufferSize)
	n, err := io.ReadFull(reader, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", false, err
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return "", false, err
	}

	if n == 0 {
		return unknownBinary, false, nil
	}
	buf = buf[:n]

	detected = detectVideoContainer(buf)
	if detected == "" {
		detected = http.DetectContentType(buf)
	}

	return detected, isPlausibleVideo(detected), nil
}

func isPlausibleVideo(mime string) bool {
	mime = strings.ToLower(mime)
	switch {
	case strings.HasPrefix(mime, "video/"):
		return true
	case mime == unknownBinary, mime == "application/ogg":
		return true
	default:
		return false
	}
}

// detectVideoContainer recognises containers http.DetectContentType misses
// or reports too generically.
func detectVideoContainer(buf []byte) string {
	if len(buf) < 4 {
		return ""
	}

	// WebM/Matroska: EBML header
	if buf[0] == 0x1A && buf[1] == 0x45 && buf[2] == 0xDF && buf[3] == 0xA3 {
		if strings.Contains(string(buf), "matroska") {
			return "video/x-matroska"
		}
		return "video/webm"
	}

	// FLV
	if buf[0] == 'F' && buf[1] == 'L' && buf[2] == 'V' && buf[3] == 0x01 {
		return "video/x-flv"
	}

	// MPEG transport stream: sync byte every 188 bytes
	if buf[0] == 0x47 && len(buf) > 188 && buf[188] == 0x47 {
		return "video/mp2t"
	}

	// ISO BMFF: [size]["ftyp"][brand]
	if len(buf) >= 12 && string(buf[4:8]) == "ftyp" {
		brand := string(buf[8:12])
		switch {
		case brand == "qt  ":
			return "video/quicktime"
		case strings.HasPrefix(brand, "3gp"):
			return "video/3gpp"
		case brand == "M4A ":
			return "audio/mp4"
		default:
			return "video/mp4"
		}
	}

	return ""
}
