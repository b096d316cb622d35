// Package mediafs maps logical asset locations (/videos/{id}/...) onto a
// storage root on the local filesystem.
package mediafs

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/port"
)

var (
	ErrOutsideRoot = errors.New("location resolves outside storage root")
	ErrAssetExists = errors.New("asset directory already exists")
	ErrInvalidName = errors.New("invalid artifact name")
)

const incomingDir = ".incoming"

type Layout struct {
	root string
}

func NewLayout(root string) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Layout{root: abs}, nil
}

func (l *Layout) Root() string {
	return l.root
}

// CreateIncoming opens a fresh temp file for an upload in progress. It
// lives below the root so StoreOriginal can rename it into place.
func (l *Layout) CreateIncoming() (*os.File, error) {
	dir := filepath.Join(l.root, incomingDir)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create incoming directory: %w", err)
	}
	return os.CreateTemp(dir, "upload-*")
}

func (l *Layout) AssetDir(id string) string {
	return filepath.Join(l.root, id)
}

func (l *Layout) PlaylistDir(id string) string {
	return filepath.Join(l.root, id, domain.PlaylistDir)
}

func (l *Layout) ThumbnailDir(id string) string {
	return filepath.Join(l.root, id, domain.ThumbnailDir)
}

// Resolve turns a logical location stored on a record into an absolute path
// under the storage root.
func (l *Layout) Resolve(location string) (string, error) {
	cleaned := path.Clean(location)
	if !strings.HasPrefix(cleaned, domain.LogicalRoot+"/") {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, location)
	}
	rel := strings.TrimPrefix(cleaned, domain.LogicalRoot+"/")
	if rel == "" || strings.HasPrefix(rel, ".") {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, location)
	}
	return filepath.Join(l.root, filepath.FromSlash(rel)), nil
}

// EnsureOutputDirs creates the playlist and thumbnail directories of an
// asset. Existing directories and their contents are left untouched.
func (l *Layout) EnsureOutputDirs(id string) (playlistDir, thumbDir string, err error) {
	playlistDir = l.PlaylistDir(id)
	thumbDir = l.ThumbnailDir(id)
	for _, dir := range []string{playlistDir, thumbDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return playlistDir, thumbDir, nil
}

// StoreOriginal moves the uploaded temp file to the asset's original
// location and returns its size and BLAKE2b-256 digest. The asset directory
// must not exist yet; a second asset never shares it.
func (l *Layout) StoreOriginal(tmpPath string, a *domain.MediaAsset) (*port.StoredFile, error) {
	dest, err := l.Resolve(a.OriginalLocation)
	if err != nil {
		return nil, err
	}

	if err := os.Mkdir(l.AssetDir(a.ID), 0755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetExists, a.ID)
		}
		return nil, fmt.Errorf("create asset directory: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		// Temp dirs are often on another device.
		if err := copyFile(tmpPath, dest); err != nil {
			_ = os.RemoveAll(l.AssetDir(a.ID))
			return nil, fmt.Errorf("store original: %w", err)
		}
		_ = os.Remove(tmpPath)
	}

	size, sum, err := digestFile(dest)
	if err != nil {
		_ = os.RemoveAll(l.AssetDir(a.ID))
		return nil, fmt.Errorf("digest original: %w", err)
	}
	return &port.StoredFile{Path: dest, Size: size, Checksum: sum}, nil
}

// RemoveAsset deletes everything stored for id.
func (l *Layout) RemoveAsset(id string) error {
	if id == "" || strings.ContainsAny(id, `/\`) || id == "." || id == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, id)
	}
	return os.RemoveAll(l.AssetDir(id))
}

// PlaylistFile returns the absolute path of a file inside an asset's
// playlist directory. name must be a bare .m3u8 or .ts file name.
func (l *Layout) PlaylistFile(id, name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".m3u8", ".ts":
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(l.PlaylistDir(id), name), nil
}

var _ port.AssetFiles = (*Layout)(nil)

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func digestFile(p string) (int64, string, error) {
	f, err := os.Open(p)
	if err != nil {
		return 0, "", err
	}
	defer f.Close() //nolint:errcheck

	h, err := blake2b.New256(nil)
	if err != nil {
		return 0, "", err
	}
	n, err := io.Copy(h, f)
	if err != nil {
		return 0, "", err
	}
	return n, hex.EncodeToString(h.Sum(nil)), nil
}
