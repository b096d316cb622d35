package port

import (
	"os"

	"github.com/bnema/vodpipe/internal/domain"
)

type StoredFile struct {
	Path     string
	Size     int64
	Checksum string
}

// AssetFiles owns the on-disk layout of every asset below the storage root.
type AssetFiles interface {
	CreateIncoming() (*os.File, error)
	StoreOriginal(tmpPath string, a *domain.MediaAsset) (*StoredFile, error)
	EnsureOutputDirs(id string) (playlistDir, thumbDir string, err error)
	Resolve(location string) (string, error)
	PlaylistFile(id, name string) (string, error)
	RemoveAsset(id string) error
}
