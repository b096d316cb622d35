package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vodpipe/internal/adapter/storage/mediafs"
	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/port/mocks"
)

type ingestFixture struct {
	store      *mocks.AssetStoreMock
	dispatcher *mocks.DispatcherMock
	layout     *mediafs.Layout
	svc        *IngestService
}

func newIngestFixture(t *testing.T) *ingestFixture {
	t.Helper()
	layout, err := mediafs.NewLayout(t.TempDir())
	require.NoError(t, err)

	f := &ingestFixture{
		store:      mocks.NewAssetStoreMock(t),
		dispatcher: mocks.NewDispatcherMock(t),
		layout:     layout,
	}
	f.svc = NewIngestService(f.store, layout, f.dispatcher, IngestConfig{
		AcceptedPrefixes: []string{"video/"},
		MaxUploadBytes:   1 << 20,
	})
	return f
}

func (f *ingestFixture) tempUpload(t *testing.T, content string) string {
	t.Helper()
	file, err := f.svc.NewUploadFile()
	require.NoError(t, err)
	_, err = file.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, file.Close())
	return file.Name()
}

func TestIngestService_Ingest_Success(t *testing.T) {
	f := newIngestFixture(t)
	tmp := f.tempUpload(t, "mp4 bytes")

	var created *domain.MediaAsset
	f.store.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.MediaAsset")).
		Run(func(_ context.Context, a *domain.MediaAsset) { created = a }).
		Return(nil).Once()

	var dispatchedPath string
	f.dispatcher.EXPECT().Dispatch(mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(id, p string) {
			require.NotNil(t, created, "record must exist before dispatch")
			assert.Equal(t, created.ID, id)
			dispatchedPath = p
		}).
		Return(true).Once()

	asset, err := f.svc.Ingest(context.Background(), UploadRequest{
		TempPath:    tmp,
		FileName:    "intro.mp4",
		ContentType: "video/mp4",
		Size:        9,
		Title:       "  Intro ",
		Description: "first",
		OwnerID:     "owner-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "Intro", asset.Title)
	assert.Equal(t, "first", asset.Description)
	assert.Equal(t, "owner-1", asset.OwnerID)
	assert.Equal(t, domain.AssetStateUploading, asset.State)
	assert.Equal(t, "/videos/"+asset.ID+"/original.mp4", asset.OriginalLocation)
	assert.Equal(t, int64(9), asset.SizeBytes)
	assert.Len(t, asset.Checksum, 64)

	assert.Equal(t, filepath.Join(f.layout.AssetDir(asset.ID), "original.mp4"), dispatchedPath)
	assert.FileExists(t, dispatchedPath)
	assert.NoFileExists(t, tmp)
}

func TestIngestService_Ingest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     UploadRequest
		wantErr error
	}{
		{
			name:    "missing file",
			req:     UploadRequest{Title: "t", ContentType: "video/mp4"},
			wantErr: domain.ErrMissingFile,
		},
		{
			name:    "non video content type",
			req:     UploadRequest{Title: "t", ContentType: "text/plain", Size: 3},
			wantErr: domain.ErrUnsupportedMediaType,
		},
		{
			name:    "empty content type",
			req:     UploadRequest{Title: "t", Size: 3},
			wantErr: domain.ErrUnsupportedMediaType,
		},
		{
			name:    "missing title",
			req:     UploadRequest{ContentType: "video/mp4", Size: 3},
			wantErr: domain.ErrMissingTitle,
		},
		{
			name:    "blank title",
			req:     UploadRequest{Title: "   ", ContentType: "video/mp4", Size: 3},
			wantErr: domain.ErrMissingTitle,
		},
		{
			name:    "too large",
			req:     UploadRequest{Title: "t", ContentType: "video/mp4", Size: 2 << 20},
			wantErr: domain.ErrPayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestFixture(t)
			req := tt.req
			if !errors.Is(tt.wantErr, domain.ErrMissingFile) {
				req.TempPath = f.tempUpload(t, "abc")
			}

			asset, err := f.svc.Ingest(context.Background(), req)

			assert.Nil(t, asset)
			assert.ErrorIs(t, err, tt.wantErr)
			if req.TempPath != "" {
				assert.NoFileExists(t, req.TempPath, "rejected upload must not leave its temp file")
			}
			entries, err := os.ReadDir(f.layout.Root())
			require.NoError(t, err)
			for _, e := range entries {
				assert.Equal(t, ".incoming", e.Name(), "no asset directory may be created")
			}
		})
	}
}

func TestIngestService_Ingest_PersistenceFailureRemovesOriginal(t *testing.T) {
	f := newIngestFixture(t)
	tmp := f.tempUpload(t, "bytes")

	var id string
	f.store.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, a *domain.MediaAsset) { id = a.ID }).
		Return(errors.New("database is locked")).Once()

	asset, err := f.svc.Ingest(context.Background(), UploadRequest{
		TempPath: tmp, FileName: "a.mp4", ContentType: "video/mp4", Size: 5, Title: "t", OwnerID: "o",
	})

	assert.Nil(t, asset)
	assert.ErrorContains(t, err, "database is locked")
	assert.NoDirExists(t, f.layout.AssetDir(id))
	assert.NoFileExists(t, tmp)
}

func TestIngestService_Ingest_RefusedDispatchFailsAsset(t *testing.T) {
	f := newIngestFixture(t)
	tmp := f.tempUpload(t, "bytes")

	f.store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.dispatcher.EXPECT().Dispatch(mock.Anything, mock.Anything).Return(false).Once()
	f.store.EXPECT().MarkFailed(mock.Anything, mock.AnythingOfType("string"), dispatchRefusedReason).Return(nil).Once()

	asset, err := f.svc.Ingest(context.Background(), UploadRequest{
		TempPath: tmp, FileName: "a.mp4", ContentType: "video/mp4", Size: 5, Title: "t",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.AssetStateUploading, asset.State)
}

func TestIngestService_AcceptsContentType(t *testing.T) {
	f := newIngestFixture(t)

	assert.True(t, f.svc.AcceptsContentType("video/mp4"))
	assert.True(t, f.svc.AcceptsContentType("VIDEO/QuickTime"))
	assert.True(t, f.svc.AcceptsContentType("video/webm; codecs=vp9"))
	assert.False(t, f.svc.AcceptsContentType("text/plain"))
	assert.False(t, f.svc.AcceptsContentType("audio/mpeg"))
	assert.False(t, f.svc.AcceptsContentType(""))
	assert.False(t, f.svc.AcceptsContentType("application/video"))
}
