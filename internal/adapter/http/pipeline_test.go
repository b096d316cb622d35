package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vodpipe/internal/adapter/storage/jsonfile"
	"github.com/bnema/vodpipe/internal/adapter/storage/mediafs"
	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/port/mocks"
	"github.com/bnema/vodpipe/internal/service"
)

// newPipelineFixture wires the real dispatcher and orchestrator behind the
// server. Only the media engine is faked.
func newPipelineFixture(t *testing.T) (*serverFixture, *mocks.MediaEngineMock) {
	t.Helper()

	store, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)
	layout, err := mediafs.NewLayout(t.TempDir())
	require.NoError(t, err)

	engine := mocks.NewMediaEngineMock(t)
	bus := service.NewEventBus()
	orch := service.NewOrchestrator(store, engine, layout, bus, service.OrchestratorConfig{
		ThumbnailPercent: 10,
		StageTimeout:     time.Minute,
	})
	dispatcher := service.NewDispatcher(orch.Process)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		assert.NoError(t, dispatcher.Shutdown(ctx))
	})

	auth := service.NewAuthService("test-secret")
	token, err := auth.GenerateToken("owner-1")
	require.NoError(t, err)

	ingest := service.NewIngestService(store, layout, dispatcher, service.IngestConfig{
		AcceptedPrefixes: []string{"video/"},
		MaxUploadBytes:   1 << 20,
	})
	delivery := service.NewDeliveryService(store, layout)
	handlers := NewHandlers(ingest, delivery, store, nil, false)

	f := &serverFixture{
		store:  store,
		layout: layout,
		bus:    bus,
		server: NewServer(handlers, NewSSEHandler(bus, delivery), auth),
		token:  token,
	}
	return f, engine
}

func fakeThumbnail(_ context.Context, _ string, outDir string, _ float64) (string, error) {
	p := filepath.Join(outDir, domain.ThumbnailFile)
	return p, os.WriteFile(p, []byte("\x89PNG\r\n\x1a\n"), 0644)
}

func fakeSegment(_ context.Context, _ string, outDir string) (string, error) {
	if err := os.WriteFile(filepath.Join(outDir, "master0.ts"), []byte("segment"), 0644); err != nil {
		return "", err
	}
	p := filepath.Join(outDir, domain.ManifestFile)
	return p, os.WriteFile(p, []byte(sampleManifest), 0644)
}

func fakeProbe(_ context.Context, _ string) (*domain.ProbeResult, error) {
	return &domain.ProbeResult{
		Format:  domain.ProbeFormat{Duration: "10.0"},
		Streams: []domain.ProbeStream{{CodecType: "video", Width: 320, Height: 240}},
	}, nil
}

func uploadedID(t *testing.T, f *serverFixture) string {
	t.Helper()
	rec := f.upload(t, validForm())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Video domain.MediaAsset `json:"video"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Video.ID
}

func waitTerminal(t *testing.T, f *serverFixture, id string) {
	t.Helper()
	require.Eventually(t, func() bool {
		a, err := f.store.Get(context.Background(), id)
		return err == nil && a.State.IsTerminal()
	}, 5*time.Second, 10*time.Millisecond)
}

func TestPipeline_UploadToPlayback(t *testing.T) {
	f, engine := newPipelineFixture(t)
	engine.EXPECT().Thumbnail(mock.Anything, mock.AnythingOfType("string"), mock.Anything, float64(10)).
		RunAndReturn(fakeThumbnail).Once()
	engine.EXPECT().Probe(mock.Anything, mock.AnythingOfType("string")).RunAndReturn(fakeProbe).Once()
	engine.EXPECT().Segment(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		RunAndReturn(fakeSegment).Once()

	id := uploadedID(t, f)
	waitTerminal(t, f, id)

	rec := f.get(t, "/videos/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	var asset domain.MediaAsset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &asset))
	assert.Equal(t, domain.AssetStateProcessed, asset.State)
	assert.Greater(t, asset.DurationSeconds, 0.0)
	assert.Equal(t, domain.ManifestLocation(id), asset.ManifestLocation)
	assert.Equal(t, domain.ThumbnailLocation(id), asset.ThumbnailLocation)
	assert.Empty(t, asset.FailureReason)

	manifestURL := "/videos/" + id + "/manifest"
	manifest := f.get(t, manifestURL)
	require.Equal(t, http.StatusOK, manifest.Code)
	for _, uri := range segmentURIs(t, manifestURL, manifest.Body.String()) {
		assert.Equal(t, http.StatusOK, f.get(t, uri).Code, uri)
	}

	assert.Equal(t, http.StatusOK, f.get(t, "/videos/"+id+"/thumbnail").Code)
}

func TestPipeline_SegmentFailureLeavesNoPlayback(t *testing.T) {
	f, engine := newPipelineFixture(t)
	engine.EXPECT().Thumbnail(mock.Anything, mock.AnythingOfType("string"), mock.Anything, float64(10)).
		RunAndReturn(fakeThumbnail).Once()
	engine.EXPECT().Probe(mock.Anything, mock.AnythingOfType("string")).RunAndReturn(fakeProbe).Once()
	engine.EXPECT().Segment(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return("", errors.New("encoder exploded")).Once()

	id := uploadedID(t, f)
	waitTerminal(t, f, id)

	rec := f.get(t, "/videos/"+id)
	require.Equal(t, http.StatusOK, rec.Code)
	var asset domain.MediaAsset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &asset))
	assert.Equal(t, domain.AssetStateFailed, asset.State)
	assert.Empty(t, asset.ManifestLocation)
	assert.Empty(t, asset.ThumbnailLocation)
	assert.Zero(t, asset.DurationSeconds)
	assert.Contains(t, asset.FailureReason, "segment: encoder exploded")

	manifest := f.get(t, "/videos/"+id+"/manifest")
	assert.Equal(t, http.StatusNotFound, manifest.Code)
	assert.Equal(t, "Video not found or not processed for streaming.", decodeMessage(t, manifest))
	assert.NotContains(t, manifest.Body.String(), "encoder exploded")
}
