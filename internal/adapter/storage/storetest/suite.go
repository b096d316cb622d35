// Package storetest holds behavior checks shared by every port.AssetStore
// implementation.
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/port"
)

func newAsset(title string) *domain.MediaAsset {
	return domain.NewAsset(domain.NewAssetParams{
		Title:            title,
		Description:      "desc",
		OwnerID:          "owner-1",
		OriginalFileName: "clip.mp4",
		ContentType:      "video/mp4",
		SizeBytes:        1024,
	})
}

var processed = domain.ProcessedResult{
	DurationSeconds: 12.5,
}

// Run exercises store against the AssetStore contract. newStore must return
// an empty store.
func Run(t *testing.T, newStore func(t *testing.T) port.AssetStore) {
	ctx := context.Background()

	t.Run("create then get round trips", func(t *testing.T) {
		s := newStore(t)
		a := newAsset("first")
		require.NoError(t, s.Create(ctx, a))

		got, err := s.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, "first", got.Title)
		assert.Equal(t, "desc", got.Description)
		assert.Equal(t, "owner-1", got.OwnerID)
		assert.Equal(t, a.OriginalLocation, got.OriginalLocation)
		assert.Equal(t, domain.AssetStateUploading, got.State)
		assert.Empty(t, got.ManifestLocation)
		assert.Empty(t, got.ThumbnailLocation)
		assert.Zero(t, got.DurationSeconds)
		assert.WithinDuration(t, a.CreatedAt, got.CreatedAt, 0)
	})

	t.Run("get unknown id returns ErrNotFound", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Get(ctx, "missing")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("create rejects duplicate id", func(t *testing.T) {
		s := newStore(t)
		a := newAsset("dup")
		require.NoError(t, s.Create(ctx, a))
		assert.Error(t, s.Create(ctx, a))
	})

	t.Run("full lifecycle to processed", func(t *testing.T) {
		s := newStore(t)
		a := newAsset("life")
		require.NoError(t, s.Create(ctx, a))
		require.NoError(t, s.MarkProcessing(ctx, a.ID))

		got, err := s.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStateProcessing, got.State)

		r := processed
		r.ManifestLocation = domain.ManifestLocation(a.ID)
		r.ThumbnailLocation = domain.ThumbnailLocation(a.ID)
		require.NoError(t, s.MarkProcessed(ctx, a.ID, r))

		got, err = s.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStateProcessed, got.State)
		assert.Equal(t, "/videos/"+a.ID+"/hls/master.m3u8", got.ManifestLocation)
		assert.Equal(t, "/videos/"+a.ID+"/thumbnails/thumbnail-01.png", got.ThumbnailLocation)
		assert.InDelta(t, 12.5, got.DurationSeconds, 0.0001)
		assert.True(t, got.Streamable())
	})

	t.Run("uploading may fail directly", func(t *testing.T) {
		s := newStore(t)
		a := newAsset("fail")
		require.NoError(t, s.Create(ctx, a))
		require.NoError(t, s.MarkFailed(ctx, a.ID, "boom"))

		got, err := s.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStateFailed, got.State)
		assert.Equal(t, "boom", got.FailureReason)
		assert.Empty(t, got.ManifestLocation)
	})

	t.Run("terminal states are never left", func(t *testing.T) {
		s := newStore(t)
		done := newAsset("done")
		require.NoError(t, s.Create(ctx, done))
		r := processed
		r.ManifestLocation = domain.ManifestLocation(done.ID)
		require.NoError(t, s.MarkProcessed(ctx, done.ID, r))

		assert.ErrorIs(t, s.MarkFailed(ctx, done.ID, "late"), domain.ErrInvalidTransition)
		assert.ErrorIs(t, s.MarkProcessing(ctx, done.ID), domain.ErrInvalidTransition)
		assert.ErrorIs(t, s.MarkProcessed(ctx, done.ID, r), domain.ErrInvalidTransition)

		failed := newAsset("failed")
		require.NoError(t, s.Create(ctx, failed))
		require.NoError(t, s.MarkFailed(ctx, failed.ID, "x"))
		assert.ErrorIs(t, s.MarkProcessed(ctx, failed.ID, r), domain.ErrInvalidTransition)

		got, err := s.Get(ctx, done.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AssetStateProcessed, got.State)
		assert.Empty(t, got.FailureReason)
	})

	t.Run("processing cannot be entered twice", func(t *testing.T) {
		s := newStore(t)
		a := newAsset("twice")
		require.NoError(t, s.Create(ctx, a))
		require.NoError(t, s.MarkProcessing(ctx, a.ID))
		assert.ErrorIs(t, s.MarkProcessing(ctx, a.ID), domain.ErrInvalidTransition)
	})

	t.Run("transitions on unknown id return ErrNotFound", func(t *testing.T) {
		s := newStore(t)
		assert.ErrorIs(t, s.MarkProcessing(ctx, "nope"), domain.ErrNotFound)
		assert.ErrorIs(t, s.MarkProcessed(ctx, "nope", processed), domain.ErrNotFound)
		assert.ErrorIs(t, s.MarkFailed(ctx, "nope", "x"), domain.ErrNotFound)
	})

	t.Run("list by state filters", func(t *testing.T) {
		s := newStore(t)
		up := newAsset("up")
		proc := newAsset("proc")
		done := newAsset("done")
		for _, a := range []*domain.MediaAsset{up, proc, done} {
			require.NoError(t, s.Create(ctx, a))
		}
		require.NoError(t, s.MarkProcessing(ctx, proc.ID))
		require.NoError(t, s.MarkProcessed(ctx, done.ID, processed))

		list, err := s.ListByState(ctx, []domain.AssetState{domain.AssetStateUploading, domain.AssetStateProcessing})
		require.NoError(t, err)
		ids := make([]string, 0, len(list))
		for _, a := range list {
			ids = append(ids, a.ID)
		}
		assert.ElementsMatch(t, []string{up.ID, proc.ID}, ids)

		none, err := s.ListByState(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("concurrent terminal writes settle on one outcome", func(t *testing.T) {
		s := newStore(t)
		a := newAsset("race")
		require.NoError(t, s.Create(ctx, a))
		require.NoError(t, s.MarkProcessing(ctx, a.ID))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			errs[0] = s.MarkProcessed(ctx, a.ID, processed)
		}()
		go func() {
			defer wg.Done()
			errs[1] = s.MarkFailed(ctx, a.ID, "raced")
		}()
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			}
		}
		assert.Equal(t, 1, succeeded)

		got, err := s.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, got.State.IsTerminal())
	})

	t.Run("ping succeeds on open store", func(t *testing.T) {
		s := newStore(t)
		assert.NoError(t, s.Ping(ctx))
	})
}
