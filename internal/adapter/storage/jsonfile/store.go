package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/vodpipe/internal/domain"
	"github.com/bnema/vodpipe/internal/port"
)

type Store struct {
	mu     sync.RWMutex
	path   string
	assets map[string]*domain.MediaAsset
}

func NewStore(dataDir string) (*Store, error) {
	path := filepath.Join(dataDir, "assets.json")

	store := &Store{
		path:   path,
		assets: make(map[string]*domain.MediaAsset),
	}

	if err := store.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return store, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return nil
	}

	var list []*domain.MediaAsset
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("decode %s: %w", s.path, err)
	}

	for _, a := range list {
		s.assets[a.ID] = a
	}

	return nil
}

func (s *Store) save() error {
	tmpPath := s.path + ".tmp"

	list := make([]*domain.MediaAsset, 0, len(s.assets))
	for _, a := range s.assets {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.Before(list[j].CreatedAt) })

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return err
	}

	return os.Rename(tmpPath, s.path)
}

func (s *Store) Create(_ context.Context, a *domain.MediaAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.assets[a.ID]; exists {
		return fmt.Errorf("asset %s already exists", a.ID)
	}
	for _, other := range s.assets {
		if other.OriginalLocation == a.OriginalLocation {
			return fmt.Errorf("original location %s already in use", a.OriginalLocation)
		}
	}

	cp := *a
	s.assets[a.ID] = &cp
	if err := s.save(); err != nil {
		delete(s.assets, a.ID)
		return err
	}
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*domain.MediaAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	cp := *a
	return &cp, nil
}

func (s *Store) MarkProcessing(_ context.Context, id string) error {
	return s.transition(id, func(a *domain.MediaAsset) error { return a.MarkProcessing() })
}

func (s *Store) MarkProcessed(_ context.Context, id string, r domain.ProcessedResult) error {
	return s.transition(id, func(a *domain.MediaAsset) error { return a.MarkProcessed(r) })
}

func (s *Store) MarkFailed(_ context.Context, id string, reason string) error {
	return s.transition(id, func(a *domain.MediaAsset) error { return a.MarkFailed(reason) })
}

// transition applies fn to a copy and only commits it once persisted.
func (s *Store) transition(id string, fn func(*domain.MediaAsset) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.assets[id]
	if !ok {
		return domain.ErrNotFound
	}

	next := *current
	if err := fn(&next); err != nil {
		return fmt.Errorf("%w: asset %s is %s", err, id, current.State)
	}

	s.assets[id] = &next
	if err := s.save(); err != nil {
		s.assets[id] = current
		return err
	}
	return nil
}

func (s *Store) ListByState(_ context.Context, states []domain.AssetState) ([]*domain.MediaAsset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[domain.AssetState]bool, len(states))
	for _, st := range states {
		want[st] = true
	}

	var result []*domain.MediaAsset
	for _, a := range s.assets {
		if want[a.State] {
			cp := *a
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })

	return result, nil
}

func (s *Store) Ping(_ context.Context) error {
	dir := filepath.Dir(s.path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

var _ port.AssetStore = (*Store)(nil)
