package service

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/vodpipe/internal/infrastructure/logger"
	"github.com/bnema/vodpipe/internal/port"
)

type ProcessFunc func(ctx context.Context, assetID, originalPath string)

// Dispatcher starts one goroutine per accepted asset. Work runs under a
// context owned by the dispatcher, never under the request that caused it.
type Dispatcher struct {
	process ProcessFunc

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	inFlight map[string]struct{}
	closed   bool
}

func NewDispatcher(process ProcessFunc) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		process:  process,
		ctx:      ctx,
		cancel:   cancel,
		inFlight: make(map[string]struct{}),
	}
}

func (d *Dispatcher) Dispatch(assetID, originalPath string) bool {
	if strings.TrimSpace(assetID) == "" {
		return false
	}

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		logger.Warn.Printf("dispatcher closed, not processing asset %s", assetID)
		return false
	}
	if _, exists := d.inFlight[assetID]; exists {
		d.mu.Unlock()
		logger.Warn.Printf("asset %s already in flight", assetID)
		return false
	}
	d.inFlight[assetID] = struct{}{}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer d.finish(assetID)
		d.process(d.ctx, assetID, originalPath)
	}()
	return true
}

func (d *Dispatcher) finish(assetID string) {
	d.mu.Lock()
	delete(d.inFlight, assetID)
	d.mu.Unlock()
}

func (d *Dispatcher) InFlight() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.inFlight)
}

// Shutdown stops accepting work and waits for running work until ctx is
// done. Work still running at that point has its context cancelled and is
// waited for once more.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return ctx.Err()
	}
}

var _ port.Dispatcher = (*Dispatcher)(nil)
